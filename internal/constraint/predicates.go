package constraint

import (
	"github.com/roach88/cages/internal/partition"
)

// HasDuplicates returns true if any value appears more than once in p.
func HasDuplicates(p partition.Partition) bool {
	seen := make(map[int]struct{}, len(p))
	for _, v := range p {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

// ContainsGreaterThan returns true if any part of p exceeds threshold.
// A nil or empty p is an invalid argument.
func ContainsGreaterThan(p partition.Partition, threshold int) (bool, error) {
	if err := partition.RequireNonEmpty("ContainsGreaterThan", p); err != nil {
		return false, err
	}
	for _, v := range p {
		if v > threshold {
			return true, nil
		}
	}
	return false, nil
}

// ContainsAny returns true if p contains any value in excluded.
// A nil or empty excluded set never matches. A nil or empty p is an
// invalid argument, checked before the set.
func ContainsAny(p partition.Partition, excluded DigitSet) (bool, error) {
	if err := partition.RequireNonEmpty("ContainsAny", p); err != nil {
		return false, err
	}
	if len(excluded) == 0 {
		return false, nil
	}
	for _, v := range p {
		if excluded.Has(v) {
			return true, nil
		}
	}
	return false, nil
}

// SizeEquals returns true if p has exactly n parts.
func SizeEquals(p partition.Partition, n int) bool {
	return len(p) == n
}
