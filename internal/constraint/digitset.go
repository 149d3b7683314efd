package constraint

import (
	"slices"
	"strconv"
	"strings"
)

// DigitSet is a set of digits. The zero value (nil) is an empty set.
type DigitSet map[int]struct{}

// NewDigitSet creates a set holding digits. Duplicates collapse.
func NewDigitSet(digits ...int) DigitSet {
	s := make(DigitSet, len(digits))
	for _, d := range digits {
		s[d] = struct{}{}
	}
	return s
}

// Has reports whether d is in the set. Safe on a nil set.
func (s DigitSet) Has(d int) bool {
	_, ok := s[d]
	return ok
}

// Sorted returns the members in ascending order.
func (s DigitSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// String renders the set as "{2, 7}".
func (s DigitSet) String() string {
	digits := s.Sorted()
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.Itoa(d)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
