package constraint

import (
	"fmt"

	"github.com/roach88/cages/internal/partition"
)

// DefaultMaxDigit is the largest digit on a Sudoku grid.
const DefaultMaxDigit = 9

// Rule names, in evaluation order.
const (
	RuleSize       = "size"
	RuleDistinct   = "distinct"
	RuleMaxDigit   = "max_digit"
	RuleExclusions = "exclusions"
)

// Rules is the constraint set of a single cage. It is built once before
// enumeration and read-only afterwards.
type Rules struct {
	// DesiredSum is the cage total.
	DesiredSum int

	// NumDigits is the exact number of cells in the cage.
	NumDigits int

	// MaxDigit is the inclusive upper bound per part.
	MaxDigit int

	// Excluded digits may not appear in an accepted partition. May be nil.
	Excluded DigitSet
}

// NewRules creates Rules with MaxDigit set to DefaultMaxDigit.
func NewRules(sum, numDigits int, excluded ...int) Rules {
	return Rules{
		DesiredSum: sum,
		NumDigits:  numDigits,
		MaxDigit:   DefaultMaxDigit,
		Excluded:   NewDigitSet(excluded...),
	}
}

// Validate checks that the rules describe a solvable configuration shape.
func (r Rules) Validate() error {
	if r.DesiredSum < 0 {
		return partition.NewArgumentError("Rules", fmt.Sprintf("sum must be non-negative, got %d", r.DesiredSum))
	}
	if r.NumDigits < 1 {
		return partition.NewArgumentError("Rules", fmt.Sprintf("digit count must be positive, got %d", r.NumDigits))
	}
	if r.MaxDigit < 1 {
		return partition.NewArgumentError("Rules", fmt.Sprintf("max digit must be positive, got %d", r.MaxDigit))
	}
	return nil
}

// Chain returns the acceptance rule as an ordered Chain:
//
//	SizeEquals(p, NumDigits) && !HasDuplicates(p) &&
//	!ContainsGreaterThan(p, MaxDigit) && !ContainsAny(p, Excluded)
//
// The size check runs first. It rejects most candidates, and because
// NumDigits >= 1 it also keeps the empty partition of 0 away from the
// predicates that refuse empty input.
func (r Rules) Chain() Chain {
	return Chain{
		{Name: RuleSize, Check: Pure(func(p partition.Partition) bool { return SizeEquals(p, r.NumDigits) })},
		{Name: RuleDistinct, Check: Not(Pure(HasDuplicates))},
		{Name: RuleMaxDigit, Check: Not(func(p partition.Partition) (bool, error) { return ContainsGreaterThan(p, r.MaxDigit) })},
		{Name: RuleExclusions, Check: Not(func(p partition.Partition) (bool, error) { return ContainsAny(p, r.Excluded) })},
	}
}

// Accept reports whether p satisfies every rule.
func (r Rules) Accept(p partition.Partition) (bool, error) {
	return r.Chain().Accept(p)
}

// String renders the rules for log lines.
func (r Rules) String() string {
	return fmt.Sprintf("sum=%d digits=%d max=%d exclude=%s", r.DesiredSum, r.NumDigits, r.MaxDigit, r.Excluded)
}
