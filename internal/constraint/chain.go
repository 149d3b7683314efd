package constraint

import (
	"github.com/roach88/cages/internal/partition"
)

// Predicate reports whether a partition passes one check.
type Predicate func(p partition.Partition) (bool, error)

// Rule is a named Predicate. The name shows up in debug logs when the rule
// rejects a partition.
type Rule struct {
	Name  string
	Check Predicate
}

// Chain is an ordered list of rules combined with a short-circuit AND.
type Chain []Rule

// Evaluate runs the rules in order and stops at the first one that fails or
// errors. It returns the name of the rejecting rule, or "" when p passes.
func (c Chain) Evaluate(p partition.Partition) (ok bool, rejectedBy string, err error) {
	for _, r := range c {
		pass, err := r.Check(p)
		if err != nil {
			return false, r.Name, err
		}
		if !pass {
			return false, r.Name, nil
		}
	}
	return true, "", nil
}

// Accept is Evaluate without the rule name.
func (c Chain) Accept(p partition.Partition) (bool, error) {
	ok, _, err := c.Evaluate(p)
	return ok, err
}

// Not negates a Predicate. Errors pass through unchanged.
func Not(pred Predicate) Predicate {
	return func(p partition.Partition) (bool, error) {
		ok, err := pred(p)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// Pure lifts an infallible check into a Predicate.
func Pure(check func(partition.Partition) bool) Predicate {
	return func(p partition.Partition) (bool, error) {
		return check(p), nil
	}
}
