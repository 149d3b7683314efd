package harness

import (
	"fmt"
	"slices"
	"strings"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Cage     string
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s (cage %q)\n", e.Type, e.Cage)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error
		trace := result.CageTrace(assertion.Cage)

		switch assertion.Type {
		case AssertResultContains:
			err = assertResultContains(trace, assertion)
		case AssertResultOrder:
			err = assertResultOrder(trace, assertion)
		case AssertResultCount:
			err = assertResultCount(trace, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}

// assertResultContains checks that the cage produced the combination,
// ignoring digit order.
func assertResultContains(trace [][]int, a Assertion) error {
	want := multisetKey(a.Combination)
	for _, combo := range trace {
		if multisetKey(combo) == want {
			return nil
		}
	}
	return &AssertionError{
		Type:     a.Type,
		Cage:     a.Cage,
		Expected: fmt.Sprintf("combination %s", want),
		Actual:   fmt.Sprintf("%d combination(s) without it", len(trace)),
	}
}

// assertResultOrder checks that the combinations appear in the trace in the
// given relative order. Other combinations may appear in between.
func assertResultOrder(trace [][]int, a Assertion) error {
	keys := make([]string, len(trace))
	for i, combo := range trace {
		keys[i] = multisetKey(combo)
	}

	last := -1
	for _, combo := range a.Combinations {
		want := multisetKey(combo)
		idx := slices.Index(keys, want)
		if idx < 0 {
			return &AssertionError{
				Type:     a.Type,
				Cage:     a.Cage,
				Expected: fmt.Sprintf("combination %s in trace", want),
				Actual:   "not found",
			}
		}
		if idx <= last {
			return &AssertionError{
				Type:     a.Type,
				Cage:     a.Cage,
				Expected: fmt.Sprintf("%s after position %d", want, last),
				Actual:   fmt.Sprintf("found at position %d", idx),
			}
		}
		last = idx
	}
	return nil
}

// assertResultCount checks the number of combinations a cage produced.
func assertResultCount(trace [][]int, a Assertion) error {
	if len(trace) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Cage:     a.Cage,
		Expected: fmt.Sprintf("%d combination(s)", a.Count),
		Actual:   fmt.Sprintf("%d combination(s)", len(trace)),
	}
}
