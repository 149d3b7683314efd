package harness

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/cages/internal/cage"
	"github.com/roach88/cages/internal/partition"
)

// Harness executes scenarios with a deterministic sequence counter.
type Harness struct {
	solver *cage.Solver
	seq    int64
}

// New creates a Harness. A nil logger discards solver logs.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{solver: cage.NewSolver(logger)}
}

// Run executes a scenario with a fresh Harness that discards logs.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run solves every cage in order, records accepted combinations in the trace,
// then checks expectations and assertions.
//
// Failed expectations are reported in Result.Errors. The returned error is
// reserved for failures of the harness itself.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	h.seq = 0
	result := NewResult()

	for i, c := range scenario.Cages {
		label := c.Label()
		combos, err := h.solver.SolveCage(c.Cage, scenario.MaxDigit, 0)
		if err != nil {
			if !partition.IsInvalidArgument(err) {
				return nil, fmt.Errorf("cages[%d] %q: %w", i, label, err)
			}
			if c.Expect == nil || !c.Expect.Invalid {
				result.AddError(fmt.Sprintf("cage %q: unexpected error: %v", label, err))
			}
			continue
		}
		if c.Expect != nil && c.Expect.Invalid {
			result.AddError(fmt.Sprintf("cage %q: expected invalid argument, got %d combination(s)", label, len(combos)))
		}

		for _, p := range combos {
			h.seq++
			result.AddTrace(label, p.Ints(), h.seq)
		}
		checkExpect(result, label, c.Expect, combos)
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

// checkExpect compares a cage's combinations with its expect clause.
func checkExpect(result *Result, label string, expect *ExpectClause, got []partition.Partition) {
	if expect == nil || expect.Invalid {
		return
	}

	if expect.Count != nil && *expect.Count != len(got) {
		result.AddError(fmt.Sprintf("cage %q: expected %d combination(s), got %d", label, *expect.Count, len(got)))
	}
	if expect.Combinations == nil {
		return
	}

	gotKeys := make([]string, len(got))
	for i, p := range got {
		gotKeys[i] = multisetKey(p)
	}
	wantKeys := make([]string, len(expect.Combinations))
	for i, c := range expect.Combinations {
		wantKeys[i] = multisetKey(c)
	}
	slices.Sort(gotKeys)
	slices.Sort(wantKeys)

	if !slices.Equal(gotKeys, wantKeys) {
		result.AddError(fmt.Sprintf("cage %q: expected combinations %v, got %v", label, wantKeys, gotKeys))
	}
}

// multisetKey renders a combination independent of digit order.
func multisetKey(digits []int) string {
	sorted := slices.Clone(digits)
	slices.Sort(sorted)
	return partition.Partition(sorted).String()
}
