package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cages/internal/cage"
)

func intPtr(n int) *int { return &n }

func TestRun_ExpectedCombinations(t *testing.T) {
	scenario := &Scenario{
		Name:        "twenty",
		Description: "sum 20 in 4 without 2 or 7",
		Cages: []CageCase{{
			Cage: cage.Cage{Name: "top-left", Sum: 20, Digits: 4, Exclude: []int{2, 7}},
			Expect: &ExpectClause{
				// Digit order and combination order are irrelevant.
				Combinations: [][]int{{3, 4, 5, 8}, {9, 6, 4, 1}, {8, 6, 5, 1}},
				Count:        intPtr(3),
			},
		}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, result.Errors)
	assert.Empty(t, result.Errors)

	require.Len(t, result.Trace, 3)
	assert.Equal(t, TraceEvent{Seq: 1, Cage: "top-left", Combination: []int{9, 6, 4, 1}}, result.Trace[0])
	assert.Equal(t, [][]int{{9, 6, 4, 1}, {8, 6, 5, 1}, {8, 5, 4, 3}}, result.CageTrace("top-left"))
}

func TestRun_MismatchedExpectation(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong",
		Description: "expects a combination that is excluded",
		Cages: []CageCase{{
			Cage:   cage.Cage{Sum: 20, Digits: 4, Exclude: []int{2, 7}},
			Expect: &ExpectClause{Combinations: [][]int{{9, 7, 3, 1}}, Count: intPtr(1)},
		}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "expected 1 combination(s), got 3")
	assert.Contains(t, result.Errors[1], "[1, 3, 7, 9]")
}

func TestRun_InvalidCage(t *testing.T) {
	expected := &Scenario{
		Name:        "invalid",
		Description: "negative sum",
		Cages: []CageCase{{
			Cage:   cage.Cage{Name: "bad", Sum: -1, Digits: 1},
			Expect: &ExpectClause{Invalid: true},
		}},
	}
	result, err := Run(expected)
	require.NoError(t, err)
	assert.True(t, result.Pass, result.Errors)
	assert.Empty(t, result.Trace)

	unexpected := &Scenario{
		Name:        "invalid",
		Description: "zero digits",
		Cages:       []CageCase{{Cage: cage.Cage{Name: "bad", Sum: 4, Digits: 0}}},
	}
	result, err = Run(unexpected)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "unexpected error")

	valid := &Scenario{
		Name:        "invalid",
		Description: "claims a valid cage is invalid",
		Cages: []CageCase{{
			Cage:   cage.Cage{Name: "ok", Sum: 3, Digits: 2},
			Expect: &ExpectClause{Invalid: true},
		}},
	}
	result, err = Run(valid)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "expected invalid argument, got 1 combination(s)")
}

func TestRun_Assertions(t *testing.T) {
	scenario := &Scenario{
		Name:        "assertions",
		Description: "trace assertions",
		Cages:       []CageCase{{Cage: cage.Cage{Name: "t", Sum: 20, Digits: 4, Exclude: []int{2, 7}}}},
		Assertions: []Assertion{
			{Type: AssertResultContains, Cage: "t", Combination: []int{1, 5, 6, 8}},
			{Type: AssertResultOrder, Cage: "t", Combinations: [][]int{{9, 6, 4, 1}, {8, 5, 4, 3}}},
			{Type: AssertResultCount, Cage: "t", Count: 3},
		},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, result.Errors)

	scenario.Assertions = []Assertion{
		{Type: AssertResultContains, Cage: "t", Combination: []int{9, 7, 3, 1}},
		{Type: AssertResultOrder, Cage: "t", Combinations: [][]int{{8, 5, 4, 3}, {9, 6, 4, 1}}},
		{Type: AssertResultOrder, Cage: "t", Combinations: [][]int{{8, 5, 4, 3}, {2, 3, 6, 9}}},
		{Type: AssertResultCount, Cage: "t", Count: 4},
	}
	result, err = Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "result_contains")
	assert.Contains(t, result.Errors[1], "found at position 0")
	assert.Contains(t, result.Errors[2], "not found")
	assert.Contains(t, result.Errors[3], "Expected: 4 combination(s)")
}

func TestRun_Deterministic(t *testing.T) {
	scenario := &Scenario{
		Name:        "repeat",
		Description: "same input twice",
		Cages: []CageCase{
			{Cage: cage.Cage{Sum: 15, Digits: 3}},
			{Cage: cage.Cage{Sum: 30, Digits: 5, Exclude: []int{9}}},
		},
	}

	h := New(nil)
	first, err := h.Run(scenario)
	require.NoError(t, err)
	second, err := h.Run(scenario)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	a, err := Snapshot(scenario, first)
	require.NoError(t, err)
	b, err := Snapshot(scenario, second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_NilScenario(t *testing.T) {
	_, err := Run(nil)
	assert.Error(t, err)
}
