package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/cages/internal/canon"
)

// Snapshot serialises a scenario's trace as canonical JSON. The same
// scenario always produces byte-identical output.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		trace[i] = map[string]any{
			"seq":         event.Seq,
			"cage":        event.Cage,
			"combination": event.Combination,
		}
	}

	snapshot := map[string]any{
		"scenario_name": scenario.Name,
		"trace":         trace,
	}
	if scenario.RunID != "" {
		snapshot["run_id"] = scenario.RunID
	}
	return canon.Marshal(snapshot)
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against the scenario's golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}
