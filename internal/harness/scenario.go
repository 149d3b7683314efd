package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/cages/internal/cage"
)

// Scenario is a set of cages with expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario. It names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID is recorded in the golden snapshot when set.
	RunID string `yaml:"run_id,omitempty"`

	// MaxDigit applies to every cage. Zero means constraint.DefaultMaxDigit.
	MaxDigit int `yaml:"max_digit,omitempty"`

	// Cages are solved in order.
	Cages []CageCase `yaml:"cages"`

	// Assertions validate the trace after all cages ran.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// CageCase is a cage plus its expected outcome.
type CageCase struct {
	cage.Cage `yaml:",inline"`

	// Expect is optional; without it the cage only contributes to the trace.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of one cage.
type ExpectClause struct {
	// Combinations is the exact expected result set.
	Combinations [][]int `yaml:"combinations,omitempty"`

	// Count is the expected number of combinations.
	Count *int `yaml:"count,omitempty"`

	// Invalid expects the cage to be rejected as an invalid argument.
	Invalid bool `yaml:"invalid,omitempty"`
}

// Assertion validates the trace.
type Assertion struct {
	// Type is one of result_contains, result_order, result_count.
	Type string `yaml:"type"`

	// Cage is the label of the cage the assertion inspects.
	Cage string `yaml:"cage"`

	// Combination is used by result_contains.
	Combination []int `yaml:"combination,omitempty"`

	// Combinations is used by result_order.
	Combinations [][]int `yaml:"combinations,omitempty"`

	// Count is used by result_count.
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertResultContains = "result_contains"
	AssertResultOrder    = "result_order"
	AssertResultCount    = "result_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields, or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
// Cage values themselves are not validated here: a scenario may expect a
// cage to be invalid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Cages) == 0 {
		return fmt.Errorf("cages list is required and must be non-empty")
	}

	labels := make(map[string]bool, len(s.Cages))
	for i, c := range s.Cages {
		if labels[c.Label()] {
			return fmt.Errorf("cages[%d]: duplicate cage %q", i, c.Label())
		}
		labels[c.Label()] = true

		if c.Expect != nil && c.Expect.Invalid && (len(c.Expect.Combinations) > 0 || c.Expect.Count != nil) {
			return fmt.Errorf("cages[%d].expect: invalid cannot be combined with combinations or count", i)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a, labels); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, labels map[string]bool) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}
	if a.Cage == "" {
		return fmt.Errorf("assertions[%d]: cage is required", index)
	}
	if !labels[a.Cage] {
		return fmt.Errorf("assertions[%d]: unknown cage %q", index, a.Cage)
	}

	switch a.Type {
	case AssertResultContains:
		if len(a.Combination) == 0 {
			return fmt.Errorf("assertions[%d]: combination is required for result_contains", index)
		}
	case AssertResultOrder:
		if len(a.Combinations) < 2 {
			return fmt.Errorf("assertions[%d]: at least two combinations are required for result_order", index)
		}
	case AssertResultCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
