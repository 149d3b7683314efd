package cage

import (
	"fmt"

	"github.com/roach88/cages/internal/constraint"
)

// Cage is one named cage configuration, as read from flags, env or a file.
type Cage struct {
	// Name labels the cage in output. Optional.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Sum is the cage total.
	Sum int `yaml:"sum" json:"sum"`

	// Digits is the number of cells.
	Digits int `yaml:"digits" json:"digits"`

	// Exclude lists digits that may not appear.
	Exclude []int `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// File is a set of cages solved in one run.
type File struct {
	// MaxDigit overrides constraint.DefaultMaxDigit when positive.
	MaxDigit int `yaml:"max_digit,omitempty" json:"max_digit,omitempty"`

	Cages []Cage `yaml:"cages" json:"cages"`
}

// Rules converts c into a constraint set. maxDigit <= 0 selects
// constraint.DefaultMaxDigit.
func (c Cage) Rules(maxDigit int) constraint.Rules {
	if maxDigit <= 0 {
		maxDigit = constraint.DefaultMaxDigit
	}
	return constraint.Rules{
		DesiredSum: c.Sum,
		NumDigits:  c.Digits,
		MaxDigit:   maxDigit,
		Excluded:   constraint.NewDigitSet(c.Exclude...),
	}
}

// Label returns the name, or a description built from the configuration.
func (c Cage) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("sum %d in %d", c.Sum, c.Digits)
}
