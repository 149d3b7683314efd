package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/roach88/cages/internal/cage"
)

// Env is the single-cage configuration read from the environment.
type Env struct {
	Sum      int   `env:"CAGES_SUM"       envDefault:"20"`
	Digits   int   `env:"CAGES_DIGITS"    envDefault:"4"`
	Exclude  []int `env:"CAGES_EXCLUDE"   envDefault:"2,7" envSeparator:","`
	MaxDigit int   `env:"CAGES_MAX_DIGIT" envDefault:"9"`
	Limit    int   `env:"CAGES_LIMIT"     envDefault:"0"`
}

// LoadEnv parses the process environment.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadEnvFrom parses the given variables instead of the process
// environment. Unset variables take their defaults.
func LoadEnvFrom(vars map[string]string) (Env, error) {
	var cfg Env
	if vars == nil {
		vars = map[string]string{}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Cage returns the environment's cage.
func (e Env) Cage() cage.Cage {
	return cage.Cage{Sum: e.Sum, Digits: e.Digits, Exclude: e.Exclude}
}
