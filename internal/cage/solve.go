package cage

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/roach88/cages/internal/constraint"
	"github.com/roach88/cages/internal/partition"
)

// Solver runs generator + filter for a constraint set.
// A Solver holds no per-run state and may be reused.
type Solver struct {
	logger *slog.Logger
}

// NewSolver creates a Solver. A nil logger discards all output.
func NewSolver(logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Solver{logger: logger}
}

// Combinations returns the accepted partitions for rules as a lazy sequence,
// in generator order. The returned function yields a partition together with
// a nil error, or a zero partition and the error that stopped the run.
func (s *Solver) Combinations(rules constraint.Rules) (iter.Seq2[partition.Partition, error], error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	candidates, err := partition.Generate(rules.DesiredSum)
	if err != nil {
		return nil, err
	}
	chain := rules.Chain()

	return func(yield func(partition.Partition, error) bool) {
		examined, accepted := 0, 0
		for p := range candidates {
			examined++
			ok, rejectedBy, err := chain.Evaluate(p)
			if err != nil {
				yield(nil, fmt.Errorf("evaluating %s: %w", p, err))
				return
			}
			if !ok {
				s.logger.Debug("partition rejected", "partition", p.String(), "rule", rejectedBy)
				continue
			}
			accepted++
			if !yield(p, nil) {
				s.logger.Debug("enumeration stopped early", "examined", examined, "accepted", accepted)
				return
			}
		}
		s.logger.Debug("enumeration complete", "rules", rules.String(), "examined", examined, "accepted", accepted)
	}, nil
}

// Solve collects up to limit accepted partitions. limit <= 0 means all.
func (s *Solver) Solve(rules constraint.Rules, limit int) ([]partition.Partition, error) {
	seq, err := s.Combinations(rules)
	if err != nil {
		return nil, err
	}

	results := []partition.Partition{}
	for p, err := range seq {
		if err != nil {
			return nil, err
		}
		results = append(results, p)
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	s.logger.Info("cage solved", "rules", rules.String(), "combinations", len(results))
	return results, nil
}

// SolveCage solves a configured cage.
func (s *Solver) SolveCage(c Cage, maxDigit, limit int) ([]partition.Partition, error) {
	results, err := s.Solve(c.Rules(maxDigit), limit)
	if err != nil {
		return nil, fmt.Errorf("cage %q: %w", c.Label(), err)
	}
	return results, nil
}

// WriteText writes one line per partition in the "[8, 5, 4, 3]" format.
func WriteText(w io.Writer, results []partition.Partition) error {
	for _, p := range results {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}
	return nil
}
