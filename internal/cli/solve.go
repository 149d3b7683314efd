package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cages/internal/cage"
	"github.com/roach88/cages/internal/config"
	"github.com/roach88/cages/internal/partition"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Sum      int
	Digits   int
	Exclude  string
	MaxDigit int
	Limit    int
	File     string
}

// CageResult is the JSON form of one solved cage.
type CageResult struct {
	Name         string  `json:"name,omitempty"`
	Sum          int     `json:"sum"`
	Digits       int     `json:"digits"`
	Exclude      []int   `json:"exclude"`
	MaxDigit     int     `json:"max_digit"`
	Combinations [][]int `json:"combinations"`
}

// SolveResult is the JSON payload of the solve command.
type SolveResult struct {
	Cages []CageResult `json:"cages"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "List the digit combinations of a cage",
		Long: `List every combination of distinct digits that fills a cage.

Without flags the cage comes from the environment (CAGES_SUM, CAGES_DIGITS,
CAGES_EXCLUDE, CAGES_MAX_DIGIT, CAGES_LIMIT), which defaults to a sum of 20
in 4 digits without 2 or 7. Flags override the environment. With --file,
every cage in a YAML or CUE file is solved instead.

Examples:
  cages solve
  cages solve --sum 17 --digits 2
  cages solve --sum 23 --digits 4 --exclude 1,9
  cages solve --file puzzle.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Sum, "sum", 0, "cage total (env CAGES_SUM)")
	cmd.Flags().IntVar(&opts.Digits, "digits", 0, "number of cells (env CAGES_DIGITS)")
	cmd.Flags().StringVar(&opts.Exclude, "exclude", "", `comma-separated digits that may not appear, "" for none (env CAGES_EXCLUDE)`)
	cmd.Flags().IntVar(&opts.MaxDigit, "max-digit", 0, "largest allowed digit (env CAGES_MAX_DIGIT)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "stop after this many combinations per cage, 0 for all (env CAGES_LIMIT)")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YAML or CUE cage file")
	cmd.MarkFlagsMutuallyExclusive("file", "sum")
	cmd.MarkFlagsMutuallyExclusive("file", "digits")
	cmd.MarkFlagsMutuallyExclusive("file", "exclude")

	return cmd
}

func runSolve(opts *SolveOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())
	traceID := opts.runID()
	logger = logger.With("run_id", traceID)

	file, limit, err := resolveCages(opts, cmd)
	if err != nil {
		if opts.Format == "json" {
			_ = formatter.Error(config.ErrorCode(err), err.Error(), nil, traceID)
		}
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	logger.Debug("configuration resolved", "cages", len(file.Cages), "max_digit", file.MaxDigit, "limit", limit)

	solver := cage.NewSolver(logger)
	result := SolveResult{Cages: make([]CageResult, 0, len(file.Cages))}
	var text strings.Builder

	for _, c := range file.Cages {
		combos, err := solver.SolveCage(c, file.MaxDigit, limit)
		if err != nil {
			code := config.ErrCodeGeneric
			if partition.IsInvalidArgument(err) {
				code = config.ErrCodeInvalidCage
			}
			if opts.Format == "json" {
				_ = formatter.Error(code, err.Error(), nil, traceID)
			}
			return WrapExitError(ExitCommandError, "invalid cage", err)
		}

		rules := c.Rules(file.MaxDigit)
		cr := CageResult{
			Name:         c.Name,
			Sum:          c.Sum,
			Digits:       c.Digits,
			Exclude:      rules.Excluded.Sorted(),
			MaxDigit:     rules.MaxDigit,
			Combinations: make([][]int, 0, len(combos)),
		}
		for _, p := range combos {
			cr.Combinations = append(cr.Combinations, p.Ints())
		}
		result.Cages = append(result.Cages, cr)

		if opts.File != "" {
			fmt.Fprintf(&text, "# %s (sum %d, %d digits)\n", c.Label(), c.Sum, c.Digits)
		}
		if err := cage.WriteText(&text, combos); err != nil {
			return err
		}
	}

	if opts.Format == "json" {
		return formatter.Success(result, traceID)
	}
	return formatter.Success(text.String(), traceID)
}

// resolveCages merges flags over the environment, or loads --file.
func resolveCages(opts *SolveOptions, cmd *cobra.Command) (*cage.File, int, error) {
	var env config.Env
	var err error
	if opts.Env != nil {
		env, err = config.LoadEnvFrom(opts.Env)
	} else {
		env, err = config.LoadEnv()
	}
	if err != nil {
		return nil, 0, err
	}

	flags := cmd.Flags()
	limit := env.Limit
	if flags.Changed("limit") {
		limit = opts.Limit
	}
	maxDigit := env.MaxDigit
	if flags.Changed("max-digit") {
		maxDigit = opts.MaxDigit
	}
	if maxDigit < 1 {
		return nil, 0, &config.LoadError{Code: config.ErrCodeInvalidCage, Message: fmt.Sprintf("max digit must be positive, got %d", maxDigit)}
	}

	if opts.File != "" {
		file, err := config.LoadFile(opts.File)
		if err != nil {
			return nil, 0, err
		}
		if flags.Changed("max-digit") || file.MaxDigit == 0 {
			file.MaxDigit = maxDigit
		}
		return file, limit, nil
	}

	c := env.Cage()
	if flags.Changed("sum") {
		c.Sum = opts.Sum
	}
	if flags.Changed("digits") {
		c.Digits = opts.Digits
	}
	if flags.Changed("exclude") {
		c.Exclude, err = parseDigits(opts.Exclude)
		if err != nil {
			return nil, 0, &config.LoadError{Code: config.ErrCodeInvalidCage, Message: fmt.Sprintf("--exclude: %v", err), Err: err}
		}
	}
	return &cage.File{MaxDigit: maxDigit, Cages: []cage.Cage{c}}, limit, nil
}

// parseDigits parses "2,7" into []int. An empty string means no digits.
func parseDigits(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	digits := make([]int, 0, len(fields))
	for _, f := range fields {
		d, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid digit %q", f)
		}
		digits = append(digits, d)
	}
	return digits, nil
}
