package harness

// TraceEvent is one accepted combination.
type TraceEvent struct {
	Seq         int64  `json:"seq"`
	Cage        string `json:"cage"`
	Combination []int  `json:"combination"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace lists accepted combinations in the order they were produced,
	// cage by cage.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an accepted combination.
func (r *Result) AddTrace(cage string, combination []int, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{Seq: seq, Cage: cage, Combination: combination})
}

// CageTrace returns the combinations recorded for one cage, in order.
func (r *Result) CageTrace(cage string) [][]int {
	var out [][]int
	for _, e := range r.Trace {
		if e.Cage == cage {
			out = append(out, e.Combination)
		}
	}
	return out
}
