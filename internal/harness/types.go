package harness

import "github.com/roach88/adder/internal/ir"

// Trace event types.
const (
	EventInvocation = "invocation"
	EventCompletion = "completion"
)

// TraceEvent is one step of a scenario run: the invocation of an addition
// or its completion.
type TraceEvent struct {
	Type       string         `json:"type"`
	Seq        int64          `json:"seq"`
	Kind       Kind           `json:"kind,omitempty"`
	Args       map[string]any `json:"args,omitempty"`
	OutputCase ir.OutputCase  `json:"output_case,omitempty"`
	Result     map[string]any `json:"result,omitempty"`
}

// PropertyResult summarises one property check.
type PropertyResult struct {
	Name    string `json:"name"`
	Checked int    `json:"checked"`
	Pass    bool   `json:"pass"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every case matched its expectation and every
	// property held.
	Pass bool `json:"pass"`

	// RunID is the run the calculations were recorded under.
	RunID string `json:"run_id"`

	// Trace contains invocations and completions in seq order.
	Trace []TraceEvent `json:"trace"`

	// Calculations holds one record per evaluated case.
	Calculations []ir.Calculation `json:"calculations"`

	// Properties holds one entry per requested property.
	Properties []PropertyResult `json:"properties,omitempty"`

	// Errors contains validation error messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(runID string) *Result {
	return &Result{
		Pass:         true,
		RunID:        runID,
		Trace:        []TraceEvent{},
		Calculations: []ir.Calculation{},
		Errors:       []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddInvocationTrace adds an invocation to the trace.
func (r *Result) AddInvocationTrace(kind Kind, args map[string]any, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{
		Type: EventInvocation,
		Seq:  seq,
		Kind: kind,
		Args: args,
	})
}

// AddCompletionTrace adds a completion to the trace.
func (r *Result) AddCompletionTrace(outputCase ir.OutputCase, result map[string]any, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{
		Type:       EventCompletion,
		Seq:        seq,
		OutputCase: outputCase,
		Result:     result,
	})
}
