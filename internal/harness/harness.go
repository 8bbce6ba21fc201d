package harness

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/adder/internal/adder"
	"github.com/roach88/adder/internal/ir"
	"github.com/roach88/adder/internal/store"
	"github.com/roach88/adder/internal/testutil"
)

// Harness is the scenario execution engine.
// It runs scenarios with a deterministic clock and a fixed run ID.
type Harness struct {
	store  *store.Store
	clock  *testutil.DeterministicClock
	runID  string
	logger *zap.Logger
}

// Option configures a run.
type Option func(*Harness)

// WithStore records every calculation in the given ledger.
func WithStore(st *store.Store) Option {
	return func(h *Harness) { h.store = st }
}

// WithLogger sets the diagnostic logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Harness) { h.logger = logger }
}

// WithRunID overrides the scenario's run ID.
func WithRunID(gen ir.RunIDGenerator) Option {
	return func(h *Harness) { h.runID = gen.Generate() }
}

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Validate the scenario
//  2. Evaluate each case in order, tracing invocation and completion
//  3. Compare each outcome with the case's expectation
//  4. Check the requested properties
//  5. Write the calculations to the store, if one is configured
//
// Expectation mismatches mark the result failed; they are not errors.
// Errors are returned only for invalid scenarios and store failures.
func Run(ctx context.Context, scenario *Scenario, opts ...Option) (*Result, error) {
	if err := Validate(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	h := &Harness{
		clock:  testutil.NewDeterministicClock(),
		runID:  testutil.NewFixedRunID(scenario.RunID).Generate(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	logger := h.logger.With(zap.String("scenario", scenario.Name), zap.String("run_id", h.runID))
	result := NewResult(h.runID)

	for i, c := range scenario.Cases {
		if err := h.executeCase(i, c, result, logger); err != nil {
			return nil, err
		}
	}

	for _, name := range scenario.Properties {
		result.Properties = append(result.Properties, checkProperty(name, scenario.Cases, result))
	}

	if h.store != nil {
		if err := h.store.WriteCalculations(ctx, result.Calculations); err != nil {
			return nil, fmt.Errorf("record calculations: %w", err)
		}
		logger.Debug("calculations recorded", zap.Int("count", len(result.Calculations)))
	}

	logger.Debug("scenario finished",
		zap.Bool("pass", result.Pass),
		zap.Int("cases", len(scenario.Cases)),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

// executeCase evaluates one case and checks its expectation.
func (h *Harness) executeCase(index int, c Case, result *Result, logger *zap.Logger) error {
	a, b, err := c.Operands()
	if err != nil {
		return fmt.Errorf("%s: %w", caseLabel(index, c), err)
	}

	seq := h.clock.Next()
	sum, addErr := adder.AddNullable(a, b)
	calc, err := ir.NewCalculation(h.runID, seq, a, b, sum, addErr)
	if err != nil {
		return fmt.Errorf("%s: %w", caseLabel(index, c), err)
	}

	result.AddInvocationTrace(c.Kind.orDefault(), calc.Args(), seq)
	result.AddCompletionTrace(calc.OutputCase, calc.Result(), h.clock.Next())
	result.Calculations = append(result.Calculations, calc)

	logger.Debug("case evaluated",
		zap.Int("case", index),
		zap.String("output_case", string(calc.OutputCase)),
		zap.String("id", calc.ID),
	)

	if msg := checkExpect(c.Expect, calc); msg != "" {
		result.AddError(fmt.Sprintf("%s: %s", caseLabel(index, c), msg))
	}
	return nil
}

// checkExpect returns a mismatch description, or "" when calc matches.
func checkExpect(expect Expect, calc ir.Calculation) string {
	if string(calc.OutputCase) != expect.Case {
		if calc.OutputCase == ir.CaseSum {
			return fmt.Sprintf("expected case %s, got %s (sum %d)", expect.Case, calc.OutputCase, *calc.Sum)
		}
		return fmt.Sprintf("expected case %s, got %s", expect.Case, calc.OutputCase)
	}
	if expect.Sum != nil && calc.Sum != nil && int64(*calc.Sum) != *expect.Sum {
		return fmt.Sprintf("expected sum %d, got %d", *expect.Sum, *calc.Sum)
	}
	return ""
}

// caseLabel renders a case for error messages, e.g. "cases[2] (-3 + 5)".
func caseLabel(index int, c Case) string {
	if c.Description != "" {
		return fmt.Sprintf("cases[%d] %s", index, c.Description)
	}
	return fmt.Sprintf("cases[%d] (%s + %s)", index, operandText(c.A), operandText(c.B))
}

func operandText(o *Operand) string {
	if o == nil {
		return "null"
	}
	return o.Text
}
