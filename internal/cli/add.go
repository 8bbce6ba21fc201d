package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/adder/internal/adder"
	"github.com/roach88/adder/internal/ir"
	"github.com/roach88/adder/internal/store"
)

// NullOperand is the argument spelling of an absent operand.
const NullOperand = "null"

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Database string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs ir.RunIDGenerator
}

// AddResult is the JSON payload of a successful addition.
type AddResult struct {
	A             int32  `json:"a"`
	B             int32  `json:"b"`
	Sum           int32  `json:"sum"`
	RunID         string `json:"run_id,omitempty"`
	CalculationID string `json:"calculation_id,omitempty"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two int32 operands",
		Long: `Add two signed 32-bit integers.

Operands are base-10 integers in [-2147483648, 2147483647]. The literal
"null" marks an absent operand, which is reported as invalid input.
Separate negative operands from flags with "--".

Exit codes:
  0 - Sum printed
  1 - Overflow or absent operand
  2 - Command error (malformed operand, ledger failure)

Examples:
  adder add 49 51
  adder add -- -10 -5
  adder add 2147483647 1 --format json
  adder add 1 2 --db ./ledger.db`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.Context(), opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", rootOpts.defaultDB(), "append the calculation to this SQLite ledger")

	return cmd
}

func runAdd(ctx context.Context, opts *AddOptions, argA, argB string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := opts.logger()

	a, err := parseOperand(argA)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidOperand, fmt.Sprintf("first operand: %v", err), nil)
	}
	b, err := parseOperand(argB)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidOperand, fmt.Sprintf("second operand: %v", err), nil)
	}

	sum, addErr := adder.AddNullable(a, b)

	var recorded *ir.Calculation
	if opts.Database != "" {
		calc, err := recordCalculation(ctx, opts, a, b, sum, addErr)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
		}
		logger.Debug("calculation recorded",
			zap.String("db", opts.Database),
			zap.String("run_id", calc.RunID),
			zap.String("id", calc.ID),
		)
		recorded = &calc
	}

	var overflow *adder.OverflowError
	switch {
	case addErr == nil:
	case errors.As(addErr, &overflow):
		return formatter.Fail(ExitFailure, ErrCodeOverflow, addErr.Error(), map[string]any{
			"a":     overflow.A,
			"b":     overflow.B,
			"exact": overflow.Exact,
		})
	case adder.IsInvalidInput(addErr):
		return formatter.Fail(ExitFailure, ErrCodeInvalidInput, addErr.Error(), nil)
	default:
		return WrapExitError(ExitCommandError, "addition failed", addErr)
	}

	logger.Debug("added", zap.Int32("a", *a), zap.Int32("b", *b), zap.Int32("sum", sum))

	if opts.Format != "json" {
		return formatter.Success(sum)
	}

	result := AddResult{A: *a, B: *b, Sum: sum}
	if recorded != nil {
		result.RunID = recorded.RunID
		result.CalculationID = recorded.ID
	}
	return formatter.Success(result)
}

// parseOperand parses a base-10 int32, or NullOperand as absent.
func parseOperand(arg string) (*int32, error) {
	if arg == NullOperand {
		return nil, nil
	}
	v, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%q is not a 32-bit integer", arg)
	}
	return ir.Int32(int32(v)), nil
}

// recordCalculation appends one calculation to the ledger as its own run.
func recordCalculation(ctx context.Context, opts *AddOptions, a, b *int32, sum int32, addErr error) (ir.Calculation, error) {
	gen := opts.RunIDs
	if gen == nil {
		gen = ir.UUIDv7Generator{}
	}

	calc, err := ir.NewCalculation(gen.Generate(), 1, a, b, sum, addErr)
	if err != nil {
		return ir.Calculation{}, err
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return ir.Calculation{}, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer st.Close()

	if _, err := st.WriteCalculation(ctx, calc); err != nil {
		return ir.Calculation{}, err
	}
	return calc, nil
}
