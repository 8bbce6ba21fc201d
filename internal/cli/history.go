package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/adder/internal/ir"
	"github.com/roach88/adder/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	RunID    string
	Case     string
	Limit    int
}

// HistoryResult is the JSON payload of the history command.
type HistoryResult struct {
	Calculations []ir.Calculation `json:"calculations"`
	Count        int              `json:"count"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded calculations",
		Long: `List calculations recorded in a ledger, in seq order.

Examples:
  adder history --db ./ledger.db
  adder history --db ./ledger.db --run 019300ab-...
  adder history --db ./ledger.db --case Overflow --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", rootOpts.defaultDB(), "path to SQLite ledger (required)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "only calculations of this run")
	cmd.Flags().StringVar(&opts.Case, "case", "", "only calculations with this outcome (Sum|Overflow|InvalidInput)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of calculations (0 = all)")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Database == "" {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, "no ledger given: pass --db or set ADDER_DB", nil)
	}

	if _, err := os.Stat(opts.Database); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("ledger not found: %s", opts.Database), nil)
	}

	filter := store.Filter{RunID: opts.RunID, Limit: opts.Limit}
	if opts.Case != "" {
		c, err := ir.ParseOutputCase(opts.Case)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidOperand, err.Error(), nil)
		}
		filter.OutputCase = c
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, fmt.Sprintf("failed to open ledger: %v", err), nil)
	}
	defer st.Close()

	calcs, err := st.ReadCalculations(ctx, filter)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
	}

	if opts.Format == "json" {
		return formatter.Success(HistoryResult{Calculations: calcs, Count: len(calcs)})
	}

	if len(calcs) == 0 {
		fmt.Fprintln(formatter.Writer, "No calculations found.")
		return nil
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tRUN\tA\tB\tCASE\tRESULT")
	for _, c := range calcs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.Seq, c.RunID, formatInt32(c.A), formatInt32(c.B), c.OutputCase, formatOutcome(c))
	}
	return tw.Flush()
}

func formatInt32(v *int32) string {
	if v == nil {
		return "null"
	}
	return strconv.FormatInt(int64(*v), 10)
}

// formatOutcome renders the sum, or the exact value for an overflow.
func formatOutcome(c ir.Calculation) string {
	switch {
	case c.Sum != nil:
		return strconv.FormatInt(int64(*c.Sum), 10)
	case c.OutputCase == ir.CaseOverflow && c.Exact != nil:
		return "exact " + strconv.FormatInt(*c.Exact, 10)
	default:
		return "-"
	}
}
