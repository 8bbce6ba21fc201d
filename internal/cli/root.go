package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/adder/internal/config"
	"github.com/roach88/adder/internal/ir"
	"github.com/roach88/adder/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Config holds environment defaults. Flags override it.
	Config *config.Config

	// Logger is built by the root command before any subcommand runs.
	Logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the adder CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: config.LoadOrDefault()}

	cmd := &cobra.Command{
		Use:     "adder",
		Short:   "adder - checked 32-bit addition",
		Long:    "Adds signed 32-bit integers, reporting overflow instead of wrapping.",
		Version: ir.ToolVersion,
		// main prints the returned error once.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			logger, err := newLogger(opts, cmd)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to create logger", err)
			}
			opts.Logger = logger
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", opts.Config.Format, "output format (json|text)")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// newLogger builds the diagnostic logger. --verbose forces debug level;
// otherwise ADDER_LOG_LEVEL applies.
func newLogger(opts *RootOptions, cmd *cobra.Command) (*zap.Logger, error) {
	cfg := logging.DefaultConfig()
	if opts.Config != nil {
		cfg.Level = opts.Config.Log.Level
		cfg.Development = opts.Config.Log.Development
	}
	if opts.Verbose {
		cfg.Level = "debug"
	}
	return logging.New(cfg, cmd.ErrOrStderr())
}

// logger returns the configured logger, or a no-op logger when a
// subcommand runs without the root command.
func (o *RootOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return logging.NewNop()
	}
	return o.Logger
}

// defaultDB returns the ledger path from the environment, if any.
func (o *RootOptions) defaultDB() string {
	if o.Config == nil {
		return ""
	}
	return o.Config.DB
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// newFormatter creates the output formatter for a command.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
}
