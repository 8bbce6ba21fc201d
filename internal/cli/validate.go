package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/adder/internal/harness"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                  `json:"valid"`
	Files  int                   `json:"files"`
	Errors []harness.SchemaError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenarios-dir>",
		Short: "Validate scenario files against the schema",
		Long: `Validate every scenario file against the embedded CUE schema
without running it.

Reports every violation with its file, line and column.

Exit codes:
  0 - All scenarios valid
  1 - Schema violations found
  2 - Command error (directory not found, no scenario files)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, scenariosDir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := opts.logger()

	info, err := os.Stat(scenariosDir)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("scenarios directory not found: %s", scenariosDir), nil)
	}
	if !info.IsDir() {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("not a directory: %s", scenariosDir), nil)
	}

	files, err := findScenarioFiles(scenariosDir, "")
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}
	if len(files) == 0 {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("no scenario files found in %s", scenariosDir), nil)
	}

	var all []harness.SchemaError
	for _, f := range files {
		logger.Debug("validating scenario", zap.String("file", f))

		errs, err := harness.ValidateSchema(f)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to validate %s", f), err)
		}
		all = append(all, errs...)
	}

	if len(all) > 0 {
		return outputValidationErrors(formatter, len(files), all)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Files: len(files)})
	}
	fmt.Fprintf(formatter.Writer, "✓ All %d scenario file(s) valid\n", len(files))
	return nil
}

// outputValidationErrors outputs every schema violation.
func outputValidationErrors(formatter *OutputFormatter, files int, errs []harness.SchemaError) error {
	exitErr := NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))

	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data: ValidationResult{
				Valid:  false,
				Files:  files,
				Errors: errs,
			},
			Error: &CLIError{
				Code:    ErrCodeSchema,
				Message: errs[0].Error(),
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return exitErr
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, e := range errs {
		fmt.Fprintf(formatter.Writer, "  %s: %s\n", ErrCodeSchema, e.Error())
	}

	return exitErr
}
