package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/harness"
)

// ValidationError describes one scenario file that failed to load.
type ValidationError struct {
	File    string `json:"file"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Files  int               `json:"files"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenarios-dir>",
		Short: "Validate scenario files without running them",
		Long: `Validate scenario files without running them.

Every .yaml/.yml file under the directory is decoded strictly and checked
against the scenario schema. Nothing is executed and no golden file is read.`,
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
	formatter := newFormatter(opts, cmd, "")

	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return outputValidateError(formatter, ErrCodeNotFound, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}

	files, err := findScenarioFiles(scenariosDir, "")
	if err != nil {
		return outputValidateError(formatter, ErrCodeScanError, fmt.Sprintf("error scanning directory: %v", err))
	}
	slog.Debug("scenario files found", "dir", scenariosDir, "count", len(files))

	errs := ValidateScenarioFiles(files)
	result := ValidationResult{
		Valid:  len(errs) == 0,
		Files:  len(files),
		Errors: errs,
	}
	if len(errs) > 0 {
		return outputValidationErrors(formatter, result)
	}
	return outputValidateSuccess(formatter, result)
}

// ValidateScenarioFiles loads every file and returns one error per file
// that fails.
func ValidateScenarioFiles(files []string) []ValidationError {
	var errs []ValidationError
	for _, file := range files {
		if _, err := harness.LoadScenario(file); err != nil {
			errs = append(errs, ValidationError{
				File:    file,
				Code:    ErrCodeInvalidScenario,
				Message: err.Error(),
			})
		}
	}
	return errs
}

// outputValidateError reports a command-level failure (exit code 2).
func outputValidateError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.JSON() {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ %d scenario file(s) valid\n", result.Files)
	return nil
}

// outputValidationErrors reports invalid scenario files (exit code 1).
func outputValidationErrors(formatter *OutputFormatter, result ValidationResult) error {
	failure := NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))

	if formatter.JSON() {
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    result.Errors[0].Code,
				Message: result.Errors[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return failure
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, e := range result.Errors {
		fmt.Fprintf(formatter.Writer, "%s\n  %s: %s\n\n", e.File, e.Code, e.Message)
	}
	return failure
}
