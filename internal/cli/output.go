package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Program failure or failed scenarios
	ExitCommandError = 2 // Command error (bad flags, missing directories, etc.)
)

// Error codes reported in JSON error responses.
const (
	ErrCodeGeneric   = "E001" // Generic/unknown error
	ErrCodeScanError = "E002" // Directory scan error
	ErrCodeNotFound  = "E005" // Path not found

	ErrCodeInvalidLiteral = "E201" // Input line is not an integer literal
	ErrCodeZeroDivisor    = "E202" // GCD divisor normalized to zero
	ErrCodeOutOfRange     = "E203" // Integer outside the int64 domain
	ErrCodeInputClosed    = "E204" // Input ended before a line was read

	ErrCodeInvalidScenario = "E301" // Scenario file failed to load
	ErrCodeTestFailed      = "E_TEST_FAILED"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure for errors that are not
// ExitErrors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results to stdout as a console line or a
// CLIResponse document. Diagnostics never go through it; they are logged
// with slog on stderr.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Verbose bool   // print error details in text mode
	TraceID string // run id attached to JSON responses
}

// newFormatter builds the formatter for cmd's stdout.
func newFormatter(opts *RootOptions, cmd *cobra.Command, traceID string) *OutputFormatter {
	return &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
		TraceID: traceID,
	}
}

// JSON reports whether responses are JSON documents.
func (f *OutputFormatter) JSON() bool {
	return f.Format == "json"
}

// CLIResponse is the JSON document printed by every command.
type CLIResponse struct {
	Status  string    `json:"status"`             // "ok" or "error"
	Data    any       `json:"data,omitempty"`     // result payload
	Error   *CLIError `json:"error,omitempty"`    // set when Status is "error"
	TraceID string    `json:"trace_id,omitempty"` // run id of the invocation
}

// CLIError is the error part of a CLIResponse.
type CLIError struct {
	Code    string `json:"code"` // E201 invalid literal, E202 zero divisor, ...
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success prints data. In text mode data goes through fmt.Println, so a
// program result prints its console line.
func (f *OutputFormatter) Success(data any) error {
	if f.JSON() {
		return f.encode(CLIResponse{Status: "ok", Data: data, TraceID: f.TraceID})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error prints an error response. Text mode prints "Error [code]: message"
// and, when verbose, the details.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.JSON() {
		return f.encode(CLIResponse{
			Status:  "error",
			Error:   &CLIError{Code: code, Message: message, Details: details},
			TraceID: f.TraceID,
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

func (f *OutputFormatter) encode(response CLIResponse) error {
	return json.NewEncoder(f.Writer).Encode(response)
}
