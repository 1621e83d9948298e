package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/console"
	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/euclid"
	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/programs"
)

// NewGCDCommand creates the gcd command.
func NewGCDCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gcd [a b]",
		Short: "Print the greatest common divisor of two integers",
		Long: `Read two integers and print their greatest common divisor.

Without arguments both numbers are prompted for on standard input.
With two arguments they are used as the two input lines; put "--" before
negative numbers so they are not read as flags.

A number that is not an integer literal, or a zero operand, ends the
program with an error (exit code 1).

Examples:
  calc gcd
  calc gcd 12 18
  calc gcd -- -8 12
  calc gcd 12 18 --format json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var script []string
			if len(args) == 2 {
				script = args
			}
			return runProgram(rootOpts, programs.GCD{}, script, cmd)
		},
	}

	return cmd
}

// NewSumCommand creates the sum command.
func NewSumCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [numbers...]",
		Short: "Print the sum of a line of numbers",
		Long: `Read one line of space-separated numbers and print their sum.

Parsing stops at the first token that is not a number; that token and
everything after it are ignored. When nothing parses, the program reports
that no valid numbers were entered.

Without arguments the line is prompted for on standard input. With
arguments they are joined with single spaces and used as the line.

Examples:
  calc sum
  calc sum 1 2 3
  calc sum 1 2 abc 4
  calc sum -- -1.5 2`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var script []string
			if len(args) > 0 {
				script = []string{strings.Join(args, " ")}
			}
			return runProgram(rootOpts, programs.Sum{}, script, cmd)
		},
	}

	return cmd
}

// runProgram runs program once. A nil script reads from the command's
// input; otherwise the script answers the prompts and nothing is prompted.
// In JSON mode prompts go to stderr so stdout carries only the response.
func runProgram(opts *RootOptions, program programs.Program, script []string, cmd *cobra.Command) error {
	runID := opts.runIDs().Generate()
	formatter := newFormatter(opts, cmd, runID)
	logger := slog.Default().With("program", program.Name(), "run_id", runID)

	var c console.Console
	if script != nil {
		c = console.NewScripted(script...)
	} else {
		promptWriter := cmd.OutOrStdout()
		if opts.Format == "json" {
			promptWriter = cmd.ErrOrStderr()
		}
		c = console.NewStdio(cmd.InOrStdin(), promptWriter)
	}

	logger.Debug("program started", "scripted", script != nil)
	result, err := program.Run(commandContext(cmd), c)
	if err != nil {
		logger.Debug("program failed", "error", err)
		if formatter.JSON() {
			_ = formatter.Error(programErrorCode(err), err.Error(), nil)
		}
		return WrapExitError(ExitFailure, program.Name(), err)
	}

	logger.Debug("program finished", "result", result.String())
	return formatter.Success(result)
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// programErrorCode maps a program error to its JSON error code.
func programErrorCode(err error) string {
	switch {
	case errors.Is(err, euclid.ErrInvalidLiteral):
		return ErrCodeInvalidLiteral
	case errors.Is(err, euclid.ErrZeroDivisor):
		return ErrCodeZeroDivisor
	case errors.Is(err, euclid.ErrOutOfRange):
		return ErrCodeOutOfRange
	case errors.Is(err, console.ErrInputClosed):
		return ErrCodeInputClosed
	default:
		return ErrCodeGeneric
	}
}
