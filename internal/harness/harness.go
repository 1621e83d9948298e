package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/console"
	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/programs"
	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/testutil"
)

// Harness executes scenarios with a deterministic clock.
type Harness struct {
	clock  *testutil.DeterministicClock
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger used for run diagnostics.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		clock:  testutil.NewDeterministicClock(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default Harness.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	return New(opts...).Run(context.Background(), scenario)
}

// Run executes the scenario's program on its scripted input and checks the
// transcript against the expectation.
//
// A program that ends with an error is not a harness error: the error is
// recorded in the trace and judged against expect.error. The returned error
// is reserved for scenarios that cannot run at all.
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	program, ok := programs.Lookup(scenario.Program)
	if !ok {
		return nil, fmt.Errorf("unknown program %q (available: %s)",
			scenario.Program, strings.Join(programs.Names(), ", "))
	}

	logger := h.logger.With("scenario", scenario.Name, "program", program.Name(), "run_id", scenario.EffectiveRunID())
	logger.Debug("running scenario", "input_lines", len(scenario.Input))

	h.clock.Reset()
	script := console.NewScripted(scenario.Input...)
	recorder := console.NewRecorder(script, h.clock)

	out, runErr := program.Run(ctx, recorder)

	result := NewResult()
	for _, e := range recorder.Events() {
		result.AddTrace(string(e.Kind), e.Text, e.Seq)
	}
	if runErr != nil {
		result.AddTrace(EventError, runErr.Error(), h.clock.Next())
		logger.Debug("program ended with error", "error", runErr)
	} else {
		result.AddTrace(EventOutput, out.String(), h.clock.Next())
	}

	checkExpectation(result, scenario.Expect, out, runErr)

	if n := script.Remaining(); n > 0 {
		result.AddError(fmt.Sprintf("%d input line(s) were never read", n))
	}

	logger.Debug("scenario finished", "pass", result.Pass)
	return result, nil
}

func checkExpectation(result *Result, expect Expectation, out programs.Result, runErr error) {
	switch {
	case expect.Output != "" && runErr != nil:
		result.AddError((&ExpectationError{
			Field:    "output",
			Expected: fmt.Sprintf("%q", expect.Output),
			Actual:   fmt.Sprintf("error %q", runErr.Error()),
		}).Error())
	case expect.Output != "" && out.String() != expect.Output:
		result.AddError((&ExpectationError{
			Field:    "output",
			Expected: fmt.Sprintf("%q", expect.Output),
			Actual:   fmt.Sprintf("%q", out.String()),
		}).Error())
	case expect.Error != "" && runErr == nil:
		result.AddError((&ExpectationError{
			Field:    "error",
			Expected: fmt.Sprintf("error containing %q", expect.Error),
			Actual:   fmt.Sprintf("output %q", out.String()),
		}).Error())
	case expect.Error != "" && !strings.Contains(runErr.Error(), expect.Error):
		result.AddError((&ExpectationError{
			Field:    "error",
			Expected: fmt.Sprintf("error containing %q", expect.Error),
			Actual:   fmt.Sprintf("error %q", runErr.Error()),
		}).Error())
	}
}

// ExpectationError describes a transcript that did not end as expected.
type ExpectationError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("expect.%s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}
