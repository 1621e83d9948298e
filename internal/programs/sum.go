package programs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/console"
	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/numfmt"
	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/summation"
)

const PromptNumbers = "Enter numbers in one line separated by spaces: "

// NoNumbersMessage is printed when no token of the line parsed.
const NoNumbersMessage = "No valid numbers were entered."

// SumResult is the parsed prefix of the line and its sum.
type SumResult struct {
	Values []float64
	Total  float64

	// StoppedAt is the token that ended parsing, empty if none did.
	StoppedAt string
}

// Count returns the number of values summed.
func (r SumResult) Count() int {
	return len(r.Values)
}

func (r SumResult) String() string {
	if r.Count() == 0 {
		return NoNumbersMessage
	}
	return fmt.Sprintf("Sum of %d numbers: %s", r.Count(), numfmt.Float(r.Total))
}

// MarshalJSON renders the total as its console text, since JSON numbers
// cannot hold inf or nan.
func (r SumResult) MarshalJSON() ([]byte, error) {
	out := struct {
		Count     int    `json:"count"`
		Total     string `json:"total,omitempty"`
		StoppedAt string `json:"stopped_at,omitempty"`
		Message   string `json:"message"`
	}{
		Count:     r.Count(),
		StoppedAt: r.StoppedAt,
		Message:   r.String(),
	}
	if r.Count() > 0 {
		out.Total = numfmt.Float(r.Total)
	}
	return json.Marshal(out)
}

// Sum reads one line of numbers and sums them up to the first token that
// is not a number.
type Sum struct{}

func (Sum) Name() string { return "sum" }

func (Sum) Run(ctx context.Context, c console.Console) (Result, error) {
	line, err := readLine(ctx, c, PromptNumbers)
	if err != nil {
		return nil, err
	}

	seq := summation.Parse(line)
	stoppedAt, _, _ := seq.Stopped()
	return SumResult{
		Values:    seq.Values,
		Total:     seq.Sum(),
		StoppedAt: stoppedAt,
	}, nil
}
