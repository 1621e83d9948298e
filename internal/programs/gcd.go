package programs

import (
	"context"
	"fmt"

	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/console"
	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/euclid"
)

const (
	PromptFirstNumber  = "Enter first number: "
	PromptSecondNumber = "Enter second number: "
)

// GCDResult holds the operands as entered and their greatest common divisor.
type GCDResult struct {
	A   int64 `json:"a"`
	B   int64 `json:"b"`
	GCD int64 `json:"gcd"`
}

func (r GCDResult) String() string {
	return fmt.Sprintf("GCD(%d, %d) = %d", r.A, r.B, r.GCD)
}

// GCD reads two integers and computes their greatest common divisor.
//
// Invalid literals and a zero operand end the run with an error; there is
// no re-prompting.
type GCD struct{}

func (GCD) Name() string { return "gcd" }

func (GCD) Run(ctx context.Context, c console.Console) (Result, error) {
	a, err := readInteger(ctx, c, PromptFirstNumber)
	if err != nil {
		return nil, err
	}
	b, err := readInteger(ctx, c, PromptSecondNumber)
	if err != nil {
		return nil, err
	}

	g, err := euclid.GCD(a, b)
	if err != nil {
		return nil, err
	}
	return GCDResult{A: a, B: b, GCD: g}, nil
}

func readInteger(ctx context.Context, c console.Console, prompt string) (int64, error) {
	line, err := readLine(ctx, c, prompt)
	if err != nil {
		return 0, err
	}
	return euclid.ParseInteger(line)
}
