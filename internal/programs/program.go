// Package programs implements the GCD and sum console programs.
//
// A Program reads its input lines from a console.Console and returns a
// Result; printing the result line is left to the caller, which may render
// it as text or JSON.
package programs

import (
	"context"
	"fmt"
	"sort"

	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/console"
)

// Result is the outcome of a successful program run.
// String returns the line printed on the console.
type Result interface {
	fmt.Stringer
}

// Program is one interactive console program.
type Program interface {
	Name() string
	Run(ctx context.Context, c console.Console) (Result, error)
}

var registry = map[string]Program{
	GCD{}.Name(): GCD{},
	Sum{}.Name(): Sum{},
}

// Lookup returns the program registered under name.
func Lookup(name string) (Program, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names returns the registered program names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// readLine checks ctx before blocking on the console.
func readLine(ctx context.Context, c console.Console, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.ReadLine(prompt)
}
