package main

import (
	"fmt"
	"io"
	"os"

	"github.com/RomanKarsunkinWebPS2005/compiler-team/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the calc command tree and returns the process exit code.
// Interrupts are left to the runtime's default handling, so Ctrl-C at a
// prompt ends the process immediately.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}
