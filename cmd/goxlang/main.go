// Command goxlang lexes, parses, checks, lowers, and executes GoxLang
// programs.
package main

import (
	"fmt"
	"os"

	"github.com/goxlang/goxlang/cmd/goxlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	if ec, ok := err.(cmd.ExitCoder); ok {
		return ec.ExitCode()
	}
	return 1
}
