package cmd

import (
	"fmt"
	"os"

	"github.com/goxlang/goxlang/internal/bytecode"
	"github.com/goxlang/goxlang/internal/errors"
	"github.com/spf13/cobra"
)

var (
	compileJSON    bool
	compileVerbose bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a GoxLang file to its IR and print it",
	Long: `Lex, parse, check, and lower a GoxLang program, printing the resulting
structured stack-machine IR.

Examples:
  goxlang compile script.gox
  goxlang compile --json script.gox`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().BoolVar(&compileJSON, "json", false, "print the IR as JSON instead of the textual dump")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "print stage progress to stderr")
}

func runCompile(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "compiling %s...\n", filename)
	}

	sink := errors.NewSink(input)
	program := parseSource(sink, input)
	if sink.Count() > 0 {
		return fmt.Errorf("%s", sink.Format(true, !noColor))
	}

	checkProgram(sink, program)
	if sink.Count() > 0 {
		return fmt.Errorf("%s", sink.Format(true, !noColor))
	}

	module := lowerProgram(sink, program)
	if sink.Count() > 0 {
		return fmt.Errorf("%s", sink.Format(true, !noColor))
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "lowered %d function(s), %d global(s)\n", len(module.Functions), len(module.Globals))
	}

	if compileJSON {
		doc, err := bytecode.ModuleJSON(module)
		if err != nil {
			return fmt.Errorf("failed to render IR as JSON: %w", err)
		}
		fmt.Println(doc)
		return nil
	}

	fmt.Print(bytecode.Disassemble(module))
	return nil
}
