package cmd

import (
	"fmt"
	"os"

	"github.com/goxlang/goxlang/internal/bytecode"
	"github.com/goxlang/goxlang/internal/errors"
	"github.com/spf13/cobra"
)

var (
	runEvalExpr  string
	runDumpAST   bool
	runDumpIR    bool
	runDumpIRJSON bool
	runTrace     bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a GoxLang file or expression",
	Long: `Execute a GoxLang program from a file or an inline expression.

Examples:
  goxlang run script.gox
  goxlang run -e "print 1 + 2;"
  goxlang run --dump-ir script.gox
  goxlang run --trace script.gox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline source instead of reading from file")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "print the parsed syntax tree before executing")
	runCmd.Flags().BoolVar(&runDumpIR, "dump-ir", false, "print the lowered IR before executing")
	runCmd.Flags().BoolVar(&runDumpIRJSON, "dump-ir-json", false, "print the lowered IR as JSON before executing")
	runCmd.Flags().BoolVar(&runTrace, "trace", runConfig.Trace, "print every executed instruction to stderr as it dispatches")
}

func runRun(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(runEvalExpr, args)
	if err != nil {
		return err
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

	if runDumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	module := lowerProgram(sink, program)
	if sink.Count() > 0 {
		return fmt.Errorf("%s", sink.Format(true, !noColor))
	}

	if runDumpIR {
		fmt.Println("IR:")
		fmt.Print(bytecode.Disassemble(module))
		fmt.Println()
	}
	if runDumpIRJSON {
		doc, err := bytecode.ModuleJSON(module)
		if err != nil {
			return fmt.Errorf("failed to render IR as JSON: %w", err)
		}
		fmt.Println("IR (JSON):")
		fmt.Println(doc)
		fmt.Println()
	}

	memSize := runConfig.MemorySize
	if memSize <= 0 {
		memSize = defaultMemorySize
	}
	vm := bytecode.NewVM(os.Stdout).WithMemorySize(memSize)
	if runTrace {
		fmt.Fprintf(os.Stderr, "[trace] executing %s\n", filename)
		vm = vm.WithTrace(os.Stderr)
	}
	if _, err := vm.Run(module); err != nil {
		if re, ok := err.(*bytecode.RuntimeError); ok && len(re.Trace) > 0 {
			fmt.Fprintln(os.Stderr, "call stack:")
			fmt.Fprintln(os.Stderr, re.Trace.String())
		}
		return runtimeExitError("%s", err)
	}

	return nil
}
