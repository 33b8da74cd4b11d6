package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// noColor and runConfig are populated in init: runConfig from an optional
// .goxlang.yaml, then noColor from it, the NO_COLOR env var, and finally
// the --no-color flag, in that override order.
var (
	noColor   bool
	runConfig RunConfig
)

var rootCmd = &cobra.Command{
	Use:   "goxlang",
	Short: "GoxLang compiler and virtual machine",
	Long: `goxlang is a small statically-typed imperative language: int/float/
char/bool, variables and constants, functions, if/while/break/continue/
return, print, and raw memory access via backtick-addressing with a unary
caret grow operator.

This CLI lexes, parses, checks, lowers to a structured stack-machine IR, and
executes that IR — or stops at any intermediate stage for inspection.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	cfg, err := loadRunConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load .goxlang.yaml: %v\n", err)
		cfg = defaultRunConfig()
	}
	runConfig = cfg
	noColor = cfg.NoColor || os.Getenv("NO_COLOR") != ""

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", noColor, "disable colored diagnostic output")
}
