package cmd

import (
	"fmt"
	"os"

	"github.com/goxlang/goxlang/internal/lexer"
	"github.com/spf13/cobra"
)

var lexEvalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print a GoxLang file's token stream",
	Long: `Tokenize a GoxLang program and print the resulting tokens, one per line.

Examples:
  goxlang lex script.gox
  goxlang lex -e "print 1 + 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline source instead of reading from file")
}

func runLex(_ *cobra.Command, args []string) error {
	input, _, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		fmt.Printf("%-12s %q (line %d)\n", tok.Type, tok.Literal, tok.Line)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return nil
}

// readSource resolves a subcommand's input: -e inline source if given, else
// the single positional file argument. filename is "<eval>" for inline
// source, used only for diagnostic display.
func readSource(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline source")
}
