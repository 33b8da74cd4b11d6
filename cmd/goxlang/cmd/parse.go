package cmd

import (
	"fmt"

	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/errors"
	"github.com/spf13/cobra"
)

var (
	parseEvalExpr string
	parseDumpTree bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a GoxLang file and print its syntax tree",
	Long: `Lex and parse a GoxLang program and print the resulting syntax tree.

This stops before semantic analysis: a program that parses cleanly but
wouldn't type-check still prints a tree here.

Examples:
  goxlang parse script.gox
  goxlang parse -e "print 1 + 2;"
  goxlang parse --dump-tree script.gox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline source instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpTree, "dump-tree", false, "print an indented node-by-node tree instead of reconstructed source")
}

func runParse(_ *cobra.Command, args []string) error {
	input, _, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	sink := errors.NewSink(input)
	program := parseSource(sink, input)
	if sink.Count() > 0 {
		return fmt.Errorf("%s", sink.Format(true, !noColor))
	}

	if parseDumpTree {
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}
	return nil
}

// dumpASTNode recursively prints node as an indented tree, one node per
// line. Unrecognized node types fall back to their String() form so the
// dump degrades gracefully rather than silently dropping a subtree.
func dumpASTNode(node ast.Node, indent int) {
	pad := indentStr(indent)

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpASTNode(s, indent+1)
		}
	case *ast.VarDecl:
		kind := "var"
		if n.IsConstant {
			kind = "const"
		}
		fmt.Printf("%s%s %s\n", pad, kind, n.Name)
		if n.Initializer != nil {
			dumpASTNode(n.Initializer, indent+1)
		}
	case *ast.FuncDef:
		fmt.Printf("%sFuncDef %s (%d params)\n", pad, n.Name, len(n.Parameters))
		for _, s := range n.Body {
			dumpASTNode(s, indent+1)
		}
	case *ast.FuncImport:
		fmt.Printf("%sFuncImport %s (%d params)\n", pad, n.Name, len(n.Parameters))
	case *ast.If:
		fmt.Printf("%sIf\n", pad)
		dumpASTNode(n.Condition, indent+1)
		fmt.Printf("%s  Then:\n", pad)
		for _, s := range n.Then {
			dumpASTNode(s, indent+2)
		}
		if n.Else != nil {
			fmt.Printf("%s  Else:\n", pad)
			for _, s := range n.Else {
				dumpASTNode(s, indent+2)
			}
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", pad)
		dumpASTNode(n.Condition, indent+1)
		for _, s := range n.Body {
			dumpASTNode(s, indent+1)
		}
	case *ast.Break:
		fmt.Printf("%sBreak\n", pad)
	case *ast.Continue:
		fmt.Printf("%sContinue\n", pad)
	case *ast.Return:
		fmt.Printf("%sReturn\n", pad)
		if n.Expr != nil {
			dumpASTNode(n.Expr, indent+1)
		}
	case *ast.Print:
		fmt.Printf("%sPrint\n", pad)
		dumpASTNode(n.Expr, indent+1)
	case *ast.NamedWrite:
		fmt.Printf("%sNamedWrite %s\n", pad, n.Name)
		dumpASTNode(n.Expr, indent+1)
	case *ast.MemWrite:
		fmt.Printf("%sMemWrite\n", pad)
		fmt.Printf("%s  Addr:\n", pad)
		dumpASTNode(n.AddrExpr, indent+2)
		fmt.Printf("%s  Value:\n", pad)
		dumpASTNode(n.Expr, indent+2)
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", pad)
		dumpASTNode(n.Expression, indent+1)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", pad, n.Value)
	case *ast.Literal:
		fmt.Printf("%sLiteral: %v\n", pad, n.Value)
	case *ast.BinaryOp:
		fmt.Printf("%sBinaryOp (%s)\n", pad, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.UnaryOp:
		fmt.Printf("%sUnaryOp (%s)\n", pad, n.Operator)
		dumpASTNode(n.Operand, indent+1)
	case *ast.TypeCast:
		fmt.Printf("%sTypeCast (%s)\n", pad, n.TargetType)
		dumpASTNode(n.Expr, indent+1)
	case *ast.FuncCall:
		fmt.Printf("%sFuncCall %s (%d args)\n", pad, n.Name, len(n.Args))
		for _, a := range n.Args {
			dumpASTNode(a, indent+1)
		}
	case *ast.NamedRead:
		fmt.Printf("%sNamedRead %s\n", pad, n.Name)
	case *ast.MemRead:
		fmt.Printf("%sMemRead\n", pad)
		dumpASTNode(n.AddrExpr, indent+1)
	default:
		fmt.Printf("%s%T: %s\n", pad, node, node.String())
	}
}

func indentStr(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "  "
	}
	return s
}
