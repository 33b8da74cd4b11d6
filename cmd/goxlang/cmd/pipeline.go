package cmd

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/bytecode"
	"github.com/goxlang/goxlang/internal/errors"
	"github.com/goxlang/goxlang/internal/lexer"
	"github.com/goxlang/goxlang/internal/parser"
	"github.com/goxlang/goxlang/internal/semantic"
)

// parseSource lexes and parses input, folding any lexer and parser errors
// into sink in report order. The returned program is always non-nil;
// callers must still check sink.Count() before trusting it past this stage.
func parseSource(sink *errors.Sink, input string) *ast.Program {
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	for _, e := range p.LexerErrors() {
		sink.Report(e.Line, "%s", e.Message)
	}
	for _, e := range p.Errors() {
		sink.Report(e.Line, "%s", e.Message)
	}
	return program
}

// checkProgram runs semantic analysis over program, reporting into sink.
func checkProgram(sink *errors.Sink, program *ast.Program) {
	semantic.NewAnalyzer(sink).Analyze(program)
}

// lowerProgram lowers a checked program into its IR Module, reporting into
// sink. Callers should only call this once sink.Count() is still 0 after
// checkProgram.
func lowerProgram(sink *errors.Sink, program *ast.Program) *bytecode.Module {
	return bytecode.NewLowerer(sink).Lower(program)
}
