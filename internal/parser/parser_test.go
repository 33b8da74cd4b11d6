package parser

import (
	"testing"

	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/lexer"
)

// parseProgram is the shared test helper: lex and parse src, returning the
// program and the parser (so callers can inspect Errors()).
func parseProgram(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	return prog, p
}

func requireNoErrors(t *testing.T, p *Parser) {
	t.Helper()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	if len(p.LexerErrors()) != 0 {
		t.Fatalf("unexpected lexer errors: %v", p.LexerErrors())
	}
}

func TestParseEmptyProgram(t *testing.T) {
	prog, p := parseProgram(t, "")
	requireNoErrors(t, p)
	if len(prog.Statements) != 0 {
		t.Errorf("expected 0 statements, got %d", len(prog.Statements))
	}
}

func TestParseProgramSkipsNilOnSynchronize(t *testing.T) {
	prog, p := parseProgram(t, ") var x = 1;")
	if len(p.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(p.Errors()), p.Errors())
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement after resync, got %d", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].(*ast.VarDecl); !ok {
		t.Errorf("expected VarDecl, got %T", prog.Statements[0])
	}
}
