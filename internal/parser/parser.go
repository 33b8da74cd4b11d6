package parser

import (
	"fmt"

	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/lexer"
)

// Parser turns a GoxLang token stream into an internal/ast tree by
// recursive descent. A syntax error is fatal for the statement currently
// being parsed: parseStatement records a ParseError and synchronizes to the
// next likely statement boundary rather than aborting the whole parse, so a
// single source file can surface more than one error per run.
type Parser struct {
	c      *cursor
	errors []ParseError
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{c: newCursor(l)}
}

// Errors returns the syntax errors accumulated so far, in report order.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// LexerErrors forwards the lexer's own accumulated errors; callers should
// check both this and Errors() for a complete diagnostic picture.
func (p *Parser) LexerErrors() []lexer.LexerError {
	return p.c.l.Errors()
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, ParseError{Line: p.c.cur.Line, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.c.cur.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.c.peek.Type == t }

// expect advances past the current token if it matches t, otherwise records
// a descriptive error naming the offending token and line and leaves the
// cursor in place.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.curIs(t) {
		p.c.advance()
		return true
	}
	p.errorf("expected %s, got %s %q", t, p.c.cur.Type, p.c.cur.Literal)
	return false
}

// isStatementStart reports whether t can begin a new statement; used by
// synchronize to find a safe point to resume parsing after an error.
func isStatementStart(t lexer.TokenType) bool {
	switch t {
	case lexer.VAR, lexer.CONST, lexer.FUNC, lexer.IMPORT, lexer.IF, lexer.WHILE,
		lexer.BREAK, lexer.CONTINUE, lexer.RETURN, lexer.PRINT, lexer.BACKTICK,
		lexer.IDENT, lexer.RBRACE:
		return true
	}
	return false
}

// synchronize advances the cursor past the rest of a broken statement,
// stopping just after a semicolon or right before a token that plausibly
// starts the next one. This keeps one error from cascading into a wall of
// follow-on errors for the remainder of the file.
func (p *Parser) synchronize() {
	for !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMICOLON) {
			p.c.advance()
			return
		}
		if isStatementStart(p.c.cur.Type) {
			return
		}
		p.c.advance()
	}
}

// ParseProgram parses an entire source file and returns the root node.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	return program
}
