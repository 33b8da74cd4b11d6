package lexer

import "fmt"

// Token is a single lexical unit: its class, its source text, and the
// 1-based source line it started on. GoxLang diagnostics are reported by
// line only, so unlike a typical scanner this Token carries no column or
// byte offset.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

// NewToken builds a Token at the given line.
func NewToken(tokenType TokenType, literal string, line int) Token {
	return Token{Type: tokenType, Literal: literal, Line: line}
}

// String renders a Token for diagnostics and test failures.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q) @%d", t.Type, t.Literal, t.Line)
}
