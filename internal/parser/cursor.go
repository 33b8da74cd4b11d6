package parser

import "github.com/goxlang/goxlang/internal/lexer"

// cursor is a one-token-lookahead window over the lexer's token stream.
// GoxLang's grammar never needs more than a single token of lookahead (the
// furthest any rule peeks is "is the token after this identifier a left
// paren"), so unlike the teacher's arbitrary-depth, backtracking
// TokenCursor this only ever tracks current and next.
type cursor struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

func newCursor(l *lexer.Lexer) *cursor {
	c := &cursor{l: l}
	c.advance()
	c.advance()
	return c
}

// advance shifts peek into cur and pulls a fresh token from the lexer.
func (c *cursor) advance() {
	c.cur = c.peek
	c.peek = c.l.NextToken()
}
