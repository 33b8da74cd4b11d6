package parser

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/lexer"
)

// parseBlock parses a brace-delimited statement list: { stmt* }. Entry:
// cur is LBRACE. Exit: the RBRACE has been consumed.
func (p *Parser) parseBlock() []ast.Statement {
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	var stmts []ast.Statement
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expect(lexer.RBRACE)
	return stmts
}

// parseIf parses: if <condition> { ... } [else { ... }]
func (p *Parser) parseIf() ast.Statement {
	ln := p.c.cur.Line
	p.c.advance() // consume 'if'

	cond := p.parseExpression()
	then := p.parseBlock()

	stmt := &ast.If{Condition: cond, Then: then, Ln: ln}
	if p.curIs(lexer.ELSE) {
		p.c.advance()
		stmt.Else = p.parseBlock()
	}
	return stmt
}

// parseWhile parses: while <condition> { ... }
func (p *Parser) parseWhile() ast.Statement {
	ln := p.c.cur.Line
	p.c.advance() // consume 'while'

	cond := p.parseExpression()
	body := p.parseBlock()

	return &ast.While{Condition: cond, Body: body, Ln: ln}
}
