package parser

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/lexer"
)

// parseStatement dispatches on the current token to the matching statement
// parser. It returns nil (after recording an error and synchronizing) for
// anything that cannot start a statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.c.cur.Type {
	case lexer.VAR:
		return p.parseVarDecl(false)
	case lexer.CONST:
		return p.parseVarDecl(true)
	case lexer.FUNC:
		return p.parseFuncDef()
	case lexer.IMPORT:
		return p.parseFuncImport()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.CONTINUE:
		return p.parseContinue()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.IDENT:
		return p.parseIdentStatement()
	case lexer.BACKTICK:
		return p.parseMemWriteStatement()
	default:
		p.errorf("unexpected token %s %q at start of statement", p.c.cur.Type, p.c.cur.Literal)
		p.c.advance()
		p.synchronize()
		return nil
	}
}

func (p *Parser) parseBreak() ast.Statement {
	ln := p.c.cur.Line
	p.c.advance()
	if !p.expect(lexer.SEMICOLON) {
		p.synchronize()
		return nil
	}
	return &ast.Break{Ln: ln}
}

func (p *Parser) parseContinue() ast.Statement {
	ln := p.c.cur.Line
	p.c.advance()
	if !p.expect(lexer.SEMICOLON) {
		p.synchronize()
		return nil
	}
	return &ast.Continue{Ln: ln}
}

func (p *Parser) parseReturn() ast.Statement {
	ln := p.c.cur.Line
	p.c.advance()
	ret := &ast.Return{Ln: ln}
	if !p.curIs(lexer.SEMICOLON) {
		ret.Expr = p.parseExpression()
	}
	if !p.expect(lexer.SEMICOLON) {
		p.synchronize()
		return nil
	}
	return ret
}

func (p *Parser) parsePrint() ast.Statement {
	ln := p.c.cur.Line
	p.c.advance()
	expr := p.parseExpression()
	if !p.expect(lexer.SEMICOLON) {
		p.synchronize()
		return nil
	}
	return &ast.Print{Expr: expr, Ln: ln}
}

// parseIdentStatement disambiguates an identifier-led statement: a call
// (IDENT LPAREN ...) used as a statement, or an assignment to a named
// location (IDENT = expr ;).
func (p *Parser) parseIdentStatement() ast.Statement {
	ln := p.c.cur.Line
	name := p.c.cur.Literal

	if p.peekIs(lexer.LPAREN) {
		call := p.parseFuncCall()
		if !p.expect(lexer.SEMICOLON) {
			p.synchronize()
			return nil
		}
		return &ast.ExpressionStatement{Expression: call, Ln: ln}
	}

	p.c.advance() // consume IDENT
	if !p.expect(lexer.ASSIGN) {
		p.synchronize()
		return nil
	}
	expr := p.parseExpression()
	if !p.expect(lexer.SEMICOLON) {
		p.synchronize()
		return nil
	}
	return &ast.NamedWrite{Name: name, Expr: expr, Ln: ln}
}

// parseMemWriteStatement parses an assignment to a memory location:
// `` `addr = value; `` where addr is a bare identifier, an integer literal,
// or a parenthesized expression.
func (p *Parser) parseMemWriteStatement() ast.Statement {
	ln := p.c.cur.Line
	p.c.advance() // consume '`'
	addr := p.parseMemAddress()
	if !p.expect(lexer.ASSIGN) {
		p.synchronize()
		return nil
	}
	expr := p.parseExpression()
	if !p.expect(lexer.SEMICOLON) {
		p.synchronize()
		return nil
	}
	return &ast.MemWrite{AddrExpr: addr, Expr: expr, Ln: ln}
}
