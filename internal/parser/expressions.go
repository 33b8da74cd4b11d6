package parser

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/lexer"
)

// parseExpression parses a full expression at the lowest precedence
// (logical-or).
func (p *Parser) parseExpression() ast.Expression {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() ast.Expression {
	ln := p.c.cur.Line
	left := p.parseLogicalAnd()
	for p.curIs(lexer.OR) {
		op := p.c.cur.Literal
		p.c.advance()
		right := p.parseLogicalAnd()
		left = &ast.BinaryOp{Left: left, Right: right, Operator: op, Ln: ln}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	ln := p.c.cur.Line
	left := p.parseEquality()
	for p.curIs(lexer.AND) {
		op := p.c.cur.Literal
		p.c.advance()
		right := p.parseEquality()
		left = &ast.BinaryOp{Left: left, Right: right, Operator: op, Ln: ln}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	ln := p.c.cur.Line
	left := p.parseRelational()
	for p.curIs(lexer.EQ) || p.curIs(lexer.NOT_EQ) {
		op := p.c.cur.Literal
		p.c.advance()
		right := p.parseRelational()
		left = &ast.BinaryOp{Left: left, Right: right, Operator: op, Ln: ln}
	}
	return left
}

func (p *Parser) parseRelational() ast.Expression {
	ln := p.c.cur.Line
	left := p.parseAdditive()
	for p.curIs(lexer.LT) || p.curIs(lexer.GT) || p.curIs(lexer.LE) || p.curIs(lexer.GE) {
		op := p.c.cur.Literal
		p.c.advance()
		right := p.parseAdditive()
		left = &ast.BinaryOp{Left: left, Right: right, Operator: op, Ln: ln}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	ln := p.c.cur.Line
	left := p.parseMultiplicative()
	for p.curIs(lexer.PLUS) || p.curIs(lexer.MINUS) {
		op := p.c.cur.Literal
		p.c.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryOp{Left: left, Right: right, Operator: op, Ln: ln}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	ln := p.c.cur.Line
	left := p.parseUnary()
	for p.curIs(lexer.ASTERISK) || p.curIs(lexer.SLASH) {
		op := p.c.cur.Literal
		p.c.advance()
		right := p.parseUnary()
		left = &ast.BinaryOp{Left: left, Right: right, Operator: op, Ln: ln}
	}
	return left
}

// parseUnary handles the prefix operators + - ^ ! ; ^ is memory-grow, never
// a binary operator (REDESIGN FLAG #3).
func (p *Parser) parseUnary() ast.Expression {
	switch p.c.cur.Type {
	case lexer.PLUS, lexer.MINUS, lexer.CARET, lexer.NOT:
		ln := p.c.cur.Line
		op := p.c.cur.Literal
		p.c.advance()
		operand := p.parseUnary()
		return &ast.UnaryOp{Operand: operand, Operator: op, Ln: ln}
	default:
		return p.parsePrimary()
	}
}
