package parser

import (
	"strconv"

	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/lexer"
	"github.com/goxlang/goxlang/internal/types"
)

// parsePrimary parses the innermost expression forms: literals, parenthesized
// expressions, type casts, calls, named reads, and memory reads.
func (p *Parser) parsePrimary() ast.Expression {
	switch p.c.cur.Type {
	case lexer.INT:
		return p.parseIntLiteral()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.CHAR:
		return p.parseCharLiteral()
	case lexer.TRUE, lexer.FALSE:
		return p.parseBoolLiteral()
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.KW_INT, lexer.KW_FLOAT, lexer.KW_CHAR, lexer.KW_BOOL:
		return p.parseTypeCast()
	case lexer.IDENT:
		if p.peekIs(lexer.LPAREN) {
			return p.parseFuncCall()
		}
		return p.parseNamedRead()
	case lexer.BACKTICK:
		return p.parseMemRead()
	default:
		p.errorf("unexpected token %s %q in expression", p.c.cur.Type, p.c.cur.Literal)
		p.c.advance()
		return nil
	}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.c.cur
	p.c.advance()
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf("invalid integer literal %q", tok.Literal)
		return nil
	}
	return &ast.Literal{TokLiteral: tok.Literal, Kind: types.Int, Value: v, Ln: tok.Line}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.c.cur
	p.c.advance()
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf("invalid float literal %q", tok.Literal)
		return nil
	}
	return &ast.Literal{TokLiteral: tok.Literal, Kind: types.Float, Value: v, Ln: tok.Line}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	tok := p.c.cur
	p.c.advance()
	r, ok := lexer.DecodeCharLiteral(tok.Literal)
	if !ok {
		p.errorf("invalid character literal %q", tok.Literal)
		return nil
	}
	return &ast.Literal{TokLiteral: tok.Literal, Kind: types.Char, Value: r, Ln: tok.Line}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	tok := p.c.cur
	p.c.advance()
	return &ast.Literal{TokLiteral: tok.Literal, Kind: types.Bool, Value: tok.Type == lexer.TRUE, Ln: tok.Line}
}

// parseParenExpr parses a parenthesized expression, used both directly and
// as the disambiguator before a TypeCast's argument.
func (p *Parser) parseParenExpr() ast.Expression {
	p.c.advance() // consume '('
	expr := p.parseExpression()
	p.expect(lexer.RPAREN)
	return expr
}

// parseTypeCast parses `typeName ( expr )`.
func (p *Parser) parseTypeCast() ast.Expression {
	ln := p.c.cur.Line
	target := p.parseTypeName()
	if !p.expect(lexer.LPAREN) {
		return nil
	}
	expr := p.parseExpression()
	p.expect(lexer.RPAREN)
	return &ast.TypeCast{Expr: expr, TargetType: target, Ln: ln}
}

// parseFuncCall parses `name ( args )`. Shared by expression position and by
// parseIdentStatement for a call used as a bare statement.
func (p *Parser) parseFuncCall() ast.Expression {
	ln := p.c.cur.Line
	name := p.c.cur.Literal
	p.c.advance() // consume IDENT
	p.c.advance() // consume '('

	var args []ast.Expression
	if !p.curIs(lexer.RPAREN) {
		args = append(args, p.parseExpression())
		for p.curIs(lexer.COMMA) {
			p.c.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(lexer.RPAREN)
	return &ast.FuncCall{Name: name, Args: args, Ln: ln}
}

func (p *Parser) parseNamedRead() ast.Expression {
	tok := p.c.cur
	p.c.advance()
	return &ast.NamedRead{Name: tok.Literal, Ln: tok.Line}
}

// parseMemRead parses `` `addr `` in expression position.
func (p *Parser) parseMemRead() ast.Expression {
	ln := p.c.cur.Line
	p.c.advance() // consume '`'
	addr := p.parseMemAddress()
	return &ast.MemRead{AddrExpr: addr, Ln: ln}
}

// parseMemAddress parses the address expression following a backtick: a
// bare identifier, an integer literal, or a parenthesized expression.
// Shared by MemRead and the statement-level MemWrite.
func (p *Parser) parseMemAddress() ast.Expression {
	switch p.c.cur.Type {
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.IDENT:
		return p.parseNamedRead()
	case lexer.INT:
		return p.parseIntLiteral()
	default:
		p.errorf("expected identifier, integer literal or parenthesized expression after '`', got %s %q", p.c.cur.Type, p.c.cur.Literal)
		return nil
	}
}
