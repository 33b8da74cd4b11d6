package parser

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/lexer"
	"github.com/goxlang/goxlang/internal/types"
)

// isTypeNameToken reports whether t is one of GoxLang's four type-name
// keywords.
func isTypeNameToken(t lexer.TokenType) bool {
	switch t {
	case lexer.KW_INT, lexer.KW_FLOAT, lexer.KW_CHAR, lexer.KW_BOOL:
		return true
	}
	return false
}

// parseTypeName consumes one of the type-name keywords and returns the
// matching primitive, or types.Invalid (with an error recorded) if the
// current token isn't one.
func (p *Parser) parseTypeName() types.Primitive {
	var t types.Primitive
	switch p.c.cur.Type {
	case lexer.KW_INT:
		t = types.Int
	case lexer.KW_FLOAT:
		t = types.Float
	case lexer.KW_CHAR:
		t = types.Char
	case lexer.KW_BOOL:
		t = types.Bool
	default:
		p.errorf("expected a type name, got %s %q", p.c.cur.Type, p.c.cur.Literal)
		return types.Invalid
	}
	p.c.advance()
	return t
}

// parseVarDecl parses `var name [type] [= expr] ;` or, for a const,
// `const name type = expr ;` — const requires both the type and the
// initializer; var accepts either or both, inferring whatever is omitted.
func (p *Parser) parseVarDecl(isConstant bool) ast.Statement {
	ln := p.c.cur.Line
	p.c.advance() // consume 'var' / 'const'

	if !p.curIs(lexer.IDENT) {
		p.errorf("expected identifier, got %s %q", p.c.cur.Type, p.c.cur.Literal)
		p.synchronize()
		return nil
	}
	name := p.c.cur.Literal
	p.c.advance()

	decl := &ast.VarDecl{Name: name, IsConstant: isConstant, DeclaredType: types.Invalid, Ln: ln}

	if isTypeNameToken(p.c.cur.Type) {
		decl.DeclaredType = p.parseTypeName()
	} else if isConstant {
		p.errorf("const %q requires an explicit type", name)
	}

	if p.curIs(lexer.ASSIGN) {
		p.c.advance()
		decl.Initializer = p.parseExpression()
	} else if isConstant {
		p.errorf("const %q requires an initializer", name)
	}

	if !p.expect(lexer.SEMICOLON) {
		p.synchronize()
		return nil
	}
	return decl
}

// parseParameterList parses `( [name type (, name type)*] )`.
func (p *Parser) parseParameterList() []*ast.Parameter {
	if !p.expect(lexer.LPAREN) {
		return nil
	}
	var params []*ast.Parameter
	if p.curIs(lexer.RPAREN) {
		p.c.advance()
		return params
	}
	for {
		if !p.curIs(lexer.IDENT) {
			p.errorf("expected parameter name, got %s %q", p.c.cur.Type, p.c.cur.Literal)
			break
		}
		name := p.c.cur.Literal
		p.c.advance()
		typ := p.parseTypeName()
		params = append(params, &ast.Parameter{Name: name, Type: typ})

		if p.curIs(lexer.COMMA) {
			p.c.advance()
			continue
		}
		break
	}
	p.expect(lexer.RPAREN)
	return params
}

// parseFuncDef parses: func name(params) [returnType] { ... }
func (p *Parser) parseFuncDef() ast.Statement {
	ln := p.c.cur.Line
	p.c.advance() // consume 'func'

	if !p.curIs(lexer.IDENT) {
		p.errorf("expected function name, got %s %q", p.c.cur.Type, p.c.cur.Literal)
		p.synchronize()
		return nil
	}
	name := p.c.cur.Literal
	p.c.advance()

	params := p.parseParameterList()

	retType := types.Invalid
	if isTypeNameToken(p.c.cur.Type) {
		retType = p.parseTypeName()
	}

	body := p.parseBlock()
	return &ast.FuncDef{Name: name, Parameters: params, ReturnType: retType, Body: body, Ln: ln}
}

// parseFuncImport parses: import func name(params) [returnType] ;
func (p *Parser) parseFuncImport() ast.Statement {
	ln := p.c.cur.Line
	p.c.advance() // consume 'import'

	if !p.expect(lexer.FUNC) {
		p.synchronize()
		return nil
	}
	if !p.curIs(lexer.IDENT) {
		p.errorf("expected function name, got %s %q", p.c.cur.Type, p.c.cur.Literal)
		p.synchronize()
		return nil
	}
	name := p.c.cur.Literal
	p.c.advance()

	params := p.parseParameterList()

	retType := types.Invalid
	if isTypeNameToken(p.c.cur.Type) {
		retType = p.parseTypeName()
	}

	if !p.expect(lexer.SEMICOLON) {
		p.synchronize()
		return nil
	}
	return &ast.FuncImport{Name: name, Parameters: params, ReturnType: retType, Ln: ln}
}
