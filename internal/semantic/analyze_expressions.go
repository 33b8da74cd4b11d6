package semantic

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/types"
)

// analyzeBinaryOp implements the BinaryOp contract: compute both operand
// types; if they differ and form an {int, float} pair, promote the int side
// to float (splicing in an implicit TypeCast) and unify on float; look up
// the (possibly-promoted) pair plus operator in types.BinaryResult; report
// "incompatible types" and annotate types.Invalid on a miss.
func (a *Analyzer) analyzeBinaryOp(b *ast.BinaryOp) types.Primitive {
	leftType := a.analyzeExpression(b.Left)
	rightType := a.analyzeExpression(b.Right)

	if leftType != rightType && types.PromotesToFloat(leftType, rightType) {
		if leftType == types.Int {
			b.Left = a.promoteToFloat(b.Left)
			leftType = types.Float
		} else {
			b.Right = a.promoteToFloat(b.Right)
			rightType = types.Float
		}
	}

	result, ok := types.BinaryResult(leftType, b.Operator, rightType)
	if !ok {
		a.errorf(b.Ln, "incompatible types for %q: %s and %s", b.Operator, leftType, rightType)
		b.SetType(types.Invalid)
		return types.Invalid
	}
	b.SetType(result)
	return result
}

// analyzeUnaryOp implements the UnaryOp contract, including `^` applied to
// int meaning memory grow.
func (a *Analyzer) analyzeUnaryOp(u *ast.UnaryOp) types.Primitive {
	operandType := a.analyzeExpression(u.Operand)

	result, ok := types.UnaryResult(u.Operator, operandType)
	if !ok {
		a.errorf(u.Ln, "incompatible type for unary %q: %s", u.Operator, operandType)
		u.SetType(types.Invalid)
		return types.Invalid
	}
	u.SetType(result)
	return result
}

// analyzeTypeCast implements the TypeCast contract: visit the inner
// expression for its own errors, then the node's type is simply the target
// type — GoxLang allows any primitive-to-primitive cast.
func (a *Analyzer) analyzeTypeCast(c *ast.TypeCast) types.Primitive {
	a.analyzeExpression(c.Expr)
	c.SetType(c.TargetType)
	return c.TargetType
}

// analyzeNamedRead implements the NamedRead contract.
func (a *Analyzer) analyzeNamedRead(n *ast.NamedRead) types.Primitive {
	sym, ok := a.scope.Resolve(n.Name)
	if !ok {
		a.errorf(n.Ln, "undefined variable %q", n.Name)
		n.SetType(types.Invalid)
		return types.Invalid
	}
	if sym.IsFunc {
		a.errorf(n.Ln, "%q is a function, not a variable", n.Name)
		n.SetType(types.Invalid)
		return types.Invalid
	}
	n.SetType(sym.Type)
	return sym.Type
}

// analyzeMemRead implements the MemRead contract: the address must be int;
// the read is typed int (the lowerer always emits PEEKI for it).
func (a *Analyzer) analyzeMemRead(m *ast.MemRead) types.Primitive {
	addrType := a.analyzeExpression(m.AddrExpr)
	if addrType != types.Int {
		a.errorf(m.Ln, "memory address must be int, got %s", addrType)
	}
	m.SetType(types.Int)
	return types.Int
}
