package bytecode

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/types"
)

// lowerExpression dispatches on the expression's concrete type, emitting
// the instructions that leave its value on top of the operand stack.
func (l *Lowerer) lowerExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Literal:
		l.lowerLiteral(e)
	case *ast.BinaryOp:
		l.lowerBinaryOp(e)
	case *ast.UnaryOp:
		l.lowerUnaryOp(e)
	case *ast.TypeCast:
		l.lowerTypeCast(e)
	case *ast.FuncCall:
		l.lowerFuncCall(e)
	case *ast.NamedRead:
		l.emit(Instr{Op: l.loadOp(e.Name, e.Ln), Name: e.Name, Line: e.Ln})
	case *ast.MemRead:
		l.lowerExpression(e.AddrExpr)
		// MemRead's annotated type is always types.Int (the checker
		// cannot know the intended width of a raw memory read from the
		// address expression alone), so PEEKI is the uniform choice here.
		l.emit(Instr{Op: OpPeekI, Line: e.Ln})
	default:
		l.errorf(expr.Line(), "internal error: lowering unsupported expression %T", expr)
	}
}

func (l *Lowerer) lowerLiteral(lit *ast.Literal) {
	switch lit.Kind {
	case types.Int:
		l.emit(Instr{Op: OpConstI, Int: lit.Value.(int64), Line: lit.Ln})
	case types.Float:
		l.emit(Instr{Op: OpConstF, Float: lit.Value.(float64), Line: lit.Ln})
	case types.Char:
		l.emit(Instr{Op: OpConstI, Int: int64(lit.Value.(rune)), Line: lit.Ln})
	case types.Bool:
		v := int64(0)
		if lit.Value.(bool) {
			v = 1
		}
		l.emit(Instr{Op: OpConstI, Int: v, Line: lit.Ln})
	default:
		l.errorf(lit.Ln, "internal error: literal of unsupported kind %s", lit.Kind)
	}
}

// lowerBinaryOp lowers && and || as short-circuit structured control flow,
// and every other operator by looking up the opcode for the operands'
// common type (the checker has already spliced in any int->float promotion
// needed, so Left and Right share a type here for every other operator).
func (l *Lowerer) lowerBinaryOp(b *ast.BinaryOp) {
	switch b.Operator {
	case "&&":
		l.lowerExpression(b.Left)
		l.emit(Instr{Op: OpIf, Line: b.Ln})
		l.lowerExpression(b.Right)
		l.emit(Instr{Op: OpElse, Line: b.Ln})
		l.emit(Instr{Op: OpConstI, Int: 0, Line: b.Ln})
		l.emit(Instr{Op: OpEndIf, Line: b.Ln})
		return
	case "||":
		l.lowerExpression(b.Left)
		l.emit(Instr{Op: OpIf, Line: b.Ln})
		l.emit(Instr{Op: OpConstI, Int: 1, Line: b.Ln})
		l.emit(Instr{Op: OpElse, Line: b.Ln})
		l.lowerExpression(b.Right)
		l.emit(Instr{Op: OpEndIf, Line: b.Ln})
		return
	}

	l.lowerExpression(b.Left)
	l.lowerExpression(b.Right)

	opType := b.Left.GetType()
	op, ok := binopTable[binopKey{opType, b.Operator}]
	if !ok {
		l.errorf(b.Ln, "internal error: no opcode for %s %s %s", opType, b.Operator, b.Right.GetType())
		return
	}
	l.emit(Instr{Op: op, Line: b.Ln})
}

func (l *Lowerer) lowerUnaryOp(u *ast.UnaryOp) {
	l.lowerExpression(u.Operand)
	switch u.Operator {
	case "+":
		// no-op
	case "-":
		if u.Operand.GetType() == types.Float {
			l.emit(Instr{Op: OpConstF, Float: -1, Line: u.Ln})
			l.emit(Instr{Op: OpMulF, Line: u.Ln})
		} else {
			l.emit(Instr{Op: OpConstI, Int: -1, Line: u.Ln})
			l.emit(Instr{Op: OpMulI, Line: u.Ln})
		}
	case "!":
		l.emit(Instr{Op: OpNotI, Line: u.Ln})
	case "^":
		l.emit(Instr{Op: OpGrow, Line: u.Ln})
	default:
		l.errorf(u.Ln, "internal error: unsupported unary operator %q", u.Operator)
	}
}

func (l *Lowerer) lowerTypeCast(c *ast.TypeCast) {
	l.lowerExpression(c.Expr)
	from := c.Expr.GetType()
	to := c.TargetType
	switch {
	case from == to:
		// no-op
	case from == types.Int && to == types.Float:
		l.emit(Instr{Op: OpItoF, Line: c.Ln})
	case from == types.Float && to == types.Int:
		l.emit(Instr{Op: OpFtoI, Line: c.Ln})
	default:
		// No other cast is reachable past the checker; left as a no-op
		// rather than an internal error since TypeCast's contract is
		// "always allowed" regardless of the pair.
	}
}

// lowerFuncCall lowers arguments in reverse order — the callee's calling
// convention pops them into its locals frame so that slot 0 ends up
// holding the first parameter — then emits CALL.
func (l *Lowerer) lowerFuncCall(f *ast.FuncCall) {
	for i := len(f.Args) - 1; i >= 0; i-- {
		l.lowerExpression(f.Args[i])
	}
	l.emit(Instr{Op: OpCall, Name: f.Name, Line: f.Ln})
}
