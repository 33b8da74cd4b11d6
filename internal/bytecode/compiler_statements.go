package bytecode

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/types"
)

// lowerStatement dispatches on the statement's concrete type. It never
// returns an error directly — lowering-time errors (only possible from a
// checker/lowerer contract mismatch) go to the sink via errorf and lowering
// continues, matching the checker's "report and keep going" discipline.
func (l *Lowerer) lowerStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		l.lowerVarDecl(s)
	case *ast.If:
		l.lowerIf(s)
	case *ast.While:
		l.lowerWhile(s)
	case *ast.Break:
		l.lowerBreak(s)
	case *ast.Continue:
		l.emit(Instr{Op: OpContinue, Line: s.Ln})
	case *ast.Return:
		l.lowerReturn(s)
	case *ast.Print:
		l.lowerExpression(s.Expr)
		l.emit(Instr{Op: printOpFor(s.Expr.GetType()), Line: s.Ln})
	case *ast.NamedWrite:
		l.lowerExpression(s.Expr)
		l.emit(Instr{Op: l.storeOp(s.Name, s.Ln), Name: s.Name, Line: s.Ln})
	case *ast.MemWrite:
		l.lowerExpression(s.AddrExpr)
		l.lowerExpression(s.Expr)
		l.emit(Instr{Op: pokeOpFor(s.Expr.GetType()), Line: s.Ln})
	case *ast.FuncDef:
		l.lowerFuncDef(s)
	case *ast.FuncImport:
		l.lowerFuncImport(s)
	case *ast.ExpressionStatement:
		l.lowerExpression(s.Expression)
		// A bare call statement's result, if the callee isn't void, is
		// left on the operand stack: the declared opcode family has no
		// discard instruction (the original stack-machine prototype this
		// is grounded on has the same gap). In practice every call used
		// purely for its side effect targets a void function.
	default:
		l.errorf(stmt.Line(), "internal error: lowering unsupported statement %T", stmt)
	}
}

// lowerVarDecl registers the declared name as a global (top-level) or local
// (inside a function) and, if there's an initializer, lowers it and emits
// the matching store.
func (l *Lowerer) lowerVarDecl(v *ast.VarDecl) {
	declType := v.DeclaredType
	if declType == types.Invalid && v.Initializer != nil {
		declType = v.Initializer.GetType()
	}
	irType := types.Lower(declType)

	atTopLevel := l.fn.Name == entryFunctionName
	if atTopLevel {
		l.module.declareGlobal(v.Name, irType)
	} else {
		l.fn.declareLocal(v.Name, irType)
	}

	if v.Initializer == nil {
		return
	}
	l.lowerExpression(v.Initializer)
	if atTopLevel {
		l.emit(Instr{Op: OpGlobalSet, Name: v.Name, Line: v.Ln})
	} else {
		l.emit(Instr{Op: OpLocalSet, Name: v.Name, Line: v.Ln})
	}
}

func (l *Lowerer) lowerIf(stmt *ast.If) {
	l.lowerExpression(stmt.Condition)
	l.emit(Instr{Op: OpIf, Line: stmt.Ln})
	for _, s := range stmt.Then {
		l.lowerStatement(s)
	}
	if stmt.Else != nil {
		l.emit(Instr{Op: OpElse, Line: stmt.Ln})
		for _, s := range stmt.Else {
			l.lowerStatement(s)
		}
	}
	l.emit(Instr{Op: OpEndIf, Line: stmt.Ln})
}

func (l *Lowerer) lowerWhile(stmt *ast.While) {
	l.emit(Instr{Op: OpLoop, Line: stmt.Ln})
	l.lowerExpression(stmt.Condition)
	// CBREAK pops a bool and breaks the loop when it is false, so the
	// loop condition feeds it directly — no inversion needed.
	l.emit(Instr{Op: OpCBreak, Line: stmt.Ln})
	for _, s := range stmt.Body {
		l.lowerStatement(s)
	}
	l.emit(Instr{Op: OpEndLoop, Line: stmt.Ln})
}

func (l *Lowerer) lowerBreak(stmt *ast.Break) {
	// break; leaves the loop unconditionally: since CBREAK breaks on
	// false, feed it a literal false.
	l.emit(Instr{Op: OpConstI, Int: 0, Line: stmt.Ln})
	l.emit(Instr{Op: OpCBreak, Line: stmt.Ln})
}

func (l *Lowerer) lowerReturn(stmt *ast.Return) {
	if stmt.Expr != nil {
		l.lowerExpression(stmt.Expr)
	}
	l.emit(Instr{Op: OpRet, Line: stmt.Ln})
}
