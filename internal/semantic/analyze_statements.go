package semantic

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/types"
)

// analyzeVarDecl implements the VarDecl contract: reject a duplicate name in
// the current frame; if an initializer is present, compute its type and
// require it equal the declared type, promoting an int initializer to float
// when the declared type is float; insert into the frame either way so later
// statements don't cascade undefined-name errors from this one mistake.
func (a *Analyzer) analyzeVarDecl(v *ast.VarDecl) {
	declared := v.DeclaredType

	if v.Initializer != nil {
		initType := a.analyzeExpression(v.Initializer)
		if declared == types.Invalid {
			declared = initType
		} else if declared != initType {
			if declared == types.Float && initType == types.Int {
				v.Initializer = a.promoteToFloat(v.Initializer)
			} else {
				a.errorf(v.Ln, "cannot assign %s to %s variable %q", initType, declared, v.Name)
			}
		}
	} else if declared == types.Invalid {
		a.errorf(v.Ln, "%q needs an explicit type or an initializer", v.Name)
	}

	sym := &Symbol{Name: v.Name, Type: declared, IsConst: v.IsConstant}
	if !a.scope.Define(sym) {
		a.errorf(v.Ln, "%q is already declared", v.Name)
	}
}

// promoteToFloat wraps expr in an implicit float TypeCast, used wherever the
// checker performs the int->float promotion named in its binary-op and
// VarDecl contracts.
func (a *Analyzer) promoteToFloat(expr ast.Expression) ast.Expression {
	cast := &ast.TypeCast{Expr: expr, TargetType: types.Float, Ln: expr.Line(), Implicit: true}
	cast.SetType(types.Float)
	return cast
}

func (a *Analyzer) analyzeIf(s *ast.If) {
	condType := a.analyzeExpression(s.Condition)
	if condType != types.Bool {
		a.errorf(s.Ln, "if condition must be bool, got %s", condType)
	}
	for _, stmt := range s.Then {
		a.analyzeStatement(stmt)
	}
	for _, stmt := range s.Else {
		a.analyzeStatement(stmt)
	}
}

func (a *Analyzer) analyzeWhile(s *ast.While) {
	condType := a.analyzeExpression(s.Condition)
	if condType != types.Bool {
		a.errorf(s.Ln, "while condition must be bool, got %s", condType)
	}
	a.scope.loopDepth++
	for _, stmt := range s.Body {
		a.analyzeStatement(stmt)
	}
	a.scope.loopDepth--
}

func (a *Analyzer) analyzeBreak(s *ast.Break) {
	if !a.scope.InsideLoop() {
		a.errorf(s.Ln, "break outside of a while loop")
	}
}

func (a *Analyzer) analyzeContinue(s *ast.Continue) {
	if !a.scope.InsideLoop() {
		a.errorf(s.Ln, "continue outside of a while loop")
	}
}

// analyzeReturn implements the Return contract precisely: reject outside a
// function, and when a value is given require it match the enclosing
// function's return type. A bare `return;` in a value-returning function is
// not itself an error here — FuncDef's "at least one matching Return"
// requirement is what catches a function that never actually returns a
// value.
func (a *Analyzer) analyzeReturn(s *ast.Return) {
	fn, ok := a.scope.InsideFunction()
	if !ok {
		a.errorf(s.Ln, "return outside of a function")
		if s.Expr != nil {
			a.analyzeExpression(s.Expr)
		}
		return
	}
	if s.Expr == nil {
		return
	}
	gotType := a.analyzeExpression(s.Expr)
	if gotType != fn.Type {
		a.errorf(s.Ln, "cannot return %s from function %q returning %s", gotType, fn.Name, fn.Type)
	}
}

func (a *Analyzer) analyzePrint(s *ast.Print) {
	a.analyzeExpression(s.Expr)
}

// analyzeNamedWrite implements the named-assignment contract: look up the
// name, reject if undefined or if it names a constant, then require the
// expression's type equal the variable's declared type exactly (no
// promotion here — only VarDecl's initializer and BinaryOp's operands
// promote).
func (a *Analyzer) analyzeNamedWrite(s *ast.NamedWrite) {
	exprType := a.analyzeExpression(s.Expr)

	sym, ok := a.scope.Resolve(s.Name)
	if !ok {
		a.errorf(s.Ln, "undefined variable %q", s.Name)
		return
	}
	if sym.IsFunc {
		a.errorf(s.Ln, "%q is a function, not a variable", s.Name)
		return
	}
	if sym.IsConst {
		a.errorf(s.Ln, "cannot assign to constant %q", s.Name)
		return
	}
	if exprType != sym.Type {
		a.errorf(s.Ln, "cannot assign %s to %s variable %q", exprType, sym.Type, s.Name)
	}
}

// analyzeMemWrite implements the memory-assignment contract: the address
// expression must be int; the value expression's type just needs to be
// valid, since the write's type tracks whatever was written.
func (a *Analyzer) analyzeMemWrite(s *ast.MemWrite) {
	addrType := a.analyzeExpression(s.AddrExpr)
	if addrType != types.Int {
		a.errorf(s.Ln, "memory address must be int, got %s", addrType)
	}
	a.analyzeExpression(s.Expr)
}
