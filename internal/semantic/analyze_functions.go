package semantic

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/types"
)

// analyzeFuncDef implements the FuncDef contract: reject a duplicate name;
// reject a nested definition (GoxLang functions don't nest); insert the
// function into the current (global) frame; open a child frame marked as a
// function body, insert each parameter, visit the body in it; if the
// function declares a return type, require at least one matching Return
// somewhere in the body.
func (a *Analyzer) analyzeFuncDef(f *ast.FuncDef) {
	paramTypes := make([]types.Primitive, len(f.Parameters))
	for i, p := range f.Parameters {
		paramTypes[i] = p.Type
	}
	sym := &Symbol{Name: f.Name, Type: f.ReturnType, IsFunc: true, ParamTypes: paramTypes}

	if _, insideFunc := a.scope.InsideFunction(); insideFunc {
		a.errorf(f.Ln, "function %q cannot be defined inside another function", f.Name)
	} else if !a.scope.Define(sym) {
		a.errorf(f.Ln, "%q is already declared", f.Name)
	}

	body := NewScope(a.scope)
	body.currentFunction = sym
	for _, p := range f.Parameters {
		body.Define(&Symbol{Name: p.Name, Type: p.Type})
	}

	outer := a.scope
	a.scope = body
	for _, stmt := range f.Body {
		a.analyzeStatement(stmt)
	}
	a.scope = outer

	if f.ReturnType != types.Invalid && !containsMatchingReturn(f.Body, f.ReturnType) {
		a.errorf(f.Ln, "function %q must return a value of type %s", f.Name, f.ReturnType)
	}
}

// containsMatchingReturn recursively searches body (descending into If and
// While, which share their enclosing function's frame rather than opening
// their own) for a Return whose expression's checked type equals retType.
func containsMatchingReturn(body []ast.Statement, retType types.Primitive) bool {
	for _, stmt := range body {
		switch s := stmt.(type) {
		case *ast.Return:
			if s.Expr != nil && s.Expr.GetType() == retType {
				return true
			}
		case *ast.If:
			if containsMatchingReturn(s.Then, retType) || containsMatchingReturn(s.Else, retType) {
				return true
			}
		case *ast.While:
			if containsMatchingReturn(s.Body, retType) {
				return true
			}
		}
	}
	return false
}

// analyzeFuncImport implements the FuncImport contract: reject a duplicate
// name, otherwise insert into the current frame. There is no body to visit.
func (a *Analyzer) analyzeFuncImport(f *ast.FuncImport) {
	paramTypes := make([]types.Primitive, len(f.Parameters))
	for i, p := range f.Parameters {
		paramTypes[i] = p.Type
	}
	sym := &Symbol{Name: f.Name, Type: f.ReturnType, IsFunc: true, ParamTypes: paramTypes}
	if !a.scope.Define(sym) {
		a.errorf(f.Ln, "%q is already declared", f.Name)
	}
}

// analyzeFuncCall implements the FuncCall contract: look up the callee,
// require arity match, require each argument's type equal the corresponding
// parameter's type, and return the callee's return type.
func (a *Analyzer) analyzeFuncCall(c *ast.FuncCall) types.Primitive {
	argTypes := make([]types.Primitive, len(c.Args))
	for i, arg := range c.Args {
		argTypes[i] = a.analyzeExpression(arg)
	}

	sym, ok := a.scope.Resolve(c.Name)
	if !ok {
		a.errorf(c.Ln, "undefined function %q", c.Name)
		c.SetType(types.Invalid)
		return types.Invalid
	}
	if !sym.IsFunc {
		a.errorf(c.Ln, "%q is not a function", c.Name)
		c.SetType(types.Invalid)
		return types.Invalid
	}
	if len(argTypes) != len(sym.ParamTypes) {
		a.errorf(c.Ln, "function %q expects %d argument(s), got %d", c.Name, len(sym.ParamTypes), len(argTypes))
		c.SetType(sym.Type)
		return sym.Type
	}
	for i, want := range sym.ParamTypes {
		if argTypes[i] != want {
			a.errorf(c.Ln, "argument %d of %q: expected %s, got %s", i+1, c.Name, want, argTypes[i])
		}
	}
	c.SetType(sym.Type)
	return sym.Type
}
