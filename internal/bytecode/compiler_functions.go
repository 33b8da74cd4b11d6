package bytecode

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/types"
)

// lowerFuncDef creates a new Function in the module, lowers its parameters
// as locals (in declaration order, matching the call convention's reversed
// push / in-order pop), lowers its body against that function, and appends
// an implicit return if the body fell through without one.
func (l *Lowerer) lowerFuncDef(def *ast.FuncDef) {
	fn := newFunction(def.Name)
	fn.HasReturn = def.ReturnType != types.Invalid
	if fn.HasReturn {
		fn.ReturnType = types.Lower(def.ReturnType)
	}
	for _, p := range def.Parameters {
		irType := types.Lower(p.Type)
		fn.Params = append(fn.Params, p.Name)
		fn.ParamTypes = append(fn.ParamTypes, irType)
		fn.declareLocal(p.Name, irType)
	}
	l.module.Functions = append(l.module.Functions, fn)

	outer := l.fn
	l.fn = fn
	for _, stmt := range def.Body {
		l.lowerStatement(stmt)
	}
	l.appendImplicitReturn(fn)
	l.fn = outer
}

// lowerFuncImport registers an externally provided function's signature
// with no body. The VM has no host-function table, so a call to it is a
// runtime error.
func (l *Lowerer) lowerFuncImport(imp *ast.FuncImport) {
	fn := newFunction(imp.Name)
	fn.Imported = true
	fn.HasReturn = imp.ReturnType != types.Invalid
	if fn.HasReturn {
		fn.ReturnType = types.Lower(imp.ReturnType)
	}
	for _, p := range imp.Parameters {
		fn.Params = append(fn.Params, p.Name)
		fn.ParamTypes = append(fn.ParamTypes, types.Lower(p.Type))
	}
	l.module.Functions = append(l.module.Functions, fn)
}
