package semantic

import (
	"fmt"

	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/errors"
	"github.com/goxlang/goxlang/internal/types"
)

// Analyzer performs a single pass over a parsed GoxLang program: it resolves
// every name against the current Scope, checks every operation against
// internal/types's binary/unary tables, and annotates each Expression node
// with its resolved type. Every violation is reported to sink and analysis
// continues, so one run can surface many diagnostics instead of stopping at
// the first.
type Analyzer struct {
	scope *Scope
	sink  *errors.Sink
}

// NewAnalyzer creates an Analyzer reporting to sink, starting at the global
// scope.
func NewAnalyzer(sink *errors.Sink) *Analyzer {
	return &Analyzer{scope: NewScope(nil), sink: sink}
}

// Analyze walks prog's top-level statements in the global scope.
func (a *Analyzer) Analyze(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		a.analyzeStatement(stmt)
	}
}

func (a *Analyzer) errorf(line int, format string, args ...any) {
	a.sink.Report(line, format, args...)
}

// analyzeStatement dispatches on the statement's concrete type. The switch
// is meant to be exhaustive over every ast.Statement kind; an unreachable
// default means the ast package grew a case this one was never updated for,
// which should fail loudly here rather than silently skip type-checking it.
func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		a.analyzeVarDecl(s)
	case *ast.FuncDef:
		a.analyzeFuncDef(s)
	case *ast.FuncImport:
		a.analyzeFuncImport(s)
	case *ast.If:
		a.analyzeIf(s)
	case *ast.While:
		a.analyzeWhile(s)
	case *ast.Break:
		a.analyzeBreak(s)
	case *ast.Continue:
		a.analyzeContinue(s)
	case *ast.Return:
		a.analyzeReturn(s)
	case *ast.Print:
		a.analyzePrint(s)
	case *ast.NamedWrite:
		a.analyzeNamedWrite(s)
	case *ast.MemWrite:
		a.analyzeMemWrite(s)
	case *ast.ExpressionStatement:
		a.analyzeExpression(s.Expression)
	default:
		panic(fmt.Sprintf("semantic: unreachable statement node type %T", stmt))
	}
}

// analyzeExpression dispatches on the expression's concrete type, returning
// its resolved type. Every case also calls expr.SetType so the lowerer never
// sees types.Invalid on an expression the checker actually visited. As in
// analyzeStatement, the default case is unreachable over the closed
// ast.Expression set and panics rather than smuggling types.Invalid into the
// lowerer.
func (a *Analyzer) analyzeExpression(expr ast.Expression) types.Primitive {
	switch e := expr.(type) {
	case *ast.Literal:
		e.SetType(e.Kind)
		return e.Kind
	case *ast.BinaryOp:
		return a.analyzeBinaryOp(e)
	case *ast.UnaryOp:
		return a.analyzeUnaryOp(e)
	case *ast.TypeCast:
		return a.analyzeTypeCast(e)
	case *ast.FuncCall:
		return a.analyzeFuncCall(e)
	case *ast.NamedRead:
		return a.analyzeNamedRead(e)
	case *ast.MemRead:
		return a.analyzeMemRead(e)
	default:
		panic(fmt.Sprintf("semantic: unreachable expression node type %T", expr))
	}
}
