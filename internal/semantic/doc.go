// Package semantic implements GoxLang's checker: a single pass over the
// parser's AST that resolves every name against a chain of Scope frames,
// validates every operation against internal/types's binary/unary tables,
// and annotates each expression node with its resolved primitive type ready
// for internal/bytecode's lowerer.
//
//	sink := errors.NewSink(source)
//	a := semantic.NewAnalyzer(sink)
//	a.Analyze(program)
//	if sink.Count() > 0 {
//	    fmt.Print(sink.Format(true, true))
//	}
//
// A violation is reported to the sink and analysis continues, so a single
// run surfaces every diagnostic a program has rather than stopping at the
// first.
package semantic
