// Package parser implements the GoxLang parser: recursive descent over the
// token stream, building the internal/ast tree consumed by the checker.
//
// Expression precedence, lowest to highest: logical-or, logical-and,
// equality, relational, additive, multiplicative, unary, primary. Every
// level is left-associative and implemented as its own function that calls
// down to the next-higher level, rather than a Pratt/precedence-table
// dispatcher — GoxLang's six binary levels are fixed by the grammar, so
// there is no benefit to a data-driven precedence climb.
//
// Example usage:
//
//	l := lexer.New(input)
//	p := parser.New(l)
//	program := p.ParseProgram()
//	if len(p.Errors()) > 0 {
//	    // handle errors
//	}
package parser
