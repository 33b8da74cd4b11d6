// Package ast defines the Abstract Syntax Tree node types for GoxLang.
//
// The AST represents the structure of a program after parsing. Every node
// carries the 1-based source line it started on. Expression nodes start
// with resolved type types.Invalid; the checker annotates each one exactly once,
// in place, splicing in implicit TypeCast nodes where int/float promotion
// is required. The lowerer then walks the annotated tree read-only.
package ast
