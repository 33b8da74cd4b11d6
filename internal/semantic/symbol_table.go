// Package semantic implements the single-pass checker that walks a parsed
// GoxLang program, resolves names, and annotates every expression with its
// resolved primitive type.
package semantic

import "github.com/goxlang/goxlang/internal/types"

// Symbol is an entry in a Scope: a variable, constant, parameter, or
// function. IsFunc distinguishes the two; ParamTypes is only meaningful
// when IsFunc is true, and Type holds the return type in that case (types.Invalid
// for a function with no return value).
type Symbol struct {
	Name       string
	Type       types.Primitive
	IsConst    bool
	IsFunc     bool
	ParamTypes []types.Primitive
}

// Scope is one frame of the symbol-table chain: the global frame, or one
// function body's frame. GoxLang has no block scoping — an If or While body
// shares its enclosing function's (or the global) frame — so the chain is
// never more than two deep. Per REDESIGN FLAG #2, loop/function context
// lives in currentFunction/loopDepth fields rather than sentinel entries in
// the symbol map.
type Scope struct {
	entries         map[string]*Symbol
	parent          *Scope
	currentFunction *Symbol
	loopDepth       int
}

// NewScope creates a frame enclosed by parent (nil for the global frame).
func NewScope(parent *Scope) *Scope {
	return &Scope{entries: make(map[string]*Symbol), parent: parent}
}

// Define inserts sym into the current frame. It reports false if the name
// is already defined there; the caller decides how to report that.
func (s *Scope) Define(sym *Symbol) bool {
	if _, exists := s.entries[sym.Name]; exists {
		return false
	}
	s.entries[sym.Name] = sym
	return true
}

// Resolve looks up name in the current frame, then each enclosing frame.
func (s *Scope) Resolve(name string) (*Symbol, bool) {
	if sym, ok := s.entries[name]; ok {
		return sym, true
	}
	if s.parent != nil {
		return s.parent.Resolve(name)
	}
	return nil, false
}

// InsideFunction reports whether this frame (or its nearest function
// frame) is a function body, and returns that function's symbol.
func (s *Scope) InsideFunction() (*Symbol, bool) {
	if s.currentFunction != nil {
		return s.currentFunction, true
	}
	return nil, false
}

// InsideLoop reports whether a While is currently being visited.
func (s *Scope) InsideLoop() bool {
	return s.loopDepth > 0
}
