// Package bytecode lowers a checked GoxLang AST into a structured,
// name-keyed stack-machine IR (Module/Function/Instr) and executes that IR
// on a small stack VM. There are no raw jump offsets anywhere in this
// package: control flow is expressed with the IF/ELSE/ENDIF and
// LOOP/CBREAK/CONTINUE/ENDLOOP instruction families, and the VM resolves
// each structured block's matching partner by a one-time pre-indexing pass
// rather than by patching label addresses at lowering time.
package bytecode

import (
	"fmt"

	"github.com/goxlang/goxlang/internal/types"
)

// ValueType tags a VM operand cell. GoxLang's bool and char source types
// both collapse to the integer cell at this level — see types.Lower.
type ValueType int

const (
	ValueInt ValueType = iota
	ValueFloat
)

func (t ValueType) String() string {
	if t == ValueFloat {
		return "float"
	}
	return "int"
}

// Value is a single operand-stack cell. Only one of I/F is meaningful,
// selected by Type. Bool is represented as an I of 0 or 1; char as an I
// holding the character's code point.
type Value struct {
	Type ValueType
	I    int64
	F    float64
}

func IntValue(i int64) Value     { return Value{Type: ValueInt, I: i} }
func FloatValue(f float64) Value { return Value{Type: ValueFloat, F: f} }

// BoolValue encodes b as the VM's canonical boolean cell.
func BoolValue(b bool) Value {
	if b {
		return IntValue(1)
	}
	return IntValue(0)
}

// Truthy reports whether v counts as true when consumed by IF/CBREAK. Per
// the checker, only bool-typed expressions ever reach these positions, so
// this is really just "is the int nonzero". NOTI uses the same helper;
// ANDI and ORI do not, they combine their operands bitwise.
func (v Value) Truthy() bool {
	return v.Type == ValueInt && v.I != 0
}

func (v Value) String() string {
	if v.Type == ValueFloat {
		return fmt.Sprintf("%g", v.F)
	}
	return fmt.Sprintf("%d", v.I)
}

// Global describes one module-level variable.
type Global struct {
	Name string
	Type types.IRType
}

// Function is one lowered GoxLang function (or the implicit "main" entry
// holding every top-level statement). Imported functions have Imported set
// and an empty Code; the VM has no host-function table, so calling one is a
// runtime error.
type Function struct {
	Name       string
	Params     []string
	ParamTypes []types.IRType
	ReturnType types.IRType
	HasReturn  bool // false for a void FuncDef; ReturnType is meaningless then
	Imported   bool
	Locals     []string
	LocalTypes map[string]types.IRType
	Code       []Instr
}

func newFunction(name string) *Function {
	return &Function{Name: name, LocalTypes: make(map[string]types.IRType)}
}

// declareLocal registers name as a local of this function if not already
// present. Parameters are declared this way too, in parameter order.
func (f *Function) declareLocal(name string, typ types.IRType) {
	if _, exists := f.LocalTypes[name]; exists {
		return
	}
	f.Locals = append(f.Locals, name)
	f.LocalTypes[name] = typ
}

func (f *Function) isLocal(name string) bool {
	_, ok := f.LocalTypes[name]
	return ok
}

// Module is the complete output of lowering: every function (entry plus
// user-defined plus imported signatures) and every global variable.
type Module struct {
	Globals     []Global
	GlobalTypes map[string]types.IRType
	Functions   []*Function
}

func newModule() *Module {
	return &Module{GlobalTypes: make(map[string]types.IRType)}
}

func (m *Module) declareGlobal(name string, typ types.IRType) {
	if _, exists := m.GlobalTypes[name]; exists {
		return
	}
	m.Globals = append(m.Globals, Global{Name: name, Type: typ})
	m.GlobalTypes[name] = typ
}

func (m *Module) isGlobal(name string) bool {
	_, ok := m.GlobalTypes[name]
	return ok
}

// FindFunction returns the function named name, or nil.
func (m *Module) FindFunction(name string) *Function {
	for _, f := range m.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}
