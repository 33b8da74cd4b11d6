package bytecode

import (
	"github.com/goxlang/goxlang/internal/ast"
	"github.com/goxlang/goxlang/internal/errors"
	"github.com/goxlang/goxlang/internal/types"
)

// entryFunctionName is the implicit function holding every top-level
// statement, per the "everything lives inside a function" convention.
const entryFunctionName = "main"

// Lowerer walks a checked AST and flattens it into a Module of structured,
// name-keyed instructions. It assumes the semantic analyzer has already run
// and reported zero diagnostics; the one error class Lowerer can still
// raise on its own is an identifier that resolves to neither a local nor a
// global at lowering time, which would mean a checker/lowerer contract bug
// rather than a source-program mistake.
type Lowerer struct {
	module *Module
	fn     *Function
	sink   *errors.Sink
}

// NewLowerer creates a Lowerer reporting lowering-time errors to sink.
func NewLowerer(sink *errors.Sink) *Lowerer {
	return &Lowerer{sink: sink}
}

// Lower flattens program into a Module. The entry function returns int,
// defaulting to 0 unless a Return statement in the top-level statement list
// supplies a different value.
func (l *Lowerer) Lower(program *ast.Program) *Module {
	l.module = newModule()
	entry := newFunction(entryFunctionName)
	entry.ReturnType = types.I
	entry.HasReturn = true
	l.module.Functions = append(l.module.Functions, entry)
	l.fn = entry

	for _, stmt := range program.Statements {
		l.lowerStatement(stmt)
	}
	l.appendImplicitReturn(entry)

	return l.module
}

// appendImplicitReturn appends a RET (preceded, for the entry function, by
// a sentinel CONSTI 0) to any function whose body doesn't already end in
// one. A real FuncDef reaching this is only possible when the checker's
// "contains a matching Return somewhere" rule already flagged the function
// as broken — the instruction appended here just keeps the IR well-formed.
func (l *Lowerer) appendImplicitReturn(fn *Function) {
	if len(fn.Code) > 0 && fn.Code[len(fn.Code)-1].Op == OpRet {
		return
	}
	if fn.Name == entryFunctionName {
		fn.Code = append(fn.Code, Instr{Op: OpConstI, Int: 0})
	}
	fn.Code = append(fn.Code, Instr{Op: OpRet})
}

func (l *Lowerer) emit(instr Instr) {
	l.fn.Code = append(l.fn.Code, instr)
}

func (l *Lowerer) errorf(line int, format string, args ...any) {
	l.sink.Report(line, format, args...)
}

// storeOp returns the opcode that stores into name from the current
// function's point of view: a local if declared in this function, else a
// global. reports a lowering error if name is neither (should not happen
// after a clean check pass).
func (l *Lowerer) storeOp(name string, line int) OpCode {
	if l.fn.isLocal(name) {
		return OpLocalSet
	}
	if l.module.isGlobal(name) {
		return OpGlobalSet
	}
	l.errorf(line, "internal error: %q resolves to neither a local nor a global", name)
	return OpGlobalSet
}

func (l *Lowerer) loadOp(name string, line int) OpCode {
	if l.fn.isLocal(name) {
		return OpLocalGet
	}
	if l.module.isGlobal(name) {
		return OpGlobalGet
	}
	l.errorf(line, "internal error: %q resolves to neither a local nor a global", name)
	return OpGlobalGet
}

// binopTable maps (IR-lowered-type, operator) to the opcode emitted for a
// binary operation where both operands already share that type. && and ||
// never appear here — they short-circuit via IF/ELSE/ENDIF before reaching
// this table. Entries for types.Char and types.Bool route through the
// integer comparison opcodes, matching the checker's own binary-result
// table, since both collapse to the I cell at this level.
type binopKey struct {
	Type types.Primitive
	Op   string
}

var binopTable = map[binopKey]OpCode{
	{types.Int, "+"}: OpAddI, {types.Int, "-"}: OpSubI, {types.Int, "*"}: OpMulI, {types.Int, "/"}: OpDivI,
	{types.Int, "<"}: OpLtI, {types.Int, "<="}: OpLeI, {types.Int, ">"}: OpGtI, {types.Int, ">="}: OpGeI,
	{types.Int, "=="}: OpEqI, {types.Int, "!="}: OpNeI,

	{types.Float, "+"}: OpAddF, {types.Float, "-"}: OpSubF, {types.Float, "*"}: OpMulF, {types.Float, "/"}: OpDivF,
	{types.Float, "<"}: OpLtF, {types.Float, "<="}: OpLeF, {types.Float, ">"}: OpGtF, {types.Float, ">="}: OpGeF,
	{types.Float, "=="}: OpEqF, {types.Float, "!="}: OpNeF,

	{types.Char, "<"}: OpLtI, {types.Char, "<="}: OpLeI, {types.Char, ">"}: OpGtI, {types.Char, ">="}: OpGeI,
	{types.Char, "=="}: OpEqI, {types.Char, "!="}: OpNeI,

	{types.Bool, "=="}: OpEqI, {types.Bool, "!="}: OpNeI,
}

func printOpFor(t types.Primitive) OpCode {
	switch t {
	case types.Float:
		return OpPrintF
	case types.Char:
		return OpPrintB
	default: // Int, Bool
		return OpPrintI
	}
}

func pokeOpFor(t types.Primitive) OpCode {
	switch t {
	case types.Float:
		return OpPokeF
	case types.Char:
		return OpPokeB
	default:
		return OpPokeI
	}
}
