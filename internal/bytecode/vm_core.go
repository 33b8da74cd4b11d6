package bytecode

import (
	"fmt"
	"io"

	"github.com/goxlang/goxlang/internal/types"
)

// defaultMemorySize is the linear memory's starting size in bytes, per the
// stack-machine prototype this VM is grounded on.
const defaultMemorySize = 1024

// VM executes a Module produced by Lowerer.Lower. Its state mirrors the
// structured stack machine this is grounded on: an operand stack of typed
// cells, byte-addressable growable memory, a process-wide globals map, and
// a call stack of frames each holding their own name-keyed locals.
type VM struct {
	module     *Module
	output     io.Writer
	memorySize int
	memory     []byte
	globals    map[string]Value
	stack      []Value
	frames     []*execFrame
	blocks     map[*Function]*blockIndex
	trace      io.Writer
}

// execFrame is one call-stack entry: which function is running, where in
// its Code execution has reached, that activation's locals, and the
// source line of the CALL that entered it (0 for the entry frame).
type execFrame struct {
	fn       *Function
	pc       int
	locals   map[string]Value
	callLine int
}

// NewVM creates a VM writing PRINT output to output, with memory starting
// at defaultMemorySize bytes. A nil output discards all printed text.
func NewVM(output io.Writer) *VM {
	if output == nil {
		output = io.Discard
	}
	return &VM{output: output, memorySize: defaultMemorySize}
}

// WithMemorySize overrides the VM's starting linear-memory size before the
// next Run, for exercising or testing growth behavior from a smaller or
// larger baseline than the default.
func (vm *VM) WithMemorySize(n int) *VM {
	vm.memorySize = n
	return vm
}

// WithTrace turns on per-instruction tracing: before each opcode dispatches,
// the running function's name, its pc, and the instruction itself are
// written to w. A nil w (the default) disables tracing entirely, so Run
// never pays for the Fprintf calls unless a caller opted in.
func (vm *VM) WithTrace(w io.Writer) *VM {
	vm.trace = w
	return vm
}

// Run executes m's entry function to completion and returns whatever value
// is left on top of the operand stack when the outermost frame returns (0
// if the stack is empty, which the implicit entry return guarantees
// against in practice).
func (vm *VM) Run(m *Module) (Value, error) {
	vm.module = m
	if vm.memorySize <= 0 {
		vm.memorySize = defaultMemorySize
	}
	vm.memory = make([]byte, vm.memorySize)
	vm.globals = make(map[string]Value, len(m.Globals))
	vm.stack = nil
	vm.frames = nil
	vm.blocks = make(map[*Function]*blockIndex)

	for _, g := range m.Globals {
		vm.globals[g.Name] = zeroValue(g.Type)
	}
	for _, fn := range m.Functions {
		if !fn.Imported {
			vm.blocks[fn] = buildBlockIndex(fn.Code)
		}
	}

	entry := m.FindFunction(entryFunctionName)
	if entry == nil {
		return Value{}, fmt.Errorf("module has no %s function", entryFunctionName)
	}
	vm.pushFrame(entry, nil, 0)

	if err := vm.loop(); err != nil {
		return Value{}, err
	}
	if len(vm.stack) == 0 {
		return IntValue(0), nil
	}
	return vm.stack[len(vm.stack)-1], nil
}

func zeroValue(t types.IRType) Value {
	if t == types.F {
		return FloatValue(0)
	}
	return IntValue(0)
}
