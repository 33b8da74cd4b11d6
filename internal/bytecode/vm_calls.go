package bytecode

import "github.com/goxlang/goxlang/internal/errors"

// pushFrame enters fn: its locals start zeroed, then its parameters (args,
// in declaration order) are written over them. callLine is the source line
// of the CALL that is entering fn (0 for the implicit entry frame), kept
// on the frame so a runtime error can report the call chain that was
// active when it aborted.
func (vm *VM) pushFrame(fn *Function, args []Value, callLine int) {
	locals := make(map[string]Value, len(fn.Locals))
	for _, name := range fn.Locals {
		locals[name] = zeroValue(fn.LocalTypes[name])
	}
	for i, name := range fn.Params {
		if i < len(args) {
			locals[name] = args[i]
		}
	}
	vm.frames = append(vm.frames, &execFrame{fn: fn, locals: locals, callLine: callLine})
}

// stackTrace snapshots the current call stack, oldest (entry) frame first,
// for attaching to a RuntimeError at the point it aborts execution.
func (vm *VM) stackTrace() errors.StackTrace {
	trace := make(errors.StackTrace, 0, len(vm.frames))
	for _, f := range vm.frames {
		trace = append(trace, errors.NewStackFrame(f.fn.Name, f.callLine))
	}
	return trace
}

func (vm *VM) currentFrame() *execFrame {
	return vm.frames[len(vm.frames)-1]
}

// call resolves name, pops its arity argument values off the operand stack
// (pushed in reverse order by the lowerer, so popping restores declaration
// order), saves the caller's resume pc, and enters the callee's frame.
func (vm *VM) call(name string, pc int) *RuntimeError {
	fn := vm.module.FindFunction(name)
	if fn == nil {
		return runtimeErrorf(OpCall, pc, "call to undefined function %q", name)
	}
	arity := len(fn.Params)
	if len(vm.stack) < arity {
		return runtimeErrorf(OpCall, pc, "stack underflow calling %q", name)
	}
	raw := vm.stack[len(vm.stack)-arity:]
	args := make([]Value, arity)
	for i := 0; i < arity; i++ {
		args[i] = raw[arity-1-i]
	}
	vm.stack = vm.stack[:len(vm.stack)-arity]

	if fn.Imported {
		return runtimeErrorf(OpCall, pc, "imported function %q has no host implementation bound", name)
	}

	callLine := vm.currentFrame().fn.Code[pc].Line
	vm.currentFrame().pc = pc + 1
	vm.pushFrame(fn, args, callLine)
	return nil
}

// ret pops the current frame. halt is true once the call stack (including
// the entry frame) is empty, meaning the program is finished.
func (vm *VM) ret() (halt bool) {
	vm.frames = vm.frames[:len(vm.frames)-1]
	return len(vm.frames) == 0
}
