package bytecode

import "fmt"

func (vm *VM) push(v Value) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() (Value, error) {
	if len(vm.stack) == 0 {
		return Value{}, fmt.Errorf("stack underflow")
	}
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v, nil
}

// pop2 pops the top two operands in push order: a was pushed before b.
func (vm *VM) pop2() (a, b Value, err error) {
	b, err = vm.pop()
	if err != nil {
		return Value{}, Value{}, err
	}
	a, err = vm.pop()
	if err != nil {
		return Value{}, Value{}, err
	}
	return a, b, nil
}

func (vm *VM) getLocal(name string) (Value, error) {
	v, ok := vm.currentFrame().locals[name]
	if !ok {
		return Value{}, fmt.Errorf("undefined local %q", name)
	}
	return v, nil
}

func (vm *VM) setLocal(name string, v Value) {
	vm.currentFrame().locals[name] = v
}

// GetGlobal returns the current value of the named global, for tests and
// host-function integration.
func (vm *VM) GetGlobal(name string) (Value, bool) {
	v, ok := vm.globals[name]
	return v, ok
}

// SetGlobal overwrites the named global directly, bypassing bytecode —
// used by tests to set up fixtures.
func (vm *VM) SetGlobal(name string, v Value) {
	vm.globals[name] = v
}

func (vm *VM) ensureMemory(n int) {
	if n <= len(vm.memory) {
		return
	}
	vm.memory = append(vm.memory, make([]byte, n-len(vm.memory))...)
}
