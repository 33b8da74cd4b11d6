package bytecode

import (
	"fmt"

	"github.com/goxlang/goxlang/internal/errors"
)

// RuntimeError is a failure raised while executing a Module: a type
// mismatch the checker couldn't have caught (there is none, by
// construction, but the VM still guards every opcode), a division by zero,
// or an out-of-range POKEB value. Trace is the call stack active when
// execution aborted (set by the dispatch loop, not by runtimeErrorf, since
// a frame's callers are only known once the error has propagated back up
// to it).
type RuntimeError struct {
	Op      OpCode
	PC      int
	Message string
	Trace   errors.StackTrace
}

func (e *RuntimeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("runtime error at pc %d (%s): %s", e.PC, e.Op, e.Message)
}

func runtimeErrorf(op OpCode, pc int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Op: op, PC: pc, Message: fmt.Sprintf(format, args...)}
}
