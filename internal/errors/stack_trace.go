package errors

import (
	"fmt"
	"strings"
)

// StackFrame is a single frame in a VM call trace: the function that was
// executing and the source line of the CALL that entered it.
type StackFrame struct {
	FunctionName string
	Line         int
}

// String formats a frame as "FunctionName [line: N]"; a frame with no known
// line (Line == 0) prints just the function name.
func (sf StackFrame) String() string {
	if sf.Line == 0 {
		return sf.FunctionName
	}
	return fmt.Sprintf("%s [line: %d]", sf.FunctionName, sf.Line)
}

// StackTrace is a call stack, ordered oldest (bottom) to newest (top). The
// VM snapshots one from its active frames when a RuntimeError propagates out
// of its dispatch loop, so the CLI can print which call chain was active at
// the point of failure.
type StackTrace []StackFrame

// String renders the trace most-recent-call-first, one frame per line.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Reverse returns a copy of st with frames in the opposite order.
func (st StackTrace) Reverse() StackTrace {
	reversed := make(StackTrace, len(st))
	for i, frame := range st {
		reversed[len(st)-1-i] = frame
	}
	return reversed
}

// Top returns the most recently entered frame, or nil if the trace is empty.
func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

// Bottom returns the originating frame, or nil if the trace is empty.
func (st StackTrace) Bottom() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[0]
}

// Depth returns the number of frames in the trace.
func (st StackTrace) Depth() int {
	return len(st)
}

// NewStackFrame builds a StackFrame for functionName, entered at line.
func NewStackFrame(functionName string, line int) StackFrame {
	return StackFrame{FunctionName: functionName, Line: line}
}

// NewStackTrace returns an empty StackTrace.
func NewStackTrace() StackTrace {
	return make(StackTrace, 0)
}
