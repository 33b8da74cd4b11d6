package cmd

import "fmt"

// ExitCoder is implemented by errors that request a specific process exit
// code instead of the default 1 — used to distinguish compile-time
// diagnostics (1) from VM runtime errors (2), per the CLI's exit-code
// contract.
type ExitCoder interface {
	error
	ExitCode() int
}

type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }
func (e *exitError) ExitCode() int { return e.code }

// runtimeExitError wraps a VM runtime error as exit code 2.
func runtimeExitError(format string, args ...any) error {
	return &exitError{code: 2, msg: fmt.Sprintf(format, args...)}
}
