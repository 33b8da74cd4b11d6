package parser

import "fmt"

// ParseError is a single syntax error tied to the source line it was
// detected on.
type ParseError struct {
	Line    int
	Message string
}

// Error renders the error in the pipeline's "<line>: <message>" shape; C1's
// Sink wraps this with "Error: " when the CLI reports it.
func (e ParseError) Error() string {
	return fmt.Sprintf("%d: %s", e.Line, e.Message)
}
