package cli

import "fmt"

// Error codes for command failures.
const (
	CodeSourceNotFound = "SOURCE_NOT_FOUND"
	CodeReadError      = "READ_ERROR"
	CodeWriteError     = "WRITE_ERROR"
)

// CLIError is a structured error used for consistent error emission.
type CLIError struct {
	Code    string
	Message string
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// errorf builds a CLIError and writes it to stderr in the standard
// Error [CODE]: message shape before returning it.
func (g *Globals) errorf(code, format string, args ...any) error {
	err := &CLIError{Code: code, Message: fmt.Sprintf(format, args...)}
	fmt.Fprintf(g.Stderr, "Error [%s]: %s\n", err.Code, err.Message)
	return err
}
