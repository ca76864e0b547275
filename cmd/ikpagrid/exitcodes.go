package main

import "fmt"

// Exit codes for the ikpagrid CLI.
const (
	ExitOK            = 0 // Every input rendered.
	ExitInvalidArgs   = 1 // Invalid arguments, config or path.
	ExitLoadFailure   = 2 // No input could be loaded, or one failed under --strict.
	ExitRenderFailure = 3 // Output could not be written.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitLoadFailure:
			msg = "ikpagrid: no input could be loaded"
		case ExitRenderFailure:
			msg = "ikpagrid: rendering failed"
		default:
			msg = "ikpagrid: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
