// Package exitcode maps errors returned by commands to process exit codes.
package exitcode

import (
	"errors"
	"strconv"
)

const (
	// OK is returned when no error occurred.
	OK = 0
	// Generic is returned for errors that carry no specific code.
	Generic = 1
	// FatalCode is returned for configuration errors, naming conflicts and
	// declined confirmations.
	FatalCode = 99

	maxCode = 255
)

// Coder is implemented by errors that know which exit code the process
// should terminate with.
type Coder interface {
	ExitCode() int
}

// Error wraps an error with an exit code.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "exit status " + strconv.Itoa(e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) ExitCode() int { return e.Code }

// Fatal marks err so that the process exits with FatalCode.
// A nil err stays nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: FatalCode, Err: err}
}

// From returns the exit code err should produce.
// The outermost Coder in the chain wins. Codes outside 1..255 map to
// Generic.
func From(err error) int {
	if err == nil {
		return OK
	}

	var c Coder
	if errors.As(err, &c) {
		if code := c.ExitCode(); code > OK && code <= maxCode {
			return code
		}
	}

	return Generic
}
