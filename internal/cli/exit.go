package cli

import (
	stderrors "errors"
	"fmt"
)

// Exit codes
const (
	ExitOK      = 0
	ExitError   = 1
	ExitPending = 2
)

// exitError carries the process exit code of a failed command. reported
// is set when the error was already rendered to the user.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// reported marks err as already shown to the user
func reported(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: ExitError, err: err, reported: true}
}

// pending is returned by dry runs that found unapplied work
func pending() error {
	return &exitError{code: ExitPending, reported: true}
}

// ExitCode returns the process exit code for an error returned by the
// command tree, and whether the error still needs to be printed
func ExitCode(err error) (code int, needsReport bool) {
	if err == nil {
		return ExitOK, false
	}
	var ee *exitError
	if stderrors.As(err, &ee) {
		return ee.code, !ee.reported
	}
	return ExitError, true
}
