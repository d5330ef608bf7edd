package exec

import (
	"errors"
	"fmt"
)

var (
	ErrKubectlNotFound = errors.New("kubectl not found")
	ErrCommandFailed   = errors.New("kubectl command failed")
	ErrNoAlternatives  = errors.New("no command alternatives given")
)

// CommandError is returned when an attached kubectl process fails
type CommandError struct {
	Verb     string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("kubectl %s could not run: %v", e.Verb, e.Err)
	}
	return fmt.Sprintf("kubectl %s exited with code %d", e.Verb, e.ExitCode)
}

func (e *CommandError) Unwrap() []error {
	return []error{ErrCommandFailed, e.Err}
}
