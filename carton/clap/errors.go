package clap

import "errors"

var (
	// ErrUnexpectedValue indicates a positional value where an option
	// name was expected.
	ErrUnexpectedValue = errors.New("clap: unexpected value")

	// ErrInvalidName indicates an option name that is not registered.
	ErrInvalidName = errors.New("clap: invalid option name")

	// ErrDuplicatedAssign indicates an option captured twice.
	ErrDuplicatedAssign = errors.New("clap: duplicated option")

	// ErrLostValue indicates a value option without its associated value.
	ErrLostValue = errors.New("clap: option lost its value")

	// ErrNotCaptured indicates the requested option or variable was not
	// present in the input.
	ErrNotCaptured = errors.New("clap: not captured")

	// ErrBadCast indicates the captured text failed validation.
	ErrBadCast = errors.New("clap: bad cast")
)
