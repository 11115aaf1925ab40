// Package errorutil defines the sentinel error kinds of the module and
// helpers to wrap lower-level errors with them.
package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
)

// Error is a string type that implements the error interface.
type Error string

func (e Error) Error() string { return string(e) }

func Errorf(format string, args ...any) error {
	return Error(fmt.Sprintf(format, args...)) //errtrace:skip
}

// NewWrapperError creates or wraps an error with a sentinel error.
// It supports multiple argument patterns:
//   - No args: returns sentinel
//   - error arg: wraps with sentinel (unless already wrapped)
//   - string arg: formats as message with sentinel
//   - string + args: formats with Sprintf then wraps with sentinel
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
		}
		return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(v, args[1:]...)) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

// ErrInvalidArgument is returned on malformed input: an unparsable URI string,
// an invalid percent-encoding sequence or an illegal component character.
const ErrInvalidArgument Error = "invalid argument"

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

// ErrIllegalState is returned when an operation is invalid in the value's
// current state, like expanding an already encoded value.
const ErrIllegalState Error = "illegal state"

// NewIllegalStateError creates a new error with [ErrIllegalState] or
// wraps provided error with [ErrIllegalState].
func NewIllegalStateError(args ...any) error {
	return NewWrapperError(ErrIllegalState, args...) //errtrace:skip
}

// ErrMissingVariable is returned when a template placeholder has no
// corresponding value, named or positional.
const ErrMissingVariable Error = "missing template variable"

// NewMissingVariableError creates a new error with [ErrMissingVariable] or
// wraps provided error with [ErrMissingVariable].
func NewMissingVariableError(args ...any) error {
	return NewWrapperError(ErrMissingVariable, args...) //errtrace:skip
}
