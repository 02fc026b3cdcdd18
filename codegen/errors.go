package codegen

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownIdentifier means a name has no binding in the environment.
	ErrUnknownIdentifier = errors.New("unknown identifier")

	// ErrNotCallable means a list was composed whose head is not a builtin.
	ErrNotCallable = errors.New("not callable")

	// ErrBadArity means a builtin was applied to the wrong number of arguments.
	ErrBadArity = errors.New("wrong number of arguments")

	// ErrTypeMismatch means a builtin was applied to a value of the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDivideByZero is reported by the div builtin.
	ErrDivideByZero = errors.New("division by zero")
)

// Error is a structured backend failure. It matches its underlying sentinel
// under errors.Is.
type Error struct {
	Err    error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v %s", e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func backendError(err error, detail string) *Error {
	return &Error{Err: err, Detail: detail}
}
