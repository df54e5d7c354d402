package mlisp

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps one of them.
var (
	ErrUnexpectedEOF        = errors.New("unexpected EOF while reading")
	ErrUnexpectedCloseParen = errors.New("unexpected )")
	ErrUnboundVariable      = errors.New("unbound variable")
	ErrMalformedSpecialForm = errors.New("malformed special form")
	ErrArityMismatch        = errors.New("arity mismatch")
	ErrNotCallable          = errors.New("not callable")
	ErrWrongType            = errors.New("wrong type argument")
	ErrDivisionByZero       = errors.New("division by zero")
)

// UnboundVariableError reports a symbol missing from every frame of an
// environment chain.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return ErrUnboundVariable.Error() + ": " + e.Name
}

func (e *UnboundVariableError) Unwrap() error { return ErrUnboundVariable }

func malformed(form Value) error {
	return fmt.Errorf("%w: %s", ErrMalformedSpecialForm, Stringify(form))
}

func wrongType(name string, arg Value) error {
	return fmt.Errorf("%w to %s: %s", ErrWrongType, name, Stringify(arg))
}
