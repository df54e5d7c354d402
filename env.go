package mlisp

import (
	"fmt"
)

// Environment represents a scope frame: bindings plus its enclosing frame.
type Environment struct {
	vars  map[*Symbol]Value
	outer *Environment
}

// NewEnvironment builds a frame binding params to args positionally.
func NewEnvironment(params []*Symbol, args List, outer *Environment) (*Environment, error) {
	if len(params) != len(args) {
		return nil, fmt.Errorf("%w: expected %d args, got %d",
			ErrArityMismatch, len(params), len(args))
	}
	env := &Environment{make(map[*Symbol]Value, len(params)), outer}
	for i, p := range params {
		env.vars[p] = args[i]
	}
	return env, nil
}

// Outer returns the enclosing frame, or nil for the root.
func (env *Environment) Outer() *Environment { return env.outer }

// Find returns the innermost frame where sym is bound, or nil.
func (env *Environment) Find(sym *Symbol) *Environment {
	for env != nil {
		if _, ok := env.vars[sym]; ok {
			return env
		}
		env = env.outer
	}
	return nil
}

// Lookup returns the value of sym in the innermost frame binding it.
func (env *Environment) Lookup(sym *Symbol) (Value, error) {
	e := env.Find(sym)
	if e == nil {
		return nil, &UnboundVariableError{string(*sym)}
	}
	return e.vars[sym], nil
}

// Define creates or overwrites sym in this frame.
func (env *Environment) Define(sym *Symbol, val Value) {
	env.vars[sym] = val
}

// Set overwrites sym in the innermost frame already binding it.
func (env *Environment) Set(sym *Symbol, val Value) error {
	e := env.Find(sym)
	if e == nil {
		return &UnboundVariableError{string(*sym)}
	}
	e.vars[sym] = val
	return nil
}
