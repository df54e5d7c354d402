package mlisp

import (
	"fmt"
)

// Eval evaluates an expression in an environment.
func Eval(exp Value, env *Environment) (Value, error) {
	switch x := exp.(type) {
	case *Symbol: // variable reference
		return env.Lookup(x)
	case List:
		if len(x) == 0 {
			return nil, fmt.Errorf("%w: ()", ErrNotCallable)
		}
		switch x[0] {
		case Quote: // (quote e)
			if len(x) != 2 {
				return nil, malformed(x)
			}
			return x[1], nil
		case If: // (if test conseq alt)
			if len(x) != 4 {
				return nil, malformed(x)
			}
			test, err := Eval(x[1], env)
			if err != nil {
				return nil, err
			}
			if Truthy(test) {
				return Eval(x[2], env)
			}
			return Eval(x[3], env)
		case Define: // (define var e)
			sym, ok := assignee(x)
			if !ok {
				return nil, malformed(x)
			}
			val, err := Eval(x[2], env)
			if err != nil {
				return nil, err
			}
			env.Define(sym, val)
			return Void, nil
		case SetQ: // (set! var e)
			sym, ok := assignee(x)
			if !ok {
				return nil, malformed(x)
			}
			val, err := Eval(x[2], env)
			if err != nil {
				return nil, err
			}
			if err := env.Set(sym, val); err != nil {
				return nil, err
			}
			return Void, nil
		case Lambda: // (lambda (v...) e)
			params, ok := parameters(x)
			if !ok {
				return nil, malformed(x)
			}
			return &Closure{params, x[2], env}, nil
		default: // (fun arg...)
			fun, err := Eval(x[0], env)
			if err != nil {
				return nil, err
			}
			args := make(List, 0, len(x)-1)
			for _, e := range x[1:] {
				arg, err := Eval(e, env)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
			return Apply(fun, args)
		}
	default: // as a number
		return exp, nil
	}
}

// Apply applies a procedure to arguments.
func Apply(fun Value, args List) (Value, error) {
	switch fn := fun.(type) {
	case *Primitive:
		return fn.Fn(args)
	case *Closure:
		env, err := NewEnvironment(fn.Params, args, fn.Env)
		if err != nil {
			return nil, err
		}
		return Eval(fn.Body, env)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotCallable, Stringify(fun))
}

// assignee checks the shape (define|set! var e) and returns var.
func assignee(x List) (*Symbol, bool) {
	if len(x) != 3 {
		return nil, false
	}
	sym, ok := x[1].(*Symbol)
	return sym, ok
}

// parameters checks the shape (lambda (v...) e) and returns the v's.
func parameters(x List) ([]*Symbol, bool) {
	if len(x) != 3 {
		return nil, false
	}
	l, ok := x[1].(List)
	if !ok {
		return nil, false
	}
	params := make([]*Symbol, len(l))
	for i, p := range l {
		if params[i], ok = p.(*Symbol); !ok {
			return nil, false
		}
	}
	return params, true
}
