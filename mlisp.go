// Package mlisp is a small Lisp interpreter after Norvig's lis.py.
// Source text is tokenized, read into Values (lists are the program
// tree), evaluated by walking that tree in an Environment, and printed
// back as text. Integers are 64 bits wide and wrap on overflow.
package mlisp

import (
	"io"
	"os"
)

// GlobalEnv is the process-wide root environment.
var GlobalEnv = StandardEnv(os.Stdout)

// EvalProgram evaluates one expression read from program in GlobalEnv
// and returns its printed form.
func EvalProgram(program string) (string, error) {
	return EvalString(program, GlobalEnv)
}

// EvalString evaluates one expression read from program in env and
// returns its printed form.
func EvalString(program string, env *Environment) (string, error) {
	exp, err := Parse(program)
	if err != nil {
		return "", err
	}
	result, err := Eval(exp, env)
	if err != nil {
		return "", err
	}
	return Stringify(result), nil
}

// Load evaluates every expression read from src in env, in order, and
// returns the value of the last one, or Void if there is none.
func Load(src io.Reader, env *Environment) (Value, error) {
	return LoadEach(src, env, nil)
}

// LoadEach is like Load but calls each with every top-level result.
func LoadEach(src io.Reader, env *Environment, each func(Value)) (Value, error) {
	text, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	exps, err := ParseAll(string(text))
	if err != nil {
		return nil, err
	}
	var result Value = Void
	for _, exp := range exps {
		if result, err = Eval(exp, env); err != nil {
			return nil, err
		}
		if each != nil {
			each(result)
		}
	}
	return result, nil
}
