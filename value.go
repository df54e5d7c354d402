package mlisp

import (
	"sync"
)

// Value is any MLisp value: Integer, Float, *Symbol, List, *Primitive,
// *Closure or Void.
type Value interface {
	String() string
	value()
}

//----------------------------------------------------------------------

// Integer represents a signed 64-bit integer which wraps on overflow.
type Integer int64

// Float represents a 64-bit floating-point number.
type Float float64

func (Integer) value() {}
func (Float) value()   {}

//----------------------------------------------------------------------

// Symbol represents MLisp's symbol.
type Symbol string

// The mapping from string to *Symbol
var symbols sync.Map

// Intern interns a name as a symbol.
func Intern(name string) *Symbol {
	newSym := Symbol(name)
	sym, _ := symbols.LoadOrStore(name, &newSym)
	return sym.(*Symbol)
}

func (*Symbol) value() {}

var (
	Quote  = Intern("quote")
	If     = Intern("if")
	Define = Intern("define")
	SetQ   = Intern("set!")
	Lambda = Intern("lambda")

	// True is what predicates return for truth; falsehood is the empty list.
	True = Intern("#t")
)

//----------------------------------------------------------------------

// List represents both program structure and list data.
type List []Value

func (List) value() {}

// Nil is the empty list, the only false value.
var Nil = List{}

// Truthy reports whether v counts as true in an if test.
func Truthy(v Value) bool {
	l, ok := v.(List)
	return !ok || len(l) != 0
}

// Bool converts a Go truth value to True or Nil.
func Bool(b bool) Value {
	if b {
		return True
	}
	return Nil
}

//----------------------------------------------------------------------

// Primitive represents a procedure implemented in Go.
type Primitive struct {
	Name string
	Fn   func(args List) (Value, error)
}

// Closure represents a lambda expression with its environment.
type Closure struct {
	Params []*Symbol
	Body   Value
	Env    *Environment
}

func (*Primitive) value() {}
func (*Closure) value()   {}

//----------------------------------------------------------------------

type void struct{}

func (void) value() {}

// Void means the expression has no value.
var Void Value = void{}
