package mlisp

import (
	"math"
	"strconv"
	"strings"
)

// Stringify returns the string representation of a value.
func Stringify(exp Value) string {
	if exp == nil {
		return "#<nil>"
	}
	return exp.String()
}

func (x Integer) String() string {
	return strconv.FormatInt(int64(x), 10)
}

// String returns the shortest representation that reads back as the
// same Float; it always has a '.', an exponent, Inf or NaN.
// Plain notation is used for 1e-4 <= |x| < 1e16 and for zero.
func (x Float) String() string {
	f := float64(x)
	format := byte('e')
	if abs := math.Abs(f); f == 0 || (abs >= 1e-4 && abs < 1e16) {
		format = 'f'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

func (x *Symbol) String() string {
	return string(*x)
}

func (x List) String() string {
	ss := make([]string, len(x))
	for i, e := range x {
		ss[i] = Stringify(e)
	}
	return "(" + strings.Join(ss, " ") + ")"
}

func (x *Primitive) String() string {
	return "#<primitive " + x.Name + ">"
}

func (x *Closure) String() string {
	ps := make(List, len(x.Params))
	for i, p := range x.Params {
		ps[i] = p
	}
	return "#<closure " + ps.String() + " " + Stringify(x.Body) + ">"
}

func (void) String() string {
	return "#<VOID>"
}
