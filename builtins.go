package mlisp

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/nukata/goarith"
)

// Builtins returns the standard primitives by name; print writes to w.
func Builtins(w io.Writer) map[string]*Primitive {
	table := make(map[string]*Primitive)
	c := func(name string, fn func(args List) (Value, error)) {
		table[name] = &Primitive{name, fn}
	}
	binary := func(name string, fn func(a, b Value) (Value, error)) {
		c(name, func(x List) (Value, error) {
			if err := arity(name, x, 2); err != nil {
				return nil, err
			}
			return fn(x[0], x[1])
		})
	}
	unary := func(name string, fn func(a Value) (Value, error)) {
		c(name, func(x List) (Value, error) {
			if err := arity(name, x, 1); err != nil {
				return nil, err
			}
			return fn(x[0])
		})
	}
	predicate := func(name string, fn func(a Value) bool) {
		unary(name, func(a Value) (Value, error) { return Bool(fn(a)), nil })
	}
	comparison := func(name string, ok func(cmp int) bool) {
		binary(name, func(a, b Value) (Value, error) {
			cmp, err := compare(name, a, b)
			if err != nil {
				return nil, err
			}
			return Bool(ok(cmp)), nil
		})
	}

	binary("+", Add)
	binary("-", Sub)
	binary("*", Mul)
	binary("/", Div)
	binary("expt", Expt)

	comparison(">", func(cmp int) bool { return cmp > 0 })
	comparison("<", func(cmp int) bool { return cmp < 0 })
	comparison(">=", func(cmp int) bool { return cmp >= 0 })
	comparison("<=", func(cmp int) bool { return cmp <= 0 })
	binary("=", func(a, b Value) (Value, error) { return Bool(Equal(a, b)), nil })
	binary("equal?", func(a, b Value) (Value, error) { return Bool(Equal(a, b)), nil })
	binary("eq?", func(a, b Value) (Value, error) { return Bool(eq(a, b)), nil })

	unary("abs", func(a Value) (Value, error) {
		cmp, err := compare("abs", a, Integer(0))
		if err != nil {
			return nil, err
		}
		if cmp < 0 {
			return Sub(Integer(0), a)
		}
		return a, nil
	})
	c("max", func(x List) (Value, error) {
		return extremum("max", x, func(cmp int) bool { return cmp > 0 })
	})
	c("min", func(x List) (Value, error) {
		return extremum("min", x, func(cmp int) bool { return cmp < 0 })
	})
	c("round", func(x List) (Value, error) {
		switch len(x) {
		case 1:
			return round(x[0], 0, false)
		case 2:
			n, ok := x[1].(Integer)
			if !ok {
				return nil, wrongType("round", x[1])
			}
			return round(x[0], int(n), true)
		}
		return nil, fmt.Errorf("%w: round takes 1 or 2 args, got %d",
			ErrArityMismatch, len(x))
	})

	unary("car", func(a Value) (Value, error) {
		l, ok := a.(List)
		if !ok || len(l) == 0 {
			return nil, wrongType("car", a)
		}
		return l[0], nil
	})
	unary("cdr", func(a Value) (Value, error) {
		l, ok := a.(List)
		if !ok {
			return nil, wrongType("cdr", a)
		}
		if len(l) == 0 {
			return Nil, nil
		}
		return l[1:], nil
	})
	binary("cons", func(a, b Value) (Value, error) {
		l, ok := b.(List)
		if !ok {
			return nil, wrongType("cons", b)
		}
		return append(List{a}, l...), nil
	})
	binary("append", func(a, b Value) (Value, error) {
		x, ok := a.(List)
		if !ok {
			return nil, wrongType("append", a)
		}
		y, ok := b.(List)
		if !ok {
			return nil, wrongType("append", b)
		}
		result := make(List, 0, len(x)+len(y))
		return append(append(result, x...), y...), nil
	})
	unary("length", func(a Value) (Value, error) {
		l, ok := a.(List)
		if !ok {
			return nil, wrongType("length", a)
		}
		return Integer(len(l)), nil
	})
	c("list", func(x List) (Value, error) {
		return append(List{}, x...), nil
	})
	c("begin", func(x List) (Value, error) {
		if len(x) == 0 {
			return nil, fmt.Errorf("%w: begin needs at least 1 arg", ErrArityMismatch)
		}
		return x[len(x)-1], nil
	})

	binary("apply", func(a, b Value) (Value, error) {
		args, ok := b.(List)
		if !ok {
			return nil, wrongType("apply", b)
		}
		return Apply(a, args)
	})
	c("map", func(x List) (Value, error) {
		if len(x) < 2 {
			return nil, fmt.Errorf("%w: map needs at least 2 args, got %d",
				ErrArityMismatch, len(x))
		}
		return mapList(x[0], x[1:])
	})

	predicate("list?", func(a Value) bool { _, ok := a.(List); return ok })
	predicate("null?", func(a Value) bool { l, ok := a.(List); return ok && len(l) == 0 })
	predicate("not", func(a Value) bool { return !Truthy(a) })
	predicate("symbol?", func(a Value) bool { _, ok := a.(*Symbol); return ok })
	predicate("number?", func(a Value) bool { return asNumber(a) != nil })
	predicate("procedure?", func(a Value) bool {
		switch a.(type) {
		case *Primitive, *Closure:
			return true
		}
		return false
	})

	c("print", func(x List) (Value, error) {
		ss := make([]string, len(x))
		for i, e := range x {
			ss[i] = Stringify(e)
		}
		if _, err := fmt.Fprintln(w, strings.Join(ss, " ")); err != nil {
			return nil, err
		}
		return Void, nil
	})
	return table
}

// StandardEnv returns a root environment holding the standard primitives.
func StandardEnv(w io.Writer) *Environment {
	env := &Environment{make(map[*Symbol]Value), nil}
	for name, p := range Builtins(w) {
		env.Define(Intern(name), p)
	}
	return env
}

//----------------------------------------------------------------------

func arity(name string, args List, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d args, got %d",
			ErrArityMismatch, name, n, len(args))
	}
	return nil
}

// asNumber converts an Integer or a Float to goarith's number; it returns
// nil for any other value.
func asNumber(v Value) goarith.Number {
	switch x := v.(type) {
	case Integer:
		return goarith.AsNumber(big.NewInt(int64(x)))
	case Float:
		return goarith.AsNumber(float64(x))
	}
	return nil
}

// compare compares two numbers exactly, even an Integer with a Float.
func compare(name string, a, b Value) (int, error) {
	x := asNumber(a)
	if x == nil {
		return 0, wrongType(name, a)
	}
	y := asNumber(b)
	if y == nil {
		return 0, wrongType(name, b)
	}
	return x.Cmp(y), nil
}

// Equal reports structural equality; numbers compare by value.
func Equal(a, b Value) bool {
	if x := asNumber(a); x != nil {
		if y := asNumber(b); y != nil {
			return x.Cmp(y) == 0
		}
		return false
	}
	if x, ok := a.(List); ok {
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return eq(a, b)
}

// eq reports identity. Lists are identical when they share storage.
func eq(a, b Value) bool {
	if x, ok := a.(List); ok {
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		return len(x) == 0 || &x[0] == &y[0]
	}
	if _, ok := b.(List); ok {
		return false
	}
	return a == b
}

func extremum(name string, x List, better func(cmp int) bool) (Value, error) {
	if len(x) == 1 {
		l, ok := x[0].(List)
		if !ok {
			return nil, wrongType(name, x[0])
		}
		x = l
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: %s of no values", ErrArityMismatch, name)
	}
	result := x[0]
	for _, e := range x[1:] {
		cmp, err := compare(name, e, result)
		if err != nil {
			return nil, err
		}
		if better(cmp) {
			result = e
		}
	}
	if asNumber(result) == nil {
		return nil, wrongType(name, result)
	}
	return result, nil
}

// round rounds half to even. Without digits it yields an Integer.
// With digits it rounds the exact value of a at 10^-digits.
func round(a Value, digits int, withDigits bool) (Value, error) {
	switch x := a.(type) {
	case Integer:
		if digits >= 0 {
			return x, nil
		}
		if digits < -maxIntDigits {
			return Integer(0), nil
		}
		r := new(big.Rat).SetInt64(int64(x))
		return WrapInt(roundAt(r, digits).Num()), nil
	case Float:
		f := float64(x)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			if withDigits {
				return x, nil
			}
			return nil, wrongType("round", a)
		}
		if !withDigits {
			z, _ := big.NewFloat(math.RoundToEven(f)).Int(nil)
			return WrapInt(z), nil
		}
		switch {
		case digits > maxFloatDigits:
			return x, nil
		case digits < -maxFloatDigits:
			return Float(math.Copysign(0, f)), nil
		}
		result, _ := roundAt(new(big.Rat).SetFloat64(f), digits).Float64()
		return Float(math.Copysign(result, f)), nil
	}
	return nil, wrongType("round", a)
}

const (
	// Any float64 is an exact decimal with at most this many places.
	maxFloatDigits = 1074
	// Rounding an int64 at 10^20 or coarser always gives zero.
	maxIntDigits = 19
)

// roundAt rounds r half to even at a multiple of 10^-digits and returns
// the result as a rational.
func roundAt(r *big.Rat, digits int) *big.Rat {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(absInt(digits))), nil)
	scaled := new(big.Rat).Set(r)
	if digits >= 0 {
		scaled.Mul(scaled, new(big.Rat).SetInt(scale))
	} else {
		scaled.Quo(scaled, new(big.Rat).SetInt(scale))
	}
	n := roundHalfEven(scaled)
	if digits >= 0 {
		return new(big.Rat).SetFrac(n, scale)
	}
	return new(big.Rat).SetInt(n.Mul(n, scale))
}

// roundHalfEven rounds r to the nearest integer, ties to even.
func roundHalfEven(r *big.Rat) *big.Int {
	q, m := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	twice := new(big.Int).Abs(m)
	twice.Lsh(twice, 1)
	switch twice.Cmp(r.Denom()) {
	case 1:
	case 0:
		if q.Bit(0) == 0 {
			return q
		}
	default:
		return q
	}
	if m.Sign() < 0 {
		return q.Sub(q, big.NewInt(1))
	}
	return q.Add(q, big.NewInt(1))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// mapList applies fun across lists element-wise, stopping at the shortest.
func mapList(fun Value, lists List) (Value, error) {
	ls := make([]List, len(lists))
	n := -1
	for i, e := range lists {
		l, ok := e.(List)
		if !ok {
			return nil, wrongType("map", e)
		}
		ls[i] = l
		if n < 0 || len(l) < n {
			n = len(l)
		}
	}
	result := make(List, 0, n)
	for i := 0; i < n; i++ {
		args := make(List, len(ls))
		for j, l := range ls {
			args[j] = l[i]
		}
		v, err := Apply(fun, args)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
