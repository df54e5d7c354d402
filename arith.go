package mlisp

import (
	"fmt"
	"math"
	"math/big"

	"github.com/nukata/goarith"
)

const (
	twoTo63 = 9223372036854775808.0
	twoTo64 = 18446744073709551616.0
)

var low64 = new(big.Int).SetUint64(math.MaxUint64)

// WrapInt reduces an exact integer into the signed 64-bit range by
// two's-complement wraparound.
func WrapInt(z *big.Int) Integer {
	if z.IsInt64() {
		return Integer(z.Int64())
	}
	return Integer(int64(new(big.Int).And(z, low64).Uint64()))
}

// WrapFloat applies the integer wrap formula (v + 2^63) mod 2^64 - 2^63,
// with floored modulo, to a float outside the signed 64-bit range.
// Floats inside the range are returned as is.
func WrapFloat(f float64) Float {
	if f >= -twoTo63 && f < twoTo63 {
		return Float(f)
	}
	if math.IsNaN(f) {
		return Float(f)
	}
	r := math.Mod(f+twoTo63, twoTo64)
	if r < 0 {
		r += twoTo64
	}
	return Float(r - twoTo63)
}

// arith dispatches a binary arithmetic operator over its operand types.
func arith(name string, a, b Value,
	ints func(x, y int64) Value, floats func(x, y float64) float64) (Value, error) {
	switch x := a.(type) {
	case Integer:
		switch y := b.(type) {
		case Integer:
			return ints(int64(x), int64(y)), nil
		case Float:
			return WrapFloat(floats(float64(x), float64(y))), nil
		}
		return nil, wrongType(name, b)
	case Float:
		switch y := b.(type) {
		case Integer:
			return WrapFloat(floats(float64(x), float64(y))), nil
		case Float:
			return WrapFloat(floats(float64(x), float64(y))), nil
		}
		return nil, wrongType(name, b)
	}
	return nil, wrongType(name, a)
}

// exact computes an integer operation with goarith, which widens to a
// big integer instead of overflowing, then wraps the result into 64 bits.
// goarith numbers print in decimal. wrapping is the same operation on
// int64, used only if that text does not parse; the two always agree.
func exact(op func(x, y goarith.Number) goarith.Number,
	wrapping func(x, y int64) int64) func(x, y int64) Value {
	return func(x, y int64) Value {
		n := op(goarith.AsNumber(big.NewInt(x)), goarith.AsNumber(big.NewInt(y)))
		if z, ok := new(big.Int).SetString(fmt.Sprint(n), 10); ok {
			return WrapInt(z)
		}
		return Integer(wrapping(x, y))
	}
}

// Add returns a + b.
func Add(a, b Value) (Value, error) {
	return arith("+", a, b,
		exact(goarith.Number.Add, func(x, y int64) int64 { return x + y }),
		func(x, y float64) float64 { return x + y })
}

// Sub returns a - b.
func Sub(a, b Value) (Value, error) {
	return arith("-", a, b,
		exact(goarith.Number.Sub, func(x, y int64) int64 { return x - y }),
		func(x, y float64) float64 { return x - y })
}

// Mul returns a * b.
func Mul(a, b Value) (Value, error) {
	return arith("*", a, b,
		exact(goarith.Number.Mul, func(x, y int64) int64 { return x * y }),
		func(x, y float64) float64 { return x * y })
}

// Div returns the true quotient a / b. An integral quotient of two
// integers is an Integer; any other quotient is a Float.
func Div(a, b Value) (Value, error) {
	if _, ok := toFloat(a); !ok {
		return nil, wrongType("/", a)
	}
	if y, ok := toFloat(b); !ok {
		return nil, wrongType("/", b)
	} else if y == 0 {
		return nil, ErrDivisionByZero
	}
	return arith("/", a, b,
		func(x, y int64) Value {
			q := new(big.Rat).SetFrac(big.NewInt(x), big.NewInt(y))
			if q.IsInt() {
				return WrapInt(q.Num())
			}
			f, _ := q.Float64()
			return WrapFloat(f)
		},
		func(x, y float64) float64 { return x / y })
}

// Expt returns a raised to b. With integer operands and b >= 0 the
// result is an Integer computed with wrapping multiplication.
func Expt(a, b Value) (Value, error) {
	if x, ok := a.(Integer); ok {
		if y, ok := b.(Integer); ok && y >= 0 {
			result, base := int64(1), int64(x)
			for e := int64(y); e > 0; e >>= 1 {
				if e&1 == 1 {
					result *= base
				}
				base *= base
			}
			return Integer(result), nil
		}
	}
	x, ok := toFloat(a)
	if !ok {
		return nil, wrongType("expt", a)
	}
	y, ok := toFloat(b)
	if !ok {
		return nil, wrongType("expt", b)
	}
	if x == 0 && y < 0 {
		return nil, ErrDivisionByZero
	}
	return Float(math.Pow(x, y)), nil
}

func toFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case Integer:
		return float64(x), true
	case Float:
		return float64(x), true
	}
	return 0, false
}
