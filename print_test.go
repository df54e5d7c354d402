package mlisp

import (
	"math"
	"testing"
)

func TestStringify(t *testing.T) {
	double := &Closure{
		Params: []*Symbol{Intern("x")},
		Body:   List{Intern("*"), Intern("x"), Integer(2)},
	}
	cases := []struct {
		v    Value
		want string
	}{
		{Integer(-5), "-5"},
		{Integer(math.MinInt64), "-9223372036854775808"},
		{Float(2), "2.0"},
		{Float(0.1), "0.1"},
		{Float(1e6), "1000000.0"},
		{Float(123456789.25), "123456789.25"},
		{Float(9999999999999998), "9999999999999998.0"},
		{Float(1e16), "1e+16"},
		{Float(1e21), "1e+21"},
		{Float(0.0001), "0.0001"},
		{Float(1e-5), "1e-05"},
		{Float(0), "0.0"},
		{Float(-1.5e300), "-1.5e+300"},
		{Float(1.5e-7), "1.5e-07"},
		{Float(math.Inf(-1)), "-Inf"},
		{Float(math.NaN()), "NaN"},
		{Intern("hello"), "hello"},
		{List{}, "()"},
		{List{Integer(1), List{Intern("a"), Float(2.5)}, List{}}, "(1 (a 2.5) ())"},
		{&Primitive{Name: "+"}, "#<primitive +>"},
		{double, "#<closure (x) (* x 2)>"},
		{Void, "#<VOID>"},
		{nil, "#<nil>"},
	}
	for _, c := range cases {
		if got := Stringify(c.v); got != c.want {
			t.Errorf("Stringify(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}
