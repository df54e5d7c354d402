package mlisp

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		{"(+ 1 (* 2 3))", []string{"(", "+", "1", "(", "*", "2", "3", ")", ")"}},
		{"a)b", []string{"a", ")", "b"}},
		{"  foo\n\tbar  ", []string{"foo", "bar"}},
		{"'x \"s\"", []string{"'x", "\"s\""}},
	}
	for _, c := range cases {
		if got := Tokenize(c.src); !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", c.src, got, c.want)
		}
	}
	if got := Tokenize(" \n\t "); len(got) != 0 {
		t.Errorf("Tokenize(whitespace) = %q, want no tokens", got)
	}
}

func TestAtom(t *testing.T) {
	cases := []struct {
		token string
		want  Value
	}{
		{"42", Integer(42)},
		{"-7", Integer(-7)},
		{"+7", Integer(7)},
		{"1_000", Integer(1000)},
		{"9223372036854775807", Integer(math.MaxInt64)},
		{"9223372036854775808", Integer(math.MinInt64)},
		{"-9223372036854775809", Integer(math.MaxInt64)},
		{"3.5", Float(3.5)},
		{"1e3", Float(1000)},
		{".5", Float(0.5)},
		{"-2.", Float(-2)},
		{"1e400", Float(math.Inf(1))},
		{"1_0.5", Float(10.5)},
		{"1_0e1_0", Float(1e11)},
		{"1._5", Intern("1._5")},
		{"_1.5", Intern("_1.5")},
		{"1.5_", Intern("1.5_")},
		{"+-nan", Intern("+-nan")},
		{"abc", Intern("abc")},
		{"set!", Intern("set!")},
		{"Abc", Intern("Abc")},
		{"1_", Intern("1_")},
		{"0x10", Intern("0x10")},
		{"--1", Intern("--1")},
		{"-", Intern("-")},
	}
	for _, c := range cases {
		if got := Atom(c.token); !reflect.DeepEqual(got, c.want) {
			t.Errorf("Atom(%q) = %#v, want %#v", c.token, got, c.want)
		}
	}
}

func TestAtomNaN(t *testing.T) {
	for _, token := range []string{"nan", "NaN", "+nan", "-nan"} {
		f, ok := Atom(token).(Float)
		if !ok || !math.IsNaN(float64(f)) {
			t.Errorf("Atom(%q) = %#v, want NaN", token, Atom(token))
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("(a (b c) 1 2.5 ())")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := List{Intern("a"), List{Intern("b"), Intern("c")}, Integer(1), Float(2.5), List{}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src  string
		want error
	}{
		{"(+ 1 2", ErrUnexpectedEOF},
		{"((1)", ErrUnexpectedEOF},
		{"", ErrUnexpectedEOF},
		{"   ", ErrUnexpectedEOF},
		{")", ErrUnexpectedCloseParen},
		{") (1)", ErrUnexpectedCloseParen},
	}
	for _, c := range cases {
		if _, err := Parse(c.src); !errors.Is(err, c.want) {
			t.Errorf("Parse(%q) error = %v, want %v", c.src, err, c.want)
		}
	}
}

func TestReadFromTokensLeavesRest(t *testing.T) {
	tokens := Tokenize("1 (2 x) y")
	want := []Value{Integer(1), List{Integer(2), Intern("x")}, Intern("y")}
	for i, w := range want {
		got, err := ReadFromTokens(&tokens)
		if err != nil {
			t.Fatalf("read #%d: %v", i, err)
		}
		if !reflect.DeepEqual(got, w) {
			t.Fatalf("read #%d = %v, want %v", i, got, w)
		}
	}
	if len(tokens) != 0 {
		t.Fatalf("tokens left: %q", tokens)
	}
	if _, err := ReadFromTokens(&tokens); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("read past end: %v, want %v", err, ErrUnexpectedEOF)
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll("(define x 1)\n(+ x 2)\nx")
	if err != nil {
		t.Fatalf("ParseAll error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ParseAll read %d expressions, want 3", len(got))
	}
	if _, err := ParseAll("(define x 1) (+ x"); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("ParseAll error = %v, want %v", err, ErrUnexpectedEOF)
	}
}

func TestPrintParseRoundTrip(t *testing.T) {
	values := []Value{
		Integer(0),
		Integer(math.MinInt64),
		Float(2),
		Float(-0.5),
		Float(0.1),
		Float(1e21),
		Float(1e16),
		Float(1e-5),
		Float(9999999999999998),
		Float(1.5e-7),
		Float(math.Inf(1)),
		Float(math.Inf(-1)),
		Intern("x-y!"),
		List{},
		List{Intern("lambda"), List{Intern("x")}, List{Intern("+"), Intern("x"), Float(1)}},
		List{List{List{}}, Integer(-3), Float(123456789.25)},
	}
	for _, v := range values {
		got, err := Parse(Stringify(v))
		if err != nil {
			t.Fatalf("Parse(%q): %v", Stringify(v), err)
		}
		if !reflect.DeepEqual(got, v) {
			t.Errorf("Parse(Stringify(%#v)) = %#v", v, got)
		}
	}
}
