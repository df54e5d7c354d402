package mlisp

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

var parenSpacer = strings.NewReplacer("(", " ( ", ")", " ) ")

// Tokenize splits a source text into tokens.
func Tokenize(src string) []string {
	return strings.Fields(parenSpacer.Replace(src))
}

func peek(tokens *[]string) (string, error) {
	tt := *tokens
	if len(tt) == 0 {
		return "", ErrUnexpectedEOF
	}
	return tt[0], nil
}

func pop(tokens *[]string) (string, error) {
	result, err := peek(tokens)
	if err != nil {
		return "", err
	}
	*tokens = (*tokens)[1:]
	return result, nil
}

// ReadFromTokens reads an expression from tokens.
// `tokens` will be left with the rest of tokens, if any.
func ReadFromTokens(tokens *[]string) (Value, error) {
	token, err := pop(tokens)
	if err != nil {
		return nil, err
	}
	switch token {
	case "(":
		l := List{}
		for {
			next, err := peek(tokens)
			if err != nil {
				return nil, err
			}
			if next == ")" {
				break
			}
			e, err := ReadFromTokens(tokens)
			if err != nil {
				return nil, err
			}
			l = append(l, e)
		}
		pop(tokens)
		return l, nil
	case ")":
		return nil, ErrUnexpectedCloseParen
	}
	return Atom(token), nil
}

// Parse reads one expression from a program text.
// Anything after the first expression is ignored.
func Parse(program string) (Value, error) {
	tokens := Tokenize(program)
	return ReadFromTokens(&tokens)
}

// ParseAll reads every top-level expression from a program text.
func ParseAll(program string) ([]Value, error) {
	tokens := Tokenize(program)
	var result []Value
	for len(tokens) != 0 {
		exp, err := ReadFromTokens(&tokens)
		if err != nil {
			return nil, err
		}
		result = append(result, exp)
	}
	return result, nil
}

// Atom classifies a token as an Integer, a Float or a Symbol.
// Integer literals beyond 64 bits are wrapped.
func Atom(token string) Value {
	if n, ok := tryToReadInteger(token); ok {
		return n
	}
	if f, ok := tryToReadFloat(token); ok {
		return f
	}
	return Intern(token)
}

func tryToReadInteger(s string) (Integer, bool) {
	body := strings.TrimLeft(s, "+-")
	if !validDigits(body, len(s)-len(body)) {
		return 0, false
	}
	z := new(big.Int)
	if _, ok := z.SetString(strings.ReplaceAll(s, "_", ""), 10); !ok {
		return 0, false
	}
	return WrapInt(z), true
}

// validDigits checks for digits with single underscores between them,
// after at most one sign character.
func validDigits(s string, signs int) bool {
	if signs > 1 || s == "" {
		return false
	}
	prev := byte('_')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '_' && prev != '_':
		default:
			return false
		}
		prev = c
	}
	return prev != '_'
}

func tryToReadFloat(s string) (Float, bool) {
	trimmed := strings.TrimLeft(s, "+-")
	body := strings.ToLower(trimmed)
	if strings.HasPrefix(body, "0x") || len(s)-len(trimmed) > 1 {
		return 0, false
	}
	if body == "nan" {
		return Float(math.NaN()), true
	}
	if strings.Contains(s, "_") {
		if !underscoresBetweenDigits(s) {
			return 0, false
		}
		s = strings.ReplaceAll(s, "_", "")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, false
		}
	}
	return Float(f), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// underscoresBetweenDigits checks that every '_' in s sits between two
// digits.
func underscoresBetweenDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && (i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1])) {
			return false
		}
	}
	return true
}
