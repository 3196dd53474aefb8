// Package scalarlex parses the lexical forms of scalar values, including
// the case-insensitive special forms inf, +inf, -inf, infinity and nan.
package scalarlex

import (
	"errors"
	"math"
	"strconv"
	"unsafe"
)

// Class identifies the ordering class of a parsed value.
type Class uint8

const (
	Finite Class = iota
	PosInf
	NegInf
	NaN
)

// Parse parses a scalar lexical value for the requested bit size (32 or
// 64). Values whose magnitude exceeds the range of the requested size
// parse to an infinity of matching sign rather than failing.
func Parse(b []byte, bits int) (float64, Class, *ParseError) {
	if len(b) == 0 {
		return 0, Finite, &ParseError{Kind: ParseEmpty}
	}
	if class, ok := specialForm(b); ok {
		switch class {
		case PosInf:
			return math.Inf(1), PosInf, nil
		case NegInf:
			return math.Inf(-1), NegInf, nil
		default:
			return math.NaN(), NaN, nil
		}
	}
	if !isScalarLexical(b) {
		return 0, Finite, &ParseError{Kind: ParseBadChar}
	}
	lexical := unsafe.String(unsafe.SliceData(b), len(b))
	f, err := strconv.ParseFloat(lexical, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			class := Finite
			if math.IsInf(f, 1) {
				class = PosInf
			} else if math.IsInf(f, -1) {
				class = NegInf
			}
			return f, class, nil
		}
		return 0, Finite, &ParseError{Kind: ParseBadChar}
	}
	return f, Finite, nil
}

// Validate checks whether a scalar lexical form would parse.
func Validate(b []byte) *ParseError {
	if len(b) == 0 {
		return &ParseError{Kind: ParseEmpty}
	}
	if _, ok := specialForm(b); ok {
		return nil
	}
	if !isScalarLexical(b) {
		return &ParseError{Kind: ParseBadChar}
	}
	return nil
}

// specialForm matches inf, infinity and nan with an optional sign,
// case-insensitively.
func specialForm(b []byte) (Class, bool) {
	i := 0
	negative := false
	if b[i] == '+' || b[i] == '-' {
		negative = b[i] == '-'
		i++
	}
	rest := b[i:]
	switch {
	case equalFold(rest, "inf"), equalFold(rest, "infinity"):
		if negative {
			return NegInf, true
		}
		return PosInf, true
	case equalFold(rest, "nan"):
		return NaN, true
	}
	return Finite, false
}

func equalFold(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		c := b[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != s[i] {
			return false
		}
	}
	return true
}

func isScalarLexical(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	i := 0
	if value[i] == '+' || value[i] == '-' {
		i++
		if i == len(value) {
			return false
		}
	}
	intDigits := 0
	for i < len(value) && isDigit(value[i]) {
		i++
		intDigits++
	}
	if i < len(value) && value[i] == '.' {
		i++
		fracDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			fracDigits++
		}
		if intDigits == 0 && fracDigits == 0 {
			return false
		}
	} else if intDigits == 0 {
		return false
	}
	if i < len(value) && (value[i] == 'e' || value[i] == 'E') {
		i++
		if i == len(value) {
			return false
		}
		if value[i] == '+' || value[i] == '-' {
			i++
			if i == len(value) {
				return false
			}
		}
		expDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(value)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
