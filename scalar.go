package vectortraits

import (
	"fmt"
	"math"

	"github.com/eadf/vector-traits/internal/scalarlex"
)

// Epsilon returns the machine epsilon of S, the difference between 1 and
// the smallest value greater than 1 representable in S.
func Epsilon[S Scalar]() S {
	if bitSize[S]() == 32 {
		return S(0x1p-23)
	}
	return S(0x1p-52)
}

// Inf returns positive infinity in S.
func Inf[S Scalar]() S {
	return S(math.Inf(1))
}

// NegInf returns negative infinity in S.
func NegInf[S Scalar]() S {
	return S(math.Inf(-1))
}

// NaN returns a quiet not-a-number value in S.
func NaN[S Scalar]() S {
	return S(math.NaN())
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite[S Scalar](v S) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// IsNormal reports whether v is a normal floating-point number: finite,
// non-zero and not subnormal.
func IsNormal[S Scalar](v S) bool {
	if !IsFinite(v) || v == 0 {
		return false
	}
	abs := v
	if abs < 0 {
		abs = -abs
	}
	if bitSize[S]() == 32 {
		return abs >= S(0x1p-126)
	}
	return abs >= S(0x1p-1022)
}

// Clamp limits v to the closed interval [lo, hi]. It panics when lo > hi.
// A NaN v is returned unchanged.
func Clamp[S Scalar](v, lo, hi S) S {
	if lo > hi {
		panic(fmt.Sprintf("vectortraits: clamp bounds inverted: %v > %v", lo, hi))
	}
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// ParseScalar parses the textual form of a scalar value. Besides plain
// decimal and exponent notation it accepts the special forms "inf",
// "+inf", "-inf", "infinity" and "nan", case-insensitively. Values whose
// magnitude exceeds the range of S parse to the infinity of matching sign.
func ParseScalar[S Scalar](s string) (S, error) {
	f, _, err := scalarlex.Parse([]byte(s), bitSize[S]())
	if err != nil {
		return 0, fmt.Errorf("parse scalar %q: %w", s, err)
	}
	return S(f), nil
}

func bitSize[S Scalar]() int {
	var s S
	if _, ok := any(s).(float32); ok {
		return 32
	}
	return 64
}
