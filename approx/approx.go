// Package approx implements approximate floating-point equality for both
// scalar widths: absolute difference, relative difference and ULPs (units
// in the last place).
package approx

import (
	"math"

	vectortraits "github.com/eadf/vector-traits"
)

// DefaultMaxUlps is the default ULP distance tolerated by UlpsEq.
func DefaultMaxUlps() uint32 {
	return 4
}

// DefaultEpsilon is the default absolute tolerance: the machine epsilon
// of S.
func DefaultEpsilon[S vectortraits.Scalar]() S {
	return vectortraits.Epsilon[S]()
}

// AbsDiffEq reports whether |a-b| <= epsilon. It is false when either
// value is NaN.
func AbsDiffEq[S vectortraits.Scalar](a, b, epsilon S) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}

// RelativeEq reports whether a and b are equal within epsilon, or within
// maxRelative scaled by the larger magnitude of the two.
func RelativeEq[S vectortraits.Scalar](a, b, epsilon, maxRelative S) bool {
	if AbsDiffEq(a, b, epsilon) {
		return true
	}
	absA := a
	if absA < 0 {
		absA = -absA
	}
	absB := b
	if absB < 0 {
		absB = -absB
	}
	largest := absA
	if absB > largest {
		largest = absB
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= largest*maxRelative
}

// UlpsEq reports whether a and b are no more than maxUlps representable
// values apart. Values within epsilon of each other compare equal
// regardless of ULP distance, which covers values straddling zero. NaN is
// not equal to anything, including itself.
func UlpsEq[S vectortraits.Scalar](a, b, epsilon S, maxUlps uint32) bool {
	if a != a || b != b {
		return false
	}
	if AbsDiffEq(a, b, epsilon) {
		return true
	}
	// Past this point the bit patterns are only comparable when the signs
	// agree.
	if (a < 0) != (b < 0) {
		return false
	}
	return ulpsDistance(a, b) <= uint64(maxUlps)
}

func ulpsDistance[S vectortraits.Scalar](a, b S) uint64 {
	var ia, ib int64
	switch av := any(a).(type) {
	case float32:
		ia = int64(int32(math.Float32bits(av)))
		ib = int64(int32(math.Float32bits(any(b).(float32))))
	case float64:
		ia = int64(math.Float64bits(av))
		ib = int64(math.Float64bits(any(b).(float64)))
	}
	d := ia - ib
	if d < 0 {
		d = -d
	}
	return uint64(d)
}
