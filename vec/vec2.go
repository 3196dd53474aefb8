// Package vec provides the native array-backed vector types Vec2 and
// Vec3, generic over both scalar widths.
package vec

import (
	"math"

	vectortraits "github.com/eadf/vector-traits"
	"github.com/eadf/vector-traits/approx"
)

// Vec2 is a 2D vector stored as [x, y].
type Vec2[S vectortraits.Scalar] [2]S

// New2 returns a Vec2 with the given components.
func New2[S vectortraits.Scalar](x, y S) Vec2[S] {
	return Vec2[S]{x, y}
}

// FromXY returns a new vector with the given components.
func (Vec2[S]) FromXY(x, y S) Vec2[S] { return Vec2[S]{x, y} }

// X returns the x component.
func (v Vec2[S]) X() S { return v[0] }

// Y returns the y component.
func (v Vec2[S]) Y() S { return v[1] }

// WithX returns a copy with the x component replaced.
func (v Vec2[S]) WithX(x S) Vec2[S] { return Vec2[S]{x, v[1]} }

// WithY returns a copy with the y component replaced.
func (v Vec2[S]) WithY(y S) Vec2[S] { return Vec2[S]{v[0], y} }

// SetX replaces the x component in place.
func (v *Vec2[S]) SetX(x S) { v[0] = x }

// SetY replaces the y component in place.
func (v *Vec2[S]) SetY(y S) { v[1] = y }

// At returns the component at index i.
func (v Vec2[S]) At(i int) S { return v[i] }

// To3D lifts the vector into 3D with the given z.
func (v Vec2[S]) To3D(z S) Vec3[S] { return Vec3[S]{v[0], v[1], z} }

// Add returns v + rhs.
func (v Vec2[S]) Add(rhs Vec2[S]) Vec2[S] {
	return Vec2[S]{v[0] + rhs[0], v[1] + rhs[1]}
}

// Sub returns v - rhs.
func (v Vec2[S]) Sub(rhs Vec2[S]) Vec2[S] {
	return Vec2[S]{v[0] - rhs[0], v[1] - rhs[1]}
}

// Neg returns -v.
func (v Vec2[S]) Neg() Vec2[S] { return Vec2[S]{-v[0], -v[1]} }

// Scale returns v scaled by s.
func (v Vec2[S]) Scale(s S) Vec2[S] { return Vec2[S]{v[0] * s, v[1] * s} }

// Div returns v divided by s.
func (v Vec2[S]) Div(s S) Vec2[S] { return Vec2[S]{v[0] / s, v[1] / s} }

// Magnitude returns the length of v.
func (v Vec2[S]) Magnitude() S {
	return S(math.Sqrt(float64(v.MagnitudeSq())))
}

// MagnitudeSq returns the squared length of v.
func (v Vec2[S]) MagnitudeSq() S { return v[0]*v[0] + v[1]*v[1] }

// Dot returns the dot product of v and rhs.
func (v Vec2[S]) Dot(rhs Vec2[S]) S { return v[0]*rhs[0] + v[1]*rhs[1] }

// PerpDot returns the perpendicular dot product of v and rhs.
func (v Vec2[S]) PerpDot(rhs Vec2[S]) S { return v[0]*rhs[1] - v[1]*rhs[0] }

// Distance returns the distance between v and rhs.
func (v Vec2[S]) Distance(rhs Vec2[S]) S { return v.Sub(rhs).Magnitude() }

// DistanceSq returns the squared distance between v and rhs.
func (v Vec2[S]) DistanceSq(rhs Vec2[S]) S { return v.Sub(rhs).MagnitudeSq() }

// Normalize returns v scaled to length one. The components of the result
// are NaN when v has length zero.
func (v Vec2[S]) Normalize() Vec2[S] { return v.Div(v.Magnitude()) }

// SafeNormalize returns v scaled to length one, or ok=false when the
// length is zero or not finite.
func (v Vec2[S]) SafeNormalize() (Vec2[S], bool) {
	l := v.Magnitude()
	if l == 0 || !vectortraits.IsFinite(l) {
		return Vec2[S]{}, false
	}
	return v.Div(l), true
}

// AbsDiffEq reports per-axis approximate equality within epsilon.
func (v Vec2[S]) AbsDiffEq(rhs Vec2[S], epsilon S) bool {
	return approx.AbsDiffEq(v[0], rhs[0], epsilon) &&
		approx.AbsDiffEq(v[1], rhs[1], epsilon)
}

// UlpsEq reports per-axis approximate equality within epsilon and maxUlps.
func (v Vec2[S]) UlpsEq(rhs Vec2[S], epsilon S, maxUlps uint32) bool {
	return approx.UlpsEq(v[0], rhs[0], epsilon, maxUlps) &&
		approx.UlpsEq(v[1], rhs[1], epsilon, maxUlps)
}
