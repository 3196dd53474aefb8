package vec

import (
	"math"

	vectortraits "github.com/eadf/vector-traits"
	"github.com/eadf/vector-traits/approx"
)

// Vec3 is a 3D vector stored as [x, y, z].
type Vec3[S vectortraits.Scalar] [3]S

// New3 returns a Vec3 with the given components.
func New3[S vectortraits.Scalar](x, y, z S) Vec3[S] {
	return Vec3[S]{x, y, z}
}

// FromXYZ returns a new vector with the given components.
func (Vec3[S]) FromXYZ(x, y, z S) Vec3[S] { return Vec3[S]{x, y, z} }

// X returns the x component.
func (v Vec3[S]) X() S { return v[0] }

// Y returns the y component.
func (v Vec3[S]) Y() S { return v[1] }

// Z returns the z component.
func (v Vec3[S]) Z() S { return v[2] }

// WithX returns a copy with the x component replaced.
func (v Vec3[S]) WithX(x S) Vec3[S] { return Vec3[S]{x, v[1], v[2]} }

// WithY returns a copy with the y component replaced.
func (v Vec3[S]) WithY(y S) Vec3[S] { return Vec3[S]{v[0], y, v[2]} }

// WithZ returns a copy with the z component replaced.
func (v Vec3[S]) WithZ(z S) Vec3[S] { return Vec3[S]{v[0], v[1], z} }

// SetX replaces the x component in place.
func (v *Vec3[S]) SetX(x S) { v[0] = x }

// SetY replaces the y component in place.
func (v *Vec3[S]) SetY(y S) { v[1] = y }

// SetZ replaces the z component in place.
func (v *Vec3[S]) SetZ(z S) { v[2] = z }

// At returns the component at index i.
func (v Vec3[S]) At(i int) S { return v[i] }

// To2D drops the z component.
func (v Vec3[S]) To2D() Vec2[S] { return Vec2[S]{v[0], v[1]} }

// Add returns v + rhs.
func (v Vec3[S]) Add(rhs Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] + rhs[0], v[1] + rhs[1], v[2] + rhs[2]}
}

// Sub returns v - rhs.
func (v Vec3[S]) Sub(rhs Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] - rhs[0], v[1] - rhs[1], v[2] - rhs[2]}
}

// Neg returns -v.
func (v Vec3[S]) Neg() Vec3[S] { return Vec3[S]{-v[0], -v[1], -v[2]} }

// Scale returns v scaled by s.
func (v Vec3[S]) Scale(s S) Vec3[S] {
	return Vec3[S]{v[0] * s, v[1] * s, v[2] * s}
}

// Div returns v divided by s.
func (v Vec3[S]) Div(s S) Vec3[S] {
	return Vec3[S]{v[0] / s, v[1] / s, v[2] / s}
}

// Magnitude returns the length of v.
func (v Vec3[S]) Magnitude() S {
	return S(math.Sqrt(float64(v.MagnitudeSq())))
}

// MagnitudeSq returns the squared length of v.
func (v Vec3[S]) MagnitudeSq() S {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Dot returns the dot product of v and rhs.
func (v Vec3[S]) Dot(rhs Vec3[S]) S {
	return v[0]*rhs[0] + v[1]*rhs[1] + v[2]*rhs[2]
}

// Cross returns the right-handed cross product of v and rhs.
func (v Vec3[S]) Cross(rhs Vec3[S]) Vec3[S] {
	return Vec3[S]{
		v[1]*rhs[2] - v[2]*rhs[1],
		v[2]*rhs[0] - v[0]*rhs[2],
		v[0]*rhs[1] - v[1]*rhs[0],
	}
}

// Distance returns the distance between v and rhs.
func (v Vec3[S]) Distance(rhs Vec3[S]) S { return v.Sub(rhs).Magnitude() }

// DistanceSq returns the squared distance between v and rhs.
func (v Vec3[S]) DistanceSq(rhs Vec3[S]) S { return v.Sub(rhs).MagnitudeSq() }

// Normalize returns v scaled to length one. The components of the result
// are NaN when v has length zero.
func (v Vec3[S]) Normalize() Vec3[S] { return v.Div(v.Magnitude()) }

// SafeNormalize returns v scaled to length one, or ok=false when the
// length is zero or not finite.
func (v Vec3[S]) SafeNormalize() (Vec3[S], bool) {
	l := v.Magnitude()
	if l == 0 || !vectortraits.IsFinite(l) {
		return Vec3[S]{}, false
	}
	return v.Div(l), true
}

// AbsDiffEq reports per-axis approximate equality within epsilon.
func (v Vec3[S]) AbsDiffEq(rhs Vec3[S], epsilon S) bool {
	return approx.AbsDiffEq(v[0], rhs[0], epsilon) &&
		approx.AbsDiffEq(v[1], rhs[1], epsilon) &&
		approx.AbsDiffEq(v[2], rhs[2], epsilon)
}

// UlpsEq reports per-axis approximate equality within epsilon and maxUlps.
func (v Vec3[S]) UlpsEq(rhs Vec3[S], epsilon S, maxUlps uint32) bool {
	return approx.UlpsEq(v[0], rhs[0], epsilon, maxUlps) &&
		approx.UlpsEq(v[1], rhs[1], epsilon, maxUlps) &&
		approx.UlpsEq(v[2], rhs[2], epsilon, maxUlps)
}
