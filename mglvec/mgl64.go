package mglvec

import (
	"github.com/go-gl/mathgl/mgl64"

	vectortraits "github.com/eadf/vector-traits"
	"github.com/eadf/vector-traits/approx"
)

// DVec2 adapts mgl64.Vec2.
type DVec2 mgl64.Vec2

// DVec3 adapts mgl64.Vec3.
type DVec3 mgl64.Vec3

// DV2 returns a DVec2 with the given components.
func DV2(x, y float64) DVec2 { return DVec2{x, y} }

// DV3 returns a DVec3 with the given components.
func DV3(x, y, z float64) DVec3 { return DVec3{x, y, z} }

// FromXY returns a new vector with the given components.
func (DVec2) FromXY(x, y float64) DVec2 { return DVec2{x, y} }

// X returns the x component.
func (v DVec2) X() float64 { return v[0] }

// Y returns the y component.
func (v DVec2) Y() float64 { return v[1] }

// WithX returns a copy with the x component replaced.
func (v DVec2) WithX(x float64) DVec2 { return DVec2{x, v[1]} }

// WithY returns a copy with the y component replaced.
func (v DVec2) WithY(y float64) DVec2 { return DVec2{v[0], y} }

// SetX replaces the x component in place.
func (v *DVec2) SetX(x float64) { v[0] = x }

// SetY replaces the y component in place.
func (v *DVec2) SetY(y float64) { v[1] = y }

// At returns the component at index i.
func (v DVec2) At(i int) float64 { return v[i] }

// To3D lifts the vector into 3D with the given z.
func (v DVec2) To3D(z float64) DVec3 { return DVec3{v[0], v[1], z} }

// Add returns v + rhs.
func (v DVec2) Add(rhs DVec2) DVec2 {
	return DVec2(mgl64.Vec2(v).Add(mgl64.Vec2(rhs)))
}

// Sub returns v - rhs.
func (v DVec2) Sub(rhs DVec2) DVec2 {
	return DVec2(mgl64.Vec2(v).Sub(mgl64.Vec2(rhs)))
}

// Neg returns -v.
func (v DVec2) Neg() DVec2 { return DVec2{-v[0], -v[1]} }

// Scale returns v scaled by s.
func (v DVec2) Scale(s float64) DVec2 {
	return DVec2(mgl64.Vec2(v).Mul(s))
}

// Div returns v divided by s.
func (v DVec2) Div(s float64) DVec2 { return DVec2{v[0] / s, v[1] / s} }

// Magnitude returns the length of v.
func (v DVec2) Magnitude() float64 { return mgl64.Vec2(v).Len() }

// MagnitudeSq returns the squared length of v.
func (v DVec2) MagnitudeSq() float64 { return v.Dot(v) }

// Dot returns the dot product of v and rhs.
func (v DVec2) Dot(rhs DVec2) float64 {
	return mgl64.Vec2(v).Dot(mgl64.Vec2(rhs))
}

// PerpDot returns the perpendicular dot product of v and rhs.
func (v DVec2) PerpDot(rhs DVec2) float64 { return v[0]*rhs[1] - v[1]*rhs[0] }

// Distance returns the distance between v and rhs.
func (v DVec2) Distance(rhs DVec2) float64 { return v.Sub(rhs).Magnitude() }

// DistanceSq returns the squared distance between v and rhs.
func (v DVec2) DistanceSq(rhs DVec2) float64 { return v.Sub(rhs).MagnitudeSq() }

// Normalize returns v scaled to length one.
func (v DVec2) Normalize() DVec2 {
	return DVec2(mgl64.Vec2(v).Normalize())
}

// SafeNormalize returns v scaled to length one, or ok=false when the
// length is zero or not finite.
func (v DVec2) SafeNormalize() (DVec2, bool) {
	l := v.Magnitude()
	if l == 0 || !vectortraits.IsFinite(l) {
		return DVec2{}, false
	}
	return v.Div(l), true
}

// AbsDiffEq reports per-axis approximate equality within epsilon.
func (v DVec2) AbsDiffEq(rhs DVec2, epsilon float64) bool {
	return approx.AbsDiffEq(v[0], rhs[0], epsilon) &&
		approx.AbsDiffEq(v[1], rhs[1], epsilon)
}

// UlpsEq reports per-axis approximate equality within epsilon and maxUlps.
func (v DVec2) UlpsEq(rhs DVec2, epsilon float64, maxUlps uint32) bool {
	return approx.UlpsEq(v[0], rhs[0], epsilon, maxUlps) &&
		approx.UlpsEq(v[1], rhs[1], epsilon, maxUlps)
}

// FromXYZ returns a new vector with the given components.
func (DVec3) FromXYZ(x, y, z float64) DVec3 { return DVec3{x, y, z} }

// X returns the x component.
func (v DVec3) X() float64 { return v[0] }

// Y returns the y component.
func (v DVec3) Y() float64 { return v[1] }

// Z returns the z component.
func (v DVec3) Z() float64 { return v[2] }

// WithX returns a copy with the x component replaced.
func (v DVec3) WithX(x float64) DVec3 { return DVec3{x, v[1], v[2]} }

// WithY returns a copy with the y component replaced.
func (v DVec3) WithY(y float64) DVec3 { return DVec3{v[0], y, v[2]} }

// WithZ returns a copy with the z component replaced.
func (v DVec3) WithZ(z float64) DVec3 { return DVec3{v[0], v[1], z} }

// SetX replaces the x component in place.
func (v *DVec3) SetX(x float64) { v[0] = x }

// SetY replaces the y component in place.
func (v *DVec3) SetY(y float64) { v[1] = y }

// SetZ replaces the z component in place.
func (v *DVec3) SetZ(z float64) { v[2] = z }

// At returns the component at index i.
func (v DVec3) At(i int) float64 { return v[i] }

// To2D drops the z component.
func (v DVec3) To2D() DVec2 { return DVec2{v[0], v[1]} }

// Add returns v + rhs.
func (v DVec3) Add(rhs DVec3) DVec3 {
	return DVec3(mgl64.Vec3(v).Add(mgl64.Vec3(rhs)))
}

// Sub returns v - rhs.
func (v DVec3) Sub(rhs DVec3) DVec3 {
	return DVec3(mgl64.Vec3(v).Sub(mgl64.Vec3(rhs)))
}

// Neg returns -v.
func (v DVec3) Neg() DVec3 { return DVec3{-v[0], -v[1], -v[2]} }

// Scale returns v scaled by s.
func (v DVec3) Scale(s float64) DVec3 {
	return DVec3(mgl64.Vec3(v).Mul(s))
}

// Div returns v divided by s.
func (v DVec3) Div(s float64) DVec3 {
	return DVec3{v[0] / s, v[1] / s, v[2] / s}
}

// Magnitude returns the length of v.
func (v DVec3) Magnitude() float64 { return mgl64.Vec3(v).Len() }

// MagnitudeSq returns the squared length of v.
func (v DVec3) MagnitudeSq() float64 { return v.Dot(v) }

// Dot returns the dot product of v and rhs.
func (v DVec3) Dot(rhs DVec3) float64 {
	return mgl64.Vec3(v).Dot(mgl64.Vec3(rhs))
}

// Cross returns the right-handed cross product of v and rhs.
func (v DVec3) Cross(rhs DVec3) DVec3 {
	return DVec3(mgl64.Vec3(v).Cross(mgl64.Vec3(rhs)))
}

// Distance returns the distance between v and rhs.
func (v DVec3) Distance(rhs DVec3) float64 { return v.Sub(rhs).Magnitude() }

// DistanceSq returns the squared distance between v and rhs.
func (v DVec3) DistanceSq(rhs DVec3) float64 { return v.Sub(rhs).MagnitudeSq() }

// Normalize returns v scaled to length one.
func (v DVec3) Normalize() DVec3 {
	return DVec3(mgl64.Vec3(v).Normalize())
}

// SafeNormalize returns v scaled to length one, or ok=false when the
// length is zero or not finite.
func (v DVec3) SafeNormalize() (DVec3, bool) {
	l := v.Magnitude()
	if l == 0 || !vectortraits.IsFinite(l) {
		return DVec3{}, false
	}
	return v.Div(l), true
}

// AbsDiffEq reports per-axis approximate equality within epsilon.
func (v DVec3) AbsDiffEq(rhs DVec3, epsilon float64) bool {
	return approx.AbsDiffEq(v[0], rhs[0], epsilon) &&
		approx.AbsDiffEq(v[1], rhs[1], epsilon) &&
		approx.AbsDiffEq(v[2], rhs[2], epsilon)
}

// UlpsEq reports per-axis approximate equality within epsilon and maxUlps.
func (v DVec3) UlpsEq(rhs DVec3, epsilon float64, maxUlps uint32) bool {
	return approx.UlpsEq(v[0], rhs[0], epsilon, maxUlps) &&
		approx.UlpsEq(v[1], rhs[1], epsilon, maxUlps) &&
		approx.UlpsEq(v[2], rhs[2], epsilon, maxUlps)
}
