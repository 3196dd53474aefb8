// Package mglvec adapts the go-gl/mathgl vector types to the vectortraits
// constraints: Vec2 and Vec3 wrap the float32 mgl32 types, DVec2 and DVec3
// wrap the float64 mgl64 types. The adapters are defined types over the
// mathgl representations, so converting between the two is a plain Go
// conversion in either direction.
package mglvec

import (
	"github.com/go-gl/mathgl/mgl32"

	vectortraits "github.com/eadf/vector-traits"
	"github.com/eadf/vector-traits/approx"
)

// Vec2 adapts mgl32.Vec2.
type Vec2 mgl32.Vec2

// Vec3 adapts mgl32.Vec3.
type Vec3 mgl32.Vec3

// V2 returns a Vec2 with the given components.
func V2(x, y float32) Vec2 { return Vec2{x, y} }

// V3 returns a Vec3 with the given components.
func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

// FromXY returns a new vector with the given components.
func (Vec2) FromXY(x, y float32) Vec2 { return Vec2{x, y} }

// X returns the x component.
func (v Vec2) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec2) Y() float32 { return v[1] }

// WithX returns a copy with the x component replaced.
func (v Vec2) WithX(x float32) Vec2 { return Vec2{x, v[1]} }

// WithY returns a copy with the y component replaced.
func (v Vec2) WithY(y float32) Vec2 { return Vec2{v[0], y} }

// SetX replaces the x component in place.
func (v *Vec2) SetX(x float32) { v[0] = x }

// SetY replaces the y component in place.
func (v *Vec2) SetY(y float32) { v[1] = y }

// At returns the component at index i.
func (v Vec2) At(i int) float32 { return v[i] }

// To3D lifts the vector into 3D with the given z.
func (v Vec2) To3D(z float32) Vec3 { return Vec3{v[0], v[1], z} }

// Add returns v + rhs.
func (v Vec2) Add(rhs Vec2) Vec2 {
	return Vec2(mgl32.Vec2(v).Add(mgl32.Vec2(rhs)))
}

// Sub returns v - rhs.
func (v Vec2) Sub(rhs Vec2) Vec2 {
	return Vec2(mgl32.Vec2(v).Sub(mgl32.Vec2(rhs)))
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v[0], -v[1]} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2(mgl32.Vec2(v).Mul(s))
}

// Div returns v divided by s.
func (v Vec2) Div(s float32) Vec2 { return Vec2{v[0] / s, v[1] / s} }

// Magnitude returns the length of v.
func (v Vec2) Magnitude() float32 { return mgl32.Vec2(v).Len() }

// MagnitudeSq returns the squared length of v.
func (v Vec2) MagnitudeSq() float32 { return v.Dot(v) }

// Dot returns the dot product of v and rhs.
func (v Vec2) Dot(rhs Vec2) float32 {
	return mgl32.Vec2(v).Dot(mgl32.Vec2(rhs))
}

// PerpDot returns the perpendicular dot product of v and rhs.
func (v Vec2) PerpDot(rhs Vec2) float32 { return v[0]*rhs[1] - v[1]*rhs[0] }

// Distance returns the distance between v and rhs.
func (v Vec2) Distance(rhs Vec2) float32 { return v.Sub(rhs).Magnitude() }

// DistanceSq returns the squared distance between v and rhs.
func (v Vec2) DistanceSq(rhs Vec2) float32 { return v.Sub(rhs).MagnitudeSq() }

// Normalize returns v scaled to length one.
func (v Vec2) Normalize() Vec2 {
	return Vec2(mgl32.Vec2(v).Normalize())
}

// SafeNormalize returns v scaled to length one, or ok=false when the
// length is zero or not finite.
func (v Vec2) SafeNormalize() (Vec2, bool) {
	l := v.Magnitude()
	if l == 0 || !vectortraits.IsFinite(l) {
		return Vec2{}, false
	}
	return v.Div(l), true
}

// AbsDiffEq reports per-axis approximate equality within epsilon.
func (v Vec2) AbsDiffEq(rhs Vec2, epsilon float32) bool {
	return approx.AbsDiffEq(v[0], rhs[0], epsilon) &&
		approx.AbsDiffEq(v[1], rhs[1], epsilon)
}

// UlpsEq reports per-axis approximate equality within epsilon and maxUlps.
func (v Vec2) UlpsEq(rhs Vec2, epsilon float32, maxUlps uint32) bool {
	return approx.UlpsEq(v[0], rhs[0], epsilon, maxUlps) &&
		approx.UlpsEq(v[1], rhs[1], epsilon, maxUlps)
}

// FromXYZ returns a new vector with the given components.
func (Vec3) FromXYZ(x, y, z float32) Vec3 { return Vec3{x, y, z} }

// X returns the x component.
func (v Vec3) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec3) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vec3) Z() float32 { return v[2] }

// WithX returns a copy with the x component replaced.
func (v Vec3) WithX(x float32) Vec3 { return Vec3{x, v[1], v[2]} }

// WithY returns a copy with the y component replaced.
func (v Vec3) WithY(y float32) Vec3 { return Vec3{v[0], y, v[2]} }

// WithZ returns a copy with the z component replaced.
func (v Vec3) WithZ(z float32) Vec3 { return Vec3{v[0], v[1], z} }

// SetX replaces the x component in place.
func (v *Vec3) SetX(x float32) { v[0] = x }

// SetY replaces the y component in place.
func (v *Vec3) SetY(y float32) { v[1] = y }

// SetZ replaces the z component in place.
func (v *Vec3) SetZ(z float32) { v[2] = z }

// At returns the component at index i.
func (v Vec3) At(i int) float32 { return v[i] }

// To2D drops the z component.
func (v Vec3) To2D() Vec2 { return Vec2{v[0], v[1]} }

// Add returns v + rhs.
func (v Vec3) Add(rhs Vec3) Vec3 {
	return Vec3(mgl32.Vec3(v).Add(mgl32.Vec3(rhs)))
}

// Sub returns v - rhs.
func (v Vec3) Sub(rhs Vec3) Vec3 {
	return Vec3(mgl32.Vec3(v).Sub(mgl32.Vec3(rhs)))
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3(mgl32.Vec3(v).Mul(s))
}

// Div returns v divided by s.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Magnitude returns the length of v.
func (v Vec3) Magnitude() float32 { return mgl32.Vec3(v).Len() }

// MagnitudeSq returns the squared length of v.
func (v Vec3) MagnitudeSq() float32 { return v.Dot(v) }

// Dot returns the dot product of v and rhs.
func (v Vec3) Dot(rhs Vec3) float32 {
	return mgl32.Vec3(v).Dot(mgl32.Vec3(rhs))
}

// Cross returns the right-handed cross product of v and rhs.
func (v Vec3) Cross(rhs Vec3) Vec3 {
	return Vec3(mgl32.Vec3(v).Cross(mgl32.Vec3(rhs)))
}

// Distance returns the distance between v and rhs.
func (v Vec3) Distance(rhs Vec3) float32 { return v.Sub(rhs).Magnitude() }

// DistanceSq returns the squared distance between v and rhs.
func (v Vec3) DistanceSq(rhs Vec3) float32 { return v.Sub(rhs).MagnitudeSq() }

// Normalize returns v scaled to length one.
func (v Vec3) Normalize() Vec3 {
	return Vec3(mgl32.Vec3(v).Normalize())
}

// SafeNormalize returns v scaled to length one, or ok=false when the
// length is zero or not finite.
func (v Vec3) SafeNormalize() (Vec3, bool) {
	l := v.Magnitude()
	if l == 0 || !vectortraits.IsFinite(l) {
		return Vec3{}, false
	}
	return v.Div(l), true
}

// AbsDiffEq reports per-axis approximate equality within epsilon.
func (v Vec3) AbsDiffEq(rhs Vec3, epsilon float32) bool {
	return approx.AbsDiffEq(v[0], rhs[0], epsilon) &&
		approx.AbsDiffEq(v[1], rhs[1], epsilon) &&
		approx.AbsDiffEq(v[2], rhs[2], epsilon)
}

// UlpsEq reports per-axis approximate equality within epsilon and maxUlps.
func (v Vec3) UlpsEq(rhs Vec3, epsilon float32, maxUlps uint32) bool {
	return approx.UlpsEq(v[0], rhs[0], epsilon, maxUlps) &&
		approx.UlpsEq(v[1], rhs[1], epsilon, maxUlps) &&
		approx.UlpsEq(v[2], rhs[2], epsilon, maxUlps)
}
