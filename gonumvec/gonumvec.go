// Package gonumvec adapts the gonum spatial vector types r2.Vec and
// r3.Vec to the vectortraits constraints. gonum vectors expose their
// components as struct fields, which would collide with the X/Y/Z accessor
// methods, so the adapters wrap rather than redefine them; the wrapper
// adds no runtime cost. gonum has no float32 vectors, so this backend only
// provides the float64 pair.
package gonumvec

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	vectortraits "github.com/eadf/vector-traits"
	"github.com/eadf/vector-traits/approx"
)

// Vec2 wraps an r2.Vec.
type Vec2 struct {
	Vec r2.Vec
}

// Vec3 wraps an r3.Vec.
type Vec3 struct {
	Vec r3.Vec
}

// V2 returns a Vec2 with the given components.
func V2(x, y float64) Vec2 { return Vec2{r2.Vec{X: x, Y: y}} }

// V3 returns a Vec3 with the given components.
func V3(x, y, z float64) Vec3 { return Vec3{r3.Vec{X: x, Y: y, Z: z}} }

// FromXY returns a new vector with the given components.
func (Vec2) FromXY(x, y float64) Vec2 { return V2(x, y) }

// X returns the x component.
func (v Vec2) X() float64 { return v.Vec.X }

// Y returns the y component.
func (v Vec2) Y() float64 { return v.Vec.Y }

// WithX returns a copy with the x component replaced.
func (v Vec2) WithX(x float64) Vec2 { return V2(x, v.Vec.Y) }

// WithY returns a copy with the y component replaced.
func (v Vec2) WithY(y float64) Vec2 { return V2(v.Vec.X, y) }

// SetX replaces the x component in place.
func (v *Vec2) SetX(x float64) { v.Vec.X = x }

// SetY replaces the y component in place.
func (v *Vec2) SetY(y float64) { v.Vec.Y = y }

// At returns the component at index i.
func (v Vec2) At(i int) float64 {
	switch i {
	case 0:
		return v.Vec.X
	case 1:
		return v.Vec.Y
	}
	panic("gonumvec: vector index out of range")
}

// To3D lifts the vector into 3D with the given z.
func (v Vec2) To3D(z float64) Vec3 { return V3(v.Vec.X, v.Vec.Y, z) }

// Add returns v + rhs.
func (v Vec2) Add(rhs Vec2) Vec2 { return Vec2{r2.Add(v.Vec, rhs.Vec)} }

// Sub returns v - rhs.
func (v Vec2) Sub(rhs Vec2) Vec2 { return Vec2{r2.Sub(v.Vec, rhs.Vec)} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return V2(-v.Vec.X, -v.Vec.Y) }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{r2.Scale(s, v.Vec)} }

// Div returns v divided by s.
func (v Vec2) Div(s float64) Vec2 { return V2(v.Vec.X/s, v.Vec.Y/s) }

// Magnitude returns the length of v.
func (v Vec2) Magnitude() float64 { return r2.Norm(v.Vec) }

// MagnitudeSq returns the squared length of v.
func (v Vec2) MagnitudeSq() float64 { return r2.Norm2(v.Vec) }

// Dot returns the dot product of v and rhs.
func (v Vec2) Dot(rhs Vec2) float64 { return r2.Dot(v.Vec, rhs.Vec) }

// PerpDot returns the perpendicular dot product of v and rhs.
func (v Vec2) PerpDot(rhs Vec2) float64 { return r2.Cross(v.Vec, rhs.Vec) }

// Distance returns the distance between v and rhs.
func (v Vec2) Distance(rhs Vec2) float64 { return r2.Norm(r2.Sub(v.Vec, rhs.Vec)) }

// DistanceSq returns the squared distance between v and rhs.
func (v Vec2) DistanceSq(rhs Vec2) float64 { return r2.Norm2(r2.Sub(v.Vec, rhs.Vec)) }

// Normalize returns v scaled to length one. The components of the result
// are NaN when v has length zero.
func (v Vec2) Normalize() Vec2 { return Vec2{r2.Unit(v.Vec)} }

// SafeNormalize returns v scaled to length one, or ok=false when the
// length is zero or not finite.
func (v Vec2) SafeNormalize() (Vec2, bool) {
	l := r2.Norm(v.Vec)
	if l == 0 || !vectortraits.IsFinite(l) {
		return Vec2{}, false
	}
	return v.Div(l), true
}

// AbsDiffEq reports per-axis approximate equality within epsilon.
func (v Vec2) AbsDiffEq(rhs Vec2, epsilon float64) bool {
	return approx.AbsDiffEq(v.Vec.X, rhs.Vec.X, epsilon) &&
		approx.AbsDiffEq(v.Vec.Y, rhs.Vec.Y, epsilon)
}

// UlpsEq reports per-axis approximate equality within epsilon and maxUlps.
func (v Vec2) UlpsEq(rhs Vec2, epsilon float64, maxUlps uint32) bool {
	return approx.UlpsEq(v.Vec.X, rhs.Vec.X, epsilon, maxUlps) &&
		approx.UlpsEq(v.Vec.Y, rhs.Vec.Y, epsilon, maxUlps)
}

// FromXYZ returns a new vector with the given components.
func (Vec3) FromXYZ(x, y, z float64) Vec3 { return V3(x, y, z) }

// X returns the x component.
func (v Vec3) X() float64 { return v.Vec.X }

// Y returns the y component.
func (v Vec3) Y() float64 { return v.Vec.Y }

// Z returns the z component.
func (v Vec3) Z() float64 { return v.Vec.Z }

// WithX returns a copy with the x component replaced.
func (v Vec3) WithX(x float64) Vec3 { return V3(x, v.Vec.Y, v.Vec.Z) }

// WithY returns a copy with the y component replaced.
func (v Vec3) WithY(y float64) Vec3 { return V3(v.Vec.X, y, v.Vec.Z) }

// WithZ returns a copy with the z component replaced.
func (v Vec3) WithZ(z float64) Vec3 { return V3(v.Vec.X, v.Vec.Y, z) }

// SetX replaces the x component in place.
func (v *Vec3) SetX(x float64) { v.Vec.X = x }

// SetY replaces the y component in place.
func (v *Vec3) SetY(y float64) { v.Vec.Y = y }

// SetZ replaces the z component in place.
func (v *Vec3) SetZ(z float64) { v.Vec.Z = z }

// At returns the component at index i.
func (v Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.Vec.X
	case 1:
		return v.Vec.Y
	case 2:
		return v.Vec.Z
	}
	panic("gonumvec: vector index out of range")
}

// To2D drops the z component.
func (v Vec3) To2D() Vec2 { return V2(v.Vec.X, v.Vec.Y) }

// Add returns v + rhs.
func (v Vec3) Add(rhs Vec3) Vec3 { return Vec3{r3.Add(v.Vec, rhs.Vec)} }

// Sub returns v - rhs.
func (v Vec3) Sub(rhs Vec3) Vec3 { return Vec3{r3.Sub(v.Vec, rhs.Vec)} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return V3(-v.Vec.X, -v.Vec.Y, -v.Vec.Z) }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{r3.Scale(s, v.Vec)} }

// Div returns v divided by s.
func (v Vec3) Div(s float64) Vec3 {
	return V3(v.Vec.X/s, v.Vec.Y/s, v.Vec.Z/s)
}

// Magnitude returns the length of v.
func (v Vec3) Magnitude() float64 { return r3.Norm(v.Vec) }

// MagnitudeSq returns the squared length of v.
func (v Vec3) MagnitudeSq() float64 { return r3.Norm2(v.Vec) }

// Dot returns the dot product of v and rhs.
func (v Vec3) Dot(rhs Vec3) float64 { return r3.Dot(v.Vec, rhs.Vec) }

// Cross returns the right-handed cross product of v and rhs.
func (v Vec3) Cross(rhs Vec3) Vec3 { return Vec3{r3.Cross(v.Vec, rhs.Vec)} }

// Distance returns the distance between v and rhs.
func (v Vec3) Distance(rhs Vec3) float64 { return r3.Norm(r3.Sub(v.Vec, rhs.Vec)) }

// DistanceSq returns the squared distance between v and rhs.
func (v Vec3) DistanceSq(rhs Vec3) float64 { return r3.Norm2(r3.Sub(v.Vec, rhs.Vec)) }

// Normalize returns v scaled to length one. The components of the result
// are NaN when v has length zero.
func (v Vec3) Normalize() Vec3 { return Vec3{r3.Unit(v.Vec)} }

// SafeNormalize returns v scaled to length one, or ok=false when the
// length is zero or not finite.
func (v Vec3) SafeNormalize() (Vec3, bool) {
	l := r3.Norm(v.Vec)
	if l == 0 || !vectortraits.IsFinite(l) {
		return Vec3{}, false
	}
	return v.Div(l), true
}

// AbsDiffEq reports per-axis approximate equality within epsilon.
func (v Vec3) AbsDiffEq(rhs Vec3, epsilon float64) bool {
	return approx.AbsDiffEq(v.Vec.X, rhs.Vec.X, epsilon) &&
		approx.AbsDiffEq(v.Vec.Y, rhs.Vec.Y, epsilon) &&
		approx.AbsDiffEq(v.Vec.Z, rhs.Vec.Z, epsilon)
}

// UlpsEq reports per-axis approximate equality within epsilon and maxUlps.
func (v Vec3) UlpsEq(rhs Vec3, epsilon float64, maxUlps uint32) bool {
	return approx.UlpsEq(v.Vec.X, rhs.Vec.X, epsilon, maxUlps) &&
		approx.UlpsEq(v.Vec.Y, rhs.Vec.Y, epsilon, maxUlps) &&
		approx.UlpsEq(v.Vec.Z, rhs.Vec.Z, epsilon, maxUlps)
}
