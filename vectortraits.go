// Package vectortraits defines generic constraints for 2D and 3D vector
// types so downstream geometry code can be written once over both scalar
// precisions (float32, float64) and multiple concrete vector
// representations. Concrete backends live in the vec, mglvec and gonumvec
// subpackages; any third-party type whose method set satisfies the
// constraints works as well.
package vectortraits

// Scalar is the set of scalar types vectors are built from.
type Scalar interface {
	float32 | float64
}

// XY is the minimal accessor surface of a vector with x and y axes.
// Both 2D and 3D vector types satisfy it.
type XY[S Scalar] interface {
	X() S
	Y() S
}

// XYZ is the minimal accessor surface of a vector with x, y and z axes.
type XYZ[S Scalar] interface {
	XY[S]
	Z() S
}

// Vector2 is satisfied by a 2D vector type V with scalar type S whose 3D
// counterpart is V3. The constructor and With methods operate on the zero
// value, so generic code can build vectors without a factory:
//
//	var zero V
//	v := zero.FromXY(x, y)
//
// Mutating setters are deliberately not part of the constraint; concrete
// backends provide pointer-receiver SetX/SetY in addition.
type Vector2[V, V3 any, S Scalar] interface {
	XY[S]
	comparable

	// FromXY returns a new vector with the given components.
	FromXY(x, y S) V
	// WithX returns a copy with the x component replaced.
	WithX(x S) V
	// WithY returns a copy with the y component replaced.
	WithY(y S) V
	// At returns the component at index 0 or 1, panicking otherwise.
	At(i int) S
	// To3D lifts the vector into its 3D counterpart with the given z.
	To3D(z S) V3

	Add(rhs V) V
	Sub(rhs V) V
	Neg() V
	Scale(s S) V
	Div(s S) V

	Magnitude() S
	MagnitudeSq() S
	Dot(rhs V) S
	// PerpDot returns x1*y2 - y1*x2, the z component of the cross product
	// of the two vectors lifted into 3D.
	PerpDot(rhs V) S
	Distance(rhs V) S
	DistanceSq(rhs V) S

	Normalize() V
	// SafeNormalize reports ok=false instead of dividing by a zero length.
	SafeNormalize() (V, bool)

	AbsDiffEq(rhs V, epsilon S) bool
	UlpsEq(rhs V, epsilon S, maxUlps uint32) bool
}

// Vector3 is satisfied by a 3D vector type V with scalar type S whose 2D
// counterpart is V2. See Vector2 for the construction and setter
// conventions.
type Vector3[V, V2 any, S Scalar] interface {
	XYZ[S]
	comparable

	// FromXYZ returns a new vector with the given components.
	FromXYZ(x, y, z S) V
	// WithX returns a copy with the x component replaced.
	WithX(x S) V
	// WithY returns a copy with the y component replaced.
	WithY(y S) V
	// WithZ returns a copy with the z component replaced.
	WithZ(z S) V
	// At returns the component at index 0, 1 or 2, panicking otherwise.
	At(i int) S
	// To2D drops the z component.
	To2D() V2

	Add(rhs V) V
	Sub(rhs V) V
	Neg() V
	Scale(s S) V
	Div(s S) V

	Magnitude() S
	MagnitudeSq() S
	Dot(rhs V) S
	// Cross returns the right-handed cross product.
	Cross(rhs V) V
	Distance(rhs V) S
	DistanceSq(rhs V) S

	Normalize() V
	// SafeNormalize reports ok=false instead of dividing by a zero length.
	SafeNormalize() (V, bool)

	AbsDiffEq(rhs V, epsilon S) bool
	UlpsEq(rhs V, epsilon S, maxUlps uint32) bool
}
