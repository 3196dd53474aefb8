// Package vectest is a conformance harness for vector backends. A backend
// package instantiates Vector2 and Vector3 with its concrete types inside
// its own tests:
//
//	func TestVec2(t *testing.T) {
//		vectest.Vector2[vec.Vec2[float64], vec.Vec3[float64], float64](t)
//	}
//
// The harness only uses exactly representable inputs, so its equality
// expectations hold for every backend regardless of evaluation order.
package vectest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	vectortraits "github.com/eadf/vector-traits"
	"github.com/eadf/vector-traits/approx"
)

// Vector2 runs the 2D conformance suite for V with 3D counterpart V3.
func Vector2[V vectortraits.Vector2[V, V3, S], V3 vectortraits.Vector3[V3, V, S], S vectortraits.Scalar](t *testing.T) {
	var zero V

	t.Run("accessors", func(t *testing.T) {
		v := zero.FromXY(1, 2)
		require.Equal(t, S(1), v.X())
		require.Equal(t, S(2), v.Y())
		require.Equal(t, S(1), v.At(0))
		require.Equal(t, S(2), v.At(1))
		require.Panics(t, func() { _ = v.At(2) })

		w := v.WithX(7).WithY(8)
		require.Equal(t, S(7), w.X())
		require.Equal(t, S(8), w.Y())
		require.Equal(t, S(1), v.X(), "WithX must not mutate the receiver")
	})

	t.Run("algebra", func(t *testing.T) {
		v := zero.FromXY(1, 2)
		six := v.Scale(6)
		require.Equal(t, S(6), six.X())
		require.Equal(t, S(12), six.Y())
		require.Equal(t, v, six.Div(6))

		require.Equal(t, zero.FromXY(4, 6), v.Add(zero.FromXY(3, 4)))
		require.Equal(t, zero.FromXY(-2, -2), v.Sub(zero.FromXY(3, 4)))
		require.Equal(t, zero.FromXY(-1, -2), v.Neg())
		require.Equal(t, zero, v.Add(v.Neg()))
	})

	t.Run("lift", func(t *testing.T) {
		v := zero.FromXY(1, 2)
		l := v.To3D(5)
		require.Equal(t, S(1), l.X())
		require.Equal(t, S(2), l.Y())
		require.Equal(t, S(5), l.Z())
		require.Equal(t, v, l.To2D())
	})

	t.Run("metric", func(t *testing.T) {
		v := zero.FromXY(3, 4)
		require.Equal(t, S(5), v.Magnitude())
		require.Equal(t, S(25), v.MagnitudeSq())
		require.Equal(t, S(5), zero.FromXY(0, 0).Distance(v))
		require.Equal(t, S(25), zero.FromXY(0, 0).DistanceSq(v))

		require.Equal(t, S(11), zero.FromXY(1, 2).Dot(v))
		require.Equal(t, S(-2), zero.FromXY(1, 2).PerpDot(v))
		// PerpDot is antisymmetric.
		require.Equal(t, S(2), v.PerpDot(zero.FromXY(1, 2)))

		mag := v.Magnitude()
		require.True(t, approx.UlpsEq(mag*mag, v.MagnitudeSq(), approx.DefaultEpsilon[S](), approx.DefaultMaxUlps()))
	})

	t.Run("normalize", func(t *testing.T) {
		v := zero.FromXY(3, 4)
		n := v.Normalize()
		requireScalarNear[S](t, 0.6, n.X())
		requireScalarNear[S](t, 0.8, n.Y())
		requireScalarNear[S](t, 1, n.Magnitude())

		s, ok := v.SafeNormalize()
		require.True(t, ok)
		require.True(t, s.UlpsEq(n, approx.DefaultEpsilon[S](), approx.DefaultMaxUlps()))

		_, ok = zero.SafeNormalize()
		require.False(t, ok)

		bad := zero.Normalize()
		require.True(t, isNaN(bad.X()))
		require.True(t, isNaN(bad.Y()))
	})

	t.Run("approx", func(t *testing.T) {
		eps := approx.DefaultEpsilon[S]()
		ulps := approx.DefaultMaxUlps()

		v := zero.FromXY(1000, -1000)
		require.True(t, v.UlpsEq(v, eps, ulps))
		require.True(t, v.AbsDiffEq(v, eps))

		neighbor := v.WithX(nextUp(v.X()))
		require.True(t, v.UlpsEq(neighbor, eps, ulps))
		require.False(t, v.AbsDiffEq(neighbor, eps))

		far := v.WithX(2000)
		require.False(t, v.UlpsEq(far, eps, ulps))
		require.False(t, v.AbsDiffEq(far, eps))

		nan := v.WithY(vectortraits.NaN[S]())
		require.False(t, nan.UlpsEq(nan, eps, ulps))
		require.False(t, nan.AbsDiffEq(nan, eps))
	})
}

// Vector3 runs the 3D conformance suite for V with 2D counterpart V2.
func Vector3[V vectortraits.Vector3[V, V2, S], V2 vectortraits.Vector2[V2, V, S], S vectortraits.Scalar](t *testing.T) {
	var zero V

	t.Run("accessors", func(t *testing.T) {
		v := zero.FromXYZ(1, 2, 3)
		require.Equal(t, S(1), v.X())
		require.Equal(t, S(2), v.Y())
		require.Equal(t, S(3), v.Z())
		require.Equal(t, S(1), v.At(0))
		require.Equal(t, S(2), v.At(1))
		require.Equal(t, S(3), v.At(2))
		require.Panics(t, func() { _ = v.At(3) })

		w := v.WithX(7).WithY(8).WithZ(9)
		require.Equal(t, S(7), w.X())
		require.Equal(t, S(8), w.Y())
		require.Equal(t, S(9), w.Z())
		require.Equal(t, S(3), v.Z(), "WithZ must not mutate the receiver")
	})

	t.Run("algebra", func(t *testing.T) {
		v := zero.FromXYZ(1, 2, 3)
		six := v.Scale(6)
		require.Equal(t, S(6), six.X())
		require.Equal(t, S(12), six.Y())
		require.Equal(t, S(18), six.Z())
		require.Equal(t, v, six.Div(6))

		require.Equal(t, zero.FromXYZ(5, 7, 9), v.Add(zero.FromXYZ(4, 5, 6)))
		require.Equal(t, zero.FromXYZ(-3, -3, -3), v.Sub(zero.FromXYZ(4, 5, 6)))
		require.Equal(t, zero.FromXYZ(-1, -2, -3), v.Neg())
		require.Equal(t, zero, v.Add(v.Neg()))
	})

	t.Run("drop", func(t *testing.T) {
		v := zero.FromXYZ(1, 2, 3)
		d := v.To2D()
		require.Equal(t, S(1), d.X())
		require.Equal(t, S(2), d.Y())
		require.Equal(t, v.WithZ(5), d.To3D(5))
	})

	t.Run("metric", func(t *testing.T) {
		v := zero.FromXYZ(2, 3, 6)
		require.Equal(t, S(7), v.Magnitude())
		require.Equal(t, S(49), v.MagnitudeSq())
		require.Equal(t, S(7), zero.FromXYZ(0, 0, 0).Distance(v))
		require.Equal(t, S(49), zero.FromXYZ(0, 0, 0).DistanceSq(v))

		require.Equal(t, S(26), zero.FromXYZ(1, 2, 3).Dot(v))

		mag := v.Magnitude()
		require.True(t, approx.UlpsEq(mag*mag, v.MagnitudeSq(), approx.DefaultEpsilon[S](), approx.DefaultMaxUlps()))
	})

	t.Run("cross", func(t *testing.T) {
		x := zero.FromXYZ(1, 0, 0)
		y := zero.FromXYZ(0, 1, 0)
		z := zero.FromXYZ(0, 0, 1)
		require.Equal(t, z, x.Cross(y))
		require.Equal(t, z.Neg(), y.Cross(x))

		v := zero.FromXYZ(1, 2, 3)
		// Colinear vectors have a zero cross product.
		require.Equal(t, zero, v.Cross(v.Scale(6)))

		w := zero.FromXYZ(4, 5, 6)
		c := v.Cross(w)
		require.Equal(t, S(0), c.Dot(v))
		require.Equal(t, S(0), c.Dot(w))
	})

	t.Run("normalize", func(t *testing.T) {
		v := zero.FromXYZ(2, 3, 6)
		n := v.Normalize()
		requireScalarNear[S](t, 2.0/7.0, n.X())
		requireScalarNear[S](t, 3.0/7.0, n.Y())
		requireScalarNear[S](t, 6.0/7.0, n.Z())
		requireScalarNear[S](t, 1, n.Magnitude())

		s, ok := v.SafeNormalize()
		require.True(t, ok)
		require.True(t, s.UlpsEq(n, approx.DefaultEpsilon[S](), approx.DefaultMaxUlps()))

		_, ok = zero.SafeNormalize()
		require.False(t, ok)

		bad := zero.Normalize()
		require.True(t, isNaN(bad.X()))
		require.True(t, isNaN(bad.Y()))
		require.True(t, isNaN(bad.Z()))
	})

	t.Run("approx", func(t *testing.T) {
		eps := approx.DefaultEpsilon[S]()
		ulps := approx.DefaultMaxUlps()

		v := zero.FromXYZ(1000, -1000, 500)
		require.True(t, v.UlpsEq(v, eps, ulps))
		require.True(t, v.AbsDiffEq(v, eps))

		neighbor := v.WithZ(nextUp(v.Z()))
		require.True(t, v.UlpsEq(neighbor, eps, ulps))
		require.False(t, v.AbsDiffEq(neighbor, eps))

		far := v.WithX(2000)
		require.False(t, v.UlpsEq(far, eps, ulps))
		require.False(t, v.AbsDiffEq(far, eps))

		nan := v.WithY(vectortraits.NaN[S]())
		require.False(t, nan.UlpsEq(nan, eps, ulps))
		require.False(t, nan.AbsDiffEq(nan, eps))
	})
}

// requireScalarNear asserts that got is within a few ULPs of want. want is
// given as float64 and rounded into S first, so expectations can be
// written once for both widths.
func requireScalarNear[S vectortraits.Scalar](t *testing.T, want float64, got S) {
	t.Helper()
	require.True(t,
		approx.UlpsEq(S(want), got, approx.DefaultEpsilon[S](), approx.DefaultMaxUlps()),
		"want %v within tolerance of %v", want, got)
}

func isNaN[S vectortraits.Scalar](v S) bool {
	return v != v
}

func nextUp[S vectortraits.Scalar](v S) S {
	switch s := any(v).(type) {
	case float32:
		return S(math.Nextafter32(s, float32(math.Inf(1))))
	case float64:
		return S(math.Nextafter(s, math.Inf(1)))
	}
	return v
}
