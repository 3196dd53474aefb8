package mglvec_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/eadf/vector-traits/mglvec"
	"github.com/eadf/vector-traits/vectest"
)

func TestVec2(t *testing.T) {
	vectest.Vector2[mglvec.Vec2, mglvec.Vec3, float32](t)
}

func TestVec3(t *testing.T) {
	vectest.Vector3[mglvec.Vec3, mglvec.Vec2, float32](t)
}

func TestDVec2(t *testing.T) {
	vectest.Vector2[mglvec.DVec2, mglvec.DVec3, float64](t)
}

func TestDVec3(t *testing.T) {
	vectest.Vector3[mglvec.DVec3, mglvec.DVec2, float64](t)
}

func TestConstructors(t *testing.T) {
	require.Equal(t, mglvec.Vec2{1, 2}, mglvec.V2(1, 2))
	require.Equal(t, mglvec.Vec3{1, 2, 3}, mglvec.V3(1, 2, 3))
	require.Equal(t, mglvec.DVec2{1, 2}, mglvec.DV2(1, 2))
	require.Equal(t, mglvec.DVec3{1, 2, 3}, mglvec.DV3(1, 2, 3))
}

// Converting to and from the mathgl types is a plain type conversion that
// preserves the components.
func TestMathglConversion(t *testing.T) {
	m := mgl32.Vec2{1.5, -2.5}
	v := mglvec.Vec2(m)
	require.Equal(t, m.X(), v.X())
	require.Equal(t, m.Y(), v.Y())
	require.Equal(t, m, mgl32.Vec2(v))

	d := mgl64.Vec3{1, 2, 3}
	w := mglvec.DVec3(d)
	require.Equal(t, d.Z(), w.Z())
	require.Equal(t, d, mgl64.Vec3(w))
}

// The delegating operations must agree exactly with mathgl's own results.
func TestAgreesWithMathgl(t *testing.T) {
	a := mglvec.V3(1.5, -2.25, 3)
	b := mglvec.V3(0.5, 4, -1.25)

	require.Equal(t, mglvec.Vec3(mgl32.Vec3(a).Add(mgl32.Vec3(b))), a.Add(b))
	require.Equal(t, mglvec.Vec3(mgl32.Vec3(a).Cross(mgl32.Vec3(b))), a.Cross(b))
	require.Equal(t, mgl32.Vec3(a).Dot(mgl32.Vec3(b)), a.Dot(b))
	require.Equal(t, mgl32.Vec3(a).Len(), a.Magnitude())
	require.Equal(t, mglvec.Vec3(mgl32.Vec3(a).Normalize()), a.Normalize())
}

func TestSetters(t *testing.T) {
	v := mglvec.V2(1, 2)
	v.SetX(7)
	v.SetY(8)
	require.Equal(t, mglvec.V2(7, 8), v)

	w := mglvec.DV3(1, 2, 3)
	w.SetX(7)
	w.SetY(8)
	w.SetZ(9)
	require.Equal(t, mglvec.DV3(7, 8, 9), w)
}
