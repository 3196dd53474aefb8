package vectortraits

// The helper functions below constrain their vector type parameter to the
// smallest method set they need, so they also accept types that implement
// only part of the Vector2/Vector3 surface. Go cannot infer the scalar
// type parameter from a method set, so call sites instantiate explicitly:
//
//	c, ok := vectortraits.Centroid2[vec.Vec2[float64], float64](points)

type additive2[V any, S Scalar] interface {
	XY[S]
	Add(rhs V) V
	Div(s S) V
}

type additive3[V any, S Scalar] interface {
	XYZ[S]
	Add(rhs V) V
	Div(s S) V
}

type bounded2[V any, S Scalar] interface {
	XY[S]
	FromXY(x, y S) V
}

type bounded3[V any, S Scalar] interface {
	XYZ[S]
	FromXYZ(x, y, z S) V
}

type metric[V any, S Scalar] interface {
	Distance(rhs V) S
}

// Sum2 returns the component-wise sum of the points. The zero vector is
// returned for an empty slice.
func Sum2[V additive2[V, S], S Scalar](points []V) V {
	var sum V
	for i, p := range points {
		if i == 0 {
			sum = p
			continue
		}
		sum = sum.Add(p)
	}
	return sum
}

// Sum3 returns the component-wise sum of the points. The zero vector is
// returned for an empty slice.
func Sum3[V additive3[V, S], S Scalar](points []V) V {
	var sum V
	for i, p := range points {
		if i == 0 {
			sum = p
			continue
		}
		sum = sum.Add(p)
	}
	return sum
}

// Centroid2 returns the arithmetic mean point. ok is false for an empty
// slice.
func Centroid2[V additive2[V, S], S Scalar](points []V) (V, bool) {
	if len(points) == 0 {
		var zero V
		return zero, false
	}
	return Sum2[V, S](points).Div(S(len(points))), true
}

// Centroid3 returns the arithmetic mean point. ok is false for an empty
// slice.
func Centroid3[V additive3[V, S], S Scalar](points []V) (V, bool) {
	if len(points) == 0 {
		var zero V
		return zero, false
	}
	return Sum3[V, S](points).Div(S(len(points))), true
}

// Bounds2 returns the corners of the axis-aligned bounding box of the
// points. ok is false for an empty slice.
func Bounds2[V bounded2[V, S], S Scalar](points []V) (lo, hi V, ok bool) {
	if len(points) == 0 {
		return lo, hi, false
	}
	minX, minY := points[0].X(), points[0].Y()
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X())
		minY = min(minY, p.Y())
		maxX = max(maxX, p.X())
		maxY = max(maxY, p.Y())
	}
	var zero V
	return zero.FromXY(minX, minY), zero.FromXY(maxX, maxY), true
}

// Bounds3 returns the corners of the axis-aligned bounding box of the
// points. ok is false for an empty slice.
func Bounds3[V bounded3[V, S], S Scalar](points []V) (lo, hi V, ok bool) {
	if len(points) == 0 {
		return lo, hi, false
	}
	minX, minY, minZ := points[0].X(), points[0].Y(), points[0].Z()
	maxX, maxY, maxZ := minX, minY, minZ
	for _, p := range points[1:] {
		minX = min(minX, p.X())
		minY = min(minY, p.Y())
		minZ = min(minZ, p.Z())
		maxX = max(maxX, p.X())
		maxY = max(maxY, p.Y())
		maxZ = max(maxZ, p.Z())
	}
	var zero V
	return zero.FromXYZ(minX, minY, minZ), zero.FromXYZ(maxX, maxY, maxZ), true
}

// PathLength2 returns the total length of the polyline through the points
// in order. Fewer than two points have length zero.
func PathLength2[V metric[V, S], S Scalar](points []V) S {
	return pathLength[V, S](points)
}

// PathLength3 returns the total length of the polyline through the points
// in order. Fewer than two points have length zero.
func PathLength3[V metric[V, S], S Scalar](points []V) S {
	return pathLength[V, S](points)
}

func pathLength[V metric[V, S], S Scalar](points []V) S {
	var total S
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}
