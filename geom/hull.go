package geom

import "slices"

// ConvexHull computes the convex hull of the points with a Graham scan. The
// result lists hull vertices counter clockwise, starting from the lowest point
// (lowest x on ties). Colinear points on the boundary are left out. Inputs
// with fewer than 2 points are returned as is.
//
// The input slice is not modified.
func ConvexHull(points []PointF64) []PointF64 {
	if len(points) < 2 {
		return slices.Clone(points)
	}

	pivot := points[0]
	for _, p := range points[1:] {
		if ycmp := Compare(p.Y, pivot.Y); ycmp < 0 || (ycmp == 0 && Compare(p.X, pivot.X) < 0) {
			pivot = p
		}
	}

	// Sort in descending order so that points come off the back of the slice in
	// ascending angle order, starting with the pivot itself.
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b PointF64) int {
		if c := Compare(PolarAngle(pivot, b), PolarAngle(pivot, a)); c != 0 {
			return c
		}
		if c := Compare(b.Y, a.Y); c != 0 {
			return c
		}
		return Compare(b.X, a.X)
	})

	remaining := PointStack[float64](sorted)
	hull := PointStack[float64]{}
	hull.Push(remaining.Pop())
	hull.Push(remaining.Pop())

	for !remaining.Empty() {
		p := remaining.Pop()
		for hull.Len() >= 2 && AngleOrientation(hull.PeekSecond(), hull.Peek(), p) != CounterClockwise {
			hull.Pop()
		}
		hull.Push(p)
	}

	return hull
}
