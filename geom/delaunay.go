package geom

import "github.com/pkg/errors"

// ErrDegenerateTriangle is returned when triangulation produces a flat
// triangle, which has no circumcircle. Well spread points never trigger it;
// colinear points, duplicates and points on the edge of the bounding box can.
var ErrDegenerateTriangle = errors.New("degenerate triangle")

// Triangulate computes an approximate Delaunay triangulation of the points,
// restricted to the bounding box.
//
// Instead of starting from a super triangle enclosing all the points, the box
// is split into a fan of 4 triangles around the first point, and the other
// points are inserted one by one (Bowyer-Watson). The triangles touching the
// corners of the box are kept, so the result always covers the whole box.
//
// Fewer than 3 points yield no triangles.
func Triangulate(bbox BoundingBox[float64], points []PointF64) (triangles []TriangleF64, err error) {
	if len(points) < 3 {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			triangles = nil
			err = HandleTriangulatePanicRecover(r)
		}
	}()

	if bbox.IsEmpty() {
		fatalf("cannot triangulate inside an empty bounding box")
	}

	triangles = SuperTriangles(bbox, points[0])
	for _, p := range points[1:] {
		triangles = addPoint(triangles, p)
	}
	return triangles, nil
}

// SuperTriangles returns one triangle per edge of the box, all sharing first
// as their third vertex. Together they tile the box when first is inside it.
func SuperTriangles(bbox BoundingBox[float64], first PointF64) []TriangleF64 {
	corners := bbox.Points()
	triangles := make([]TriangleF64, 0, len(corners))
	for i := range corners {
		next := corners[CircularIndex(i+1, len(corners))]
		triangles = append(triangles, NewTriangle(corners[i], next, first))
	}
	return triangles
}

// addPoint removes every triangle whose circumcircle contains p, and fills the
// hole with triangles joining its boundary to p.
func addPoint(triangles []TriangleF64, p PointF64) []TriangleF64 {
	var edges []Segment[float64]
	result := make([]TriangleF64, 0, len(triangles)+2)

	for _, t := range triangles {
		center, squaredRadius, ok := t.SquaredCircumcircle()
		if !ok {
			throw(ErrDegenerateTriangle, "inserting %v: %v has no circumcircle", p, t)
		}

		if center.SquaredDist(p) <= squaredRadius {
			edges = append(edges,
				Segment[float64]{t.Points[0], t.Points[1]},
				Segment[float64]{t.Points[1], t.Points[2]},
				Segment[float64]{t.Points[2], t.Points[0]},
			)
		} else {
			result = append(result, t)
		}
	}

	for _, e := range dedupEdges(edges) {
		result = append(result, NewTriangle(e.Start, e.End, p))
	}
	return result
}

// dedupEdges keeps the edges appearing exactly once, in either direction.
// Edges shared by two removed triangles are inside the hole. Float points
// can't be hashed reliably, so this is quadratic.
func dedupEdges(edges []Segment[float64]) []Segment[float64] {
	var out []Segment[float64]
	for _, e := range edges {
		count := 0
		for _, other := range edges {
			if e.SameEdge(other) {
				count++
			}
		}
		if count == 1 {
			out = append(out, e)
		}
	}
	return out
}
