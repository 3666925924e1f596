package geom

import "golang.org/x/exp/constraints"

// Number is any scalar a Point can be built from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed scalars can be negated, which slopes, perpendiculars and signed areas
// rely on. Unsigned coordinates should be cast before building lines or
// triangles from them.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Segment is a directed edge between two points. Polygon edges and the
// Delaunay edge pool are both expressed as segments.
type Segment[T Number] struct {
	Start Point[T]
	End   Point[T]
}

// Reversed returns the segment going the other way.
func (s Segment[T]) Reversed() Segment[T] {
	return Segment[T]{s.End, s.Start}
}

// SameEdge reports whether both segments join the same two points, in either
// direction.
func (s Segment[T]) SameEdge(other Segment[T]) bool {
	return s == other || s == other.Reversed()
}

type PointStack[T Number] []Point[T]
