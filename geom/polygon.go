package geom

// Polygon is a closed ring of points: the last point is always equal to the
// first one. The bounding box is computed once, at construction.
type Polygon[T Number] struct {
	points []Point[T]
	bbox   BoundingBox[T]
}

// NewPolygon builds a polygon from the given points, appending the first point
// at the end if the ring isn't already closed. It returns false if there are
// fewer than 3 distinct points, since those can't enclose anything.
func NewPolygon[T Number](points []Point[T]) (Polygon[T], bool) {
	if countDistinct(points, 3) < 3 {
		return Polygon[T]{}, false
	}

	ring := make([]Point[T], len(points), len(points)+1)
	copy(ring, points)
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	return Polygon[T]{
		points: ring,
		bbox:   BoundingBoxFromPoints(ring),
	}, true
}

// Points returns the closed ring. The slice must not be modified.
func (poly Polygon[T]) Points() []Point[T] {
	return poly.points
}

func (poly Polygon[T]) BoundingBox() BoundingBox[T] {
	return poly.bbox
}

// Edges returns each pair of consecutive points in the ring.
func (poly Polygon[T]) Edges() []Segment[T] {
	if len(poly.points) < 2 {
		return nil
	}
	edges := make([]Segment[T], 0, len(poly.points)-1)
	for i := 1; i < len(poly.points); i++ {
		edges = append(edges, Segment[T]{poly.points[i-1], poly.points[i]})
	}
	return edges
}

// Contains reports whether p is inside the polygon or on its boundary, using
// ray casting along the horizontal line through p. The arithmetic is done in
// float64 regardless of T.
func (poly Polygon[T]) Contains(p Point[T]) bool {
	// The bounding box check is only a fast reject: outside the box means
	// outside the polygon.
	if !poly.bbox.Contains(p) {
		return false
	}

	pt := Cast[float64](p)
	inside := false
	for _, edge := range poly.Edges() {
		p0 := Cast[float64](edge.Start)
		p1 := Cast[float64](edge.End)
		if !inRange(p0.Y, p1.Y, pt.Y) {
			continue
		}

		x, ok := LineBetween(p0, p1).XAt(pt.Y)
		if !ok {
			// Horizontal edge on the ray: either p is on it or it doesn't count.
			if inRange(p0.X, p1.X, pt.X) {
				return true
			}
			continue
		}

		if Compare(x, pt.X) == 0 {
			return true
		}

		// Skip the edge when the ray goes through its top vertex. The other
		// edge sharing that vertex has it as its bottom, so the vertex is
		// counted exactly once.
		if (p0.Y <= pt.Y && p1.Y == pt.Y) || (p1.Y <= pt.Y && p0.Y == pt.Y) {
			continue
		}

		if x < pt.X {
			inside = !inside
		}
	}
	return inside
}

func (poly Polygon[T]) Reverse() Polygon[T] {
	reversed := make([]Point[T], len(poly.points))
	for i, p := range poly.points {
		reversed[len(poly.points)-1-i] = p
	}
	return Polygon[T]{points: reversed, bbox: poly.bbox}
}

// SignedArea uses the shoelace formula. Counter clockwise rings have a
// positive area.
func (poly Polygon[T]) SignedArea() float64 {
	var sum float64
	for _, edge := range poly.Edges() {
		a := Cast[float64](edge.Start)
		b := Cast[float64](edge.End)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func (poly Polygon[T]) IsCCW() bool {
	return poly.SignedArea() > 0
}

// countDistinct counts distinct points, stopping early once limit is reached.
// Points are compared exactly and never hashed.
func countDistinct[T Number](points []Point[T], limit int) int {
	var seen []Point[T]
outer:
	for _, p := range points {
		for _, s := range seen {
			if s == p {
				continue outer
			}
		}
		seen = append(seen, p)
		if len(seen) >= limit {
			break
		}
	}
	return len(seen)
}
