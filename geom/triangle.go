package geom

import "fmt"

// Triangle stores its vertices in the order they were given. Orientation is
// never stored, it is derived from the signed area.
type Triangle[T Signed] struct {
	Points [3]Point[T]
}

type TriangleF64 = Triangle[float64]

func NewTriangle[T Signed](a, b, c Point[T]) Triangle[T] {
	return Triangle[T]{Points: [3]Point[T]{a, b, c}}
}

func (t Triangle[T]) Centroid() Point[T] {
	var sx, sy T
	for _, p := range t.Points {
		sx += p.X
		sy += p.Y
	}
	return Point[T]{sx / 3, sy / 3}
}

// SignedArea is half the cross product of (p1-p0) and (p2-p0). It is negative
// when the vertices wind clockwise.
func (t Triangle[T]) SignedArea() T {
	a, b, c := t.Points[0], t.Points[1], t.Points[2]
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}

func (t Triangle[T]) Area() T {
	area := t.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

func (t Triangle[T]) IsCCW() bool {
	return t.SignedArea() > 0
}

func (t Triangle[T]) IsCW() bool {
	return t.SignedArea() < 0
}

// CounterClockwise returns the same triangle with its vertices in counter
// clockwise order.
func (t Triangle[T]) CounterClockwise() Triangle[T] {
	if t.IsCW() {
		return NewTriangle(t.Points[1], t.Points[0], t.Points[2])
	}
	return t
}

// Circumcenter intersects the perpendicular bisectors of (p0, p1) and
// (p0, p2). It returns false when they are parallel, which happens for flat
// triangles.
func (t Triangle[T]) Circumcenter() (Point[T], bool) {
	p0, p1, p2 := t.Points[0], t.Points[1], t.Points[2]

	bisec01 := LineBetween(p0, p1).Perpendicular(p0.Midpoint(p1))
	bisec02 := LineBetween(p0, p2).Perpendicular(p0.Midpoint(p2))

	return bisec01.Intersection(bisec02)
}

// SquaredCircumcircle returns the circumcenter and the squared radius.
func (t Triangle[T]) SquaredCircumcircle() (center Point[T], squaredRadius T, ok bool) {
	center, ok = t.Circumcenter()
	if !ok {
		return center, 0, false
	}
	return center, center.SquaredDist(t.Points[0]), true
}

// Circumcircle returns the circumcenter and the radius.
func (t Triangle[T]) Circumcircle() (center Point[T], radius float64, ok bool) {
	center, ok = t.Circumcenter()
	if !ok {
		return center, 0, false
	}
	return center, Dist(center, t.Points[0]), true
}

func (t Triangle[T]) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.Points[0], t.Points[1], t.Points[2])
}
