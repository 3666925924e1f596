package geom

import "fmt"

// BoundingBox is an axis aligned box. The box returned by NewBoundingBox is
// empty: its min is greater than its max, so it contains nothing and
// expanding it by a point yields a zero-sized box at that point.
type BoundingBox[T Number] struct {
	min Point[T]
	max Point[T]
}

func NewBoundingBox[T Number]() BoundingBox[T] {
	lo, hi := limits[T]()
	return BoundingBox[T]{
		min: Point[T]{hi, hi},
		max: Point[T]{lo, lo},
	}
}

// BoundingBoxFromPoints returns the smallest box covering all the points.
func BoundingBoxFromPoints[T Number](points []Point[T]) BoundingBox[T] {
	bbox := NewBoundingBox[T]()
	bbox.Extend(points)
	return bbox
}

// BoundingBoxFromDimensions returns a box of the given size anchored at the
// origin.
func BoundingBoxFromDimensions[T Number](width, height T) BoundingBox[T] {
	return BoundingBoxFromDimensionsAndOrigin(Point[T]{}, width, height)
}

func BoundingBoxFromDimensionsAndOrigin[T Number](origin Point[T], width, height T) BoundingBox[T] {
	bbox := NewBoundingBox[T]()
	bbox.ExpandByPoint(origin)
	bbox.ExpandByPoint(Point[T]{origin.X + width, origin.Y + height})
	return bbox
}

func (b BoundingBox[T]) IsEmpty() bool {
	return b.max.X < b.min.X || b.max.Y < b.min.Y
}

// Min is the corner with the lowest coordinates.
func (b BoundingBox[T]) Min() Point[T] { return b.min }

// Max is the corner with the highest coordinates.
func (b BoundingBox[T]) Max() Point[T] { return b.max }

// Dimensions returns the width and the height of the box, or false if the box
// is empty.
func (b BoundingBox[T]) Dimensions() (width, height T, ok bool) {
	if b.IsEmpty() {
		return 0, 0, false
	}
	return b.max.X - b.min.X, b.max.Y - b.min.Y, true
}

func (b BoundingBox[T]) Width() (T, bool) {
	w, _, ok := b.Dimensions()
	return w, ok
}

func (b BoundingBox[T]) Height() (T, bool) {
	_, h, ok := b.Dimensions()
	return h, ok
}

func (b BoundingBox[T]) Area() (T, bool) {
	w, h, ok := b.Dimensions()
	return w * h, ok
}

func (b *BoundingBox[T]) ExpandByPoint(p Point[T]) {
	b.min = b.min.Lowest(p)
	b.max = b.max.Highest(p)
}

func (b *BoundingBox[T]) Extend(points []Point[T]) {
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// Contains is inclusive on all four edges.
func (b BoundingBox[T]) Contains(p Point[T]) bool {
	return b.min.X <= p.X && p.X <= b.max.X && b.min.Y <= p.Y && p.Y <= b.max.Y
}

// SplitAt divides the box into four boxes around p. The boxes share the edges
// through p, so they only overlap on those lines. With y growing downwards
// (screen coordinates) the order is:
//
//	min ──────┬──────┐
//	 │   0    │  1   │
//	 ├────────p──────┤
//	 │   2    │  3   │
//	 └────────┴──── max
//
// That is top-left, top-right, bottom-left and bottom-right. The second result
// is false when p is not inside the box, which includes every point when the
// box is empty.
func (b BoundingBox[T]) SplitAt(p Point[T]) ([4]BoundingBox[T], bool) {
	if !b.Contains(p) {
		return [4]BoundingBox[T]{}, false
	}
	return [4]BoundingBox[T]{
		{min: b.min, max: p},
		{min: Point[T]{p.X, b.min.Y}, max: Point[T]{b.max.X, p.Y}},
		{min: Point[T]{b.min.X, p.Y}, max: Point[T]{p.X, b.max.Y}},
		{min: p, max: b.max},
	}, true
}

// Points returns the corners in clockwise order starting from min (clockwise
// on screen, where y grows downwards).
func (b BoundingBox[T]) Points() [4]Point[T] {
	return [4]Point[T]{
		b.min,
		{b.max.X, b.min.Y},
		b.max,
		{b.min.X, b.max.Y},
	}
}

func (b BoundingBox[T]) Center() Point[T] {
	return b.min.Midpoint(b.max)
}

func (b BoundingBox[T]) String() string {
	if b.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%v-%v]", b.min, b.max)
}
