package geom

import "fmt"

// LineEquation is either a vertical line at some x, or a line described by its
// slope and y intercept. Horizontal lines are regular lines with a zero slope.
// The constructors zero the fields the other representation uses, so two
// equations can be compared with ==.
type LineEquation[T Signed] struct {
	vertical   bool
	x          T
	slope      T
	yintercept T
}

// LineBetween returns the line through both points. It is vertical iff the
// points share the same X.
func LineBetween[T Signed](p1, p2 Point[T]) LineEquation[T] {
	if slope, ok := p1.Slope(p2); ok {
		return NewLine(slope, p1.YIntercept(slope))
	}
	return VerticalLine(p1.X)
}

func VerticalLine[T Signed](x T) LineEquation[T] {
	return LineEquation[T]{vertical: true, x: x}
}

func HorizontalLine[T Signed](y T) LineEquation[T] {
	return NewLine(0, y)
}

func NewLine[T Signed](slope, yintercept T) LineEquation[T] {
	return LineEquation[T]{slope: slope, yintercept: yintercept}
}

func (l LineEquation[T]) IsVertical() bool {
	return l.vertical
}

func (l LineEquation[T]) IsHorizontal() bool {
	return !l.vertical && l.slope == 0
}

// X of a vertical line.
func (l LineEquation[T]) X() (T, bool) {
	return l.x, l.vertical
}

func (l LineEquation[T]) Slope() (T, bool) {
	return l.slope, !l.vertical
}

func (l LineEquation[T]) YIntercept() (T, bool) {
	return l.yintercept, !l.vertical
}

// YAt is undefined for vertical lines.
func (l LineEquation[T]) YAt(x T) (T, bool) {
	if l.vertical {
		return 0, false
	}
	return l.slope*x + l.yintercept, true
}

// XAt is undefined for horizontal lines.
func (l LineEquation[T]) XAt(y T) (T, bool) {
	if l.vertical {
		return l.x, true
	}
	if l.slope == 0 {
		return 0, false
	}
	return (y - l.yintercept) / l.slope, true
}

// DxFor returns how much x changes when y changes by dy.
func (l LineEquation[T]) DxFor(dy T) (T, bool) {
	if l.vertical {
		return 0, true
	}
	if l.slope == 0 {
		return 0, false
	}
	return dy / l.slope, true
}

// Intersection returns the point where the two lines cross, or false if they
// are parallel. Two vertical lines never intersect here, not even when they
// are the same line.
func (l LineEquation[T]) Intersection(other LineEquation[T]) (Point[T], bool) {
	switch {
	case l.vertical && other.vertical:
		return Point[T]{}, false
	case l.vertical:
		y, _ := other.YAt(l.x)
		return Point[T]{l.x, y}, true
	case other.vertical:
		y, _ := l.YAt(other.x)
		return Point[T]{other.x, y}, true
	case l.slope == other.slope:
		return Point[T]{}, false
	}

	x := (other.yintercept - l.yintercept) / (l.slope - other.slope)
	y, _ := l.YAt(x)
	return Point[T]{x, y}, true
}

// Perpendicular returns the line perpendicular to l going through p.
func (l LineEquation[T]) Perpendicular(p Point[T]) LineEquation[T] {
	if l.vertical {
		return HorizontalLine(p.Y)
	}
	if l.slope == 0 {
		return VerticalLine(p.X)
	}
	slope := -1 / l.slope
	return NewLine(slope, p.YIntercept(slope))
}

func (l LineEquation[T]) String() string {
	if l.vertical {
		return fmt.Sprintf("x = %v", l.x)
	}
	return fmt.Sprintf("y = %v*x + %v", l.slope, l.yintercept)
}

// LinearInterpolate returns the y at x on the line between p1 and p2.
func LinearInterpolate[T Signed](p1, p2 Point[T], x T) (T, bool) {
	return LineBetween(p1, p2).YAt(x)
}
