package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Point is a 2D coordinate. Equality is exact; two points are the same point
// only if both coordinates compare equal with ==.
type Point[T Number] struct {
	X T
	Y T
}

type (
	PointF64 = Point[float64]
	PointF32 = Point[float32]
	PointI32 = Point[int32]
	PointI64 = Point[int64]
	PointU32 = Point[uint32]
)

func NewPoint[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Midpoint between p and o. Integer coordinates are truncated.
func (p Point[T]) Midpoint(o Point[T]) Point[T] {
	return Point[T]{(p.X + o.X) / 2, (p.Y + o.Y) / 2}
}

// Slope of the line through p and o, computed in T. The second result is
// false exactly when the two points share the same X, i.e. the line is
// vertical.
func (p Point[T]) Slope(o Point[T]) (T, bool) {
	if p.X == o.X {
		return 0, false
	}
	return (p.Y - o.Y) / (p.X - o.X), true
}

// YIntercept of the line with the given slope that goes through p.
func (p Point[T]) YIntercept(slope T) T {
	return p.Y - slope*p.X
}

// SquaredDist computed in T. For unsigned coordinates the differences wrap,
// but the square of the wrapped value is still correct as long as the result
// fits in T.
func (p Point[T]) SquaredDist(o Point[T]) T {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

func (p Point[T]) Add(o Point[T]) Point[T] {
	return Point[T]{p.X + o.X, p.Y + o.Y}
}

func (p Point[T]) Sub(o Point[T]) Point[T] {
	return Point[T]{p.X - o.X, p.Y - o.Y}
}

// Lowest returns the point made of the lowest x and y of the two points.
func (p Point[T]) Lowest(o Point[T]) Point[T] {
	return Point[T]{min(p.X, o.X), min(p.Y, o.Y)}
}

// Highest returns the point made of the highest x and y of the two points.
func (p Point[T]) Highest(o Point[T]) Point[T] {
	return Point[T]{max(p.X, o.X), max(p.Y, o.Y)}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// SlopeAs is like Point.Slope, but converts both points to O before doing any
// arithmetic. This is how the slope between unsigned points is obtained.
func SlopeAs[O Signed, T Number](p, o Point[T]) (O, bool) {
	if p.X == o.X {
		return 0, false
	}
	dx := O(p.X) - O(o.X)
	dy := O(p.Y) - O(o.Y)
	return dy / dx, true
}

// SquaredDistAs computes the squared distance in O, which is usually wider
// than T.
func SquaredDistAs[O Number, T Number](p, o Point[T]) O {
	dx := O(p.X) - O(o.X)
	dy := O(p.Y) - O(o.Y)
	return dx*dx + dy*dy
}

// Dist is the euclidean distance between p and o.
func Dist[T Number](p, o Point[T]) float64 {
	return math.Sqrt(SquaredDistAs[float64](p, o))
}

// Cast converts a point to another numeric type, with Go conversion semantics
// (floats are truncated towards zero when converted to integers).
func Cast[O Number, T Number](p Point[T]) Point[O] {
	return Point[O]{O(p.X), O(p.Y)}
}

// ParsePoint parses "x,y" or "x y" into a float point.
func ParsePoint(s string) (PointF64, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return PointF64{}, errors.Errorf("wrong number of coords in %q, expected x and y", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return PointF64{}, errors.Wrapf(err, "bad x coordinate %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return PointF64{}, errors.Wrapf(err, "bad y coordinate %q", fields[1])
	}
	return PointF64{x, y}, nil
}
