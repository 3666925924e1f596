package geom

import "math"

type Orientation int

const (
	Colinear Orientation = iota
	CounterClockwise
	Clockwise
)

func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "ccw"
	case Clockwise:
		return "cw"
	}
	return "colinear"
}

// PolarAngle of p2 as seen from p1, in radians within [-π, π].
func PolarAngle(p1, p2 PointF64) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
}

// AngleOrientation tells which way the path p1 → p2 → p3 turns at p2.
func AngleOrientation(p1, p2, p3 PointF64) Orientation {
	area := (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
	switch Compare(area, 0) {
	case -1:
		return Clockwise
	case 1:
		return CounterClockwise
	}
	return Colinear
}
