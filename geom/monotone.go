package geom

import "github.com/pkg/errors"

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges. Convex polygons, and so convex hulls, are always Y monotone.
//
// The below() ordering is used to simulate a slightly rotated coordinate system
// that eliminates horizontal segments. This affects where horizontal segments
// are allowed while maintaining strict monotonicity: on the left chain, a
// horizontal edge must sit _above_ the inside of the polygon, while on the
// right chain, it must sit _below_.

// ErrNotMonotone is returned when a polygon isn't Y monotone or winds
// clockwise. Either way the sweep ends up building a clockwise triangle.
var ErrNotMonotone = errors.New("polygon is not a counter clockwise y-monotone polygon")

// TriangulateMonotone splits a counter clockwise Y monotone polygon into
// len(points)-2 triangles, all counter clockwise, using only its own vertices.
func TriangulateMonotone[T Signed](poly Polygon[T]) (triangles []Triangle[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			triangles = nil
			err = HandleTriangulatePanicRecover(r)
		}
	}()

	if len(poly.points) < 4 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", len(poly.points))
	}
	// Drop the closing point
	return triangulateMonotone(poly.points[:len(poly.points)-1]), nil
}

func triangulateMonotone[T Signed](points []Point[T]) []Triangle[T] {
	if len(points) == 3 {
		return appendTriangle(nil, NewTriangle(points[0], points[1], points[2]))
	}

	triangles := make([]Triangle[T], 0, len(points)-2)

	// Find the top point
	top := 0
	for i, p := range points {
		if !below(p, points[top]) {
			top = i
		}
	}

	// Merge the two chains starting from the top, so that the points are sorted
	// from top to bottom, noting which are on the left chain. The bottom point
	// is tracked separately, as it's handled at the very end.
	sorted := make([]Point[T], 0, len(points))
	sorted = append(sorted, points[top])
	leftChain := map[Point[T]]bool{}
	var bottom Point[T]
	for leftOffset, rightOffset := 1, 1; ; {
		leftIndex := CircularIndex(top+leftOffset, len(points))
		rightIndex := CircularIndex(top-rightOffset, len(points))
		if leftIndex == rightIndex {
			bottom = points[leftIndex]
			break
		}

		leftPoint, rightPoint := points[leftIndex], points[rightIndex]
		if !below(leftPoint, rightPoint) {
			leftChain[leftPoint] = true
			sorted = append(sorted, leftPoint)
			leftOffset++
		} else {
			sorted = append(sorted, rightPoint)
			rightOffset++
		}
	}

	stack := PointStack[T]{}
	stack.Push(sorted[0])
	stack.Push(sorted[1])
	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		left := leftChain[p]

		if left != leftChain[stack.Peek()] {
			// We've jumped to the other chain. Monotonicity guarantees that all
			// stack points are visible from the current point, so we can empty the
			// entire stack, making new triangles.
			for !stack.Empty() {
				a := stack.Pop()
				if stack.Empty() {
					break
				}
				b := stack.Peek()
				if left {
					/*
					              b
					             /|
					 diagonal-> / |
					           p--a
					*/
					triangles = appendTriangle(triangles, NewTriangle(p, a, b))
				} else {
					/*
						b
						|\ <- diagonal
						| \
						a--p
					*/
					triangles = appendTriangle(triangles, NewTriangle(a, p, b))
				}
			}
			stack.Push(sorted[i-1])
			stack.Push(p)
			continue
		}

		// Same chain. Always pop the last point off; if no triangle is created
		// this time, it goes back.
		v := stack.Pop()
		for !stack.Empty() {
			q := stack.Peek()
			// p sees q iff the triangle they make with v is CCW
			var candidate Triangle[T]
			if left {
				/*
					q
					|\
					v \
					  \\ <- diagonal
					    \
					     p
				*/
				candidate = NewTriangle(p, q, v)
			} else {
				/*
					               q
					              /|
					             / v
					            / /
					diagonal-> //
					          /
					         p
				*/
				candidate = NewTriangle(p, v, q)
			}
			if !candidate.IsCCW() {
				break
			}
			v = stack.Pop()
			triangles = append(triangles, candidate)
		}
		stack.Push(v)
		stack.Push(p)
	}

	// Connect whatever is left on the stack to the bottom point. Stopping at the
	// last diagonal would drop the final triangle, which contains the bottom
	// point.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		if leftChain[l] {
			/*
				   p
				 / |
				l  | <- diagonal
				 \ |
				   b
			*/
			triangles = appendTriangle(triangles, NewTriangle(bottom, p, l))
		} else {
			/*
				            p
				            | \
				diagonal -> |  l
				            | /
				            b
			*/
			triangles = appendTriangle(triangles, NewTriangle(bottom, l, p))
		}
		l = p
	}
	return triangles
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle[T Signed](triangles []Triangle[T], tri Triangle[T]) []Triangle[T] {
	if tri.IsCW() {
		throw(ErrNotMonotone, "triangle is clockwise: %v", tri)
	}
	return append(triangles, tri)
}

// below orders points from top to bottom. Points at the same height are
// ordered as if the plane was slightly rotated, the left one being lower.
func below[T Number](p, o Point[T]) bool {
	if p.Y == o.Y {
		return p.X < o.X
	}
	return p.Y < o.Y
}
