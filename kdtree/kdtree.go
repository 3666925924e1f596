// Package kdtree implements a 2D k-d tree mapping points to values, with
// nearest neighbor and range queries.
package kdtree

import (
	"cmp"
	"slices"

	"github.com/osuushi/geokit/geom"
	"github.com/osuushi/geokit/internal/quickselect"
)

type Axis uint8

const (
	X Axis = iota
	Y
)

func (a Axis) Next() Axis {
	return (a + 1) % 2
}

func (a Axis) String() string {
	if a == X {
		return "x"
	}
	return "y"
}

// Entry is a point of the tree along with its value.
type Entry[T geom.Number, V any] struct {
	Point geom.Point[T]
	Value V
}

// Neighbor is an entry returned by a nearest neighbor query.
type Neighbor[T geom.Number, V any] struct {
	Entry[T, V]
	SquaredDist float64
}

// KdTree is a binary tree splitting the plane alternately on x and y. Each
// node holds a point, the nodes on its left have a coordinate lower or equal
// to it on the node's axis, and the nodes on its right a strictly greater one.
// Two equal points are never stored twice: adding a point that is already in
// the tree replaces its value.
//
// A KdTree is not safe for concurrent use. Build it once, then query it.
type KdTree[T geom.Number, V any] struct {
	root   *node[T, V]
	length int
}

type node[T geom.Number, V any] struct {
	axis   Axis
	median geom.Point[T]
	value  V

	left  *node[T, V]
	right *node[T, V]
}

func New[T geom.Number, V any]() *KdTree[T, V] {
	return &KdTree[T, V]{}
}

// FromSlice builds a tree from the entries. It should be preferred over Add
// when the set of points is known in advance, since picking medians produces
// a much more balanced tree. The entries slice is reordered.
//
// Partitions are processed breadth first: the median of each one, on the
// partition's axis, is added to the tree and the two halves are queued with
// the other axis. Ties on the axis are broken by the other coordinate so the
// split is deterministic.
func FromSlice[T geom.Number, V any](entries []Entry[T, V]) *KdTree[T, V] {
	tree := New[T, V]()

	type partition struct {
		entries []Entry[T, V]
		axis    Axis
	}

	queue := []partition{{entries, X}}
	for len(queue) > 0 {
		part := queue[0]
		queue = queue[1:]
		if len(part.entries) == 0 {
			continue
		}

		mid := len(part.entries) / 2
		axis := part.axis
		quickselect.KSmallestFunc(part.entries, mid, func(a, b Entry[T, V]) int {
			if c := cmp.Compare(axisValue(a.Point, axis), axisValue(b.Point, axis)); c != 0 {
				return c
			}
			return cmp.Compare(axisValue(a.Point, axis.Next()), axisValue(b.Point, axis.Next()))
		})

		left, median, right, _ := quickselect.SplitAt(part.entries, mid)
		tree.Add(median.Point, median.Value)

		queue = append(queue, partition{left, axis.Next()}, partition{right, axis.Next()})
	}

	return tree
}

func (t *KdTree[T, V]) Len() int {
	return t.length
}

func (t *KdTree[T, V]) IsEmpty() bool {
	return t.length == 0
}

// Add inserts the point in the tree. If the point is already there, its value
// is replaced and the old value is returned along with true. Adding points
// one by one can unbalance the tree, prefer FromSlice when possible.
func (t *KdTree[T, V]) Add(point geom.Point[T], value V) (old V, replaced bool) {
	if t.root == nil {
		t.root = &node[T, V]{axis: X, median: point, value: value}
		t.length = 1
		return old, false
	}

	n := t.root
	for {
		if n.median == point {
			old, n.value = n.value, value
			return old, true
		}

		child := &n.right
		if n.goesLeft(point) {
			child = &n.left
		}

		if *child == nil {
			*child = &node[T, V]{axis: n.axis.Next(), median: point, value: value}
			t.length++
			return old, false
		}
		n = *child
	}
}

// NearestNeighbor returns the entry closest to p, or false when the tree is
// empty.
func (t *KdTree[T, V]) NearestNeighbor(p geom.Point[T]) (Neighbor[T, V], bool) {
	neighbors := t.NearestNeighbors(p, 1)
	if len(neighbors) == 0 {
		return Neighbor[T, V]{}, false
	}
	return neighbors[0], true
}

// NearestNeighbors returns at most k entries closest to p, sorted by
// increasing distance. Entries at the same distance are in no particular
// order.
func (t *KdTree[T, V]) NearestNeighbors(p geom.Point[T], k int) []Neighbor[T, V] {
	if t.root == nil || k <= 0 {
		return nil
	}

	best := newNeighborHeap[T, V](k)
	t.root.nearest(p, best)

	result := best.drain()
	slices.SortStableFunc(result, func(a, b Neighbor[T, V]) int {
		return cmp.Compare(a.SquaredDist, b.SquaredDist)
	})
	return result
}

// InRange returns every entry whose point is inside the box, edges included.
func (t *KdTree[T, V]) InRange(box geom.BoundingBox[T]) []Entry[T, V] {
	if t.root == nil || box.IsEmpty() {
		return nil
	}

	var result []Entry[T, V]
	t.root.inRange(box, &result)
	return result
}

// Walk visits the entries in pre-order, parents before their children and left
// subtrees before right ones. It stops as soon as fn returns false.
func (t *KdTree[T, V]) Walk(fn func(Entry[T, V]) bool) {
	if t.root != nil {
		t.root.walk(fn)
	}
}

// Entries returns all the entries in pre-order.
func (t *KdTree[T, V]) Entries() []Entry[T, V] {
	entries := make([]Entry[T, V], 0, t.length)
	t.Walk(func(e Entry[T, V]) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// Depth of the deepest leaf. An empty tree has a depth of 0.
func (t *KdTree[T, V]) Depth() int {
	return t.root.depth()
}

func (n *node[T, V]) entry() Entry[T, V] {
	return Entry[T, V]{n.median, n.value}
}

func (n *node[T, V]) goesLeft(p geom.Point[T]) bool {
	return axisValue(p, n.axis) <= axisValue(n.median, n.axis)
}

func (n *node[T, V]) nearest(p geom.Point[T], best *neighborHeap[T, V]) {
	best.offer(Neighbor[T, V]{
		Entry:       n.entry(),
		SquaredDist: geom.SquaredDistAs[float64](n.median, p),
	})

	near, far := n.right, n.left
	if n.goesLeft(p) {
		near, far = n.left, n.right
	}

	if near != nil {
		near.nearest(p, best)
	}

	if far != nil {
		// The far side can only hold a closer point if the splitting line is
		// closer than the worst neighbor found so far.
		planeDist := float64(axisValue(p, n.axis)) - float64(axisValue(n.median, n.axis))
		if !best.full() || planeDist*planeDist <= best.worst() {
			far.nearest(p, best)
		}
	}
}

func (n *node[T, V]) inRange(box geom.BoundingBox[T], result *[]Entry[T, V]) {
	if box.Contains(n.median) {
		*result = append(*result, n.entry())
	}

	m := axisValue(n.median, n.axis)
	if n.left != nil && axisValue(box.Min(), n.axis) <= m {
		n.left.inRange(box, result)
	}
	if n.right != nil && axisValue(box.Max(), n.axis) > m {
		n.right.inRange(box, result)
	}
}

func (n *node[T, V]) walk(fn func(Entry[T, V]) bool) bool {
	if !fn(n.entry()) {
		return false
	}
	if n.left != nil && !n.left.walk(fn) {
		return false
	}
	if n.right != nil && !n.right.walk(fn) {
		return false
	}
	return true
}

func (n *node[T, V]) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}

func axisValue[T geom.Number](p geom.Point[T], axis Axis) T {
	if axis == X {
		return p.X
	}
	return p.Y
}
