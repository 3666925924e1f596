package kdtree

import (
	"container/heap"

	"github.com/osuushi/geokit/geom"
)

// neighborHeap keeps the k closest neighbors seen so far. It is a max heap on
// the squared distance, so the worst kept neighbor is always at the root and
// can be evicted in O(log k).
type neighborHeap[T geom.Number, V any] struct {
	items []Neighbor[T, V]
	k     int
}

func newNeighborHeap[T geom.Number, V any](k int) *neighborHeap[T, V] {
	return &neighborHeap[T, V]{items: make([]Neighbor[T, V], 0, k+1), k: k}
}

// offer adds the neighbor, evicting the worst one if there are now more than k.
func (h *neighborHeap[T, V]) offer(n Neighbor[T, V]) {
	heap.Push(h, n)
	if len(h.items) > h.k {
		heap.Pop(h)
	}
}

func (h *neighborHeap[T, V]) full() bool {
	return len(h.items) >= h.k
}

// worst returns the largest kept distance. Only meaningful when not empty.
func (h *neighborHeap[T, V]) worst() float64 {
	return h.items[0].SquaredDist
}

// drain empties the heap, returning the neighbors in no particular order.
func (h *neighborHeap[T, V]) drain() []Neighbor[T, V] {
	items := h.items
	h.items = nil
	return items
}

// heap.Interface

func (h *neighborHeap[T, V]) Len() int { return len(h.items) }

func (h *neighborHeap[T, V]) Less(i, j int) bool {
	return h.items[i].SquaredDist > h.items[j].SquaredDist
}

func (h *neighborHeap[T, V]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *neighborHeap[T, V]) Push(x any) {
	h.items = append(h.items, x.(Neighbor[T, V]))
}

func (h *neighborHeap[T, V]) Pop() any {
	last := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	return last
}
