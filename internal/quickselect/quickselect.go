// Package quickselect finds the kth smallest element of a slice in expected
// linear time. The slice is partitioned in place around that element as a
// side effect, which is what the k-d tree build relies on.
package quickselect

import "cmp"

// KSmallest returns the kth smallest element (0 based), or false if k is out
// of bounds. On return every element before index k is <= elems[k] and every
// element after it is >= elems[k].
func KSmallest[T cmp.Ordered](elems []T, k int) (T, bool) {
	return KSmallestFunc(elems, k, cmp.Compare[T])
}

// KSmallestFunc is like KSmallest with a custom comparison, which must return
// a negative number when a < b, zero when they are equal and a positive number
// when a > b.
func KSmallestFunc[T any](elems []T, k int, cmp func(a, b T) int) (T, bool) {
	if k < 0 || k >= len(elems) {
		var zero T
		return zero, false
	}

	left, right := 0, len(elems)-1
	for {
		pivot := partition(elems, cmp, left, right)
		switch {
		case pivot == k:
			return elems[pivot], true
		case pivot < k:
			left = pivot + 1
		default:
			right = pivot - 1
		}
	}
}

// partition moves everything strictly smaller than elems[right] to the front
// of [left, right], then puts elems[right] just after them and returns its
// new index.
func partition[T any](elems []T, cmp func(a, b T) int, left, right int) int {
	store := left
	for i := left; i < right; i++ {
		if cmp(elems[i], elems[right]) < 0 {
			elems[store], elems[i] = elems[i], elems[store]
			store++
		}
	}
	elems[store], elems[right] = elems[right], elems[store]
	return store
}

// SplitAt returns the elements before index at, the element at index at, and
// the elements after it. The halves share the backing array of s. It returns
// false if at is out of bounds.
func SplitAt[T any](s []T, at int) (left []T, elem T, right []T, ok bool) {
	if at < 0 || at >= len(s) {
		return nil, elem, nil, false
	}
	return s[:at:at], s[at], s[at+1:], true
}
