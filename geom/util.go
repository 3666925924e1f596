package geom

import (
	"math"
	"reflect"
)

// Tolerance below which two floats are considered equal. It only needs to
// absorb rounding noise from angle and intersection computations; coordinates
// themselves are always compared exactly.
const Tolerance = 1e-10

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Compare returns -1, 0 or 1 like cmp.Compare, but treats values closer than
// Tolerance as equal. NaN breaks the total order every caller relies on, so it
// panics instead of picking an arbitrary answer.
func Compare(a, b float64) int {
	if math.IsNaN(a) || math.IsNaN(b) {
		panic("geom: NaN coordinates are not supported")
	}
	if Equal(a, b) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack[T]) Push(p Point[T]) {
	*s = append(*s, p)
}

// Pop removes and returns the top of the stack. Popping an empty stack returns
// the zero point.
func (s *PointStack[T]) Pop() Point[T] {
	if len(*s) == 0 {
		return Point[T]{}
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack[T]) Peek() Point[T] {
	if len(*s) == 0 {
		return Point[T]{}
	}
	return (*s)[len(*s)-1]
}

// PeekSecond returns the element just below the top of the stack.
func (s *PointStack[T]) PeekSecond() Point[T] {
	if len(*s) < 2 {
		return Point[T]{}
	}
	return (*s)[len(*s)-2]
}

func (s *PointStack[T]) Len() int {
	return len(*s)
}

func (s *PointStack[T]) Empty() bool {
	return len(*s) == 0
}

// limits returns the lowest and highest finite values representable by T.
// Generic code cannot spell math.MaxInt32 and friends for an arbitrary T, so
// the concrete kind is looked up at runtime.
func limits[T Number]() (lo, hi T) {
	l := reflect.ValueOf(&lo).Elem()
	h := reflect.ValueOf(&hi).Elem()
	bits := l.Type().Bits()

	switch l.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		l.SetInt(-1 << (bits - 1))
		h.SetInt(1<<(bits-1) - 1)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		h.SetUint(math.MaxUint64 >> (64 - bits))
	case reflect.Float32:
		l.SetFloat(-math.MaxFloat32)
		h.SetFloat(math.MaxFloat32)
	case reflect.Float64:
		l.SetFloat(-math.MaxFloat64)
		h.SetFloat(math.MaxFloat64)
	}
	return lo, hi
}

func inRange[T Number](a, b, v T) bool {
	lo, hi := a, b
	if b < a {
		lo, hi = b, a
	}
	return lo <= v && v <= hi
}
