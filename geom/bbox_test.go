package geom

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox[uint32]()
	assert.True(t, bbox.IsEmpty())
	assert.False(t, bbox.Contains(PointU32{0, 0}))
	_, _, ok := bbox.Dimensions()
	assert.False(t, ok)
	_, ok = bbox.Area()
	assert.False(t, ok)
	assert.Equal(t, "[empty]", bbox.String())

	// Expanding the empty box yields a zero sized box
	bbox.ExpandByPoint(PointU32{8, 8})
	assert.False(t, bbox.IsEmpty())
	assert.Equal(t, PointU32{8, 8}, bbox.Min())
	assert.Equal(t, PointU32{8, 8}, bbox.Max())
}

func TestBoundingBoxContains(t *testing.T) {
	rec := BoundingBoxFromDimensionsAndOrigin(PointU32{3, 5}, 7, 5)

	assert.False(t, rec.Contains(PointU32{0, 0}))
	assert.False(t, rec.Contains(PointU32{4, 0}))
	assert.False(t, rec.Contains(PointU32{0, 8}))
	assert.False(t, rec.Contains(PointU32{40, 40}))

	assert.True(t, rec.Contains(PointU32{3, 5}))
	assert.True(t, rec.Contains(PointU32{5, 7}))
	assert.True(t, rec.Contains(PointU32{10, 10}))
}

func TestBoundingBoxPoints(t *testing.T) {
	rec := BoundingBoxFromDimensionsAndOrigin(PointU32{3, 5}, 7, 5)
	assert.Equal(t, [4]PointU32{{3, 5}, {10, 5}, {10, 10}, {3, 10}}, rec.Points())
}

func TestBoundingBoxCenter(t *testing.T) {
	rec := BoundingBoxFromDimensionsAndOrigin(PointU32{2, 4}, 8, 6)
	assert.Equal(t, PointU32{6, 7}, rec.Center())
}

func TestBoundingBoxDimensions(t *testing.T) {
	bbox := NewBoundingBox[uint32]()

	bbox.ExpandByPoint(PointU32{8, 8})
	w, h, ok := bbox.Dimensions()
	require.True(t, ok)
	assert.Equal(t, uint32(0), w)
	assert.Equal(t, uint32(0), h)

	bbox.ExpandByPoint(PointU32{0, 0})
	width, ok := bbox.Width()
	require.True(t, ok)
	assert.Equal(t, uint32(8), width)
	height, ok := bbox.Height()
	require.True(t, ok)
	assert.Equal(t, uint32(8), height)
}

func TestBoundingBoxArea(t *testing.T) {
	bbox := NewBoundingBox[uint32]()

	bbox.ExpandByPoint(PointU32{4, 4})
	area, ok := bbox.Area()
	require.True(t, ok)
	assert.Equal(t, uint32(0), area)

	bbox.ExpandByPoint(PointU32{8, 9})
	area, ok = bbox.Area()
	require.True(t, ok)
	assert.Equal(t, uint32(20), area)
}

func TestBoundingBoxFromPoints(t *testing.T) {
	bbox := BoundingBoxFromPoints([]PointI32{{1, 9}, {-4, 2}, {3, 3}})
	assert.Equal(t, PointI32{-4, 2}, bbox.Min())
	assert.Equal(t, PointI32{3, 9}, bbox.Max())

	// Expanding by a point already inside changes nothing
	before := bbox
	bbox.Extend([]PointI32{{0, 5}, {-4, 9}})
	assert.Equal(t, before, bbox)

	assert.True(t, BoundingBoxFromPoints[float64](nil).IsEmpty())
}

func TestBoundingBoxSplitAt(t *testing.T) {
	t.Run("empty box", func(t *testing.T) {
		_, ok := NewBoundingBox[uint32]().SplitAt(PointU32{0, 0})
		assert.False(t, ok)
	})

	t.Run("zero sized box", func(t *testing.T) {
		bbox := BoundingBoxFromPoints([]PointU32{{0, 0}})
		_, ok := bbox.SplitAt(PointU32{42, 42})
		assert.False(t, ok)

		quads, ok := bbox.SplitAt(PointU32{0, 0})
		require.True(t, ok)
		for _, q := range quads {
			assert.Equal(t, bbox, q)
		}
	})

	t.Run("square", func(t *testing.T) {
		bbox := BoundingBoxFromDimensions[uint32](8, 8)
		_, ok := bbox.SplitAt(PointU32{42, 42})
		assert.False(t, ok)

		quads, ok := bbox.SplitAt(PointU32{4, 4})
		require.True(t, ok)
		assert.Equal(t, [4]BoundingBox[uint32]{
			BoundingBoxFromPoints([]PointU32{{0, 0}, {4, 4}}),
			BoundingBoxFromPoints([]PointU32{{4, 0}, {8, 4}}),
			BoundingBoxFromPoints([]PointU32{{0, 4}, {4, 8}}),
			BoundingBoxFromPoints([]PointU32{{4, 4}, {8, 8}}),
		}, quads)
	})

	t.Run("offset box", func(t *testing.T) {
		bbox := BoundingBoxFromDimensionsAndOrigin(PointU32{3, 5}, 7, 5)
		assert.Equal(t, "[(3, 5)-(10, 10)]", bbox.String())

		// (4, 4) is above the box, so there is nothing to split
		_, ok := bbox.SplitAt(PointU32{4, 4})
		assert.False(t, ok)

		quads, ok := bbox.SplitAt(PointU32{4, 6})
		require.True(t, ok)
		assert.Equal(t, [4]BoundingBox[uint32]{
			BoundingBoxFromPoints([]PointU32{{3, 5}, {4, 6}}),
			BoundingBoxFromPoints([]PointU32{{4, 5}, {10, 6}}),
			BoundingBoxFromPoints([]PointU32{{3, 6}, {4, 10}}),
			BoundingBoxFromPoints([]PointU32{{4, 6}, {10, 10}}),
		}, quads)
	})

	t.Run("random splits partition the box", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		for i := 0; i < 200; i++ {
			origin := PointI64{rng.Int64N(200) - 100, rng.Int64N(200) - 100}
			bbox := BoundingBoxFromDimensionsAndOrigin(origin, rng.Int64N(50), rng.Int64N(50))
			w, h, _ := bbox.Dimensions()
			pt := PointI64{origin.X + rng.Int64N(w+1), origin.Y + rng.Int64N(h+1)}

			quads, ok := bbox.SplitAt(pt)
			require.True(t, ok, "%v should split at %v", bbox, pt)

			total, _ := bbox.Area()
			var sum int64
			for _, q := range quads {
				area, ok := q.Area()
				require.True(t, ok)
				sum += area
			}
			assert.Equal(t, total, sum)

			// Interiors never overlap: any intersection is a line
			for a := 0; a < 4; a++ {
				for b := a + 1; b < 4; b++ {
					assert.Zero(t, overlapArea(quads[a], quads[b]), "%v and %v overlap", quads[a], quads[b])
				}
			}
		}
	})
}

func overlapArea(a, b BoundingBox[int64]) int64 {
	w := min(a.Max().X, b.Max().X) - max(a.Min().X, b.Min().X)
	h := min(a.Max().Y, b.Max().Y) - max(a.Min().Y, b.Min().Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}
