package geom

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangulateMonotoneOK[T Signed](t *testing.T, points []Point[T]) (Polygon[T], []Triangle[T]) {
	t.Helper()
	poly, ok := NewPolygon(points)
	require.True(t, ok)
	triangles, err := TriangulateMonotone(poly)
	require.NoError(t, err)
	return poly, triangles
}

// Checks that the triangles exactly cover the polygon.
func validateMonotoneTriangles(t *testing.T, poly Polygon[float64], triangles []TriangleF64) {
	t.Helper()
	require.Len(t, triangles, len(poly.Points())-3)

	var area float64
	for _, tri := range triangles {
		assert.True(t, tri.IsCCW(), "%v is not CCW", tri)
		for _, p := range tri.Points {
			assert.Contains(t, poly.Points(), p, "%v is not a vertex of the polygon", p)
		}
		assert.True(t, poly.Contains(tri.Centroid()), "%v is outside of the polygon", tri)
		area += tri.Area()
	}
	assert.InDelta(t, poly.SignedArea(), area, 1e-6)
}

func TestTriangulateMonotoneTriangle(t *testing.T) {
	_, triangles := triangulateMonotoneOK(t, []PointF64{{0, 0}, {4, 0}, {0, 4}})
	assert.Equal(t, []TriangleF64{NewTriangle(PointF64{0, 0}, PointF64{4, 0}, PointF64{0, 4})}, triangles)
}

func TestTriangulateMonotoneSquare(t *testing.T) {
	_, triangles := triangulateMonotoneOK(t, []PointI32{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	require.Len(t, triangles, 2)
	for _, tri := range triangles {
		assert.True(t, tri.IsCCW(), "%v", tri)
		assert.Equal(t, int32(8), tri.Area())
	}
}

func TestTriangulateMonotoneNotched(t *testing.T) {
	// Both chains have a reflex vertex
	points := []PointF64{{0, 0}, {4, 0}, {3, 2}, {4, 4}, {0, 4}, {1, 2}}
	poly, triangles := triangulateMonotoneOK(t, points)
	validateMonotoneTriangles(t, poly, triangles)
	assert.InDelta(t, 12, poly.SignedArea(), 1e-9)
}

func TestTriangulateMonotoneSawtooth(t *testing.T) {
	// A long right chain with reflex vertices that each see the top of the
	// stack only after popping.
	points := []PointF64{
		{0, 0}, {5, 0}, {3, 1}, {6, 2}, {3, 3}, {6, 4}, {3, 5}, {5, 6}, {0, 6},
	}
	poly, triangles := triangulateMonotoneOK(t, points)
	validateMonotoneTriangles(t, poly, triangles)
}

func TestTriangulateMonotoneHulls(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 2))
	for i := 0; i < 100; i++ {
		points := DistinctRandomPoints(rng, 3+rng.IntN(40), BoundingBoxFromDimensions(100.0, 100.0))
		hull := ConvexHull(points)
		if len(hull) < 3 {
			continue
		}
		poly, triangles := triangulateMonotoneOK(t, hull)
		validateMonotoneTriangles(t, poly, triangles)
	}
}

func TestTriangulateMonotoneErrors(t *testing.T) {
	t.Run("clockwise", func(t *testing.T) {
		poly, _ := NewPolygon([]PointF64{{0, 0}, {0, 4}, {4, 4}, {4, 0}})
		triangles, err := TriangulateMonotone(poly)
		assert.ErrorIs(t, err, ErrNotMonotone)
		assert.Nil(t, triangles)
	})

	t.Run("not monotone", func(t *testing.T) {
		// A U shape: a horizontal line through the arms crosses four edges.
		poly, _ := NewPolygon([]PointF64{{0, 0}, {6, 0}, {6, 6}, {4, 6}, {4, 2}, {2, 2}, {2, 6}, {0, 6}})
		_, err := TriangulateMonotone(poly)
		assert.ErrorIs(t, err, ErrNotMonotone)
	})

	t.Run("zero polygon", func(t *testing.T) {
		_, err := TriangulateMonotone(Polygon[float64]{})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotMonotone)
	})
}
