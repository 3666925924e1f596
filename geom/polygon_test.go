package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolygon(t *testing.T) {
	t.Run("closes the ring", func(t *testing.T) {
		poly, ok := NewPolygon([]PointI32{{0, 0}, {4, 0}, {0, 4}})
		require.True(t, ok)
		assert.Equal(t, []PointI32{{0, 0}, {4, 0}, {0, 4}, {0, 0}}, poly.Points())
		assert.Len(t, poly.Edges(), 3)
	})

	t.Run("already closed", func(t *testing.T) {
		poly, ok := NewPolygon([]PointI32{{0, 0}, {4, 0}, {0, 4}, {0, 0}})
		require.True(t, ok)
		assert.Equal(t, []PointI32{{0, 0}, {4, 0}, {0, 4}, {0, 0}}, poly.Points())
	})

	t.Run("too few distinct points", func(t *testing.T) {
		for _, points := range [][]PointI32{
			nil,
			{{1, 1}},
			{{1, 1}, {2, 2}},
			{{1, 1}, {2, 2}, {1, 1}, {2, 2}},
		} {
			_, ok := NewPolygon(points)
			assert.False(t, ok, "%v", points)
		}
	})

	t.Run("input is not aliased", func(t *testing.T) {
		points := []PointI32{{0, 0}, {4, 0}, {0, 4}}
		poly, _ := NewPolygon(points)
		points[0] = PointI32{9, 9}
		assert.Equal(t, PointI32{0, 0}, poly.Points()[0])
	})

	t.Run("caches the bounding box", func(t *testing.T) {
		poly, _ := NewPolygon([]PointI32{{-1, 2}, {4, 0}, {0, 7}})
		assert.Equal(t, BoundingBoxFromPoints([]PointI32{{-1, 0}, {4, 7}}), poly.BoundingBox())
	})
}

func TestPolygonEdges(t *testing.T) {
	poly, _ := NewPolygon([]PointI32{{0, 0}, {4, 0}, {0, 4}})
	assert.Equal(t, []Segment[int32]{
		{PointI32{0, 0}, PointI32{4, 0}},
		{PointI32{4, 0}, PointI32{0, 4}},
		{PointI32{0, 4}, PointI32{0, 0}},
	}, poly.Edges())
}

func TestPolygonArea(t *testing.T) {
	expected := map[string]float64{
		"comb":   72,
		"zigzag": 96,
		"spiral": 148,
	}
	for name, area := range expected {
		poly := LoadFixture(name)
		assert.True(t, poly.IsCCW(), name)
		assert.InDelta(t, area, poly.SignedArea(), Tolerance, name)

		reversed := poly.Reverse()
		assert.False(t, reversed.IsCCW(), name)
		assert.InDelta(t, -area, reversed.SignedArea(), Tolerance, name)
		assert.Equal(t, poly.BoundingBox(), reversed.BoundingBox())
	}
}

func TestPolygonContains(t *testing.T) {
	// A zigzag bottom with vertices at the same height as the sample rays
	poly, ok := NewPolygon([]PointF64{{0, 0}, {4, 4}, {8, 0}, {12, 4}, {12, 10}, {0, 10}})
	require.True(t, ok)

	cases := []struct {
		name     string
		point    PointF64
		expected bool
	}{
		{"inside", PointF64{2, 5}, true},
		{"ray through a local maximum", PointF64{6, 4}, true},
		{"left of a local maximum", PointF64{2, 4}, true},
		{"between the teeth", PointF64{6, 1}, false},
		{"ray through a local minimum", PointF64{4, 0}, false},
		{"vertex", PointF64{8, 0}, true},
		{"other vertex", PointF64{12, 4}, true},
		{"horizontal edge", PointF64{6, 10}, true},
		{"vertical edge", PointF64{0, 5}, true},
		{"slanted edge", PointF64{2, 2}, true},
		{"outside the bounding box", PointF64{13, 5}, false},
		{"right of the shape inside the box", PointF64{11, 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, poly.Contains(c.point), "%v", c.point)
		})
	}
}

func TestPolygonContainsIntegers(t *testing.T) {
	// Arithmetic happens in float64, so integer and unsigned polygons behave
	// exactly like float ones.
	poly, ok := NewPolygon([]PointU32{{0, 0}, {10, 0}, {10, 10}, {8, 10}, {8, 3}, {2, 3}, {2, 10}, {0, 10}})
	require.True(t, ok)

	assert.True(t, poly.Contains(PointU32{1, 5}))
	assert.True(t, poly.Contains(PointU32{9, 9}))
	assert.True(t, poly.Contains(PointU32{5, 3}))
	assert.False(t, poly.Contains(PointU32{5, 5}))
	assert.False(t, poly.Contains(PointU32{11, 5}))
}

func TestPolygonContainsFixtures(t *testing.T) {
	for _, name := range fixtureNames {
		t.Run(name, func(t *testing.T) {
			validateContainsBySampling(t, LoadFixture(name))
		})
	}
}

// validateContainsBySampling compares Contains with a textbook even-odd
// crossing count on a grid of points around the polygon. Points too close to
// an edge are skipped, since that is where the two methods are allowed to
// disagree.
func validateContainsBySampling(t *testing.T, poly Polygon[float64]) {
	bbox := poly.BoundingBox()
	width, height, _ := bbox.Dimensions()

	// Pad the bounding box by 10%, and use an odd step so that the grid
	// doesn't line up with the integer vertices.
	minX := bbox.Min().X - width*0.1
	minY := bbox.Min().Y - height*0.1
	maxX := bbox.Max().X + width*0.1
	maxY := bbox.Max().Y + height*0.1
	step := math.Max(maxX-minX, maxY-minY) / 53

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := PointF64{x, y}
			if nearEdge(poly, p, 1e-6) {
				continue
			}

			if containsByEvenOdd(poly, p) {
				assert.True(t, poly.Contains(p), "point %v should be in the polygon", p)
			} else {
				assert.False(t, poly.Contains(p), "point %v should not be in the polygon", p)
			}
		}
	}
}

func containsByEvenOdd(poly Polygon[float64], p PointF64) bool {
	inside := false
	for _, e := range poly.Edges() {
		a, b := e.Start, e.End
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func nearEdge(poly Polygon[float64], p PointF64, epsilon float64) bool {
	for _, e := range poly.Edges() {
		d := e.End.Sub(e.Start)
		length := d.X*d.X + d.Y*d.Y
		tt := ((p.X-e.Start.X)*d.X + (p.Y-e.Start.Y)*d.Y) / length
		tt = math.Max(0, math.Min(1, tt))
		closest := PointF64{e.Start.X + tt*d.X, e.Start.Y + tt*d.Y}
		if Dist(closest, p) < epsilon {
			return true
		}
	}
	return false
}
