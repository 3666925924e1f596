package geom

import (
	"math/rand/v2"
	"slices"
)

// RandomPointsInGrid divides a width x height canvas into a gridSize x
// gridSize grid and picks one random point in each cell. The points are much
// better spread than uniform samples, which keeps triangulations away from
// degenerate triangles.
//
// Cells are visited column by column. The last row and column of cells are
// clamped to the canvas.
func RandomPointsInGrid(rng *rand.Rand, width, height, gridSize uint32) []PointF64 {
	if gridSize == 0 {
		return nil
	}

	cellWidth := width / gridSize
	cellHeight := height / gridSize

	out := make([]PointF64, 0, int(gridSize)*int(gridSize))
	for xi := uint32(0); xi < gridSize; xi++ {
		for yi := uint32(0); yi < gridSize; yi++ {
			x0 := float64(xi * cellWidth)
			y0 := float64(yi * cellHeight)

			x1 := min(x0+float64(cellWidth), float64(width))
			y1 := min(y0+float64(cellHeight), float64(height))

			out = append(out, PointF64{
				X: uniform(rng, x0, x1),
				Y: uniform(rng, y0, y1),
			})
		}
	}
	return out
}

// DistinctRandomPoints samples up to n distinct points uniformly inside the
// box. Fewer points are returned only when the box is too small to hold n
// distinct float points, like a zero sized box.
func DistinctRandomPoints(rng *rand.Rand, n int, bbox BoundingBox[float64]) []PointF64 {
	if n <= 0 || bbox.IsEmpty() {
		return nil
	}

	lo, hi := bbox.Min(), bbox.Max()
	out := make([]PointF64, 0, n)
	for attempts := 0; len(out) < n && attempts < 10*n+10; attempts++ {
		p := PointF64{uniform(rng, lo.X, hi.X), uniform(rng, lo.Y, hi.Y)}
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
