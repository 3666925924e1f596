// Package kmeans groups points around k pivots with Lloyd's algorithm.
package kmeans

import (
	"slices"

	"github.com/osuushi/geokit/geom"
	"github.com/osuushi/geokit/internal/quickselect"
)

// Group is a pivot along with the points closest to it.
type Group[T geom.Number] struct {
	Pivot  geom.Point[T]
	Points []geom.Point[T]
}

// Cluster groups the points in at most k clusters, using the mean of each
// cluster as its pivot. Mean pivots of integer points are truncated.
//
// Duplicate points are merged first. When there are no more than k distinct
// points, each one is its own cluster. Otherwise the initial pivots are picked
// by striding through the points, never randomly: shuffle the input for random
// seeding. Each iteration assigns every point to its closest pivot, a tie going
// to the smaller cluster, then moves the pivots. Clustering stops when no
// pivot moves or after maxIterations. Empty clusters are left out of the
// result, so there can be fewer than k groups.
//
// Every point of a group is at least as close to its pivot as to the other
// pivots, as long as clustering stopped because the pivots settled.
func Cluster[T geom.Number](points []geom.Point[T], k, maxIterations int) []Group[T] {
	return cluster(points, k, maxIterations, meanPivot[T])
}

// ClusterMedians is like Cluster, but the pivot of a cluster is the
// component-wise median of its points instead of the mean. Medians are picked
// among the coordinates, so they are never truncated, and they are less
// sensitive to outliers. Unlike the means, medians are not guaranteed to
// settle, so maxIterations matters more here.
func ClusterMedians[T geom.Number](points []geom.Point[T], k, maxIterations int) []Group[T] {
	return cluster(points, k, maxIterations, medianPivot[T])
}

type pivotFunc[T geom.Number] func(cluster []geom.Point[T]) geom.Point[T]

func cluster[T geom.Number](points []geom.Point[T], k, maxIterations int, pivotOf pivotFunc[T]) []Group[T] {
	if k <= 0 {
		return nil
	}

	points = dedup(points)
	n := len(points)

	if n <= k {
		groups := make([]Group[T], 0, n)
		for _, p := range points {
			groups = append(groups, Group[T]{Pivot: p, Points: []geom.Point[T]{p}})
		}
		return groups
	}

	pivots := make([]geom.Point[T], k)
	for i := range pivots {
		pivots[i] = points[strideIndex(i, n, k)]
	}

	clusters := make([][]geom.Point[T], k)
	for iteration := 0; iteration < maxIterations; iteration++ {
		for i := range clusters {
			clusters[i] = nil
		}

		for _, p := range points {
			closest := closestPivot(pivots, clusters, p)
			clusters[closest] = append(clusters[closest], p)
		}

		if !updatePivots(pivots, clusters, points, pivotOf) {
			break
		}
	}

	var groups []Group[T]
	for i, c := range clusters {
		if len(c) > 0 {
			groups = append(groups, Group[T]{Pivot: pivots[i], Points: c})
		}
	}
	return groups
}

// closestPivot returns the index of the pivot closest to p. On a tie the pivot
// with the smaller cluster wins, so clusters sharing a pivot both get points.
func closestPivot[T geom.Number](pivots []geom.Point[T], clusters [][]geom.Point[T], p geom.Point[T]) int {
	closest := 0
	closestDist := geom.SquaredDistAs[float64](pivots[0], p)
	for i := 1; i < len(pivots); i++ {
		d := geom.SquaredDistAs[float64](pivots[i], p)
		if d < closestDist || (d == closestDist && len(clusters[i]) < len(clusters[closest])) {
			closest, closestDist = i, d
		}
	}
	return closest
}

// updatePivots moves every pivot and reports whether any of them changed.
// An empty cluster is reseeded from the stride points, skipping to the next
// point if that one is already a pivot.
func updatePivots[T geom.Number](pivots []geom.Point[T], clusters [][]geom.Point[T], points []geom.Point[T], pivotOf pivotFunc[T]) bool {
	n, k := len(points), len(pivots)
	changed := false

	for i := range pivots {
		var next geom.Point[T]
		if len(clusters[i]) == 0 {
			ix := strideIndex(i, n, k)
			next = points[ix]
			if slices.Contains(pivots, next) {
				next = points[geom.CircularIndex(ix+1, n)]
			}
		} else {
			next = pivotOf(clusters[i])
		}

		if next != pivots[i] {
			changed = true
		}
		pivots[i] = next
	}

	return changed
}

func strideIndex(i, n, k int) int {
	return i * n / k
}

func meanPivot[T geom.Number](cluster []geom.Point[T]) geom.Point[T] {
	var sumX, sumY float64
	for _, p := range cluster {
		sumX += float64(p.X)
		sumY += float64(p.Y)
	}
	count := float64(len(cluster))
	return geom.Point[T]{X: T(sumX / count), Y: T(sumY / count)}
}

func medianPivot[T geom.Number](cluster []geom.Point[T]) geom.Point[T] {
	xs := make([]T, len(cluster))
	ys := make([]T, len(cluster))
	for i, p := range cluster {
		xs[i], ys[i] = p.X, p.Y
	}

	mid := len(cluster) / 2
	x, _ := quickselect.KSmallest(xs, mid)
	y, _ := quickselect.KSmallest(ys, mid)
	return geom.Point[T]{X: x, Y: y}
}

// dedup drops repeated points, keeping the first occurrence of each. Points
// can have float coordinates, so they are compared pairwise instead of being
// hashed.
func dedup[T geom.Number](points []geom.Point[T]) []geom.Point[T] {
	unique := make([]geom.Point[T], 0, len(points))
	for _, p := range points {
		if !slices.Contains(unique, p) {
			unique = append(unique, p)
		}
	}
	return unique
}
