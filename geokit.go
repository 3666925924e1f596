// A 2D geometry toolkit for Go.
//
// This package is a float64 facade over the generic packages: geom for points,
// boxes, polygons, hulls and Delaunay triangulation, kdtree for spatial
// queries, and kmeans for clustering. The facade checks its input for NaN and
// infinite coordinates, which the generic packages treat as a programming
// error, and reports them as errors instead.
package geokit

import (
	"math"

	"github.com/osuushi/geokit/geom"
	"github.com/osuushi/geokit/kdtree"
	"github.com/osuushi/geokit/kmeans"
	"github.com/pkg/errors"
)

type Point = geom.PointF64
type BoundingBox = geom.BoundingBox[float64]
type Triangle = geom.TriangleF64
type Polygon = geom.Polygon[float64]
type Group = kmeans.Group[float64]

// Index is a k-d tree whose values are the positions of the points in the
// slice it was built from.
type Index = kdtree.KdTree[float64, int]
type Neighbor = kdtree.Neighbor[float64, int]

var (
	ErrInvalidPoint       = errors.New("invalid point")
	ErrDegenerateTriangle = geom.ErrDegenerateTriangle
	ErrNotMonotone        = geom.ErrNotMonotone
	ErrTooFewPoints       = errors.New("not enough distinct points")
)

// ConvexHull returns the hull of the points in counter clockwise order.
func ConvexHull(points []Point) ([]Point, error) {
	if err := validate(points); err != nil {
		return nil, err
	}
	return geom.ConvexHull(points), nil
}

// Triangulate computes the Delaunay triangulation of the points inside bbox.
// Degenerate configurations, which include points on the edge of the box,
// return an error matching ErrDegenerateTriangle.
func Triangulate(bbox BoundingBox, points []Point) ([]Triangle, error) {
	if err := validate(points); err != nil {
		return nil, err
	}
	for i, p := range points {
		if !bbox.Contains(p) {
			return nil, errors.Errorf("point %d %v is outside of %v", i, p, bbox)
		}
	}
	return geom.Triangulate(bbox, points)
}

// NewPolygon closes the ring formed by the points.
func NewPolygon(points []Point) (Polygon, error) {
	if err := validate(points); err != nil {
		return Polygon{}, err
	}
	poly, ok := geom.NewPolygon(points)
	if !ok {
		return Polygon{}, errors.Wrapf(ErrTooFewPoints, "polygon needs 3, got %d points", len(points))
	}
	return poly, nil
}

// Fill splits a counter clockwise y-monotone polygon, such as a convex hull,
// into triangles.
func Fill(poly Polygon) ([]Triangle, error) {
	return geom.TriangulateMonotone(poly)
}

// KMeans clusters the points around mean pivots.
func KMeans(points []Point, k, maxIterations int) ([]Group, error) {
	if err := validate(points); err != nil {
		return nil, err
	}
	return kmeans.Cluster(points, k, maxIterations), nil
}

// KMedians clusters the points around median pivots.
func KMedians(points []Point, k, maxIterations int) ([]Group, error) {
	if err := validate(points); err != nil {
		return nil, err
	}
	return kmeans.ClusterMedians(points, k, maxIterations), nil
}

// NewIndex builds a balanced k-d tree over the points. When a point appears
// more than once, only one of its positions is kept.
func NewIndex(points []Point) (*Index, error) {
	if err := validate(points); err != nil {
		return nil, err
	}
	entries := make([]kdtree.Entry[float64, int], len(points))
	for i, p := range points {
		entries[i] = kdtree.Entry[float64, int]{Point: p, Value: i}
	}
	return kdtree.FromSlice(entries), nil
}

func validate(points []Point) error {
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return errors.Wrapf(ErrInvalidPoint, "point %d has coordinates %v, %v", i, p.X, p.Y)
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
