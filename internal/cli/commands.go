package cli

import (
	"fmt"
	"io"

	"github.com/osuushi/geokit"
	"github.com/osuushi/geokit/dbg"
	"github.com/osuushi/geokit/geom"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

func (a *app) hull() error {
	points, err := readPoints(a.stdin)
	if err != nil {
		return err
	}

	p := newProgress(a.logger)
	hull, err := geokit.ConvexHull(points)
	if err != nil {
		return err
	}
	p.done("computed convex hull", "points", len(points), "hull", len(hull))

	writePoints(a.stdout, hull)
	return a.draw(geom.BoundingBoxFromPoints(points), func(d *dbg.Drawing) {
		d.Triangles(a.fillHull(hull))
		d.Path(hull, true, dbg.PaletteColor(1))
		d.Points(points, dbg.PaletteColor(0))
	})
}

func (a *app) delaunay() error {
	points, err := readPoints(a.stdin)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		points = geom.RandomPointsInGrid(a.rng(), a.cfg.Width, a.cfg.Height, a.cfg.GridSize)
		a.logger.Debug("sampled points", "count", len(points), "grid", a.cfg.GridSize)
	}

	p := newProgress(a.logger)
	triangles, err := geokit.Triangulate(a.canvas(), points)
	if err != nil {
		return errors.Wrap(err, "triangulating")
	}
	p.done("triangulated", "points", len(points), "triangles", len(triangles))

	for i, tri := range triangles {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		writePoints(a.stdout, tri.Points[:])
	}
	return a.draw(a.canvas(), func(d *dbg.Drawing) {
		d.Triangles(triangles)
		d.Points(points, dbg.PaletteColor(0))
	})
}

func (a *app) kmeans() error {
	points, err := readPoints(a.stdin)
	if err != nil {
		return err
	}

	cluster := geokit.KMeans
	if a.median {
		cluster = geokit.KMedians
	}

	p := newProgress(a.logger)
	groups, err := cluster(points, a.cfg.K, a.cfg.Iterations)
	if err != nil {
		return err
	}
	p.done("clustered", "points", len(points), "k", a.cfg.K, "groups", len(groups))

	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		fmt.Fprintf(a.stdout, "# pivot %s\n", formatPoint(group.Pivot))
		writePoints(a.stdout, group.Points)
	}
	return a.draw(geom.BoundingBoxFromPoints(points), func(d *dbg.Drawing) {
		// One filled hull per cluster, like a patchwork
		for i, group := range groups {
			hull := geom.ConvexHull(group.Points)
			d.Triangles(a.fillHull(hull))
			d.Path(hull, true, dbg.PaletteColor(i))
		}
		d.Points(points, colornames.White)
	})
}

func (a *app) nearest() error {
	blocks, err := readBlocks(a.stdin)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return errors.New("no points to index")
	}
	indexed := blocks[0]

	p := newProgress(a.logger)
	index, err := geokit.NewIndex(indexed)
	if err != nil {
		return err
	}
	p.done("built index", "points", index.Len(), "depth", index.Depth())
	a.logger.Debug("index\n" + index.DbgString())

	var queries []geom.PointF64
	var links [][]geom.PointF64
	for _, block := range blocks[1:] {
		queries = append(queries, block...)
	}
	for i, q := range queries {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		fmt.Fprintf(a.stdout, "# nearest to %s\n", formatPoint(q))
		for _, n := range index.NearestNeighbors(q, a.cfg.Neighbours) {
			fmt.Fprintln(a.stdout, formatPoint(n.Point))
			links = append(links, []geom.PointF64{q, n.Point})
		}
	}

	bounds := geom.BoundingBoxFromPoints(indexed)
	bounds.Extend(queries)
	return a.draw(bounds, func(d *dbg.Drawing) {
		for _, link := range links {
			d.Path(link, false, dbg.PaletteColor(2))
		}
		d.Points(indexed, dbg.PaletteColor(0))
		d.Points(queries, dbg.PaletteColor(1))
	})
}

func (a *app) contains() error {
	blocks, err := readBlocks(a.stdin)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return errors.New("no polygon given")
	}

	poly, err := geokit.NewPolygon(blocks[0])
	if err != nil {
		return err
	}
	a.logger.Debug("polygon", "points", len(poly.Points()), "area", poly.SignedArea(), "ccw", poly.IsCCW())

	var inside, outside []geom.PointF64
	for _, block := range blocks[1:] {
		for _, q := range block {
			in := poly.Contains(q)
			fmt.Fprintf(a.stdout, "%s %t\n", formatPoint(q), in)
			if in {
				inside = append(inside, q)
			} else {
				outside = append(outside, q)
			}
		}
	}
	a.logger.Info("tested points", "inside", len(inside), "outside", len(outside))

	bounds := poly.BoundingBox()
	bounds.Extend(outside)
	return a.draw(bounds, func(d *dbg.Drawing) {
		d.Path(poly.Points(), true, dbg.PaletteColor(3))
		d.Points(inside, dbg.PaletteColor(2))
		d.Points(outside, dbg.PaletteColor(0))
	})
}

func (a *app) fill() error {
	blocks, err := readBlocks(a.stdin)
	if err != nil {
		return err
	}

	var all []geom.TriangleF64
	bounds := geom.NewBoundingBox[float64]()
	for i, block := range blocks {
		poly, err := geokit.NewPolygon(block)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
		triangles, err := geokit.Fill(poly)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
		a.logger.Debug("filled polygon", "index", i, "points", len(block), "triangles", len(triangles))

		for _, tri := range triangles {
			if len(all) > 0 {
				fmt.Fprintln(a.stdout)
			}
			writePoints(a.stdout, tri.Points[:])
			all = append(all, tri)
		}
		bounds.Extend(block)
	}
	a.logger.Info("filled polygons", "polygons", len(blocks), "triangles", len(all))

	return a.draw(bounds, func(d *dbg.Drawing) {
		d.Triangles(all)
	})
}

// fillHull triangulates a hull for drawing. Hulls of fewer than 3 points have
// nothing to fill.
func (a *app) fillHull(hull []geom.PointF64) []geom.TriangleF64 {
	poly, ok := geom.NewPolygon(hull)
	if !ok {
		return nil
	}
	triangles, err := geom.TriangulateMonotone(poly)
	if err != nil {
		a.logger.Warn("cannot fill hull", "err", err)
	}
	return triangles
}

func (a *app) sample() error {
	var points []geom.PointF64
	if a.count > 0 {
		points = geom.DistinctRandomPoints(a.rng(), a.count, a.canvas())
	} else {
		points = geom.RandomPointsInGrid(a.rng(), a.cfg.Width, a.cfg.Height, a.cfg.GridSize)
	}
	a.logger.Info("sampled points", "count", len(points))

	writePoints(a.stdout, points)
	return a.draw(a.canvas(), func(d *dbg.Drawing) {
		d.Box(a.canvas(), dbg.PaletteColor(3))
		d.Points(points, dbg.PaletteColor(0))
	})
}

func formatPoint(p geom.PointF64) string {
	return fmt.Sprintf("%g %g", p.X, p.Y)
}

func writePoints(w io.Writer, points []geom.PointF64) {
	for _, p := range points {
		fmt.Fprintln(w, formatPoint(p))
	}
}
