package cli

import (
	"bufio"
	"io"
	"strings"

	"github.com/osuushi/geokit/geom"
	"github.com/pkg/errors"
)

// readBlocks reads points, one "x y" or "x,y" per line. Blank lines end a
// block of points, and lines starting with # are ignored.
func readBlocks(in io.Reader) ([][]geom.PointF64, error) {
	blocks := [][]geom.PointF64{}
	points := []geom.PointF64{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// An empty line ends the block, if we collected any points
		if line == "" {
			if len(points) > 0 {
				blocks = append(blocks, points)
				points = []geom.PointF64{}
			}
			continue
		}

		point, err := geom.ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Trailing block, if any
	if len(points) > 0 {
		blocks = append(blocks, points)
	}
	return blocks, nil
}

// readPoints reads every block as a single list of points.
func readPoints(in io.Reader) ([]geom.PointF64, error) {
	blocks, err := readBlocks(in)
	if err != nil {
		return nil, err
	}
	var points []geom.PointF64
	for _, block := range blocks {
		points = append(points, block...)
	}
	return points, nil
}
