package geom

import (
	"embed"
	"log"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW Polygon. If anything goes
// wrong, it bails out.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon[float64] {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]PointF64, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		p, err := ParsePoint(pointString)
		if err != nil {
			log.Fatalf("Invalid point in fixture %q: %v", name, err)
		}
		points = append(points, p)
	}

	result, ok := NewPolygon(points)
	if !ok {
		log.Fatalf("Fixture %q is not a polygon", name)
	}

	if !result.IsCCW() {
		result = result.Reverse()
	}
	return result
}

var fixtureNames = []string{"comb", "zigzag", "spiral", "star"}
