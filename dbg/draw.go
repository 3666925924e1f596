package dbg

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/geokit/geom"
	"golang.org/x/image/colornames"
)

// This is for debugging purposes only. It renders geometry to a PNG, in screen
// coordinates (y grows downwards), which is how the generated art is laid out.

// Padding around the drawing, in pixels
const drawPadding = 20

// Palette cycles through colors that stand out on the black background.
var Palette = []color.Color{
	colornames.Tomato,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Deepskyblue,
	colornames.Orchid,
	colornames.Orange,
	colornames.Turquoise,
	colornames.Lightpink,
}

func PaletteColor(i int) color.Color {
	return Palette[geom.CircularIndex(i, len(Palette))]
}

type Drawing struct {
	ctx   *gg.Context
	scale float64
}

// NewDrawing creates a black canvas covering the bounds at the given scale
// (pixels per unit).
func NewDrawing(bounds geom.BoundingBox[float64], scale float64) *Drawing {
	if bounds.IsEmpty() {
		bounds = geom.BoundingBoxFromDimensions(1.0, 1.0)
	}
	w, h, _ := bounds.Dimensions()

	width := int(scale*w) + drawPadding*2
	height := int(scale*h) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetColor(colornames.Black)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.Min().X, -bounds.Min().Y)

	return &Drawing{ctx: c, scale: scale}
}

// Points draws a dot for each point.
func (d *Drawing) Points(points []geom.PointF64, c color.Color) {
	d.ctx.SetColor(c)
	for _, p := range points {
		d.ctx.DrawCircle(p.X, p.Y, 3/d.scale)
		d.ctx.Fill()
	}
}

// Path strokes the lines between the points, closing the path if asked to.
func (d *Drawing) Path(points []geom.PointF64, closed bool, c color.Color) {
	if len(points) < 2 {
		return
	}
	d.tracePath(points, closed)
	d.ctx.SetLineWidth(2)
	d.ctx.SetColor(c)
	d.ctx.Stroke()
}

// Triangles fills each triangle with the next palette color, then outlines it.
func (d *Drawing) Triangles(triangles []geom.TriangleF64) {
	d.ctx.SetLineWidth(1)
	for i, t := range triangles {
		d.tracePath(t.Points[:], true)
		d.ctx.SetColor(PaletteColor(i))
		d.ctx.FillPreserve()
		d.ctx.SetColor(colornames.Black)
		d.ctx.Stroke()
	}
}

// Box strokes the outline of the box.
func (d *Drawing) Box(b geom.BoundingBox[float64], c color.Color) {
	if b.IsEmpty() {
		return
	}
	corners := b.Points()
	d.Path(corners[:], true, c)
}

func (d *Drawing) tracePath(points []geom.PointF64, closed bool) {
	d.ctx.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		d.ctx.LineTo(p.X, p.Y)
	}
	if closed {
		d.ctx.ClosePath()
	}
}

func (d *Drawing) Image() image.Image {
	return d.ctx.Image()
}

func (d *Drawing) EncodePNG(w io.Writer) error {
	return d.ctx.EncodePNG(w)
}

func (d *Drawing) SavePNG(path string) error {
	return d.ctx.SavePNG(path)
}

// Cat prints the drawing in the terminal (iTerm only).
func (d *Drawing) Cat(w io.Writer) error {
	f, err := os.CreateTemp("", "geokit-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := d.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return imgcat.CatFile(f.Name(), w)
}
