// Package cli implements the geokit command line demo.
//
// Every command reads points from stdin, one "x y" or "x,y" per line, and
// writes its result to stdout in the same format, with blank lines between
// groups of points. Logs go to stderr.
package cli

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/osuushi/geokit/dbg"
	"github.com/osuushi/geokit/geom"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type app struct {
	cfg    Config
	logger *log.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	pngPath string
	preview bool

	// Command options
	median bool
	count  int
}

// Run parses the arguments (without the program name) and runs the command.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	kp := kingpin.New("geokit", "Computational geometry on points read from stdin.")
	kp.Writer(stderr)
	kp.Terminate(nil)
	kp.HelpFlag.Short('h')

	configPath := kp.Flag("config", "YAML file with default settings.").Short('c').PlaceHolder("FILE").String()
	verbose := kp.Flag("verbose", "Log debug messages.").Short('v').Bool()
	pngPath := kp.Flag("png", "Write a debug drawing of the result.").PlaceHolder("FILE").String()
	preview := kp.Flag("preview", "Show the debug drawing in the terminal (iTerm only).").Bool()

	// Zero means "use the config value"
	width := kp.Flag("width", "Canvas width.").Uint32()
	height := kp.Flag("height", "Canvas height.").Uint32()
	seed := kp.Flag("seed", "Random seed.").Uint64()
	scale := kp.Flag("scale", "Pixels per unit in the debug drawing.").Float64()

	hullCmd := kp.Command("hull", "Print the convex hull of the points.")

	delaunayCmd := kp.Command("delaunay", "Triangulate the points inside the canvas. Without input, grid samples are used.")
	delaunayGrid := delaunayCmd.Flag("grid", "Cells on each side of the grid of sampled points.").Uint32()

	kmeansCmd := kp.Command("kmeans", "Cluster the points.")
	kmeansK := kmeansCmd.Flag("clusters", "Number of clusters.").Short('k').Int()
	kmeansIterations := kmeansCmd.Flag("iterations", "Maximum number of iterations.").Int()
	kmeansMedian := kmeansCmd.Flag("median", "Use medians instead of means as pivots.").Bool()

	nearestCmd := kp.Command("nearest", "Index the first block of points and find the nearest neighbours of the other points.")
	nearestN := nearestCmd.Flag("neighbours", "Number of neighbours per query.").Short('n').Int()

	containsCmd := kp.Command("contains", "Test whether the points are in the polygon given by the first block.")

	fillCmd := kp.Command("fill", "Triangulate each block of points as a counter clockwise y-monotone polygon.")

	sampleCmd := kp.Command("sample", "Print random points in the canvas.")
	sampleGrid := sampleCmd.Flag("grid", "Cells on each side of the grid.").Uint32()
	sampleCount := sampleCmd.Flag("count", "Sample this many distinct uniform points instead of one per grid cell.").Int()

	command, err := kp.Parse(args)
	if err != nil {
		return err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	override(&cfg.Width, *width)
	override(&cfg.Height, *height)
	override(&cfg.Seed, *seed)
	override(&cfg.Scale, *scale)
	override(&cfg.GridSize, *delaunayGrid)
	override(&cfg.GridSize, *sampleGrid)
	override(&cfg.K, *kmeansK)
	override(&cfg.Iterations, *kmeansIterations)
	override(&cfg.Neighbours, *nearestN)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}

	a := &app{
		cfg:     cfg,
		logger:  newLogger(stderr, level),
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		pngPath: *pngPath,
		preview: *preview,
		median:  *kmeansMedian,
		count:   *sampleCount,
	}
	a.logger.Debug("configuration", "command", command, "config", cfg)

	switch command {
	case hullCmd.FullCommand():
		return a.hull()
	case delaunayCmd.FullCommand():
		return a.delaunay()
	case kmeansCmd.FullCommand():
		return a.kmeans()
	case nearestCmd.FullCommand():
		return a.nearest()
	case containsCmd.FullCommand():
		return a.contains()
	case fillCmd.FullCommand():
		return a.fill()
	case sampleCmd.FullCommand():
		return a.sample()
	}
	return errors.Errorf("unknown command %q", command)
}

func override[T comparable](dst *T, flag T) {
	var zero T
	if flag != zero {
		*dst = flag
	}
}

func (a *app) canvas() geom.BoundingBox[float64] {
	return geom.BoundingBoxFromDimensions(float64(a.cfg.Width), float64(a.cfg.Height))
}

func (a *app) rng() *rand.Rand {
	return rand.New(rand.NewPCG(a.cfg.Seed, a.cfg.Seed))
}

// draw renders the debug drawing, if one was asked for.
func (a *app) draw(bounds geom.BoundingBox[float64], render func(d *dbg.Drawing)) error {
	if a.pngPath == "" && !a.preview {
		return nil
	}

	d := dbg.NewDrawing(bounds, a.cfg.Scale)
	render(d)

	if a.pngPath != "" {
		if err := d.SavePNG(a.pngPath); err != nil {
			return errors.Wrapf(err, "saving %s", a.pngPath)
		}
		a.logger.Info("wrote drawing", "path", a.pngPath)
	}
	if a.preview {
		return errors.Wrap(d.Cat(a.stderr), "previewing drawing")
	}
	return nil
}
