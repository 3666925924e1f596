package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults of the commands. Flags given on the command line
// take precedence.
type Config struct {
	// Canvas, used by sample and as the triangulation bounds
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`

	// Number of cells on each side of the sample grid
	GridSize uint32 `yaml:"grid_size"`

	K          int    `yaml:"k"`
	Iterations int    `yaml:"iterations"`
	Neighbours int    `yaml:"neighbours"`
	Seed       uint64 `yaml:"seed"`

	// Pixels per unit in debug drawings
	Scale float64 `yaml:"scale"`
}

func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		GridSize:   20,
		K:          5,
		Iterations: 100,
		Neighbours: 3,
		Seed:       1,
		Scale:      1,
	}
}

// LoadConfig reads a YAML file on top of the defaults. Keys missing from the
// file keep their default value, unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "opening config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Width == 0 || c.Height == 0:
		return errors.Errorf("canvas must not be empty, got %dx%d", c.Width, c.Height)
	case c.GridSize == 0:
		return errors.New("grid_size must be positive")
	case c.K < 0:
		return errors.Errorf("k must not be negative, got %d", c.K)
	case c.Iterations < 0:
		return errors.Errorf("iterations must not be negative, got %d", c.Iterations)
	case c.Neighbours < 0:
		return errors.Errorf("neighbours must not be negative, got %d", c.Neighbours)
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %v", c.Scale)
	}
	return nil
}
