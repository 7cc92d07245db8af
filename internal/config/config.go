// Package config provides the startup configuration for the ray caster.
// Values come from built-in defaults, an optional JSON file and command-line
// flags, in that order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/raycaster/internal/core/scene"
	"chosenoffset.com/raycaster/internal/core/shadows"
)

var (
	ErrInvalidSize   = errors.New("viewport size must be positive")
	ErrInvalidMargin = errors.New("wall margin leaves no room for interior walls")
	ErrInvalidWalls  = errors.New("wall count must not be negative")
	ErrInvalidFrames = errors.New("frame count must not be negative")
)

// maxPixels caps each viewport side so Cols*CellSize cannot overflow.
const maxPixels = 1 << 20

// Config holds all startup settings
type Config struct {
	// Viewport
	Grid GridConfig `json:"grid"`

	// Obstacles
	Walls WallConfig `json:"walls"`

	// Seed for interior wall placement. 0 picks a time-based seed.
	Seed int64 `json:"seed"`

	// FeedAddr enables the websocket snapshot feed when non-empty (e.g. ":8080").
	FeedAddr string `json:"feed_addr"`

	// Headless runs Frames ticks without opening a window.
	Headless bool `json:"headless"`
	Frames   int  `json:"frames"`

	// Debug shows the stats overlay from the first frame.
	Debug bool `json:"debug"`
}

// GridConfig sizes the viewport as a grid of square cells
type GridConfig struct {
	Cols     int `json:"cols"`      // Cells across (e.g., 30)
	Rows     int `json:"rows"`      // Cells down (e.g., 20)
	CellSize int `json:"cell_size"` // Pixels per cell side (e.g., 32)
}

// WallConfig controls the interior obstacle set
type WallConfig struct {
	Random int       `json:"random"` // Number of randomly placed walls
	Margin float64   `json:"margin"` // Inset from the screen edges for random walls
	Fixed  []WallDef `json:"fixed"`  // Walls placed exactly as given
}

// WallDef is a wall as written in a config file
type WallDef struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// DefaultConfig returns a 960x640 viewport with six random walls
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Cols:     30,
			Rows:     20,
			CellSize: 32,
		},
		Walls: WallConfig{
			Random: 6,
			Margin: scene.DefaultMargin,
		},
		Frames: 600,
	}
}

// LoadConfig loads config from a JSON file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}

// Parse builds a Config from command-line arguments (without the program
// name). A -config file is loaded first and explicitly set flags override it.
func Parse(args []string) (*Config, error) {
	def := DefaultConfig()
	fs := flag.NewFlagSet("raycaster", flag.ContinueOnError)

	path := fs.String("config", "", "path to a JSON config file")
	cols := fs.Int("cols", def.Grid.Cols, "viewport width in cells")
	rows := fs.Int("rows", def.Grid.Rows, "viewport height in cells")
	cell := fs.Int("cell", def.Grid.CellSize, "cell size in pixels")
	walls := fs.Int("walls", def.Walls.Random, "number of random interior walls")
	margin := fs.Float64("margin", def.Walls.Margin, "inset of random walls from the screen edges")
	seed := fs.Int64("seed", def.Seed, "seed for wall placement (0 for random)")
	feedAddr := fs.String("feed-addr", def.FeedAddr, "serve the websocket scene feed on this address")
	headless := fs.Bool("headless", def.Headless, "run without a window")
	frames := fs.Int("frames", def.Frames, "frames to simulate in headless mode")
	debug := fs.Bool("debug", def.Debug, "show the stats overlay")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *path != "" {
		loaded, err := LoadConfig(*path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cols":
			cfg.Grid.Cols = *cols
		case "rows":
			cfg.Grid.Rows = *rows
		case "cell":
			cfg.Grid.CellSize = *cell
		case "walls":
			cfg.Walls.Random = *walls
		case "margin":
			cfg.Walls.Margin = *margin
		case "seed":
			cfg.Seed = *seed
		case "feed-addr":
			cfg.FeedAddr = *feedAddr
		case "headless":
			cfg.Headless = *headless
		case "frames":
			cfg.Frames = *frames
		case "debug":
			cfg.Debug = *debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config describes a usable scene
func (c *Config) Validate() error {
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 || c.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: %dx%d cells of %dpx", ErrInvalidSize, c.Grid.Cols, c.Grid.Rows, c.Grid.CellSize)
	}
	// The pixel size must fit an int as well as each factor
	if c.Grid.Cols > maxPixels/c.Grid.CellSize || c.Grid.Rows > maxPixels/c.Grid.CellSize {
		return fmt.Errorf("%w: %dx%d cells of %dpx exceeds %d pixels", ErrInvalidSize, c.Grid.Cols, c.Grid.Rows, c.Grid.CellSize, maxPixels)
	}
	if c.Walls.Random < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWalls, c.Walls.Random)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrames, c.Frames)
	}

	// Random walls need a non-empty range on both axes
	if c.Walls.Random > 0 {
		if c.Walls.Margin < 0 || 2*c.Walls.Margin >= c.Width() || 2*c.Walls.Margin >= c.Height() {
			return fmt.Errorf("%w: margin %.0f in %.0fx%.0f", ErrInvalidMargin, c.Walls.Margin, c.Width(), c.Height())
		}
	}
	return nil
}

// Width returns the viewport width in pixels
func (c *Config) Width() float64 {
	return float64(c.Grid.Cols * c.Grid.CellSize)
}

// Height returns the viewport height in pixels
func (c *Config) Height() float64 {
	return float64(c.Grid.Rows * c.Grid.CellSize)
}

// SceneConfig converts the startup settings into a scene description
func (c *Config) SceneConfig() scene.Config {
	fixed := make([]shadows.Wall, len(c.Walls.Fixed))
	for i, w := range c.Walls.Fixed {
		fixed[i] = shadows.NewWall(w.X1, w.Y1, w.X2, w.Y2, shadows.Interior)
	}

	return scene.Config{
		Width:         c.Width(),
		Height:        c.Height(),
		InteriorWalls: c.Walls.Random,
		Margin:        c.Walls.Margin,
		FixedWalls:    fixed,
	}
}
