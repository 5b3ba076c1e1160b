// Package config loads mazewalk settings from a YAML (or JSON) file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazewalk/internal/logging"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/solver"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Tick interval bounds in milliseconds.
const (
	MinTickInterval = 1
	MaxTickInterval = 1000
)

// Animation modes.
const (
	AnimateAuto   = "auto"
	AnimateAlways = "always"
	AnimateNever  = "never"
)

// Scene is the pixel area the grid is laid out on.
type Scene struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Config represents the structure of mazewalk.yaml.
type Config struct {
	Algorithm    string  `yaml:"algorithm" json:"algorithm"`
	TickInterval int     `yaml:"tick_interval" json:"tick_interval"` // milliseconds
	Cells        int     `yaml:"cells" json:"cells"`
	Scene        Scene   `yaml:"scene" json:"scene"`
	Seed         int64   `yaml:"seed" json:"seed"` // 0 picks a fresh seed per run
	RandomWalls  bool    `yaml:"random_walls" json:"random_walls"`
	WallRatio    float64 `yaml:"wall_ratio" json:"wall_ratio"`
	LogLevel     string  `yaml:"log_level" json:"log_level"`
	MetricsAddr  string  `yaml:"metrics_addr" json:"metrics_addr"`
	Animate      string  `yaml:"animate" json:"animate"`
}

// Default returns the stock settings:
// BFS, 10ms ticks, 2000 cells on a 750×600 scene, a random maze with a third
// of the cells walled.
func Default() Config {
	return Config{
		Algorithm:    "bfs",
		TickInterval: 10,
		Cells:        2000,
		Scene:        Scene{Width: maze.DefaultSceneWidth, Height: maze.DefaultSceneHeight},
		RandomWalls:  true,
		WallRatio:    maze.DefaultWallRatio,
		LogLevel:     "info",
		Animate:      AnimateAuto,
	}
}

// Load reads a configuration file on top of Default and validates it.
// Files ending in .json are decoded as JSON, anything else as YAML.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	if _, err := solver.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %w", ErrInvalid, err)
	}
	if c.TickInterval < MinTickInterval || c.TickInterval > MaxTickInterval {
		return fmt.Errorf("%w: tick_interval %d not in [%d,%d]", ErrInvalid, c.TickInterval, MinTickInterval, MaxTickInterval)
	}
	if _, err := maze.CellSizeFor(c.Cells); err != nil {
		return fmt.Errorf("%w: cells %d: %w", ErrInvalid, c.Cells, err)
	}
	if c.Scene.Width <= 0 || c.Scene.Height <= 0 {
		return fmt.Errorf("%w: scene %dx%d", ErrInvalid, c.Scene.Width, c.Scene.Height)
	}
	if c.WallRatio < 0 || c.WallRatio >= 1 {
		return fmt.Errorf("%w: wall_ratio %g not in [0,1)", ErrInvalid, c.WallRatio)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Animate {
	case AnimateAuto, AnimateAlways, AnimateNever:
	default:
		return fmt.Errorf("%w: animate %q", ErrInvalid, c.Animate)
	}
	return nil
}

// AlgorithmValue returns the parsed algorithm. Call Validate first.
func (c Config) AlgorithmValue() solver.Algorithm {
	a, _ := solver.ParseAlgorithm(c.Algorithm)
	return a
}

// Tick returns the tick interval as a duration.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickInterval) * time.Millisecond
}

// Layout returns the maze layout for the configured scene and cell count.
func (c Config) Layout() (maze.Layout, error) {
	size, err := maze.CellSizeFor(c.Cells)
	if err != nil {
		return maze.Layout{}, err
	}
	return maze.Layout{SceneWidth: c.Scene.Width, SceneHeight: c.Scene.Height, CellSize: size}, nil
}
