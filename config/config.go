// Package config handles islands run configuration from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/island"
)

var (
	// ErrInvalidDimension indicates a negative width or height.
	ErrInvalidDimension = errors.New("config: width and height must be non-negative")
	// ErrInvalidProbability indicates a land probability outside [0,1].
	ErrInvalidProbability = errors.New("config: land_probability must be within [0,1]")
	// ErrInvalidOption indicates an unknown connectivity, work-list, visited or log level value.
	ErrInvalidOption = errors.New("config: invalid option value")
)

// Defaults reproduce the classic 1000 × 1000 map at 25% land.
const (
	DefaultWidth  = 1000
	DefaultHeight = 1000
)

// Config is the top-level run configuration.
type Config struct {
	// Map, if set, is a text map file used instead of a random grid.
	Map string `yaml:"map"`

	// Width and Height size the random grid; 0 selects the default.
	Width           int      `yaml:"width"`
	Height          int      `yaml:"height"`
	LandProbability *float64 `yaml:"land_probability"`
	Seed            int64    `yaml:"seed"`

	Connectivity int    `yaml:"connectivity"` // 8 | 4
	WorkList     string `yaml:"worklist"`     // stack | queue
	Visited      string `yaml:"visited"`      // dense | sparse

	LogLevel string `yaml:"log_level"` // debug | info | warn | error
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// LoadFile reads a YAML configuration file, applies defaults and validates it.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML configuration, applies defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills unset fields. Width and Height default independently;
// zero means unset, so a random map always has a non-zero area.
func (c *Config) applyDefaults() {
	if c.Map == "" {
		if c.Width == 0 {
			c.Width = DefaultWidth
		}
		if c.Height == 0 {
			c.Height = DefaultHeight
		}
	}
	if c.LandProbability == nil {
		p := grid.DefaultLandProbability
		c.LandProbability = &p
	}
	if c.Connectivity == 0 {
		c.Connectivity = 8
	}
	if c.WorkList == "" {
		c.WorkList = "stack"
	}
	if c.Visited == "" {
		c.Visited = "dense"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks every field and returns the first violation.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrInvalidDimension)
	}
	if p := c.Probability(); !(p >= 0 && p <= 1) {
		return fmt.Errorf("%v: %w", p, ErrInvalidProbability)
	}
	if c.Connectivity != 8 && c.Connectivity != 4 {
		return fmt.Errorf("connectivity %d: %w", c.Connectivity, ErrInvalidOption)
	}
	if c.WorkList != "stack" && c.WorkList != "queue" {
		return fmt.Errorf("worklist %q: %w", c.WorkList, ErrInvalidOption)
	}
	if c.Visited != "dense" && c.Visited != "sparse" {
		return fmt.Errorf("visited %q: %w", c.Visited, ErrInvalidOption)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Probability returns the land probability, or the default when unset.
func (c *Config) Probability() float64 {
	if c.LandProbability == nil {
		return grid.DefaultLandProbability
	}

	return *c.LandProbability
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidOption)
}

// Grid builds the configured grid: the text map when Map is set, otherwise a
// seeded random fill. Call Validate first.
func (c *Config) Grid() (*grid.Grid, error) {
	if c.Map != "" {
		return grid.ReadFile(c.Map)
	}

	return grid.Random(c.Width, c.Height,
		grid.WithSeed(c.Seed),
		grid.WithLandProbability(c.Probability()),
	)
}

// FindOptions translates the discovery settings into island options.
// Call Validate first.
func (c *Config) FindOptions() []island.Option {
	opts := []island.Option{island.WithConnectivity(island.Conn8)}
	if c.Connectivity == 4 {
		opts[0] = island.WithConnectivity(island.Conn4)
	}
	if c.WorkList == "queue" {
		opts = append(opts, island.WithWorkList(island.BreadthFirst))
	}
	if c.Visited == "sparse" {
		opts = append(opts, island.WithVisited(island.SparseVisited))
	}

	return opts
}
