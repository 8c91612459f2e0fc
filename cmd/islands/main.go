// Command islands generates (or loads) a boolean map, finds its 8-connected
// islands and reports how many there are and how long discovery took.
//
// Usage:
//
//	islands                                  # 1000 x 1000 random map, 25% land
//	islands -width 4000 -height 4000 -p 0.4  # bigger, denser map
//	islands -map coast.txt -list             # text map, list every island box
//	islands -config islands.yaml -view       # settings from YAML, browse the result
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/islands/config"
	"github.com/katalvlaran/islands/report"
)

// options carries command-line settings. Zero values leave the config untouched.
type options struct {
	configPath string
	mapPath    string
	width      int
	height     int
	prob       float64
	seed       int64
	conn       int
	logLevel   string
	list       bool
	view       bool
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "path to islands.yaml config file")
	flag.StringVar(&o.mapPath, "map", "", "text map file ('#' land, '.' water) instead of a random map")
	flag.IntVar(&o.width, "width", 0, "random map width (default 1000)")
	flag.IntVar(&o.height, "height", 0, "random map height (default 1000)")
	flag.Float64Var(&o.prob, "p", -1, "land probability of the random map (default 0.25)")
	flag.Int64Var(&o.seed, "seed", 0, "random seed (0 = fixed default)")
	flag.IntVar(&o.conn, "conn", 0, "connectivity: 8 or 4 (default 8)")
	flag.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flag.BoolVar(&o.list, "list", false, "print every island bounding box")
	flag.BoolVar(&o.view, "view", false, "browse the map and island boxes in the terminal")
	flag.Parse()

	if err := run(o, os.Stdout, os.Stderr); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("islands: fatal", "error", err)
		os.Exit(1)
	}
}

// loadConfig merges the YAML file (if any) with command-line overrides.
func loadConfig(o options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(o.configPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if o.mapPath != "" {
		cfg.Map = o.mapPath
	}
	if o.width != 0 {
		cfg.Width = o.width
	}
	if o.height != 0 {
		cfg.Height = o.height
	}
	if o.prob >= 0 {
		p := o.prob
		cfg.LandProbability = &p
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.conn != 0 {
		cfg.Connectivity = o.conn
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run builds the grid, discovers its islands and reports them. The report goes
// to stdout, logs to stderr.
func run(o options, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g, err := cfg.Grid()
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}
	logger.Debug("grid ready",
		"width", g.Width(),
		"height", g.Height(),
		"land", g.LandCount(),
		"map", cfg.Map,
		"seed", cfg.Seed,
	)

	islands, summary := report.Measure(g, cfg.FindOptions()...)
	logger.Info("discovery done",
		"islands", summary.Islands,
		"elapsed", summary.Elapsed,
		"connectivity", cfg.Connectivity,
		"worklist", cfg.WorkList,
		"visited", cfg.Visited,
	)

	if err := report.Fprint(stdout, summary); err != nil {
		return err
	}
	if o.list {
		if err := report.FprintIslands(stdout, islands); err != nil {
			return err
		}
	}
	if !o.view {
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()

	v := report.NewView(g, islands)
	v.Status = summary.String() + "  arrows/PgUp/PgDn scroll, q quit"

	return v.Run(screen)
}
