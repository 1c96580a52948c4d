package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagRenderer = flag.String("renderer", "", "Render backend: window or terminal")
	flagPoints   = flag.Int("points", 0, "Number of particles")
	flagSeed     = flag.Int64("seed", 0, "Point generation seed (0 = time-based)")
	flagGrid     = flag.Bool("grid", false, "Use the spatial grid edge finder")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	if *flagRenderer != "" {
		cfg.Graphics.Renderer = *flagRenderer
	}
	if *flagPoints > 0 {
		cfg.Field.PointCount = *flagPoints
	}
	if *flagSeed != 0 {
		cfg.Field.Seed = *flagSeed
	}
	if *flagGrid {
		cfg.Field.SpatialGrid = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
