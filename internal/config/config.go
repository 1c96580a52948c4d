// Package config handles configuration loading and management.
package config

// Config holds all runtime settings.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// FieldConfig holds the particle field parameters.
type FieldConfig struct {
	PointCount         int     `yaml:"point_count"`
	SpreadRadius       float64 `yaml:"spread_radius"`
	ProximityThreshold float64 `yaml:"proximity_threshold"`
	RotationDelta      float64 `yaml:"rotation_delta"`
	Seed               int64   `yaml:"seed"`         // 0 = time-based
	SpatialGrid        bool    `yaml:"spatial_grid"` // grid index instead of pairwise scan
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Renderer       string  `yaml:"renderer"` // "window" or "terminal"
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	VSync          bool    `yaml:"vsync"`
	ShowFPS        bool    `yaml:"show_fps"`
	PointSize      float64 `yaml:"point_size"`
	LineWidth      float64 `yaml:"line_width"`
	CameraDistance float64 `yaml:"camera_distance"`
	FOVDegrees     float64 `yaml:"fov_degrees"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Renderer backends.
const (
	RendererWindow   = "window"
	RendererTerminal = "terminal"
)

// Default returns a Config with the reference values.
func Default() *Config {
	return &Config{
		Field: FieldConfig{
			PointCount:         1000,
			SpreadRadius:       5,
			ProximityThreshold: 0.8,
			RotationDelta:      0.0001,
		},
		Graphics: GraphicsConfig{
			Renderer:       RendererWindow,
			Width:          960,
			Height:         600,
			VSync:          true,
			ShowFPS:        false,
			PointSize:      2,
			LineWidth:      1,
			CameraDistance: 10,
			FOVDegrees:     75,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
