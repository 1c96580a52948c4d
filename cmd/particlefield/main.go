package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/smasonuk/particlefield"
	"github.com/smasonuk/particlefield/internal/config"
	"github.com/smasonuk/particlefield/internal/logger"
)

func main() {
	// Optional .env for PARTICLEFIELD_* overrides; absence is fine.
	_ = godotenv.Load()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	field, err := particlefield.New(particlefield.Options{
		PointCount:         cfg.Field.PointCount,
		SpreadRadius:       cfg.Field.SpreadRadius,
		ProximityThreshold: cfg.Field.ProximityThreshold,
		RotationDelta:      cfg.Field.RotationDelta,
		Seed:               cfg.Field.Seed,
		SpatialGrid:        cfg.Field.SpatialGrid,
	})
	if err != nil {
		logger.Fatal("creating field", zap.Error(err))
	}

	logger.Info("field created",
		zap.Int("points", cfg.Field.PointCount),
		zap.Float64("spread", cfg.Field.SpreadRadius),
		zap.Float64("threshold", cfg.Field.ProximityThreshold),
		zap.Bool("spatial_grid", cfg.Field.SpatialGrid),
		zap.String("renderer", cfg.Graphics.Renderer),
	)

	if err := run(field, cfg); err != nil {
		logger.Fatal("renderer", zap.Error(err))
	}

	logger.Info("stopped")
}

func run(field *particlefield.Field, cfg *config.Config) error {
	switch cfg.Graphics.Renderer {
	case config.RendererTerminal:
		opts := particlefield.DefaultTerminalOptions()
		opts.CameraDistance = cfg.Graphics.CameraDistance
		opts.FOVDegrees = cfg.Graphics.FOVDegrees
		term, err := particlefield.NewTerminalRenderer(field, opts)
		if err != nil {
			return err
		}
		return term.Run()

	case config.RendererWindow:
		opts := particlefield.DefaultWindowOptions()
		opts.Width = cfg.Graphics.Width
		opts.Height = cfg.Graphics.Height
		opts.VSync = cfg.Graphics.VSync
		opts.ShowFPS = cfg.Graphics.ShowFPS
		opts.PointSize = cfg.Graphics.PointSize
		opts.LineWidth = cfg.Graphics.LineWidth
		opts.CameraDistance = cfg.Graphics.CameraDistance
		opts.FOVDegrees = cfg.Graphics.FOVDegrees
		return particlefield.NewWindowRenderer(field, opts).Run()

	default:
		return fmt.Errorf("unknown renderer %q", cfg.Graphics.Renderer)
	}
}
