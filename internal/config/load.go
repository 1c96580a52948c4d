package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < env < flags.
// Environment variables are usually supplied through a .env file loaded by
// the caller before Load runs.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyEnv(cfg)
	applyFlags(cfg)

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./particlefield.yaml",
		filepath.Join(ConfigDir(), "particlefield.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "particlefield")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "particlefield")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "particlefield")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "particlefield")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnv applies PARTICLEFIELD_* environment overrides.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PARTICLEFIELD_RENDERER"); v != "" {
		cfg.Graphics.Renderer = v
	}
	if v := os.Getenv("PARTICLEFIELD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PARTICLEFIELD_LOG_FILE"); v != "" {
		cfg.Logging.LogFile = v
	}
	if v := os.Getenv("PARTICLEFIELD_POINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Field.PointCount = n
		}
	}
	if v := os.Getenv("PARTICLEFIELD_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Field.Seed = n
		}
	}
}
