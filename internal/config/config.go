package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Engine holds runtime configuration for the effect simulator.
type Engine struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Simulation
	TickRate float64 `yaml:"tick_rate"` // status updates per second

	// Data files
	CatalogPath  string `yaml:"catalog_path"`
	ScenarioPath string `yaml:"scenario_path"`
}

// DefaultEngine returns Engine config with sensible defaults.
func DefaultEngine() Engine {
	return Engine{
		LogLevel:     "info",
		TickRate:     10,
		CatalogPath:  "configs/tags.yaml",
		ScenarioPath: "configs/scenario.yaml",
	}
}

// LoadEngine loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.TickRate <= 0 {
		return cfg, fmt.Errorf("config %s: tick_rate must be positive, got %v", path, cfg.TickRate)
	}

	return cfg, nil
}
