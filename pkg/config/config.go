// Package config handles loading, defaulting, and validation of the
// optional sonar TOML configuration file. Every section maps to a typed
// struct so the CLI gets strong typing without manual key lookups.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level configuration, mirroring the TOML sections.
type Config struct {
	Model   ModelConfig   `toml:"model"   json:"model"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
	Plot    PlotConfig    `toml:"plot"    json:"plot"`
}

// ModelConfig carries the model-wide physical coefficients.
type ModelConfig struct {
	// Absorption is the seawater absorption coefficient in dB/m.
	Absorption float64 `toml:"absorption" json:"absorption"`
	// AmbientNoise is the default background noise level in dB, used
	// whenever a query does not set one explicitly.
	AmbientNoise float64 `toml:"ambient_noise" json:"ambient_noise"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
}

// PlotConfig shapes the speed sweep rendered by the plot command.
type PlotConfig struct {
	MaxSpeed float64 `toml:"max_speed" json:"max_speed"`
	Steps    int     `toml:"steps"     json:"steps"`
}

// Default returns a Config populated with sane defaults. Values here are
// used whenever the TOML file omits a field.
func Default() Config {
	return Config{
		Model: ModelConfig{
			Absorption:   0.00004,
			AmbientNoise: 50,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Plot: PlotConfig{
			MaxSpeed: 35,
			Steps:    140,
		},
	}
}

// Load reads the TOML file at path, layers it on top of the defaults, and
// validates the result. An error is returned if the file can't be read,
// parsed, or if any constraint is violated.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Model.Absorption <= 0 {
		return errors.New("model.absorption must be > 0")
	}
	if cfg.Model.AmbientNoise < 0 {
		return errors.New("model.ambient_noise must be >= 0")
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", cfg.Logging.Level)
	}

	if cfg.Plot.MaxSpeed <= 0 {
		return errors.New("plot.max_speed must be > 0")
	}
	if cfg.Plot.Steps < 2 {
		return errors.New("plot.steps must be >= 2")
	}

	return nil
}
