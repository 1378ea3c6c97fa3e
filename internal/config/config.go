// Package config loads runtime settings from an optional YAML file and the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable holding an optional YAML config file path.
const PathEnv = "TICTACTOE_CONFIG"

// Config holds runtime settings. The zero-configuration defaults run the game
// with logging, sound and telemetry off.
type Config struct {
	LogFile   string    `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	LogLevel  string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Sound     bool      `yaml:"sound" env:"TICTACTOE_SOUND" env-default:"false"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Telemetry configures trace export to an OTLP/HTTP collector.
type Telemetry struct {
	Enabled  bool   `yaml:"enabled" env:"TICTACTOE_TELEMETRY" env-default:"false"`
	Endpoint string `yaml:"endpoint" env:"TICTACTOE_OTLP_ENDPOINT" env-default:"https://api.honeycomb.io"`
	APIKey   string `yaml:"api-key" env:"HONEYCOMB_TICTACTOE_API_KEY"`
	Dataset  string `yaml:"dataset" env:"HONEYCOMB_TICTACTOE_DATASET" env-default:"tictactoe"`
}

// Load reads path (if not empty) and then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}
	return cfg, nil
}

// Headers returns the OTLP request headers carrying the Honeycomb API key, or
// nil if no key is configured.
func (t Telemetry) Headers() map[string]string {
	if t.APIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    t.APIKey,
		"x-honeycomb-dataset": t.Dataset,
	}
}
