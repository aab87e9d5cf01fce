package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvInterval overrides the configured report interval, value parsed by
// time.ParseDuration.
const EnvInterval = "HWSTAT_REPORT_INTERVAL"

// Config holds periodic reporter settings.
type Config struct {
	// Interval between reports. Zero or negative disables the reporter.
	Interval time.Duration `yaml:"interval"`
	// LogLevel for the reporter's logger: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Interval: 10 * time.Second,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file on top of the defaults, then
// applies environment overrides. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read report config: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse report config: %w", err)
		}
	}
	if s := os.Getenv(EnvInterval); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvInterval, err)
		}
		cfg.Interval = d
	}
	return cfg, nil
}
