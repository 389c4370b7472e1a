package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of an update run. Components receive it at
// construction; nothing reads global state.
type Config struct {
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	DelaySeconds   int    `yaml:"delay_seconds"`
	MaxPages       int    `yaml:"max_pages"`
	HistoryLimit   int    `yaml:"history_limit"`
	DataPath       string `yaml:"data_path"`
	LogPath        string `yaml:"log_path"`
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() *Config {
	return &Config{
		UserAgent:      "EndoFind Research Bot/1.0 (educational health resource; contact via GitHub)",
		TimeoutSeconds: 15,
		DelaySeconds:   2,
		MaxPages:       40,
		HistoryLimit:   24,
		DataPath:       "data/surgeons.json",
		LogPath:        "data/update_log.json",
	}
}

// RequestTimeout is the per-request timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RequestDelay is the minimum delay between outbound requests.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.DelaySeconds) * time.Second
}
