package config

import "time"

// AppConfig represents the optional YAML configuration file.
type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Probe   ProbeConfig   `yaml:"probe"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// FetchConfig tunes the fallback fetcher.
type FetchConfig struct {
	RetryDelay time.Duration `yaml:"retry_delay"` // linear backoff step
	Timeout    time.Duration `yaml:"timeout"`     // per attempt, applied to the http.Client
}

// ProbeConfig holds settings for the route probe and its health server.
type ProbeConfig struct {
	Port     int           `yaml:"port"`
	Interval time.Duration `yaml:"interval"`
	Path     string        `yaml:"path"` // probed relative to the public base
}

// Default returns an AppConfig with every default applied.
func Default() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Fetch.RetryDelay <= 0 {
		cfg.Fetch.RetryDelay = 250 * time.Millisecond
	}
	if cfg.Fetch.Timeout <= 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Probe.Port <= 0 {
		cfg.Probe.Port = 9090
	}
	if cfg.Probe.Interval <= 0 {
		cfg.Probe.Interval = 30 * time.Second
	}
	if cfg.Probe.Path == "" {
		cfg.Probe.Path = "/auth/v1/health"
	}
}
