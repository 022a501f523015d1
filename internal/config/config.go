package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// DatabaseURL is the Postgres connection string for the course catalog.
	DatabaseURL string `koanf:"database_url"`

	// Auth settings
	Auth AuthConfig `koanf:"auth"`

	// Playback settings
	Playback PlaybackConfig `koanf:"playback"`

	// Log settings
	Log LogConfig `koanf:"log"`
}

// AuthConfig holds login endpoint configuration.
type AuthConfig struct {
	Endpoint string `koanf:"endpoint"` // e.g., "https://api.example.com/auth"
	APIKey   string `koanf:"api_key"`  // anon key sent with OTP requests
}

// PlaybackConfig holds transport defaults.
type PlaybackConfig struct {
	Volume          float64 `koanf:"volume"`           // initial volume (0.0-1.0, default: 1.0)
	ResumeThreshold int     `koanf:"resume_threshold"` // min seconds watched before resume offers (default: 30)
	ProbeTimeoutSec int     `koanf:"probe_timeout"`    // source probe timeout in seconds (default: 10)
}

// ResumeThresholdDuration returns the resume threshold as a duration.
func (p PlaybackConfig) ResumeThresholdDuration() time.Duration {
	return time.Duration(p.ResumeThreshold) * time.Second
}

// ProbeTimeout returns the source probe timeout as a duration.
func (p PlaybackConfig) ProbeTimeout() time.Duration {
	return time.Duration(p.ProbeTimeoutSec) * time.Second
}

// LogConfig holds file logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // log file path; empty uses the state dir default
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Normalize auth endpoint (remove trailing slash)
	cfg.Auth.Endpoint = strings.TrimSuffix(cfg.Auth.Endpoint, "/")

	// Expand ~ in log file
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/studium/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "studium", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasDatabase returns true if a catalog database is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasAuth returns true if the login endpoint is configured.
func (c *Config) HasAuth() bool {
	return c.Auth.Endpoint != "" && c.Auth.APIKey != ""
}

// GetPlaybackConfig returns the playback configuration with defaults applied.
func (c *Config) GetPlaybackConfig() PlaybackConfig {
	cfg := c.Playback

	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = 1.0
	}
	if cfg.ResumeThreshold <= 0 {
		cfg.ResumeThreshold = 30
	}
	if cfg.ProbeTimeoutSec <= 0 {
		cfg.ProbeTimeoutSec = 10
	}

	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	return cfg
}
