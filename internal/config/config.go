package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

type Config struct {
	Storage struct {
		Driver string `yaml:"driver"`
		Dir    string `yaml:"dir"`
	} `yaml:"storage"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		LockTTL  string `yaml:"lock_ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default is the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Storage.Driver = DriverFile
	cfg.Storage.Dir = "."
	cfg.Log.Level = "warn"
	return cfg
}

// Load reads YAML config from path on top of Default. A missing file is not an error.
// QUIZ_STORAGE and QUIZ_DATA_DIR override the storage section.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}
	if v := os.Getenv("QUIZ_STORAGE"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("QUIZ_DATA_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverFile
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// LogLevel maps the configured level name to a slog level; unknown names mean warn.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
