// Package config loads the application configuration from an optional
// YAML file with environment variable overrides. Missing settings fall
// back to defaults, so the binary runs with no config at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the application configuration.
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Store   StoreConfig   `yaml:"store"`
	Display DisplayConfig `yaml:"display"`
}

// DataConfig describes the bootstrap data source.
type DataConfig struct {
	// Source is an http(s) URL or a local file path to the job feed.
	Source string `yaml:"source"`
	Proxy  string `yaml:"proxy"`
}

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	Backend  string `yaml:"backend"` // "file" or "redis"
	Dir      string `yaml:"dir"`     // file backend data directory
	RedisURL string `yaml:"redis_url"`
}

// DisplayConfig holds view-layer preferences.
type DisplayConfig struct {
	NoBanner bool `yaml:"no_banner"`
	Progress bool `yaml:"progress"`
}

// ValidBackend reports whether the store backend name is supported.
func ValidBackend(backend string) bool {
	return backend == "file" || backend == "redis"
}

// Load reads the config file if present, applies env overrides and
// fills defaults. A missing file is not an error.
func Load(path string) (*AppConfig, error) {
	cfg := defaults()

	if path == "" {
		path = findConfigPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "file"
	}
	if !ValidBackend(cfg.Store.Backend) {
		return nil, fmt.Errorf("config: invalid store backend %q (valid: file, redis)", cfg.Store.Backend)
	}
	if cfg.Store.Backend == "redis" && cfg.Store.RedisURL == "" {
		return nil, fmt.Errorf("config: store backend is redis but redis_url is not set")
	}
	return cfg, nil
}

func defaults() *AppConfig {
	home, _ := os.UserHomeDir()
	return &AppConfig{
		Data: DataConfig{
			Source: filepath.Join("assets", "data", "data.json"),
		},
		Store: StoreConfig{
			Backend: "file",
			Dir:     filepath.Join(home, ".joblens"),
		},
		Display: DisplayConfig{
			Progress: true,
		},
	}
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("JOBLENS_DATA_SOURCE"); v != "" {
		cfg.Data.Source = v
	}
	if v := os.Getenv("JOBLENS_PROXY"); v != "" {
		cfg.Data.Proxy = v
	}
	if v := os.Getenv("JOBLENS_STORE_BACKEND"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("JOBLENS_DATA_DIR"); v != "" {
		cfg.Store.Dir = v
	}
	if v := os.Getenv("JOBLENS_REDIS_URL"); v != "" {
		cfg.Store.RedisURL = v
	}
}

func findConfigPath() string {
	home, _ := os.UserHomeDir()
	paths := []string{
		"joblens.yaml",
		filepath.Join(home, ".joblens", "config.yaml"),
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
