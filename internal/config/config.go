// Package config loads paiman's runtime configuration.
//
// Values come from an optional YAML file, then PAIMAN_* environment
// variables override them, then Validate checks the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is paiman's runtime configuration.
type Config struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"logLevel"`

	// PictureDir is where the directory picture selector looks for images.
	PictureDir string `yaml:"pictureDir"`

	TimeoutMs int `yaml:"timeoutMs"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		Env:        "local",
		LogLevel:   "info",
		PictureDir: ".",
		TimeoutMs:  10_000,
	}
}

// Timeout is TimeoutMs as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// IsProduction reports whether the production logger should be used.
func (c Config) IsProduction() bool { return c.Env == "production" }

// Load reads path (if non-empty), applies env overrides and validates.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	envErr := applyEnv(&cfg)
	if err := errors.Join(envErr, cfg.Validate()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv is Load without a file.
func LoadFromEnv() (Config, error) { return Load("") }

// Validate checks the fields that have constraints.
func (c Config) Validate() error {
	var errs []error
	if c.TimeoutMs <= 0 {
		errs = append(errs, errors.New("config: timeoutMs must be > 0"))
	}
	if c.PictureDir == "" {
		errs = append(errs, errors.New("config: pictureDir must not be empty"))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("config: unknown logLevel %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

func applyEnv(c *Config) error {
	c.Env = getenv("PAIMAN_ENV", c.Env)
	c.LogLevel = getenv("PAIMAN_LOG_LEVEL", c.LogLevel)
	c.PictureDir = getenv("PAIMAN_PICTURE_DIR", c.PictureDir)

	var err error
	c.TimeoutMs, err = getenvInt("PAIMAN_TIMEOUT_MS", c.TimeoutMs)
	return err
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getenvInt keeps def when k is unset and reports a value that is not an integer.
func getenvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("config: %s=%q is not an integer", k, v)
	}
	return n, nil
}
