package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"
)

// DefaultFile is the optional JSON file overlaid on the environment.
const DefaultFile = "palette.json"

// Config holds all application configuration values.
type Config struct {
	Home             string `json:"home"`
	Store            string `json:"store"`
	HexbotURL        string `json:"hexbot_url"`
	HexbotTimeoutSec int    `json:"hexbot_timeout_sec"`
	APIListen        string `json:"api_listen"`
	MetricsListen    string `json:"metrics_listen"`
	APIKeyHash       string `json:"api_key_hash"`
	RateLimitRPM     int    `json:"rate_limit_rpm"`
	AllowedOrigin    string `json:"allowed_origin"`

	// Environment configuration (loaded from env vars)
	Env *EnvConfig `json:"-"`
}

// Load builds the configuration from environment defaults and overlays the
// JSON file at path when it exists. An empty path means DefaultFile.
func Load(path string) (*Config, error) {
	env := LoadEnv()
	cfg := &Config{
		Home:             env.Home,
		Store:            env.Store,
		HexbotURL:        env.HexbotURL,
		HexbotTimeoutSec: env.HexbotTimeoutSec,
		APIListen:        env.APIListen,
		MetricsListen:    env.MetricsListen,
		APIKeyHash:       env.APIKeyHash,
		RateLimitRPM:     env.RateLimitRPM,
		AllowedOrigin:    env.AllowedOrigin,
		Env:              env,
	}

	if path == "" {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	return cfg, nil
}

// HexbotTimeout returns the fetch timeout as a duration.
func (c *Config) HexbotTimeout() time.Duration {
	return time.Duration(c.HexbotTimeoutSec) * time.Second
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if c.Home == "" && c.Store != "memory" {
		errs = append(errs, "home directory is required")
	}
	switch c.Store {
	case "file", "sqlite", "memory":
	default:
		errs = append(errs, fmt.Sprintf("store must be file, sqlite or memory (got %q)", c.Store))
	}
	if c.HexbotURL == "" {
		errs = append(errs, "hexbot_url is required")
	}

	// Validate numeric values
	if c.HexbotTimeoutSec <= 0 {
		errs = append(errs, "hexbot_timeout_sec must be positive")
	}
	if c.RateLimitRPM < 0 {
		errs = append(errs, "rate_limit_rpm must not be negative")
	}

	if c.APIListen == "" {
		errs = append(errs, "api_listen address is required")
	}
	if c.MetricsListen == "" {
		errs = append(errs, "metrics_listen address is required")
	}
	if c.APIKeyHash != "" {
		if _, err := bcrypt.Cost([]byte(c.APIKeyHash)); err != nil {
			errs = append(errs, "api_key_hash is not a bcrypt hash: "+err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}
