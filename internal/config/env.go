package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment represents the application environment
type Environment string

const (
	// Development environment - debug logging available, open CORS
	Development Environment = "development"
	// Production environment - production settings
	Production Environment = "production"
)

// EnvConfig holds environment-specific configuration
type EnvConfig struct {
	// Environment name (development, production)
	Env Environment

	// Feature flags
	Debug bool

	LogLevel      string
	AllowedOrigin string

	// Storage
	Home  string // PALETTE_HOME
	Store string // file, sqlite or memory

	// Random colour source
	HexbotURL        string
	HexbotTimeoutSec int

	// Servers
	APIListen     string
	MetricsListen string
	APIKeyHash    string // bcrypt hash, empty = open API
	RateLimitRPM  int
}

// LoadEnv loads environment configuration from environment variables
func LoadEnv() *EnvConfig {
	env := getEnvOrDefault("APP_ENV", "development")

	cfg := &EnvConfig{
		Env:      Environment(strings.ToLower(env)),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if cfg.Env != Production {
		cfg.Env = Development // Normalize unknown envs to development
	}
	cfg.AllowedOrigin = getEnvOrDefault("ALLOWED_ORIGIN", "*")
	cfg.Debug = getEnvOrDefault("DEBUG", "false") == "true"
	if cfg.Debug && strings.TrimSpace(os.Getenv("LOG_LEVEL")) == "" {
		cfg.LogLevel = "debug"
	}

	cfg.Home = getEnvOrDefault("PALETTE_HOME", defaultHome())
	cfg.Store = strings.ToLower(getEnvOrDefault("PALETTE_STORE", "file"))

	cfg.HexbotURL = getEnvOrDefault("HEXBOT_URL", "https://api.noopschallenge.com/hexbot")
	cfg.HexbotTimeoutSec = parseIntOrDefault(getEnvOrDefault("HEXBOT_TIMEOUT_SEC", "10"), 10)

	cfg.APIListen = getEnvOrDefault("API_LISTEN", ":8080")
	cfg.MetricsListen = getEnvOrDefault("METRICS_LISTEN", ":9090")
	cfg.APIKeyHash = getEnvOrDefault("API_KEY_HASH", "")
	cfg.RateLimitRPM = parseIntOrDefault(getEnvOrDefault("RATE_LIMIT_RPM", "60"), 60)

	return cfg
}

// IsDevelopment returns true if running in development mode
func (e *EnvConfig) IsDevelopment() bool {
	return e.Env == Development
}

// IsProduction returns true if running in production mode
func (e *EnvConfig) IsProduction() bool {
	return e.Env == Production
}

// String returns the environment name
func (e Environment) String() string {
	return string(e)
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".hexbot-palette"
	}
	return filepath.Join(home, ".hexbot-palette")
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// parseIntOrDefault parses a string as int, returning default on error
func parseIntOrDefault(s string, defaultValue int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}
	return n
}
