package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/roomcrawl/internal/logger"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"required,loglevel"`
	LogFormat   string `validate:"required,oneof=json text"`
	Environment string `validate:"required"`
	Version     string

	// Seed drives all randomness; zero means time-based
	Seed        int64
	CatalogPath string // empty uses the embedded catalog

	MaxEnemiesPerRoom int `validate:"gte=0,lte=10"`

	AutoplayRuns      int     `validate:"gte=1"`
	AutoplayWorkers   int     `validate:"gte=1"`
	AutoplayMaxRooms  int     `validate:"gte=1"`
	AutoplayHealBelow float64 `validate:"gte=0,lte=1"`

	SessionCacheSize int           `validate:"gte=1"`
	SessionTTL       time.Duration `validate:"gt=0"`

	MetricsFile    string
	DeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:         getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		Version:           getEnv(EnvVersion, DefaultVersion),
		CatalogPath:       getEnv(EnvCatalogPath, ""),
		MaxEnemiesPerRoom: getEnvAsInt(EnvMaxEnemiesPerRoom, DefaultMaxEnemiesPerRoom),
		AutoplayRuns:      getEnvAsInt(EnvAutoplayRuns, DefaultAutoplayRuns),
		AutoplayWorkers:   getEnvAsInt(EnvAutoplayWorkers, DefaultAutoplayWorkers),
		AutoplayMaxRooms:  getEnvAsInt(EnvAutoplayMaxRooms, DefaultAutoplayMaxRooms),
		AutoplayHealBelow: getEnvAsFloat(EnvAutoplayHealBelow, DefaultAutoplayHealBelow),
		SessionCacheSize:  getEnvAsInt(EnvSessionCacheSize, DefaultSessionCacheSize),
		SessionTTL:        getEnvAsDuration(EnvSessionTTL, DefaultSessionTTL),
		MetricsFile:       getEnv(EnvMetricsFile, ""),
		DeadLetterPath:    getEnv(EnvDeadLetterPath, ""),
	}

	// Unlike the other numeric settings, a malformed SEED is an error.
	if raw := getEnv(EnvSeed, ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtInvalidValue, EnvSeed, raw, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoggerConfig maps the settings onto the logger package
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, logger.DefaultServiceName, c.Version, c.Environment, c.Environment == DefaultEnvironment)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration string such as "30m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
