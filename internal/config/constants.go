package config

import "time"

// Environment variable names
const (
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvVersion           = "VERSION"
	EnvSeed              = "SEED"
	EnvCatalogPath       = "CATALOG_PATH"
	EnvMaxEnemiesPerRoom = "MAX_ENEMIES_PER_ROOM"
	EnvAutoplayRuns      = "AUTOPLAY_RUNS"
	EnvAutoplayWorkers   = "AUTOPLAY_WORKERS"
	EnvAutoplayMaxRooms  = "AUTOPLAY_MAX_ROOMS"
	EnvAutoplayHealBelow = "AUTOPLAY_HEAL_BELOW"
	EnvSessionCacheSize  = "SESSION_CACHE_SIZE"
	EnvSessionTTL        = "SESSION_TTL"
	EnvMetricsFile       = "METRICS_FILE"
	EnvDeadLetterPath    = "EVENT_DEADLETTER_PATH"
)

// Defaults
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultVersion           = "dev"
	DefaultMaxEnemiesPerRoom = 2
	DefaultAutoplayRuns      = 1
	DefaultAutoplayWorkers   = 1
	DefaultAutoplayMaxRooms  = 10
	DefaultAutoplayHealBelow = 0.5
	DefaultSessionCacheSize  = 128
	DefaultSessionTTL        = 30 * time.Minute
)

// Error formats
const (
	ErrFmtInvalidValue = "invalid %s value %q: %w"
	ErrFmtValidation   = "invalid configuration: %s"
)
