package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	Balldontlie BalldontlieConfig
	Backend     BackendConfig
	Storage     StorageConfig
	Retry       RetryConfig
	Metrics     MetricsConfig
	Logging     LoggingConfig
	// TeamsRefresh is how often the team list is reloaded in the background.
	TeamsRefresh time.Duration
}

// LoggingConfig is passed through to logging.NewLogger.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// A dotenv file (ENV_FILE, default .env) is applied first when present; real
// environment variables always win over file values.
func Load() Config {
	loadDotEnv(envOrDefault(envFile, defaultEnvFile))

	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		Balldontlie: loadBalldontlie(),
		Backend:     loadBackend(),
		Storage:     loadStorage(),
		Retry:       loadRetry(),
		Metrics:     loadMetrics(),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
		},
		TeamsRefresh: durationEnvOrDefault(envTeamsRefresh, defaultTeamsRefresh),
	}
}

func loadDotEnv(path string) bool {
	if path == "" {
		return false
	}
	return godotenv.Load(path) == nil
}
