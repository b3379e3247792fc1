package config

import "time"

const (
	envFile      = "ENV_FILE"
	envPort      = "PORT"
	envProvider  = "PROVIDER"
	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envRetryAttempts = "RETRY_MAX_ATTEMPTS"
	envRetryBackoff  = "RETRY_INITIAL_BACKOFF"

	envTeamsRefresh = "TEAMS_REFRESH_INTERVAL"

	defaultEnvFile     = ".env"
	defaultPort        = "4000"
	defaultProvider    = ProviderFixture
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-draft-hub"

	defaultRetryAttempts = 3
	defaultRetryBackoff  = 200 * time.Millisecond

	defaultTeamsRefresh = time.Hour
)

// Provider names accepted by PROVIDER.
const (
	ProviderBalldontlie = "balldontlie"
	ProviderFixture     = "fixture"
)
