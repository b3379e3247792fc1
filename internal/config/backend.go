package config

import "time"

const (
	envBackendBaseURL = "BACKEND_BASE_URL"
	envBackendTimeout = "BACKEND_TIMEOUT"

	defaultBackendBaseURL = "http://localhost:8080"
	defaultBackendTimeout = 10 * time.Second
)

// BackendConfig points at the token + prospects REST backend.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadBackend() BackendConfig {
	return BackendConfig{
		BaseURL: envOrDefault(envBackendBaseURL, defaultBackendBaseURL),
		Timeout: durationEnvOrDefault(envBackendTimeout, defaultBackendTimeout),
	}
}
