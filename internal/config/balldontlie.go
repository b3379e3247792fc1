package config

import "time"

const (
	envBdlBaseURL = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey  = "BALLDONTLIE_API_KEY"
	envBdlTimeout = "BALLDONTLIE_TIMEOUT"
	envBdlMinGap  = "BALLDONTLIE_MIN_INTERVAL"

	defaultBdlBaseURL = "https://api.balldontlie.io/v1"
	defaultBdlTimeout = 10 * time.Second
)

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// MinInterval spaces upstream calls to respect the plan's quota. Zero disables throttling.
	MinInterval time.Duration
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL:     envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		APIKey:      envOrDefault(envBdlAPIKey, ""),
		Timeout:     durationEnvOrDefault(envBdlTimeout, defaultBdlTimeout),
		MinInterval: durationEnvOrDefault(envBdlMinGap, 0),
	}
}
