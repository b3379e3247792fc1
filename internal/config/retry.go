package config

import "time"

// RetryConfig tunes the retry decorator around upstream calls.
type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
}

func loadRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts:    intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		InitialBackoff: durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
	}
}
