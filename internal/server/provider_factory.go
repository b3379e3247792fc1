package server

import (
	"log/slog"

	"nba-draft-hub/internal/config"
	"nba-draft-hub/internal/metrics"
	"nba-draft-hub/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the decorated provider and a release func for the limiter ticker.
func (f providerFactory) build(cfg config.Config) (providers.DataProvider, func()) {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) (providers.DataProvider, func()) {
	name := providerName(cfg.Provider, base)
	release := func() {}

	inner := base
	if cfg.Balldontlie.MinInterval > 0 && name == config.ProviderBalldontlie {
		limited := providers.NewRateLimitedProvider(base, cfg.Balldontlie.MinInterval, f.logger)
		inner = limited
		release = limited.Close
	}
	retrying := providers.NewRetryingProvider(inner, f.logger, f.metrics, name, cfg.Retry.MaxAttempts, cfg.Retry.InitialBackoff)
	return retrying, release
}
