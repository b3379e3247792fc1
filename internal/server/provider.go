package server

import (
	"log/slog"
	"strings"

	"nba-draft-hub/internal/config"
	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/providers"
	"nba-draft-hub/internal/providers/balldontlie"
	"nba-draft-hub/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case config.ProviderFixture, "":
		return fixture.New()
	case config.ProviderBalldontlie:
		return balldontlie.NewClient(balldontlie.Config{
			BaseURL: cfg.Balldontlie.BaseURL,
			APIKey:  cfg.Balldontlie.APIKey,
			Timeout: cfg.Balldontlie.Timeout,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider)
		return fixture.New()
	}
}

// providerName labels metrics and logs. An explicit PROVIDER wins; otherwise the
// concrete type decides, so injected providers still report a stable name.
func providerName(configured string, provider providers.DataProvider) string {
	if name := strings.ToLower(strings.TrimSpace(configured)); name != "" {
		return name
	}
	switch provider.(type) {
	case *fixture.Provider:
		return config.ProviderFixture
	case *balldontlie.Client:
		return config.ProviderBalldontlie
	case nil:
		return "provider"
	default:
		return "custom"
	}
}
