package server

import (
	"context"
	"testing"
	"time"

	"nba-draft-hub/internal/config"
	"nba-draft-hub/internal/providers"
	"nba-draft-hub/internal/providers/balldontlie"
	"nba-draft-hub/internal/providers/fixture"
	"nba-draft-hub/internal/teststubs"
)

func TestProviderFactoryBuildsFixtureWithoutLimiter(t *testing.T) {
	prov, release := newProviderFactory(nil, nil).build(config.Config{Provider: config.ProviderFixture})
	if prov == nil || release == nil {
		t.Fatalf("expected provider and release func")
	}
	release()
	list, err := prov.FetchTeams(context.Background())
	if err != nil || len(list) == 0 {
		t.Fatalf("expected fixture teams, got %d (%v)", len(list), err)
	}
}

func TestProviderFactoryThrottlesBalldontlie(t *testing.T) {
	stub := &teststubs.StubProvider{}
	cfg := config.Config{
		Provider:    config.ProviderBalldontlie,
		Balldontlie: config.BalldontlieConfig{MinInterval: 20 * time.Millisecond},
	}
	prov, release := newProviderFactory(nil, nil).wrap(cfg, stub)
	defer release()

	start := time.Now()
	if _, err := prov.FetchTeams(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if time.Since(start) < 15*time.Millisecond {
		t.Fatalf("expected call to wait for the limiter tick")
	}
}

func TestProviderName(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		provider   providers.DataProvider
		want       string
	}{
		{name: "configured wins", configured: " BallDontLie ", provider: fixture.New(), want: config.ProviderBalldontlie},
		{name: "fixture type", provider: fixture.New(), want: config.ProviderFixture},
		{name: "balldontlie type", provider: balldontlie.NewClient(balldontlie.Config{}), want: config.ProviderBalldontlie},
		{name: "injected stub", provider: &teststubs.StubProvider{}, want: "custom"},
		{name: "nothing", want: "provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := providerName(tt.configured, tt.provider); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
