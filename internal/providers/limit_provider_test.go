package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/teststubs"
)

func TestRateLimitedProviderBlocksUntilTick(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 5*time.Millisecond, nil)
	defer rl.Close()

	start := time.Now()
	if _, err := rl.FetchTeams(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	elapsed := time.Since(start)
	if elapsed < 5*time.Millisecond {
		t.Fatalf("expected call to wait for ticker, elapsed %s", elapsed)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider called once, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderGatesEveryOperation(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, time.Millisecond, nil)
	defer rl.Close()

	ctx := context.Background()
	_, _ = rl.FetchTeam(ctx, 1)
	_, _ = rl.FetchPlayers(ctx, players.Query{})
	_, _ = rl.FetchPlayer(ctx, 1)
	if inner.Calls.Load() != 3 {
		t.Fatalf("expected 3 inner calls, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil)
	defer rl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchPlayers(ctx, players.Query{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	var inner DataProvider
	rl := NewRateLimitedProvider(inner, time.Millisecond, nil)
	defer rl.Close()

	_, err := rl.FetchTeams(context.Background())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsInterval(t *testing.T) {
	rl := NewRateLimitedProvider(&teststubs.StubProvider{}, 0, nil).(*rateLimitedProvider)
	if rl.interval != defaultLimitInterval {
		t.Fatalf("expected default interval 1m, got %s", rl.interval)
	}
	rl.Close()
}
