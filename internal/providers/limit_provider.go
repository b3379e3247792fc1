package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/domain/teams"
)

const defaultLimitInterval = time.Minute

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// RateLimitedProvider is a DataProvider that owns a ticker and must be closed.
type RateLimitedProvider interface {
	DataProvider
	Close()
}

// NewRateLimitedProvider returns a DataProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) RateLimitedProvider {
	if interval <= 0 {
		interval = defaultLimitInterval
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := p.wait(ctx, "fetch teams"); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx)
}

func (p *rateLimitedProvider) FetchTeam(ctx context.Context, id int) (teams.Team, error) {
	if err := p.wait(ctx, "fetch team"); err != nil {
		return teams.Team{}, err
	}
	return p.next.FetchTeam(ctx, id)
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context, q players.Query) (players.Page, error) {
	if err := p.wait(ctx, "fetch players"); err != nil {
		return players.Page{}, err
	}
	return p.next.FetchPlayers(ctx, q)
}

func (p *rateLimitedProvider) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	if err := p.wait(ctx, "fetch player"); err != nil {
		return players.Player{}, err
	}
	return p.next.FetchPlayer(ctx, id)
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", slog.String("op", op))
		return ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch", slog.String("op", op))
	return nil
}
