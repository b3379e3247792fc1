package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/domain/teams"
	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	defaultProviderName  = "provider"
)

// retryingProvider wraps a DataProvider with retry/backoff behavior and
// records one upstream call per attempt.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	recorder     *metrics.Recorder
	providerName string
	maxAttempts  int
	initial      time.Duration
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initialBackoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultBackoff
	}
	if name == "" {
		name = defaultProviderName
	}
	rp := &retryingProvider{
		inner:        inner,
		logger:       logger,
		recorder:     recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		initial:      initialBackoff,
	}
	rp.newBackOff = rp.exponential
	return rp
}

func (r *retryingProvider) exponential() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.initial
	exp.MaxElapsedTime = 0
	return exp
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return withRetry(ctx, r, "fetch teams", func() ([]teams.Team, error) {
		return r.inner.FetchTeams(ctx)
	})
}

func (r *retryingProvider) FetchTeam(ctx context.Context, id int) (teams.Team, error) {
	return withRetry(ctx, r, "fetch team", func() (teams.Team, error) {
		return r.inner.FetchTeam(ctx, id)
	})
}

func (r *retryingProvider) FetchPlayers(ctx context.Context, q players.Query) (players.Page, error) {
	return withRetry(ctx, r, "fetch players", func() (players.Page, error) {
		return r.inner.FetchPlayers(ctx, q)
	})
}

func (r *retryingProvider) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	return withRetry(ctx, r, "fetch player", func() (players.Player, error) {
		return r.inner.FetchPlayer(ctx, id)
	})
}

// retryAfterBackOff prefers the upstream's Retry-After hint over the wrapped schedule.
type retryAfterBackOff struct {
	backoff.BackOff
	hint time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if b.hint > 0 {
		next, b.hint = b.hint, 0
	}
	return next
}

func withRetry[T any](ctx context.Context, r *retryingProvider, op string, fn func() (T, error)) (T, error) {
	if r.inner == nil {
		var zero T
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider unavailable")
		return zero, ErrProviderUnavailable
	}

	logger := logging.FromContext(ctx, r.logger)
	schedule := &retryAfterBackOff{BackOff: r.newBackOff()}
	policy := backoff.WithContext(backoff.WithMaxRetries(schedule, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	operation := func() (T, error) {
		attempt++
		start := time.Now()
		res, err := fn()
		r.recorder.RecordUpstreamCall(r.providerName, time.Since(start), err)
		if err == nil {
			return res, nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.providerName, rlErr.RetryAfter)
			schedule.hint = rlErr.RetryAfter
		}
		if !Retryable(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, logger, slog.LevelWarn, r.providerName, "provider "+op+" retry",
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("delay", delay),
			slog.Any("err", err),
		)
	}

	res, err := backoff.RetryNotifyWithData(operation, policy, notify)
	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, r.providerName, "provider "+op+" failed",
			slog.Int("attempts", attempt),
			slog.Any("err", err),
		)
	}
	return res, err
}
