// Package poller keeps slow-changing reference data warm by refreshing it on
// an interval, and reports whether the last refreshes succeeded.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/metrics"
)

const defaultInterval = time.Hour

// RefreshFunc reloads one dataset and reports how many items it holds.
type RefreshFunc func(ctx context.Context) (int, error)

// Poller runs a RefreshFunc once at start and then on every tick.
type Poller struct {
	name     string
	refresh  RefreshFunc
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
	Count               int       `json:"count"`
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(name string, refresh RefreshFunc, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		name:     name,
		refresh:  refresh,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		logging.Info(p.logger, "poller started", logging.FieldDataset, p.name, logging.FieldDurationMS, p.interval.Milliseconds())
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped", logging.FieldDataset, p.name)
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped", logging.FieldDataset, p.name)
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)
	if p.refresh == nil {
		return
	}

	count, err := p.refresh(ctx)
	p.metrics.RecordPollerCycle(p.name, time.Since(start), err)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err, logging.FieldDataset, p.name, logging.FieldDurationMS, elapsed)
		p.recordFailure(err, start)
		return
	}

	p.recordSuccess(start, count)
	logging.Info(p.logger, "poller refreshed",
		logging.FieldDataset, p.name,
		logging.FieldCount, count,
		logging.FieldDurationMS, elapsed,
	)
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, count int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.Count = count
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
