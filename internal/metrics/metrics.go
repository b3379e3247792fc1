package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder keeps in-memory counters for upstream calls and auth events and
// mirrors them to OpenTelemetry instruments when Setup configured them.
type Recorder struct {
	mu           sync.Mutex
	stats        map[string]*upstreamStats
	tokens       map[string]int
	authFailures map[string]int
	pollers      map[string]*pollerStats
	otel         *otelInstruments
}

type pollerStats struct {
	cycles int
	errors int
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:        make(map[string]*upstreamStats),
		tokens:       make(map[string]int),
		authFailures: make(map[string]int),
		pollers:      make(map[string]*pollerStats),
		otel:         otel,
	}
}

// RecordUpstreamCall counts one call to an upstream (balldontlie, backend) and keeps its latency.
func (r *Recorder) RecordUpstreamCall(upstream string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(upstream)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(upstream, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(upstream string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(upstream)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(upstream, retryAfter)
	}
}

// RecordTokenIssued counts tokens obtained from the backend per requested role.
func (r *Recorder) RecordTokenIssued(role string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.tokens[role]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordToken(role)
	}
}

// RecordAuthFailure counts authentication/authorization failures by kind
// (AuthUnauthenticated, AuthForbidden, AuthGuard).
func (r *Recorder) RecordAuthFailure(kind string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.authFailures[kind]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAuthFailure(kind)
	}
}

// RecordPollerCycle tracks one background refresh of dataset and whether it failed.
func (r *Recorder) RecordPollerCycle(dataset string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats, ok := r.pollers[dataset]
	if !ok {
		stats = &pollerStats{}
		r.pollers[dataset] = stats
	}
	stats.cycles++
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPoller(dataset, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a point-in-time copy of one upstream's counters.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(upstream string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[upstream]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// UpstreamCalls returns the total attempts recorded for an upstream.
func (r *Recorder) UpstreamCalls(upstream string) int {
	return r.Snapshot(upstream).Calls
}

// UpstreamErrors returns the total failed attempts recorded for an upstream.
func (r *Recorder) UpstreamErrors(upstream string) int {
	return r.Snapshot(upstream).Errors
}

// RateLimitHits returns the number of rate limit events seen for an upstream.
func (r *Recorder) RateLimitHits(upstream string) int {
	return r.Snapshot(upstream).RateLimitHits
}

// TokensIssued returns how many tokens were obtained for role.
func (r *Recorder) TokensIssued(role string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tokens[role]
}

// AuthFailures returns the count recorded for kind.
func (r *Recorder) AuthFailures(kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.authFailures[kind]
}

// PollerCycles returns the refreshes recorded for dataset, failed or not.
func (r *Recorder) PollerCycles(dataset string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats := r.pollers[dataset]; stats != nil {
		return stats.cycles
	}
	return 0
}

// PollerErrors returns the failed refreshes recorded for dataset.
func (r *Recorder) PollerErrors(dataset string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats := r.pollers[dataset]; stats != nil {
		return stats.errors
	}
	return 0
}

func (r *Recorder) ensureStatsLocked(upstream string) *upstreamStats {
	stats, ok := r.stats[upstream]
	if !ok {
		stats = &upstreamStats{}
		r.stats[upstream] = stats
	}
	return stats
}
