package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksUpstreamCallsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamCall("balldontlie", 10*time.Millisecond, nil)
	rec.RecordUpstreamCall("balldontlie", 15*time.Millisecond, errors.New("boom"))

	if got := rec.UpstreamCalls("balldontlie"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.UpstreamErrors("balldontlie"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("balldontlie")
	if snap.Calls != 2 || snap.Errors != 1 || snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if other := rec.Snapshot("backend"); other != (Snapshot{}) {
		t.Fatalf("expected empty snapshot for unseen upstream, got %+v", other)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("balldontlie", 5*time.Second)
	rec.RecordRateLimit("balldontlie", 0)

	if got := rec.RateLimitHits("balldontlie"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.Snapshot("balldontlie").LastRetryAfter; got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksAuthEvents(t *testing.T) {
	rec := NewRecorder()
	rec.RecordTokenIssued("ADMIN")
	rec.RecordTokenIssued("ADMIN")
	rec.RecordTokenIssued("VISITOR")
	rec.RecordAuthFailure(AuthGuard)

	if got := rec.TokensIssued("ADMIN"); got != 2 {
		t.Fatalf("expected 2 admin tokens, got %d", got)
	}
	if got := rec.TokensIssued("WRITER"); got != 0 {
		t.Fatalf("expected no writer tokens, got %d", got)
	}
	if got := rec.AuthFailures(AuthGuard); got != 1 {
		t.Fatalf("expected 1 guard failure, got %d", got)
	}
}

func TestRecorderTracksPollerCycles(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPollerCycle("teams", 20*time.Millisecond, nil)
	rec.RecordPollerCycle("teams", 5*time.Millisecond, errors.New("upstream down"))

	if got := rec.PollerCycles("teams"); got != 2 {
		t.Fatalf("expected 2 cycles, got %d", got)
	}
	if got := rec.PollerErrors("teams"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if rec.PollerCycles("players") != 0 || rec.PollerErrors("players") != 0 {
		t.Fatal("expected datasets to be tracked separately")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamCall("x", time.Millisecond, nil)
	rec.RecordRateLimit("x", time.Second)
	rec.RecordTokenIssued("ADMIN")
	rec.RecordAuthFailure(AuthForbidden)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	rec.RecordPollerCycle("teams", time.Millisecond, nil)

	if rec.PollerCycles("teams") != 0 || rec.UpstreamCalls("x") != 0 || rec.TokensIssued("ADMIN") != 0 || rec.AuthFailures(AuthForbidden) != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}
