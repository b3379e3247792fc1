package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"nba-draft-hub/internal/metrics"
	"nba-draft-hub/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogs(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(logger, rec, next)
	rr := testutil.Serve(handler, http.MethodGet, "/teams", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if !strings.Contains(buf.String(), "request complete") || !strings.Contains(buf.String(), "status_code=418") {
		t.Fatalf("expected completion log with status, got %s", buf.String())
	}
	if got := rec.UpstreamCalls("http"); got != 0 {
		t.Fatalf("expected upstream metrics untouched, got %d", got)
	}
}

func TestLoggingMiddlewareKeepsValidIncomingRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	req.Header.Set(HeaderRequestID, "client-id_1")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	if seen != "client-id_1" {
		t.Fatalf("expected incoming id in context, got %q", seen)
	}
	if got := rr.Header().Get(HeaderRequestID); got != "client-id_1" {
		t.Fatalf("expected incoming id echoed, got %q", got)
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenInvalid(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/players?search=x", nil)
	req.Header.Set(HeaderRequestID, "not valid!")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get(HeaderRequestID); got == "" || got == "not valid!" {
		t.Fatalf("expected generated X-Request-ID, got %q", got)
	}
}

func TestLoggingMiddlewareNilLoggerUsesDefault(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	rr := testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusNoContent)
}

func TestMiddlewareWithChiRecordsRoutePattern(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec, scrapeMetrics := testutil.NewScrapedRecorder(t)

	r := chi.NewRouter()
	r.Use(Middleware(logger, rec))
	r.Get("/players/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	testutil.AssertStatus(t, testutil.Serve(r, http.MethodGet, "/players/42", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(r, http.MethodGet, "/nowhere", nil), http.StatusNotFound)

	scrape := scrapeMetrics()
	if !strings.Contains(scrape, `path="/players/{id}"`) {
		t.Fatalf("expected route pattern label, got %s", scrape)
	}
	if strings.Contains(scrape, `path="/players/42"`) {
		t.Fatalf("expected raw path not to be used as a label")
	}
	if !strings.Contains(scrape, `path="unmatched"`) {
		t.Fatalf("expected unmatched label for 404s")
	}
}

func TestResponseWriterCapturesStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}
	if w.status != 0 {
		t.Fatalf("expected zero status before write, got %d", w.status)
	}
	w.WriteHeader(http.StatusAccepted)
	if w.status != http.StatusAccepted || rr.Code != http.StatusAccepted {
		t.Fatalf("expected status set to 202, got %d", w.status)
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %s", got)
	}
	req := httptest.NewRequest(http.MethodGet, "/teams/1", nil)
	if got := normalizePath(req); got != unmatchedRoute {
		t.Fatalf("expected unmatched without chi context, got %s", got)
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}
	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := LoggingMiddleware(logger, rec, next)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/teams", nil)
		handler.ServeHTTP(rr, req)
	}
}
