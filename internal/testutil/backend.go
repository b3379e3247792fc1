package testutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"

	"nba-draft-hub/internal/domain/prospects"
)

// RecordedRequest is one call observed by FakeBackend.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
}

// FakeBackend is an in-process stand-in for the token + prospects REST backend.
// It verifies bearer tokens and enforces permissions per HTTP method the way
// the real backend does.
type FakeBackend struct {
	URL string

	mu          sync.Mutex
	prospects   map[int64]prospects.Prospect
	nextID      int64
	requests    []RecordedRequest
	failures    map[string]int
	forceRole   string
	forcedPerms []string
	ttl         time.Duration
	now         func() time.Time
}

type backendClaims struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// NewFakeBackend starts the fake on an httptest server closed with the test.
func NewFakeBackend(t testing.TB) *FakeBackend {
	t.Helper()
	fb := &FakeBackend{
		prospects: make(map[int64]prospects.Prospect),
		nextID:    1,
		failures:  make(map[string]int),
		ttl:       time.Minute,
		now:       time.Now,
	}

	r := chi.NewRouter()
	r.Use(fb.record)
	r.Get("/token", fb.issueFromQuery)
	r.Post("/token", fb.issueFromBody)
	r.Route("/prospects", func(r chi.Router) {
		r.Use(fb.authorize)
		r.Get("/", fb.list)
		r.Post("/", fb.create)
		r.Get("/{id}", fb.get)
		r.Put("/{id}", fb.update)
		r.Delete("/{id}", fb.remove)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	fb.URL = srv.URL
	return fb
}

// ForceRole makes every issued token carry role and its default permissions,
// regardless of what was requested. Empty restores echo behavior.
func (fb *FakeBackend) ForceRole(role string, permissions ...string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.forceRole = role
	fb.forcedPerms = permissions
}

// FailMethod answers every request with method (except /token) using status until cleared with 0.
func (fb *FakeBackend) FailMethod(method string, status int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.failures[method] = status
}

// SetTokenTTL changes the exp of subsequently issued tokens.
func (fb *FakeBackend) SetTokenTTL(ttl time.Duration) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.ttl = ttl
}

// Seed inserts n prospects named Prospect1..n.
func (fb *FakeBackend) Seed(n int) {
	for i := 0; i < n; i++ {
		fb.Add(prospects.Prospect{
			FirstName: "Prospect" + strconv.Itoa(int(fb.peekID())),
			LastName:  "Test",
			Position:  "G",
		})
	}
}

// Add stores p and returns its assigned id.
func (fb *FakeBackend) Add(p prospects.Prospect) int64 {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	p.ID = fb.nextID
	fb.nextID++
	fb.prospects[p.ID] = p
	return p.ID
}

// Prospect returns the stored prospect with id.
func (fb *FakeBackend) Prospect(id int64) (prospects.Prospect, bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	p, ok := fb.prospects[id]
	return p, ok
}

// Count returns how many requests matched method and path prefix.
func (fb *FakeBackend) Count(method, pathPrefix string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	n := 0
	for _, r := range fb.requests {
		if r.Method == method && strings.HasPrefix(r.Path, pathPrefix) {
			n++
		}
	}
	return n
}

// Requests returns a copy of every recorded request.
func (fb *FakeBackend) Requests() []RecordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]RecordedRequest(nil), fb.requests...)
}

func (fb *FakeBackend) peekID() int64 {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.nextID
}

func (fb *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.requests = append(fb.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
		})
		status := fb.failures[r.Method]
		fb.mu.Unlock()

		if status != 0 && !strings.HasPrefix(r.URL.Path, "/token") {
			writeFakeJSON(w, status, map[string]string{"error": http.StatusText(status)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (fb *FakeBackend) issueFromQuery(w http.ResponseWriter, r *http.Request) {
	fb.issue(w, r.URL.Query().Get("role"), r.URL.Query()["permissions"])
}

func (fb *FakeBackend) issueFromBody(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFakeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad body"})
		return
	}
	fb.issue(w, req.Role, req.Permissions)
}

func (fb *FakeBackend) issue(w http.ResponseWriter, role string, perms []string) {
	fb.mu.Lock()
	if fb.forceRole != "" {
		role = fb.forceRole
		perms = fb.forcedPerms
	}
	now := fb.now()
	ttl := fb.ttl
	fb.mu.Unlock()

	if role == "" {
		role = "VISITOR"
	}
	if len(perms) == 0 {
		perms = []string{"READ"}
	}
	token, err := signToken(TokenSpec{Role: role, Permissions: perms, IssuedAt: now, ExpiresAt: now.Add(ttl)})
	if err != nil {
		writeFakeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeFakeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (fb *FakeBackend) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeFakeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Missing token"})
			return
		}
		var claims backendClaims
		_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), &claims, func(tok *jwt.Token) (any, error) {
			if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(SigningKey), nil
		})
		if err != nil {
			writeFakeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			return
		}
		if !methodAllowed(r.Method, claims.Role, claims.Permissions) {
			writeFakeJSON(w, http.StatusForbidden, map[string]string{"error": "Insufficient permissions"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func methodAllowed(method, role string, perms []string) bool {
	if role == "ADMIN" {
		return true
	}
	need := map[string]string{
		http.MethodGet:    "READ",
		http.MethodPost:   "CREATE",
		http.MethodPut:    "UPDATE",
		http.MethodPatch:  "UPDATE",
		http.MethodDelete: "DELETE",
	}[method]
	for _, p := range perms {
		if p == need {
			return true
		}
	}
	return false
}

func (fb *FakeBackend) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, err := strconv.Atoi(q.Get("size"))
	if err != nil || size <= 0 {
		size = 10
	}
	sortBy := q.Get("sortBy")
	desc := strings.EqualFold(q.Get("direction"), "desc")

	fb.mu.Lock()
	all := make([]prospects.Prospect, 0, len(fb.prospects))
	for _, p := range fb.prospects {
		all = append(all, p)
	}
	fb.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "lastName":
			less = all[i].LastName < all[j].LastName
		case "firstName":
			less = all[i].FirstName < all[j].FirstName
		default:
			less = all[i].ID < all[j].ID
		}
		if desc {
			return !less
		}
		return less
	})

	totalPages := (len(all) + size - 1) / size
	start := page * size
	if start > len(all) {
		start = len(all)
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	writeFakeJSON(w, http.StatusOK, prospects.Page{
		Players:     all[start:end],
		CurrentPage: page,
		TotalItems:  int64(len(all)),
		TotalPages:  totalPages,
	})
}

func (fb *FakeBackend) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	p, found := fb.Prospect(id)
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeFakeJSON(w, http.StatusOK, p)
}

func (fb *FakeBackend) create(w http.ResponseWriter, r *http.Request) {
	var p prospects.Prospect
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	fb.Add(p)
	_, _ = w.Write([]byte("Player created successfully"))
}

func (fb *FakeBackend) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var p prospects.Prospect
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if _, found := fb.prospects[id]; !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	p.ID = id
	fb.prospects[id] = p
	_, _ = w.Write([]byte("Player updated successfully"))
}

func (fb *FakeBackend) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	fb.mu.Lock()
	delete(fb.prospects, id)
	fb.mu.Unlock()
	_, _ = w.Write([]byte("Player deleted successfully"))
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func writeFakeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
