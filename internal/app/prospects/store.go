package prospects

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"

	"nba-draft-hub/internal/auth"
	"nba-draft-hub/internal/backend"
	domainauth "nba-draft-hub/internal/domain/auth"
	"nba-draft-hub/internal/domain/prospects"
	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/metrics"
	"nba-draft-hub/internal/store"
)

// Defaults for a listing request.
const (
	DefaultSize   = 10
	DefaultSortBy = "id"
)

const (
	msgAuthError      = "Authentication error. Please try again."
	msgLoadFailed     = "Failed to load prospects. Please try again later."
	msgLoadOneFailed  = "Failed to load prospect"
	msgCreated        = "Prospect created successfully"
	msgCreateFailed   = "Failed to create prospect"
	msgCreateDenied   = "You don't have permission to create prospects"
	msgUpdated        = "Prospect updated successfully"
	msgUpdateFailed   = "Failed to update prospect"
	msgUpdateDenied   = "You don't have permission to update prospects"
	msgDeleted        = "Prospect deleted successfully"
	msgDeleteFailed   = "Failed to delete prospect"
	msgDeleteDenied   = "You don't have permission to delete prospects"
	msgInvalidRequest = "Invalid prospect"
)

var (
	// ErrUnauthenticated means a read was answered with HTTP 401.
	ErrUnauthenticated = errors.New("prospects: authentication failed")
	// ErrNotAuthorized means the local permission check failed; no request was sent.
	ErrNotAuthorized = errors.New("prospects: not authorized")
	// ErrInvalidProspect wraps validation failures of create/update input.
	ErrInvalidProspect = errors.New("prospects: invalid prospect")
)

// Backend is the subset of the backend client the store calls.
type Backend interface {
	ListProspects(ctx context.Context, token string, query prospects.Query) (prospects.Page, error)
	GetProspect(ctx context.Context, token string, id int64) (prospects.Prospect, error)
	CreateProspect(ctx context.Context, token string, p prospects.Prospect) error
	UpdateProspect(ctx context.Context, token string, id int64, p prospects.Prospect) error
	DeleteProspect(ctx context.Context, token string, id int64) error
}

// Session is the token holder the store ensures before each call.
type Session interface {
	IsValid() bool
	Token() string
	Role() domainauth.Role
	Clear()
	RequestVisitorToken(ctx context.Context) (string, error)
	RequestWriterToken(ctx context.Context) (string, error)
	RequestAdminToken(ctx context.Context) (string, error)
	CanCreate() bool
	CanUpdate() bool
	CanDelete() bool
}

// Result is the outcome of a write.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Forbidden is set when the write was refused for lack of permission,
	// either by the local guard or by the backend.
	Forbidden bool `json:"forbidden,omitempty"`
}

// PageState is the pagination of the current listing.
type PageState struct {
	CurrentPage int    `json:"currentPage"`
	Size        int    `json:"size"`
	TotalItems  int64  `json:"totalItems"`
	TotalPages  int    `json:"totalPages"`
	SortBy      string `json:"sortBy"`
	Direction   string `json:"direction"`
}

// Config wires a Store.
type Config struct {
	Backend  Backend
	Session  Session
	Logger   *slog.Logger
	Recorder *metrics.Recorder
}

// Store is the role-gated prospects client. Each call makes sure the session
// holds a token scoped for the operation, requesting one when it does not.
type Store struct {
	backend  Backend
	session  Session
	logger   *slog.Logger
	recorder *metrics.Recorder
	validate *validator.Validate
	items    *store.Cache[int64, prospects.Prospect]

	mu      sync.RWMutex
	page    PageState
	loading bool
	err     string
}

func NewStore(cfg Config) *Store {
	return &Store{
		backend:  cfg.Backend,
		session:  cfg.Session,
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
		validate: validator.New(),
		items:    store.NewCache(func(p prospects.Prospect) int64 { return p.ID }),
		page: PageState{
			Size:      DefaultSize,
			SortBy:    DefaultSortBy,
			Direction: prospects.DirectionAsc,
		},
	}
}

func normalizeQuery(q prospects.Query) prospects.Query {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = DefaultSize
	}
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.Direction != prospects.DirectionDesc {
		q.Direction = prospects.DirectionAsc
	}
	return q
}

// FetchProspects loads one page and remembers its pagination and sort.
func (s *Store) FetchProspects(ctx context.Context, q prospects.Query) (prospects.Page, error) {
	q = normalizeQuery(q)
	logger := logging.FromContext(ctx, s.logger)

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.ensureReader(ctx); err != nil {
		if s.handleUnauthorized(err) {
			s.setErr(msgAuthError)
			return prospects.Page{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		s.setErr(msgLoadFailed)
		logging.Error(logger, "token request for prospects failed", err)
		return prospects.Page{}, fmt.Errorf("fetch prospects: token: %w", err)
	}

	page, err := s.backend.ListProspects(ctx, s.session.Token(), q)
	if err != nil {
		if s.handleUnauthorized(err) {
			s.setErr(msgAuthError)
			return prospects.Page{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		s.setErr(msgLoadFailed)
		logging.Error(logger, "error fetching prospects", err, logging.FieldPage, q.Page)
		return prospects.Page{}, fmt.Errorf("fetch prospects: %w", err)
	}

	s.items.Replace(page.Players)
	s.mu.Lock()
	s.page = PageState{
		CurrentPage: page.CurrentPage,
		Size:        q.Size,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		SortBy:      q.SortBy,
		Direction:   q.Direction,
	}
	s.err = ""
	s.mu.Unlock()

	logging.Info(logger, "prospects fetched", logging.FieldCount, len(page.Players), logging.FieldPage, page.CurrentPage)
	return page, nil
}

// HasPrevious reports whether a page before the current one exists.
func (s *Store) HasPrevious() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page.CurrentPage > 0
}

// HasNext reports whether a page after the current one exists.
func (s *Store) HasNext() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page.CurrentPage < s.page.TotalPages-1
}

// GoToPage refetches page n with the remembered size and sort. Out of range
// pages are ignored.
func (s *Store) GoToPage(ctx context.Context, n int) error {
	s.mu.RLock()
	state := s.page
	s.mu.RUnlock()

	if n < 0 || n >= state.TotalPages {
		return nil
	}
	_, err := s.FetchProspects(ctx, prospects.Query{
		Page:      n,
		Size:      state.Size,
		SortBy:    state.SortBy,
		Direction: state.Direction,
	})
	return err
}

func (s *Store) NextPage(ctx context.Context) error {
	if !s.HasNext() {
		return nil
	}
	return s.GoToPage(ctx, s.Pagination().CurrentPage+1)
}

func (s *Store) PrevPage(ctx context.Context) error {
	if !s.HasPrevious() {
		return nil
	}
	return s.GoToPage(ctx, s.Pagination().CurrentPage-1)
}

// GetProspectByID fetches a single prospect with a visitor-or-better token.
func (s *Store) GetProspectByID(ctx context.Context, id int64) (prospects.Prospect, error) {
	if err := s.ensureReader(ctx); err != nil {
		if s.handleUnauthorized(err) {
			s.setErr(msgAuthError)
			return prospects.Prospect{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		s.setErr(msgLoadOneFailed)
		logging.Error(logging.FromContext(ctx, s.logger), "token request for prospect failed", err, logging.FieldProspectID, id)
		return prospects.Prospect{}, fmt.Errorf("get prospect %d: token: %w", id, err)
	}
	p, err := s.backend.GetProspect(ctx, s.session.Token(), id)
	if err != nil {
		if s.handleUnauthorized(err) {
			s.setErr(msgAuthError)
			return prospects.Prospect{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		s.setErr(msgLoadOneFailed)
		logging.Error(logging.FromContext(ctx, s.logger), "error fetching prospect", err, logging.FieldProspectID, id)
		return prospects.Prospect{}, fmt.Errorf("get prospect %d: %w", id, err)
	}
	return p, nil
}

// CreateProspect posts p with a WRITER token and refetches the current page.
func (s *Store) CreateProspect(ctx context.Context, p prospects.Prospect) (Result, error) {
	return s.write(ctx, writeOp{
		name:    "create",
		role:    domainauth.RoleWriter,
		allowed: s.session.CanCreate,
		input:   &p,
		call: func(token string) error {
			return s.backend.CreateProspect(ctx, token, p)
		},
		ok:     msgCreated,
		failed: msgCreateFailed,
		denied: msgCreateDenied,
		after:  s.refetch,
	})
}

// UpdateProspect replaces prospect id with a WRITER token and refetches the current page.
func (s *Store) UpdateProspect(ctx context.Context, id int64, p prospects.Prospect) (Result, error) {
	return s.write(ctx, writeOp{
		name:    "update",
		id:      id,
		role:    domainauth.RoleWriter,
		allowed: s.session.CanUpdate,
		input:   &p,
		call: func(token string) error {
			return s.backend.UpdateProspect(ctx, token, id, p)
		},
		ok:     msgUpdated,
		failed: msgUpdateFailed,
		denied: msgUpdateDenied,
		after:  s.refetch,
	})
}

// DeleteProspect removes prospect id with an ADMIN token. The item is
// dropped from the current page without a refetch.
func (s *Store) DeleteProspect(ctx context.Context, id int64) (Result, error) {
	return s.write(ctx, writeOp{
		name:    "delete",
		id:      id,
		role:    domainauth.RoleAdmin,
		allowed: s.session.CanDelete,
		call: func(token string) error {
			return s.backend.DeleteProspect(ctx, token, id)
		},
		ok:     msgDeleted,
		failed: msgDeleteFailed,
		denied: msgDeleteDenied,
		after: func(context.Context) {
			if s.items.Remove(id) {
				s.mu.Lock()
				if s.page.TotalItems > 0 {
					s.page.TotalItems--
				}
				s.mu.Unlock()
			}
		},
	})
}

type writeOp struct {
	name    string
	id      int64
	role    domainauth.Role
	allowed func() bool
	input   *prospects.Prospect
	call    func(token string) error
	after   func(ctx context.Context)

	ok, failed, denied string
}

func (s *Store) write(ctx context.Context, op writeOp) (Result, error) {
	logger := logging.FromContext(ctx, s.logger)

	if op.input != nil {
		if err := s.validate.Struct(op.input); err != nil {
			return Result{Message: msgInvalidRequest}, fmt.Errorf("%w: %v", ErrInvalidProspect, err)
		}
	}

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.ensureRole(ctx, op.role); err != nil {
		logging.Error(logger, "token request for prospect "+op.name+" failed", err, logging.FieldRole, string(op.role))
		s.handleUnauthorized(err)
		return Result{Message: op.failed}, nil
	}
	if !op.allowed() {
		s.recorder.RecordAuthFailure(metrics.AuthGuard)
		logging.Warn(logger, "prospect "+op.name+" blocked by local permission check",
			logging.FieldRole, string(s.session.Role()))
		return Result{Message: op.denied, Forbidden: true}, ErrNotAuthorized
	}

	if err := op.call(s.session.Token()); err != nil {
		logging.Error(logger, "error during prospect "+op.name, err, logging.FieldProspectID, op.id)
		if s.handleUnauthorized(err) {
			return Result{Message: op.failed}, nil
		}
		if isStatus(err, http.StatusForbidden) {
			s.recorder.RecordAuthFailure(metrics.AuthForbidden)
			return Result{Message: op.denied, Forbidden: true}, nil
		}
		return Result{Message: op.failed}, nil
	}

	if op.after != nil {
		op.after(ctx)
	}
	logging.Info(logger, "prospect "+op.name+" succeeded", logging.FieldProspectID, op.id)
	return Result{Success: true, Message: op.ok}, nil
}

func (s *Store) refetch(ctx context.Context) {
	state := s.Pagination()
	if _, err := s.FetchProspects(ctx, prospects.Query{
		Page:      state.CurrentPage,
		Size:      state.Size,
		SortBy:    state.SortBy,
		Direction: state.Direction,
	}); err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "refetch after write failed", "error", err)
	}
}

// ensureReader keeps any valid token, otherwise asks for a VISITOR one.
func (s *Store) ensureReader(ctx context.Context) error {
	if s.session.IsValid() {
		return nil
	}
	return tolerateDecode(s.session.RequestVisitorToken(ctx))
}

// ensureRole requests a token for role unless the session already holds a
// valid one with exactly that role.
func (s *Store) ensureRole(ctx context.Context, role domainauth.Role) error {
	if s.session.IsValid() && s.session.Role() == role {
		return nil
	}
	switch role {
	case domainauth.RoleAdmin:
		return tolerateDecode(s.session.RequestAdminToken(ctx))
	default:
		return tolerateDecode(s.session.RequestWriterToken(ctx))
	}
}

// handleUnauthorized clears the session when the backend rejected the token.
func (s *Store) handleUnauthorized(err error) bool {
	if !isStatus(err, http.StatusUnauthorized) {
		return false
	}
	s.recorder.RecordAuthFailure(metrics.AuthUnauthenticated)
	s.session.Clear()
	return true
}

// Prospects returns the current page of prospects.
func (s *Store) Prospects() []prospects.Prospect {
	return s.items.List()
}

func (s *Store) Pagination() PageState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last read failure message, or "" after a successful listing.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) setErr(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}

// tolerateDecode lets an undecodable token through: the permission check
// that follows fails on its empty role instead.
func tolerateDecode(_ string, err error) error {
	if errors.Is(err, auth.ErrTokenDecode) {
		return nil
	}
	return err
}

func isStatus(err error, status int) bool {
	return backend.IsStatus(err, status)
}
