package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainauth "nba-draft-hub/internal/domain/auth"
	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/metrics"
	"nba-draft-hub/internal/storage"
)

// Storage keys shared with the browser application.
const (
	KeyToken       = "auth_token"
	KeyRole        = "auth_role"
	KeyPermissions = "auth_permissions"
)

// TokenIssuer obtains a bearer token for a role and permission set.
type TokenIssuer interface {
	IssueToken(ctx context.Context, role domainauth.Role, permissions []domainauth.Permission) (string, error)
}

// Config wires a Session.
type Config struct {
	Issuer   TokenIssuer
	Store    storage.Store
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	Now      func() time.Time
}

// Session holds the current bearer token and its decoded role/permissions.
// It never attaches the token to outgoing requests itself; callers read
// Token() and pass it explicitly.
type Session struct {
	mu          sync.RWMutex
	issuer      TokenIssuer
	store       storage.Store
	logger      *slog.Logger
	recorder    *metrics.Recorder
	now         func() time.Time
	token       string
	role        domainauth.Role
	permissions []domainauth.Permission
}

// State is a read-only view of the session for display.
type State struct {
	HasToken    bool                    `json:"hasToken"`
	Role        domainauth.Role         `json:"role,omitempty"`
	Permissions []domainauth.Permission `json:"permissions"`
	ExpiresAt   *time.Time              `json:"expiresAt,omitempty"`
}

// NewSession builds a session and restores any persisted token.
func NewSession(cfg Config) *Session {
	s := &Session{
		issuer:      cfg.Issuer,
		store:       cfg.Store,
		logger:      cfg.Logger,
		recorder:    cfg.Recorder,
		now:         cfg.Now,
		permissions: []domainauth.Permission{},
	}
	if s.store == nil {
		s.store = storage.NewMemoryStore()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.restore()
	return s
}

func (s *Session) restore() {
	if token, err := s.store.Get(KeyToken); err == nil {
		s.token = token
	}
	if role, err := s.store.Get(KeyRole); err == nil {
		s.role = domainauth.Role(role)
	}
	var perms []domainauth.Permission
	if ok, err := storage.GetJSON(s.store, KeyPermissions, &perms); err != nil {
		logging.Warn(s.logger, "discarding unreadable persisted permissions", "error", err)
	} else if ok && perms != nil {
		s.permissions = perms
	}
}

// RequestToken asks the backend for a token and stores it. When the payload
// cannot be decoded the token is kept, role and permissions are left unset
// and ErrTokenDecode is returned.
func (s *Session) RequestToken(ctx context.Context, role domainauth.Role, permissions []domainauth.Permission) (string, error) {
	if s.issuer == nil {
		return "", errors.New("auth: no token issuer configured")
	}
	token, err := s.issuer.IssueToken(ctx, role, permissions)
	if err != nil {
		logging.Error(s.logger, "token request failed", err, logging.FieldRole, string(role))
		return "", err
	}
	s.recorder.RecordTokenIssued(string(role))

	if err := s.setToken(token); err != nil {
		return token, err
	}
	logging.Info(s.logger, "token acquired", logging.FieldRole, string(role))
	return token, nil
}

// RequestAdminToken requests ADMIN with all four permissions.
func (s *Session) RequestAdminToken(ctx context.Context) (string, error) {
	return s.RequestToken(ctx, domainauth.RoleAdmin, domainauth.PermissionsFor(domainauth.RoleAdmin))
}

// RequestWriterToken requests WRITER with READ, CREATE and UPDATE.
func (s *Session) RequestWriterToken(ctx context.Context) (string, error) {
	return s.RequestToken(ctx, domainauth.RoleWriter, domainauth.PermissionsFor(domainauth.RoleWriter))
}

// RequestVisitorToken requests VISITOR with READ.
func (s *Session) RequestVisitorToken(ctx context.Context) (string, error) {
	return s.RequestToken(ctx, domainauth.RoleVisitor, domainauth.PermissionsFor(domainauth.RoleVisitor))
}

func (s *Session) setToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.persist(KeyToken, token)

	claims, err := DecodeUntrustedClaims(token)
	if err != nil {
		logging.Warn(s.logger, "token payload unreadable; role and permissions left unset", "error", err)
		s.role = ""
		s.permissions = []domainauth.Permission{}
		s.forget(KeyRole)
		s.forget(KeyPermissions)
		return err
	}

	s.role = claims.Role
	s.permissions = claims.Permissions
	s.persist(KeyRole, string(claims.Role))
	if err := storage.SetJSON(s.store, KeyPermissions, claims.Permissions); err != nil {
		logging.Warn(s.logger, "failed to persist permissions", "error", err)
	}
	return nil
}

// IsValid reports whether a token is held and not yet expired. Expired or
// unreadable tokens are cleared.
func (s *Session) IsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return false
	}
	claims, err := DecodeUntrustedClaims(s.token)
	if err != nil {
		logging.Warn(s.logger, "clearing unreadable token", "error", err)
		s.clearLocked()
		return false
	}
	if claims.Expired(s.now()) {
		logging.Info(s.logger, "clearing expired token", logging.FieldRole, string(s.role))
		s.clearLocked()
		return false
	}
	return true
}

// Clear drops the token, role and permissions from memory and storage.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Session) clearLocked() {
	s.token = ""
	s.role = ""
	s.permissions = []domainauth.Permission{}
	s.forget(KeyToken)
	s.forget(KeyRole)
	s.forget(KeyPermissions)
}

// Token returns the raw bearer token, empty when none is held.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Role returns the decoded role, empty when unknown.
func (s *Session) Role() domainauth.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// Permissions returns a copy of the decoded permissions.
func (s *Session) Permissions() []domainauth.Permission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domainauth.Permission, len(s.permissions))
	copy(out, s.permissions)
	return out
}

func (s *Session) CanRead() bool   { return s.can(domainauth.PermRead) }
func (s *Session) CanCreate() bool { return s.can(domainauth.PermCreate) }
func (s *Session) CanUpdate() bool { return s.can(domainauth.PermUpdate) }
func (s *Session) CanDelete() bool { return s.can(domainauth.PermDelete) }

func (s *Session) can(p domainauth.Permission) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domainauth.Allows(s.role, s.permissions, p)
}

// Snapshot returns the current state without validating expiry.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := State{
		HasToken:    s.token != "",
		Role:        s.role,
		Permissions: append([]domainauth.Permission{}, s.permissions...),
	}
	if s.token != "" {
		if claims, err := DecodeUntrustedClaims(s.token); err == nil && !claims.ExpiresAt.IsZero() {
			exp := claims.ExpiresAt
			st.ExpiresAt = &exp
		}
	}
	return st
}

func (s *Session) persist(key, value string) {
	if err := s.store.Set(key, value); err != nil {
		logging.Warn(s.logger, "failed to persist session value", "key", key, "error", err)
	}
}

func (s *Session) forget(key string) {
	if err := s.store.Delete(key); err != nil {
		logging.Warn(s.logger, "failed to remove session value", "key", key, "error", err)
	}
}
