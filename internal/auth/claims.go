package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	domainauth "nba-draft-hub/internal/domain/auth"
)

// ErrTokenDecode is returned when a token payload cannot be read.
var ErrTokenDecode = errors.New("auth: token payload could not be decoded")

// UntrustedClaims are read from the token payload without checking the
// signature. They only drive local UI-level decisions (which token to ask
// for, whether to attempt a call); the backend enforces access on its own.
type UntrustedClaims struct {
	Role        domainauth.Role
	Permissions []domainauth.Permission
	// ExpiresAt is zero when the token carries no exp claim.
	ExpiresAt time.Time
}

type tokenClaims struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// DecodeUntrustedClaims is the only place token contents are read. Only the
// second dot-separated segment is looked at: the header and signature are
// neither parsed nor verified, so a verifying implementation can replace
// this without touching callers.
func DecodeUntrustedClaims(token string) (UntrustedClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return UntrustedClaims{}, fmt.Errorf("%w: expected at least 2 segments, got %d", ErrTokenDecode, len(parts))
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return UntrustedClaims{}, fmt.Errorf("%w: payload: %v", ErrTokenDecode, err)
	}
	var claims tokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return UntrustedClaims{}, fmt.Errorf("%w: payload: %v", ErrTokenDecode, err)
	}

	out := UntrustedClaims{
		Role:        domainauth.Role(claims.Role),
		Permissions: make([]domainauth.Permission, 0, len(claims.Permissions)),
	}
	for _, p := range claims.Permissions {
		out.Permissions = append(out.Permissions, domainauth.Permission(p))
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// Expired reports whether the claims are past their expiry at now.
// Claims without an expiry never expire.
func (c UntrustedClaims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(c.ExpiresAt)
}
