package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SigningKey signs every token minted in tests.
const SigningKey = "test-signing-key"

// TokenSpec describes the claims of a minted token. A zero ExpiresAt omits exp.
type TokenSpec struct {
	Role        string
	Permissions []string
	ExpiresAt   time.Time
	IssuedAt    time.Time
}

// MintToken returns an HS512-signed token shaped like the backend's.
func MintToken(t testing.TB, spec TokenSpec) string {
	t.Helper()
	token, err := signToken(spec)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func signToken(spec TokenSpec) (string, error) {
	claims := jwt.MapClaims{
		"role":        spec.Role,
		"permissions": spec.Permissions,
	}
	if !spec.IssuedAt.IsZero() {
		claims["iat"] = spec.IssuedAt.Unix()
	}
	if !spec.ExpiresAt.IsZero() {
		claims["exp"] = spec.ExpiresAt.Unix()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(SigningKey))
}
