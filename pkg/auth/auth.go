// Package auth implements the single shared-secret bearer check. There are
// no sessions: the expected token is re-derived from the configured admin
// password on every request.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
)

// Token derives the bearer token for a password: the first 32 hex characters
// of its SHA-256 digest.
func Token(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])[:32]
}

// Login returns the derived token when the supplied password equals the
// configured admin password. The boolean reports acceptance.
func Login(password, adminPassword string) (string, bool) {
	if password == "" || password != adminPassword {
		return "", false
	}
	return Token(password), true
}

// Verify reports whether the bearer token matches the token derived from the
// configured admin password.
func Verify(token, adminPassword string) bool {
	if token == "" {
		return false
	}
	expected := Token(adminPassword)
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}

// BearerToken extracts the bearer token from the Authorization header, or ""
// when the header is missing or malformed. Missing, malformed and wrong
// tokens are deliberately indistinguishable to callers.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// VerifyRequest reports whether the request carries a valid admin bearer.
func VerifyRequest(r *http.Request, adminPassword string) bool {
	return Verify(BearerToken(r), adminPassword)
}
