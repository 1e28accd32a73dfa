package httpstream

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"strings"
)

// Auth errors, returned by Authenticator.Authenticate.
var (
	ErrAuthRequired      = errors.New("httpstream: authentication required")
	ErrAuthTokenMismatch = errors.New("httpstream: auth token mismatch")
)

// AuthConfig controls whether the streaming handler requires a bearer
// token.
type AuthConfig struct {
	Enabled bool
	Token   string
}

// Authenticator checks bearer tokens on incoming requests, adapted from
// hierachain-engine/api's connection-handshake Authenticator to an HTTP
// Authorization header instead of a handshake message.
type Authenticator struct {
	config AuthConfig
}

// NewAuthenticator builds an Authenticator from config.
func NewAuthenticator(config AuthConfig) *Authenticator {
	return &Authenticator{config: config}
}

// NewAuthenticatorFromEnv builds an Authenticator from
// IPCSTREAM_AUTH_ENABLED and IPCSTREAM_AUTH_TOKEN. If auth is enabled but
// no token is configured, a random token is generated and only known to
// this process.
func NewAuthenticatorFromEnv() *Authenticator {
	enabled := os.Getenv("IPCSTREAM_AUTH_ENABLED") == "true" || os.Getenv("IPCSTREAM_AUTH_ENABLED") == "1"
	token := os.Getenv("IPCSTREAM_AUTH_TOKEN")
	if enabled && token == "" {
		token = GenerateToken()
	}
	return NewAuthenticator(AuthConfig{Enabled: enabled, Token: token})
}

// GenerateToken returns a cryptographically random 256-bit hex token, or a
// fixed fallback string if the system random source fails.
func GenerateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "ipcstream-default-token-change-me"
	}
	return hex.EncodeToString(b)
}

// Authenticate checks r's Authorization header against the configured
// token using a constant-time comparison. Always succeeds when auth is
// disabled.
func (a *Authenticator) Authenticate(r *http.Request) error {
	if !a.config.Enabled {
		return nil
	}
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return ErrAuthRequired
	}
	if subtle.ConstantTimeCompare([]byte(a.config.Token), []byte(token)) != 1 {
		return ErrAuthTokenMismatch
	}
	return nil
}

// Middleware wraps next, rejecting unauthenticated requests with 401
// before next ever runs.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := a.Authenticate(r); err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
