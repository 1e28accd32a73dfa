package httpstream

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthenticatorDisabledAllowsAll(t *testing.T) {
	a := NewAuthenticator(AuthConfig{Enabled: false})
	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	if err := a.Authenticate(req); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
}

func TestAuthenticatorRejectsMissingToken(t *testing.T) {
	a := NewAuthenticator(AuthConfig{Enabled: true, Token: "secret"})
	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	if err := a.Authenticate(req); err != ErrAuthRequired {
		t.Fatalf("Authenticate = %v, want ErrAuthRequired", err)
	}
}

func TestAuthenticatorRejectsWrongToken(t *testing.T) {
	a := NewAuthenticator(AuthConfig{Enabled: true, Token: "secret"})
	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	if err := a.Authenticate(req); err != ErrAuthTokenMismatch {
		t.Fatalf("Authenticate = %v, want ErrAuthTokenMismatch", err)
	}
}

func TestAuthenticatorAcceptsCorrectToken(t *testing.T) {
	a := NewAuthenticator(AuthConfig{Enabled: true, Token: "secret"})
	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	req.Header.Set("Authorization", "Bearer secret")
	if err := a.Authenticate(req); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
}

func TestMiddlewareRejectsWithoutToken(t *testing.T) {
	a := NewAuthenticator(AuthConfig{Enabled: true, Token: "secret"})
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	rr := httptest.NewRecorder()
	a.Middleware(next).ServeHTTP(rr, req)

	if called {
		t.Fatal("next handler should not run without a valid token")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}
