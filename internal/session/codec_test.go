package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	codec, err := NewCodec("test-secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	token, err := codec.Issue("user-1", "user@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	principal, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if principal.Sub != "user-1" {
		t.Fatalf("expected sub user-1, got %q", principal.Sub)
	}
	if principal.Email != "user@example.com" {
		t.Fatalf("expected email, got %q", principal.Email)
	}

	ttl := principal.ExpiresAt.Sub(principal.IssuedAt)
	if ttl != TTL {
		t.Fatalf("expected ttl %v, got %v", TTL, ttl)
	}
}

func TestVerifyEmptyToken(t *testing.T) {
	codec, _ := NewCodec("test-secret")
	if _, err := codec.Verify(""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	codec, _ := NewCodec("test-secret")

	past := time.Now().UTC().Add(-time.Hour)
	cl := jwt.RegisteredClaims{
		Subject:   "user-1",
		IssuedAt:  jwt.NewNumericDate(past.Add(-TTL)),
		ExpiresAt: jwt.NewNumericDate(past),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Verify(token); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, _ := NewCodec("secret-a")
	verifier, _ := NewCodec("secret-b")

	token, err := issuer.Issue("user-1", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	codec, _ := NewCodec("test-secret")
	if _, err := codec.Verify("not-a-jwt"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestNewCodecRequiresSecret(t *testing.T) {
	if _, err := NewCodec(""); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestSetCookieAttributes(t *testing.T) {
	w := httptest.NewRecorder()
	SetCookie(w, "token-value", CookieSettings{Secure: true, SameSite: http.SameSiteNoneMode})

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName {
		t.Fatalf("expected cookie %q, got %q", CookieName, c.Name)
	}
	if c.Value != "token-value" {
		t.Fatalf("unexpected cookie value %q", c.Value)
	}
	if !c.HttpOnly {
		t.Fatalf("expected HttpOnly")
	}
	if !c.Secure {
		t.Fatalf("expected Secure")
	}
	if c.MaxAge != int(TTL.Seconds()) {
		t.Fatalf("expected max-age %d, got %d", int(TTL.Seconds()), c.MaxAge)
	}
	if c.Path != "/" {
		t.Fatalf("expected path /, got %q", c.Path)
	}
}

func TestClearCookie(t *testing.T) {
	w := httptest.NewRecorder()
	ClearCookie(w, CookieSettings{})

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Fatalf("expected max-age -1, got %d", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Fatalf("expected empty value, got %q", cookies[0].Value)
	}
}
