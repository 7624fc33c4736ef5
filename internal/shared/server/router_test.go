package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/extract/pdftest"
	"resume-matcher/internal/session"
	"resume-matcher/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:           "8000",
		Env:            "dev",
		JWTSecret:      "router-test-secret",
		CookieSameSite: http.SameSiteLaxMode,
	}
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r, err := NewRouter(testConfig())
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return r
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func sessionCookie(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()

	payload := `{"session": {"user": {"id": "user-1", "email": "u@example.com"}}}`
	req := httptest.NewRequest(http.MethodPost, "/set-cookie", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp := do(r, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("set-cookie: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	for _, c := range resp.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatalf("expected %s cookie in response", session.CookieName)
	return nil
}

func TestRootEndpoint(t *testing.T) {
	r := setupRouter(t)

	resp := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Message string `json:"message"`
		Version string `json:"version"`
	}
	decodeJSON(t, resp, &body)
	if body.Message != "AI Resume Matcher API" || body.Version != "1.0.0" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := setupRouter(t)

	resp := do(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Status    string            `json:"status"`
		Timestamp string            `json:"timestamp"`
		Services  map[string]string `json:"services"`
	}
	decodeJSON(t, resp, &body)
	if body.Status != "healthy" || body.Timestamp == "" {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Services["database"] != "memory" {
		t.Fatalf("expected memory database status, got %q", body.Services["database"])
	}
	if body.Services["ai_analyzer"] != "not configured" {
		t.Fatalf("expected unconfigured analyzer status, got %q", body.Services["ai_analyzer"])
	}
}

func TestSetCookieAndAuthenticatedProbes(t *testing.T) {
	r := setupRouter(t)
	cookie := sessionCookie(t, r)

	if !cookie.HttpOnly {
		t.Fatalf("expected HttpOnly session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	resp := do(r, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("protected: expected 200, got %d", resp.Code)
	}
	var protected struct {
		Message string `json:"message"`
		User    struct {
			Sub   string `json:"sub"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeJSON(t, resp, &protected)
	if protected.Message != "Authenticated!" {
		t.Fatalf("unexpected message %q", protected.Message)
	}
	if protected.User.Sub != "user-1" || protected.User.Email != "u@example.com" {
		t.Fatalf("unexpected principal %+v", protected.User)
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp = do(r, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.Code)
	}
}

func TestSetCookieAcceptsTopLevelUser(t *testing.T) {
	r := setupRouter(t)

	payload := `{"user": {"id": "user-2"}}`
	req := httptest.NewRequest(http.MethodPost, "/set-cookie", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp := do(r, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Detail string `json:"detail"`
	}
	decodeJSON(t, resp, &body)
	if body.Detail != "cookie set" {
		t.Fatalf("unexpected detail %q", body.Detail)
	}
}

func TestSetCookieMissingUser(t *testing.T) {
	r := setupRouter(t)

	for _, payload := range []string{`{}`, `{"session": {}}`, `{"session": {"user": {"email": "no-id@example.com"}}}`, `garbage`} {
		req := httptest.NewRequest(http.MethodPost, "/set-cookie", bytes.NewReader([]byte(payload)))
		req.Header.Set("Content-Type", "application/json")
		resp := do(r, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("payload %q: expected 400, got %d", payload, resp.Code)
		}
		var body struct {
			Detail string `json:"detail"`
		}
		decodeJSON(t, resp, &body)
		if body.Detail != "missing user in session" {
			t.Fatalf("payload %q: unexpected detail %q", payload, body.Detail)
		}
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := setupRouter(t)

	resp := do(r, httptest.NewRequest(http.MethodPost, "/logout", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	decodeJSON(t, resp, &body)
	if body.Detail != "logged out" {
		t.Fatalf("unexpected detail %q", body.Detail)
	}

	cleared := false
	for _, c := range resp.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be cleared")
	}
}

func TestProtectedRoutesRequireCookie(t *testing.T) {
	r := setupRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/protected"},
		{http.MethodGet, "/me"},
		{http.MethodGet, "/summaries"},
		{http.MethodDelete, "/summaries/some-id"},
		{http.MethodPost, "/analyze-resume"},
		{http.MethodPost, "/chat"},
	}
	for _, p := range paths {
		resp := do(r, httptest.NewRequest(p.method, p.path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", p.method, p.path, resp.Code)
		}
		var body struct {
			Detail string `json:"detail"`
		}
		decodeJSON(t, resp, &body)
		if body.Detail != "Not authenticated" {
			t.Fatalf("%s %s: unexpected detail %q", p.method, p.path, body.Detail)
		}
	}
}

func TestAnalyzeResumeWithoutModelConfigured(t *testing.T) {
	r := setupRouter(t)
	cookie := sessionCookie(t, r)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "resume.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(pdftest.WithText("Experienced Go developer")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/analyze-resume", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(cookie)
	resp := do(r, req)

	// Without a provider key the pipeline surfaces the generic 500.
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.Code, resp.Body.String())
	}
	var errBody struct {
		Detail string `json:"detail"`
	}
	decodeJSON(t, resp, &errBody)
	if errBody.Detail != "Error processing resume" {
		t.Fatalf("unexpected detail %q", errBody.Detail)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8000",
		"9000":  ":9000",
		":9000": ":9000",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
