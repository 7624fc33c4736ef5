package config

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	FrontendOrigins []string
	DatabaseURL     string
	JWTSecret       string
	GeminiAPIKey    string
	GeminiModel     string
	LLMTimeout      time.Duration
	CookieSecure    bool
	CookieSameSite  http.SameSite
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8000"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		FrontendOrigins: splitAndTrim(getEnv("FRONTEND_URL", "http://localhost:5173")),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       getEnv("JWT_SECRET", "secret-key-change-in-production"),
		GeminiAPIKey:    os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		LLMTimeout:      getEnvDuration("LLM_TIMEOUT", 90*time.Second),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
		CookieSameSite:  parseSameSite(getEnv("COOKIE_SAMESITE", "lax")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}

// parseSameSite maps a config string to the cookie SameSite attribute.
// Cross-site deployments (frontend and API on different sites) need
// COOKIE_SAMESITE=none together with COOKIE_SECURE=true.
func parseSameSite(raw string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
