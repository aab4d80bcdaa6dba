package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reviewlens/reviewlens/pkg/middleware"
)

func enabledConfig() *middleware.CORSConfig {
	return &middleware.CORSConfig{
		Enabled:        true,
		Origins:        []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         3600,
	}
}

func serveCORS(cfg *middleware.CORSConfig, req *http.Request) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	middleware.CORS(cfg)(next).ServeHTTP(rec, req)
	return rec
}

func TestCORSAllowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := serveCORS(enabledConfig(), req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
		t.Errorf("Allow-Methods = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "3600" {
		t.Errorf("Max-Age = %q", got)
	}
}

func TestCORSUnknownOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	req.Header.Set("Origin", "http://evil.example")

	rec := serveCORS(enabledConfig(), req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty", got)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204 (request still served)", rec.Code)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/analyses", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := serveCORS(enabledConfig(), req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestCORSDisabledPassesThrough(t *testing.T) {
	cfg := enabledConfig()
	cfg.Enabled = false

	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := serveCORS(cfg, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty when disabled", got)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}
