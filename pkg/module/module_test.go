package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reviewlens/reviewlens/pkg/module"
)

func echoPathMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{path...}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	})
	return mux
}

func TestNewValidatesPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		panics bool
	}{
		{"valid prefix", "/api", false},
		{"empty prefix", "", true},
		{"missing leading slash", "api", true},
		{"multi-level prefix", "/api/v1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover() != nil
				if recovered != tt.panics {
					t.Errorf("panic = %v, want %v", recovered, tt.panics)
				}
			}()
			module.New(tt.prefix, http.NewServeMux())
		})
	}
}

func TestServeStripsPrefix(t *testing.T) {
	m := module.New("/api", echoPathMux())

	tests := []struct {
		path string
		want string
	}{
		{"/api/analyses", "/analyses"},
		{"/api", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			m.Serve(rec, req)

			if got := rec.Body.String(); got != tt.want {
				t.Errorf("inner path = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModuleMiddlewareApplied(t *testing.T) {
	m := module.New("/api", echoPathMux())
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "applied")
			next.ServeHTTP(w, r)
		})
	})

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest(http.MethodGet, "/api/analyses", nil))

	if rec.Header().Get("X-Test") != "applied" {
		t.Error("module middleware not applied")
	}
}

func TestRouterDispatch(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPathMux()))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	t.Run("module prefix", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyses", nil))

		if got := rec.Body.String(); got != "/analyses" {
			t.Errorf("body = %q, want /analyses", got)
		}
	})

	t.Run("native fallback", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		if got := rec.Body.String(); got != "ok" {
			t.Errorf("body = %q, want ok", got)
		}
	})

	t.Run("trailing slash normalized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyses/", nil))

		if got := rec.Body.String(); got != "/analyses" {
			t.Errorf("body = %q, want /analyses", got)
		}
	})

	t.Run("unmatched path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
