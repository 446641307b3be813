package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRoundTrip(t *testing.T) {
	token, err := SignToken("a1", "admin", time.Hour)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	var got *Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = AdminFromContext(r.Context())
	})
	h := WithAuth(RequireAuth(inner))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("valid token rejected: %d", rec.Code)
	}
	if got == nil || got.AID != "a1" || got.Username != "admin" {
		t.Fatalf("claims not propagated: %+v", got)
	}
}

func TestRequireAuthRejects(t *testing.T) {
	h := WithAuth(RequireAuth(okHandler()))
	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	token, err := SignToken("a1", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	WithAuth(RequireAuth(okHandler())).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expired token accepted: %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	rec := httptest.NewRecorder()
	CORS(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing allow-origin header")
	}
}

func TestNoStoreHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/results/abc", nil)
	rec := httptest.NewRecorder()
	NoStore(okHandler()).ServeHTTP(rec, req)
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store, no-cache, must-revalidate, max-age=0" {
		t.Fatalf("cache-control = %q", cc)
	}
}

func TestLocaleResolution(t *testing.T) {
	var locale string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale = LocaleFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/health?lang=en", nil)
	Locale(inner).ServeHTTP(httptest.NewRecorder(), req)
	if locale != "en" {
		t.Fatalf("query lang: got %q", locale)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.8")
	Locale(inner).ServeHTTP(httptest.NewRecorder(), req)
	if locale != "ko" {
		t.Fatalf("accept-language: got %q", locale)
	}

	if got := LocaleFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()); got != "ko" {
		t.Fatalf("default locale: got %q", got)
	}
}
