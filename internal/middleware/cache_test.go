package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studentlife/club-directory/internal/config"
)

func TestNewRedisCacheWithoutRedisIsPassThrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: true, TTL: time.Second}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/clubs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})(c)
	if err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("disabled cache must invoke the handler")
	}
	if rec.Header().Get("X-Cache") != "" {
		t.Fatal("pass-through must not mark cache status")
	}
}

func TestNewTokenBucketDisabledIsPassThrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/clubs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	if err := mw(func(c echo.Context) error { called = true; return nil })(c); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("disabled limiter must invoke the handler")
	}
	if rec.Header().Get("X-RateLimit-Limit") != "" {
		t.Fatal("pass-through must not set rate limit headers")
	}
}

func TestCaptureWriterRespectsLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 5}

	if _, err := w.Write([]byte("hello world")); err != nil {
		t.Fatal(err)
	}
	if got := w.buf.String(); got != "hello" {
		t.Fatalf("captured %q, want capped %q", got, "hello")
	}
	// client still receives the full body
	if rec.Body.String() != "hello world" {
		t.Fatalf("client body truncated: %q", rec.Body.String())
	}
}
