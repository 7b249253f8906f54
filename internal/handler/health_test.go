package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/jobbot-gateway/internal/handler"
)

// stubPinger implements handler.Pinger for health endpoints.
type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func newHealthEngine(checks map[string]handler.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// nil services: only health and docs routes are exercised here
	handler.Register(r, checks, handler.Services{}, "", zerolog.Nop())
	return r
}

func TestReadiness_OK(t *testing.T) {
	r := newHealthEngine(map[string]handler.Pinger{"postgres": stubPinger{}, "redis": stubPinger{}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestReadiness_Unavailable(t *testing.T) {
	r := newHealthEngine(map[string]handler.Pinger{
		"postgres": stubPinger{},
		"redis":    stubPinger{err: errors.New("redis down")},
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d, body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Status string            `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Errors["redis"] != "redis down" || len(body.Errors) != 1 {
		t.Fatalf("unexpected errors: %v", body.Errors)
	}
}

func TestLivenessRoot_OK(t *testing.T) {
	r := newHealthEngine(map[string]handler.Pinger{"postgres": stubPinger{err: errors.New("ignored")}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestDocs(t *testing.T) {
	r := newHealthEngine(nil)
	for path, ctype := range map[string]string{
		"/openapi.yaml": "application/yaml; charset=utf-8",
		"/docs":         "text/html; charset=utf-8",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != ctype || w.Body.Len() == 0 {
			t.Fatalf("%s: status=%d type=%q len=%d", path, w.Code, w.Header().Get("Content-Type"), w.Body.Len())
		}
	}
}

func TestRegister_WithoutServices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("Register panicked with zero Services: %v", rec)
		}
	}()
	handler.Register(r, nil, handler.Services{}, "", zerolog.Nop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
