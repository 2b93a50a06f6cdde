package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"userhub/internal/cache"
	"userhub/internal/config"
	"userhub/internal/database"
	"userhub/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type noopPool struct{}

func (noopPool) Submit(worker.Task) {}
func (noopPool) Stop()              {}

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	cfg := &config.Config{JWTSecret: "s", TokenTTL: time.Hour}
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, noopPool{}, cfg)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		http.MethodPost + " /api/login",
		http.MethodGet + " /api/ping",
		http.MethodGet + " /api/protected",
		http.MethodGet + " /api/admin-only",
		http.MethodGet + " /api/users",
		http.MethodPost + " /api/users",
		http.MethodGet + " /api/users/me",
		http.MethodPatch + " /api/users/me/password",
		http.MethodGet + " /api/users/:id",
		http.MethodPut + " /api/users/:id",
		http.MethodDelete + " /api/users/:id",
	}
	for _, route := range want {
		require.True(t, registered[route], fmt.Sprintf("route %s not registered", route))
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	cfg := &config.Config{JWTSecret: "s", TokenTTL: time.Hour}
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, noopPool{}, cfg)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/protected"},
		{http.MethodGet, "/api/admin-only"},
		{http.MethodGet, "/api/ping"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/me"},
		{http.MethodGet, "/api/users/1"},
		{http.MethodPost, "/api/users"},
		{http.MethodPut, "/api/users/1"},
		{http.MethodDelete, "/api/users/1"},
		{http.MethodPatch, "/api/users/me/password"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
