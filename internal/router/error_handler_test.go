package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"userhub/internal/api"
	"userhub/internal/service"
	"userhub/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error, method string) (*httptest.ResponseRecorder, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	req := httptest.NewRequest(method, "/api/users/1", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	NewHTTPErrorHandler(zerolog.New(&buf))(err, c)
	return rec, &buf
}

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"echo http error", echo.NewHTTPError(http.StatusUnauthorized, "missing token"), http.StatusUnauthorized, "missing token"},
		{"invalid role", store.ErrInvalidRole, http.StatusBadRequest, store.ErrInvalidRole.Error()},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized, "invalid or expired token"},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"duplicate email", store.ErrDuplicateEmail, http.StatusConflict, "email already registered"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, logs := handleError(t, tt.err, http.MethodGet)
			require.Equal(t, tt.code, rec.Code)
			require.Contains(t, rec.Body.String(), tt.message)
			require.Empty(t, logs.String())
		})
	}

	t.Run("wrapped sentinel still maps", func(t *testing.T) {
		rec, _ := handleError(t, errors.Join(errors.New("ctx"), store.ErrUserNotFound), http.MethodGet)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown error is logged and masked", func(t *testing.T) {
		rec, logs := handleError(t, errors.New("pq: connection refused"), http.MethodGet)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "internal server error")
		require.NotContains(t, rec.Body.String(), "connection refused")
		require.Contains(t, logs.String(), "connection refused")
	})

	t.Run("head requests get no body", func(t *testing.T) {
		rec, _ := handleError(t, store.ErrUserNotFound, http.MethodHead)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Empty(t, rec.Body.String())
	})

	t.Run("error envelope shape", func(t *testing.T) {
		rec, _ := handleError(t, store.ErrUserNotFound, http.MethodGet)
		require.JSONEq(t, `{"message":"user not found"}`, rec.Body.String())

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "user not found", resp.Message)
	})
}
