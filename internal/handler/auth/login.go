// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"userhub/internal/api"
	"userhub/internal/database"
	"userhub/internal/logger"
	"userhub/internal/service"
	"userhub/internal/store"
	"userhub/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	touchLastLogin   = store.TouchLastLogin
)

// LoginHandler verifies email/password and returns a signed access token.
// Recording last_login_at happens off the request path on the worker pool.
// @Summary     Log in
// @Description Verify credentials and issue a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, secret []byte, ttl time.Duration, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				// Same failure as a bad password; do not reveal which.
				return service.ErrInvalidCredentials
			}
			return err
		}

		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return err
		}

		token, err := issueAccessToken(*user, secret, ttl)
		if err != nil {
			return err
		}

		userID := user.ID
		wp.Submit(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := touchLastLogin(ctx, db, userID); err != nil {
				log := logger.Get()
				log.Warn().Err(err).Int("user_id", userID).Msg("record last login")
			}
		})

		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token})
	}
}
