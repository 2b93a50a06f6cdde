package middleware

import (
	"errors"
	"net/http"
	"strings"

	"userhub/internal/database"
	"userhub/internal/model"
	"userhub/internal/service"
	"userhub/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var getUserByID = store.GetUserByID

func extractClaims(c echo.Context, secret []byte) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(parts[1], secret)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

// RequireAuth rejects the request with 401 before any business logic runs
// unless a valid bearer token is presented. Verified claims are stored in
// the echo context under ContextUserKey.
func RequireAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, secret)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireRole re-reads the user's current role from the store instead of
// trusting the role claim baked into the token, so a downgrade takes effect
// on the next request at the cost of one extra round trip. It must run after
// RequireAuth; absent claims mean the auth check was skipped, which is a 401.
func RequireRole(db database.DB, role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			id, err := claims.UserID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}
			user, err := getUserByID(c.Request().Context(), db, id)
			if err != nil {
				if errors.Is(err, store.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "access denied")
				}
				return err
			}
			if user.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}
