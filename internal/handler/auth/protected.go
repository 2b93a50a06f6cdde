package auth

import (
	"net/http"

	"userhub/internal/api"
	"userhub/internal/middleware"
	"userhub/internal/service"

	"github.com/labstack/echo/v4"
)

// ProtectedHandler proves the token is valid by echoing its subject.
// @Summary     Who am I
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.ProtectedResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /protected [get]
func ProtectedHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}
		return c.JSON(http.StatusOK, api.ProtectedResponse{LoggedInAs: claims.Subject})
	}
}

// AdminOnlyHandler is gated by the admin role check in the router.
// @Summary     Admin smoke endpoint
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin-only [get]
func AdminOnlyHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "welcome, admin"})
	}
}
