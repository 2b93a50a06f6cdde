// File: internal/router/router.go
package router

import (
	"userhub/internal/cache"
	"userhub/internal/config"
	"userhub/internal/database"
	"userhub/internal/handler"
	"userhub/internal/handler/auth"
	"userhub/internal/handler/users"
	"userhub/internal/middleware"
	"userhub/internal/model"
	"userhub/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup registers every route. The auth check always runs before the role
// check; the role check never sees an unverified subject.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, cfg *config.Config) {
	secret := []byte(cfg.JWTSecret)
	requireAuth := middleware.RequireAuth(secret)
	requireAdmin := middleware.RequireRole(db, model.RoleAdmin)

	api := e.Group("/api")

	api.POST("/login", auth.LoginHandler(db, secret, cfg.TokenTTL, wp))

	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)
	api.GET("/protected", auth.ProtectedHandler(), requireAuth)
	api.GET("/admin-only", auth.AdminOnlyHandler(), requireAuth, requireAdmin)

	apiUsers := api.Group("/users", requireAuth)
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/me", users.GetMyUserHandler(db))
	apiUsers.PATCH("/me/password", users.UpdateMyPasswordHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))

	// Admin-gated mutations.
	apiUsers.POST("", users.CreateUserHandler(db), requireAdmin)
	apiUsers.PUT("/:id", users.UpdateUserHandler(db), requireAdmin)
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db), requireAdmin)
}
