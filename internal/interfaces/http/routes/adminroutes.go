package routes

import (
	"github.com/gin-gonic/gin"

	"gavel/internal/interfaces/http/handlers"
	"gavel/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the admin panel routes.
type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures the admin panel routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/dashboard", cfg.AdminHandler.GetDashboard)
		admin.GET("/users", cfg.AdminHandler.ListUsers)
		admin.GET("/logins", cfg.AdminHandler.ListLoginEvents)
	}
}
