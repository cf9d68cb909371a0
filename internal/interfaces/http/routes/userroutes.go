package routes

import (
	"github.com/gin-gonic/gin"

	"gavel/internal/interfaces/http/handlers"
	"gavel/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for the current-user routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures the current-user routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	user := engine.Group("/user")
	user.Use(cfg.AuthMiddleware.RequireAuth())
	{
		user.GET("", cfg.UserHandler.GetCurrentUser)
		user.GET("/logins", cfg.UserHandler.GetLoginHistory)
	}
}
