package routes

import (
	"github.com/gin-gonic/gin"

	"gavel/internal/interfaces/http/handlers"
	"gavel/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter // may be nil when Redis is not configured
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if cfg.RateLimiter != nil {
			auth.POST("/signup", cfg.RateLimiter.Limit(), cfg.AuthHandler.Signup)
			auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		} else {
			auth.POST("/signup", cfg.AuthHandler.Signup)
			auth.POST("/login", cfg.AuthHandler.Login)
		}

		// Logout only clears the cookie, so it needs no valid session.
		auth.POST("/logout", cfg.AuthHandler.Logout)
	}
}
