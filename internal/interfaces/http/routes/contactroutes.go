package routes

import (
	"github.com/gin-gonic/gin"

	"gavel/internal/interfaces/http/handlers"
	"gavel/internal/interfaces/http/middleware"
)

// ContactRouteConfig holds dependencies for the contact form route.
type ContactRouteConfig struct {
	ContactHandler *handlers.ContactHandler
	RateLimiter    *middleware.RateLimiter // may be nil when Redis is not configured
}

// SetupContactRoutes configures the contact form route.
func SetupContactRoutes(engine *gin.Engine, cfg *ContactRouteConfig) {
	if cfg.RateLimiter != nil {
		engine.POST("/contact", cfg.RateLimiter.Limit(), cfg.ContactHandler.Submit)
		return
	}
	engine.POST("/contact", cfg.ContactHandler.Submit)
}
