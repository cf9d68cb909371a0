package routes

import (
	"github.com/gin-gonic/gin"

	"gavel/internal/interfaces/http/handlers"
	"gavel/internal/interfaces/http/middleware"
)

// AuctionRouteConfig holds dependencies for auction routes.
type AuctionRouteConfig struct {
	AuctionHandler *handlers.AuctionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuctionRoutes configures auction routes. Browsing is public;
// creating, bidding and withdrawing require a session.
func SetupAuctionRoutes(engine *gin.Engine, cfg *AuctionRouteConfig) {
	auctions := engine.Group("/auctions")
	{
		auctions.GET("", cfg.AuctionHandler.List)
		auctions.GET("/:sid", cfg.AuctionHandler.Get)

		auctions.POST("", cfg.AuthMiddleware.RequireAuth(), cfg.AuctionHandler.Create)
		auctions.POST("/:sid/bids", cfg.AuthMiddleware.RequireAuth(), cfg.AuctionHandler.PlaceBid)
		auctions.DELETE("/:sid", cfg.AuthMiddleware.RequireAuth(), cfg.AuctionHandler.Withdraw)
	}
}
