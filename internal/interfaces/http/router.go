package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminusecases "gavel/internal/application/admin/usecases"
	auctionusecases "gavel/internal/application/auction/usecases"
	authusecases "gavel/internal/application/auth/usecases"
	contactusecases "gavel/internal/application/contact/usecases"
	"gavel/internal/infrastructure/auth"
	"gavel/internal/infrastructure/config"
	"gavel/internal/infrastructure/email"
	"gavel/internal/infrastructure/geoip"
	"gavel/internal/infrastructure/repository"
	"gavel/internal/interfaces/http/handlers"
	"gavel/internal/interfaces/http/middleware"
	"gavel/internal/interfaces/http/routes"
	"gavel/internal/shared/logger"
	"gavel/internal/shared/services/markdown"
	"gavel/internal/shared/utils"
)

// Router wires repositories, use cases, handlers and middleware into a Gin
// engine.
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	auctionHandler *handlers.AuctionHandler
	contactHandler *handlers.ContactHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	allowedOrigins []string
	logger         logger.Interface
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	auditRepo := repository.NewLoginEventRepository(db, log)
	auctionRepo := repository.NewAuctionRepository(db, log)
	contactRepo := repository.NewContactRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.SessionExpDays)
	geoResolver := geoip.NewIPAPIResolver(cfg.GeoIP, log)
	emailService := email.NewSMTPEmailService(cfg.Email)
	markdownService := markdown.NewService()

	loginUC := authusecases.NewLoginUseCase(userRepo, auditRepo, hasher, jwtService, geoResolver, log)
	signupUC := authusecases.NewSignupUseCase(userRepo, auditRepo, hasher, jwtService, geoResolver, log)

	createAuctionUC := auctionusecases.NewCreateAuctionUseCase(auctionRepo, markdownService, log)
	listAuctionsUC := auctionusecases.NewListAuctionsUseCase(auctionRepo, log)
	getAuctionUC := auctionusecases.NewGetAuctionUseCase(auctionRepo, log)
	placeBidUC := auctionusecases.NewPlaceBidUseCase(auctionRepo, log)
	withdrawAuctionUC := auctionusecases.NewWithdrawAuctionUseCase(auctionRepo, log)

	submitMessageUC := contactusecases.NewSubmitMessageUseCase(contactRepo, emailService, log)

	dashboardUC := adminusecases.NewGetDashboardUseCase(userRepo, auctionRepo, auditRepo, log)
	listUsersUC := adminusecases.NewListUsersUseCase(userRepo, log)
	listLoginsUC := adminusecases.NewListLoginEventsUseCase(auditRepo, log)

	// The cookie is forced secure in production regardless of config.
	cookieCfg := cfg.Auth.Cookie
	if cfg.Server.IsProduction() {
		cookieCfg.Secure = true
	}

	authHandler := handlers.NewAuthHandler(loginUC, signupUC, log, cookieCfg)
	userHandler := handlers.NewUserHandler(userRepo, auditRepo, log)
	auctionHandler := handlers.NewAuctionHandler(
		createAuctionUC, listAuctionsUC, getAuctionUC, placeBidUC, withdrawAuctionUC,
		userRepo, log,
	)
	contactHandler := handlers.NewContactHandler(submitMessageUC, log)
	adminHandler := handlers.NewAdminHandler(dashboardUC, listUsersUC, listLoginsUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	// Rate limiting only runs when Redis is configured; the auth endpoints
	// stay unthrottled otherwise.
	var rateLimiter *middleware.RateLimiter
	if cfg.Redis.Host != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimiter = middleware.NewRateLimiter(redisClient, 30, 1*time.Minute)
	}

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		userHandler:    userHandler,
		auctionHandler: auctionHandler,
		contactHandler: contactHandler,
		adminHandler:   adminHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "ok", nil)
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.rateLimiter,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupAuctionRoutes(r.engine, &routes.AuctionRouteConfig{
		AuctionHandler: r.auctionHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupContactRoutes(r.engine, &routes.ContactRouteConfig{
		ContactHandler: r.contactHandler,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:   r.adminHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
