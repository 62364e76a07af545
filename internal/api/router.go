package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/userhub/user-management-api/docs"
	"github.com/userhub/user-management-api/internal/api/handler"
	"github.com/userhub/user-management-api/internal/api/middleware"
	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/service"
	"github.com/userhub/user-management-api/internal/infrastructure/config"
	mongodb "github.com/userhub/user-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/userhub/user-management-api/internal/infrastructure/db/redis"
	"github.com/userhub/user-management-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// A nil Redis client disables the statistics cache.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userhub"))

	// --- Dependencies ---
	adminRepo := mongodb.NewAdminRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(adminRepo, tokenService)

	var statsCache service.StatsCache
	if rdb != nil {
		statsCache = redisdb.NewStatsCache(rdb)
	}
	userService := service.NewUserService(userRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(tokenService, adminRepo)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, authRequired)

	// --- User routes (all bearer-protected; mutations and aggregates are
	// admin-only, get-by-id is open to any authenticated principal) ---
	users := e.Group("/users", authRequired)
	users.GET("/stats", userHandler.Stats, adminOnly)
	users.POST("", userHandler.Create, adminOnly)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
