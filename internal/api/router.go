package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/researchsphere/hub-api/internal/api/handler"
	"github.com/researchsphere/hub-api/internal/api/middleware"
	"github.com/researchsphere/hub-api/internal/core/domain"
	"github.com/researchsphere/hub-api/internal/core/service"
	mongodb "github.com/researchsphere/hub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/researchsphere/hub-api/internal/infrastructure/db/redis"
)

// Config carries the immutable settings the router wires into its components.
type Config struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	CORSOrigin string
	Debug      bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Debug)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("researchhub"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	paperRepo := mongodb.NewPaperRepository(db)
	bookmarkRepo := mongodb.NewBookmarkRepository(db)
	viewCounter := redisdb.NewViewCounter(rdb)

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	paperService := service.NewPaperService(paperRepo, bookmarkRepo, userRepo, viewCounter, log)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, paperRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	paperHandler := handler.NewPaperHandler(paperService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)

	requireAuth := middleware.Auth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)
	auth.PUT("/profile", authHandler.UpdateProfile, requireAuth)
	auth.POST("/change-password", authHandler.ChangePassword, requireAuth)

	// --- Research routes ---
	research := e.Group("/api/research")
	research.GET("/search", paperHandler.Search)
	research.GET("/user/my-papers", paperHandler.ListMine, requireAuth)
	research.GET("/:id", paperHandler.Get, optionalAuth)
	research.POST("", paperHandler.Create, requireAuth)
	research.PUT("/:id", paperHandler.Update, requireAuth)
	research.DELETE("/:id", paperHandler.Delete, requireAuth)

	// --- Bookmark routes ---
	bookmarks := e.Group("/api/bookmarks", requireAuth)
	bookmarks.GET("", bookmarkHandler.List)
	bookmarks.GET("/:paperId/check", bookmarkHandler.Check)
	bookmarks.POST("/:paperId", bookmarkHandler.Add)
	bookmarks.DELETE("/:paperId", bookmarkHandler.Remove)

	// --- Admin routes ---
	admin := e.Group("/api/admin", requireAuth, requireAdmin)
	admin.GET("/users", authHandler.ListUsers)

	// --- Ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", healthHandler.Welcome)                   // welcome banner with API version
	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
