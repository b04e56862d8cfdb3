package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campusconnect/campus-api/docs"
	"github.com/campusconnect/campus-api/internal/api/handler"
	"github.com/campusconnect/campus-api/internal/api/middleware"
	"github.com/campusconnect/campus-api/internal/core/service"
	mongodb "github.com/campusconnect/campus-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campusconnect/campus-api/internal/infrastructure/db/redis"
)

// Options carries the knobs the router needs beyond its infrastructure
// handles.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("campus"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, denylist, opts.JWTSecret, opts.TokenTTL, opts.Logger)
	postService := service.NewPostService(postRepo, userRepo, opts.Logger)
	userService := service.NewUserService(userRepo, postRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService, userService)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(opts.JWTSecret, denylist)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, authRequired)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- Post routes ---
	posts := e.Group("/api/posts", authRequired)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.GET("/:postId", postHandler.Get)
	posts.PUT("/:postId", postHandler.Update)
	posts.DELETE("/:postId", postHandler.Delete)
	posts.POST("/:postId/comments", postHandler.AddComment)
	posts.DELETE("/:postId/comments/:commentId", postHandler.DeleteComment)
	posts.POST("/:postId/like", postHandler.ToggleLike)

	// --- User routes ---
	users := e.Group("/api/users", authRequired)
	users.GET("/:userId", userHandler.Get)
	users.PUT("/:userId", userHandler.Update)
	users.DELETE("/:userId", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
