package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/api/handler"
	"github.com/taskhive/todo-api/internal/api/middleware"
	"github.com/taskhive/todo-api/internal/core/service"
	"github.com/taskhive/todo-api/internal/infrastructure/config"
	"github.com/taskhive/todo-api/internal/infrastructure/db/postgres"
	"github.com/taskhive/todo-api/internal/infrastructure/db/redis"
	"github.com/taskhive/todo-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the audit dispatcher, which the caller must Start.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todoapi"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	todoRepo := postgres.NewTodoRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)

	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)

	sessionService := service.NewSessionService(cfg.JWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)
	authService := service.NewAuthService(userRepo, sessionService, dispatcher, log)
	todoService := service.NewTodoService(todoRepo, dispatcher, log)
	resolver := service.NewIdentityResolver(sessionService, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)

	requireAuth := middleware.Auth(resolver)
	limitCredentials := middleware.RateLimit(redis.NewWindowCounter(rdb), cfg.RateLimit.PerMinute, log)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup, limitCredentials)
	e.POST("/signin", authHandler.Signin, limitCredentials)
	e.POST("/signout", authHandler.Signout, requireAuth)

	// --- Todo routes ---
	todos := e.Group("/todos", requireAuth)
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)
	todos.GET("/:id", todoHandler.Get)
	todos.PATCH("/:id", todoHandler.Update)
	todos.DELETE("/:id", todoHandler.Delete)
	todos.POST("/:id/toggle", todoHandler.Toggle)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
