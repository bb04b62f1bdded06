package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/heatflow/simulation-system/internal/api/handler"
	"github.com/heatflow/simulation-system/internal/api/middleware"
	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
	"github.com/heatflow/simulation-system/internal/core/service"
	"github.com/heatflow/simulation-system/internal/infrastructure/db/postgres"
	redisinfra "github.com/heatflow/simulation-system/internal/infrastructure/db/redis"
	"github.com/heatflow/simulation-system/internal/infrastructure/queue"
	"github.com/heatflow/simulation-system/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered. The
// returned dispatcher must be started by the caller before serving.
func NewRouter(
	db *sql.DB,
	rdb *redis.Client,
	store ports.GeometryStore,
	solver ports.Solver,
	cfg *config.Config,
	log zerolog.Logger,
) (*echo.Echo, *queue.ProgressDispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// The legacy endpoints were called straight from browsers; keep the
	// permissive CORS behaviour they shipped with.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("thermosim"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	simRepo := postgres.NewSimulationRepository(db)
	resultRepo := postgres.NewResultRepository(db)
	materialRepo := postgres.NewMaterialRepository(db)

	broker := redisinfra.NewProgressBroker(rdb, log)
	dispatcher := queue.NewProgressDispatcher(cfg.Run.Workers, simRepo, broker, log)

	simulationService := service.NewSimulationService(
		userRepo, simRepo, resultRepo, solver, dispatcher, broker,
		service.RunConfig{
			Ticks:         cfg.Run.Ticks,
			TickInterval:  cfg.Run.TickInterval,
			SolverTimeout: cfg.Run.SolverTimeout,
		},
		log,
	)
	uploadService := service.NewUploadService(userRepo, simRepo, store, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	materialService := service.NewMaterialService(materialRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	simulationHandler := handler.NewSimulationHandler(simulationService)
	simulateHandler := handler.NewSimulateHandler(simulationService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	materialHandler := handler.NewMaterialHandler(materialService)
	watchHandler := handler.NewWatchHandler(simulationService, broker, log)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Legacy serverless paths (same handlers, old mount points) ---
	e.POST("/simulate", simulateHandler.Run, authMiddleware)
	e.POST("/upload-geometry", uploadHandler.Upload, authMiddleware)

	// --- Versioned API ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/me", authHandler.Me)

	v1.POST("/simulate", simulateHandler.Run)
	v1.POST("/upload-geometry", uploadHandler.Upload)

	v1.POST("/simulations", simulationHandler.Create)
	v1.GET("/simulations", simulationHandler.List)
	v1.GET("/simulations/:id", simulationHandler.Get)
	v1.DELETE("/simulations/:id", simulationHandler.Delete)
	v1.POST("/simulations/:id/cancel", simulationHandler.Cancel)
	v1.GET("/simulations/:id/results", simulationHandler.GetResult)
	v1.GET("/simulations/:id/watch", watchHandler.Watch)

	v1.GET("/materials", materialHandler.List)
	v1.GET("/materials/:id", materialHandler.Get)
	v1.POST("/materials", materialHandler.Create, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
