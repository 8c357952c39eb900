package http

import (
	"context"

	"fleet-service/internal/audit"
	"fleet-service/internal/auth"
	"fleet-service/internal/config"
	"fleet-service/internal/http/handler"
	"fleet-service/internal/http/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const requestBodyLimit = "1M"

type ServerDependencies struct {
	Config         *config.Config
	Logger         *zap.Logger
	AuthMiddleware *auth.Middleware
	DriverService  handler.DriverService
	WorkerService  handler.WorkerService
	TruckService   handler.TruckService
	HealthCheckers []handler.HealthChecker
	AuditLogger    *audit.Logger
}

type Server struct {
	echo    *echo.Echo
	deps    *ServerDependencies
	metrics *middleware.Metrics
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(deps.Logger)

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	metrics := middleware.NewMetrics()

	// Request ID first so every log line carries it.
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	e.GET("/health", handler.Health(deps.HealthCheckers...))

	authm := deps.AuthMiddleware
	rateLimiter := middleware.NewRateLimiter(deps.Config.RateLimit.RequestsPerSecond, deps.Config.RateLimit.Burst)

	api := e.Group("/api")
	api.Use(authm.Authenticate())
	api.Use(rateLimiter.Middleware())

	readers := authm.RequireAuthenticated()
	admins := authm.RequireAnyAuthority(auth.AuthorityAdmin)

	pagination := handler.Pagination{
		DefaultSize: deps.Config.App.PageSize,
		MaxSize:     deps.Config.App.MaxPageSize,
	}

	api.GET("/me", handler.Me, readers)
	api.GET("/metrics", metrics.Handler, admins)

	drivers := handler.NewDriverHandler(deps.DriverService, pagination)
	registerCRUD(api.Group("/drivers"), readers, auditedWrites(deps.AuditLogger, admins, audit.ResourceTypeDriver), crudHandlers{
		list: drivers.List, get: drivers.Get, create: drivers.Create, update: drivers.Update, remove: drivers.Delete,
	})

	workers := handler.NewWorkerHandler(deps.WorkerService, pagination)
	registerCRUD(api.Group("/workers"), readers, auditedWrites(deps.AuditLogger, admins, audit.ResourceTypeWorker), crudHandlers{
		list: workers.List, get: workers.Get, create: workers.Create, update: workers.Update, remove: workers.Delete,
	})

	trucks := handler.NewTruckHandler(deps.TruckService, pagination)
	registerCRUD(api.Group("/trucks"), readers, auditedWrites(deps.AuditLogger, admins, audit.ResourceTypeTruck), crudHandlers{
		list: trucks.List, get: trucks.Get, create: trucks.Create, update: trucks.Update, remove: trucks.Delete,
	})

	return &Server{
		echo:    e,
		deps:    deps,
		metrics: metrics,
	}
}

type crudHandlers struct {
	list, get, create, update, remove echo.HandlerFunc
}

// registerCRUD mounts reads for any authenticated caller and writes behind
// the writes chain.
func registerCRUD(g *echo.Group, readers echo.MiddlewareFunc, writes []echo.MiddlewareFunc, h crudHandlers) {
	g.GET("", h.list, readers)
	g.GET("/:id", h.get, readers)
	g.POST("", h.create, writes...)
	g.PUT("/:id", h.update, writes...)
	g.DELETE("/:id", h.remove, writes...)
}

// auditedWrites checks authorities first so only authorized writes are audited.
func auditedWrites(logger *audit.Logger, admins echo.MiddlewareFunc, resource audit.ResourceType) []echo.MiddlewareFunc {
	if logger == nil {
		return []echo.MiddlewareFunc{admins}
	}
	return []echo.MiddlewareFunc{admins, logger.Middleware(resource)}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

func (s *Server) Metrics() middleware.MetricsSnapshot {
	return s.metrics.Snapshot()
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
