// Package app wires configuration, storage, cache and transport into a
// runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"time"

	"fleet-service/internal/audit"
	"fleet-service/internal/auth"
	"fleet-service/internal/config"
	"fleet-service/internal/http"
	"fleet-service/internal/http/handler"
	"fleet-service/internal/infra/cache"
	"fleet-service/internal/repository/postgres"
	"fleet-service/internal/service"

	"go.uber.org/zap"
)

const (
	serverAddrPrefix    = ":"
	cacheKeyPrefix      = "fleet:"
	cacheSweepInterval  = 5 * time.Minute
	redisConnectTimeout = 5 * time.Second
)

// App is the running fleet service.
type App struct {
	config *config.Config
	logger *zap.Logger
	db     *postgres.DB
	redis  *cache.RedisCache
	memory *cache.MemoryCache
	audit  *audit.Logger
	server *http.Server
}

// New connects to Postgres, applies the schema, picks a cache backend and
// builds the HTTP server.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	verifier, err := NewVerifier(cfg.JWT)
	if err != nil {
		return nil, err
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("database_connected", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Database))

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	a := &App{config: cfg, logger: logger, db: db, audit: audit.NewLogger(db.Pool, logger)}

	checkers := []handler.HealthChecker{db}
	var store cache.Store
	if cfg.Redis.Enabled() {
		rctx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
		a.redis, err = cache.NewRedisCache(rctx, cfg.Redis.URL, cacheKeyPrefix)
		cancel()
		if err != nil {
			db.Close()
			return nil, err
		}
		store = a.redis
		checkers = append(checkers, a.redis)
		logger.Info("cache_backend", zap.String("type", "redis"))
	} else {
		a.memory = cache.NewMemoryCache()
		store = a.memory
		logger.Info("cache_backend", zap.String("type", "memory"))
	}

	drivers := postgres.NewDriverRepository(db)
	workers := postgres.NewWorkerRepository(db)
	trucks := postgres.NewTruckRepository(db)
	ttl := cfg.Redis.CacheTTL

	a.server = http.NewServer(&http.ServerDependencies{
		Config:         cfg,
		Logger:         logger,
		AuthMiddleware: auth.NewMiddleware(auth.NewAuthenticator(verifier), logger),
		DriverService:  service.NewDriverService(drivers, workers, trucks, store, ttl, logger),
		WorkerService:  service.NewWorkerService(workers, drivers, store, ttl, logger),
		TruckService:   service.NewTruckService(trucks, drivers, store, ttl, logger),
		HealthCheckers: checkers,
		AuditLogger:    a.audit,
	})

	return a, nil
}

// NewVerifier builds the token verifier from the startup key material.
func NewVerifier(cfg config.JWTConfig) (*auth.JWTVerifier, error) {
	v, err := auth.NewJWTVerifier(auth.VerifierConfig{
		Algorithm:     cfg.Algorithm,
		Secret:        []byte(cfg.Secret),
		PublicKey:     cfg.PublicKey,
		Issuer:        cfg.Issuer,
		Audience:      cfg.Audience,
		Leeway:        cfg.Leeway,
		RequireExpiry: cfg.RequireExpiry,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build token verifier: %w", err)
	}
	return v, nil
}

// Start serves HTTP until the server is shut down. It returns nil after a
// graceful shutdown.
func (a *App) Start(ctx context.Context) error {
	if a.memory != nil {
		go a.memory.RunSweeper(ctx, cacheSweepInterval)
	}

	a.logger.Info("http_server_starting", zap.String("port", a.config.Server.Port))
	if err := a.server.Start(serverAddrPrefix + a.config.Server.Port); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server and releases connections.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	a.audit.Close()

	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil {
			a.logger.Warn("redis_close_failed", zap.Error(cerr))
		}
	}
	a.db.Close()

	return err
}
