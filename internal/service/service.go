// Package service holds the CRUD rules for drivers, workers and trucks on top
// of the repositories.
package service

import (
	"context"
	"time"

	"fleet-service/internal/domain/driver"
	"fleet-service/internal/infra/cache"
	apperrors "fleet-service/pkg/errors"

	"go.uber.org/zap"
)

// driverCache keeps driver reads warm. A nil store disables caching and
// cache errors never fail a request.
type driverCache struct {
	store  cache.Store
	ttl    time.Duration
	logger *zap.Logger
}

func newDriverCache(store cache.Store, ttl time.Duration, logger *zap.Logger) driverCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return driverCache{store: store, ttl: ttl, logger: logger}
}

func (c driverCache) get(ctx context.Context, id int64) *driver.Driver {
	if c.store == nil {
		return nil
	}
	d, err := cache.GetJSON[driver.Driver](ctx, c.store, cache.Key(cacheNamespaceDriver, id))
	if err != nil {
		c.logger.Warn("driver_cache_read_failed", zap.Int64("driver_id", id), zap.Error(err))
		return nil
	}
	return d
}

func (c driverCache) put(ctx context.Context, d *driver.Driver) {
	if c.store == nil || d == nil {
		return
	}
	if err := cache.SetJSON(ctx, c.store, cache.Key(cacheNamespaceDriver, d.ID), d, c.ttl); err != nil {
		c.logger.Warn("driver_cache_write_failed", zap.Int64("driver_id", d.ID), zap.Error(err))
	}
}

func (c driverCache) evict(ctx context.Context, ids ...int64) {
	if c.store == nil || len(ids) == 0 {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = cache.Key(cacheNamespaceDriver, id)
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.logger.Warn("driver_cache_evict_failed", zap.Int64s("driver_ids", ids), zap.Error(err))
	}
}

type driverLookup func(ctx context.Context, id int64) (driverID int64, found bool, err error)

// evictBackedBy drops the cached driver that embeds the worker or truck id.
// A failed lookup leaves the entry until its TTL runs out.
func (c driverCache) evictBackedBy(ctx context.Context, lookup driverLookup, field string, id int64) {
	driverID, found, err := lookup(ctx, id)
	if err != nil {
		c.logger.Warn("driver_cache_lookup_failed", zap.Int64(field, id), zap.Error(err))
		return
	}
	if found {
		c.evict(ctx, driverID)
	}
}

// checkIDMatch rejects a body id that disagrees with the path id.
func checkIDMatch(pathID int64, bodyID *int64) error {
	if bodyID != nil && *bodyID != pathID {
		return apperrors.BadRequest(msgIDMismatch)
	}
	return nil
}

func validationError(err error) error {
	return apperrors.Validation(err.Error())
}
