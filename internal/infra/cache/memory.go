package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value      []byte
	expiryTime time.Time
}

// MemoryCache is the in-process Store used when no Redis URL is configured.
type MemoryCache struct {
	cache map[string]memoryEntry
	mutex sync.RWMutex
	now   func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mutex.RLock()
	entry, found := c.cache[key]
	c.mutex.RUnlock()

	if found && c.now().Before(entry.expiryTime) {
		return append([]byte(nil), entry.value...), true, nil
	}
	return nil, false, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mutex.Lock()
	c.cache[key] = memoryEntry{
		value:      append([]byte(nil), value...),
		expiryTime: c.now().Add(ttl),
	}
	c.mutex.Unlock()
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mutex.Lock()
	for _, key := range keys {
		delete(c.cache, key)
	}
	c.mutex.Unlock()
	return nil
}

// Sweep drops expired entries.
func (c *MemoryCache) Sweep() {
	now := c.now()
	c.mutex.Lock()
	for key, entry := range c.cache {
		if now.After(entry.expiryTime) {
			delete(c.cache, key)
		}
	}
	c.mutex.Unlock()
}

// RunSweeper calls Sweep every interval until ctx is done.
func (c *MemoryCache) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}
