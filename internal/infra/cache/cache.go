// Package cache provides the read-through cache used for entity lookups.
// Values are stored as JSON under string keys with a fixed TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Store is a byte-oriented key/value cache with expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Key builds "<namespace>:<id>".
func Key(namespace string, id int64) string {
	return namespace + ":" + strconv.FormatInt(id, 10)
}

// GetJSON loads and decodes key into a new T. A miss returns (nil, nil).
func GetJSON[T any](ctx context.Context, s Store, key string) (*T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return nil, err
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return &v, nil
}

func SetJSON[T any](ctx context.Context, s Store, key string, value *T, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw, ttl)
}
