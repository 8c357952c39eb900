package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newRedisStore(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCacheFromClient(client, "fleet:"), mr
}

func TestStores_RoundTripAndDelete(t *testing.T) {
	redisStore, _ := newRedisStore(t)
	stores := map[string]Store{
		"memory": NewMemoryCache(),
		"redis":  redisStore,
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			key := Key("driver", 7)

			got, err := GetJSON[entry](ctx, s, key)
			require.NoError(t, err)
			assert.Nil(t, got)

			require.NoError(t, SetJSON(ctx, s, key, &entry{ID: 7, Name: "seven"}, time.Minute))

			got, err = GetJSON[entry](ctx, s, key)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, entry{ID: 7, Name: "seven"}, *got)

			require.NoError(t, s.Delete(ctx, key))
			got, err = GetJSON[entry](ctx, s, key)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestRedisCache_UsesPrefixAndTTL(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "driver:1", []byte(`{}`), time.Minute))
	assert.True(t, mr.Exists("fleet:driver:1"))

	mr.FastForward(2 * time.Minute)
	_, ok, err := s.Get(ctx, "driver:1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_DeleteNoKeys(t *testing.T) {
	s, _ := newRedisStore(t)
	assert.NoError(t, s.Delete(context.Background()))
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	now := time.Now()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	_, ok, _ := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)

	c.Sweep()
	assert.Empty(t, c.cache)
}

func TestGetJSON_CorruptValue(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", []byte("{not json"), time.Minute))

	_, err := GetJSON[entry](ctx, c, "k")
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "truck:42", Key("truck", 42))
}
