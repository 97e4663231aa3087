package search_cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	store   map[string]string
	getErr  error
	setErr  error
	lastTTL time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: map[string]string{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	value, ok := f.store[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.lastTTL = expiration
	payload, _ := value.([]byte)
	f.store[key] = string(payload)
	return redis.NewStatusResult("OK", nil)
}

func TestSearchCache_RoundTrip(t *testing.T) {
	fake := newFakeRedis()
	cache := NewSearchCacheWithClient(fake, 5*time.Minute)
	ctx := context.Background()

	type payload struct {
		Names []string `json:"names"`
	}

	err := cache.Set(ctx, "trending:recipes:7:10", payload{Names: []string{"shakshuka"}})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, fake.lastTTL)

	var got payload
	hit, err := cache.Get(ctx, "trending:recipes:7:10", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"shakshuka"}, got.Names)
}

func TestSearchCache_Miss(t *testing.T) {
	cache := NewSearchCacheWithClient(newFakeRedis(), time.Minute)

	var got map[string]any
	hit, err := cache.Get(context.Background(), "trending:cuisines:7:5", &got)

	require.NoError(t, err, "a miss is not an error")
	assert.False(t, hit)
}

func TestSearchCache_GetError(t *testing.T) {
	fake := newFakeRedis()
	fake.getErr = assert.AnError
	cache := NewSearchCacheWithClient(fake, time.Minute)

	var got map[string]any
	hit, err := cache.Get(context.Background(), "key", &got)

	assert.Error(t, err)
	assert.False(t, hit)
}

func TestSearchCache_DecodeError(t *testing.T) {
	fake := newFakeRedis()
	fake.store["key"] = "{not json"
	cache := NewSearchCacheWithClient(fake, time.Minute)

	var got map[string]any
	hit, err := cache.Get(context.Background(), "key", &got)

	assert.Error(t, err)
	assert.False(t, hit)
}

func TestSearchCache_NilCacheIsInert(t *testing.T) {
	var cache *SearchCache

	hit, err := cache.Get(context.Background(), "key", nil)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, cache.Set(context.Background(), "key", json.RawMessage(`{}`)))
}
