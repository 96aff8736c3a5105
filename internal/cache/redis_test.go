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

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestAsideCachesFetchResult(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			fetches++
			*dest = cachedThing{ID: 1, Name: "fetched"}
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, "aesn:test:1", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "fetched", first.Name)

	// Second read is served from the cache.
	var second cachedThing
	require.NoError(t, Aside(ctx, "aesn:test:1", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, first, second)
}

func TestAsideWithoutClientAlwaysFetches(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var dest cachedThing
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(ctx, "aesn:test:off", &dest, time.Minute, func() error {
			fetches++
			dest = cachedThing{ID: 2, Name: "direct"}
			return nil
		}))
	}
	assert.Equal(t, 2, fetches)
}

func TestInvalidatePostClearsRecommended(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(5), cachedThing{ID: 5}, time.Minute))
	require.NoError(t, SetJSON(ctx, RecommendedKey(10), []cachedThing{{ID: 5}}, time.Minute))
	require.NoError(t, SetJSON(ctx, RecommendedKey(20), []cachedThing{{ID: 5}}, time.Minute))
	require.NoError(t, SetJSON(ctx, UserKey(7), cachedThing{ID: 7}, time.Minute))

	InvalidatePost(ctx, 5)

	assert.False(t, mr.Exists(PostKey(5)))
	assert.False(t, mr.Exists(RecommendedKey(10)))
	assert.False(t, mr.Exists(RecommendedKey(20)))
	// Unrelated entries survive.
	assert.True(t, mr.Exists(UserKey(7)))
}

func TestGetJSONMiss(t *testing.T) {
	withMiniredis(t)

	var dest cachedThing
	found, err := GetJSON(context.Background(), "aesn:test:absent", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "aesn:test:ttl", cachedThing{ID: 3}, time.Second))
	mr.FastForward(2 * time.Second)

	var dest cachedThing
	found, err := GetJSON(ctx, "aesn:test:ttl", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}
