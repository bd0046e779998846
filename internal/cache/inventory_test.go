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

func setupCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupCache(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *[]string) func() error {
		return func() error {
			fetches++
			*dest = []string{"a", "b"}
			return nil
		}
	}

	var first []string
	require.NoError(t, Aside(ctx, "k", &first, time.Minute, fetch(&first)))
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, 1, fetches)

	// Second read is served from the cache.
	var second []string
	require.NoError(t, Aside(ctx, "k", &second, time.Minute, fetch(&second)))
	assert.Equal(t, []string{"a", "b"}, second)
	assert.Equal(t, 1, fetches)
}

func TestAside_CorruptEntryFallsThrough(t *testing.T) {
	mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("k", "{not json"))

	var got []string
	fetched := false
	err := Aside(ctx, "k", &got, time.Minute, func() error {
		fetched = true
		got = []string{"fresh"}
		return nil
	})
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, []string{"fresh"}, got)
}

func TestAside_NoClientDegradesToFetch(t *testing.T) {
	SetClient(nil)

	var got []string
	err := Aside(context.Background(), "k", &got, time.Minute, func() error {
		got = []string{"direct"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"direct"}, got)
}

func TestInvalidateBlogLists(t *testing.T) {
	mr := setupCache(t)
	ctx := context.Background()

	var v []string
	require.NoError(t, Aside(ctx, FrontPageKey(), &v, time.Minute, func() error {
		v = []string{"cached"}
		return nil
	}))
	require.True(t, mr.Exists(FrontPageKey()))

	InvalidateBlogLists(ctx)
	assert.False(t, mr.Exists(FrontPageKey()))
}
