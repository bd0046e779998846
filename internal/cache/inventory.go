package cache

import (
	"context"
	"encoding/json"
	"time"
)

const (
	categoriesKey = "blog:categories"
	frontPageKey  = "blog:list:front"
)

const (
	// CategoriesTTL bounds staleness of the category listing.
	CategoriesTTL = 10 * time.Minute
	// ListTTL bounds staleness of the cached public front page.
	ListTTL = 5 * time.Minute
)

// CategoriesKey is the cache key for the public category listing.
func CategoriesKey() string {
	return categoriesKey
}

// FrontPageKey is the cache key for the first unfiltered page of the
// public blog listing, the overwhelmingly hottest read.
func FrontPageKey() string {
	return frontPageKey
}

// Aside implements the cache-aside pattern: on hit, dest is populated
// from Redis; on miss, fetch runs and its result (already written into
// dest by the caller's closure) is stored under key. Cache failures
// degrade to fetching directly.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
			return nil
		}
		// Corrupt entry: drop it and fall through to fetch.
		client.Del(ctx, key)
	}

	if err := fetch(); err != nil {
		return err
	}

	if raw, marshalErr := json.Marshal(dest); marshalErr == nil {
		client.Set(ctx, key, raw, ttl)
	}
	return nil
}

// Invalidate removes a key from the cache.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateBlogLists drops the cached public listings after any post write.
func InvalidateBlogLists(ctx context.Context) {
	Invalidate(ctx, frontPageKey)
}
