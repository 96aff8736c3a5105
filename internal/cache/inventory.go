package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLs for cached entities.
const (
	UserTTL        = 5 * time.Minute
	PostTTL        = 1 * time.Minute
	RecommendedTTL = 30 * time.Second
)

// UserKey returns the cache key for a user by ID.
func UserKey(userID uint) string {
	return fmt.Sprintf("aesn:user:%d", userID)
}

// PostKey returns the cache key for a post by ID.
func PostKey(postID uint) string {
	return fmt.Sprintf("aesn:post:%d", postID)
}

// RecommendedKey returns the cache key for the recommended feed at a limit.
func RecommendedKey(limit int) string {
	return fmt.Sprintf("aesn:feed:recommended:%d", limit)
}

// Invalidate removes a key, best-effort.
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// InvalidateUser removes the cached user entry.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePost removes the cached post entry and the recommended feed,
// which orders by the post's like counter.
func InvalidatePost(ctx context.Context, postID uint) {
	if client == nil {
		return
	}
	keys := []string{PostKey(postID)}
	iter := client.Scan(ctx, 0, "aesn:feed:recommended:*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	client.Del(ctx, keys...)
}
