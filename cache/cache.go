package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var client *redis.Client

// Connect opens the redis connection when REDIS_ADDR is set. The cache is
// optional: with no address every helper is a no-op and reads fall through to
// the database.
func Connect() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Info("REDIS_ADDR not set, response cache disabled")
		return
	}

	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis unreachable, response cache disabled")
		return
	}

	client = c
	log.WithField("addr", addr).Info("connected to redis")
}

// Enabled reports whether the cache is usable.
func Enabled() bool { return client != nil }

// GetJSON loads a cached value into dest. A miss, a disabled cache and a
// decode failure all report false.
func GetJSON(ctx context.Context, key string, dest any) bool {
	if client == nil {
		return false
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.WithError(err).WithField("key", key).Warn("dropping undecodable cache entry")
		client.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores a value with a TTL. Failures are logged, never surfaced.
func SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("failed to encode cache entry")
		return
	}
	if err := client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.WithError(err).WithField("key", key).Warn("failed to store cache entry")
	}
}

// Delete removes specific keys.
func Delete(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		log.WithError(err).Warn("failed to delete cache entries")
	}
}

// UserKey builds the cache key of one user-scoped view.
func UserKey(userID uint, view string) string {
	return fmt.Sprintf("matka:user:%d:%s", userID, view)
}

// InvalidateUser drops every cached view of one user. Called after any write
// that changes the user's book.
func InvalidateUser(ctx context.Context, userID uint) {
	Delete(ctx,
		UserKey(userID, "bets"),
		UserKey(userID, "summary"),
		UserKey(userID, "total"),
	)
}
