// Package assetcache provides the versioned named cache of static assets.
package assetcache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mojicode/internal/observability"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "assets"

// assetKey builds the cache key for one URL within a cache version.
func assetKey(version, url string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, version, url)
}

// versionPattern matches every key of one cache version.
func versionPattern(version string) string {
	return fmt.Sprintf("%s:%s:*", keyPrefix, version)
}

// keyVersion extracts the cache version from a stored key, or "".
func keyVersion(key string) string {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) != 3 || parts[0] != keyPrefix {
		return ""
	}
	return parts[1]
}

// Connect opens a Redis client for the cache backend and verifies the
// connection. Returns nil when the backend is unreachable; the cache then
// degrades to pass-through.
func Connect(addr string) *redis.Client {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			observability.GlobalLogger.Warn("Invalid Redis URL, continuing without asset cache",
				slog.String("url", addr),
				slog.String("error", err.Error()),
			)
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		observability.GlobalLogger.Warn("Redis unreachable, continuing without asset cache",
			slog.String("error", err.Error()),
		)
		return nil
	}
	return client
}
