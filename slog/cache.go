package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spellcards"
)

// Ensure LoggingCache implements spellcards.Cache.
var _ spellcards.Cache = (*LoggingCache)(nil)

// LoggingCache wraps a Cache with debug logging.
type LoggingCache struct {
	next   spellcards.Cache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next spellcards.Cache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs hits and misses.
func (c *LoggingCache) Get(ctx context.Context, key string) (html string, ok bool, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache get",
			"key", key,
			"hit", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Get(ctx, key)
}

// Put delegates to the wrapped cache and logs the write.
func (c *LoggingCache) Put(ctx context.Context, key string, html string) (err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache put",
			"key", key,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Put(ctx, key, html)
}
