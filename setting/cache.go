package setting

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/pbxsetting/log"
)

// Cache memoizes [Parse] results keyed by the hash of the input text.
//
// Values are immutable, so a cached result is shared by every caller that
// parses the same text. A Cache is safe for concurrent use, and the zero
// Cache is ready to use without logging or a size limit.
//
// A Cache with a positive limit is cleared when a new result would grow it
// past limit entries. Concurrent misses may briefly overshoot the limit.
type Cache struct {
	entries sync.Map // uint64 -> cached
	count   atomic.Int64
	limit   int
	logger  log.Logger
}

type cached struct {
	text  string
	value Value
}

// NewCache returns an empty cache holding at most limit results that writes
// trace records to logger. A limit of zero or less leaves it unbounded.
func NewCache(logger log.Logger, limit int) *Cache {
	return &Cache{limit: limit, logger: logger}
}

// Parse returns the parsed form of text, parsing it only if no earlier call
// has parsed the same text.
func (c *Cache) Parse(ctx context.Context, text string) Value {
	key := xxh3.HashString(text)

	if hit, ok := c.entries.Load(key); ok {
		if e, _ := hit.(cached); e.text == text {
			c.logger.TraceContext(ctx, "parse cache hit",
				slog.Uint64("key", key),
				slog.Int("entries", e.value.Len()),
			)

			return e.value
		}

		// Hash collision: parse without displacing the cached text.
		c.logger.TraceContext(ctx, "parse cache collision",
			slog.Uint64("key", key),
		)

		return Parse(text)
	}

	v := Parse(text)

	if c.limit > 0 && c.Len() >= c.limit {
		c.logger.TraceContext(ctx, "parse cache reset",
			slog.Int("limit", c.limit),
		)

		c.Clear()
	}

	if _, loaded := c.entries.LoadOrStore(key, cached{text, v}); !loaded {
		c.count.Add(1)
	}

	c.logger.TraceContext(ctx, "parse cache miss",
		slog.Uint64("key", key),
		slog.Int("length", len(text)),
		slog.Int("entries", v.Len()),
	)

	return v
}

// Len returns the number of cached results.
func (c *Cache) Len() int { return int(c.count.Load()) }

// Clear removes all cached results.
func (c *Cache) Clear() {
	c.entries.Range(func(key, _ any) bool {
		if _, loaded := c.entries.LoadAndDelete(key); loaded {
			c.count.Add(-1)
		}

		return true
	})
}

// DefaultCacheLimit is the number of results held by the cache behind
// [ParseCached] before it is cleared.
const DefaultCacheLimit = 4096

// defaultCache backs [ParseCached].
var defaultCache = Cache{limit: DefaultCacheLimit}

// ParseCached parses text through a process-wide [Cache] holding at most
// [DefaultCacheLimit] results.
func ParseCached(ctx context.Context, text string) Value {
	return defaultCache.Parse(ctx, text)
}

// ClearCache empties the process-wide cache used by [ParseCached].
func ClearCache() { defaultCache.Clear() }
