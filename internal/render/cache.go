package render

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"
	"time"

	"mundell-fleming/internal/model"
)

type cacheEntry struct {
	svg       string
	expiresAt time.Time
}

// ChartCache memoises rendered SVG charts by input. A nil *ChartCache is a
// valid, always-missing cache.
//
// Expired entries are dropped lazily on Set; there is no background sweeper.
type ChartCache struct {
	mu         sync.RWMutex
	store      map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewChartCache(ttl time.Duration, maxEntries int) *ChartCache {
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	return &ChartCache{
		store:      make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *ChartCache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || c.now().After(entry.expiresAt) {
		return "", false
	}
	return entry.svg, true
}

func (c *ChartCache) Set(key, svg string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if len(c.store) >= c.maxEntries {
		for k, e := range c.store {
			if now.After(e.expiresAt) {
				delete(c.store, k)
			}
		}
		// Still full: start over rather than track recency.
		if len(c.store) >= c.maxEntries {
			c.store = make(map[string]cacheEntry)
		}
	}
	c.store[key] = cacheEntry{svg: svg, expiresAt: now.Add(c.ttl)}
}

func (c *ChartCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// CacheKey is a stable digest of the inputs and canvas size.
func CacheKey(in model.PolicyInputs, opts ChartOptions) string {
	raw := fmt.Sprintf("%s:%s:%s:%s:%dx%d",
		strconv.FormatFloat(in.TariffShock, 'g', -1, 64),
		strconv.FormatFloat(in.ADContraction, 'g', -1, 64),
		in.Fiscal,
		in.Monetary,
		opts.Width,
		opts.Height,
	)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
