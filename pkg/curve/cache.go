package curve

import (
	"sync"

	"github.com/go-drift/easelab/pkg/easing"
)

type cacheKey struct {
	id         string
	resolution int
	domain     Domain
}

// Cache memoizes sampled curves by easing ID, resolution and domain.
//
// Registered easings are referentially stable, so a cached curve never goes
// stale. A nil *Cache is valid and samples on every call.
type Cache struct {
	mu    sync.Mutex
	items map[cacheKey]SampledCurve
}

// NewCache creates an empty curve cache.
func NewCache() *Cache {
	return &Cache{items: make(map[cacheKey]SampledCurve)}
}

// Get returns the cached curve for e or samples and stores it.
//
// The lock is not held while sampling; concurrent misses for the same key
// may sample twice and the first stored result wins.
func (c *Cache) Get(e easing.Easing, resolution int, d Domain) (SampledCurve, error) {
	if c == nil || e.ID == "" {
		return Sample(e, resolution, d)
	}
	key := cacheKey{id: e.ID, resolution: resolution, domain: d}

	c.mu.Lock()
	if cached, ok := c.items[key]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	sampled, err := Sample(e, resolution, d)
	if err != nil {
		return SampledCurve{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[key]; ok {
		return existing, nil
	}
	c.items[key] = sampled
	return sampled, nil
}

// Len returns the number of cached curves.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
