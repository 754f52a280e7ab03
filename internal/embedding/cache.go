package embedding

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/jonathan/skillmatch/internal/types"
)

// cache is a bounded embedding cache keyed by a hash of the normalized
// input text. Once the capacity is reached new entries are simply not
// cached; there is no eviction. Concurrent misses for the same key may
// compute twice and only one result is kept, which is acceptable.
type cache struct {
	mu       sync.Mutex
	entries  map[string]types.Vector
	capacity int
	hits     int64
	misses   int64
}

func newCache(capacity int) *cache {
	return &cache{
		entries:  make(map[string]types.Vector),
		capacity: capacity,
	}
}

// cacheKey derives the deterministic cache key for a text input.
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(sum[:])
}

// get returns the cached vector for key, if present.
func (c *cache) get(key string) (types.Vector, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vec, ok := c.entries[key]
	if ok {
		c.hits++
		return vec.Clone(), true
	}
	return nil, false
}

// put stores the vector under key while capacity remains, and records the
// miss that led to the compute.
func (c *cache) put(key string, vec types.Vector) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.misses++
	if len(c.entries) < c.capacity {
		c.entries[key] = vec.Clone()
	}
}

// stats returns the current entry count and hit/miss counters.
func (c *cache) stats() (size int, hits, misses int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries), c.hits, c.misses
}

// clear drops all entries and resets the counters.
func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]types.Vector)
	c.hits = 0
	c.misses = 0
}
