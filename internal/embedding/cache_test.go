package embedding

import (
	"fmt"
	"testing"

	"github.com/jonathan/skillmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutThenGet(t *testing.T) {
	c := newCache(10)
	vec := types.Vector{0.1, 0.2}

	c.put("k", vec)

	got, ok := c.get("k")
	require.True(t, ok)
	assert.Equal(t, vec, got)
}

func TestCache_GetReturnsCopy(t *testing.T) {
	c := newCache(10)
	c.put("k", types.Vector{0.1, 0.2})

	got, ok := c.get("k")
	require.True(t, ok)
	got[0] = 99

	again, _ := c.get("k")
	assert.Equal(t, 0.1, again[0], "mutating a returned vector must not corrupt the cache")
}

func TestCache_CapacityStopsInsertion(t *testing.T) {
	c := newCache(2)

	for i := 0; i < 5; i++ {
		c.put(fmt.Sprintf("k%d", i), types.Vector{float64(i)})
	}

	size, _, misses := c.stats()
	assert.Equal(t, 2, size, "entries past capacity are not cached")
	assert.Equal(t, int64(5), misses)

	// The first two entries stay; nothing was evicted.
	_, ok := c.get("k0")
	assert.True(t, ok)
	_, ok = c.get("k4")
	assert.False(t, ok)
}

func TestCache_ZeroCapacityCachesNothing(t *testing.T) {
	c := newCache(0)

	c.put("k", types.Vector{1})

	_, ok := c.get("k")
	assert.False(t, ok)
}

func TestCache_ClearResetsEntriesAndCounters(t *testing.T) {
	c := newCache(10)
	c.put("k", types.Vector{1})
	c.get("k")

	c.clear()

	size, hits, misses := c.stats()
	assert.Equal(t, 0, size)
	assert.Equal(t, int64(0), hits)
	assert.Equal(t, int64(0), misses)
}

func TestCacheKey_Deterministic(t *testing.T) {
	assert.Equal(t, cacheKey("python developer"), cacheKey("python developer"))
	assert.NotEqual(t, cacheKey("python developer"), cacheKey("java developer"))
}

func TestCacheKey_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, cacheKey("golang"), cacheKey("  golang \n"))
}
