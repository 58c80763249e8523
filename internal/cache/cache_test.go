package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	c := New()
	c.Set("k", "v", time.Second)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestCache_ExpiredEntryEvictedOnAccess(t *testing.T) {
	c := New()
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("k", "v", time.Second)

	// Still fresh just before the deadline.
	c.now = func() time.Time { return base.Add(900 * time.Millisecond) }
	_, ok := c.Get("k")
	assert.True(t, ok)

	// Past the deadline the entry is gone and removed from storage.
	c.now = func() time.Time { return base.Add(1100 * time.Millisecond) }
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Stats().Total)
}

func TestCache_ZeroValuesAreHits(t *testing.T) {
	c := New()
	c.Set("count", 0, 30*time.Second)
	c.Set("list", []string{}, 30*time.Second)

	v, ok := c.Get("count")
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	v, ok = c.Get("list")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestCache_InvalidatePattern(t *testing.T) {
	c := New()
	c.Set("stars_by_type_savouring:u1", 1, time.Minute)
	c.Set("stars_by_type_kindness:u1", 2, time.Minute)
	c.Set("star_count_by_type_gratitude:u1", 3, time.Minute)

	c.InvalidatePattern("stars_by_type")

	_, ok := c.Get("stars_by_type_savouring:u1")
	assert.False(t, ok)
	_, ok = c.Get("stars_by_type_kindness:u1")
	assert.False(t, ok)

	// The count family shares no substring with "stars_by_type" and stays.
	v, ok := c.Get("star_count_by_type_gratitude:u1")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestCache_Invalidate(t *testing.T) {
	c := New()
	c.Set("a", 1, time.Minute)
	c.Invalidate("a")
	c.Invalidate("missing") // no-op

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_Clear(t *testing.T) {
	c := New()
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Clear()

	assert.Equal(t, 0, c.Stats().Total)
}

func TestCache_Stats(t *testing.T) {
	c := New()
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("fresh", 1, time.Minute)
	c.Set("stale", 2, time.Second)

	c.now = func() time.Time { return base.Add(2 * time.Second) }
	s := c.Stats()
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Valid)
	assert.Equal(t, 1, s.Expired)
}

func TestCache_SetOverwrites(t *testing.T) {
	c := New()
	c.Set("k", "old", time.Minute)
	c.Set("k", "new", time.Minute)

	v, _ := c.Get("k")
	assert.Equal(t, "new", v)
}
