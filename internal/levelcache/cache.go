// Package levelcache keeps a bounded set of levels keyed by depth. Eviction
// picks victims relative to the depth the player currently occupies rather
// than by recency.
package levelcache

import (
	"slices"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// DefaultCapacity is the number of levels kept resident
const DefaultCapacity = 10

// EvictionPolicy chooses which resident depth to drop. It must never return
// current. ok is false when nothing can be evicted.
type EvictionPolicy func(resident []int, current int) (victim int, ok bool)

// FarthestFromCurrent evicts the depth with the largest distance from
// current. Between two equally distant depths the shallower one goes first.
func FarthestFromCurrent(resident []int, current int) (int, bool) {
	victim, best, found := 0, -1, false
	for _, depth := range resident {
		if depth == current {
			continue
		}
		dist := depth - current
		if dist < 0 {
			dist = -dist
		}
		if dist > best || (dist == best && depth < victim) {
			victim, best, found = depth, dist, true
		}
	}
	return victim, found
}

// Cache holds at most Capacity values between calls to Evict. It is not
// safe for concurrent use.
type Cache[V any] struct {
	capacity int
	policy   EvictionPolicy
	entries  map[int]V
}

// New creates a cache. A nil policy uses FarthestFromCurrent.
func New[V any](capacity int, policy EvictionPolicy) (*Cache[V], error) {
	if capacity < 1 {
		return nil, errors.InvalidArgumentf("capacity must be at least 1, got %d", capacity)
	}
	if policy == nil {
		policy = FarthestFromCurrent
	}
	return &Cache[V]{
		capacity: capacity,
		policy:   policy,
		entries:  make(map[int]V, capacity+1),
	}, nil
}

// Capacity returns the configured bound
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Get returns the value stored for depth
func (c *Cache[V]) Get(depth int) (V, bool) {
	v, ok := c.entries[depth]
	return v, ok
}

// Has reports whether depth is resident
func (c *Cache[V]) Has(depth int) bool {
	_, ok := c.entries[depth]
	return ok
}

// Put stores v for depth, replacing any previous value. The bound is only
// enforced by Evict so a transition can hold both levels at once.
func (c *Cache[V]) Put(depth int, v V) {
	c.entries[depth] = v
}

// Remove drops depth, reporting whether it was resident
func (c *Cache[V]) Remove(depth int) bool {
	if _, ok := c.entries[depth]; !ok {
		return false
	}
	delete(c.entries, depth)
	return true
}

// Len returns the number of resident levels
func (c *Cache[V]) Len() int {
	return len(c.entries)
}

// Depths returns the resident depths in ascending order
func (c *Cache[V]) Depths() []int {
	depths := make([]int, 0, len(c.entries))
	for d := range c.entries {
		depths = append(depths, d)
	}
	slices.Sort(depths)
	return depths
}

// Evict drops levels chosen by the policy until the cache is within
// capacity, never dropping current. It returns the evicted depths in the
// order they were removed.
func (c *Cache[V]) Evict(current int) []int {
	var evicted []int
	for len(c.entries) > c.capacity {
		victim, ok := c.policy(c.Depths(), current)
		if !ok || victim == current || !c.Has(victim) {
			break
		}
		delete(c.entries, victim)
		evicted = append(evicted, victim)
	}
	return evicted
}

// Clear drops every level except keep
func (c *Cache[V]) Clear(keep int) {
	for d := range c.entries {
		if d != keep {
			delete(c.entries, d)
		}
	}
}
