package introspect

import (
	"reflect"
	"sync"

	autoresolve "github.com/toutaio/toutago-nasc-autoresolve"
)

// abstractionCache caches declared abstractions to avoid repeated method-set checks.
type abstractionCache struct {
	mu      sync.RWMutex
	entries map[reflect.Type][]autoresolve.Abstraction
}

func newAbstractionCache() *abstractionCache {
	return &abstractionCache{
		entries: make(map[reflect.Type][]autoresolve.Abstraction),
	}
}

// getOrCompute returns the cached abstractions for typ, computing them once.
// Callers must not modify the returned slice.
func (c *abstractionCache) getOrCompute(typ reflect.Type, compute func(reflect.Type) []autoresolve.Abstraction) []autoresolve.Abstraction {
	// Fast path: check cache with read lock
	c.mu.RLock()
	abstractions, exists := c.entries[typ]
	c.mu.RUnlock()

	if exists {
		return abstractions
	}

	// Slow path: compute and cache with write lock
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	abstractions, exists = c.entries[typ]
	if exists {
		return abstractions
	}

	abstractions = compute(typ)
	c.entries[typ] = abstractions
	return abstractions
}

func (c *abstractionCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
