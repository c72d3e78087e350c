// Package cache is a small TTL cache for rendered responses.
package cache

import (
	"sync"
	"time"
)

// Timed is a byte cache whose entries expire after a fixed TTL. It is safe
// for concurrent use.
type Timed struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry
}

// entry holds a timestamped value to save.
type entry struct {
	value   []byte
	created time.Time
}

// NewTimed creates a Timed cache whose elements expire ttl after insertion.
func NewTimed(ttl time.Duration) *Timed {
	return &Timed{
		ttl:   ttl,
		items: make(map[string]entry),
	}
}

// Set assigns a value to a key.
func (c *Timed) Set(key string, val []byte) {
	c.set(key, val, time.Now())
}

// set performs Set's work with the wall clock factored out.
func (c *Timed) set(key string, val []byte, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{
		value:   val,
		created: now,
	}
}

// Get retrieves a value for a key. The value may not exist or may have
// expired, in which case ok is false. Expired entries are dropped on
// lookup.
func (c *Timed) Get(key string) (value []byte, ok bool) {
	return c.get(key, time.Now())
}

// get is like set in that the time is factored out.
func (c *Timed) get(key string, now time.Time) (value []byte, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if elapsed := now.Sub(el.created); elapsed > c.ttl {
		delete(c.items, key)
		return nil, false
	}
	return el.value, true
}
