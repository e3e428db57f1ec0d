package segments

import "sync"

// Cache is a memo store from cache key to token sequence. Entries are
// immutable once written and writes are idempotent (re-tokenizing the same
// key yields the same result), so readers never observe a partially formed
// sequence. The zero value is not usable; construct with NewCache.
//
// The cache never evicts: it grows monotonically until Reset. That is
// acceptable for a bounded editing session; a long-running service embedding
// this package should reset per session or shard caches per worker.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]Token
}

// NewCache creates an empty token cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string][]Token),
	}
}

// Get returns the token sequence stored under key, if any.
func (c *Cache) Get(key string) ([]Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tokens, ok := c.entries[key]
	return tokens, ok
}

// Put stores a token sequence under key. The sequence is copied so later
// caller-side mutations cannot corrupt the cached entry.
func (c *Cache) Put(key string, tokens []Token) {
	stored := make([]Token, len(tokens))
	copy(stored, tokens)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = stored
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops all entries.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]Token)
}
