package authz

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCacheTTL is how long a computed status stays fresh unless a TTL
// is supplied per insertion.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	status     Status
	insertedAt time.Time
	ttl        time.Duration
}

// Cache is a process-local, short-TTL map from (user, client IP) to a
// previously computed authorization status. It is a pure performance
// optimization: correctness must hold identically with or without it, so
// entries are evicted lazily on read and dropped wholesale whenever the
// user's role record changes.
//
// Construct one per process and hand it to the Engine; tests construct
// isolated instances with their own TTLs.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	defaultTTL time.Duration
}

// NewCache creates a cache with the given default TTL per entry.
// Non-positive ttl falls back to DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		entries:    make(map[string]cacheEntry),
		defaultTTL: ttl,
	}
}

// cacheKey namespaces entries per user so Invalidate can drop every client
// IP variant with a prefix scan.
func cacheKey(userID uuid.UUID, clientIP string) string {
	return userID.String() + "|" + clientIP
}

// Get returns the cached status for (userID, clientIP) if present and
// fresh. Expired entries are removed on the spot and reported as absent.
func (c *Cache) Get(userID uuid.UUID, clientIP string) (Status, bool) {
	key := cacheKey(userID, clientIP)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return Status{}, false
	}

	if time.Since(entry.insertedAt) >= entry.ttl {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry since the read above.
		if current, still := c.entries[key]; still && time.Since(current.insertedAt) >= current.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return Status{}, false
	}

	return entry.status, true
}

// Set stores a computed status for (userID, clientIP). An optional ttl
// overrides the cache default for this entry only. Concurrent writers for
// the same key are a tolerated race: the values agree and the last
// writer's TTL wins.
func (c *Cache) Set(userID uuid.UUID, clientIP string, status Status, ttl ...time.Duration) {
	entryTTL := c.defaultTTL
	if len(ttl) > 0 && ttl[0] > 0 {
		entryTTL = ttl[0]
	}

	c.mu.Lock()
	c.entries[cacheKey(userID, clientIP)] = cacheEntry{
		status:     status,
		insertedAt: time.Now(),
		ttl:        entryTTL,
	}
	c.mu.Unlock()
}

// Invalidate removes every cached entry for the user, regardless of client
// IP variant. Must be called after any role mutation so stale privilege is
// never served past the mutating request.
func (c *Cache) Invalidate(userID uuid.UUID) {
	prefix := userID.String() + "|"

	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// Len reports the number of stored entries, counting expired ones not yet
// lazily evicted.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
