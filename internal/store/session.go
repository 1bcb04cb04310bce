package store

import (
	"sync"
	"time"
)

// SessionCache holds blobs that could not (or must not) reach the
// remote store, keyed by partition name. It lives for the process
// lifetime and is the degradation target when the backend is down.
type SessionCache struct {
	mu      sync.RWMutex
	blobs   map[string][]byte
	savedAt map[string]time.Time
}

// NewSessionCache creates an empty cache.
func NewSessionCache() *SessionCache {
	return &SessionCache{
		blobs:   make(map[string][]byte),
		savedAt: make(map[string]time.Time),
	}
}

// Put stores a copy of data under name, replacing any previous blob.
func (c *SessionCache) Put(name string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	blob := make([]byte, len(data))
	copy(blob, data)
	c.blobs[name] = blob
	c.savedAt[name] = time.Now()
}

// Get returns the blob stored under name.
func (c *SessionCache) Get(name string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	blob, ok := c.blobs[name]
	return blob, ok
}

// Names returns the cached partition names.
func (c *SessionCache) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.blobs))
	for name := range c.blobs {
		names = append(names, name)
	}
	return names
}

// SavedAt returns when name was last written to the cache.
func (c *SessionCache) SavedAt(name string) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ts, ok := c.savedAt[name]
	return ts, ok
}
