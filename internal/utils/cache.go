package utils

import (
	"os"
	"sync"
	"time"
)

// stamp identifies the version of a file a cached value was built from
type stamp struct {
	modTime time.Time
	size    int64
}

type cacheEntry[V any] struct {
	value V
	stamp *stamp
}

// Cache is a concurrent map whose entries can be tied to a file on disk.
// Entries stored with SetWithFileInfo are dropped once the file changes.
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]cacheEntry[V]
}

// NewCache creates an empty cache
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{items: make(map[K]cacheEntry[V])}
}

// Get returns the cached value for key without checking any file
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.items[key]
	return entry.value, ok
}

// GetWithFileValidation returns the cached value only while filePath still has
// the modification time and size recorded when it was stored.
func (c *Cache[K, V]) GetWithFileValidation(key K, filePath string) (V, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if entry.stamp != nil {
		if current, err := statFile(filePath); err == nil && *current == *entry.stamp {
			return entry.value, true
		}
	}

	c.Delete(key)
	return zero, false
}

// Set stores a value with no file association
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry[V]{value: value}
}

// SetWithFileInfo stores a value stamped with filePath's current state
func (c *Cache[K, V]) SetWithFileInfo(key K, value V, filePath string) error {
	st, err := statFile(filePath)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry[V]{value: value, stamp: st}
	return nil
}

// Delete drops key
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear drops every entry
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]cacheEntry[V])
}

// Size returns the number of entries
func (c *Cache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func statFile(path string) (*stamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &stamp{modTime: info.ModTime(), size: info.Size()}, nil
}
