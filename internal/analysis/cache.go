// Package analysis memoizes scan results per document revision, so repeated
// analysis of an unchanged document is free.
package analysis

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/colorpeek/colorpeek/internal/documents"
	"github.com/colorpeek/colorpeek/internal/scanner"
)

// ScanFunc computes the occurrences for a document. The cache owns when it
// runs; callers inject the real scanner (or a counting stub in tests).
type ScanFunc func(doc *documents.Document) ([]scanner.Occurrence, error)

type entry struct {
	version     int
	occurrences []scanner.Occurrence
}

// Cache maps document identity to the occurrences computed at a given
// revision. A stored entry is served as-is while the revision matches and
// recomputed when it differs. Concurrent requests for the same document and
// revision are coalesced through a singleflight group, so a second caller
// receives the same eventual result instead of triggering a duplicate scan;
// the in-flight computation is removed once it settles either way.
//
// A failed scan never replaces a previous entry: the cache updates only
// after a scan fully completes, and the error propagates to that one caller.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group
	scan    ScanFunc
}

// NewCache creates a Cache around the given scan function.
func NewCache(scan ScanFunc) *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		scan:    scan,
	}
}

// Analyze returns the occurrences for the document at its current revision,
// computing and storing them if the cached entry is missing or stale.
func (c *Cache) Analyze(doc *documents.Document) ([]scanner.Occurrence, error) {
	uri := doc.URI()
	version := doc.Version()

	c.mu.RLock()
	e := c.entries[uri]
	c.mu.RUnlock()
	if e != nil && e.version == version {
		return e.occurrences, nil
	}

	key := fmt.Sprintf("%s@%d", uri, version)
	v, err, _ := c.group.Do(key, func() (any, error) {
		occurrences, err := c.scan(doc)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[uri] = &entry{version: version, occurrences: occurrences}
		c.mu.Unlock()
		return occurrences, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]scanner.Occurrence), nil
}

// Cached returns the stored occurrences for a document identity without
// recomputing, along with the revision they were computed at.
func (c *Cache) Cached(uri string) ([]scanner.Occurrence, int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.entries[uri]; ok {
		return e.occurrences, e.version, true
	}
	return nil, 0, false
}

// Remove drops the entry for a document identity. Called when the document
// closes.
func (c *Cache) Remove(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, uri)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
