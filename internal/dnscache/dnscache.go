// Package dnscache implements C2, the persistent positive/negative domain
// resolvability cache the domain generator (C5) consults before handing a
// candidate domain to the walker. This is a distinct concern from the
// dial-level connection cache in internal/fetch: that one memoizes
// outbound TCP dials for a fetcher that already knows its target is worth
// fetching; this one remembers whether a *candidate* domain resolves at
// all, and persists that verdict to disk across runs, the way the teacher
// persists nothing but the spirit of its own dnscache.Resolver matches:
// cache first, fall back to resolution, remember the result.
package dnscache

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"sync"

	"github.com/ktheindifferent/crawlerd/internal/logging"
)

// Resolver is the DNS cache contract from spec.md §4.2.
type Resolver interface {
	// LookupBatch resolves each of domains, consulting and updating the
	// cache, and returns the subset whose verdict is positive. Lookups
	// within the batch may run concurrently.
	LookupBatch(ctx context.Context, domains []string) []string
}

// Cache is a JSON-file-backed positive/negative resolvability map.
type Cache struct {
	path string
	log  logging.Logger

	mu      sync.Mutex
	entries map[string]bool
	dirty   bool
}

// Load opens the cache file at path, treating a missing file as an empty
// map per spec.md §4.2.
func Load(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[string]bool), log: logging.Default()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		return nil, err
	}
	return c, nil
}

// LookupBatch implements Resolver.
func (c *Cache) LookupBatch(ctx context.Context, domains []string) []string {
	type outcome struct {
		domain string
		ok     bool
	}

	toResolve := make([]string, 0, len(domains))
	results := make(map[string]bool, len(domains))

	c.mu.Lock()
	for _, d := range domains {
		if v, ok := c.entries[d]; ok {
			results[d] = v
		} else {
			toResolve = append(toResolve, d)
		}
	}
	c.mu.Unlock()

	if len(toResolve) > 0 {
		out := make(chan outcome, len(toResolve))
		var wg sync.WaitGroup
		for _, d := range toResolve {
			wg.Add(1)
			go func(domain string) {
				defer wg.Done()
				out <- outcome{domain: domain, ok: c.resolve(ctx, domain)}
			}(d)
		}
		go func() {
			wg.Wait()
			close(out)
		}()

		c.mu.Lock()
		for o := range out {
			c.entries[o.domain] = o.ok
			results[o.domain] = o.ok
			c.dirty = true
		}
		c.mu.Unlock()

		if err := c.persist(); err != nil {
			c.log.Warnf("dnscache: failed to persist %s: %v", c.path, err)
		}
	}

	positive := make([]string, 0, len(domains))
	for _, d := range domains {
		if results[d] {
			positive = append(positive, d)
		}
	}
	return positive
}

func (c *Cache) resolve(ctx context.Context, domain string) bool {
	_, err := net.DefaultResolver.LookupHost(ctx, domain)
	return err == nil
}

// persist serializes the full map to disk if it has changed since the last
// persist, per spec.md §4.2's "on any batch that produced new entries"
// rule.
func (c *Cache) persist() error {
	c.mu.Lock()
	if !c.dirty {
		c.mu.Unlock()
		return nil
	}
	data, err := json.Marshal(c.entries)
	c.dirty = false
	c.mu.Unlock()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(c.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}
