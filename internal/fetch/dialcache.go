// Package fetch performs the single HTTP GET per URL that spec.md §4.3
// describes (C3's "Fetcher" half; token/link extraction is
// internal/tokenize's "Parser" half). The outbound dial path is wrapped
// with an LRU DNS dial cache, adapted directly from the teacher's
// dnscache package (github.com/iParadigms/walker/dnscache) — that package
// solves outbound-connection caching, a different problem from C2's
// persistent positive/negative domain cache (internal/dnscache), so it is
// kept here rather than merged with it. See DESIGN.md.
package fetch

import (
	"net"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// dialCache wraps a net.Dial-shaped function with an LRU cache of DNS
// resolutions, blacklisting hosts that recently failed to connect.
type dialCache struct {
	wrapped func(network, addr string) (net.Conn, error)
	cache   *lru.Cache
	mu      sync.RWMutex
}

type hostRecord struct {
	addr        string
	blacklisted bool
	err         error
	lastQuery   time.Time
}

// newDialCache builds a caching Dial function with room for maxEntries
// hosts. If wrapped is nil, net.Dial is used.
func newDialCache(wrapped func(network, addr string) (net.Conn, error), maxEntries int) (func(network, addr string) (net.Conn, error), error) {
	if wrapped == nil {
		wrapped = net.Dial
	}
	cache, err := lru.New(maxEntries)
	if err != nil {
		return nil, err
	}
	dc := &dialCache{wrapped: wrapped, cache: cache}
	return dc.dial, nil
}

func (dc *dialCache) dial(network, addr string) (net.Conn, error) {
	key := network + addr
	dc.mu.RLock()
	if entryRaw, ok := dc.cache.Get(key); ok {
		rec := entryRaw.(hostRecord)
		if time.Since(rec.lastQuery) > 5*time.Minute {
			dc.mu.RUnlock()
			return dc.refresh(network, addr)
		}
		if rec.blacklisted {
			err := rec.err
			dc.mu.RUnlock()
			return nil, err
		}
		dc.mu.RUnlock()
		return dc.wrapped(network, rec.addr)
	}
	dc.mu.RUnlock()
	return dc.refresh(network, addr)
}

func (dc *dialCache) refresh(network, addr string) (net.Conn, error) {
	key := network + addr
	conn, err := dc.wrapped(network, addr)
	now := time.Now()
	dc.mu.Lock()
	defer dc.mu.Unlock()
	if err != nil {
		dc.cache.Add(key, hostRecord{blacklisted: true, err: err, lastQuery: now})
		return nil, err
	}
	dc.cache.Add(key, hostRecord{addr: conn.RemoteAddr().String(), lastQuery: now})
	return conn, nil
}
