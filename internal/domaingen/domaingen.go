// Package domaingen implements C5, the combinatorial domain candidate
// generator: expand (prefix, word, tld) into plausible domains, probe them
// through the DNS cache, and hand positively-resolving ones to the walker
// as depth-0 seeds. Grounded on the original Rust runner's domain
// generation loop (the tlds/prefixes/words tables in tables.go come
// directly from it) and on the teacher's own semaphore-bounded fetcher
// dispatch for the concurrency shape.
package domaingen

import (
	"context"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/semaphore"

	"github.com/ktheindifferent/crawlerd/internal/dnscache"
	"github.com/ktheindifferent/crawlerd/internal/logging"
)

// Generate builds the candidate domain list per spec.md §4.5 steps 1-5:
// for each tld, a shuffled word plus every prefixed variant; for each
// (prefix, tld), the bare combination; a second shuffled-word pass per
// tld; then sort, dedup, and shuffle the whole set, and truncate it to
// 10 * runtime.NumCPU() entries.
//
// The Open Question of whether step 1's and step 3's per-tld emissions
// should be deduplicated against each other is resolved by step 4's own
// dedup pass — both passes feed the same set and are deduplicated
// together, so the combinatorial set is effectively emitted once.
func Generate() []string {
	var candidates []string

	for _, tld := range tlds {
		word := pickRandom(words)
		candidates = append(candidates, word+"."+tld)
		for _, prefix := range prefixes {
			candidates = append(candidates, prefix+"."+word+"."+tld)
		}
	}

	for _, prefix := range prefixes {
		for _, tld := range tlds {
			candidates = append(candidates, prefix+"."+tld)
		}
	}

	for _, tld := range tlds {
		word := pickRandom(words)
		candidates = append(candidates, word+"."+tld)
	}

	candidates = sortedUnique(candidates)
	shuffle(candidates)

	limit := 10 * runtime.NumCPU()
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// Resolve hands candidates to resolver in chunks of N_cpu/2, per spec.md
// §4.5's "generator then hands the candidates in chunks ... to C2 for
// resolution", and returns every positively-resolving domain.
func Resolve(ctx context.Context, resolver dnscache.Resolver, candidates []string) []string {
	chunkSize := runtime.NumCPU() / 2
	if chunkSize < 1 {
		chunkSize = 1
	}

	var resolved []string
	for start := 0; start < len(candidates); start += chunkSize {
		end := start + chunkSize
		if end > len(candidates) {
			end = len(candidates)
		}
		resolved = append(resolved, resolver.LookupBatch(ctx, candidates[start:end])...)
	}
	return resolved
}

// SeedConcurrency is the cap on concurrent depth-0 crawls domain
// generation feeds the walker, per spec.md §4.5's "Concurrency among
// these seeds is capped at N_cpu / 2".
func SeedConcurrency() int64 {
	n := int64(runtime.NumCPU() / 2)
	if n < 1 {
		n = 1
	}
	return n
}

// RunSeeded invokes crawl once for each entry of domains, passing the entry
// unchanged (the service loop passes seed URLs and https://{domain}/ root
// URLs), bounded to SeedConcurrency() concurrent crawls,
// using a golang.org/x/sync/semaphore.Weighted the same way the rest of
// the bounded-parallelism surfaces in this module do.
func RunSeeded(ctx context.Context, domains []string, crawl func(ctx context.Context, domain string) error) error {
	sem := semaphore.NewWeighted(SeedConcurrency())
	log := logging.Default()

	errs := make(chan error, len(domains))
	for _, domain := range domains {
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		go func(d string) {
			defer sem.Release(1)
			if err := crawl(ctx, d); err != nil {
				log.Warnf("domaingen: crawling discovered domain %s: %v", d, err)
				errs <- err
				return
			}
			errs <- nil
		}(domain)
	}

	if err := sem.Acquire(ctx, SeedConcurrency()); err != nil {
		return err
	}
	close(errs)
	return nil
}

// pickRandom and shuffle use math/rand, per spec.md §4.5's own "shuffle
// with a per-iteration RNG" language: domain candidate selection has no
// adversarial input to defend against, so the cheaper, non-cryptographic
// generator is the right fit (see DESIGN.md).
func pickRandom(items []string) string {
	return items[rand.Intn(len(items))]
}

func shuffle(items []string) {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func sortedUnique(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	cp := make([]string, len(in))
	copy(cp, in)
	sort.Strings(cp)
	out := cp[:0]
	var prev string
	first := true
	for _, v := range cp {
		if first || v != prev {
			out = append(out, v)
			prev = v
			first = false
		}
	}
	return out
}
