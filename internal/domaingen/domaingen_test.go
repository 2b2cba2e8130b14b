package domaingen

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ProducesUniqueBoundedSet(t *testing.T) {
	candidates := Generate()
	require.NotEmpty(t, candidates)
	assert.LessOrEqual(t, len(candidates), 10*runtime.NumCPU())

	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		_, dup := seen[c]
		assert.False(t, dup, "candidate %q emitted more than once", c)
		seen[c] = struct{}{}
	}
}

type fakeResolver struct {
	positive map[string]bool
	calls    [][]string
}

func (f *fakeResolver) LookupBatch(ctx context.Context, domains []string) []string {
	f.calls = append(f.calls, domains)
	var out []string
	for _, d := range domains {
		if f.positive[d] {
			out = append(out, d)
		}
	}
	return out
}

func TestResolve_ChunksAndFiltersPositive(t *testing.T) {
	resolver := &fakeResolver{positive: map[string]bool{"good.test": true}}
	got := Resolve(context.Background(), resolver, []string{"good.test", "bad.test"})
	assert.Equal(t, []string{"good.test"}, got)
	assert.NotEmpty(t, resolver.calls)
}

func TestRunSeeded_InvokesCrawlForEveryDomain(t *testing.T) {
	domains := []string{"a.test", "b.test", "c.test"}
	visited := make(chan string, len(domains))

	err := RunSeeded(context.Background(), domains, func(ctx context.Context, domain string) error {
		visited <- domain
		return nil
	})
	require.NoError(t, err)
	close(visited)

	got := make(map[string]bool)
	for d := range visited {
		got[d] = true
	}
	for _, d := range domains {
		assert.True(t, got[d])
	}
}
