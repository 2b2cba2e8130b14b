package dnscache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsEmptyMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, c.entries)
}

func TestCache_CachedVerdictsAreNotReResolved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dns.json")
	c, err := Load(path)
	require.NoError(t, err)

	c.mu.Lock()
	c.entries["good.test"] = true
	c.entries["bad.test"] = false
	c.mu.Unlock()

	positive := c.LookupBatch(context.Background(), []string{"good.test", "bad.test"})
	assert.Equal(t, []string{"good.test"}, positive)
}

func TestCache_PersistsOnNewEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dns.json")
	c, err := Load(path)
	require.NoError(t, err)

	c.mu.Lock()
	c.entries["seed.test"] = true
	c.dirty = true
	c.mu.Unlock()
	require.NoError(t, c.persist())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk map[string]bool
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, true, onDisk["seed.test"])
}
