package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	orig := ConfigName
	defer func() { ConfigName = orig }()

	ConfigName = filepath.Join(t.TempDir(), "missing.yaml")
	require.NoError(t, Load())
	assert.Equal(t, "crawlerd", Config.Cassandra.Keyspace)
	assert.Equal(t, []string{"localhost"}, Config.Cassandra.Hosts)
}

func TestAssertConfigInvariants_RejectsBadTimeout(t *testing.T) {
	SetDefaultConfig()
	Config.HTTPTimeout = "not-a-duration"
	err := assertConfigInvariants()
	assert.Error(t, err)
}
