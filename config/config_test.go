package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	var testCases = []struct {
		description string
		content     string
		expect      StoreConfig
		level       string
		hasError    bool
	}{
		{
			description: "full config",
			content: `
store:
  path: /var/lib/vecstore/docs.db
  mode: keep
  codec: binary
  wal: true
  busyTimeoutMs: 250
log:
  level: debug
  format: json
`,
			expect: StoreConfig{Path: "/var/lib/vecstore/docs.db", Mode: "keep", Codec: "binary", WAL: true, BusyTimeoutMS: 250},
			level:  "debug",
		},
		{
			description: "partial config keeps defaults",
			content: `
store:
  path: docs.db
`,
			expect: StoreConfig{Path: "docs.db", Mode: "reset", Codec: "json", BusyTimeoutMS: 5000},
			level:  "warn",
		},
		{
			description: "unknown mode",
			content:     "store:\n  mode: append\n",
			hasError:    true,
		},
		{
			description: "unknown codec",
			content:     "store:\n  codec: gob\n",
			hasError:    true,
		},
		{
			description: "bad log level",
			content:     "log:\n  level: loud\n",
			hasError:    true,
		},
		{
			description: "malformed yaml",
			content:     "store: [",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testCase.content), 0o644))
		cfg, err := Load(path)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, cfg.Store, testCase.description)
		assert.Equal(t, testCase.level, cfg.Log.Level, testCase.description)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDB, "/tmp/override.db")
	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "/tmp/override.db", cfg.Store.Path)
}
