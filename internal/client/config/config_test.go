package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.NotEmpty(t, cfg.BaseURL)
	assert.Equal(t, "session.json", cfg.SessionFile)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"base_url":                "http://localhost:8080/api",
		"session_file":            "/tmp/pathshala-session.json",
		"request_timeout_seconds": 10,
	})

	t.Run("loads from file given by flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL)
		assert.Equal(t, "/tmp/pathshala-session.json", cfg.SessionFile)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{BaseURL: "http://kept/api", SessionFile: "kept.json", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "http://kept/api", cfg.BaseURL)
		assert.Equal(t, "kept.json", cfg.SessionFile)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("partial file keeps defaults for absent fields", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"base_url": "http://only-url/api"})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://only-url/api", cfg.BaseURL)
		assert.Equal(t, "session.json", cfg.SessionFile)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("flags override current values", func(t *testing.T) {
		os.Args = []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-s", "other.json", "-t", "10"}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NotPanics(t, func() { parseFlags(cfg) })

		assert.Equal(t, "http://127.0.0.1:9090/api", cfg.BaseURL)
		assert.Equal(t, "other.json", cfg.SessionFile)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("bad timeout value panics", func(t *testing.T) {
		os.Args = []string{"cmd", "-t", "abc"}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseFlags(cfg) })
	})
}
