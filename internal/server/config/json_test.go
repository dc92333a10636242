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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr":       "www.example:9000",
		"data_dir":            "/var/lib/foliovault",
		"database_dsn":        "postgres://localhost/folio",
		"token_secret":        "my_secret_key",
		"token_expiry":        "24h",
		"auth_encryption_key": "auth_key",
		"db_encryption_key":   "db_key",
		"admin_email":         "ops@example.com",
		"shutdown_timeout":    "10s",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
		assert.Equal(t, "/var/lib/foliovault", cfg.DataDir)
		assert.Equal(t, "postgres://localhost/folio", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.TokenSecret)
		assert.Equal(t, "24h", cfg.TokenExpiry)
		assert.Equal(t, "auth_key", cfg.AuthEncryptionKey)
		assert.Equal(t, "db_key", cfg.DBEncryptionKey)
		assert.Equal(t, "ops@example.com", cfg.AdminEmail)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddr: "defaults:1234", TokenSecret: "key"}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddr)
		assert.Equal(t, "key", cfg.TokenSecret)
	})

	t.Run("missing fields keep previous values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"endpoint_addr": ":7070",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, ":7070", cfg.EndpointAddr)
		assert.Equal(t, "7d", cfg.TokenExpiry)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
