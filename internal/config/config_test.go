package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
env: prod
http_server:
  address: ":9000"
  read_timeout: 5s
  allowed_origins: ["http://billed.local"]
database:
  driver: sqlite
  path: /tmp/billed.db
auth:
  jwt_secret: s3cret
  token_ttl: 1h
uploads:
  dir: /tmp/uploads
  base_url: http://billed.local/public
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9000", cfg.Address)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.Equal(t, []string{"http://billed.local"}, cfg.AllowedOrigins)
	assert.Equal(t, "/tmp/billed.db", cfg.Path)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "http://billed.local/public", cfg.BaseURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_PATH", "/var/lib/billed.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "sqlite", cfg.Driver)
	assert.Equal(t, "/var/lib/billed.db", cfg.Path)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadRejectsBadDatabase(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		path := writeConfig(t, "auth:\n  jwt_secret: x\ndatabase:\n  driver: mysql\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("postgres without url", func(t *testing.T) {
		path := writeConfig(t, "auth:\n  jwt_secret: x\ndatabase:\n  driver: postgres\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoadRequiresSecret(t *testing.T) {
	path := writeConfig(t, "env: local\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadClientDefaults(t *testing.T) {
	t.Setenv("BILLED_API_URL", "http://api.billed.local")

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "http://api.billed.local", cfg.APIURL)
	assert.Equal(t, "./data/local.db", cfg.LocalStorage)
}
