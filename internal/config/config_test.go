package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "heal"
dbname = "heal"

[auth]
jwt_secret = "file-secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "Europe/Stockholm", cfg.Booking.Timezone)
	assert.False(t, cfg.RateLimit.TrustProxyHeaders)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, "host=db port=5432 user=heal password= dbname=heal sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "postgres://heal:@db:5432/heal?sslmode=disable", cfg.Database.URL())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[auth]
jwt_secret = "file-secret"
`)
	t.Setenv("HEAL_JWT_SECRET", "env-secret")
	t.Setenv("HEAL_DB_PORT", "6543")
	t.Setenv("HEAL_REDIS_ADDR", "redis:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing secret", ``},
		{"bad timezone", "[auth]\njwt_secret = \"x\"\n[booking]\ntimezone = \"Mars/Base\"\n"},
		{"bad rate limit", "[auth]\njwt_secret = \"x\"\n[ratelimit]\nenabled = true\ncapacity = 0\n"},
	}

	t.Setenv("HEAL_JWT_SECRET", "")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
