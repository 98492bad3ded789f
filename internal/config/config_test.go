package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Defaults(t *testing.T) {
	var cfg Server
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowOrigins)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.LoginBurst)
	assert.False(t, cfg.AdminEnabled())
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("MINATGO_ADDR", "127.0.0.1:9000")
	t.Setenv("MINATGO_CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("MINATGO_ADMIN_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("MINATGO_JWT_SECRET", "s")

	var cfg Server
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
	assert.True(t, cfg.AdminEnabled())
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("MINATGO_TOKEN_TTL", "soon")
	var cfg Server
	assert.Error(t, ParseEnv(&cfg))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MINATGO_AMQP_EXCHANGE=from-file\n"), 0o600))

	t.Setenv("MINATGO_AMQP_EXCHANGE", "")
	os.Unsetenv("MINATGO_AMQP_EXCHANGE")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("MINATGO_AMQP_EXCHANGE"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
