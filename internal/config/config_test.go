package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORAGE_BACKEND", "FS")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("SHARED_LINK_MODE", "public")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "fs", cfg.Storage.Backend)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, SharedLinkPublic, cfg.Documents.SharedLinkMode)
	assert.Equal(t, "postgres", cfg.RegistryBackend)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHARED_LINK_MODE", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, SharedLinkAuthenticated, cfg.Documents.SharedLinkMode)
	assert.Equal(t, 10*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, time.Hour, cfg.Documents.ShareLinkTTL)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
}

func TestSharedLinkMode(t *testing.T) {
	assert.Equal(t, SharedLinkDisabled, sharedLinkMode(" Disabled "))
	assert.Equal(t, SharedLinkPublic, sharedLinkMode("public"))
	assert.Equal(t, SharedLinkAuthenticated, sharedLinkMode("whatever"))
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_DURATION_VAR"

	t.Setenv(key, "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration(key, time.Minute))

	t.Setenv(key, "soon")
	assert.Equal(t, time.Minute, getEnvDuration(key, time.Minute))
}
