package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"APP_ENV", "ENV", "DATABASE_URL", "HOST", "PORT", "CURRENT_USER_ID",
		"CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT", "DB_DEBUG",
	} {
		t.Setenv(name, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "/tmp/test.db", cfg.DatabaseURL)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, int64(1), cfg.CurrentUserID)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.DBDebug)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "Production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/starwars")
	t.Setenv("PORT", "8080")
	t.Setenv("CURRENT_USER_ID", "7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DB_DEBUG", "yes")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://u:p@db:5432/starwars", cfg.DatabaseURL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(7), cfg.CurrentUserID)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.DBDebug)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"PORT":             "abc",
		"CURRENT_USER_ID":  "0",
		"SHUTDOWN_TIMEOUT": "-1s",
	}

	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(name, value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
