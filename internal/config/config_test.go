package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "session_id", cfg.Session.CookieName)
	assert.Equal(t, 168*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "subject.graded", cfg.RabbitMQ.SubjectGradedKey)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxUploadSize)
	assert.Contains(t, cfg.CORS.AllowedMethods, "PATCH")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "u",
		Password: "p",
		Name:     "tracker",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://u:p@localhost:5432/tracker?sslmode=disable", cfg.DSN())
}
