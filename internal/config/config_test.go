package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.NotEmpty(t, cfg.MediaRoot)
	assert.Equal(t, 60*time.Minute, cfg.TokenTTL())
}

func TestValidate(t *testing.T) {
	base := Config{
		Port:            "8000",
		JWTSecret:       "dev-secret-change-in-production",
		TokenTTLMinutes: 60,
		MediaRoot:       "./data/media",
		DBPassword:      "postgres",
	}

	t.Run("development defaults pass", func(t *testing.T) {
		cfg := base
		cfg.Env = "development"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing secret fails", func(t *testing.T) {
		cfg := base
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive TTL fails", func(t *testing.T) {
		cfg := base
		cfg.TokenTTLMinutes = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects short secret", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		cfg.DBPassword = "s3cureP@ss"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production with strong values passes", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "0123456789abcdef0123456789abcdef"
		cfg.DBPassword = "s3cureP@ss"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}
