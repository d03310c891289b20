package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("APP_PORT", "")
	t.Setenv("REDIS_URI", "")
	t.Setenv("FORM_CACHE_TTL", "")
	t.Setenv("BODY_LIMIT_MB", "")
	t.Setenv("PUBLIC_BASE_URL", "")
	t.Setenv("SEED_DEMO", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8888", cfg.AppPort)
	assert.Equal(t, "FormBuilderDB", cfg.MongoDB)
	assert.Empty(t, cfg.RedisURI)
	assert.Equal(t, 10*time.Minute, cfg.FormCacheTTL)
	assert.Equal(t, 10, cfg.BodyLimitMB)
	assert.Equal(t, "http://localhost:3000", cfg.PublicBaseURL)
	assert.False(t, cfg.SeedDemo)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "forms")
	t.Setenv("REDIS_URI", "redis:6379")
	t.Setenv("FORM_CACHE_TTL", "30s")
	t.Setenv("BODY_LIMIT_MB", "2")
	t.Setenv("ENV", "production")
	t.Setenv("PUBLIC_BASE_URL", "https://forms.example.com")
	t.Setenv("SEED_DEMO", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "forms", cfg.MongoDB)
	assert.Equal(t, "redis:6379", cfg.RedisURI)
	assert.Equal(t, 30*time.Second, cfg.FormCacheTTL)
	assert.Equal(t, 2, cfg.BodyLimitMB)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "https://forms.example.com", cfg.PublicBaseURL)
	assert.True(t, cfg.SeedDemo)
}

func TestFromEnvRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	_, err := FromEnv()
	assert.Error(t, err)
}
