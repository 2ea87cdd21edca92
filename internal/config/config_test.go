package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximvlah/ntf/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, "natif", cfg.Batch.Adapter)
	assert.Equal(t, 100, cfg.Batch.MaxDocuments)
	assert.Equal(t, 0, cfg.Batch.Concurrency)

	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "work", cfg.Storage.WorkDir)
	assert.Equal(t, "artifacts", cfg.Storage.ArtifactDir)

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NTF_SERVER_PORT", ":9090")
	t.Setenv("NTF_SERVER_ENVIRONMENT", "production")
	t.Setenv("NTF_BATCH_MAX_DOCUMENTS", "25")
	t.Setenv("NTF_BATCH_CONCURRENCY", "4")
	t.Setenv("NTF_STORAGE_ARTIFACT_DIR", "/var/lib/ntf/artifacts")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, 25, cfg.Batch.MaxDocuments)
	assert.Equal(t, 4, cfg.Batch.Concurrency)
	assert.Equal(t, "/var/lib/ntf/artifacts", cfg.Storage.ArtifactDir)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Port)
}

func TestLoad_PlatformPortNotOverridingExplicit(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("NTF_SERVER_PORT", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_CORSOriginList(t *testing.T) {
	t.Setenv("NTF_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com,")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		cfg.CORS.AllowedOrigins)
}
