package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("assets", "data", "data.json"), cfg.Data.Source)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.True(t, cfg.Display.Progress)
	assert.False(t, cfg.Display.NoBanner)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joblens.yaml")
	body := `
data:
  source: https://example.com/jobs.json
store:
  backend: redis
  redis_url: redis://localhost:6379/0
display:
  no_banner: true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/jobs.json", cfg.Data.Source)
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Store.RedisURL)
	assert.True(t, cfg.Display.NoBanner)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joblens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  source: from-file.json\n"), 0644))

	t.Setenv("JOBLENS_DATA_SOURCE", "from-env.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.Data.Source)
}

func TestLoadInvalidBackend(t *testing.T) {
	t.Setenv("JOBLENS_STORE_BACKEND", "postgres")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid store backend")
}

func TestLoadRedisWithoutURL(t *testing.T) {
	t.Setenv("JOBLENS_STORE_BACKEND", "redis")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis_url")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joblens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidBackend(t *testing.T) {
	assert.True(t, ValidBackend("file"))
	assert.True(t, ValidBackend("redis"))
	assert.False(t, ValidBackend(""))
	assert.False(t, ValidBackend("sqlite"))
}
