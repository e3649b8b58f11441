package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Http.Addr)
	assert.Equal(t, "./LISTADO_PELIS.xlsx", cfg.Catalog.Autoload)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Clients.AI.Model)
	assert.Equal(t, time.Duration(0), cfg.Clients.AI.Timeout)
	assert.Equal(t, 32*1024*1024, cfg.BodyLimit())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CATALOG_HEADER_ROW", "true")
	t.Setenv("AI_TIMEOUT", "15s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Http.Addr)
	assert.True(t, cfg.Catalog.HeaderRow)
	assert.Equal(t, 15*time.Second, cfg.Clients.AI.Timeout)
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CATALOG_ASSET_ROOT=/srv/assets\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CATALOG_ASSET_ROOT") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/assets", cfg.Catalog.AssetRoot)
}

func TestLoadMissingDotenv(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
