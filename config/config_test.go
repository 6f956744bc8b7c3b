package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "8080", c.ApiPort)
	assert.Equal(t, "sqlite3", c.Database)
	assert.Equal(t, "/static/", c.StaticPrefix)
	assert.Equal(t, "images/", c.ImagePrefix)
	assert.Equal(t, "exports", c.ExportDir)
	assert.Equal(t, "data.json", c.SeedFile)
	assert.True(t, c.SeedOnStart)
	assert.Equal(t, []string{"*"}, c.CorsOrigins)
	assert.Equal(t, "/static", c.StaticRoute())
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"api_port": "9090",
		"database": "postgresql",
		"static_prefix": "/assets",
		"cors_origins": ["http://localhost:3000"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("PRODUCTLIB_EXPORT_DIR", "/tmp/dumps")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", c.ApiPort)
	assert.Equal(t, "postgres", c.Database)
	assert.Equal(t, "/assets/", c.StaticPrefix)
	assert.Equal(t, "/assets", c.StaticRoute())
	assert.Equal(t, "/tmp/dumps", c.ExportDir)
	assert.Equal(t, []string{"http://localhost:3000"}, c.CorsOrigins)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_port": `), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
