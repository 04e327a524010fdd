package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ".", cfg.DefaultDir)
	assert.Equal(t, 4, cfg.GridColumns)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.BookmarkFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().GridColumns, cfg.GridColumns)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "default_dir: /data/images\ngrid_columns: 6\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/images", cfg.DefaultDir)
	assert.Equal(t, 6, cfg.GridColumns)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset fields keep their defaults.
	assert.Equal(t, Default().BookmarkFile, cfg.BookmarkFile)
}

func TestLoadFileInvalidColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid_columns: 7\n"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t:::"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestValidateLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}
