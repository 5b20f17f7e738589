package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protox/internal/editor"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.StartMenu)
	assert.True(t, cfg.Confirmations)
	assert.Equal(t, 8.0, cfg.CellWidth)
	assert.Equal(t, 16.0, cfg.CellHeight)
	assert.Equal(t, editor.DefaultSurface, cfg.SurfacePreset())
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "save_directory: " + filepath.Join(dir, "docs") + "\n" +
		"start_menu: false\n" +
		"surface: phone\n" +
		"cell_width: 10\n" +
		"cell_height: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.StartMenu)
	assert.Equal(t, "phone", cfg.SurfacePreset().Name)
	assert.Equal(t, 10.0, cfg.CellWidth)
	assert.Equal(t, 16.0, cfg.CellHeight, "non-positive cell size falls back")

	t.Setenv("PROTOX_SURFACE", "tablet")
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tablet", cfg.SurfacePreset().Name)
}

func TestLoadConfigRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("surface: [unclosed\n"), 0644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestUnknownSurfaceFallsBack(t *testing.T) {
	cfg := defaultConfig()
	cfg.Surface = "watch"
	assert.Equal(t, editor.DefaultSurface, cfg.SurfacePreset())
}

func TestSavePathAndDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "docs")
	cfg := &Config{SaveDirectory: dir}

	assert.Equal(t, filepath.Join(dir, "a.yaml"), cfg.GetSavePath("a.yaml"))
	assert.NoDirExists(t, dir)
	require.NoError(t, cfg.EnsureSaveDirectory())
	assert.DirExists(t, dir)

	assert.Equal(t, "a.yaml", (&Config{}).GetSavePath("a.yaml"))
	assert.NoError(t, (&Config{}).EnsureSaveDirectory())
}

func TestEnsureSaveDirectoryReportsFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	cfg := &Config{SaveDirectory: filepath.Join(file, "docs")}
	assert.ErrorContains(t, cfg.EnsureSaveDirectory(), "create save directory")
}

func TestExpandPathResolvesHome(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "protox", "docs"), expandPath("~/protox/docs"))
	assert.Equal(t, "", expandPath(""))
	assert.True(t, filepath.IsAbs(expandPath("relative/dir")))
}
