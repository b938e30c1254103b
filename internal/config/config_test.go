package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("BOTGUIDE_CONFIG", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Log.File)
	require.False(t, cfg.Log.JSON)
	require.True(t, cfg.UI.AltScreen)
	require.Zero(t, cfg.UI.Width)
}

func TestLoadDefaultLocation(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "botguide")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(`
[log]
level = "debug"

[ui]
width = 90
`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 90, cfg.UI.Width)
	require.True(t, cfg.UI.AltScreen)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
file = "/tmp/botguide.log"
json = true
show_caller = true

[ui]
alt_screen = false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/botguide.log", cfg.Log.File)
	require.True(t, cfg.Log.JSON)
	require.True(t, cfg.Log.ShowCaller)
	require.False(t, cfg.UI.AltScreen)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BOTGUIDE_LOG_LEVEL", "warn")
	t.Setenv("BOTGUIDE_UI_WIDTH", "72")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 72, cfg.UI.Width)
}

func TestLoadConfigEnvPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0o644))
	t.Setenv("BOTGUIDE_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read config")
}

func TestLoadRejectsNegativeWidth(t *testing.T) {
	isolate(t)
	t.Setenv("BOTGUIDE_UI_WIDTH", "-1")
	_, err := Load("")
	require.ErrorContains(t, err, "ui.width")
}
