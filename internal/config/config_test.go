package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("WATCHDASH_CONFIG", "")
	chdir(t, t.TempDir())
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "watchdash", "providers"), cfg.Providers.Dir)
	require.Equal(t, 50, cfg.UI.DialogWidth)
	require.Equal(t, 80, cfg.UI.MaxWidthPct)
	require.Equal(t, 70, cfg.UI.MaxHeightPct)
	require.Equal(t, "info", cfg.Log.Level)
	require.True(t, cfg.Watch.Enabled)
	require.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[providers]
dir = "/srv/providers"

[ui]
dialog_width = 60

[log]
level = "DEBUG"

[keys]
close = ["q", "esc"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("WATCHDASH_CONFIG", path)
	t.Setenv("WATCHDASH_UI_MAX_HEIGHT_PCT", "90")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/srv/providers", cfg.Providers.Dir)
	require.Equal(t, 60, cfg.UI.DialogWidth)
	require.Equal(t, 90, cfg.UI.MaxHeightPct)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, []string{"q", "esc"}, cfg.Keys["close"])
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	isolate(t)
	t.Setenv("WATCHDASH_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	cfg := Config{
		Providers: ProvidersConfig{Dir: "/p"},
		UI:        UIConfig{DialogWidth: 50, MaxWidthPct: 80, MaxHeightPct: 70},
		Log:       LogConfig{Path: "/tmp/x.log", Level: "info"},
	}
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.UI.MaxWidthPct = 120
	require.Error(t, bad.Validate())

	bad = cfg
	bad.UI.DialogWidth = 5
	require.Error(t, bad.Validate())

	bad = cfg
	bad.Log.Level = "verbose"
	require.Error(t, bad.Validate())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
