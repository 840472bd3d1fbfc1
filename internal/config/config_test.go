package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	// keep $HOME/.config/healthforge out of the lookup
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, filepath.Join(dir, ".local", "share", "healthforge", "prefs"), cfg.Store.Path)
	assert.False(t, cfg.Store.InMemory)
	assert.Equal(t, 500*time.Millisecond, cfg.Processing.MessageInterval)
	assert.Equal(t, 2500*time.Millisecond, cfg.Processing.SettleDelay)
	assert.Equal(t, 20*time.Millisecond, cfg.Processing.CounterInterval)
	assert.True(t, cfg.UI.AltScreen)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
  format: json
store:
  in_memory: true
processing:
  settle_delay: 1s
ui:
  alt_screen: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "healthforge.yaml"), []byte(yaml), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Store.InMemory)
	assert.Equal(t, time.Second, cfg.Processing.SettleDelay)
	assert.False(t, cfg.UI.AltScreen)
	// Defaults still apply for unset values
	assert.Equal(t, 500*time.Millisecond, cfg.Processing.MessageInterval)
}

func TestLoadFromHomeConfigDir(t *testing.T) {
	dir := chdirTemp(t)

	confDir := filepath.Join(dir, ".config", "healthforge")
	require.NoError(t, os.MkdirAll(confDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "healthforge.yaml"), []byte("log:\n  level: warn\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	dir := chdirTemp(t)

	_, err := Load(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "healthforge.yaml"), []byte("log:\n  level: debug\n"), 0644))

	t.Setenv("HEALTHFORGE_LOG_LEVEL", "error")
	t.Setenv("HEALTHFORGE_PROCESSING_SETTLE_DELAY", "10ms")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 10*time.Millisecond, cfg.Processing.SettleDelay)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "healthforge.yaml"), []byte("log: [oops\n"), 0644))

	_, err := Load("")
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	orig := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(orig) })

	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console", Output: "stderr"}))
	assert.True(t, zap.L().Core().Enabled(zap.DebugLevel))

	require.NoError(t, InitLogger(LogConfig{Level: "warn", Format: "json"}))
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))
}

func TestInitLoggerBadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}
