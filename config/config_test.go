package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CMDFOLDER_HOME", "")
	dir := t.TempDir()
	cfg, err := LoadFile(filepath.Join(dir, FileName), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "cmdfolder.log"), cfg.LogFile)
	assert.Equal(t, "terminal-commands", cfg.Namespace)
	assert.Equal(t, 2*time.Second, cfg.ToastDuration())
}

func TestLoadFile_Values(t *testing.T) {
	t.Setenv("CMDFOLDER_HOME", "")
	dataDir := t.TempDir()
	path := writeConfig(t, `
data_dir = "`+dataDir+`"
backend = "json"
namespace = "work"
log_level = "debug"
toast_seconds = 5
`)

	cfg, err := LoadFile(path, "/unused")
	require.NoError(t, err)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, "work", cfg.Namespace)
	assert.Equal(t, filepath.Join(dataDir, "cmdfolder.log"), cfg.LogFile)
	assert.Equal(t, 5*time.Second, cfg.ToastDuration())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv("CMDFOLDER_BACKEND", "json")
	t.Setenv("CMDFOLDER_LOG_LEVEL", "error")

	path := writeConfig(t, `backend = "sqlite"`)
	cfg, err := LoadFile(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadFile_HomeEnvOverridesDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CMDFOLDER_HOME", home)

	path := writeConfig(t, `data_dir = "/tmp/elsewhere"`)
	cfg, err := LoadFile(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, home, cfg.DataDir)
	assert.Equal(t, filepath.Join(home, "cmdfolder.log"), cfg.LogFile)
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Setenv("CMDFOLDER_HOME", "")
	tests := []struct {
		name string
		body string
	}{
		{"bad backend", `backend = "redis"`},
		{"bad level", `log_level = "loud"`},
		{"bad toast", `toast_seconds = 0`},
		{"bad syntax", `backend = `},
		{"wrong type", `toast_seconds = "two"`},
		{"empty data dir", `data_dir = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body), t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestHomeDir(t *testing.T) {
	t.Setenv("CMDFOLDER_HOME", "/tmp/cmdfolder-test")
	dir, err := HomeDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cmdfolder-test", dir)
}

func TestLoad_UsesHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CMDFOLDER_HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`namespace = "home"`), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "home", cfg.Namespace)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x"), expandHome("~/x"))
	assert.Equal(t, "/abs", expandHome("/abs"))
}
