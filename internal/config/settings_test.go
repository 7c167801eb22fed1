package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.False(t, s.Strict)
	assert.Equal(t, "info", s.Log.Level)
	assert.True(t, s.Log.Console)
	assert.Empty(t, s.Log.File)
	assert.Equal(t, ":8080", s.Server.Addr)
	assert.Equal(t, "console", s.Output.Format)
	assert.Equal(t, ".", s.Output.Dir)
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpfin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strict: true
log:
  level: debug
  file: /tmp/corpfin.log
output:
  format: html
`), 0644))
	t.Setenv("CORPFIN_SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("CORPFIN_LOG_LEVEL", "warn")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.True(t, s.Strict)
	assert.Equal(t, "warn", s.Log.Level, "environment wins over the file")
	assert.Equal(t, "127.0.0.1:9090", s.Server.Addr)
	assert.Equal(t, "html", s.Output.Format)

	lc := s.LogConfig()
	assert.True(t, lc.File)
	assert.Equal(t, "/tmp/corpfin.log", lc.FilePath)
	assert.Equal(t, "warn", lc.Level)
}

func TestLoadSettings_ExplicitFileMustExist(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSettings_LogConfigWithoutFile(t *testing.T) {
	s := Settings{Log: LogSettings{Level: "error", Console: false}}
	lc := s.LogConfig()
	assert.False(t, lc.File)
	assert.False(t, lc.Console)
	assert.Equal(t, "error", lc.Level)
}
