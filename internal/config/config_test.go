package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huy16/sheetpeek/pkg/sheetpeek"
	"github.com/huy16/sheetpeek/pkg/sheetpeek/output"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvRows, EnvMaxCols, EnvFormat, EnvEngine, EnvEncoding, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 10, cfg.Rows)
	assert.Equal(t, output.FormatText, cfg.Format)
	assert.Equal(t, sheetpeek.EngineAuto, cfg.Engine)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRows, "20")
	t.Setenv(EnvMaxCols, "4")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvEngine, "stream")
	t.Setenv(EnvEncoding, "windows-1252")
	t.Setenv(EnvLogLevel, "debug")

	cfg := FromEnv()
	assert.Equal(t, 20, cfg.Rows)
	assert.Equal(t, 4, cfg.MaxCols)
	assert.Equal(t, output.FormatJSON, cfg.Format)
	assert.Equal(t, sheetpeek.EngineStream, cfg.Engine)
	assert.Equal(t, "windows-1252", cfg.Encoding)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestFromEnvInvalidKeepsDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRows, "ten")
	t.Setenv(EnvMaxCols, "-3")
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvEngine, "pandas")
	t.Setenv(EnvLogLevel, "loud")

	assert.Equal(t, Default(), FromEnv())
}

func TestFromEnvRowsMustBePositive(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRows, "0")
	assert.Equal(t, 10, FromEnv().Rows)
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvRows)
	os.Unsetenv(EnvFormat)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SHEETPEEK_ROWS=7\nSHEETPEEK_FORMAT=markdown\n"), 0644))
	t.Chdir(dir)

	cfg := Load()
	assert.Equal(t, 7, cfg.Rows)
	assert.Equal(t, output.FormatMarkdown, cfg.Format)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	assert.Equal(t, Default(), Load())
}
