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

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvStartDate, EnvSpreadsheetID, EnvSheetName, EnvCredentialsFile, EnvSnapshotPath, EnvLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	clearEnv(t)

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.True(t, env.StartDate.IsZero())
	assert.Equal(t, "Sheet1", env.SheetName)
	assert.Equal(t, SpreadsheetID, env.SpreadsheetID)
	assert.Equal(t, slog.LevelInfo, env.LogLevel)
}

func TestLoadEnv_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "HABIT_START_DATE=2026-10-01\nHABIT_SPREADSHEET_ID=abc\nHABIT_LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(EnvSheetName, "FromProcess")

	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), env.StartDate)
	assert.Equal(t, "abc", env.SpreadsheetID)
	assert.Equal(t, "FromProcess", env.SheetName)
	assert.Equal(t, slog.LevelDebug, env.LogLevel)
}

func TestLoadEnv_BadValues(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Setenv(EnvStartDate, "01/10/2026")
	_, err := LoadEnv(missing)
	assert.ErrorContains(t, err, EnvStartDate)

	t.Setenv(EnvStartDate, "")
	t.Setenv(EnvLogLevel, "chatty")
	_, err = LoadEnv(missing)
	assert.ErrorContains(t, err, EnvLogLevel)
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" INFO ": slog.LevelInfo,
		"warn":   slog.LevelWarn,
		"error":  slog.LevelError,
	} {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
