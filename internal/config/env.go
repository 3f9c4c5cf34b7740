package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ytget/habit-tracker/internal/model"
	"github.com/ytget/habit-tracker/internal/storage"
)

// SpreadsheetID is the remote spreadsheet of this deployment.
// Set during build via -ldflags "-X github.com/ytget/habit-tracker/internal/config.SpreadsheetID=...".
var SpreadsheetID string

// Environment variable names
const (
	EnvStartDate       = "HABIT_START_DATE"
	EnvSpreadsheetID   = "HABIT_SPREADSHEET_ID"
	EnvSheetName       = "HABIT_SHEET_NAME"
	EnvCredentialsFile = "HABIT_CREDENTIALS_FILE"
	EnvSnapshotPath    = "HABIT_SNAPSHOT_PATH"
	EnvLogLevel        = "HABIT_LOG_LEVEL"
)

// Env is the process configuration read from .env and the environment.
type Env struct {
	StartDate       time.Time // zero means first use
	SpreadsheetID   string
	SheetName       string
	CredentialsFile string
	SnapshotPath    string
	LogLevel        slog.Level
}

// LoadEnv reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
func LoadEnv(files ...string) (*Env, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not read .env file, using environment variables", "error", err)
	}

	env := &Env{
		SpreadsheetID:   getEnv(EnvSpreadsheetID, SpreadsheetID),
		SheetName:       getEnv(EnvSheetName, storage.DefaultSheetName),
		CredentialsFile: getEnv(EnvCredentialsFile, ""),
		SnapshotPath:    getEnv(EnvSnapshotPath, ""),
	}

	if raw := getEnv(EnvStartDate, ""); raw != "" {
		start, err := time.Parse(model.DateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvStartDate, err)
		}
		env.StartDate = start
	}

	level, err := ParseLogLevel(getEnv(EnvLogLevel, "info"))
	if err != nil {
		return nil, err
	}
	env.LogLevel = level
	return env, nil
}

// ParseLogLevel maps debug/info/warn/error to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return level, nil
}

// NewLogger builds the process logger writing text records to stderr.
func (e *Env) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: e.LogLevel}))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
