package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/habit-tracker/internal/config"
	"github.com/ytget/habit-tracker/internal/platform"
	"github.com/ytget/habit-tracker/internal/session"
	"github.com/ytget/habit-tracker/internal/storage"
	"github.com/ytget/habit-tracker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.habit-tracker"
	AppName = "Habit Tracker"

	WindowWidth  = 1100
	WindowHeight = 820
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := env.NewLogger()
	slog.SetDefault(logger)
	logger.Info("habit tracker starting", "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	settings.ApplyEnv(env)

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithConnector(sheetsConnector(settings, logger)),
	}

	snapshotPath := settings.GetSnapshotPath()
	snapshot, err := storage.OpenSQLite(snapshotPath)
	if err != nil {
		logger.Warn("snapshot store unavailable, progress is kept in memory only", "path", snapshotPath, "error", err)
	} else {
		defer snapshot.Close()
		opts = append(opts, session.WithSnapshotStore(snapshot))
	}

	// zero start date on first use means the challenge starts today
	start, _ := settings.GetStartDate()
	tracker := session.NewService(start, opts...)
	if restored, err := tracker.RestoreSnapshot(context.Background()); err != nil {
		logger.Warn("snapshot not restored", "path", snapshotPath, "error", err)
	} else if restored {
		logger.Info("previous progress restored", "path", snapshotPath)
	}

	if err := platform.CreateDirectoryIfNotExists(settings.GetExportDirectory()); err != nil {
		logger.Warn("failed to ensure export dir", "error", err)
	}

	root := ui.NewRootUI(myWindow, tracker, settings, logger)
	root.ConnectSaved()

	myWindow.ShowAndRun()
}

// sheetsConnector reads the spreadsheet settings at connect time so changes
// made in the settings dialog apply to the next connection.
func sheetsConnector(settings *config.Settings, logger *slog.Logger) session.Connector {
	return func(ctx context.Context, credentials []byte) (storage.Store, error) {
		return storage.ConnectSheets(ctx, credentials, settings.GetSpreadsheetID(),
			storage.WithSheetName(settings.GetSheetName()),
			storage.WithLogger(logger),
		)
	}
}
