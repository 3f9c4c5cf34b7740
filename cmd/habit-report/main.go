package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ytget/habit-tracker/internal/config"
	"github.com/ytget/habit-tracker/internal/platform"
	"github.com/ytget/habit-tracker/internal/storage"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const snapshotFileName = "habit_tracker.db"

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(env.NewLogger())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		slog.Error("habit-report failed", "error", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:    "habit-report",
		Usage:   "track the 30-day posting challenge from the terminal",
		Version: version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Usage:   "snapshot database holding the challenge",
				EnvVars: []string{config.EnvSnapshotPath},
				Value:   platform.DataFile("", snapshotFileName),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "new",
				Usage: "start a fresh challenge",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "start", Usage: "first day as YYYY-MM-DD (default today)", EnvVars: []string{config.EnvStartDate}},
					&cli.BoolFlag{Name: "force", Usage: "overwrite an existing challenge"},
				},
				Action: cmdNew,
			},
			{
				Name:  "stats",
				Usage: "print the progress dashboard",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "text, json or yaml", Value: formatText},
				},
				Action: cmdStats,
			},
			{
				Name:  "mark",
				Usage: "record a check-in",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "day", Aliases: []string{"d"}, Usage: "challenge day 1-30", Required: true},
					&cli.StringFlag{Name: "platform", Aliases: []string{"p"}, Usage: "platform column name", Required: true},
					&cli.BoolFlag{Name: "undo", Usage: "clear the check-in instead"},
				},
				Action: cmdMark,
			},
			{
				Name:      "import",
				Usage:     "replace the challenge with a CSV file",
				ArgsUsage: "FILE",
				Action:    cmdImport,
			},
			{
				Name:      "export",
				Usage:     "write the challenge as CSV (default: today's export file name)",
				ArgsUsage: "[FILE]",
				Action:    cmdExport,
			},
			{
				Name:   "pull",
				Usage:  "replace the challenge with the spreadsheet contents",
				Flags:  sheetFlags(),
				Action: cmdPull,
			},
			{
				Name:   "push",
				Usage:  "overwrite the spreadsheet with the challenge",
				Flags:  sheetFlags(),
				Action: cmdPush,
			},
		},
	}
}

func sheetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "credentials",
			Usage:   "service-account key file",
			EnvVars: []string{config.EnvCredentialsFile},
		},
		&cli.StringFlag{
			Name:    "spreadsheet",
			Usage:   "spreadsheet identifier",
			EnvVars: []string{config.EnvSpreadsheetID},
			Value:   config.SpreadsheetID,
		},
		&cli.StringFlag{
			Name:    "sheet",
			Usage:   "tab holding the table",
			EnvVars: []string{config.EnvSheetName},
			Value:   storage.DefaultSheetName,
		},
	}
}
