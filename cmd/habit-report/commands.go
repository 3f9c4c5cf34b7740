package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ytget/habit-tracker/internal/model"
	"github.com/ytget/habit-tracker/internal/platform"
	"github.com/ytget/habit-tracker/internal/session"
	"github.com/ytget/habit-tracker/internal/storage"
)

// errNoChallenge is returned when a command needs a challenge and the
// snapshot database has none yet.
var errNoChallenge = errors.New("no challenge yet, run `habit-report new` first")

// openTracker opens the snapshot database and restores the challenge in it.
// The caller must call the returned close function.
func openTracker(c *cli.Context, requireExisting bool, opts ...session.Option) (*session.Service, func(), error) {
	db, err := storage.OpenSQLite(c.String("db"))
	if err != nil {
		return nil, nil, err
	}
	opts = append([]session.Option{
		session.WithSnapshotStore(db),
		session.WithLogger(slog.Default()),
	}, opts...)

	svc := session.NewService(time.Time{}, opts...)
	found, err := svc.RestoreSnapshot(c.Context)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if requireExisting && !found {
		db.Close()
		return nil, nil, errNoChallenge
	}
	return svc, func() { db.Close() }, nil
}

func cmdNew(c *cli.Context) error {
	var start time.Time
	if raw := c.String("start"); raw != "" {
		var err error
		if start, err = time.Parse(model.DateLayout, raw); err != nil {
			return fmt.Errorf("--start: %w", err)
		}
	}

	svc, closeDB, err := openTracker(c, false)
	if err != nil {
		return err
	}
	defer closeDB()

	if svc.Summary().TotalPosts > 0 && !c.Bool("force") {
		return fmt.Errorf("challenge started %s has check-ins, use --force to replace it",
			svc.Meta().StartDate.Format(model.DateLayout))
	}

	svc.Reset(c.Context)
	if !start.IsZero() {
		svc.SetStartDate(c.Context, start)
	}
	fmt.Fprintf(c.App.Writer, "challenge starts %s\n", svc.Meta().StartDate.Format(model.DateLayout))
	return nil
}

func cmdStats(c *cli.Context) error {
	svc, closeDB, err := openTracker(c, true)
	if err != nil {
		return err
	}
	defer closeDB()

	snap := svc.Snapshot()
	return writeReport(c.App.Writer, c.String("format"), buildReport(snap.Table, snap.DaysElapsed), time.Now())
}

func cmdMark(c *cli.Context) error {
	p, err := model.ParsePlatform(c.String("platform"))
	if err != nil {
		return err
	}
	svc, closeDB, err := openTracker(c, true)
	if err != nil {
		return err
	}
	defer closeDB()

	day := c.Int("day")
	if err := svc.SetFlag(c.Context, day, p, !c.Bool("undo")); err != nil {
		return err
	}
	rec, _ := svc.Table().Record(day)
	fmt.Fprintf(c.App.Writer, "day %d: %d/%d platforms %s\n", day, rec.Posts(), model.PlatformCount, rec.Status())
	return nil
}

func cmdImport(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("import needs a CSV file")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	svc, closeDB, err := openTracker(c, false)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := svc.ImportCSV(c.Context, f); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "imported challenge starting %s\n", svc.Meta().StartDate.Format(model.DateLayout))
	return nil
}

func cmdExport(c *cli.Context) error {
	svc, closeDB, err := openTracker(c, true)
	if err != nil {
		return err
	}
	defer closeDB()

	path := c.Args().First()
	if path == "" {
		path = svc.ExportFileName()
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := svc.ExportCSV(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
	return nil
}

func cmdPull(c *cli.Context) error {
	svc, closeDB, err := openRemote(c, false)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := svc.LoadRemote(c.Context); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "pulled challenge starting %s\n", svc.Meta().StartDate.Format(model.DateLayout))
	return nil
}

func cmdPush(c *cli.Context) error {
	svc, closeDB, err := openRemote(c, true)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := svc.SaveRemote(c.Context); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "pushed %s to %s\n", c.String("sheet"), c.String("spreadsheet"))
	return nil
}

// openRemote opens the tracker and connects it to the configured spreadsheet.
func openRemote(c *cli.Context, requireExisting bool) (*session.Service, func(), error) {
	keyPath := c.String("credentials")
	if keyPath == "" {
		return nil, nil, fmt.Errorf("%w: --credentials is required", storage.ErrAuth)
	}
	credentials, err := platform.ReadCredentials(keyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", storage.ErrAuth, err)
	}

	connector := func(ctx context.Context, creds []byte) (storage.Store, error) {
		return storage.ConnectSheets(ctx, creds, c.String("spreadsheet"),
			storage.WithSheetName(c.String("sheet")),
			storage.WithLogger(slog.Default()),
		)
	}
	svc, closeDB, err := openTracker(c, requireExisting, session.WithConnector(connector))
	if err != nil {
		return nil, nil, err
	}
	if err := svc.Connect(c.Context, credentials); err != nil {
		closeDB()
		return nil, nil, err
	}
	return svc, closeDB, nil
}
