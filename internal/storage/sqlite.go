package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/ytget/habit-tracker/internal/model"
)

// ErrEmpty is returned by SQLite.Load before the first Save.
var ErrEmpty = errors.New("store is empty")

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS checkins (
	day      INTEGER NOT NULL,
	date     TEXT    NOT NULL,
	platform TEXT    NOT NULL,
	done     INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (day, platform)
);`

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

// SQLite keeps a local snapshot of the table so a session survives restarts.
// Unlike Sheets, Save replaces the snapshot inside a single transaction.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the snapshot database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, p := range sqlitePragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load rebuilds the table from the snapshot.
func (s *SQLite) Load(ctx context.Context) (model.Table, error) {
	rs, err := s.db.QueryContext(ctx, `SELECT day, date, platform, done FROM checkins ORDER BY day`)
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer rs.Close()

	header := model.Header()
	colOf := make(map[string]int, len(header))
	for i, name := range header {
		colOf[name] = i
	}

	byDay := make(map[int][]string)
	var order []int
	for rs.Next() {
		var (
			day            int
			date, platform string
			done           bool
		)
		if err := rs.Scan(&day, &date, &platform, &done); err != nil {
			return model.Table{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		row, ok := byDay[day]
		if !ok {
			row = make([]string, len(header))
			row[0] = strconv.Itoa(day)
			row[1] = date
			byDay[day] = row
			order = append(order, day)
		}
		if col, ok := colOf[platform]; ok && col > 1 {
			row[col] = model.FormatFlag(done)
		}
	}
	if err := rs.Err(); err != nil {
		return model.Table{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if len(order) == 0 {
		return model.Table{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, ErrEmpty)
	}

	rows := [][]string{header}
	for _, day := range order {
		rows = append(rows, byDay[day])
	}
	return model.Parse(rows)
}

// Save replaces the snapshot with t.
func (s *SQLite) Save(ctx context.Context, t model.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM checkins`); err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO checkins (day, date, platform, done) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}
	defer stmt.Close()

	for _, rec := range t.Days {
		date := rec.Date.Format(model.DateLayout)
		for _, p := range model.Platforms() {
			if _, err := stmt.ExecContext(ctx, rec.Day, date, p.String(), rec.Flag(p)); err != nil {
				return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}
	return nil
}
