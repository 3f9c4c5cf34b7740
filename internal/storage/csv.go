package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ytget/habit-tracker/internal/model"
)

// ExportFilePrefix and ExportFileExt make up the default export file name.
const (
	ExportFilePrefix = "habit_tracker_"
	ExportFileExt    = ".csv"
	exportDateLayout = "20060102"
)

// ExportFileName returns the dated file name used for downloads,
// e.g. habit_tracker_20261018.csv.
func ExportFileName(now time.Time) string {
	return ExportFilePrefix + now.Format(exportDateLayout) + ExportFileExt
}

// ReadCSV parses a comma-delimited table.
func ReadCSV(r io.Reader) (model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return model.Table{}, fmt.Errorf("%w: %v", model.ErrFormat, err)
		}
		return model.Table{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return model.Parse(rows)
}

// WriteCSV writes the table as a comma-delimited file.
func WriteCSV(w io.Writer, t model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(model.Serialize(t)); err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}
	return nil
}

// CSVFile stores the table in a local comma-delimited file.
type CSVFile struct {
	Path string
}

// NewCSVFile creates a store for the file at path.
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{Path: path}
}

// Load reads and parses the file.
func (f *CSVFile) Load(ctx context.Context) (model.Table, error) {
	if err := ctx.Err(); err != nil {
		return model.Table{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	fh, err := os.Open(f.Path)
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer fh.Close()
	return ReadCSV(fh)
}

// Save writes the file through a temporary sibling and renames it into place.
func (f *CSVFile) Save(ctx context.Context, t model.Table) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}
	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, ".habit-*.csv")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, t); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}
	return nil
}
