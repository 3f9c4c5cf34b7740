package session

import (
	"context"
	"io"
	"time"

	"github.com/ytget/habit-tracker/internal/model"
	"github.com/ytget/habit-tracker/internal/stats"
	"github.com/ytget/habit-tracker/internal/storage"
)

// Connector authorizes a credential blob and returns the remote store.
type Connector func(ctx context.Context, credentials []byte) (storage.Store, error)

// Tracker defines the interface the front ends drive.
type Tracker interface {
	SetUpdateCallback(func(Snapshot))
	Snapshot() Snapshot
	Summary() stats.Summary

	SetFlag(ctx context.Context, day int, p model.Platform, value bool) error
	SetStartDate(ctx context.Context, start time.Time)
	Reset(ctx context.Context)

	ImportCSV(ctx context.Context, r io.Reader) error
	ExportCSV(w io.Writer) error
	ExportFileName() string

	Connect(ctx context.Context, credentials []byte) error
	LoadRemote(ctx context.Context) error
	SaveRemote(ctx context.Context) error
	SetAutoSave(enabled bool)
	AutoSave() bool
}

// Snapshot is a copy of the session state taken after a mutation.
type Snapshot struct {
	Table       model.Table
	Meta        model.ChallengeMeta
	AutoSave    bool
	DaysElapsed int
}
