package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/habit-tracker/internal/model"
	"github.com/ytget/habit-tracker/internal/stats"
	"github.com/ytget/habit-tracker/internal/storage"
)

var (
	// ErrNotConnected is returned by remote operations before a successful Connect.
	ErrNotConnected = errors.New("not connected to a spreadsheet")

	// ErrRemoteNotLoaded is returned by auto-save while the table has not yet
	// been loaded from or pushed to the attached spreadsheet.
	ErrRemoteNotLoaded = errors.New("spreadsheet not loaded yet, pull or push before auto-saving")
)

// Service holds the state of a single session.
type Service struct {
	id string

	mu       sync.Mutex
	table    model.Table
	meta     model.ChallengeMeta
	autoSave bool

	snapshot storage.Store // optional local copy, saved after every mutation
	remote   storage.Store
	connect  Connector

	// remoteLoaded is set once the table and the remote agree, by a load or
	// an explicit save. Auto-save never writes before that.
	remoteLoaded bool

	logger   *slog.Logger
	now      func() time.Time
	onUpdate func(Snapshot) // callback for UI updates
}

// Option customises a Service.
type Option func(*Service)

// WithSnapshotStore keeps a local copy of the table in store.
func WithSnapshotStore(store storage.Store) Option {
	return func(s *Service) { s.snapshot = store }
}

// WithConnector sets how Connect turns credentials into a remote store.
func WithConnector(c Connector) Option {
	return func(s *Service) { s.connect = c }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a session with a fresh table starting on start. A zero
// start means today.
func NewService(start time.Time, opts ...Option) *Service {
	s := &Service{
		id:     uuid.NewString(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	if start.IsZero() {
		start = s.now()
	}
	s.logger = s.logger.With("session", s.id)
	s.table = model.Create(start)
	s.meta = model.ChallengeMeta{StartDate: model.DateOf(start)}
	return s
}

// ID returns the session identifier used in log records.
func (s *Service) ID() string {
	return s.id
}

// SetUpdateCallback sets the callback invoked after every state change.
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Table returns a copy of the tracking table.
func (s *Service) Table() model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// Meta returns the challenge metadata.
func (s *Service) Meta() model.ChallengeMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

// DaysElapsed returns the 1-based challenge day according to the clock.
func (s *Service) DaysElapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.DaysElapsed(s.meta.StartDate, s.now())
}

// Summary computes the dashboard numbers for the current state.
func (s *Service) Summary() stats.Summary {
	snap := s.Snapshot()
	return stats.Summarize(snap.Table, snap.DaysElapsed)
}

// SetFlag records one check-in. With auto-save on and a spreadsheet attached
// the table is pushed immediately; if that fails the local change is kept,
// the remote copy is stale and the returned error wraps
// storage.ErrDestinationUnavailable. Nothing is retried. Until the spreadsheet
// has been loaded or explicitly saved the push is skipped and the error wraps
// ErrRemoteNotLoaded.
func (s *Service) SetFlag(ctx context.Context, day int, p model.Platform, value bool) error {
	s.mu.Lock()
	if err := s.table.SetFlag(day, p, value); err != nil {
		s.mu.Unlock()
		return err
	}
	s.saveSnapshotLocked(ctx)

	var saveErr error
	if s.autoSave && s.remote != nil {
		if !s.remoteLoaded {
			s.logger.Warn("auto-save skipped, spreadsheet not loaded", "day", day, "platform", p.String())
			saveErr = fmt.Errorf("auto-save: %w", ErrRemoteNotLoaded)
		} else if err := s.remote.Save(ctx, s.table); err != nil {
			s.logger.Warn("auto-save failed, remote is stale", "day", day, "platform", p.String(), "error", err)
			saveErr = fmt.Errorf("auto-save: %w", err)
		} else {
			s.meta.LastSync = s.now()
		}
	}
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	notify(cb, snap)
	return saveErr
}

// SetStartDate moves the challenge to a new first day, keeping check-ins.
func (s *Service) SetStartDate(ctx context.Context, start time.Time) {
	s.mu.Lock()
	first := model.DateOf(start)
	for i := range s.table.Days {
		s.table.Days[i].Date = first.AddDate(0, 0, i)
	}
	s.meta.StartDate = first
	s.saveSnapshotLocked(ctx)
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	s.logger.Info("challenge start moved", "start", first.Format(model.DateLayout))
	notify(cb, snap)
}

// Reset clears every check-in and the last sync time, and restarts the
// challenge today. The remote spreadsheet is left alone until the next
// explicit or automatic save.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	today := s.now()
	s.table = model.Reset(today)
	s.meta.StartDate = model.DateOf(today)
	s.meta.LastSync = time.Time{}
	s.saveSnapshotLocked(ctx)
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	s.logger.Info("challenge reset", "start", snap.Meta.StartDate.Format(model.DateLayout))
	notify(cb, snap)
}

// ImportCSV replaces the table with an uploaded file. On error the table is
// unchanged.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) error {
	t, err := storage.ReadCSV(r)
	if err != nil {
		s.logger.Warn("import rejected", "error", err)
		return err
	}
	s.replace(ctx, t, false)
	s.logger.Info("progress imported", "start", t.StartDate().Format(model.DateLayout))
	return nil
}

// ExportCSV writes the table as a downloadable file.
func (s *Service) ExportCSV(w io.Writer) error {
	return storage.WriteCSV(w, s.Table())
}

// ExportFileName returns today's export file name.
func (s *Service) ExportFileName() string {
	return storage.ExportFileName(s.now())
}

// Connect authorizes credentials through the configured Connector. A failed
// attempt leaves the connection state as it was.
func (s *Service) Connect(ctx context.Context, credentials []byte) error {
	if s.connect == nil {
		return fmt.Errorf("%w: no spreadsheet connector configured", storage.ErrAuth)
	}
	remote, err := s.connect(ctx, credentials)
	if err != nil {
		s.logger.Warn("connect failed", "error", err)
		return err
	}

	s.mu.Lock()
	s.remote = remote
	s.remoteLoaded = false
	s.meta.Connection = model.Connected
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	s.logger.Info("spreadsheet attached")
	notify(cb, snap)
	return nil
}

// LoadRemote replaces the table with the spreadsheet contents. On error the
// table is unchanged.
func (s *Service) LoadRemote(ctx context.Context) error {
	remote, err := s.remoteStore()
	if err != nil {
		return err
	}
	t, err := remote.Load(ctx)
	if err != nil {
		s.logger.Warn("remote load failed", "error", err)
		return err
	}
	s.mu.Lock()
	s.remoteLoaded = true
	s.mu.Unlock()
	s.replace(ctx, t, true)
	s.logger.Info("remote loaded")
	return nil
}

// SaveRemote overwrites the spreadsheet with the table. A push before any load
// is allowed, since it is how an empty spreadsheet gets its first table, but it
// is logged.
func (s *Service) SaveRemote(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.remote == nil {
		return ErrNotConnected
	}
	if !s.remoteLoaded {
		s.logger.Warn("overwriting a spreadsheet that was never loaded in this session")
	}
	if err := s.remote.Save(ctx, s.table); err != nil {
		s.logger.Warn("remote save failed", "error", err)
		return err
	}
	s.remoteLoaded = true
	s.meta.LastSync = s.now()
	s.logger.Info("remote saved")
	return nil
}

// SetAutoSave toggles pushing to the spreadsheet after every check-in. The
// toggle lives only as long as the session.
func (s *Service) SetAutoSave(enabled bool) {
	s.mu.Lock()
	s.autoSave = enabled
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()
	notify(cb, snap)
}

// AutoSave reports whether auto-save is on.
func (s *Service) AutoSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoSave
}

// RestoreSnapshot loads the local snapshot store, if any. It reports whether a
// snapshot was found; an empty store is not an error.
func (s *Service) RestoreSnapshot(ctx context.Context) (bool, error) {
	if s.snapshot == nil {
		return false, nil
	}
	t, err := s.snapshot.Load(ctx)
	if errors.Is(err, storage.ErrEmpty) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	s.table = t
	s.meta.StartDate = t.StartDate()
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	s.logger.Info("snapshot restored", "start", t.StartDate().Format(model.DateLayout))
	notify(cb, snap)
	return true, nil
}

func (s *Service) replace(ctx context.Context, t model.Table, synced bool) {
	s.mu.Lock()
	s.table = t
	s.meta.StartDate = t.StartDate()
	if synced {
		s.meta.LastSync = s.now()
	}
	s.saveSnapshotLocked(ctx)
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	notify(cb, snap)
}

func (s *Service) remoteStore() (storage.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.remote == nil {
		return nil, ErrNotConnected
	}
	return s.remote, nil
}

func (s *Service) saveSnapshotLocked(ctx context.Context) {
	if s.snapshot == nil {
		return
	}
	if err := s.snapshot.Save(ctx, s.table); err != nil {
		s.logger.Warn("snapshot save failed", "error", err)
	}
}

func (s *Service) snapshotLocked() Snapshot {
	return Snapshot{
		Table:       s.table,
		Meta:        s.meta,
		AutoSave:    s.autoSave,
		DaysElapsed: model.DaysElapsed(s.meta.StartDate, s.now()),
	}
}

func notify(cb func(Snapshot), snap Snapshot) {
	if cb != nil {
		cb(snap)
	}
}

var _ Tracker = (*Service)(nil)
