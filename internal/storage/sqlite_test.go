package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/habit-tracker/internal/model"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLite_EmptyLoad(t *testing.T) {
	store := openTestSQLite(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSQLite_SaveLoad(t *testing.T) {
	store := openTestSQLite(t)
	ctx := context.Background()
	table := sampleTable(t)

	require.NoError(t, store.Save(ctx, table))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, table, got)

	// a second save replaces the snapshot
	require.NoError(t, table.SetFlag(1, model.Facebook, false))
	require.NoError(t, store.Save(ctx, table))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, table, got)
	assert.False(t, got.Days[0].Flag(model.Facebook))
}

func TestSQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")
	ctx := context.Background()
	table := sampleTable(t)

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, table))
	require.NoError(t, store.Close())

	store, err = OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}
