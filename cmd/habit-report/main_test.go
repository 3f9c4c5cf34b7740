package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/habit-tracker/internal/config"
	"github.com/ytget/habit-tracker/internal/model"
)

func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	argv := append([]string{"habit-report", "--db", db}, args...)
	err := newApp(&out).RunContext(context.Background(), argv)
	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Setenv(config.EnvStartDate, "")
	dir := t.TempDir()
	db := filepath.Join(dir, "habit.db")

	_, err := run(t, db, "stats")
	assert.ErrorIs(t, err, errNoChallenge)

	out, err := run(t, db, "new", "--start", "2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, "challenge starts 2026-10-01\n", out)

	out, err = run(t, db, "mark", "--day", "3", "--platform", "X (Twitter)")
	require.NoError(t, err)
	assert.Equal(t, "day 3: 1/10 platforms Partial\n", out)

	_, err = run(t, db, "mark", "--day", "3", "--platform", "MySpace")
	assert.ErrorIs(t, err, model.ErrInvalidReference)

	_, err = run(t, db, "mark", "--day", "31", "--platform", "Threads")
	assert.ErrorIs(t, err, model.ErrInvalidReference)

	out, err = run(t, db, "stats", "--format", "json")
	require.NoError(t, err)
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "2026-10-01", r.Start)
	assert.Equal(t, 1, r.Summary.TotalPosts)

	// a bad start date must not wipe the challenge
	_, err = run(t, db, "new", "--force", "--start", "10/01/2026")
	assert.ErrorContains(t, err, "--start")
	out, err = run(t, db, "stats", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "2026-10-01", r.Start)
	assert.Equal(t, 1, r.Summary.TotalPosts)

	// check-ins protect the challenge from new
	_, err = run(t, db, "new")
	assert.ErrorContains(t, err, "--force")

	csvPath := filepath.Join(dir, "progress.csv")
	_, err = run(t, db, "export", csvPath)
	require.NoError(t, err)

	other := filepath.Join(dir, "other.db")
	out, err = run(t, other, "import", csvPath)
	require.NoError(t, err)
	assert.Equal(t, "imported challenge starting 2026-10-01\n", out)

	out, err = run(t, other, "stats", "-f", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 1, r.Summary.TotalPosts)

	out, err = run(t, db, "mark", "--day", "3", "--platform", "X (Twitter)", "--undo")
	require.NoError(t, err)
	assert.Equal(t, "day 3: 0/10 platforms Empty\n", out)
}

func TestPushNeedsCredentials(t *testing.T) {
	t.Setenv(config.EnvCredentialsFile, "")
	_, err := run(t, filepath.Join(t.TempDir(), "habit.db"), "push")
	assert.ErrorContains(t, err, "--credentials")
}
