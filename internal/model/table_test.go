package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, time.October, 1, 15, 4, 5, 0, time.Local)

func TestCreate(t *testing.T) {
	table := Create(testStart)

	for i, rec := range table.Days {
		assert.Equal(t, i+1, rec.Day)
		assert.Equal(t, time.Date(2026, time.October, 1+i, 0, 0, 0, 0, time.UTC), rec.Date)
		assert.Zero(t, rec.Posts())
	}
	assert.Equal(t, "2026-10-30", table.Days[29].Date.Format(DateLayout))
	assert.Equal(t, DateOf(testStart), table.StartDate())
}

func TestSetFlag(t *testing.T) {
	table := Create(testStart)

	require.NoError(t, table.SetFlag(3, Instagram, true))
	assert.True(t, table.Days[2].Flag(Instagram))
	assert.Equal(t, 1, table.Days[2].Posts())

	// overwrite is idempotent
	require.NoError(t, table.SetFlag(3, Instagram, true))
	assert.Equal(t, 1, table.Days[2].Posts())

	require.NoError(t, table.SetFlag(3, Instagram, false))
	assert.Zero(t, table.Days[2].Posts())
}

func TestSetFlag_InvalidReference(t *testing.T) {
	table := Create(testStart)
	before := table

	tests := []struct {
		name     string
		day      int
		platform Platform
	}{
		{"day 31", 31, Facebook},
		{"day 0", 0, Facebook},
		{"negative platform", 1, Platform(-1)},
		{"platform past end", 1, Platform(PlatformCount)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := table.SetFlag(tt.day, tt.platform, true)
			assert.ErrorIs(t, err, ErrInvalidReference)
		})
	}
	assert.Equal(t, before, table)
}

func TestSetFlagByName(t *testing.T) {
	table := Create(testStart)

	require.NoError(t, table.SetFlagByName(30, "Facebook Groups", true))
	assert.True(t, table.Days[29].Flag(FacebookGroups))

	err := table.SetFlagByName(1, "MySpace", true)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestReset(t *testing.T) {
	table := Create(testStart)
	require.NoError(t, table.SetFlag(1, TikTok, true))

	next := testStart.AddDate(0, 0, 12)
	table = Reset(next)

	assert.Equal(t, Create(next), table)
	assert.Zero(t, table.Days[0].Posts())
}

func TestRecord(t *testing.T) {
	table := Create(testStart)

	rec, err := table.Record(10)
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Day)

	_, err = table.Record(31)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestDaysElapsed(t *testing.T) {
	start := time.Date(2026, time.October, 1, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		now      time.Time
		expected int
	}{
		{time.Date(2026, time.October, 1, 0, 5, 0, 0, time.UTC), 1},
		{time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2026, time.October, 30, 12, 0, 0, 0, time.UTC), 30},
		{time.Date(2026, time.November, 5, 12, 0, 0, 0, time.UTC), 36},
		{time.Date(2026, time.September, 30, 12, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, DaysElapsed(start, tt.now), "now=%s", tt.now)
	}
}

func TestParsePlatform(t *testing.T) {
	for _, p := range Platforms() {
		got, err := ParsePlatform(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	assert.Equal(t, "X (Twitter)", XTwitter.String())
	assert.Len(t, PlatformNames(), PlatformCount)
}
