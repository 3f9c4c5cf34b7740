package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/habit-tracker/internal/model"
)

var start = time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

// fill marks the first n platforms of a 1-based day.
func fill(t *testing.T, table *model.Table, day, n int) {
	t.Helper()
	for _, p := range model.Platforms()[:n] {
		require.NoError(t, table.SetFlag(day, p, true))
	}
}

func fullTable(t *testing.T) model.Table {
	table := model.Create(start)
	for day := 1; day <= model.ChallengeDays; day++ {
		fill(t, &table, day, model.PlatformCount)
	}
	return table
}

func TestFreshTable(t *testing.T) {
	table := model.Create(start)

	assert.Zero(t, CompletionRate(table))
	assert.Zero(t, PerfectDayCount(table))
	assert.Zero(t, TotalPosts(table))
	assert.Equal(t, Streak{}, Streaks(table, 1))
	assert.Equal(t, TierFirstStep, Summarize(table, 1).Tier)
}

func TestBrokenStreak(t *testing.T) {
	table := model.Create(start)
	for day := 1; day <= 5; day++ {
		fill(t, &table, day, 5)
	}

	s := Streaks(table, 6)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 5, s.Longest)

	// day 6 not reached yet: the run is still current
	s = Streaks(table, 5)
	assert.Equal(t, 5, s.Current)
	assert.Equal(t, 5, s.Longest)
}

func TestFullTable(t *testing.T) {
	table := fullTable(t)

	assert.Equal(t, 100.0, CompletionRate(table))
	assert.Equal(t, 30, PerfectDayCount(table))
	assert.Equal(t, 10.0, AveragePerDay(table))
	for _, elapsed := range []int{30, 31, 45} {
		assert.Equal(t, Streak{Current: 30, Longest: 30}, Streaks(table, elapsed))
	}
	assert.Equal(t, TierChampion, TierFor(CompletionRate(table)))
}

func TestStreaks_FutureDaysCountTowardLongest(t *testing.T) {
	table := model.Create(start)
	for day := 10; day <= 17; day++ {
		fill(t, &table, day, 6)
	}

	s := Streaks(table, 3)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 8, s.Longest)
}

func TestStreaks_ElapsedOutOfRange(t *testing.T) {
	table := model.Create(start)
	for day := 1; day <= 3; day++ {
		fill(t, &table, day, 5)
	}
	for day := 27; day <= 30; day++ {
		fill(t, &table, day, 7)
	}

	assert.Equal(t, Streak{Current: 0, Longest: 4}, Streaks(table, 0))
	assert.Equal(t, Streak{Current: 0, Longest: 4}, Streaks(table, -5))
	assert.Equal(t, Streak{Current: 4, Longest: 4}, Streaks(table, 99))
}

func TestStreaks_CurrentNeverExceedsLongest(t *testing.T) {
	table := model.Create(start)
	pattern := []int{5, 6, 0, 10, 10, 10, 4, 5, 5, 9}
	for day := 1; day <= model.ChallengeDays; day++ {
		fill(t, &table, day, pattern[(day-1)%len(pattern)])
	}

	for elapsed := 1; elapsed <= model.ChallengeDays; elapsed++ {
		s := Streaks(table, elapsed)
		assert.LessOrEqual(t, s.Current, s.Longest, "elapsed=%d", elapsed)
	}
}

func TestCompletionRateBounds(t *testing.T) {
	table := model.Create(start)
	for day := 1; day <= model.ChallengeDays; day++ {
		fill(t, &table, day, day%(model.PlatformCount+1))
		rate := CompletionRate(table)
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, 100.0)
		assert.NotEqual(t, 100.0, rate)
	}

	full := fullTable(t)
	require.NoError(t, full.SetFlag(17, model.Threads, false))
	assert.Less(t, CompletionRate(full), 100.0)
}

func TestDailyPostCount(t *testing.T) {
	table := model.Create(start)
	fill(t, &table, 2, 4)

	assert.Equal(t, 4, DailyPostCount(table, 1))
	assert.Zero(t, DailyPostCount(table, -1))
	assert.Zero(t, DailyPostCount(table, 30))
	assert.False(t, IsPerfectDay(table, 1))
}

func TestPlatformRankings(t *testing.T) {
	table := model.Create(start)
	for day := 1; day <= model.ChallengeDays; day++ {
		require.NoError(t, table.SetFlag(day, model.Instagram, true))
		if day <= 10 {
			require.NoError(t, table.SetFlag(day, model.TikTok, true))
		}
	}

	totals := PlatformTotals(table)
	require.Len(t, totals, model.PlatformCount)
	assert.Equal(t, 30, totals[model.Instagram].Days)
	assert.Equal(t, 0, totals[model.Fanbase].Days)

	most := MostConsistent(table, 0)
	assert.Equal(t, model.Instagram, most[0].Platform)
	assert.Equal(t, model.TikTok, most[1].Platform)
	// ties keep column order, so Facebook Groups closes the ranking
	assert.Equal(t, model.FacebookGroups, most[len(most)-1].Platform)
	assert.Equal(t, 100.0, most[0].Percent())

	least := NeedsAttention(table, 5)
	require.Len(t, least, 5)
	assert.Equal(t, model.Facebook, least[0].Platform)
	assert.Equal(t, model.XTwitter, least[1].Platform)
}

func TestPlatformRankings_InstagramFirstFanbaseLast(t *testing.T) {
	table := model.Create(start)
	for day := 1; day <= model.ChallengeDays; day++ {
		for _, p := range model.Platforms() {
			switch p {
			case model.Instagram:
				require.NoError(t, table.SetFlag(day, p, true))
			case model.Fanbase:
			default:
				require.NoError(t, table.SetFlag(day, p, day%2 == 0))
			}
		}
	}

	most := MostConsistent(table, 0)
	assert.Equal(t, model.Instagram, most[0].Platform)
	assert.Equal(t, 30, most[0].Days)
	assert.Equal(t, model.Fanbase, most[len(most)-1].Platform)
	assert.Equal(t, 0, most[len(most)-1].Days)
}

func TestSummarize(t *testing.T) {
	table := model.Create(start)
	fill(t, &table, 1, 10)
	fill(t, &table, 2, 5)

	s := Summarize(table, 2)
	assert.Equal(t, 15, s.TotalPosts)
	assert.Equal(t, PossiblePosts, s.PossiblePosts)
	assert.InDelta(t, 5.0, s.CompletionRate, 1e-9)
	assert.Equal(t, 1, s.PerfectDays)
	assert.Equal(t, 0.5, s.AveragePerDay)
	assert.Equal(t, Streak{Current: 2, Longest: 2}, s.Streak)
	assert.Equal(t, 2, s.CurrentDay())
	assert.False(t, s.Finished())

	assert.True(t, Summarize(table, 31).Finished())
	assert.Zero(t, Summarize(table, 31).CurrentDay())
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		rate     float64
		expected Tier
	}{
		{0, TierFirstStep},
		{24.9, TierFirstStep},
		{25, TierMomentum},
		{50, TierHalfway},
		{75, TierCrushing},
		{99.7, TierCrushing},
		{100, TierChampion},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierFor(tt.rate), "rate=%v", tt.rate)
	}
}
