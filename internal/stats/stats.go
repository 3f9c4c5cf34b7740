package stats

import (
	"sort"

	"github.com/ytget/habit-tracker/internal/model"
)

// PossiblePosts is the number of check-ins in a full challenge.
const PossiblePosts = model.ChallengeDays * model.PlatformCount

// Streak holds the current and longest runs of active days.
type Streak struct {
	Current int `json:"current" yaml:"current"`
	Longest int `json:"longest" yaml:"longest"`
}

// PlatformTotal is the number of days a platform was posted to.
type PlatformTotal struct {
	Platform model.Platform `json:"-" yaml:"-"`
	Name     string         `json:"platform" yaml:"platform"`
	Days     int            `json:"days" yaml:"days"`
}

// Percent returns the share of challenge days covered by the platform.
func (pt PlatformTotal) Percent() float64 {
	return float64(pt.Days) / model.ChallengeDays * 100
}

// DailyPostCount returns the number of platforms posted to on a 0-based day
// index. Indices outside the table count as 0.
func DailyPostCount(t model.Table, dayIndex int) int {
	if dayIndex < 0 || dayIndex >= model.ChallengeDays {
		return 0
	}
	return t.Days[dayIndex].Posts()
}

// IsPerfectDay reports whether every platform was posted to on a 0-based day.
func IsPerfectDay(t model.Table, dayIndex int) bool {
	return DailyPostCount(t, dayIndex) == model.PlatformCount
}

// TotalPosts sums the check-ins of all days.
func TotalPosts(t model.Table) int {
	total := 0
	for i := range t.Days {
		total += DailyPostCount(t, i)
	}
	return total
}

// CompletionRate returns TotalPosts as a percentage of PossiblePosts.
func CompletionRate(t model.Table) float64 {
	return float64(TotalPosts(t)) / PossiblePosts * 100
}

// PerfectDayCount counts the days with every platform posted to.
func PerfectDayCount(t model.Table) int {
	n := 0
	for i := range t.Days {
		if IsPerfectDay(t, i) {
			n++
		}
	}
	return n
}

// AveragePerDay returns the mean number of platforms posted to per day.
func AveragePerDay(t model.Table) float64 {
	return float64(TotalPosts(t)) / model.ChallengeDays
}

// Streaks scans the table in day order. A day with at least
// model.ActiveThreshold posts extends the running streak, any other day
// resets it. Longest covers all 30 days; Current only follows days with an
// index below daysElapsed, so a future day never breaks or extends it.
func Streaks(t model.Table, daysElapsed int) Streak {
	var s Streak
	run := 0
	for i := range t.Days {
		reached := i < daysElapsed
		if DailyPostCount(t, i) >= model.ActiveThreshold {
			run++
			if run > s.Longest {
				s.Longest = run
			}
			if reached {
				s.Current = run
			}
		} else {
			run = 0
			if reached {
				s.Current = 0
			}
		}
	}
	return s
}

// PlatformTotals counts the days each platform was posted to, in column order.
func PlatformTotals(t model.Table) []PlatformTotal {
	totals := make([]PlatformTotal, 0, model.PlatformCount)
	for _, p := range model.Platforms() {
		days := 0
		for _, rec := range t.Days {
			if rec.Flag(p) {
				days++
			}
		}
		totals = append(totals, PlatformTotal{Platform: p, Name: p.String(), Days: days})
	}
	return totals
}

// MostConsistent ranks platforms by days posted, highest first. Ties keep
// column order. n <= 0 or n > 10 returns the full ranking.
func MostConsistent(t model.Table, n int) []PlatformTotal {
	ranked := PlatformTotals(t)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Days > ranked[j].Days })
	return head(ranked, n)
}

// NeedsAttention ranks platforms by days posted, lowest first. Ties keep
// column order.
func NeedsAttention(t model.Table, n int) []PlatformTotal {
	ranked := PlatformTotals(t)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Days < ranked[j].Days })
	return head(ranked, n)
}

func head(ranked []PlatformTotal, n int) []PlatformTotal {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
