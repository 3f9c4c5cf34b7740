package stats

import "github.com/ytget/habit-tracker/internal/model"

// Summary is the headline block of the dashboard.
type Summary struct {
	DaysElapsed    int     `json:"days_elapsed" yaml:"days_elapsed"`
	TotalPosts     int     `json:"total_posts" yaml:"total_posts"`
	PossiblePosts  int     `json:"possible_posts" yaml:"possible_posts"`
	CompletionRate float64 `json:"completion_rate" yaml:"completion_rate"`
	PerfectDays    int     `json:"perfect_days" yaml:"perfect_days"`
	AveragePerDay  float64 `json:"average_per_day" yaml:"average_per_day"`
	Streak         Streak  `json:"streak" yaml:"streak"`
	Tier           Tier    `json:"tier" yaml:"tier"`
}

// Summarize computes every headline number in one pass over the helpers.
func Summarize(t model.Table, daysElapsed int) Summary {
	rate := CompletionRate(t)
	return Summary{
		DaysElapsed:    daysElapsed,
		TotalPosts:     TotalPosts(t),
		PossiblePosts:  PossiblePosts,
		CompletionRate: rate,
		PerfectDays:    PerfectDayCount(t),
		AveragePerDay:  AveragePerDay(t),
		Streak:         Streaks(t, daysElapsed),
		Tier:           TierFor(rate),
	}
}

// CurrentDay returns the 1-based challenge day for display, or 0 once the
// challenge is over.
func (s Summary) CurrentDay() int {
	if s.Finished() || s.DaysElapsed < 1 {
		return 0
	}
	return s.DaysElapsed
}

// Finished reports whether all 30 days have passed.
func (s Summary) Finished() bool {
	return s.DaysElapsed > model.ChallengeDays
}

// Progress returns the completion rate as a 0..1 fraction.
func (s Summary) Progress() float64 {
	return s.CompletionRate / 100
}
