package stats

import "github.com/ytget/habit-tracker/internal/model"

// Filter selects the days shown in the detailed checklist.
type Filter int

const (
	FilterAll Filter = iota
	FilterIncomplete
	FilterPerfect
	FilterThisWeek
)

// WeekDays is the number of leading rows shown by FilterThisWeek.
const WeekDays = 7

// Filters returns every filter in menu order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterIncomplete, FilterPerfect, FilterThisWeek}
}

// String returns the English menu label for the filter.
func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "All Days"
	case FilterIncomplete:
		return "Incomplete Only"
	case FilterPerfect:
		return "Perfect Days"
	case FilterThisWeek:
		return "This Week"
	default:
		return "Unknown"
	}
}

// Match reports whether the 0-based day passes the filter.
func (f Filter) Match(t model.Table, dayIndex int) bool {
	switch f {
	case FilterIncomplete:
		return !IsPerfectDay(t, dayIndex)
	case FilterPerfect:
		return IsPerfectDay(t, dayIndex)
	case FilterThisWeek:
		return dayIndex < WeekDays
	default:
		return true
	}
}

// Apply returns the 0-based indices of the days passing the filter.
func (f Filter) Apply(t model.Table) []int {
	var out []int
	for i := range t.Days {
		if f.Match(t, i) {
			out = append(out, i)
		}
	}
	return out
}
