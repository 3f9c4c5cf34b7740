package model

import (
	"fmt"
	"time"
)

// ChallengeDays is the length of the challenge.
const ChallengeDays = 30

// DateLayout is the on-disk date format of the Date column.
const DateLayout = "2006-01-02"

// DayRecord holds the check-ins of a single challenge day.
type DayRecord struct {
	Day   int       // 1..30
	Date  time.Time // calendar date, UTC midnight
	Flags [PlatformCount]bool
}

// Posts returns how many platforms were posted to on this day.
func (r DayRecord) Posts() int {
	n := 0
	for _, done := range r.Flags {
		if done {
			n++
		}
	}
	return n
}

// Flag returns the check-in state of one platform. Unknown platforms are false.
func (r DayRecord) Flag(p Platform) bool {
	if !p.Valid() {
		return false
	}
	return r.Flags[p]
}

// Status classifies the day by its post count.
func (r DayRecord) Status() DayStatus {
	return StatusOf(r.Posts())
}

// Table is the 30-day tracking grid.
type Table struct {
	Days [ChallengeDays]DayRecord
}

// Create builds a fresh table starting on the calendar date of start with all
// flags cleared.
func Create(start time.Time) Table {
	var t Table
	first := DateOf(start)
	for i := range t.Days {
		t.Days[i] = DayRecord{
			Day:  i + 1,
			Date: first.AddDate(0, 0, i),
		}
	}
	return t
}

// Reset discards all check-ins and re-stamps the dates from start.
func Reset(start time.Time) Table {
	return Create(start)
}

// StartDate returns the date of day 1.
func (t Table) StartDate() time.Time {
	return t.Days[0].Date
}

// Record returns the record for a 1-based day number.
func (t Table) Record(day int) (DayRecord, error) {
	if day < 1 || day > ChallengeDays {
		return DayRecord{}, fmt.Errorf("%w: day %d outside 1..%d", ErrInvalidReference, day, ChallengeDays)
	}
	return t.Days[day-1], nil
}

// SetFlag sets the check-in of platform p on a 1-based day number.
func (t *Table) SetFlag(day int, p Platform, value bool) error {
	if day < 1 || day > ChallengeDays {
		return fmt.Errorf("%w: day %d outside 1..%d", ErrInvalidReference, day, ChallengeDays)
	}
	if !p.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidReference, p)
	}
	t.Days[day-1].Flags[p] = value
	return nil
}

// SetFlagByName is SetFlag with the platform given by its column name.
func (t *Table) SetFlagByName(day int, name string, value bool) error {
	p, err := ParsePlatform(name)
	if err != nil {
		return err
	}
	return t.SetFlag(day, p, value)
}

// DateOf truncates a timestamp to its calendar date, expressed as UTC midnight
// so that dates compare with ==.
func DateOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysElapsed returns the number of calendar days from start through now,
// inclusive. It is 1 on the start date and <= 0 before it.
func DaysElapsed(start, now time.Time) int {
	diff := DateOf(now).Sub(DateOf(start))
	return int(diff.Hours()/24) + 1
}
