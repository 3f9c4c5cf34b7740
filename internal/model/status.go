package model

// DayStatus classifies a day by how many platforms were posted to.
type DayStatus string

const (
	// DayStatusEmpty means nothing was posted
	DayStatusEmpty DayStatus = "Empty"

	// DayStatusPartial means 1-4 platforms were posted to
	DayStatusPartial DayStatus = "Partial"

	// DayStatusActive means at least ActiveThreshold platforms were posted to
	DayStatusActive DayStatus = "Active"

	// DayStatusPerfect means every platform was posted to
	DayStatusPerfect DayStatus = "Perfect"
)

// ActiveThreshold is the minimum post count for a day to extend a streak.
const ActiveThreshold = 5

// StatusOf classifies a post count.
func StatusOf(posts int) DayStatus {
	switch {
	case posts >= PlatformCount:
		return DayStatusPerfect
	case posts >= ActiveThreshold:
		return DayStatusActive
	case posts > 0:
		return DayStatusPartial
	default:
		return DayStatusEmpty
	}
}

// String returns the string representation of DayStatus
func (ds DayStatus) String() string {
	return string(ds)
}

// IsActive returns true if the day counts toward a streak
func (ds DayStatus) IsActive() bool {
	return ds == DayStatusActive || ds == DayStatusPerfect
}

// IsComplete returns true if every platform was posted to
func (ds DayStatus) IsComplete() bool {
	return ds == DayStatusPerfect
}
