package ui

import (
	"time"

	"github.com/ytget/habit-tracker/internal/model"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconError    = "❌"
	IconLanguage = "🌐"
	IconSync     = "🔄"
	IconCloud    = "☁"

	// Day status icons
	IconPerfect = "✅"
	IconActive  = "🟡"
	IconPartial = "🟠"
	IconEmpty   = "⚪"

	// Metric headings
	IconStreak     = "🔥"
	IconCompletion = "✅"
	IconTarget     = "🎯"
	IconAverage    = "📈"
	IconCalendar   = "📅"
	IconInsights   = "📊"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
	PostsLabelFormat    = "%d/%d"
)

// Layout sizing
const (
	GridColumns = 5 // six rows of five day cards

	CardMinWidth  float32 = 150
	CardMinHeight float32 = 64

	CheckColumns = 2

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 440
)

// InsightsCount is the length of each platform ranking.
const InsightsCount = 5

// Toast notification behavior
const (
	ToastAutoHide = 5 * time.Second
)

// Remote calls
const (
	RemoteTimeout = 30 * time.Second
	JobQueueSize  = 32
)

// StatusIcon returns the emoji shown next to a day with the given status.
func StatusIcon(status model.DayStatus) string {
	switch status {
	case model.DayStatusPerfect:
		return IconPerfect
	case model.DayStatusActive:
		return IconActive
	case model.DayStatusPartial:
		return IconPartial
	default:
		return IconEmpty
	}
}
