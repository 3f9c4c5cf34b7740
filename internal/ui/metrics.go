package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/habit-tracker/internal/model"
	"github.com/ytget/habit-tracker/internal/session"
	"github.com/ytget/habit-tracker/internal/stats"
)

// metric is one headline tile: heading, big value and a caption.
type metric struct {
	heading *widget.Label
	value   *widget.Label
	caption *widget.Label
}

func newMetric() *metric {
	m := &metric{
		heading: widget.NewLabel(""),
		value:   widget.NewLabel(""),
		caption: widget.NewLabel(""),
	}
	m.heading.TextStyle = fyne.TextStyle{Bold: true}
	m.heading.Alignment = fyne.TextAlignCenter
	m.value.TextStyle = fyne.TextStyle{Bold: true}
	m.value.Alignment = fyne.TextAlignCenter
	m.value.SizeName = theme.SizeNameHeadingText
	m.caption.Alignment = fyne.TextAlignCenter
	return m
}

func (m *metric) object() fyne.CanvasObject {
	return widget.NewCard("", "", container.NewVBox(m.heading, m.value, m.caption))
}

// MetricsPanel is the dashboard header: four metric tiles, the overall
// progress bar and the challenge/sync status line.
type MetricsPanel struct {
	localization *Localization

	container  *fyne.Container
	title      *widget.Label
	statusLine *widget.Label
	streak     *metric
	completion *metric
	perfect    *metric
	average    *metric

	progressTitle *widget.Label
	progress      *widget.ProgressBar
	postsLabel    *widget.Label
}

// NewMetricsPanel creates the dashboard header
func NewMetricsPanel(localization *Localization) *MetricsPanel {
	mp := &MetricsPanel{
		localization: localization,
		streak:       newMetric(),
		completion:   newMetric(),
		perfect:      newMetric(),
		average:      newMetric(),
	}
	mp.createUI()
	return mp
}

// Container returns the panel's root object
func (mp *MetricsPanel) Container() *fyne.Container {
	return mp.container
}

func (mp *MetricsPanel) createUI() {
	mp.title = widget.NewLabel("")
	mp.title.TextStyle = fyne.TextStyle{Bold: true}
	mp.statusLine = widget.NewLabel("")
	mp.statusLine.Alignment = fyne.TextAlignTrailing

	mp.progressTitle = widget.NewLabel("")
	mp.progress = widget.NewProgressBar()
	mp.postsLabel = widget.NewLabel("")

	tiles := container.NewGridWithColumns(4,
		mp.streak.object(),
		mp.completion.object(),
		mp.perfect.object(),
		mp.average.object(),
	)

	mp.container = container.NewVBox(
		container.NewBorder(nil, nil, mp.title, mp.statusLine),
		tiles,
		mp.progressTitle,
		container.NewBorder(nil, nil, nil, mp.postsLabel, mp.progress),
	)
	mp.RefreshTexts()
}

// RefreshTexts re-reads the localized headings
func (mp *MetricsPanel) RefreshTexts() {
	mp.title.SetText(IconInsights + " " + mp.localization.GetText(KeyDashboard))
	mp.streak.heading.SetText(IconStreak + " " + mp.localization.GetText(KeyCurrentStreak))
	mp.completion.heading.SetText(IconCompletion + " " + mp.localization.GetText(KeyCompletion))
	mp.perfect.heading.SetText(IconTarget + " " + mp.localization.GetText(KeyPerfectDays))
	mp.perfect.caption.SetText(mp.localization.GetText(KeyAllPlatforms))
	mp.average.heading.SetText(IconAverage + " " + mp.localization.GetText(KeyDailyAverage))
	mp.average.caption.SetText(mp.localization.GetText(KeyPerDay))
	mp.progressTitle.SetText(mp.localization.GetText(KeyOverallProgress))
}

// Update renders the summary and session status
func (mp *MetricsPanel) Update(summary stats.Summary, snap session.Snapshot) {
	mp.streak.value.SetText(fmt.Sprint(summary.Streak.Current))
	mp.streak.caption.SetText(mp.localization.Textf(KeyLongestFormat, summary.Streak.Longest))

	mp.completion.value.SetText(fmt.Sprintf("%.0f%%", summary.CompletionRate))
	mp.completion.caption.SetText(mp.localization.Textf(KeyPostsFormat, summary.TotalPosts, summary.PossiblePosts))

	mp.perfect.value.SetText(fmt.Sprint(summary.PerfectDays))
	mp.average.value.SetText(fmt.Sprintf("%.1f", summary.AveragePerDay))

	mp.progress.SetValue(summary.Progress())
	mp.postsLabel.SetText(fmt.Sprintf(PostsLabelFormat, summary.TotalPosts, summary.PossiblePosts))

	mp.statusLine.SetText(mp.statusText(summary, snap.Meta))
}

func (mp *MetricsPanel) statusText(summary stats.Summary, meta model.ChallengeMeta) string {
	day := mp.localization.GetText(KeyChallengeFinished)
	if d := summary.CurrentDay(); d > 0 {
		day = mp.localization.Textf(KeyChallengeDay, d)
	}

	conn := mp.localization.GetText(KeyDisconnected)
	if meta.Connection == model.Connected {
		conn = IconCloud + " " + mp.localization.GetText(KeyConnected)
	}

	sync := mp.localization.GetText(KeyNeverSynced)
	if meta.Synced() {
		sync = mp.localization.Textf(KeyLastSyncFormat, humanize.Time(meta.LastSync))
	}
	return day + MiddleDotSeparator + conn + MiddleDotSeparator + sync
}
