package ui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/habit-tracker/internal/config"
	"github.com/ytget/habit-tracker/internal/model"
	"github.com/ytget/habit-tracker/internal/session"
	"github.com/ytget/habit-tracker/internal/stats"
)

var (
	uiStart = time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	uiToday = time.Date(2026, time.October, 6, 18, 0, 0, 0, time.UTC)
)

func newTestRootUI(t *testing.T) (*RootUI, *session.Service, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetExportDirectory(t.TempDir())
	svc := session.NewService(uiStart, session.WithClock(func() time.Time { return uiToday }))

	ui := NewRootUI(test.NewWindow(nil), svc, settings, nil)
	ui.run = func(j job) { j(context.Background()) }
	return ui, svc, settings
}

func TestRootUI_InitialRender(t *testing.T) {
	ui, _, settings := newTestRootUI(t)

	assert.Equal(t, "0", ui.metrics.streak.value.Text)
	assert.Equal(t, "0%", ui.metrics.completion.value.Text)
	assert.Equal(t, "0 / 300 posts", ui.metrics.completion.caption.Text)
	assert.Contains(t, ui.metrics.statusLine.Text, "Day 6 of 30")
	assert.Contains(t, ui.metrics.statusLine.Text, "Not connected")
	assert.Equal(t, ui.localization.TierMessage(stats.TierFirstStep), ui.footer.Text)

	// compact grid is the default view
	assert.True(t, ui.compactView.Visible())
	assert.False(t, ui.detailedView.Visible())

	start, ok := settings.GetStartDate()
	require.True(t, ok)
	assert.Equal(t, model.DateOf(uiStart), start)
}

func TestRootUI_ToggleRecordsCheckIn(t *testing.T) {
	ui, svc, _ := newTestRootUI(t)

	ui.compactCards[2].checks[model.YouTube].SetChecked(true)
	assert.True(t, svc.Table().Days[2].Flag(model.YouTube))

	ui.detailedCards[2].checks[model.YouTube].SetChecked(false)
	assert.False(t, svc.Table().Days[2].Flag(model.YouTube))
}

func TestRootUI_RenderDoesNotEchoCheckIns(t *testing.T) {
	ui, svc, _ := newTestRootUI(t)

	snap := svc.Snapshot()
	require.NoError(t, snap.Table.SetFlag(1, model.Facebook, true))
	ui.render(snap)

	assert.True(t, ui.compactCards[0].checks[model.Facebook].Checked)
	assert.False(t, svc.Table().Days[0].Flag(model.Facebook))
}

func TestRootUI_RenderSummary(t *testing.T) {
	ui, svc, _ := newTestRootUI(t)
	ctx := context.Background()
	for _, p := range model.Platforms() {
		require.NoError(t, svc.SetFlag(ctx, 1, p, true))
	}
	ui.render(svc.Snapshot())

	assert.Equal(t, "1", ui.metrics.perfect.value.Text)
	assert.Equal(t, "3%", ui.metrics.completion.value.Text)
	assert.Equal(t, "0.3", ui.metrics.average.value.Text)
	assert.Equal(t, "10/300", ui.metrics.postsLabel.Text)
	assert.Contains(t, ui.compactCards[0].item.Title, IconPerfect)

	top, bottom := ui.insights.Lines()
	assert.Equal(t, "Facebook: 1/30 days (3%)", top[0])
	assert.Equal(t, "Facebook: 1/30 days (3%)", bottom[0])
}

func TestRootUI_Filter(t *testing.T) {
	ui, svc, _ := newTestRootUI(t)
	for _, p := range model.Platforms() {
		require.NoError(t, svc.SetFlag(context.Background(), 3, p, true))
	}
	ui.render(svc.Snapshot())

	ui.viewSelect.SetSelected(ui.localization.GetText(KeyDetailedChecklist))
	assert.True(t, ui.detailedView.Visible())
	assert.False(t, ui.compactView.Visible())

	ui.filterSelect.SetSelectedIndex(int(stats.FilterPerfect))
	for i, card := range ui.detailedCards {
		assert.Equal(t, i == 2, card.Visible(), "day %d", i+1)
	}

	ui.filterSelect.SetSelectedIndex(int(stats.FilterThisWeek))
	for i, card := range ui.detailedCards {
		assert.Equal(t, i < stats.WeekDays, card.Visible(), "day %d", i+1)
	}
}

func TestRootUI_ExportCSV(t *testing.T) {
	ui, svc, _ := newTestRootUI(t)
	require.NoError(t, svc.SetFlag(context.Background(), 5, model.Threads, true))

	path, err := ui.exportCSV()
	require.NoError(t, err)
	assert.Equal(t, "habit_tracker_20261006.csv", filepath.Base(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	other := session.NewService(uiStart, session.WithClock(func() time.Time { return uiToday }))
	require.NoError(t, other.ImportCSV(context.Background(), f))
	assert.Equal(t, svc.Table(), other.Table())
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, settings := newTestRootUI(t)

	ui.onLanguageChange("ru")
	assert.Equal(t, "ru", settings.GetLanguage())
	assert.Equal(t, IconCalendar+" Сетка на 30 дней", ui.gridTitle.Text)
	assert.Equal(t, "День 1 "+IconEmpty, ui.compactCards[0].item.Title)
	assert.Equal(t, "Компактная сетка", ui.viewSelect.Selected)
}

func TestRootUI_AutoSaveToggle(t *testing.T) {
	ui, svc, _ := newTestRootUI(t)

	ui.onToggleAutoSave()
	assert.True(t, svc.AutoSave())
	ui.render(svc.Snapshot())
	assert.True(t, ui.autoSaveItem.Checked)
}

func TestRootUI_TrackerCallsGoThroughQueue(t *testing.T) {
	ui, svc, _ := newTestRootUI(t)
	var queued []job
	ui.run = func(j job) { queued = append(queued, j) }

	ui.onToggleAutoSave()
	assert.False(t, svc.AutoSave(), "toggle must wait for the queue")

	other := session.NewService(uiStart.AddDate(0, 0, 2))
	require.NoError(t, other.SetFlag(context.Background(), 4, model.Pinterest, true))
	var buf bytes.Buffer
	require.NoError(t, other.ExportCSV(&buf))
	ui.importCSV(buf.Bytes())
	assert.False(t, svc.Table().Days[3].Flag(model.Pinterest))

	require.Len(t, queued, 2)
	for _, j := range queued {
		j(context.Background())
	}
	assert.True(t, svc.AutoSave())
	assert.Equal(t, other.Table(), svc.Table())
}

func TestRootUI_ErrorMessageKeepsDetail(t *testing.T) {
	ui, svc, _ := newTestRootUI(t)

	err := svc.ImportCSV(context.Background(), strings.NewReader("Date,Facebook\n2026-10-01,TRUE\n"))
	require.ErrorIs(t, err, model.ErrFormat)

	msg := ui.errorMessage(KeyImportFailed, err)
	assert.Contains(t, msg, ui.localization.GetText(KeyImportFailed))
	assert.Contains(t, msg, err.Error())
	assert.Contains(t, msg, "Day")
	assert.Equal(t, ui.localization.GetText(KeyImportFailed), ui.errorMessage(KeyImportFailed, nil))
}
