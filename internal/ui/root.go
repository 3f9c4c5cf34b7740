package ui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/habit-tracker/internal/config"
	"github.com/ytget/habit-tracker/internal/model"
	"github.com/ytget/habit-tracker/internal/platform"
	"github.com/ytget/habit-tracker/internal/session"
	"github.com/ytget/habit-tracker/internal/stats"
)

// job is a tracker call run off the UI goroutine.
type job func(ctx context.Context)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	tracker      session.Tracker
	settings     *config.Settings
	localization *Localization
	logger       *slog.Logger

	// Dashboard sections
	subtitle     *widget.Label
	metrics      *MetricsPanel
	gridTitle    *widget.Label
	viewSelect   *widget.RadioGroup
	filterLabel  *widget.Label
	filterSelect *widget.Select
	filterRow    *fyne.Container
	compactView  *fyne.Container
	detailedView *fyne.Container
	insights     *InsightsPanel
	footer       *widget.Label

	compactCards  [model.ChallengeDays]*DayCard
	detailedCards [model.ChallengeDays]*DayCard

	currentFilter stats.Filter
	detailedMode  bool
	last          session.Snapshot

	autoSaveItem *fyne.MenuItem

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationTimer     *time.Timer

	// tracker calls are serialized so check-ins reach the store in click order
	jobs chan job
	run  func(job)
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, tracker session.Tracker, settings *config.Settings, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = slog.Default()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		tracker:      tracker,
		settings:     settings,
		localization: localization,
		logger:       logger.With("component", "ui"),
		jobs:         make(chan job, JobQueueSize),
	}
	ui.run = ui.enqueue
	go ui.runJobs()

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Set up callback for session updates
	ui.tracker.SetUpdateCallback(ui.onSnapshot)
	ui.render(ui.tracker.Snapshot())
	ui.expandToday()

	ui.logger.Info("ui ready", "language", localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.subtitle = widget.NewLabel(ui.localization.GetText(KeySubtitle))
	ui.subtitle.TextStyle = fyne.TextStyle{Italic: true}

	var header *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, settingsBtn, ui.subtitle)
	} else {
		header = container.NewBorder(nil, nil, nil, settingsBtn, ui.subtitle)
	}

	// Notification panel under the header (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.metrics = NewMetricsPanel(ui.localization)

	ui.gridTitle = widget.NewLabel("")
	ui.gridTitle.TextStyle = fyne.TextStyle{Bold: true}

	ui.viewSelect = widget.NewRadioGroup(ui.viewOptions(), ui.onViewChanged)
	ui.viewSelect.Horizontal = true
	ui.viewSelect.Required = true

	ui.filterLabel = widget.NewLabel("")
	ui.filterSelect = widget.NewSelect(ui.filterOptions(), ui.onFilterChanged)
	ui.filterRow = container.NewHBox(ui.filterLabel, ui.filterSelect)

	snap := ui.tracker.Snapshot()
	compact := make([]fyne.CanvasObject, 0, model.ChallengeDays)
	detailed := make([]fyne.CanvasObject, 0, model.ChallengeDays)
	for i, rec := range snap.Table.Days {
		ui.compactCards[i] = NewDayCard(rec, ui.localization, false)
		ui.compactCards[i].SetOnToggle(ui.onToggle)
		ui.detailedCards[i] = NewDayCard(rec, ui.localization, true)
		ui.detailedCards[i].SetOnToggle(ui.onToggle)
		compact = append(compact, ui.compactCards[i])
		detailed = append(detailed, ui.detailedCards[i])
	}
	ui.compactView = container.NewGridWithColumns(GridColumns, compact...)
	ui.detailedView = container.NewVBox(detailed...)

	ui.insights = NewInsightsPanel(ui.localization)

	ui.footer = widget.NewLabel("")
	ui.footer.Wrapping = fyne.TextWrapWord
	ui.footer.Alignment = fyne.TextAlignCenter

	ui.refreshSectionTexts()
	ui.viewSelect.SetSelected(ui.viewSelect.Options[0])
	ui.filterSelect.SetSelectedIndex(int(stats.FilterAll))

	body := container.NewVBox(
		ui.metrics.Container(),
		widget.NewSeparator(),
		ui.gridTitle,
		ui.viewSelect,
		ui.filterRow,
		ui.compactView,
		ui.detailedView,
		widget.NewSeparator(),
		ui.insights.Container(),
		widget.NewSeparator(),
		ui.footer,
	)

	top := container.NewVBox(header, ui.notificationContainer)
	content := container.NewBorder(
		top,                        // top
		nil,                        // bottom
		nil,                        // left
		nil,                        // right
		container.NewVScroll(body), // center
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile),
		fyne.NewMenuItem(ui.localization.GetText(KeyLoadCSV), ui.onLoadCSV),
		fyne.NewMenuItem(ui.localization.GetText(KeySaveCSV), ui.onSaveCSV),
		fyne.NewMenuItem(ui.localization.GetText(KeyOpenCSV), ui.onOpenCSV),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyReset), ui.onReset),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings),
	)

	ui.autoSaveItem = fyne.NewMenuItem(ui.localization.GetText(KeyAutoSave), ui.onToggleAutoSave)
	ui.autoSaveItem.Checked = ui.tracker.AutoSave()
	syncMenu := fyne.NewMenu(ui.localization.GetText(KeySpreadsheet),
		fyne.NewMenuItem(ui.localization.GetText(KeyConnect), ui.onConnect),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyPull), ui.onPull),
		fyne.NewMenuItem(ui.localization.GetText(KeyPush), ui.onPush),
		fyne.NewMenuItemSeparator(),
		ui.autoSaveItem,
	)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, syncMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.subtitle.SetText(ui.localization.GetText(KeySubtitle))
	ui.metrics.RefreshTexts()
	ui.insights.RefreshTexts()

	viewIndex := 0
	if ui.detailedMode {
		viewIndex = 1
	}
	ui.viewSelect.Options = ui.viewOptions()
	ui.viewSelect.SetSelected(ui.viewSelect.Options[viewIndex])
	ui.viewSelect.Refresh()

	ui.filterSelect.Options = ui.filterOptions()
	ui.filterSelect.SetSelectedIndex(int(ui.currentFilter))

	ui.refreshSectionTexts()
	for i := range ui.compactCards {
		ui.compactCards[i].RefreshTexts()
		ui.detailedCards[i].RefreshTexts()
	}
	ui.render(ui.last)
}

func (ui *RootUI) refreshSectionTexts() {
	ui.gridTitle.SetText(IconCalendar + " " + ui.localization.GetText(KeyHabitGrid))
	ui.filterLabel.SetText(ui.localization.GetText(KeyFilterDays))
}

func (ui *RootUI) viewOptions() []string {
	return []string{
		ui.localization.GetText(KeyCompactGrid),
		ui.localization.GetText(KeyDetailedChecklist),
	}
}

func (ui *RootUI) filterOptions() []string {
	filters := stats.Filters()
	options := make([]string, len(filters))
	for i, f := range filters {
		options[i] = ui.localization.FilterLabel(f)
	}
	return options
}

// onViewChanged switches between the compact grid and the detailed checklist
func (ui *RootUI) onViewChanged(selected string) {
	if selected == "" {
		return
	}
	ui.detailedMode = selected == ui.localization.GetText(KeyDetailedChecklist)
	if ui.detailedMode {
		ui.compactView.Hide()
		ui.filterRow.Show()
		ui.detailedView.Show()
	} else {
		ui.detailedView.Hide()
		ui.filterRow.Hide()
		ui.compactView.Show()
	}
}

// onFilterChanged handles filter changes in the detailed checklist
func (ui *RootUI) onFilterChanged(string) {
	index := ui.filterSelect.SelectedIndex()
	filters := stats.Filters()
	if index < 0 || index >= len(filters) {
		return
	}
	ui.currentFilter = filters[index]
	ui.applyFilter(ui.last.Table)
}

func (ui *RootUI) applyFilter(t model.Table) {
	for i, card := range ui.detailedCards {
		if card == nil {
			continue
		}
		if ui.currentFilter.Match(t, i) {
			card.Show()
		} else {
			card.Hide()
		}
	}
}

// expandToday opens today's card in the detailed checklist
func (ui *RootUI) expandToday() {
	if i := ui.last.DaysElapsed - 1; i >= 0 && i < model.ChallengeDays {
		ui.detailedCards[i].Expand()
	}
}

// onSnapshot handles state updates from the session
func (ui *RootUI) onSnapshot(snap session.Snapshot) {
	fyne.Do(func() {
		ui.render(snap)
	})
}

// render redraws every section from snap. Must run on the UI goroutine.
func (ui *RootUI) render(snap session.Snapshot) {
	summary := stats.Summarize(snap.Table, snap.DaysElapsed)
	ui.last = snap

	ui.metrics.Update(summary, snap)
	for i, rec := range snap.Table.Days {
		ui.compactCards[i].SetRecord(rec)
		ui.detailedCards[i].SetRecord(rec)
	}
	ui.applyFilter(snap.Table)
	ui.insights.Update(snap.Table)
	ui.footer.SetText(ui.localization.TierMessage(summary.Tier))

	if ui.autoSaveItem != nil && ui.autoSaveItem.Checked != snap.AutoSave {
		ui.autoSaveItem.Checked = snap.AutoSave
		if menu := ui.window.MainMenu(); menu != nil {
			menu.Refresh()
		}
	}

	if stored, ok := ui.settings.GetStartDate(); !ok || !stored.Equal(snap.Meta.StartDate) {
		ui.settings.SetStartDate(snap.Meta.StartDate)
	}
}

// onToggle records a check-in from a day card
func (ui *RootUI) onToggle(day int, p model.Platform, value bool) {
	ui.run(func(ctx context.Context) {
		if err := ui.tracker.SetFlag(ctx, day, p, value); err != nil {
			ui.logger.Warn("check-in not fully saved", "day", day, "platform", p.String(), "error", err)
			ui.showError(KeyAutoSaveFailed, err)
		}
	})
}

// onLoadCSV imports progress from a CSV file
func (ui *RootUI) onLoadCSV() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			ui.showError(KeyImportFailed, err)
			return
		}
		ui.importCSV(data)
	}, ui.window)
	fd.SetFilter(fynestorage.NewExtensionFileFilter([]string{".csv"}))
	if dir, err := fynestorage.ListerForURI(fynestorage.NewFileURI(ui.settings.GetExportDirectory())); err == nil {
		fd.SetLocation(dir)
	}
	fd.Show()
}

func (ui *RootUI) importCSV(data []byte) {
	ui.run(func(ctx context.Context) {
		if err := ui.tracker.ImportCSV(ctx, bytes.NewReader(data)); err != nil {
			ui.showError(KeyImportFailed, err)
			return
		}
		ui.showNotification(ui.localization.GetText(KeyImported), false)
	})
}

// onSaveCSV writes today's export file into the export directory
func (ui *RootUI) onSaveCSV() {
	path, err := ui.exportCSV()
	if err != nil {
		ui.showError(KeyExportFailed, err)
		return
	}
	ui.showNotification(ui.localization.Textf(KeyExportedFormat, path), false)

	if ui.settings.GetRevealAfterExport() {
		if err := platform.OpenFileInManager(path); err != nil {
			ui.logger.Warn("reveal failed", "path", path, "error", err)
		}
	}
}

// onOpenCSV exports the table and opens it in the default spreadsheet app
func (ui *RootUI) onOpenCSV() {
	path, err := ui.exportCSV()
	if err != nil {
		ui.showError(KeyExportFailed, err)
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		ui.logger.Warn("open failed", "path", path, "error", err)
		ui.showNotification(ui.localization.Textf(KeyExportedFormat, path), false)
	}
}

func (ui *RootUI) exportCSV() (string, error) {
	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("export dir: %w", err)
	}
	path := filepath.Join(dir, ui.tracker.ExportFileName())

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := ui.tracker.ExportCSV(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	ui.logger.Info("progress exported", "path", path)
	return path, nil
}

// onReset asks for confirmation and restarts the challenge today
func (ui *RootUI) onReset() {
	dialog.ShowConfirm(ui.localization.GetText(KeyReset), ui.localization.GetText(KeyResetConfirm), func(ok bool) {
		if !ok {
			return
		}
		ui.run(func(ctx context.Context) {
			ui.tracker.Reset(ctx)
		})
	}, ui.window)
}

// onConnect picks a service-account key and attaches the spreadsheet
func (ui *RootUI) onConnect() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		credentials, err := io.ReadAll(io.LimitReader(reader, platform.MaxCredentialsSize))
		if err != nil {
			ui.showError(KeyConnectFailed, err)
			return
		}
		ui.settings.SetCredentialsPath(reader.URI().Path())
		ui.connect(credentials)
	}, ui.window)
	fd.SetFilter(fynestorage.NewExtensionFileFilter([]string{".json"}))
	fd.Show()
}

// ConnectSaved attaches the spreadsheet with the remembered key file, if any.
func (ui *RootUI) ConnectSaved() {
	path := ui.settings.GetCredentialsPath()
	if path == "" {
		return
	}
	credentials, err := platform.ReadCredentials(path)
	if err != nil {
		ui.logger.Warn("saved credentials unavailable", "path", path, "error", err)
		return
	}
	ui.connect(credentials)
}

func (ui *RootUI) connect(credentials []byte) {
	ui.showNotification(ui.localization.GetText(KeyConnecting), true)
	ui.run(func(ctx context.Context) {
		if err := ui.tracker.Connect(ctx, credentials); err != nil {
			ui.showError(KeyConnectFailed, err)
			return
		}
		ui.showNotification(ui.localization.GetText(KeyConnectOK), false)
	})
}

// onPull replaces the table with the spreadsheet contents
func (ui *RootUI) onPull() {
	ui.showNotification(ui.localization.GetText(KeyPull)+"...", true)
	ui.run(func(ctx context.Context) {
		if err := ui.tracker.LoadRemote(ctx); err != nil {
			ui.showError(KeyPullFailed, err)
			return
		}
		ui.showNotification(ui.localization.GetText(KeyPullOK), false)
	})
}

// onPush overwrites the spreadsheet with the table
func (ui *RootUI) onPush() {
	ui.showNotification(ui.localization.GetText(KeyPush)+"...", true)
	ui.run(func(ctx context.Context) {
		if err := ui.tracker.SaveRemote(ctx); err != nil {
			ui.showError(KeyPushFailed, err)
			return
		}
		ui.showNotification(ui.localization.GetText(KeyPushOK), false)
	})
}

// onToggleAutoSave flips auto-save for this session
func (ui *RootUI) onToggleAutoSave() {
	ui.run(func(context.Context) {
		ui.tracker.SetAutoSave(!ui.tracker.AutoSave())
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	before := ui.localization.GetCurrentLanguage()
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	sd.SetOnSaved(func(start time.Time, startChanged bool) {
		if startChanged {
			ui.run(func(ctx context.Context) {
				ui.tracker.SetStartDate(ctx, start)
			})
		}
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		if ui.localization.GetCurrentLanguage() != before {
			ui.refreshUITexts()
			ui.createMenu()
		}
	})
	sd.Show()
}

// enqueue hands a job to the worker goroutine
func (ui *RootUI) enqueue(j job) {
	ui.jobs <- j
}

// runJobs executes queued tracker calls one at a time
func (ui *RootUI) runJobs() {
	for j := range ui.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), RemoteTimeout)
		j(ctx)
		cancel()
	}
}

// showError reports a failed action in the notification panel
func (ui *RootUI) showError(key string, err error) {
	ui.showNotification(ui.errorMessage(key, err), false)
}

// errorMessage keeps the whole error chain so the detail reaches the user.
func (ui *RootUI) errorMessage(key string, err error) string {
	msg := ui.localization.GetText(key)
	if err == nil {
		return msg
	}
	return IconError + " " + msg + ": " + err.Error()
}

// showNotification displays a message in the notification panel under the header.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()

		if ui.notificationTimer != nil {
			ui.notificationTimer.Stop()
		}
		if !spinning {
			ui.notificationTimer = time.AfterFunc(ToastAutoHide, ui.hideNotification)
		}
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}
