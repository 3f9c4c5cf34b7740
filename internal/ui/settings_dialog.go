package ui

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/habit-tracker/internal/config"
	"github.com/ytget/habit-tracker/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	startDateEntry     *widget.Entry
	spreadsheetEntry   *widget.Entry
	sheetNameEntry     *widget.Entry
	credentialsEntry   *widget.Entry
	exportDirEntry     *widget.Entry
	revealCheck        *widget.Check
	languageSelect     *widget.Select
	languageCodeByName map[string]string

	onSaved func(start time.Time, startChanged bool)
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// SetOnSaved sets the callback run after the settings were stored
func (sd *SettingsDialog) SetOnSaved(onSaved func(start time.Time, startChanged bool)) {
	sd.onSaved = onSaved
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.startDateEntry = widget.NewEntry()
	sd.startDateEntry.SetPlaceHolder(model.DateLayout)
	sd.startDateEntry.Validator = validateDate(text(KeyInvalidDate))

	sd.spreadsheetEntry = widget.NewEntry()
	sd.sheetNameEntry = widget.NewEntry()

	sd.credentialsEntry = widget.NewEntry()
	sd.credentialsEntry.SetPlaceHolder("service-account.json")
	browseKeyBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseCredentials)
	credentialsRow := container.NewBorder(nil, nil, nil, browseKeyBtn, sd.credentialsEntry)

	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	sd.revealCheck = widget.NewCheck(text(KeyRevealExport), nil)

	// Language selection shows display names, stores codes
	labels := sd.settings.GetLanguageOptions()
	sd.languageCodeByName = make(map[string]string, len(labels))
	names := make([]string, 0, len(labels))
	for code, name := range labels {
		sd.languageCodeByName[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyChallengeSettings)),
		widget.NewSeparator(),
		widget.NewLabel(text(KeyStartDate)+":"),
		sd.startDateEntry,

		widget.NewSeparator(),
		widget.NewLabel(text(KeySyncSettings)),
		widget.NewSeparator(),
		widget.NewLabel(text(KeySpreadsheetID)+":"),
		sd.spreadsheetEntry,
		widget.NewLabel(text(KeySheetName)+":"),
		sd.sheetNameEntry,
		widget.NewLabel(text(KeyCredentialsFile)+":"),
		credentialsRow,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSettings)),
		widget.NewSeparator(),
		widget.NewLabel(text(KeyExportDirectory)+":"),
		exportDirRow,
		sd.revealCheck,
		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	if start, ok := sd.settings.GetStartDate(); ok {
		sd.startDateEntry.SetText(start.Format(model.DateLayout))
	}
	sd.spreadsheetEntry.SetText(sd.settings.GetSpreadsheetID())
	sd.sheetNameEntry.SetText(sd.settings.GetSheetName())
	sd.credentialsEntry.SetText(sd.settings.GetCredentialsPath())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterExport())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onBrowseCredentials handles key file browsing
func (sd *SettingsDialog) onBrowseCredentials() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.credentialsEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	var (
		start        time.Time
		startChanged bool
	)
	if raw := strings.TrimSpace(sd.startDateEntry.Text); raw != "" {
		parsed, err := time.Parse(model.DateLayout, raw)
		if err != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidDate), err), sd.window)
			return
		}
		previous, ok := sd.settings.GetStartDate()
		startChanged = !ok || !previous.Equal(parsed)
		start = parsed
		sd.settings.SetStartDate(parsed)
	}

	sd.settings.SetSpreadsheetID(strings.TrimSpace(sd.spreadsheetEntry.Text))
	sd.settings.SetSheetName(strings.TrimSpace(sd.sheetNameEntry.Text))
	sd.settings.SetCredentialsPath(strings.TrimSpace(sd.credentialsEntry.Text))

	if dir := strings.TrimSpace(sd.exportDirEntry.Text); dir != "" {
		sd.settings.SetExportDirectory(dir)
	}
	sd.settings.SetRevealAfterExport(sd.revealCheck.Checked)

	if code, ok := sd.languageCodeByName[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved(start, startChanged)
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// validateDate returns an entry validator for YYYY-MM-DD dates; empty is allowed
func validateDate(message string) fyne.StringValidator {
	return func(input string) error {
		input = strings.TrimSpace(input)
		if input == "" {
			return nil
		}
		if _, err := time.Parse(model.DateLayout, input); err != nil {
			return errors.New(message)
		}
		return nil
	}
}
