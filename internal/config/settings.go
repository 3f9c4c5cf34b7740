package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/habit-tracker/internal/model"
	"github.com/ytget/habit-tracker/internal/platform"
	"github.com/ytget/habit-tracker/internal/storage"
)

// Settings keys for Fyne preferences
const (
	KeyStartDate       = "challenge_start_date"
	KeySpreadsheetID   = "spreadsheet_id"
	KeySheetName       = "sheet_name"
	KeyCredentialsPath = "credentials_path"
	KeyExportDir       = "export_directory"
	KeySnapshotPath    = "snapshot_path"
	KeyLanguage        = "app_language"
	KeyRevealExport    = "reveal_after_export"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultRevealExport = true
	snapshotFileName    = "habit_tracker.db"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// ApplyEnv seeds preferences that are still unset from the process
// environment. Values chosen in the settings dialog are never overwritten.
func (s *Settings) ApplyEnv(env *Env) {
	if env == nil {
		return
	}
	prefs := s.app.Preferences()
	if prefs.String(KeyStartDate) == "" && !env.StartDate.IsZero() {
		s.SetStartDate(env.StartDate)
	}
	if prefs.String(KeySpreadsheetID) == "" && env.SpreadsheetID != "" {
		s.SetSpreadsheetID(env.SpreadsheetID)
	}
	if prefs.String(KeySheetName) == "" && env.SheetName != "" {
		s.SetSheetName(env.SheetName)
	}
	if prefs.String(KeyCredentialsPath) == "" && env.CredentialsFile != "" {
		s.SetCredentialsPath(env.CredentialsFile)
	}
	if prefs.String(KeySnapshotPath) == "" && env.SnapshotPath != "" {
		s.SetSnapshotPath(env.SnapshotPath)
	}
}

// GetStartDate returns the stored challenge start date; ok is false on first use.
func (s *Settings) GetStartDate() (time.Time, bool) {
	raw := s.app.Preferences().String(KeyStartDate)
	if raw == "" {
		return time.Time{}, false
	}
	start, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}

// SetStartDate stores the challenge start date
func (s *Settings) SetStartDate(start time.Time) {
	s.app.Preferences().SetString(KeyStartDate, model.DateOf(start).Format(model.DateLayout))
}

// GetSpreadsheetID returns the remote spreadsheet identifier
func (s *Settings) GetSpreadsheetID() string {
	return s.app.Preferences().StringWithFallback(KeySpreadsheetID, SpreadsheetID)
}

// SetSpreadsheetID sets the remote spreadsheet identifier
func (s *Settings) SetSpreadsheetID(id string) {
	s.app.Preferences().SetString(KeySpreadsheetID, id)
}

// GetSheetName returns the spreadsheet tab holding the table
func (s *Settings) GetSheetName() string {
	name := s.app.Preferences().String(KeySheetName)
	if name == "" {
		return storage.DefaultSheetName
	}
	return name
}

// SetSheetName sets the spreadsheet tab; empty restores the default
func (s *Settings) SetSheetName(name string) {
	if name == "" {
		name = storage.DefaultSheetName
	}
	s.app.Preferences().SetString(KeySheetName, name)
}

// GetCredentialsPath returns the last used service-account key file
func (s *Settings) GetCredentialsPath() string {
	return s.app.Preferences().String(KeyCredentialsPath)
}

// SetCredentialsPath remembers the service-account key file
func (s *Settings) SetCredentialsPath(path string) {
	s.app.Preferences().SetString(KeyCredentialsPath, path)
}

// GetExportDirectory returns the directory CSV exports are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.DefaultExportDir()
		if err != nil {
			defaultDir = "/tmp"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetSnapshotPath returns the local snapshot database path
func (s *Settings) GetSnapshotPath() string {
	path := s.app.Preferences().String(KeySnapshotPath)
	if path == "" {
		return platform.DataFile(s.app.Storage().RootURI().Path(), snapshotFileName)
	}
	return path
}

// SetSnapshotPath sets the local snapshot database path
func (s *Settings) SetSnapshotPath(path string) {
	s.app.Preferences().SetString(KeySnapshotPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealAfterExport returns whether to reveal an exported file
func (s *Settings) GetRevealAfterExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealExport, DefaultRevealExport)
}

// SetRevealAfterExport sets whether to reveal an exported file
func (s *Settings) SetRevealAfterExport(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealExport, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
