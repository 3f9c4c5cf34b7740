package ui

// Package ui contains the Fyne-based desktop dashboard. It renders the
// challenge metrics, the day grid and checklist, and platform insights, and
// forwards every check-in, import, export and sync action to a
// session.Tracker. All UI strings are localized via Localization.
