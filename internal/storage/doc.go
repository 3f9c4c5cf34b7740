package storage

// Package storage persists the tracking table. Every back-end speaks the same
// tabular schema (Day, Date, then one column per platform) and implements
// Store: a local CSV file, a Google Sheets spreadsheet and a local SQLite
// snapshot.
