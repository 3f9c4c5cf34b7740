package model

import "time"

// ConnectionState tracks whether a remote spreadsheet is attached.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connected
)

func (s ConnectionState) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

// ChallengeMeta is the per-session challenge metadata.
type ChallengeMeta struct {
	StartDate  time.Time
	LastSync   time.Time // zero until the first successful remote load or save
	Connection ConnectionState
}

// Synced reports whether the session has ever synced with the remote.
func (m ChallengeMeta) Synced() bool {
	return !m.LastSync.IsZero()
}
