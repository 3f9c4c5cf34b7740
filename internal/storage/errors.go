package storage

import "errors"

var (
	// ErrSourceUnavailable is returned when a file or remote cannot be read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrDestinationUnavailable is returned when a file or remote cannot be
	// written.
	ErrDestinationUnavailable = errors.New("destination unavailable")

	// ErrAuth is returned when a credential is malformed or rejected.
	ErrAuth = errors.New("authorization failed")
)
