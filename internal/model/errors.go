package model

import "errors"

var (
	// ErrInvalidReference is returned for a day number outside 1..30 or an
	// unknown platform.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrFormat is returned when tabular input cannot be parsed into a table.
	ErrFormat = errors.New("format error")
)
