package platform

// Package platform contains OS integration glue: filesystem helpers for
// exports and local data, and OS open/reveal of exported files.
