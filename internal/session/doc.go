package session

// Package session owns the state of one dashboard session: the tracking
// table, challenge metadata, the auto-save toggle and the attached stores.
// Every mutation runs to completion on the caller's goroutine and then
// notifies the registered update callback so the front end can re-render.
