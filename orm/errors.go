package orm

import "errors"

// ErrNotFound is returned when a query expects exactly one row but finds none.
var ErrNotFound = errors.New("orm: not found")

// ErrRollback is wrapped by every error returned from Session.Commit. The
// transaction has been rolled back when it is returned.
var ErrRollback = errors.New("orm: transaction rolled back")

// ErrTransientReference is returned at flush time when an entity refers to
// another entity that was neither persisted before nor queued in the same
// Session.
var ErrTransientReference = errors.New("orm: reference to an unsaved entity")

// ErrRollbackOnly is returned by Flush and Commit once a previous flush
// failed. The only way out is Rollback.
var ErrRollbackOnly = errors.New("orm: session is marked rollback-only")
