package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// hike or observation does not exist in the store.
// The CLI maps this to a user error (exit code 1).
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. blank name, unknown difficulty, negative distance).
var ErrValidation = errors.New("validation error")

// ErrConstraint is returned by repo functions when SQLite rejects a write
// because it would break the schema: a NOT NULL column left empty or an
// observation pointing at a hike that does not exist.
var ErrConstraint = errors.New("constraint violation")
