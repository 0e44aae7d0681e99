package db

import "errors"

// ErrMissing means that a record is not found for the given identity.
//
// Check with errors.Is; implementations wrap it with detail.
var ErrMissing = errors.New("missing record")
