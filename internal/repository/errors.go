package repository

import "errors"

// ErrNotFound is returned when a lookup or update targets an ID that does
// not exist. Handlers map it to a 404.
var ErrNotFound = errors.New("record not found")
