package repositories

import "errors"

// ErrNotFound is returned by any repository lookup that matches no
// record. Callers match it with errors.Is.
var ErrNotFound = errors.New("record not found")
