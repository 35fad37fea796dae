package repository

import "errors"

// ErrNotFound is returned when a referenced row does not exist. Handlers
// branch on it with errors.Is to render the 404 page.
var ErrNotFound = errors.New("record not found")
