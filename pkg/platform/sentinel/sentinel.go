// Package sentinel holds dependency-level errors. Stores return these (optionally wrapped)
// so services can translate them into domain errors exactly once.
package sentinel

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrUnavailable   = errors.New("unavailable")
)
