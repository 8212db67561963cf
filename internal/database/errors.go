package database

import "errors"

// ErrNoContext is returned when a repository has no usable database handle.
var ErrNoContext = errors.New("database: missing database context")
