package tui

import "errors"

// ErrMissingCheckService is returned when the check service is not provided.
var ErrMissingCheckService = errors.New("tui: check service is required")

// ErrMissingPath is returned when no document path is given.
var ErrMissingPath = errors.New("tui: document path is required")
