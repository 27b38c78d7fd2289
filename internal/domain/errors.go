package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnsupported = errors.New("not supported on this platform")
)
