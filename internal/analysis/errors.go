package analysis

import "errors"

// Errors attached to skipped section headers.
var (
	ErrSizeNotNumeric  = errors.New("size is not a valid integer")
	ErrSizeNotPositive = errors.New("size must be positive")
)
