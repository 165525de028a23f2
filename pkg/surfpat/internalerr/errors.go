package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrMissingAnnotation = errors.New("missing token annotation")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
