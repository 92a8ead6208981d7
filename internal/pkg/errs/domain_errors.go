package errs

import "errors"

// Sentinels shared across layers; use-case specific errors live next to their use case.
var (
	ErrNotFound           = errors.New("not found")
	ErrStoreOperation     = errors.New("store operation failed")
	ErrInvalidStoredValue = errors.New("invalid stored value")
)
