package retag

import "errors"

var (
	// ErrInvalidMaxAttempts indicates a retry call with a non-positive
	// attempt budget.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrInvalidConfig indicates a bad retagger configuration.
	ErrInvalidConfig = errors.New("invalid retag configuration")
)
