package apperr

import "errors"

// Error kinds surfaced by the reminder and alert services. Callers match
// with errors.Is; the delivery layer maps them to HTTP status codes.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrValidation        = errors.New("validation failed")
)
