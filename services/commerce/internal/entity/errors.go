package entity

import "errors"

// Sentinel errors surfaced to callers. Handlers map these to HTTP status
// codes; anything not in this list is reported as a generic internal error.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrNotFound            = errors.New("not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrNotCompleted        = errors.New("generation is not completed")
	ErrReceiptInvalid      = errors.New("receipt validation failed")
)
