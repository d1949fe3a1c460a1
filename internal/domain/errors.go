package domain

import "errors"

// Sentinel errors used throughout the application.
// The API layer translates these to HTTP status codes via a single mapError function.
var (
	ErrInvalidType      = errors.New("invalid type: must be info, success, warning, or failure")
	ErrMissingKey       = errors.New("key is required when useKey is set")
	ErrMissingURLs      = errors.New("urls is required unless useKey is set")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrEmptyDomain      = errors.New("credential domain must not be empty")
	ErrInvalidPolicy    = errors.New("invalid policy: must be fail_fast or collect_errors")
	ErrUnexpectedStatus = errors.New("unexpected apprise status")
	ErrBatchTooLarge    = errors.New("batch exceeds the configured maximum size")
)
