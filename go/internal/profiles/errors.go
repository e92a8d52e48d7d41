package profiles

import "errors"

var (
	ErrProfileExists = errors.New("profile already exists for user")
	ErrForbidden     = errors.New("caller does not own this profile")
)

// ErrInvalidRequest wraps request validation failures.
var ErrInvalidRequest = errors.New("invalid request")
