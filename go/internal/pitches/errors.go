package pitches

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid pitch request")
	ErrForbidden      = errors.New("caller does not act for the pitch team")
	ErrPitchClosed    = errors.New("pitch is closed")
)
