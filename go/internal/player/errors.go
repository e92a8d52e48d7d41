package player

import "errors"

// ErrInvalidRequest is returned when a player request fails validation
var ErrInvalidRequest = errors.New("invalid player request")
