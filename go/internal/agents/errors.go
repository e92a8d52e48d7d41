package agents

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNoProfile      = errors.New("caller has no profile")
)
