package interest

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid interest request")
	ErrForbidden         = errors.New("caller may not act on this interest")
	ErrInterestExists    = errors.New("agent already expressed interest in this pitch")
	ErrInterestNotFound  = errors.New("interest not found")
	ErrInvalidTransition = errors.New("interest status cannot change from its current state")
)
