package notifications

import (
	"errors"
	"fmt"

	"github.com/mcdev12/transferdesk/go/internal/models"
)

var (
	// ErrInvalidEvent is returned for an event missing the images its type requires.
	ErrInvalidEvent = errors.New("invalid interest event")
	// ErrUnknownTransition is returned for a status change outside the routing table.
	ErrUnknownTransition = errors.New("interest transition has no route")
	// ErrNotificationNotFound is returned when a notification is missing or belongs to someone else.
	ErrNotificationNotFound = errors.New("notification not found")
)

// Party names the side of an interest a resolution failure refers to.
type Party string

const (
	PartyPitch Party = "pitch"
	PartyTeam  Party = "team"
	PartyAgent Party = "agent"
)

// ResolutionError means a party could not be mapped to a profile's user id.
// It is never retried: the data has to change first.
type ResolutionError struct {
	Party   Party
	PartyID string
	Reason  string
	Err     error
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("cannot resolve %s %s: %s", e.Party, e.PartyID, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// SelfAddressError means a notification would land on the wrong side: either
// the team and agent share one user, or the addressee is the acting user.
type SelfAddressError struct {
	UserID  models.UserID
	TeamID  models.TeamID
	AgentID models.AgentID
	// Actor is set when the addressee equals the acting user.
	Actor bool
}

func (e *SelfAddressError) Error() string {
	if e.Actor {
		return fmt.Sprintf("notification addressee %s is the acting user (team %s, agent %s)", e.UserID, e.TeamID, e.AgentID)
	}
	return fmt.Sprintf("team %s and agent %s resolve to the same user %s", e.TeamID, e.AgentID, e.UserID)
}
