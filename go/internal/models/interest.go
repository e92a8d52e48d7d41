package models

import (
	"time"

	"github.com/google/uuid"
)

// InterestStatus is the lifecycle state of an agent's interest in a pitch
type InterestStatus string

const (
	InterestStatusInterested  InterestStatus = "interested"  // agent-initiated
	InterestStatusRequested   InterestStatus = "requested"   // team asked for more info
	InterestStatusNegotiating InterestStatus = "negotiating" // team opened negotiation
	InterestStatusRejected    InterestStatus = "rejected"    // team declined, terminal
	InterestStatusWithdrawn   InterestStatus = "withdrawn"   // agent backed out, terminal
)

// Valid reports whether s is a known status.
func (s InterestStatus) Valid() bool {
	switch s {
	case InterestStatusInterested, InterestStatusRequested, InterestStatusNegotiating,
		InterestStatusRejected, InterestStatusWithdrawn:
		return true
	}
	return false
}

// Terminal reports whether no further status change is allowed.
func (s InterestStatus) Terminal() bool {
	return s == InterestStatusRejected || s == InterestStatusWithdrawn
}

// Interest is an agent's expression of interest in a pitch.
// At most one exists per (AgentID, PitchID).
type Interest struct {
	ID        uuid.UUID      `json:"id"`
	PitchID   uuid.UUID      `json:"pitch_id"`
	AgentID   AgentID        `json:"agent_id"`
	Status    InterestStatus `json:"status"`
	Message   string         `json:"message,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// InterestEventType identifies the kind of write applied to an interest row
type InterestEventType string

const (
	InterestCreated       InterestEventType = "created"
	InterestStatusChanged InterestEventType = "status_changed"
	InterestDeleted       InterestEventType = "deleted"
)

// InterestEvent carries the before- and after-image of a single interest write.
// Before is nil on create; After is nil on delete.
type InterestEvent struct {
	Type   InterestEventType
	Before *Interest
	After  *Interest
	Actor  UserID
}

// Subject returns whichever image is present, preferring the after-image.
func (e InterestEvent) Subject() *Interest {
	if e.After != nil {
		return e.After
	}
	return e.Before
}
