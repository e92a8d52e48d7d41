package interest

import (
	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
)

const maxMessageLength = 2000

// CreateInterestRequest represents an agent's expression of interest
type CreateInterestRequest struct {
	PitchID uuid.UUID
	AgentID models.AgentID
	Message string
}

// CheckFunc vets the locked current state of an interest before a write.
type CheckFunc func(current *models.Interest) error

// teamStatuses are the statuses a team may set.
var teamStatuses = map[models.InterestStatus]bool{
	models.InterestStatusRequested:   true,
	models.InterestStatusNegotiating: true,
	models.InterestStatusRejected:    true,
}
