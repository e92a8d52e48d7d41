package pitches

import (
	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
)

// CreatePitchRequest represents the data needed to publish a pitch
type CreatePitchRequest struct {
	TeamID   models.TeamID
	PlayerID uuid.UUID
	Title    string
}
