package models

import (
	"time"

	"github.com/google/uuid"
)

// PitchStatus is controlled by the owning team
type PitchStatus string

const (
	PitchStatusOpen   PitchStatus = "open"
	PitchStatusClosed PitchStatus = "closed"
)

// Pitch is a team's transfer offer for one player
type Pitch struct {
	ID        uuid.UUID   `json:"id"`
	TeamID    TeamID      `json:"team_id"`
	PlayerID  uuid.UUID   `json:"player_id"`
	Title     string      `json:"title"`
	Status    PitchStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
