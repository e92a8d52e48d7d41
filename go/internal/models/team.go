package models

import (
	"time"
)

// Team represents a club that publishes transfer pitches
type Team struct {
	ID        TeamID     `json:"id"`
	ProfileID *ProfileID `json:"profile_id,omitempty"`
	Name      string     `json:"name"`
	Country   string     `json:"country"`
	CreatedAt time.Time  `json:"created_at"`
}
