package models

import (
	"time"
)

// Agent represents a player representative
type Agent struct {
	ID        AgentID    `json:"id"`
	ProfileID *ProfileID `json:"profile_id,omitempty"`
	Name      string     `json:"name"`
	Agency    string     `json:"agency"`
	CreatedAt time.Time  `json:"created_at"`
}
