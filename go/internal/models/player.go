package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a player that can be pitched for transfer
type Player struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Position    string    `json:"position"`
	Nationality string    `json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
}
