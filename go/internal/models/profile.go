package models

import (
	"time"
)

// Profile is a human account. Teams and agents both point at one.
type Profile struct {
	ID          ProfileID `json:"id"`
	UserID      UserID    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}
