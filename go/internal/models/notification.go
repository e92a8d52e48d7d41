package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationCategoryAgentInterest tags every notification produced from
// interest lifecycle events.
const NotificationCategoryAgentInterest = "agent_interest"

// Notification is an in-app message addressed to a single user
type Notification struct {
	ID          uuid.UUID       `json:"id"`
	UserID      UserID          `json:"user_id"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	Category    string          `json:"category"`
	ActionURL   string          `json:"action_url"`
	ActionLabel string          `json:"action_label"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	Read        bool            `json:"read"`
	ReadAt      *time.Time      `json:"read_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
