package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventNotificationCreated is the only event type the notification outbox carries today.
const EventNotificationCreated = "notification.created"

// OutboxEvent is one committed outbox row waiting to be relayed
type OutboxEvent struct {
	ID             uuid.UUID       `json:"id"`
	NotificationID uuid.UUID       `json:"notification_id"`
	UserID         uuid.UUID       `json:"user_id"`
	EventType      string          `json:"event_type"`
	Payload        json.RawMessage `json:"payload"`
	CreatedAt      time.Time       `json:"created_at"`
	SentAt         *time.Time      `json:"sent_at,omitempty"`
}

// Publisher delivers an outbox event to the outside world.
type Publisher interface {
	Publish(ctx context.Context, event OutboxEvent) error
}
