package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/outbox/db"
	"github.com/mcdev12/transferdesk/go/internal/sqlutil"
)

// ErrEventNotPending is returned when an event is missing or already sent.
var ErrEventNotPending = errors.New("outbox event not found or already sent")

// Store is what the relay needs from the outbox table
type Store interface {
	FetchUnsent(ctx context.Context, limit int32) ([]OutboxEvent, error)
	FetchByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

// Repository reads and marks outbox rows outside of any interest transaction
type Repository struct {
	queries *db.Queries
}

// NewRepository creates a new outbox repository
func NewRepository(database sqlutil.DBTX) *Repository {
	return &Repository{
		queries: db.New(database),
	}
}

func (r *Repository) FetchUnsent(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	rows, err := r.queries.FetchUnsentNotificationOutbox(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	events := make([]OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = rowToEvent(row)
	}
	return events, nil
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error) {
	row, err := r.queries.FetchNotificationOutboxByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotPending
		}
		return nil, fmt.Errorf("failed to fetch outbox event by ID: %w", err)
	}
	event := rowToEvent(row)
	return &event, nil
}

func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkNotificationOutboxSent(ctx, id); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	return nil
}

// CountPending reports how many events are waiting to be relayed.
func (r *Repository) CountPending(ctx context.Context) (int64, error) {
	n, err := r.queries.CountUnsentNotificationOutbox(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unsent outbox events: %w", err)
	}
	return n, nil
}

// Writer enqueues notifications on the caller's transaction so the outbox
// row commits or rolls back together with the notification row.
type Writer struct{}

// NewWriter creates a new outbox writer
func NewWriter() *Writer { return &Writer{} }

// Enqueue inserts a notification.created event for n on tx.
func (w *Writer) Enqueue(ctx context.Context, tx sqlutil.DBTX, n *models.Notification) error {
	payload, err := sonic.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	err = db.New(tx).InsertNotificationOutbox(ctx, db.InsertNotificationOutboxParams{
		ID:             uuid.New(),
		NotificationID: n.ID,
		UserID:         uuid.UUID(n.UserID),
		EventType:      EventNotificationCreated,
		Payload:        payload,
	})
	if err != nil {
		return fmt.Errorf("failed to insert notification outbox event: %w", err)
	}
	return nil
}

func rowToEvent(row db.NotificationOutbox) OutboxEvent {
	event := OutboxEvent{
		ID:             row.ID,
		NotificationID: row.NotificationID,
		UserID:         row.UserID,
		EventType:      row.EventType,
		Payload:        row.Payload,
		CreatedAt:      row.CreatedAt,
	}
	if row.SentAt.Valid {
		t := row.SentAt.Time
		event.SentAt = &t
	}
	return event
}
