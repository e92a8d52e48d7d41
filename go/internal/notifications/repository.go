package notifications

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/notifications/db"
	"github.com/mcdev12/transferdesk/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	InsertNotification(ctx context.Context, arg db.InsertNotificationParams) (db.Notification, error)
	ListNotificationsByUser(ctx context.Context, arg db.ListNotificationsByUserParams) ([]db.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkNotificationRead(ctx context.Context, arg db.MarkNotificationReadParams) (db.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	GetPitchAddressee(ctx context.Context, id uuid.UUID) (db.GetPitchAddresseeRow, error)
	GetAgentAddressee(ctx context.Context, id uuid.UUID) (db.GetAgentAddresseeRow, error)
}

// Repository implements notification data access. Bound to a transaction it
// is also the dispatcher's Store.
type Repository struct {
	queries Querier
}

var _ Store = (*Repository)(nil)

// NewRepository creates a new notifications repository
func NewRepository(querier Querier) *Repository {
	return &Repository{queries: querier}
}

// NewTxStore binds a repository to an open transaction.
func NewTxStore(tx sqlutil.DBTX) Store {
	return NewRepository(db.New(tx))
}

// PitchAddressee loads the team side of a pitch
func (r *Repository) PitchAddressee(ctx context.Context, pitchID uuid.UUID) (*PitchRecord, error) {
	row, err := r.queries.GetPitchAddressee(ctx, pitchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pitch addressee: %w", err)
	}

	rec := &PitchRecord{
		PitchID:    row.PitchID,
		Title:      row.Title,
		TeamID:     models.TeamID(row.TeamID),
		TeamName:   row.TeamName,
		PlayerID:   row.PlayerID,
		PlayerName: row.PlayerName,
	}
	if id := sqlutil.FromNullUUID(row.TeamUserID); id != nil {
		uid := models.UserID(*id)
		rec.TeamUserID = &uid
	}
	return rec, nil
}

// AgentAddressee loads an agent and its profile's user id
func (r *Repository) AgentAddressee(ctx context.Context, agentID models.AgentID) (*AgentRecord, error) {
	row, err := r.queries.GetAgentAddressee(ctx, uuid.UUID(agentID))
	if err != nil {
		return nil, fmt.Errorf("failed to get agent addressee: %w", err)
	}

	rec := &AgentRecord{
		AgentID:     models.AgentID(row.AgentID),
		Name:        row.AgentName,
		DisplayName: sqlutil.FromSqlString(row.DisplayName, ""),
	}
	if id := sqlutil.FromNullUUID(row.UserID); id != nil {
		uid := models.UserID(*id)
		rec.UserID = &uid
	}
	return rec, nil
}

// InsertNotification appends one notification
func (r *Repository) InsertNotification(ctx context.Context, n models.Notification) (*models.Notification, error) {
	row, err := r.queries.InsertNotification(ctx, db.InsertNotificationParams{
		ID:          n.ID,
		UserID:      uuid.UUID(n.UserID),
		Title:       n.Title,
		Body:        n.Body,
		Category:    n.Category,
		ActionUrl:   n.ActionURL,
		ActionLabel: n.ActionLabel,
		Metadata:    sqlutil.ToNullRawMessage(n.Metadata),
		CreatedAt:   n.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}
	return dbNotificationToModel(row), nil
}

// ListNotifications returns a user's notifications, newest first
func (r *Repository) ListNotifications(ctx context.Context, userID models.UserID, unreadOnly bool, limit int32) ([]models.Notification, error) {
	rows, err := r.queries.ListNotificationsByUser(ctx, db.ListNotificationsByUserParams{
		UserID:     uuid.UUID(userID),
		UnreadOnly: unreadOnly,
		RowLimit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]models.Notification, len(rows))
	for i, row := range rows {
		out[i] = *dbNotificationToModel(row)
	}
	return out, nil
}

// CountUnread returns how many unread notifications a user has
func (r *Repository) CountUnread(ctx context.Context, userID models.UserID) (int64, error) {
	n, err := r.queries.CountUnreadNotifications(ctx, uuid.UUID(userID))
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return n, nil
}

// MarkRead marks one of the user's notifications read
func (r *Repository) MarkRead(ctx context.Context, userID models.UserID, id uuid.UUID) (*models.Notification, error) {
	row, err := r.queries.MarkNotificationRead(ctx, db.MarkNotificationReadParams{
		ID:     id,
		UserID: uuid.UUID(userID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return dbNotificationToModel(row), nil
}

// MarkAllRead marks every unread notification of the user read
func (r *Repository) MarkAllRead(ctx context.Context, userID models.UserID) (int64, error) {
	n, err := r.queries.MarkAllNotificationsRead(ctx, uuid.UUID(userID))
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return n, nil
}

func dbNotificationToModel(n db.Notification) *models.Notification {
	return &models.Notification{
		ID:          n.ID,
		UserID:      models.UserID(n.UserID),
		Title:       n.Title,
		Body:        n.Body,
		Category:    n.Category,
		ActionURL:   n.ActionUrl,
		ActionLabel: n.ActionLabel,
		Metadata:    sqlutil.FromNullRawMessage(n.Metadata),
		Read:        n.Read,
		ReadAt:      sqlutil.FromSqlTime(n.ReadAt),
		CreatedAt:   n.CreatedAt,
	}
}
