package notifications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
)

const (
	DefaultListLimit int32 = 50
	MaxListLimit     int32 = 200
)

// InboxRepository defines what the inbox needs from the repository
type InboxRepository interface {
	ListNotifications(ctx context.Context, userID models.UserID, unreadOnly bool, limit int32) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID models.UserID) (int64, error)
	MarkRead(ctx context.Context, userID models.UserID, id uuid.UUID) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID models.UserID) (int64, error)
}

// App is the read side of notifications. Every call is scoped to the caller.
type App struct {
	repo InboxRepository
}

// NewApp creates a new notifications App
func NewApp(repo InboxRepository) *App {
	return &App{repo: repo}
}

// ListNotifications lists the caller's notifications, newest first
func (a *App) ListNotifications(ctx context.Context, actor models.UserID, unreadOnly bool, limit int32) ([]models.Notification, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	out, err := a.repo.ListNotifications(ctx, actor, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return out, nil
}

// UnreadCount returns the caller's unread count
func (a *App) UnreadCount(ctx context.Context, actor models.UserID) (int64, error) {
	n, err := a.repo.CountUnread(ctx, actor)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread: %w", err)
	}
	return n, nil
}

// MarkRead marks one notification read. Notifications addressed to someone
// else look missing.
func (a *App) MarkRead(ctx context.Context, actor models.UserID, id uuid.UUID) (*models.Notification, error) {
	n, err := a.repo.MarkRead(ctx, actor, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to mark read: %w", err)
	}
	return n, nil
}

// MarkAllRead marks all of the caller's notifications read
func (a *App) MarkAllRead(ctx context.Context, actor models.UserID) (int64, error) {
	n, err := a.repo.MarkAllRead(ctx, actor)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all read: %w", err)
	}
	return n, nil
}
