package notifications

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inbox struct {
	lastLimit int32
	items     []models.Notification
}

func (i *inbox) ListNotifications(_ context.Context, userID models.UserID, unreadOnly bool, limit int32) ([]models.Notification, error) {
	i.lastLimit = limit
	var out []models.Notification
	for _, n := range i.items {
		if n.UserID == userID && (!unreadOnly || !n.Read) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (i *inbox) CountUnread(_ context.Context, userID models.UserID) (int64, error) {
	var c int64
	for _, n := range i.items {
		if n.UserID == userID && !n.Read {
			c++
		}
	}
	return c, nil
}

func (i *inbox) MarkRead(_ context.Context, userID models.UserID, id uuid.UUID) (*models.Notification, error) {
	for k := range i.items {
		if i.items[k].ID == id && i.items[k].UserID == userID {
			i.items[k].Read = true
			return &i.items[k], nil
		}
	}
	return nil, fmt.Errorf("failed to mark notification read: %w", sql.ErrNoRows)
}

func (i *inbox) MarkAllRead(_ context.Context, userID models.UserID) (int64, error) {
	var c int64
	for k := range i.items {
		if i.items[k].UserID == userID && !i.items[k].Read {
			i.items[k].Read = true
			c++
		}
	}
	return c, nil
}

func TestInboxIsScopedToCaller(t *testing.T) {
	ctx := context.Background()
	me, other := models.UserID(uuid.New()), models.UserID(uuid.New())
	mine := models.Notification{ID: uuid.New(), UserID: me}
	theirs := models.Notification{ID: uuid.New(), UserID: other}
	repo := &inbox{items: []models.Notification{mine, theirs}}
	app := NewApp(repo)

	count, err := app.UnreadCount(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = app.MarkRead(ctx, me, theirs.ID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	n, err := app.MarkRead(ctx, me, mine.ID)
	require.NoError(t, err)
	assert.True(t, n.Read)

	updated, err := app.MarkAllRead(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}

func TestListNotificationsClampsLimit(t *testing.T) {
	repo := &inbox{}
	app := NewApp(repo)
	me := models.UserID(uuid.New())

	_, err := app.ListNotifications(context.Background(), me, false, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, repo.lastLimit)

	_, err = app.ListNotifications(context.Background(), me, true, 10_000)
	require.NoError(t, err)
	assert.Equal(t, MaxListLimit, repo.lastLimit)
}
