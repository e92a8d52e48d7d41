package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozen = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(NewComposer(DefaultPlaceholders()), clockwork.NewFakeClockAt(frozen))
}

// A new interest is announced to the team.
func TestDispatchCreatedNotifiesTeam(t *testing.T) {
	w, c := newWorld()

	n, err := newTestDispatcher().Dispatch(context.Background(), w, created(c))
	require.NoError(t, err)
	require.Len(t, w.notifications, 1)

	assert.Equal(t, c.teamUser, n.UserID)
	assert.Contains(t, n.Body, "Ana Mendes")
	assert.Contains(t, n.Body, "João Silva")
	assert.Equal(t, models.NotificationCategoryAgentInterest, n.Category)
	assert.Equal(t, frozen, n.CreatedAt)
	assert.NotEqual(t, uuid.Nil, n.ID)
}

// Opening negotiation is announced to the agent.
func TestDispatchNegotiationNotifiesAgent(t *testing.T) {
	w, c := newWorld()

	n, err := newTestDispatcher().Dispatch(context.Background(), w,
		changed(c, models.InterestStatusInterested, models.InterestStatusNegotiating, c.teamUser))
	require.NoError(t, err)
	require.Len(t, w.notifications, 1)
	assert.Equal(t, c.agentUser, n.UserID)
	assert.Contains(t, n.Title, "Negotiation")
}

// A rejection mid-negotiation is announced to the agent.
func TestDispatchRejectionNotifiesAgent(t *testing.T) {
	w, c := newWorld()

	n, err := newTestDispatcher().Dispatch(context.Background(), w,
		changed(c, models.InterestStatusNegotiating, models.InterestStatusRejected, c.teamUser))
	require.NoError(t, err)
	require.Len(t, w.notifications, 1)
	assert.Equal(t, c.agentUser, n.UserID)
	assert.Contains(t, n.Title, "rejected")
}

// Deleting a live interest tells the team it was cancelled.
func TestDispatchDeleteNotifiesTeam(t *testing.T) {
	w, c := newWorld()

	n, err := newTestDispatcher().Dispatch(context.Background(), w, deleted(c, models.InterestStatusRequested))
	require.NoError(t, err)
	require.Len(t, w.notifications, 1)
	assert.Equal(t, c.teamUser, n.UserID)
	assert.Contains(t, n.Title, "cancelled")
	assert.Equal(t, "/pitches/"+c.pitchID.String(), n.ActionURL)
}

// Saving the same status again creates nothing.
func TestDispatchSameStatusIsNoop(t *testing.T) {
	w, c := newWorld()

	n, err := newTestDispatcher().Dispatch(context.Background(), w,
		changed(c, models.InterestStatusRequested, models.InterestStatusRequested, c.teamUser))
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.Empty(t, w.notifications)
}

// An agent without a profile is a resolution error.
func TestDispatchOrphanedAgentIsResolutionError(t *testing.T) {
	w, c := newWorld()
	w.orphanAgent(c.agentID)

	_, err := newTestDispatcher().Dispatch(context.Background(), w,
		changed(c, models.InterestStatusInterested, models.InterestStatusNegotiating, c.teamUser))
	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, PartyAgent, resErr.Party)
	assert.Empty(t, w.notifications)
}

func TestDispatchNeverAddressesTheActor(t *testing.T) {
	w, c := newWorld()

	// The team user rejecting would address the agent; pretend the agent's
	// own account performed it.
	_, err := newTestDispatcher().Dispatch(context.Background(), w,
		changed(c, models.InterestStatusInterested, models.InterestStatusRejected, c.agentUser))
	var selfErr *SelfAddressError
	require.True(t, errors.As(err, &selfErr))
	assert.True(t, selfErr.Actor)
	assert.Equal(t, c.agentUser, selfErr.UserID)
	assert.Empty(t, w.notifications)
}

func TestDispatchExactlyOneRecipientNeverTheActor(t *testing.T) {
	builders := []func(c cast) models.InterestEvent{
		created,
		func(c cast) models.InterestEvent {
			return changed(c, models.InterestStatusInterested, models.InterestStatusNegotiating, c.teamUser)
		},
		func(c cast) models.InterestEvent {
			return changed(c, models.InterestStatusInterested, models.InterestStatusRequested, c.teamUser)
		},
		func(c cast) models.InterestEvent {
			return changed(c, models.InterestStatusRequested, models.InterestStatusRejected, c.teamUser)
		},
		func(c cast) models.InterestEvent {
			return changed(c, models.InterestStatusNegotiating, models.InterestStatusWithdrawn, c.agentUser)
		},
		func(c cast) models.InterestEvent { return deleted(c, models.InterestStatusInterested) },
	}

	for _, build := range builders {
		w, c := newWorld()
		ev := build(c)

		n, err := newTestDispatcher().Dispatch(context.Background(), w, ev)
		require.NoError(t, err)
		require.Len(t, w.notifications, 1, "exactly one notification for %s", ev.Type)
		assert.NotEqual(t, ev.Actor, n.UserID)
		assert.Contains(t, []models.UserID{c.teamUser, c.agentUser}, n.UserID)
	}
}

func TestDispatchInsertFailureIsReturned(t *testing.T) {
	w, c := newWorld()
	w.insertErr = errors.New("disk full")

	_, err := newTestDispatcher().Dispatch(context.Background(), w, created(c))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
