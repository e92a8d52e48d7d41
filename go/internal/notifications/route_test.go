package notifications

import (
	"testing"

	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteTransitionTable(t *testing.T) {
	_, c := newWorld()
	team, agent := c.teamUser, c.agentUser

	tests := []struct {
		name string
		ev   models.InterestEvent
		want Delivery
	}{
		{"created", created(c), Delivery{KindInterestCreated, SideTeam}},
		{"interested to negotiating", changed(c, models.InterestStatusInterested, models.InterestStatusNegotiating, team), Delivery{KindNegotiationStarted, SideAgent}},
		{"requested to negotiating", changed(c, models.InterestStatusRequested, models.InterestStatusNegotiating, team), Delivery{KindNegotiationStarted, SideAgent}},
		{"interested to requested", changed(c, models.InterestStatusInterested, models.InterestStatusRequested, team), Delivery{KindInfoRequested, SideAgent}},
		{"negotiating to requested", changed(c, models.InterestStatusNegotiating, models.InterestStatusRequested, team), Delivery{KindInfoRequested, SideAgent}},
		{"negotiating to rejected", changed(c, models.InterestStatusNegotiating, models.InterestStatusRejected, team), Delivery{KindInterestRejected, SideAgent}},
		{"interested to rejected", changed(c, models.InterestStatusInterested, models.InterestStatusRejected, team), Delivery{KindInterestRejected, SideAgent}},
		{"requested to withdrawn", changed(c, models.InterestStatusRequested, models.InterestStatusWithdrawn, agent), Delivery{KindInterestWithdrawn, SideTeam}},
		{"deleted while requested", deleted(c, models.InterestStatusRequested), Delivery{KindInterestCancelled, SideTeam}},
		{"deleted while rejected", deleted(c, models.InterestStatusRejected), Delivery{KindInterestCancelled, SideTeam}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Route(tt.ev)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouteNoNotification(t *testing.T) {
	_, c := newWorld()

	for _, s := range []models.InterestStatus{
		models.InterestStatusInterested,
		models.InterestStatusRequested,
		models.InterestStatusNegotiating,
		models.InterestStatusRejected,
	} {
		_, ok, err := Route(changed(c, s, s, c.teamUser))
		require.NoError(t, err)
		assert.False(t, ok, "same status %s must not route", s)
	}

	_, ok, err := Route(deleted(c, models.InterestStatusWithdrawn))
	require.NoError(t, err)
	assert.False(t, ok, "purging a withdrawn interest must not notify twice")
}

func TestRouteRejectsMalformedEvents(t *testing.T) {
	_, c := newWorld()

	_, _, err := Route(models.InterestEvent{Type: models.InterestStatusChanged, After: interest(c, models.InterestStatusRequested)})
	assert.ErrorIs(t, err, ErrInvalidEvent)

	_, _, err = Route(models.InterestEvent{Type: models.InterestCreated})
	assert.ErrorIs(t, err, ErrInvalidEvent)

	_, _, err = Route(models.InterestEvent{Type: models.InterestDeleted})
	assert.ErrorIs(t, err, ErrInvalidEvent)

	_, _, err = Route(models.InterestEvent{Type: "renamed", After: interest(c, models.InterestStatusInterested)})
	assert.ErrorIs(t, err, ErrInvalidEvent)
}

func TestRouteRejectsTransitionsOutsideTable(t *testing.T) {
	_, c := newWorld()

	_, _, err := Route(changed(c, models.InterestStatusRejected, models.InterestStatusNegotiating, c.teamUser))
	assert.ErrorIs(t, err, ErrUnknownTransition)

	_, _, err = Route(changed(c, models.InterestStatusRequested, models.InterestStatusInterested, c.teamUser))
	assert.ErrorIs(t, err, ErrUnknownTransition)

	ev := created(c)
	ev.After.Status = models.InterestStatusNegotiating
	_, _, err = Route(ev)
	assert.ErrorIs(t, err, ErrUnknownTransition)
}
