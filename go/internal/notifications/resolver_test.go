package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBothSides(t *testing.T) {
	w, c := newWorld()

	res, err := Resolver{}.Resolve(context.Background(), w, c.pitchID, c.agentID)
	require.NoError(t, err)
	assert.Equal(t, c.teamUser, res.Team.UserID)
	assert.Equal(t, c.agentUser, res.Agent.UserID)
	assert.Equal(t, "Porto FC", res.Team.Name)
	assert.Equal(t, "Ana Mendes", res.Agent.Name)
	assert.Equal(t, "João Silva", res.PlayerName)
}

func TestResolveFallsBackToProfileDisplayName(t *testing.T) {
	w, c := newWorld()
	w.agents[c.agentID].Name = ""

	res, err := Resolver{}.Resolve(context.Background(), w, c.pitchID, c.agentID)
	require.NoError(t, err)
	assert.Equal(t, "ana.m", res.Agent.Name)
}

func TestResolveFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(w *world, c cast)
		party  Party
	}{
		{"missing pitch", func(w *world, c cast) { delete(w.pitches, c.pitchID) }, PartyPitch},
		{"team without profile", func(w *world, c cast) { w.pitches[c.pitchID].TeamUserID = nil }, PartyTeam},
		{"missing agent", func(w *world, c cast) { delete(w.agents, c.agentID) }, PartyAgent},
		{"orphaned agent", func(w *world, c cast) { w.orphanAgent(c.agentID) }, PartyAgent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, c := newWorld()
			tt.mutate(w, c)

			_, err := Resolver{}.Resolve(context.Background(), w, c.pitchID, c.agentID)
			var resErr *ResolutionError
			require.True(t, errors.As(err, &resErr), "got %v", err)
			assert.Equal(t, tt.party, resErr.Party)
		})
	}
}

func TestResolveSameUserOnBothSides(t *testing.T) {
	w, c := newWorld()
	shared := models.UserID(uuid.New())
	w.pitches[c.pitchID].TeamUserID = &shared
	w.agents[c.agentID].UserID = &shared

	_, err := Resolver{}.Resolve(context.Background(), w, c.pitchID, c.agentID)
	var selfErr *SelfAddressError
	require.True(t, errors.As(err, &selfErr))
	assert.Equal(t, shared, selfErr.UserID)
	assert.False(t, selfErr.Actor)
}
