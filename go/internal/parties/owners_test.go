package parties

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTeams map[models.TeamID]*models.Team

func (s stubTeams) GetTeam(_ context.Context, id models.TeamID) (*models.Team, error) {
	if t, ok := s[id]; ok {
		return t, nil
	}
	return nil, sql.ErrNoRows
}

type stubAgents map[models.AgentID]*models.Agent

func (s stubAgents) GetAgent(_ context.Context, id models.AgentID) (*models.Agent, error) {
	if a, ok := s[id]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

type stubProfiles map[models.ProfileID]*models.Profile

func (s stubProfiles) GetProfile(_ context.Context, id models.ProfileID) (*models.Profile, error) {
	if p, ok := s[id]; ok {
		return p, nil
	}
	return nil, sql.ErrNoRows
}

func TestOwners(t *testing.T) {
	ctx := context.Background()
	profile := &models.Profile{ID: models.ProfileID(uuid.New()), UserID: models.UserID(uuid.New())}
	teamID := models.TeamID(uuid.New())
	orphanID := models.AgentID(uuid.New())

	owners := NewOwners(
		stubTeams{teamID: {ID: teamID, ProfileID: &profile.ID}},
		stubAgents{orphanID: {ID: orphanID}},
		stubProfiles{profile.ID: profile},
	)

	user, err := owners.TeamUser(ctx, teamID)
	require.NoError(t, err)
	assert.Equal(t, profile.UserID, user)

	_, err = owners.AgentUser(ctx, orphanID)
	assert.ErrorIs(t, err, ErrNoOwner)

	_, err = owners.AgentUser(ctx, models.AgentID(uuid.New()))
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
