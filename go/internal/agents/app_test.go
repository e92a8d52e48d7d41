package agents

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileStub struct {
	profile *models.Profile
}

func (p profileStub) GetProfileByUserID(_ context.Context, userID models.UserID) (*models.Profile, error) {
	if p.profile == nil || p.profile.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return p.profile, nil
}

type memAgents struct {
	byID map[models.AgentID]models.Agent
}

func (m *memAgents) CreateAgent(_ context.Context, req CreateAgentRequest) (*models.Agent, error) {
	if m.byID == nil {
		m.byID = make(map[models.AgentID]models.Agent)
	}
	a := models.Agent{
		ID:        models.AgentID(uuid.New()),
		ProfileID: req.ProfileID,
		Name:      req.Name,
		Agency:    req.Agency,
	}
	m.byID[a.ID] = a
	return &a, nil
}

func (m *memAgents) GetAgent(_ context.Context, id models.AgentID) (*models.Agent, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &a, nil
}

func (m *memAgents) ListAgentsByProfile(_ context.Context, profileID models.ProfileID) ([]models.Agent, error) {
	var out []models.Agent
	for _, a := range m.byID {
		if a.ProfileID != nil && *a.ProfileID == profileID {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestAgentRegistration(t *testing.T) {
	ctx := context.Background()
	profile := &models.Profile{
		ID:     models.ProfileID(uuid.New()),
		UserID: models.UserID(uuid.New()),
	}

	tests := []struct {
		name    string
		actor   models.UserID
		agent   string
		wantErr error
	}{
		{name: "owned by caller", actor: profile.UserID, agent: "Jorge M."},
		{name: "blank name", actor: profile.UserID, agent: " ", wantErr: ErrInvalidRequest},
		{name: "no profile", actor: models.UserID(uuid.New()), agent: "Mino R.", wantErr: ErrNoProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memAgents{}
			app := NewApp(repo, profileStub{profile: profile})

			agent, err := app.CreateAgent(ctx, tt.actor, tt.agent, "Gestifute")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.byID)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, agent.ProfileID)
			assert.Equal(t, profile.ID, *agent.ProfileID)

			got, err := app.GetAgent(ctx, agent.ID)
			require.NoError(t, err)
			assert.Equal(t, "Gestifute", got.Agency)

			listed, err := app.ListAgentsByProfile(ctx, profile.ID)
			require.NoError(t, err)
			assert.Len(t, listed, 1)
		})
	}
}
