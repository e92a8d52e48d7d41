package teams

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles map[models.UserID]*models.Profile

func (f fakeProfiles) GetProfileByUserID(_ context.Context, userID models.UserID) (*models.Profile, error) {
	p, ok := f[userID]
	if !ok {
		return nil, fmt.Errorf("failed to get profile by user id: %w", sql.ErrNoRows)
	}
	return p, nil
}

type fakeRepo struct {
	teams []models.Team
}

func (f *fakeRepo) CreateTeam(_ context.Context, req CreateTeamRequest) (*models.Team, error) {
	t := models.Team{
		ID:        models.TeamID(uuid.New()),
		ProfileID: req.ProfileID,
		Name:      req.Name,
		Country:   req.Country,
		CreatedAt: time.Now(),
	}
	f.teams = append(f.teams, t)
	return &t, nil
}

func (f *fakeRepo) GetTeam(_ context.Context, id models.TeamID) (*models.Team, error) {
	for i := range f.teams {
		if f.teams[i].ID == id {
			return &f.teams[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeRepo) ListTeamsByProfile(_ context.Context, profileID models.ProfileID) ([]models.Team, error) {
	var out []models.Team
	for _, t := range f.teams {
		if t.ProfileID != nil && *t.ProfileID == profileID {
			out = append(out, t)
		}
	}
	return out, nil
}

func TestCreateTeamOwnedByCallerProfile(t *testing.T) {
	ctx := context.Background()
	user := models.UserID(uuid.New())
	profile := &models.Profile{ID: models.ProfileID(uuid.New()), UserID: user}
	app := NewApp(&fakeRepo{}, fakeProfiles{user: profile})

	team, err := app.CreateTeam(ctx, user, "Porto FC", "PT")
	require.NoError(t, err)
	require.NotNil(t, team.ProfileID)
	assert.Equal(t, profile.ID, *team.ProfileID)

	listed, err := app.ListTeamsByProfile(ctx, profile.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestCreateTeamWithoutProfile(t *testing.T) {
	app := NewApp(&fakeRepo{}, fakeProfiles{})

	_, err := app.CreateTeam(context.Background(), models.UserID(uuid.New()), "Porto FC", "PT")
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestCreateTeamRequiresName(t *testing.T) {
	app := NewApp(&fakeRepo{}, fakeProfiles{})

	_, err := app.CreateTeam(context.Background(), models.UserID(uuid.New()), "  ", "PT")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetTeamNotFound(t *testing.T) {
	app := NewApp(&fakeRepo{}, fakeProfiles{})

	_, err := app.GetTeam(context.Background(), models.TeamID(uuid.New()))
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
