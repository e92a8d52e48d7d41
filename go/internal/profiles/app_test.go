package profiles

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

type fakeRepo struct {
	byID map[models.ProfileID]*models.Profile
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[models.ProfileID]*models.Profile{}}
}

func (f *fakeRepo) CreateProfile(_ context.Context, req CreateProfileRequest) (*models.Profile, error) {
	p := &models.Profile{
		ID:          models.ProfileID(uuid.New()),
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		CreatedAt:   time.Now(),
	}
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeRepo) GetProfile(_ context.Context, id models.ProfileID) (*models.Profile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("failed to get profile: %w", sql.ErrNoRows)
	}
	return p, nil
}

func (f *fakeRepo) GetProfileByUserID(_ context.Context, userID models.UserID) (*models.Profile, error) {
	for _, p := range f.byID {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("failed to get profile by user id: %w", sql.ErrNoRows)
}

func (f *fakeRepo) DeleteProfile(_ context.Context, id models.ProfileID) error {
	delete(f.byID, id)
	return nil
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	app := NewApp(newFakeRepo())
	user := models.UserID(uuid.New())

	p, err := app.CreateProfile(ctx, user, CreateProfileRequest{UserID: user, DisplayName: "Ana", Email: "ana@club.com"})
	require.NoError(t, err)
	assert.Equal(t, user, p.UserID)

	_, err = app.CreateProfile(ctx, user, CreateProfileRequest{UserID: user, DisplayName: "Ana", Email: "ana@club.com"})
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestCreateProfileValidation(t *testing.T) {
	app := NewApp(newFakeRepo())
	user := models.UserID(uuid.New())

	_, err := app.CreateProfile(context.Background(), user, CreateProfileRequest{UserID: user, DisplayName: " ", Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = app.CreateProfile(context.Background(), user, CreateProfileRequest{UserID: user, DisplayName: "Ana", Email: "nope"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCreateProfileForAnotherUserIsForbidden(t *testing.T) {
	app := NewApp(newFakeRepo())
	other := models.UserID(uuid.New())

	_, err := app.CreateProfile(context.Background(), models.UserID(uuid.New()), CreateProfileRequest{UserID: other, DisplayName: "Ana", Email: "ana@club.com"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteProfileRequiresOwner(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	app := NewApp(repo)
	user := models.UserID(uuid.New())

	p, err := app.CreateProfile(ctx, user, CreateProfileRequest{UserID: user, DisplayName: "Ana", Email: "ana@club.com"})
	require.NoError(t, err)

	assert.ErrorIs(t, app.DeleteProfile(ctx, models.UserID(uuid.New()), p.ID), ErrForbidden)
	require.NoError(t, app.DeleteProfile(ctx, user, p.ID))
	assert.Empty(t, repo.byID)
}
