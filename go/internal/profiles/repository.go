package profiles

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/profiles/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateProfile(ctx context.Context, arg db.CreateProfileParams) (db.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (db.Profile, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (db.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}

// Repository implements profile data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new profiles repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateProfile creates a new profile
func (r *Repository) CreateProfile(ctx context.Context, req CreateProfileRequest) (*models.Profile, error) {
	profile, err := r.queries.CreateProfile(ctx, db.CreateProfileParams{
		UserID:      uuid.UUID(req.UserID),
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return dbProfileToModel(profile), nil
}

// GetProfile retrieves a profile by its internal ID
func (r *Repository) GetProfile(ctx context.Context, id models.ProfileID) (*models.Profile, error) {
	profile, err := r.queries.GetProfile(ctx, uuid.UUID(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return dbProfileToModel(profile), nil
}

// GetProfileByUserID retrieves a profile by the external user ID
func (r *Repository) GetProfileByUserID(ctx context.Context, userID models.UserID) (*models.Profile, error) {
	profile, err := r.queries.GetProfileByUserID(ctx, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by user id: %w", err)
	}

	return dbProfileToModel(profile), nil
}

// DeleteProfile deletes a profile. Teams and agents that referenced it keep
// their rows with a NULL profile.
func (r *Repository) DeleteProfile(ctx context.Context, id models.ProfileID) error {
	if err := r.queries.DeleteProfile(ctx, uuid.UUID(id)); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

func dbProfileToModel(p db.Profile) *models.Profile {
	return &models.Profile{
		ID:          models.ProfileID(p.ID),
		UserID:      models.UserID(p.UserID),
		DisplayName: p.DisplayName,
		Email:       p.Email,
		CreatedAt:   p.CreatedAt,
	}
}
