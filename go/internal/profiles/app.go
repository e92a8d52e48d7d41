package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/rs/zerolog/log"
)

// ProfilesRepository defines what the app layer needs from the repository
type ProfilesRepository interface {
	CreateProfile(ctx context.Context, req CreateProfileRequest) (*models.Profile, error)
	GetProfile(ctx context.Context, id models.ProfileID) (*models.Profile, error)
	GetProfileByUserID(ctx context.Context, userID models.UserID) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id models.ProfileID) error
}

// App handles profiles business logic
type App struct {
	repo ProfilesRepository
}

// NewApp creates a new profiles App
func NewApp(repo ProfilesRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateProfile creates a profile for the calling user
func (a *App) CreateProfile(ctx context.Context, actor models.UserID, req CreateProfileRequest) (*models.Profile, error) {
	if err := validateCreateProfileRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.UserID != actor {
		return nil, ErrForbidden
	}

	existing, err := a.repo.GetProfileByUserID(ctx, req.UserID)
	if err == nil && existing != nil {
		return nil, ErrProfileExists
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	profile, err := a.repo.CreateProfile(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	log.Info().
		Str("profile_id", profile.ID.String()).
		Str("user_id", profile.UserID.String()).
		Msg("created profile")
	return profile, nil
}

// GetProfile retrieves a profile by ID
func (a *App) GetProfile(ctx context.Context, id models.ProfileID) (*models.Profile, error) {
	profile, err := a.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// GetProfileByUserID retrieves a profile by user ID
func (a *App) GetProfileByUserID(ctx context.Context, userID models.UserID) (*models.Profile, error) {
	profile, err := a.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by user id: %w", err)
	}
	return profile, nil
}

// DeleteProfile deletes the caller's own profile
func (a *App) DeleteProfile(ctx context.Context, actor models.UserID, id models.ProfileID) error {
	profile, err := a.repo.GetProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("profile not found: %w", err)
	}
	if profile.UserID != actor {
		return ErrForbidden
	}

	if err := a.repo.DeleteProfile(ctx, id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	log.Info().Str("profile_id", id.String()).Msg("deleted profile")
	return nil
}

func validateCreateProfileRequest(req CreateProfileRequest) error {
	if req.UserID.IsZero() {
		return fmt.Errorf("user_id is required")
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		return fmt.Errorf("display_name is required")
	}
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}
