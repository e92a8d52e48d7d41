package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/rs/zerolog/log"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id models.TeamID) (*models.Team, error)
	ListTeamsByProfile(ctx context.Context, profileID models.ProfileID) ([]models.Team, error)
}

// ProfileLookup finds the profile behind the calling user
type ProfileLookup interface {
	GetProfileByUserID(ctx context.Context, userID models.UserID) (*models.Profile, error)
}

// App handles teams business logic
type App struct {
	repo     TeamsRepository
	profiles ProfileLookup
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, profiles ProfileLookup) *App {
	return &App{
		repo:     repo,
		profiles: profiles,
	}
}

// CreateTeam creates a team owned by the caller's profile
func (a *App) CreateTeam(ctx context.Context, actor models.UserID, name, country string) (*models.Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}

	profile, err := a.profiles.GetProfileByUserID(ctx, actor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("failed to look up caller profile: %w", err)
	}

	team, err := a.repo.CreateTeam(ctx, CreateTeamRequest{
		ProfileID: &profile.ID,
		Name:      name,
		Country:   country,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().Str("team_id", team.ID.String()).Str("name", team.Name).Msg("created team")
	return team, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id models.TeamID) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListTeamsByProfile retrieves all teams owned by a profile
func (a *App) ListTeamsByProfile(ctx context.Context, profileID models.ProfileID) ([]models.Team, error) {
	teams, err := a.repo.ListTeamsByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by profile: %w", err)
	}
	return teams, nil
}
