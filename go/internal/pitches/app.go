package pitches

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/parties"
	"github.com/rs/zerolog/log"
)

// PitchesRepository defines what the app layer needs from the repository
type PitchesRepository interface {
	CreatePitch(ctx context.Context, req CreatePitchRequest) (*models.Pitch, error)
	GetPitch(ctx context.Context, id uuid.UUID) (*models.Pitch, error)
	ListPitchesByTeam(ctx context.Context, teamID models.TeamID) ([]models.Pitch, error)
	UpdatePitchStatus(ctx context.Context, id uuid.UUID, status models.PitchStatus) (*models.Pitch, error)
}

// TeamOwners resolves the user acting for a team
type TeamOwners interface {
	TeamUser(ctx context.Context, id models.TeamID) (models.UserID, error)
}

// PlayerGetter checks the pitched player exists
type PlayerGetter interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
}

// App handles pitch business logic
type App struct {
	repo    PitchesRepository
	owners  TeamOwners
	players PlayerGetter
}

// NewApp creates a new pitches App
func NewApp(repo PitchesRepository, owners TeamOwners, players PlayerGetter) *App {
	return &App{
		repo:    repo,
		owners:  owners,
		players: players,
	}
}

// CreatePitch publishes a pitch on behalf of a team the caller owns
func (a *App) CreatePitch(ctx context.Context, actor models.UserID, req CreatePitchRequest) (*models.Pitch, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidRequest)
	}
	if err := a.authorize(ctx, actor, req.TeamID); err != nil {
		return nil, err
	}
	if _, err := a.players.GetPlayer(ctx, req.PlayerID); err != nil {
		return nil, fmt.Errorf("player lookup failed: %w", err)
	}

	pitch, err := a.repo.CreatePitch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create pitch: %w", err)
	}

	log.Info().
		Str("pitch_id", pitch.ID.String()).
		Str("team_id", pitch.TeamID.String()).
		Str("player_id", pitch.PlayerID.String()).
		Msg("published pitch")
	return pitch, nil
}

// GetPitch retrieves a pitch by ID
func (a *App) GetPitch(ctx context.Context, id uuid.UUID) (*models.Pitch, error) {
	pitch, err := a.repo.GetPitch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pitch: %w", err)
	}
	return pitch, nil
}

// ListPitchesByTeam retrieves all pitches for a team
func (a *App) ListPitchesByTeam(ctx context.Context, teamID models.TeamID) ([]models.Pitch, error) {
	pitches, err := a.repo.ListPitchesByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pitches: %w", err)
	}
	return pitches, nil
}

// ClosePitch stops the pitch from accepting new interest. Closing twice is a no-op.
func (a *App) ClosePitch(ctx context.Context, actor models.UserID, id uuid.UUID) (*models.Pitch, error) {
	pitch, err := a.repo.GetPitch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pitch: %w", err)
	}
	if err := a.authorize(ctx, actor, pitch.TeamID); err != nil {
		return nil, err
	}
	if pitch.Status == models.PitchStatusClosed {
		return pitch, nil
	}

	pitch, err = a.repo.UpdatePitchStatus(ctx, id, models.PitchStatusClosed)
	if err != nil {
		return nil, fmt.Errorf("failed to close pitch: %w", err)
	}

	log.Info().Str("pitch_id", pitch.ID.String()).Msg("closed pitch")
	return pitch, nil
}

func (a *App) authorize(ctx context.Context, actor models.UserID, teamID models.TeamID) error {
	owner, err := a.owners.TeamUser(ctx, teamID)
	if err != nil {
		if errors.Is(err, parties.ErrNoOwner) {
			return ErrForbidden
		}
		return fmt.Errorf("failed to resolve team owner: %w", err)
	}
	if owner != actor {
		return ErrForbidden
	}
	return nil
}
