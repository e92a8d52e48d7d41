package interest

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/parties"
	"github.com/mcdev12/transferdesk/go/internal/pitches"
	"github.com/rs/zerolog/log"
)

// InterestRepository defines what the app layer needs from the repository
type InterestRepository interface {
	CreateInterest(ctx context.Context, actor models.UserID, req CreateInterestRequest) (*models.Interest, error)
	UpdateInterestStatus(ctx context.Context, actor models.UserID, id uuid.UUID, status models.InterestStatus, check CheckFunc) (*models.Interest, error)
	DeleteInterest(ctx context.Context, actor models.UserID, id uuid.UUID, check CheckFunc) (*models.Interest, error)
	GetInterest(ctx context.Context, id uuid.UUID) (*models.Interest, error)
	GetInterestByAgentAndPitch(ctx context.Context, agentID models.AgentID, pitchID uuid.UUID) (*models.Interest, error)
	ListInterestsByPitch(ctx context.Context, pitchID uuid.UUID) ([]models.Interest, error)
	ListInterestsByAgent(ctx context.Context, agentID models.AgentID) ([]models.Interest, error)
}

// Owners resolves the users acting for teams and agents
type Owners interface {
	TeamUser(ctx context.Context, id models.TeamID) (models.UserID, error)
	AgentUser(ctx context.Context, id models.AgentID) (models.UserID, error)
}

// PitchGetter loads the pitch an interest targets
type PitchGetter interface {
	GetPitch(ctx context.Context, id uuid.UUID) (*models.Pitch, error)
}

// App handles the interest lifecycle: who may move an interest, and where.
type App struct {
	repo    InterestRepository
	owners  Owners
	pitches PitchGetter
}

// NewApp creates a new interest App
func NewApp(repo InterestRepository, owners Owners, pitches PitchGetter) *App {
	return &App{
		repo:    repo,
		owners:  owners,
		pitches: pitches,
	}
}

// ExpressInterest records an agent's interest in an open pitch
func (a *App) ExpressInterest(ctx context.Context, actor models.UserID, req CreateInterestRequest) (*models.Interest, error) {
	if utf8.RuneCountInString(req.Message) > maxMessageLength {
		return nil, fmt.Errorf("%w: message longer than %d characters", ErrInvalidRequest, maxMessageLength)
	}
	if err := a.requireAgent(ctx, actor, req.AgentID); err != nil {
		return nil, err
	}

	pitch, err := a.pitches.GetPitch(ctx, req.PitchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pitch: %w", err)
	}
	if pitch.Status != models.PitchStatusOpen {
		return nil, pitches.ErrPitchClosed
	}

	if existing, err := a.repo.GetInterestByAgentAndPitch(ctx, req.AgentID, req.PitchID); err == nil && existing != nil {
		return nil, ErrInterestExists
	} else if err != nil && !errors.Is(err, ErrInterestNotFound) {
		return nil, fmt.Errorf("failed to check existing interest: %w", err)
	}

	created, err := a.repo.CreateInterest(ctx, actor, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("interest_id", created.ID.String()).
		Str("pitch_id", created.PitchID.String()).
		Str("agent_id", created.AgentID.String()).
		Msg("interest expressed")
	return created, nil
}

// UpdateStatus moves an interest on behalf of the pitch team
func (a *App) UpdateStatus(ctx context.Context, actor models.UserID, id uuid.UUID, status models.InterestStatus) (*models.Interest, error) {
	if !teamStatuses[status] {
		return nil, fmt.Errorf("%w: team cannot set status %q", ErrInvalidRequest, status)
	}

	current, err := a.repo.GetInterest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.requireTeam(ctx, actor, current.PitchID); err != nil {
		return nil, err
	}

	updated, err := a.repo.UpdateInterestStatus(ctx, actor, id, status, allowFrom(status))
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("interest_id", id.String()).
		Str("status", string(updated.Status)).
		Msg("interest status updated")
	return updated, nil
}

// Withdraw marks the agent's interest withdrawn
func (a *App) Withdraw(ctx context.Context, actor models.UserID, id uuid.UUID) (*models.Interest, error) {
	current, err := a.repo.GetInterest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.requireAgent(ctx, actor, current.AgentID); err != nil {
		return nil, err
	}

	updated, err := a.repo.UpdateInterestStatus(ctx, actor, id, models.InterestStatusWithdrawn, allowFrom(models.InterestStatusWithdrawn))
	if err != nil {
		return nil, err
	}

	log.Info().Str("interest_id", id.String()).Msg("interest withdrawn")
	return updated, nil
}

// DeleteInterest removes the agent's interest entirely, freeing the
// (agent, pitch) pair.
func (a *App) DeleteInterest(ctx context.Context, actor models.UserID, id uuid.UUID) (*models.Interest, error) {
	current, err := a.repo.GetInterest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.requireAgent(ctx, actor, current.AgentID); err != nil {
		return nil, err
	}

	removed, err := a.repo.DeleteInterest(ctx, actor, id, nil)
	if err != nil {
		return nil, err
	}

	log.Info().Str("interest_id", id.String()).Str("last_status", string(removed.Status)).Msg("interest deleted")
	return removed, nil
}

// GetInterest returns an interest to either of its parties
func (a *App) GetInterest(ctx context.Context, actor models.UserID, id uuid.UUID) (*models.Interest, error) {
	current, err := a.repo.GetInterest(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.requireAgent(ctx, actor, current.AgentID) == nil {
		return current, nil
	}
	if err := a.requireTeam(ctx, actor, current.PitchID); err != nil {
		return nil, err
	}
	return current, nil
}

// ListInterestsByPitch lists a pitch's interests for its team
func (a *App) ListInterestsByPitch(ctx context.Context, actor models.UserID, pitchID uuid.UUID) ([]models.Interest, error) {
	if err := a.requireTeam(ctx, actor, pitchID); err != nil {
		return nil, err
	}
	return a.repo.ListInterestsByPitch(ctx, pitchID)
}

// ListInterestsByAgent lists an agent's interests for that agent
func (a *App) ListInterestsByAgent(ctx context.Context, actor models.UserID, agentID models.AgentID) ([]models.Interest, error) {
	if err := a.requireAgent(ctx, actor, agentID); err != nil {
		return nil, err
	}
	return a.repo.ListInterestsByAgent(ctx, agentID)
}

// allowFrom rejects leaving a terminal state. Re-saving the same status is allowed.
func allowFrom(target models.InterestStatus) CheckFunc {
	return func(current *models.Interest) error {
		if current.Status.Terminal() && current.Status != target {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}
		return nil
	}
}

func (a *App) requireAgent(ctx context.Context, actor models.UserID, agentID models.AgentID) error {
	owner, err := a.owners.AgentUser(ctx, agentID)
	if err != nil {
		if errors.Is(err, parties.ErrNoOwner) {
			return ErrForbidden
		}
		return fmt.Errorf("failed to resolve agent owner: %w", err)
	}
	if owner != actor {
		return ErrForbidden
	}
	return nil
}

func (a *App) requireTeam(ctx context.Context, actor models.UserID, pitchID uuid.UUID) error {
	pitch, err := a.pitches.GetPitch(ctx, pitchID)
	if err != nil {
		return fmt.Errorf("failed to get pitch: %w", err)
	}
	owner, err := a.owners.TeamUser(ctx, pitch.TeamID)
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
