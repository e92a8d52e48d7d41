package agents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/rs/zerolog/log"
)

// AgentsRepository defines what the app layer needs from the repository
type AgentsRepository interface {
	CreateAgent(ctx context.Context, req CreateAgentRequest) (*models.Agent, error)
	GetAgent(ctx context.Context, id models.AgentID) (*models.Agent, error)
	ListAgentsByProfile(ctx context.Context, profileID models.ProfileID) ([]models.Agent, error)
}

// ProfileLookup finds the profile behind the calling user
type ProfileLookup interface {
	GetProfileByUserID(ctx context.Context, userID models.UserID) (*models.Profile, error)
}

// App handles agents business logic
type App struct {
	repo     AgentsRepository
	profiles ProfileLookup
}

// NewApp creates a new agents App
func NewApp(repo AgentsRepository, profiles ProfileLookup) *App {
	return &App{
		repo:     repo,
		profiles: profiles,
	}
}

// CreateAgent creates an agent owned by the caller's profile
func (a *App) CreateAgent(ctx context.Context, actor models.UserID, name, agency string) (*models.Agent, error) {
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

	agent, err := a.repo.CreateAgent(ctx, CreateAgentRequest{
		ProfileID: &profile.ID,
		Name:      name,
		Agency:    agency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	log.Info().
		Str("agent_id", agent.ID.String()).
		Str("agency", agent.Agency).
		Msg("registered agent")
	return agent, nil
}

// GetAgent retrieves an agent by ID
func (a *App) GetAgent(ctx context.Context, id models.AgentID) (*models.Agent, error) {
	agent, err := a.repo.GetAgent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return agent, nil
}

// ListAgentsByProfile retrieves all agents owned by a profile
func (a *App) ListAgentsByProfile(ctx context.Context, profileID models.ProfileID) ([]models.Agent, error) {
	agents, err := a.repo.ListAgentsByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents by profile: %w", err)
	}
	return agents, nil
}
