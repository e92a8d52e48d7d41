package agents

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/sqlutil"
	"github.com/mcdev12/transferdesk/go/internal/agents/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateAgent(ctx context.Context, arg db.CreateAgentParams) (db.Agent, error)
	GetAgent(ctx context.Context, id uuid.UUID) (db.Agent, error)
	ListAgentsByProfile(ctx context.Context, profileID uuid.NullUUID) ([]db.Agent, error)
}

// Repository implements agent data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new agents repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateAgent creates a new agent
func (r *Repository) CreateAgent(ctx context.Context, req CreateAgentRequest) (*models.Agent, error) {
	agent, err := r.queries.CreateAgent(ctx, db.CreateAgentParams{
		ProfileID: profileIDToNull(req.ProfileID),
		Name:      req.Name,
		Agency:    req.Agency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return dbAgentToModel(agent), nil
}

// GetAgent retrieves an agent by ID
func (r *Repository) GetAgent(ctx context.Context, id models.AgentID) (*models.Agent, error) {
	agent, err := r.queries.GetAgent(ctx, uuid.UUID(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return dbAgentToModel(agent), nil
}

// ListAgentsByProfile retrieves the agents owned by a profile
func (r *Repository) ListAgentsByProfile(ctx context.Context, profileID models.ProfileID) ([]models.Agent, error) {
	rows, err := r.queries.ListAgentsByProfile(ctx, profileIDToNull(&profileID))
	if err != nil {
		return nil, fmt.Errorf("failed to list agents by profile: %w", err)
	}

	agents := make([]models.Agent, len(rows))
	for i, row := range rows {
		agents[i] = *dbAgentToModel(row)
	}
	return agents, nil
}

func profileIDToNull(id *models.ProfileID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	u := uuid.UUID(*id)
	return sqlutil.ToNullUUID(&u)
}

func dbAgentToModel(a db.Agent) *models.Agent {
	agent := &models.Agent{
		ID:        models.AgentID(a.ID),
		Name:      a.Name,
		Agency:    a.Agency,
		CreatedAt: a.CreatedAt,
	}
	if id := sqlutil.FromNullUUID(a.ProfileID); id != nil {
		pid := models.ProfileID(*id)
		agent.ProfileID = &pid
	}
	return agent
}
