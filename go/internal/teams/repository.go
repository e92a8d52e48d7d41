package teams

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/sqlutil"
	"github.com/mcdev12/transferdesk/go/internal/teams/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	ListTeamsByProfile(ctx context.Context, profileID uuid.NullUUID) ([]db.Team, error)
}

// Repository implements team data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	team, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		ProfileID: profileIDToNull(req.ProfileID),
		Name:      req.Name,
		Country:   req.Country,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return dbTeamToModel(team), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id models.TeamID) (*models.Team, error) {
	team, err := r.queries.GetTeam(ctx, uuid.UUID(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return dbTeamToModel(team), nil
}

// ListTeamsByProfile retrieves the teams owned by a profile
func (r *Repository) ListTeamsByProfile(ctx context.Context, profileID models.ProfileID) ([]models.Team, error) {
	rows, err := r.queries.ListTeamsByProfile(ctx, profileIDToNull(&profileID))
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by profile: %w", err)
	}

	teams := make([]models.Team, len(rows))
	for i, row := range rows {
		teams[i] = *dbTeamToModel(row)
	}
	return teams, nil
}

func profileIDToNull(id *models.ProfileID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	u := uuid.UUID(*id)
	return sqlutil.ToNullUUID(&u)
}

func dbTeamToModel(t db.Team) *models.Team {
	team := &models.Team{
		ID:        models.TeamID(t.ID),
		Name:      t.Name,
		Country:   t.Country,
		CreatedAt: t.CreatedAt,
	}
	if id := sqlutil.FromNullUUID(t.ProfileID); id != nil {
		pid := models.ProfileID(*id)
		team.ProfileID = &pid
	}
	return team
}
