package pitches

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/pitches/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreatePitch(ctx context.Context, arg db.CreatePitchParams) (db.Pitch, error)
	GetPitch(ctx context.Context, id uuid.UUID) (db.Pitch, error)
	ListPitchesByTeam(ctx context.Context, teamID uuid.UUID) ([]db.Pitch, error)
	UpdatePitchStatus(ctx context.Context, arg db.UpdatePitchStatusParams) (db.Pitch, error)
}

// Repository implements pitch data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new pitches repository
func NewRepository(querier Querier) *Repository {
	return &Repository{queries: querier}
}

// CreatePitch inserts an open pitch
func (r *Repository) CreatePitch(ctx context.Context, req CreatePitchRequest) (*models.Pitch, error) {
	pitch, err := r.queries.CreatePitch(ctx, db.CreatePitchParams{
		TeamID:   uuid.UUID(req.TeamID),
		PlayerID: req.PlayerID,
		Title:    req.Title,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pitch: %w", err)
	}
	return dbPitchToModel(pitch), nil
}

// GetPitch retrieves a pitch by ID
func (r *Repository) GetPitch(ctx context.Context, id uuid.UUID) (*models.Pitch, error) {
	pitch, err := r.queries.GetPitch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pitch: %w", err)
	}
	return dbPitchToModel(pitch), nil
}

// ListPitchesByTeam retrieves a team's pitches, newest first
func (r *Repository) ListPitchesByTeam(ctx context.Context, teamID models.TeamID) ([]models.Pitch, error) {
	rows, err := r.queries.ListPitchesByTeam(ctx, uuid.UUID(teamID))
	if err != nil {
		return nil, fmt.Errorf("failed to list pitches by team: %w", err)
	}

	pitches := make([]models.Pitch, len(rows))
	for i, row := range rows {
		pitches[i] = *dbPitchToModel(row)
	}
	return pitches, nil
}

// UpdatePitchStatus sets the pitch status
func (r *Repository) UpdatePitchStatus(ctx context.Context, id uuid.UUID, status models.PitchStatus) (*models.Pitch, error) {
	pitch, err := r.queries.UpdatePitchStatus(ctx, db.UpdatePitchStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update pitch status: %w", err)
	}
	return dbPitchToModel(pitch), nil
}

func dbPitchToModel(p db.Pitch) *models.Pitch {
	return &models.Pitch{
		ID:        p.ID,
		TeamID:    models.TeamID(p.TeamID),
		PlayerID:  p.PlayerID,
		Title:     p.Title,
		Status:    models.PitchStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
