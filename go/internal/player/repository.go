package player

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/player/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreatePlayer(ctx context.Context, arg db.CreatePlayerParams) (db.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)
}

// Repository handles all player-related database operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new player repository
func NewRepository(queries Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// CreatePlayerRequest contains all data needed to create a player
type CreatePlayerRequest struct {
	FullName    string
	Position    string
	Nationality string
}

// CreatePlayer creates a player
func (r *Repository) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	dbPlayer, err := r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		FullName:    req.FullName,
		Position:    req.Position,
		Nationality: req.Nationality,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return dbPlayerToDomain(dbPlayer), nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	dbPlayer, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return dbPlayerToDomain(dbPlayer), nil
}

func dbPlayerToDomain(p db.Player) *models.Player {
	return &models.Player{
		ID:          p.ID,
		FullName:    p.FullName,
		Position:    p.Position,
		Nationality: p.Nationality,
		CreatedAt:   p.CreatedAt,
	}
}
