package interest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/transferdesk/go/internal/interest/db"
	"github.com/mcdev12/transferdesk/go/internal/metrics"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/sqlutil"
)

const uniqueViolation = "23505"

// Notifier is told about every interest write from inside its transaction.
// It must not fail the write.
type Notifier interface {
	AfterInterestWrite(ctx context.Context, tx sqlutil.DBTX, ev models.InterestEvent)
}

// Repository handles interest persistence. Writes run in one transaction
// that locks the before-image, applies the change and calls the notifier.
type Repository struct {
	db       *sql.DB
	queries  *db.Queries
	notifier Notifier
}

// NewRepository creates a new interest repository
func NewRepository(database *sql.DB, notifier Notifier) *Repository {
	return &Repository{
		db:       database,
		queries:  db.New(database),
		notifier: notifier,
	}
}

func newTxQueries(tx *sql.Tx) *db.Queries { return db.New(tx) }

// CreateInterest inserts an interest in state interested
func (r *Repository) CreateInterest(ctx context.Context, actor models.UserID, req CreateInterestRequest) (*models.Interest, error) {
	var out *models.Interest
	err := sqlutil.Run(ctx, r.db, newTxQueries, func(tx *sql.Tx, q *db.Queries) error {
		row, err := q.CreateInterest(ctx, db.CreateInterestParams{
			PitchID: req.PitchID,
			AgentID: uuid.UUID(req.AgentID),
			Message: req.Message,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return ErrInterestExists
			}
			return fmt.Errorf("failed to create interest: %w", err)
		}
		out = dbInterestToModel(row)

		r.notify(ctx, tx, models.InterestEvent{Type: models.InterestCreated, After: out, Actor: actor})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInterestStatus locks the row, runs check against it, then sets status
func (r *Repository) UpdateInterestStatus(ctx context.Context, actor models.UserID, id uuid.UUID, status models.InterestStatus, check CheckFunc) (*models.Interest, error) {
	var out *models.Interest
	err := sqlutil.Run(ctx, r.db, newTxQueries, func(tx *sql.Tx, q *db.Queries) error {
		before, err := lockInterest(ctx, q, id, check)
		if err != nil {
			return err
		}

		row, err := q.UpdateInterestStatus(ctx, db.UpdateInterestStatusParams{
			ID:     id,
			Status: string(status),
		})
		if err != nil {
			return fmt.Errorf("failed to update interest status: %w", err)
		}
		out = dbInterestToModel(row)

		r.notify(ctx, tx, models.InterestEvent{Type: models.InterestStatusChanged, Before: before, After: out, Actor: actor})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteInterest locks the row, runs check against it, then removes it.
// Returns the removed record.
func (r *Repository) DeleteInterest(ctx context.Context, actor models.UserID, id uuid.UUID, check CheckFunc) (*models.Interest, error) {
	var out *models.Interest
	err := sqlutil.Run(ctx, r.db, newTxQueries, func(tx *sql.Tx, q *db.Queries) error {
		if _, err := lockInterest(ctx, q, id, check); err != nil {
			return err
		}

		row, err := q.DeleteInterest(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete interest: %w", err)
		}
		out = dbInterestToModel(row)

		r.notify(ctx, tx, models.InterestEvent{Type: models.InterestDeleted, Before: out, Actor: actor})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetInterest retrieves an interest by ID
func (r *Repository) GetInterest(ctx context.Context, id uuid.UUID) (*models.Interest, error) {
	row, err := r.queries.GetInterest(ctx, id)
	if err != nil {
		return nil, notFound(err, "failed to get interest")
	}
	return dbInterestToModel(row), nil
}

// GetInterestByAgentAndPitch retrieves the interest for an (agent, pitch) pair
func (r *Repository) GetInterestByAgentAndPitch(ctx context.Context, agentID models.AgentID, pitchID uuid.UUID) (*models.Interest, error) {
	row, err := r.queries.GetInterestByAgentAndPitch(ctx, db.GetInterestByAgentAndPitchParams{
		AgentID: uuid.UUID(agentID),
		PitchID: pitchID,
	})
	if err != nil {
		return nil, notFound(err, "failed to get interest by agent and pitch")
	}
	return dbInterestToModel(row), nil
}

// ListInterestsByPitch retrieves all interests in a pitch, oldest first
func (r *Repository) ListInterestsByPitch(ctx context.Context, pitchID uuid.UUID) ([]models.Interest, error) {
	rows, err := r.queries.ListInterestsByPitch(ctx, pitchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interests by pitch: %w", err)
	}
	return dbInterestsToModels(rows), nil
}

// ListInterestsByAgent retrieves all interests of an agent, newest first
func (r *Repository) ListInterestsByAgent(ctx context.Context, agentID models.AgentID) ([]models.Interest, error) {
	rows, err := r.queries.ListInterestsByAgent(ctx, uuid.UUID(agentID))
	if err != nil {
		return nil, fmt.Errorf("failed to list interests by agent: %w", err)
	}
	return dbInterestsToModels(rows), nil
}

func (r *Repository) notify(ctx context.Context, tx *sql.Tx, ev models.InterestEvent) {
	metrics.InterestWritesTotal.WithLabelValues(string(ev.Type)).Inc()
	if r.notifier != nil {
		r.notifier.AfterInterestWrite(ctx, tx, ev)
	}
}

func lockInterest(ctx context.Context, q *db.Queries, id uuid.UUID, check CheckFunc) (*models.Interest, error) {
	row, err := q.GetInterestForUpdate(ctx, id)
	if err != nil {
		return nil, notFound(err, "failed to lock interest")
	}
	current := dbInterestToModel(row)
	if check != nil {
		if err := check(current); err != nil {
			return nil, err
		}
	}
	return current, nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", msg, ErrInterestNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func dbInterestToModel(i db.AgentInterest) *models.Interest {
	return &models.Interest{
		ID:        i.ID,
		PitchID:   i.PitchID,
		AgentID:   models.AgentID(i.AgentID),
		Status:    models.InterestStatus(i.Status),
		Message:   i.Message,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func dbInterestsToModels(rows []db.AgentInterest) []models.Interest {
	out := make([]models.Interest, len(rows))
	for i, row := range rows {
		out[i] = *dbInterestToModel(row)
	}
	return out
}
