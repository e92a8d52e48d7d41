package notifications

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
)

// world is an in-memory party directory plus notification table.
type world struct {
	pitches       map[uuid.UUID]*PitchRecord
	agents        map[models.AgentID]*AgentRecord
	notifications []models.Notification
	insertErr     error
}

type cast struct {
	teamUser  models.UserID
	agentUser models.UserID
	teamID    models.TeamID
	agentID   models.AgentID
	pitchID   uuid.UUID
	playerID  uuid.UUID
}

func newWorld() (*world, cast) {
	c := cast{
		teamUser:  models.UserID(uuid.New()),
		agentUser: models.UserID(uuid.New()),
		teamID:    models.TeamID(uuid.New()),
		agentID:   models.AgentID(uuid.New()),
		pitchID:   uuid.New(),
		playerID:  uuid.New(),
	}
	teamUser, agentUser := c.teamUser, c.agentUser
	w := &world{
		pitches: map[uuid.UUID]*PitchRecord{
			c.pitchID: {
				PitchID:    c.pitchID,
				Title:      "Left back for next season",
				TeamID:     c.teamID,
				TeamName:   "Porto FC",
				TeamUserID: &teamUser,
				PlayerID:   c.playerID,
				PlayerName: "João Silva",
			},
		},
		agents: map[models.AgentID]*AgentRecord{
			c.agentID: {
				AgentID:     c.agentID,
				Name:        "Ana Mendes",
				UserID:      &agentUser,
				DisplayName: "ana.m",
			},
		},
	}
	return w, c
}

func (w *world) PitchAddressee(_ context.Context, id uuid.UUID) (*PitchRecord, error) {
	p, ok := w.pitches[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

func (w *world) AgentAddressee(_ context.Context, id models.AgentID) (*AgentRecord, error) {
	a, ok := w.agents[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *a
	return &cp, nil
}

func (w *world) InsertNotification(_ context.Context, n models.Notification) (*models.Notification, error) {
	if w.insertErr != nil {
		return nil, w.insertErr
	}
	w.notifications = append(w.notifications, n)
	return &n, nil
}

// orphanAgent simulates a deleted profile: the agent row stays, its user is gone.
func (w *world) orphanAgent(id models.AgentID) {
	w.agents[id].UserID = nil
	w.agents[id].DisplayName = ""
}

func interest(c cast, status models.InterestStatus) *models.Interest {
	return &models.Interest{
		ID:        uuid.MustParse("6f1c5a2e-3c1d-4e59-9d7a-0b8f0f3b2a11"),
		PitchID:   c.pitchID,
		AgentID:   c.agentID,
		Status:    status,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func created(c cast) models.InterestEvent {
	return models.InterestEvent{Type: models.InterestCreated, After: interest(c, models.InterestStatusInterested), Actor: c.agentUser}
}

func changed(c cast, from, to models.InterestStatus, actor models.UserID) models.InterestEvent {
	return models.InterestEvent{
		Type:   models.InterestStatusChanged,
		Before: interest(c, from),
		After:  interest(c, to),
		Actor:  actor,
	}
}

func deleted(c cast, from models.InterestStatus) models.InterestEvent {
	return models.InterestEvent{Type: models.InterestDeleted, Before: interest(c, from), Actor: c.agentUser}
}

// recordingTx is a DBTX that only records the statements executed on it.
type recordingTx struct {
	execs   []string
	failSQL string
}

func (r *recordingTx) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	r.execs = append(r.execs, query)
	if r.failSQL != "" && query == r.failSQL {
		return nil, errors.New("exec failed")
	}
	return driver.RowsAffected(0), nil
}

func (r *recordingTx) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errors.New("not supported")
}

func (r *recordingTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not supported")
}

func (r *recordingTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}
