package notifications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
)

// PitchRecord is the pitch side of an addressee lookup. TeamUserID is nil
// when the team has no profile.
type PitchRecord struct {
	PitchID    uuid.UUID
	Title      string
	TeamID     models.TeamID
	TeamName   string
	TeamUserID *models.UserID
	PlayerID   uuid.UUID
	PlayerName string
}

// AgentRecord is the agent side of an addressee lookup. UserID is nil
// when the agent has no profile.
type AgentRecord struct {
	AgentID     models.AgentID
	Name        string
	UserID      *models.UserID
	DisplayName string
}

// Directory is a read view over parties, normally bound to the write transaction.
// Missing rows are reported as sql.ErrNoRows.
type Directory interface {
	PitchAddressee(ctx context.Context, pitchID uuid.UUID) (*PitchRecord, error)
	AgentAddressee(ctx context.Context, agentID models.AgentID) (*AgentRecord, error)
}

// Addressee is one resolved side of an interest.
type Addressee struct {
	UserID models.UserID
	Name   string
}

// Resolution holds both addressees plus the display context for composing.
type Resolution struct {
	TeamID     models.TeamID
	Team       Addressee
	AgentID    models.AgentID
	Agent      Addressee
	PitchID    uuid.UUID
	PitchTitle string
	PlayerID   uuid.UUID
	PlayerName string
}

// Resolver maps a pitch and an agent to the users behind them.
type Resolver struct{}

// Resolve looks up both parties. Both user ids must exist and differ.
func (Resolver) Resolve(ctx context.Context, dir Directory, pitchID uuid.UUID, agentID models.AgentID) (*Resolution, error) {
	pitch, err := dir.PitchAddressee(ctx, pitchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ResolutionError{Party: PartyPitch, PartyID: pitchID.String(), Reason: "pitch, team or player row missing"}
		}
		return nil, fmt.Errorf("failed to look up pitch addressee: %w", err)
	}
	if pitch.TeamUserID == nil || pitch.TeamUserID.IsZero() {
		return nil, &ResolutionError{Party: PartyTeam, PartyID: pitch.TeamID.String(), Reason: "team has no profile"}
	}

	agent, err := dir.AgentAddressee(ctx, agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ResolutionError{Party: PartyAgent, PartyID: agentID.String(), Reason: "agent row missing"}
		}
		return nil, fmt.Errorf("failed to look up agent addressee: %w", err)
	}
	if agent.UserID == nil || agent.UserID.IsZero() {
		return nil, &ResolutionError{Party: PartyAgent, PartyID: agentID.String(), Reason: "agent has no profile"}
	}

	if *pitch.TeamUserID == *agent.UserID {
		return nil, &SelfAddressError{UserID: *agent.UserID, TeamID: pitch.TeamID, AgentID: agentID}
	}

	agentName := agent.Name
	if agentName == "" {
		agentName = agent.DisplayName
	}

	return &Resolution{
		TeamID:     pitch.TeamID,
		Team:       Addressee{UserID: *pitch.TeamUserID, Name: pitch.TeamName},
		AgentID:    agentID,
		Agent:      Addressee{UserID: *agent.UserID, Name: agentName},
		PitchID:    pitch.PitchID,
		PitchTitle: pitch.Title,
		PlayerID:   pitch.PlayerID,
		PlayerName: pitch.PlayerName,
	}, nil
}
