package models

import (
	"github.com/google/uuid"
)

// The party identifier types below are deliberately distinct from UserID.
// A team or agent row id is never an addressee; only a profile's UserID is.

// UserID is the externally visible account identifier (the auth subject).
// It is the only valid notification addressee.
type UserID uuid.UUID

// ProfileID is the internal primary key of a profile row.
type ProfileID uuid.UUID

// TeamID is the internal primary key of a team row.
type TeamID uuid.UUID

// AgentID is the internal primary key of an agent row.
type AgentID uuid.UUID

func (id UserID) String() string    { return uuid.UUID(id).String() }
func (id ProfileID) String() string { return uuid.UUID(id).String() }
func (id TeamID) String() string    { return uuid.UUID(id).String() }
func (id AgentID) String() string   { return uuid.UUID(id).String() }

// Each ID type encodes as its canonical uuid string in JSON and text.

func (id UserID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id ProfileID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id TeamID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id AgentID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *ProfileID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *TeamID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *AgentID) UnmarshalText(b []byte) error   { return (*uuid.UUID)(id).UnmarshalText(b) }

// IsZero reports whether the user id is unset.
func (id UserID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// ParseUserID parses a textual user id.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID(id), nil
}

// ParseProfileID parses a textual profile id.
func ParseProfileID(s string) (ProfileID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProfileID{}, err
	}
	return ProfileID(id), nil
}

// ParseTeamID parses a textual team id.
func ParseTeamID(s string) (TeamID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TeamID{}, err
	}
	return TeamID(id), nil
}

// ParseAgentID parses a textual agent id.
func ParseAgentID(s string) (AgentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AgentID{}, err
	}
	return AgentID(id), nil
}
