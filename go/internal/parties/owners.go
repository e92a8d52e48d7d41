// Package parties answers "which user acts for this team or agent".
package parties

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcdev12/transferdesk/go/internal/models"
)

// ErrNoOwner is returned when a team or agent has no profile behind it.
var ErrNoOwner = errors.New("party has no owning profile")

type TeamGetter interface {
	GetTeam(ctx context.Context, id models.TeamID) (*models.Team, error)
}

type AgentGetter interface {
	GetAgent(ctx context.Context, id models.AgentID) (*models.Agent, error)
}

type ProfileGetter interface {
	GetProfile(ctx context.Context, id models.ProfileID) (*models.Profile, error)
}

// Owners maps parties to the user ids allowed to act for them.
type Owners struct {
	teams    TeamGetter
	agents   AgentGetter
	profiles ProfileGetter
}

func NewOwners(teams TeamGetter, agents AgentGetter, profiles ProfileGetter) *Owners {
	return &Owners{teams: teams, agents: agents, profiles: profiles}
}

// TeamUser returns the user that owns the team.
func (o *Owners) TeamUser(ctx context.Context, id models.TeamID) (models.UserID, error) {
	team, err := o.teams.GetTeam(ctx, id)
	if err != nil {
		return models.UserID{}, fmt.Errorf("failed to get team: %w", err)
	}
	return o.userFor(ctx, team.ProfileID)
}

// AgentUser returns the user that owns the agent.
func (o *Owners) AgentUser(ctx context.Context, id models.AgentID) (models.UserID, error) {
	agent, err := o.agents.GetAgent(ctx, id)
	if err != nil {
		return models.UserID{}, fmt.Errorf("failed to get agent: %w", err)
	}
	return o.userFor(ctx, agent.ProfileID)
}

func (o *Owners) userFor(ctx context.Context, profileID *models.ProfileID) (models.UserID, error) {
	if profileID == nil {
		return models.UserID{}, ErrNoOwner
	}
	profile, err := o.profiles.GetProfile(ctx, *profileID)
	if err != nil {
		return models.UserID{}, fmt.Errorf("failed to get owning profile: %w", err)
	}
	return profile.UserID, nil
}
