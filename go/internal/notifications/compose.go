package notifications

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/mcdev12/transferdesk/go/internal/models"
)

// Placeholders stand in for display names that are empty.
type Placeholders struct {
	Agent  string `mapstructure:"agent"`
	Team   string `mapstructure:"team"`
	Player string `mapstructure:"player"`
	Pitch  string `mapstructure:"pitch"`
}

// DefaultPlaceholders returns the stock fallback names.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		Agent:  "An agent",
		Team:   "Team",
		Player: "a player",
		Pitch:  "your pitch",
	}
}

// Composer renders notification text. Rendering never fails on missing
// names; it substitutes placeholders instead.
type Composer struct {
	placeholders Placeholders
}

// NewComposer creates a composer. Empty placeholder fields take the defaults.
func NewComposer(p Placeholders) *Composer {
	d := DefaultPlaceholders()
	if p.Agent == "" {
		p.Agent = d.Agent
	}
	if p.Team == "" {
		p.Team = d.Team
	}
	if p.Player == "" {
		p.Player = d.Player
	}
	if p.Pitch == "" {
		p.Pitch = d.Pitch
	}
	return &Composer{placeholders: p}
}

type metadata struct {
	Event      models.InterestEventType `json:"event"`
	Kind       Kind                     `json:"kind"`
	InterestID string                   `json:"interest_id"`
	PitchID    string                   `json:"pitch_id"`
	PlayerID   string                   `json:"player_id"`
	TeamID     string                   `json:"team_id"`
	AgentID    string                   `json:"agent_id"`
	OldStatus  models.InterestStatus    `json:"old_status,omitempty"`
	NewStatus  models.InterestStatus    `json:"new_status,omitempty"`
}

// Compose builds the notification for a routed event. ID and CreatedAt are
// left for the dispatcher to stamp.
func (c *Composer) Compose(d Delivery, ev models.InterestEvent, res *Resolution) (models.Notification, error) {
	subject := ev.Subject()
	if subject == nil {
		return models.Notification{}, ErrInvalidEvent
	}

	agent := orDefault(res.Agent.Name, c.placeholders.Agent)
	team := orDefault(res.Team.Name, c.placeholders.Team)
	player := orDefault(res.PlayerName, c.placeholders.Player)
	pitch := orDefault(res.PitchTitle, c.placeholders.Pitch)

	n := models.Notification{
		Category: models.NotificationCategoryAgentInterest,
	}
	switch d.Kind {
	case KindInterestCreated:
		n.Title = "New interest in " + pitch
		n.Body = fmt.Sprintf("%s is interested in %s.", agent, player)
		if subject.Message != "" {
			n.Body += " \"" + subject.Message + "\""
		}
		n.ActionLabel = "View interest"
	case KindNegotiationStarted:
		n.Title = "Negotiation started"
		n.Body = fmt.Sprintf("%s wants to negotiate with you about %s.", team, player)
		n.ActionLabel = "Open negotiation"
	case KindInfoRequested:
		n.Title = "More information requested"
		n.Body = fmt.Sprintf("%s asked for more information about your interest in %s.", team, player)
		n.ActionLabel = "Reply"
	case KindInterestRejected:
		n.Title = "Interest rejected"
		n.Body = fmt.Sprintf("%s declined your interest in %s.", team, player)
		n.ActionLabel = "View details"
	case KindInterestWithdrawn:
		n.Title = "Interest withdrawn"
		n.Body = fmt.Sprintf("%s withdrew their interest in %s.", agent, player)
		n.ActionLabel = "View interest"
	case KindInterestCancelled:
		n.Title = "Interest cancelled"
		n.Body = fmt.Sprintf("%s cancelled their interest in %s.", agent, player)
		n.ActionLabel = "View pitch"
	default:
		return models.Notification{}, fmt.Errorf("%w: no template for kind %q", ErrInvalidEvent, d.Kind)
	}

	switch {
	case d.Kind == KindInterestCancelled:
		n.ActionURL = fmt.Sprintf("/pitches/%s", res.PitchID)
	case d.To == SideTeam:
		n.ActionURL = fmt.Sprintf("/pitches/%s/interests/%s", res.PitchID, subject.ID)
	default:
		n.ActionURL = fmt.Sprintf("/interests/%s", subject.ID)
	}

	meta := metadata{
		Event:      ev.Type,
		Kind:       d.Kind,
		InterestID: subject.ID.String(),
		PitchID:    res.PitchID.String(),
		PlayerID:   res.PlayerID.String(),
		TeamID:     res.TeamID.String(),
		AgentID:    res.AgentID.String(),
	}
	if ev.Before != nil {
		meta.OldStatus = ev.Before.Status
	}
	if ev.After != nil {
		meta.NewStatus = ev.After.Status
	}
	raw, err := sonic.Marshal(meta)
	if err != nil {
		return models.Notification{}, fmt.Errorf("failed to encode notification metadata: %w", err)
	}
	n.Metadata = raw

	return n, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
