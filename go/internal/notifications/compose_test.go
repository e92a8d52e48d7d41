package notifications

import (
	"encoding/json"
	"testing"

	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolutionFor(c cast) *Resolution {
	return &Resolution{
		TeamID:     c.teamID,
		Team:       Addressee{UserID: c.teamUser, Name: "Porto FC"},
		AgentID:    c.agentID,
		Agent:      Addressee{UserID: c.agentUser, Name: "Ana Mendes"},
		PitchID:    c.pitchID,
		PitchTitle: "Left back",
		PlayerID:   c.playerID,
		PlayerName: "João Silva",
	}
}

func TestComposeActionURLs(t *testing.T) {
	_, c := newWorld()
	comp := NewComposer(Placeholders{})
	res := resolutionFor(c)
	id := interest(c, models.InterestStatusInterested).ID.String()

	n, err := comp.Compose(Delivery{KindInterestCreated, SideTeam}, created(c), res)
	require.NoError(t, err)
	assert.Equal(t, "/pitches/"+c.pitchID.String()+"/interests/"+id, n.ActionURL)

	n, err = comp.Compose(Delivery{KindInfoRequested, SideAgent},
		changed(c, models.InterestStatusInterested, models.InterestStatusRequested, c.teamUser), res)
	require.NoError(t, err)
	assert.Equal(t, "/interests/"+id, n.ActionURL)

	n, err = comp.Compose(Delivery{KindInterestCancelled, SideTeam}, deleted(c, models.InterestStatusInterested), res)
	require.NoError(t, err)
	assert.Equal(t, "/pitches/"+c.pitchID.String(), n.ActionURL)
}

func TestComposeUsesPlaceholdersForMissingNames(t *testing.T) {
	_, c := newWorld()
	res := resolutionFor(c)
	res.Agent.Name, res.Team.Name, res.PlayerName, res.PitchTitle = "", "", "", ""

	n, err := NewComposer(Placeholders{}).Compose(Delivery{KindInterestCreated, SideTeam}, created(c), res)
	require.NoError(t, err)
	assert.Equal(t, "New interest in your pitch", n.Title)
	assert.Equal(t, "An agent is interested in a player.", n.Body)

	n, err = NewComposer(Placeholders{Team: "A club"}).Compose(Delivery{KindInterestRejected, SideAgent},
		changed(c, models.InterestStatusInterested, models.InterestStatusRejected, c.teamUser), res)
	require.NoError(t, err)
	assert.Equal(t, "A club declined your interest in a player.", n.Body)
}

func TestComposeMetadata(t *testing.T) {
	_, c := newWorld()

	n, err := NewComposer(Placeholders{}).Compose(Delivery{KindNegotiationStarted, SideAgent},
		changed(c, models.InterestStatusRequested, models.InterestStatusNegotiating, c.teamUser), resolutionFor(c))
	require.NoError(t, err)

	var meta map[string]string
	require.NoError(t, json.Unmarshal(n.Metadata, &meta))
	assert.Equal(t, "status_changed", meta["event"])
	assert.Equal(t, "negotiation_started", meta["kind"])
	assert.Equal(t, c.pitchID.String(), meta["pitch_id"])
	assert.Equal(t, c.playerID.String(), meta["player_id"])
	assert.Equal(t, c.teamID.String(), meta["team_id"])
	assert.Equal(t, c.agentID.String(), meta["agent_id"])
	assert.Equal(t, "requested", meta["old_status"])
	assert.Equal(t, "negotiating", meta["new_status"])
	assert.NotEmpty(t, meta["interest_id"])
}

func TestComposeIncludesAgentMessageOnCreate(t *testing.T) {
	_, c := newWorld()
	ev := created(c)
	ev.After.Message = "Client is keen on Portugal"

	n, err := NewComposer(Placeholders{}).Compose(Delivery{KindInterestCreated, SideTeam}, ev, resolutionFor(c))
	require.NoError(t, err)
	assert.Contains(t, n.Body, "Client is keen on Portugal")
}
