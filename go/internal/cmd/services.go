package main

import (
	"database/sql"

	"github.com/mcdev12/transferdesk/go/internal/agents"
	agentsdb "github.com/mcdev12/transferdesk/go/internal/agents/db"
	"github.com/mcdev12/transferdesk/go/internal/config"
	"github.com/mcdev12/transferdesk/go/internal/interest"
	"github.com/mcdev12/transferdesk/go/internal/notifications"
	notificationsdb "github.com/mcdev12/transferdesk/go/internal/notifications/db"
	"github.com/mcdev12/transferdesk/go/internal/outbox"
	"github.com/mcdev12/transferdesk/go/internal/parties"
	"github.com/mcdev12/transferdesk/go/internal/pitches"
	pitchesdb "github.com/mcdev12/transferdesk/go/internal/pitches/db"
	"github.com/mcdev12/transferdesk/go/internal/player"
	playerdb "github.com/mcdev12/transferdesk/go/internal/player/db"
	"github.com/mcdev12/transferdesk/go/internal/profiles"
	profilesdb "github.com/mcdev12/transferdesk/go/internal/profiles/db"
	"github.com/mcdev12/transferdesk/go/internal/teams"
	teamsdb "github.com/mcdev12/transferdesk/go/internal/teams/db"
)

type Services struct {
	Profiles      *profiles.Service
	Teams         *teams.Service
	Agents        *agents.Service
	Players       *player.Service
	Pitches       *pitches.Service
	Interest      *interest.Service
	Notifications *notifications.Service
}

func setupServices(database *sql.DB, c config.NotificationsConfig) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer

	// Profiles
	profilesRepo := profiles.NewRepository(profilesdb.New(database))
	profilesApp := profiles.NewApp(profilesRepo)

	// Teams and agents hang off the caller's profile
	teamsRepo := teams.NewRepository(teamsdb.New(database))
	teamsApp := teams.NewApp(teamsRepo, profilesApp)
	agentsRepo := agents.NewRepository(agentsdb.New(database))
	agentsApp := agents.NewApp(agentsRepo, profilesApp)

	owners := parties.NewOwners(teamsRepo, agentsRepo, profilesRepo)

	// Players
	playerRepo := player.NewRepository(playerdb.New(database))
	playerApp := player.NewApp(playerRepo)

	// Pitches
	pitchesRepo := pitches.NewRepository(pitchesdb.New(database))
	pitchesApp := pitches.NewApp(pitchesRepo, owners, playerApp)

	// Interest writes notify through the hook inside their transaction
	var hookOpts []notifications.HookOption
	if c.OutboxEnabled {
		hookOpts = append(hookOpts, notifications.WithOutbox(outbox.NewWriter()))
	}
	dispatcher := notifications.NewDispatcher(notifications.NewComposer(c.Placeholders), nil)
	hook := notifications.NewHook(dispatcher, hookOpts...)
	interestRepo := interest.NewRepository(database, hook)
	interestApp := interest.NewApp(interestRepo, owners, pitchesRepo)

	// Inbox
	inboxRepo := notifications.NewRepository(notificationsdb.New(database))
	inboxApp := notifications.NewApp(inboxRepo)

	return &Services{
		Profiles:      profiles.NewService(profilesApp),
		Teams:         teams.NewService(teamsApp),
		Agents:        agents.NewService(agentsApp),
		Players:       player.NewService(playerApp),
		Pitches:       pitches.NewService(pitchesApp),
		Interest:      interest.NewService(interestApp),
		Notifications: notifications.NewService(inboxApp),
	}
}
