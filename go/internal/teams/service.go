package teams

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/mcdev12/transferdesk/go/internal/auth"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/rpc"
)

// TeamServiceName is the fully-qualified name of the team service.
const TeamServiceName = "transfers.teams.v1.TeamService"

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, actor models.UserID, name, country string) (*models.Team, error)
	GetTeam(ctx context.Context, id models.TeamID) (*models.Team, error)
	ListTeamsByProfile(ctx context.Context, profileID models.ProfileID) ([]models.Team, error)
}

// Team is the wire representation of a team
type Team struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id,omitempty"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTeamMessage struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type GetTeamMessage struct {
	ID string `json:"id"`
}

type ListTeamsByProfileMessage struct {
	ProfileID string `json:"profile_id"`
}

type TeamResponse struct {
	Team *Team `json:"team"`
}

type ListTeamsResponse struct {
	Teams []*Team `json:"teams"`
}

// Service implements the TeamService connect handlers
type Service struct {
	app TeamsApp
}

// NewService creates a new teams service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

// NewTeamServiceHandler builds an HTTP handler from the service implementation.
func NewTeamServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(rpc.Procedure(TeamServiceName, "CreateTeam"),
		connect.NewUnaryHandler(rpc.Procedure(TeamServiceName, "CreateTeam"), svc.CreateTeam, opts...))
	mux.Handle(rpc.Procedure(TeamServiceName, "GetTeam"),
		connect.NewUnaryHandler(rpc.Procedure(TeamServiceName, "GetTeam"), svc.GetTeam, opts...))
	mux.Handle(rpc.Procedure(TeamServiceName, "ListTeamsByProfile"),
		connect.NewUnaryHandler(rpc.Procedure(TeamServiceName, "ListTeamsByProfile"), svc.ListTeamsByProfile, opts...))
	return "/" + TeamServiceName + "/", mux
}

// CreateTeam creates a team for the caller
func (s *Service) CreateTeam(ctx context.Context, req *connect.Request[CreateTeamMessage]) (*connect.Response[TeamResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	team, err := s.app.CreateTeam(ctx, actor, req.Msg.Name, req.Msg.Country)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&TeamResponse{Team: teamToWire(team)}), nil
}

// GetTeam retrieves a team by ID
func (s *Service) GetTeam(ctx context.Context, req *connect.Request[GetTeamMessage]) (*connect.Response[TeamResponse], error) {
	id, err := models.ParseTeamID(req.Msg.ID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	team, err := s.app.GetTeam(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&TeamResponse{Team: teamToWire(team)}), nil
}

// ListTeamsByProfile lists the teams a profile owns
func (s *Service) ListTeamsByProfile(ctx context.Context, req *connect.Request[ListTeamsByProfileMessage]) (*connect.Response[ListTeamsResponse], error) {
	profileID, err := models.ParseProfileID(req.Msg.ProfileID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	teams, err := s.app.ListTeamsByProfile(ctx, profileID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*Team, len(teams))
	for i := range teams {
		out[i] = teamToWire(&teams[i])
	}
	return connect.NewResponse(&ListTeamsResponse{Teams: out}), nil
}

func toConnectError(err error) error {
	return rpc.ToConnectError(err,
		rpc.Map(ErrInvalidRequest, connect.CodeInvalidArgument),
		rpc.Map(ErrNoProfile, connect.CodeFailedPrecondition),
	)
}

func teamToWire(t *models.Team) *Team {
	out := &Team{
		ID:        t.ID.String(),
		Name:      t.Name,
		Country:   t.Country,
		CreatedAt: t.CreatedAt,
	}
	if t.ProfileID != nil {
		out.ProfileID = t.ProfileID.String()
	}
	return out
}
