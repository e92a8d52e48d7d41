package agents

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/mcdev12/transferdesk/go/internal/auth"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/rpc"
)

// AgentServiceName is the fully-qualified name of the agent service.
const AgentServiceName = "transfers.agents.v1.AgentService"

// AgentsApp defines what the service layer needs from the agents application
type AgentsApp interface {
	CreateAgent(ctx context.Context, actor models.UserID, name, agency string) (*models.Agent, error)
	GetAgent(ctx context.Context, id models.AgentID) (*models.Agent, error)
	ListAgentsByProfile(ctx context.Context, profileID models.ProfileID) ([]models.Agent, error)
}

// Agent is the wire shape returned by AgentService
type Agent struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id,omitempty"`
	Name      string    `json:"name"`
	Agency    string    `json:"agency"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAgentMessage struct {
	Name   string `json:"name"`
	Agency string `json:"agency"`
}

type GetAgentMessage struct {
	ID string `json:"id"`
}

type ListAgentsByProfileMessage struct {
	ProfileID string `json:"profile_id"`
}

type AgentResponse struct {
	Agent *Agent `json:"agent"`
}

type ListAgentsResponse struct {
	Agents []*Agent `json:"agents"`
}

// Service implements the AgentService connect handlers
type Service struct {
	app AgentsApp
}

// NewService creates a new agents service
func NewService(app AgentsApp) *Service {
	return &Service{
		app: app,
	}
}

// NewAgentServiceHandler builds an HTTP handler from the service implementation.
func NewAgentServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(rpc.Procedure(AgentServiceName, "CreateAgent"),
		connect.NewUnaryHandler(rpc.Procedure(AgentServiceName, "CreateAgent"), svc.CreateAgent, opts...))
	mux.Handle(rpc.Procedure(AgentServiceName, "GetAgent"),
		connect.NewUnaryHandler(rpc.Procedure(AgentServiceName, "GetAgent"), svc.GetAgent, opts...))
	mux.Handle(rpc.Procedure(AgentServiceName, "ListAgentsByProfile"),
		connect.NewUnaryHandler(rpc.Procedure(AgentServiceName, "ListAgentsByProfile"), svc.ListAgentsByProfile, opts...))
	return "/" + AgentServiceName + "/", mux
}

// CreateAgent creates an agent for the caller
func (s *Service) CreateAgent(ctx context.Context, req *connect.Request[CreateAgentMessage]) (*connect.Response[AgentResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	agent, err := s.app.CreateAgent(ctx, actor, req.Msg.Name, req.Msg.Agency)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AgentResponse{Agent: agentToWire(agent)}), nil
}

// GetAgent retrieves an agent by ID
func (s *Service) GetAgent(ctx context.Context, req *connect.Request[GetAgentMessage]) (*connect.Response[AgentResponse], error) {
	id, err := models.ParseAgentID(req.Msg.ID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	agent, err := s.app.GetAgent(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AgentResponse{Agent: agentToWire(agent)}), nil
}

// ListAgentsByProfile lists the agents a profile owns
func (s *Service) ListAgentsByProfile(ctx context.Context, req *connect.Request[ListAgentsByProfileMessage]) (*connect.Response[ListAgentsResponse], error) {
	profileID, err := models.ParseProfileID(req.Msg.ProfileID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	agents, err := s.app.ListAgentsByProfile(ctx, profileID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*Agent, len(agents))
	for i := range agents {
		out[i] = agentToWire(&agents[i])
	}
	return connect.NewResponse(&ListAgentsResponse{Agents: out}), nil
}

func toConnectError(err error) error {
	return rpc.ToConnectError(err,
		rpc.Map(ErrInvalidRequest, connect.CodeInvalidArgument),
		rpc.Map(ErrNoProfile, connect.CodeFailedPrecondition),
	)
}

func agentToWire(a *models.Agent) *Agent {
	out := &Agent{
		ID:        a.ID.String(),
		Name:      a.Name,
		Agency:    a.Agency,
		CreatedAt: a.CreatedAt,
	}
	if a.ProfileID != nil {
		out.ProfileID = a.ProfileID.String()
	}
	return out
}
