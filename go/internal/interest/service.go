package interest

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/auth"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/pitches"
	"github.com/mcdev12/transferdesk/go/internal/rpc"
)

// InterestServiceName is the fully-qualified name of the interest service.
const InterestServiceName = "transfers.interest.v1.InterestService"

// InterestApp defines what the service layer needs from the interest application
type InterestApp interface {
	ExpressInterest(ctx context.Context, actor models.UserID, req CreateInterestRequest) (*models.Interest, error)
	UpdateStatus(ctx context.Context, actor models.UserID, id uuid.UUID, status models.InterestStatus) (*models.Interest, error)
	Withdraw(ctx context.Context, actor models.UserID, id uuid.UUID) (*models.Interest, error)
	DeleteInterest(ctx context.Context, actor models.UserID, id uuid.UUID) (*models.Interest, error)
	GetInterest(ctx context.Context, actor models.UserID, id uuid.UUID) (*models.Interest, error)
	ListInterestsByPitch(ctx context.Context, actor models.UserID, pitchID uuid.UUID) ([]models.Interest, error)
	ListInterestsByAgent(ctx context.Context, actor models.UserID, agentID models.AgentID) ([]models.Interest, error)
}

// Interest is the wire representation of an interest
type Interest struct {
	ID        string    `json:"id"`
	PitchID   string    `json:"pitch_id"`
	AgentID   string    `json:"agent_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ExpressInterestMessage struct {
	PitchID string `json:"pitch_id"`
	AgentID string `json:"agent_id"`
	Message string `json:"message"`
}

type UpdateStatusMessage struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type InterestIDMessage struct {
	ID string `json:"id"`
}

type ListInterestsByPitchMessage struct {
	PitchID string `json:"pitch_id"`
}

type ListInterestsByAgentMessage struct {
	AgentID string `json:"agent_id"`
}

type InterestResponse struct {
	Interest *Interest `json:"interest"`
}

type ListInterestsResponse struct {
	Interests []*Interest `json:"interests"`
}

// Service implements the InterestService connect handlers
type Service struct {
	app InterestApp
}

// NewService creates a new interest service
func NewService(app InterestApp) *Service {
	return &Service{app: app}
}

// NewInterestServiceHandler builds an HTTP handler from the service implementation.
func NewInterestServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	handle := func(method string, h http.Handler) {
		mux.Handle(rpc.Procedure(InterestServiceName, method), h)
	}
	handle("ExpressInterest", connect.NewUnaryHandler(rpc.Procedure(InterestServiceName, "ExpressInterest"), svc.ExpressInterest, opts...))
	handle("UpdateStatus", connect.NewUnaryHandler(rpc.Procedure(InterestServiceName, "UpdateStatus"), svc.UpdateStatus, opts...))
	handle("Withdraw", connect.NewUnaryHandler(rpc.Procedure(InterestServiceName, "Withdraw"), svc.Withdraw, opts...))
	handle("DeleteInterest", connect.NewUnaryHandler(rpc.Procedure(InterestServiceName, "DeleteInterest"), svc.DeleteInterest, opts...))
	handle("GetInterest", connect.NewUnaryHandler(rpc.Procedure(InterestServiceName, "GetInterest"), svc.GetInterest, opts...))
	handle("ListInterestsByPitch", connect.NewUnaryHandler(rpc.Procedure(InterestServiceName, "ListInterestsByPitch"), svc.ListInterestsByPitch, opts...))
	handle("ListInterestsByAgent", connect.NewUnaryHandler(rpc.Procedure(InterestServiceName, "ListInterestsByAgent"), svc.ListInterestsByAgent, opts...))
	return "/" + InterestServiceName + "/", mux
}

// ExpressInterest records the calling agent's interest in a pitch
func (s *Service) ExpressInterest(ctx context.Context, req *connect.Request[ExpressInterestMessage]) (*connect.Response[InterestResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	pitchID, err := uuid.Parse(req.Msg.PitchID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}
	agentID, err := models.ParseAgentID(req.Msg.AgentID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	created, err := s.app.ExpressInterest(ctx, actor, CreateInterestRequest{
		PitchID: pitchID,
		AgentID: agentID,
		Message: req.Msg.Message,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&InterestResponse{Interest: interestToWire(created)}), nil
}

// UpdateStatus lets the pitch team move an interest
func (s *Service) UpdateStatus(ctx context.Context, req *connect.Request[UpdateStatusMessage]) (*connect.Response[InterestResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.Msg.ID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	updated, err := s.app.UpdateStatus(ctx, actor, id, models.InterestStatus(req.Msg.Status))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&InterestResponse{Interest: interestToWire(updated)}), nil
}

// Withdraw lets the agent back out
func (s *Service) Withdraw(ctx context.Context, req *connect.Request[InterestIDMessage]) (*connect.Response[InterestResponse], error) {
	return s.byID(ctx, req, s.app.Withdraw)
}

// DeleteInterest lets the agent remove the interest
func (s *Service) DeleteInterest(ctx context.Context, req *connect.Request[InterestIDMessage]) (*connect.Response[InterestResponse], error) {
	return s.byID(ctx, req, s.app.DeleteInterest)
}

// GetInterest returns an interest to one of its parties
func (s *Service) GetInterest(ctx context.Context, req *connect.Request[InterestIDMessage]) (*connect.Response[InterestResponse], error) {
	return s.byID(ctx, req, s.app.GetInterest)
}

func (s *Service) byID(
	ctx context.Context,
	req *connect.Request[InterestIDMessage],
	fn func(context.Context, models.UserID, uuid.UUID) (*models.Interest, error),
) (*connect.Response[InterestResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.Msg.ID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	out, err := fn(ctx, actor, id)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&InterestResponse{Interest: interestToWire(out)}), nil
}

// ListInterestsByPitch lists a pitch's interests for its team
func (s *Service) ListInterestsByPitch(ctx context.Context, req *connect.Request[ListInterestsByPitchMessage]) (*connect.Response[ListInterestsResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	pitchID, err := uuid.Parse(req.Msg.PitchID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	list, err := s.app.ListInterestsByPitch(ctx, actor, pitchID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListInterestsResponse{Interests: interestsToWire(list)}), nil
}

// ListInterestsByAgent lists an agent's interests for that agent
func (s *Service) ListInterestsByAgent(ctx context.Context, req *connect.Request[ListInterestsByAgentMessage]) (*connect.Response[ListInterestsResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	agentID, err := models.ParseAgentID(req.Msg.AgentID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	list, err := s.app.ListInterestsByAgent(ctx, actor, agentID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListInterestsResponse{Interests: interestsToWire(list)}), nil
}

func toConnectError(err error) error {
	return rpc.ToConnectError(err,
		rpc.Map(ErrInvalidRequest, connect.CodeInvalidArgument),
		rpc.Map(ErrForbidden, connect.CodePermissionDenied),
		rpc.Map(ErrInterestExists, connect.CodeAlreadyExists),
		rpc.Map(ErrInterestNotFound, connect.CodeNotFound),
		rpc.Map(ErrInvalidTransition, connect.CodeFailedPrecondition),
		rpc.Map(pitches.ErrPitchClosed, connect.CodeFailedPrecondition),
	)
}

func interestToWire(i *models.Interest) *Interest {
	return &Interest{
		ID:        i.ID.String(),
		PitchID:   i.PitchID.String(),
		AgentID:   i.AgentID.String(),
		Status:    string(i.Status),
		Message:   i.Message,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func interestsToWire(list []models.Interest) []*Interest {
	out := make([]*Interest, len(list))
	for i := range list {
		out[i] = interestToWire(&list[i])
	}
	return out
}
