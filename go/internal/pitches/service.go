package pitches

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/auth"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/rpc"
)

// PitchServiceName is the fully-qualified name of the pitch service.
const PitchServiceName = "transfers.pitches.v1.PitchService"

// PitchesApp defines what the service layer needs from the pitches application
type PitchesApp interface {
	CreatePitch(ctx context.Context, actor models.UserID, req CreatePitchRequest) (*models.Pitch, error)
	GetPitch(ctx context.Context, id uuid.UUID) (*models.Pitch, error)
	ListPitchesByTeam(ctx context.Context, teamID models.TeamID) ([]models.Pitch, error)
	ClosePitch(ctx context.Context, actor models.UserID, id uuid.UUID) (*models.Pitch, error)
}

type Pitch struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	PlayerID  string    `json:"player_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePitchMessage struct {
	TeamID   string `json:"team_id"`
	PlayerID string `json:"player_id"`
	Title    string `json:"title"`
}

type PitchIDMessage struct {
	ID string `json:"id"`
}

type ListPitchesByTeamMessage struct {
	TeamID string `json:"team_id"`
}

type PitchResponse struct {
	Pitch *Pitch `json:"pitch"`
}

type ListPitchesResponse struct {
	Pitches []*Pitch `json:"pitches"`
}

// Service implements the PitchService connect handlers
type Service struct {
	app PitchesApp
}

// NewService creates a new pitches service
func NewService(app PitchesApp) *Service {
	return &Service{app: app}
}

// NewPitchServiceHandler builds an HTTP handler from the service implementation.
func NewPitchServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(rpc.Procedure(PitchServiceName, "CreatePitch"),
		connect.NewUnaryHandler(rpc.Procedure(PitchServiceName, "CreatePitch"), svc.CreatePitch, opts...))
	mux.Handle(rpc.Procedure(PitchServiceName, "GetPitch"),
		connect.NewUnaryHandler(rpc.Procedure(PitchServiceName, "GetPitch"), svc.GetPitch, opts...))
	mux.Handle(rpc.Procedure(PitchServiceName, "ListPitchesByTeam"),
		connect.NewUnaryHandler(rpc.Procedure(PitchServiceName, "ListPitchesByTeam"), svc.ListPitchesByTeam, opts...))
	mux.Handle(rpc.Procedure(PitchServiceName, "ClosePitch"),
		connect.NewUnaryHandler(rpc.Procedure(PitchServiceName, "ClosePitch"), svc.ClosePitch, opts...))
	return "/" + PitchServiceName + "/", mux
}

// CreatePitch publishes a pitch
func (s *Service) CreatePitch(ctx context.Context, req *connect.Request[CreatePitchMessage]) (*connect.Response[PitchResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	teamID, err := models.ParseTeamID(req.Msg.TeamID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}
	playerID, err := uuid.Parse(req.Msg.PlayerID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	pitch, err := s.app.CreatePitch(ctx, actor, CreatePitchRequest{
		TeamID:   teamID,
		PlayerID: playerID,
		Title:    req.Msg.Title,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&PitchResponse{Pitch: pitchToWire(pitch)}), nil
}

// GetPitch retrieves a pitch by ID
func (s *Service) GetPitch(ctx context.Context, req *connect.Request[PitchIDMessage]) (*connect.Response[PitchResponse], error) {
	id, err := uuid.Parse(req.Msg.ID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	pitch, err := s.app.GetPitch(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&PitchResponse{Pitch: pitchToWire(pitch)}), nil
}

// ListPitchesByTeam lists a team's pitches
func (s *Service) ListPitchesByTeam(ctx context.Context, req *connect.Request[ListPitchesByTeamMessage]) (*connect.Response[ListPitchesResponse], error) {
	teamID, err := models.ParseTeamID(req.Msg.TeamID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	pitches, err := s.app.ListPitchesByTeam(ctx, teamID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*Pitch, len(pitches))
	for i := range pitches {
		out[i] = pitchToWire(&pitches[i])
	}
	return connect.NewResponse(&ListPitchesResponse{Pitches: out}), nil
}

// ClosePitch closes a pitch to new interest
func (s *Service) ClosePitch(ctx context.Context, req *connect.Request[PitchIDMessage]) (*connect.Response[PitchResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.Msg.ID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	pitch, err := s.app.ClosePitch(ctx, actor, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&PitchResponse{Pitch: pitchToWire(pitch)}), nil
}

func toConnectError(err error) error {
	return rpc.ToConnectError(err,
		rpc.Map(ErrInvalidRequest, connect.CodeInvalidArgument),
		rpc.Map(ErrForbidden, connect.CodePermissionDenied),
		rpc.Map(ErrPitchClosed, connect.CodeFailedPrecondition),
	)
}

func pitchToWire(p *models.Pitch) *Pitch {
	return &Pitch{
		ID:        p.ID.String(),
		TeamID:    p.TeamID.String(),
		PlayerID:  p.PlayerID.String(),
		Title:     p.Title,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
