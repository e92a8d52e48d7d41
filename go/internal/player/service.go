package player

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

const PlayerServiceName = "transfers.player.v1.PlayerService"

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
}

type Player struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Position    string    `json:"position"`
	Nationality string    `json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreatePlayerMessage struct {
	FullName    string `json:"full_name"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
}

type GetPlayerMessage struct {
	ID string `json:"id"`
}

type PlayerResponse struct {
	Player *Player `json:"player"`
}

// Service implements the PlayerService connect handlers
type Service struct {
	app PlayerApp
}

// NewService creates a new player service
func NewService(app PlayerApp) *Service {
	return &Service{app: app}
}

// NewPlayerServiceHandler builds an HTTP handler from the service implementation.
func NewPlayerServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(rpc.Procedure(PlayerServiceName, "CreatePlayer"),
		connect.NewUnaryHandler(rpc.Procedure(PlayerServiceName, "CreatePlayer"), svc.CreatePlayer, opts...))
	mux.Handle(rpc.Procedure(PlayerServiceName, "GetPlayer"),
		connect.NewUnaryHandler(rpc.Procedure(PlayerServiceName, "GetPlayer"), svc.GetPlayer, opts...))
	return "/" + PlayerServiceName + "/", mux
}

// CreatePlayer creates a new player. Any authenticated caller may add to the catalog.
func (s *Service) CreatePlayer(ctx context.Context, req *connect.Request[CreatePlayerMessage]) (*connect.Response[PlayerResponse], error) {
	if _, err := auth.RequireActor(ctx); err != nil {
		return nil, err
	}

	player, err := s.app.CreatePlayer(ctx, CreatePlayerRequest{
		FullName:    req.Msg.FullName,
		Position:    req.Msg.Position,
		Nationality: req.Msg.Nationality,
	})
	if err != nil {
		return nil, rpc.ToConnectError(err, rpc.Map(ErrInvalidRequest, connect.CodeInvalidArgument))
	}

	return connect.NewResponse(&PlayerResponse{Player: playerToWire(player)}), nil
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, req *connect.Request[GetPlayerMessage]) (*connect.Response[PlayerResponse], error) {
	id, err := uuid.Parse(req.Msg.ID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	player, err := s.app.GetPlayer(ctx, id)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}

	return connect.NewResponse(&PlayerResponse{Player: playerToWire(player)}), nil
}

func playerToWire(p *models.Player) *Player {
	return &Player{
		ID:          p.ID.String(),
		FullName:    p.FullName,
		Position:    p.Position,
		Nationality: p.Nationality,
		CreatedAt:   p.CreatedAt,
	}
}
