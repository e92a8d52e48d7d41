package profiles

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/mcdev12/transferdesk/go/internal/auth"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/rpc"
)

// ProfileServiceName is the fully-qualified name of the profile service.
const ProfileServiceName = "transfers.profiles.v1.ProfileService"

// ProfilesApp defines what the service layer needs from the profiles application
type ProfilesApp interface {
	CreateProfile(ctx context.Context, actor models.UserID, req CreateProfileRequest) (*models.Profile, error)
	GetProfile(ctx context.Context, id models.ProfileID) (*models.Profile, error)
	GetProfileByUserID(ctx context.Context, userID models.UserID) (*models.Profile, error)
	DeleteProfile(ctx context.Context, actor models.UserID, id models.ProfileID) error
}

// Profile is the wire representation of a profile
type Profile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProfileMessage struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

type GetProfileMessage struct {
	ID string `json:"id"`
}

type GetProfileByUserIDMessage struct {
	UserID string `json:"user_id"`
}

type DeleteProfileMessage struct {
	ID string `json:"id"`
}

type ProfileResponse struct {
	Profile *Profile `json:"profile"`
}

type DeleteProfileResponse struct {
	Success bool `json:"success"`
}

// Service implements the ProfileService connect handlers
type Service struct {
	app ProfilesApp
}

// NewService creates a new profiles service
func NewService(app ProfilesApp) *Service {
	return &Service{
		app: app,
	}
}

// NewProfileServiceHandler builds an HTTP handler from the service implementation.
func NewProfileServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	for method, h := range map[string]http.Handler{
		"CreateProfile":      connect.NewUnaryHandler(rpc.Procedure(ProfileServiceName, "CreateProfile"), svc.CreateProfile, opts...),
		"GetProfile":         connect.NewUnaryHandler(rpc.Procedure(ProfileServiceName, "GetProfile"), svc.GetProfile, opts...),
		"GetProfileByUserID": connect.NewUnaryHandler(rpc.Procedure(ProfileServiceName, "GetProfileByUserID"), svc.GetProfileByUserID, opts...),
		"DeleteProfile":      connect.NewUnaryHandler(rpc.Procedure(ProfileServiceName, "DeleteProfile"), svc.DeleteProfile, opts...),
	} {
		mux.Handle(rpc.Procedure(ProfileServiceName, method), h)
	}
	return "/" + ProfileServiceName + "/", mux
}

// CreateProfile creates a profile for the authenticated caller
func (s *Service) CreateProfile(ctx context.Context, req *connect.Request[CreateProfileMessage]) (*connect.Response[ProfileResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.app.CreateProfile(ctx, actor, CreateProfileRequest{
		UserID:      actor,
		DisplayName: req.Msg.DisplayName,
		Email:       req.Msg.Email,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ProfileResponse{Profile: profileToWire(profile)}), nil
}

// GetProfile retrieves a profile by ID
func (s *Service) GetProfile(ctx context.Context, req *connect.Request[GetProfileMessage]) (*connect.Response[ProfileResponse], error) {
	id, err := models.ParseProfileID(req.Msg.ID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	profile, err := s.app.GetProfile(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ProfileResponse{Profile: profileToWire(profile)}), nil
}

// GetProfileByUserID retrieves a profile by user ID
func (s *Service) GetProfileByUserID(ctx context.Context, req *connect.Request[GetProfileByUserIDMessage]) (*connect.Response[ProfileResponse], error) {
	userID, err := models.ParseUserID(req.Msg.UserID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	profile, err := s.app.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ProfileResponse{Profile: profileToWire(profile)}), nil
}

// DeleteProfile deletes the caller's profile
func (s *Service) DeleteProfile(ctx context.Context, req *connect.Request[DeleteProfileMessage]) (*connect.Response[DeleteProfileResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := models.ParseProfileID(req.Msg.ID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	if err := s.app.DeleteProfile(ctx, actor, id); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&DeleteProfileResponse{Success: true}), nil
}

func toConnectError(err error) error {
	return rpc.ToConnectError(err,
		rpc.Map(ErrInvalidRequest, connect.CodeInvalidArgument),
		rpc.Map(ErrProfileExists, connect.CodeAlreadyExists),
		rpc.Map(ErrForbidden, connect.CodePermissionDenied),
	)
}

func profileToWire(p *models.Profile) *Profile {
	return &Profile{
		ID:          p.ID.String(),
		UserID:      p.UserID.String(),
		DisplayName: p.DisplayName,
		Email:       p.Email,
		CreatedAt:   p.CreatedAt,
	}
}
