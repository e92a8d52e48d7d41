package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/auth"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/rpc"
)

// NotificationServiceName is the fully-qualified name of the inbox service.
const NotificationServiceName = "transfers.notifications.v1.NotificationService"

// InboxApp defines what the service layer needs from the notifications application
type InboxApp interface {
	ListNotifications(ctx context.Context, actor models.UserID, unreadOnly bool, limit int32) ([]models.Notification, error)
	UnreadCount(ctx context.Context, actor models.UserID) (int64, error)
	MarkRead(ctx context.Context, actor models.UserID, id uuid.UUID) (*models.Notification, error)
	MarkAllRead(ctx context.Context, actor models.UserID) (int64, error)
}

type Notification struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	Category    string          `json:"category"`
	ActionURL   string          `json:"action_url"`
	ActionLabel string          `json:"action_label"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	Read        bool            `json:"read"`
	ReadAt      *time.Time      `json:"read_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ListNotificationsMessage struct {
	UnreadOnly bool  `json:"unread_only"`
	Limit      int32 `json:"limit"`
}

type ListNotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
}

type UnreadCountMessage struct{}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkReadMessage struct {
	ID string `json:"id"`
}

type MarkReadResponse struct {
	Notification *Notification `json:"notification"`
}

type MarkAllReadMessage struct{}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// Service implements the NotificationService connect handlers
type Service struct {
	app InboxApp
}

// NewService creates a new notifications service
func NewService(app InboxApp) *Service {
	return &Service{app: app}
}

// NewNotificationServiceHandler builds an HTTP handler from the service implementation.
func NewNotificationServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(rpc.Procedure(NotificationServiceName, "ListNotifications"),
		connect.NewUnaryHandler(rpc.Procedure(NotificationServiceName, "ListNotifications"), svc.ListNotifications, opts...))
	mux.Handle(rpc.Procedure(NotificationServiceName, "UnreadCount"),
		connect.NewUnaryHandler(rpc.Procedure(NotificationServiceName, "UnreadCount"), svc.UnreadCount, opts...))
	mux.Handle(rpc.Procedure(NotificationServiceName, "MarkRead"),
		connect.NewUnaryHandler(rpc.Procedure(NotificationServiceName, "MarkRead"), svc.MarkRead, opts...))
	mux.Handle(rpc.Procedure(NotificationServiceName, "MarkAllRead"),
		connect.NewUnaryHandler(rpc.Procedure(NotificationServiceName, "MarkAllRead"), svc.MarkAllRead, opts...))
	return "/" + NotificationServiceName + "/", mux
}

func (s *Service) ListNotifications(ctx context.Context, req *connect.Request[ListNotificationsMessage]) (*connect.Response[ListNotificationsResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.app.ListNotifications(ctx, actor, req.Msg.UnreadOnly, req.Msg.Limit)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*Notification, len(list))
	for i := range list {
		out[i] = notificationToWire(&list[i])
	}
	return connect.NewResponse(&ListNotificationsResponse{Notifications: out}), nil
}

func (s *Service) UnreadCount(ctx context.Context, _ *connect.Request[UnreadCountMessage]) (*connect.Response[UnreadCountResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.app.UnreadCount(ctx, actor)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&UnreadCountResponse{Count: n}), nil
}

func (s *Service) MarkRead(ctx context.Context, req *connect.Request[MarkReadMessage]) (*connect.Response[MarkReadResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.Msg.ID)
	if err != nil {
		return nil, rpc.InvalidArgument(err)
	}

	n, err := s.app.MarkRead(ctx, actor, id)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&MarkReadResponse{Notification: notificationToWire(n)}), nil
}

func (s *Service) MarkAllRead(ctx context.Context, _ *connect.Request[MarkAllReadMessage]) (*connect.Response[MarkAllReadResponse], error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.app.MarkAllRead(ctx, actor)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&MarkAllReadResponse{Updated: n}), nil
}

func toConnectError(err error) error {
	return rpc.ToConnectError(err, rpc.Map(ErrNotificationNotFound, connect.CodeNotFound))
}

func notificationToWire(n *models.Notification) *Notification {
	return &Notification{
		ID:          n.ID.String(),
		Title:       n.Title,
		Body:        n.Body,
		Category:    n.Category,
		ActionURL:   n.ActionURL,
		ActionLabel: n.ActionLabel,
		Metadata:    n.Metadata,
		Read:        n.Read,
		ReadAt:      n.ReadAt,
		CreatedAt:   n.CreatedAt,
	}
}
