// Package auth resolves the calling user and carries it through the request context.
package auth

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/mcdev12/transferdesk/go/internal/models"
)

// ErrNoActor is returned when a procedure that needs a caller has none.
var ErrNoActor = errors.New("request has no authenticated user")

type actorKey struct{}

// WithActor returns a context carrying the acting user.
func WithActor(ctx context.Context, id models.UserID) context.Context {
	return context.WithValue(ctx, actorKey{}, id)
}

// ActorFromContext returns the acting user, if any.
func ActorFromContext(ctx context.Context) (models.UserID, bool) {
	id, ok := ctx.Value(actorKey{}).(models.UserID)
	if !ok || id.IsZero() {
		return models.UserID{}, false
	}
	return id, true
}

// RequireActor is ActorFromContext for handlers, failing with CodeUnauthenticated.
func RequireActor(ctx context.Context) (models.UserID, error) {
	id, ok := ActorFromContext(ctx)
	if !ok {
		return models.UserID{}, connect.NewError(connect.CodeUnauthenticated, ErrNoActor)
	}
	return id, nil
}
