package auth

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/rs/zerolog/log"
)

// ActorHeader names the caller directly. It is only honoured by an
// interceptor built with TrustActorHeader.
const ActorHeader = "X-Actor-User-Id"

// ErrUntrustedActorHeader is returned when a request names its own actor
// but the server does not trust the header.
var ErrUntrustedActorHeader = errors.New("actor header is not accepted by this server")

type interceptorConfig struct {
	trustHeader bool
}

// InterceptorOption configures NewInterceptor.
type InterceptorOption func(*interceptorConfig)

// TrustActorHeader accepts ActorHeader as the caller when token verification
// is disabled. Local development only.
func TrustActorHeader() InterceptorOption {
	return func(c *interceptorConfig) { c.trustHeader = true }
}

// NewInterceptor attaches the caller to the context. Requests without
// credentials pass through anonymously; handlers decide whether they need one.
func NewInterceptor(v *Verifier, opts ...InterceptorOption) connect.UnaryInterceptorFunc {
	var cfg interceptorConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			id, ok, err := cfg.actorFromHeaders(v, req)
			if err != nil {
				log.Debug().Err(err).Str("procedure", req.Spec().Procedure).Msg("rejected credentials")
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			if ok {
				ctx = WithActor(ctx, id)
			}
			return next(ctx, req)
		}
	}
}

func (c interceptorConfig) actorFromHeaders(v *Verifier, req connect.AnyRequest) (models.UserID, bool, error) {
	if v.Enabled() {
		header := req.Header().Get("Authorization")
		if header == "" {
			return models.UserID{}, false, nil
		}
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return models.UserID{}, false, ErrNoActor
		}
		id, err := v.Verify(strings.TrimSpace(raw))
		if err != nil {
			return models.UserID{}, false, err
		}
		return id, true, nil
	}

	header := req.Header().Get(ActorHeader)
	if header == "" {
		return models.UserID{}, false, nil
	}
	if !c.trustHeader {
		return models.UserID{}, false, ErrUntrustedActorHeader
	}
	id, err := models.ParseUserID(header)
	if err != nil {
		return models.UserID{}, false, err
	}
	return id, true, nil
}
