package auth

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// call runs the interceptor once and reports the actor the handler saw.
func call(t *testing.T, interceptor connect.UnaryInterceptorFunc, headers map[string]string) (models.UserID, bool, error) {
	t.Helper()
	req := connect.NewRequest(&struct{}{})
	for k, v := range headers {
		req.Header().Set(k, v)
	}

	var (
		seen   models.UserID
		hasOne bool
	)
	next := func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
		seen, hasOne = ActorFromContext(ctx)
		return connect.NewResponse(&struct{}{}), nil
	}
	_, err := interceptor(next)(context.Background(), req)
	return seen, hasOne, err
}

func TestActorHeaderRejectedWithoutOptIn(t *testing.T) {
	user := models.UserID(uuid.New())

	_, ok, err := call(t, NewInterceptor(NewVerifier("", "")), map[string]string{ActorHeader: user.String()})
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	assert.ErrorIs(t, err, ErrUntrustedActorHeader)
	assert.False(t, ok)

	_, ok, err = call(t, NewInterceptor(NewVerifier("", "")), nil)
	require.NoError(t, err)
	assert.False(t, ok, "no credentials stays anonymous")
}

func TestActorHeaderTrustedInDevMode(t *testing.T) {
	user := models.UserID(uuid.New())

	got, ok, err := call(t, NewInterceptor(NewVerifier("", ""), TrustActorHeader()), map[string]string{ActorHeader: user.String()})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestBearerTokenWinsOverActorHeader(t *testing.T) {
	v := NewVerifier("s3cret", "")
	user := models.UserID(uuid.New())
	token, err := v.Sign(user, time.Minute)
	require.NoError(t, err)

	got, ok, err := call(t, NewInterceptor(v, TrustActorHeader()), map[string]string{
		"Authorization": "Bearer " + token,
		ActorHeader:     uuid.NewString(),
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, got)

	_, _, err = call(t, NewInterceptor(v), map[string]string{"Authorization": "Bearer junk"})
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}
