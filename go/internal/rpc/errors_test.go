package rpc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"mapped sentinel", fmt.Errorf("wrapped: %w", errSentinel), connect.CodePermissionDenied},
		{"no rows", fmt.Errorf("failed to get: %w", sql.ErrNoRows), connect.CodeNotFound},
		{"canceled", context.Canceled, connect.CodeCanceled},
		{"unknown", errors.New("boom"), connect.CodeInternal},
		{"already connect", connect.NewError(connect.CodeUnauthenticated, errors.New("x")), connect.CodeUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToConnectError(tt.err, Map(errSentinel, connect.CodePermissionDenied))
			assert.Equal(t, tt.want, connect.CodeOf(got))
		})
	}

	assert.NoError(t, ToConnectError(nil))
}
