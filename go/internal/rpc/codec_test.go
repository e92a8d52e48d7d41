package rpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID        string    `json:"id"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

func TestJSONCodecUsesJSONName(t *testing.T) {
	assert.Equal(t, "json", JSONCodec{}.Name())
}

func TestJSONCodecUnmarshalEmptyBodyIsNoop(t *testing.T) {
	var s sample
	require.NoError(t, JSONCodec{}.Unmarshal(nil, &s))
	assert.Equal(t, sample{}, s)
}

func TestJSONCodecDecodesSnakeCaseFields(t *testing.T) {
	var s sample
	require.NoError(t, JSONCodec{}.Unmarshal([]byte(`{"id":"abc","count":3,"created_at":"2026-01-02T03:04:05Z"}`), &s))
	assert.Equal(t, "abc", s.ID)
	assert.Equal(t, 3, s.Count)
	assert.True(t, s.CreatedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestProcedure(t *testing.T) {
	assert.Equal(t, "/transfers.interest.v1.InterestService/Withdraw",
		Procedure("transfers.interest.v1.InterestService", "Withdraw"))
}
