package sqlutil

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
	"github.com/stretchr/testify/assert"
)

func TestNullUUIDRoundTrip(t *testing.T) {
	assert.False(t, ToNullUUID(nil).Valid)
	assert.Nil(t, FromNullUUID(uuid.NullUUID{}))

	id := uuid.New()
	got := FromNullUUID(ToNullUUID(&id))
	if assert.NotNil(t, got) {
		assert.Equal(t, id, *got)
	}
}

func TestFromSqlString(t *testing.T) {
	assert.Equal(t, "fallback", FromSqlString(sql.NullString{}, "fallback"))
	assert.Equal(t, "set", FromSqlString(sql.NullString{String: "set", Valid: true}, "fallback"))
}

func TestFromSqlTime(t *testing.T) {
	assert.Nil(t, FromSqlTime(sql.NullTime{}))
	now := time.Now()
	got := FromSqlTime(sql.NullTime{Time: now, Valid: true})
	if assert.NotNil(t, got) {
		assert.True(t, now.Equal(*got))
	}
}

func TestNullRawMessage(t *testing.T) {
	assert.False(t, ToNullRawMessage(nil).Valid)
	assert.Nil(t, FromNullRawMessage(pqtype.NullRawMessage{}))

	raw := json.RawMessage(`{"kind":"interest_created"}`)
	assert.JSONEq(t, string(raw), string(FromNullRawMessage(ToNullRawMessage(raw))))
}
