package outbox

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/metrics"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectIsPerUser(t *testing.T) {
	ev := testEvent()
	assert.Equal(t, "notifications.user."+ev.UserID.String(), Subject(DefaultJetStreamConfig().SubjectPrefix, ev))
}

func TestEncodeEnvelopeKeepsPayloadAsJSON(t *testing.T) {
	ev := testEvent()
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	data, err := encodeEnvelope(ev, now)
	require.NoError(t, err)

	var got struct {
		EventID   string         `json:"event_id"`
		EventType string         `json:"event_type"`
		UserID    string         `json:"user_id"`
		Payload   map[string]any `json:"payload"`
	}
	require.NoError(t, sonic.Unmarshal(data, &got))
	assert.Equal(t, ev.ID.String(), got.EventID)
	assert.Equal(t, EventNotificationCreated, got.EventType)
	assert.Equal(t, ev.UserID.String(), got.UserID)
	assert.Equal(t, "New interest in Winger wanted", got.Payload["title"])
}

func TestMetricPublisherCountsResults(t *testing.T) {
	before := testutil.ToFloat64(metrics.OutboxPublishedTotal.WithLabelValues(metrics.ResultFailure))

	p := NewMetricPublisher(&flakyPublisher{failures: 1}, nil)
	assert.Error(t, p.Publish(context.Background(), testEvent()))
	assert.NoError(t, p.Publish(context.Background(), testEvent()))

	after := testutil.ToFloat64(metrics.OutboxPublishedTotal.WithLabelValues(metrics.ResultFailure))
	assert.Equal(t, before+1, after)
}

func TestLogPublisherNeverFails(t *testing.T) {
	assert.NoError(t, NewLogPublisher("notifications.user").Publish(context.Background(), testEvent()))
}

// execRecorder is a DBTX that records Exec calls and supports nothing else.
type execRecorder struct {
	queries []string
	args    [][]interface{}
}

func (r *execRecorder) ExecContext(_ context.Context, q string, args ...interface{}) (sql.Result, error) {
	r.queries = append(r.queries, q)
	r.args = append(r.args, args)
	return driver.RowsAffected(1), nil
}

func (r *execRecorder) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	panic("not used")
}

func (r *execRecorder) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	panic("not used")
}

func (r *execRecorder) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	panic("not used")
}

func TestWriterEnqueuesOnCallerTx(t *testing.T) {
	tx := &execRecorder{}
	n := &models.Notification{
		ID:     uuid.New(),
		UserID: models.UserID(uuid.MustParse("11111111-2222-3333-4444-555555555555")),
		Title:  "Interest withdrawn",
	}

	require.NoError(t, NewWriter().Enqueue(context.Background(), tx, n))

	require.Len(t, tx.queries, 1)
	assert.Contains(t, tx.queries[0], "INSERT INTO notification_outbox")
	args := tx.args[0]
	require.Len(t, args, 5)
	assert.Equal(t, n.ID, args[1])
	assert.Equal(t, uuid.UUID(n.UserID), args[2])
	assert.Equal(t, EventNotificationCreated, args[3])
	payload := string(args[4].(json.RawMessage))
	assert.Contains(t, payload, `"title":"Interest withdrawn"`)
	assert.Contains(t, payload, `"user_id":"11111111-2222-3333-4444-555555555555"`)
}
