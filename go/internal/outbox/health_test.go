package outbox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type fakeCounter struct{ n int64 }

func (c fakeCounter) CountPending(context.Context) (int64, error) { return c.n, nil }

type fakeConn bool

func (c fakeConn) IsConnected() bool { return bool(c) }

type running bool

func (r running) Running() bool { return bool(r) }

func TestHealthCheck(t *testing.T) {
	relay := NewRelay(newMemStore(), &flakyPublisher{}, nil, testConfig())

	t.Run("healthy", func(t *testing.T) {
		h := NewHealthChecker(relay, running(true), fakePinger{}, fakeCounter{n: 3}, fakeConn(true), nil, time.Minute)
		status := h.Check(context.Background())
		assert.True(t, status.Healthy)
		assert.Equal(t, int64(3), status.PendingEvents)
		assert.Empty(t, status.Errors)
	})

	t.Run("log publisher has no NATS connection", func(t *testing.T) {
		h := NewHealthChecker(relay, running(true), fakePinger{}, fakeCounter{}, nil, nil, time.Minute)
		status := h.Check(context.Background())
		assert.True(t, status.Healthy)
		assert.False(t, status.NATSConnected)
	})

	t.Run("database down", func(t *testing.T) {
		h := NewHealthChecker(relay, running(true), fakePinger{err: errors.New("connection refused")}, fakeCounter{n: 3}, nil, nil, time.Minute)
		status := h.Check(context.Background())
		assert.False(t, status.Healthy)
		assert.False(t, status.DatabaseConnected)
		assert.Zero(t, status.PendingEvents)
	})

	t.Run("listener stopped and NATS down", func(t *testing.T) {
		h := NewHealthChecker(relay, running(false), fakePinger{}, fakeCounter{}, fakeConn(false), nil, time.Minute)
		status := h.Check(context.Background())
		assert.False(t, status.Healthy)
		assert.Len(t, status.Errors, 2)
	})
}

func TestHealthCheckStaleRelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ev := testEvent()
	relay := NewRelay(newMemStore(ev), &flakyPublisher{}, clock, testConfig())
	require.NoError(t, relay.HandleNotification(context.Background(), ev.ID.String()))

	h := NewHealthChecker(relay, running(true), fakePinger{}, fakeCounter{n: 5}, nil, clock, time.Minute)
	assert.True(t, h.Check(context.Background()).Healthy)

	clock.Advance(2 * time.Minute)
	assert.False(t, h.Check(context.Background()).Healthy)
}

func TestHealthHTTP(t *testing.T) {
	relay := NewRelay(newMemStore(), &flakyPublisher{}, nil, testConfig())
	h := NewHealthChecker(relay, running(false), fakePinger{}, fakeCounter{}, nil, nil, time.Minute)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body HealthStatus
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.ListenerActive)
	assert.Contains(t, body.Errors, "listener not active")
}
