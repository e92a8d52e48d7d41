package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/sqlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOutbox struct {
	queued []*models.Notification
	err    error
}

func (m *memOutbox) Enqueue(_ context.Context, _ sqlutil.DBTX, n *models.Notification) error {
	if m.err != nil {
		return m.err
	}
	m.queued = append(m.queued, n)
	return nil
}

func newTestHook(w *world, opts ...HookOption) *Hook {
	d := NewDispatcher(nil, clockwork.NewFakeClockAt(frozen))
	opts = append([]HookOption{WithStoreFactory(func(sqlutil.DBTX) Store { return w })}, opts...)
	return NewHook(d, opts...)
}

func TestHookReleasesSavepointOnSuccess(t *testing.T) {
	w, c := newWorld()
	tx := &recordingTx{}
	outbox := &memOutbox{}

	newTestHook(w, WithOutbox(outbox)).AfterInterestWrite(context.Background(), tx, created(c))

	assert.Equal(t, []string{
		"SAVEPOINT " + savepointName,
		"RELEASE SAVEPOINT " + savepointName,
	}, tx.execs)
	require.Len(t, w.notifications, 1)
	require.Len(t, outbox.queued, 1)
	assert.Equal(t, w.notifications[0].ID, outbox.queued[0].ID)
}

// With the agent's profile gone the hook swallows the resolution
// error, so the caller's write goes on to commit.
func TestHookRollsBackToSavepointOnResolutionError(t *testing.T) {
	w, c := newWorld()
	w.orphanAgent(c.agentID)
	tx := &recordingTx{}

	newTestHook(w).AfterInterestWrite(context.Background(), tx,
		changed(c, models.InterestStatusInterested, models.InterestStatusNegotiating, c.teamUser))

	assert.Equal(t, []string{
		"SAVEPOINT " + savepointName,
		"ROLLBACK TO SAVEPOINT " + savepointName,
	}, tx.execs)
	assert.Empty(t, w.notifications)
}

func TestHookRollsBackWhenOutboxFails(t *testing.T) {
	w, c := newWorld()
	tx := &recordingTx{}

	newTestHook(w, WithOutbox(&memOutbox{err: errors.New("outbox down")})).
		AfterInterestWrite(context.Background(), tx, created(c))

	assert.Equal(t, "ROLLBACK TO SAVEPOINT "+savepointName, tx.execs[len(tx.execs)-1])
}

func TestHookNoopReleasesWithoutInsert(t *testing.T) {
	w, c := newWorld()
	tx := &recordingTx{}
	outbox := &memOutbox{}

	newTestHook(w, WithOutbox(outbox)).AfterInterestWrite(context.Background(), tx,
		changed(c, models.InterestStatusRequested, models.InterestStatusRequested, c.teamUser))

	assert.Equal(t, "RELEASE SAVEPOINT "+savepointName, tx.execs[len(tx.execs)-1])
	assert.Empty(t, w.notifications)
	assert.Empty(t, outbox.queued)
}

func TestHookRollsBackWhenReleaseFails(t *testing.T) {
	w, c := newWorld()
	tx := &recordingTx{failSQL: "RELEASE SAVEPOINT " + savepointName}

	newTestHook(w).AfterInterestWrite(context.Background(), tx, created(c))

	assert.Equal(t, []string{
		"SAVEPOINT " + savepointName,
		"RELEASE SAVEPOINT " + savepointName,
		"ROLLBACK TO SAVEPOINT " + savepointName,
	}, tx.execs)
}

func TestHookSurvivesSavepointFailure(t *testing.T) {
	w, c := newWorld()
	tx := &recordingTx{failSQL: "SAVEPOINT " + savepointName}

	assert.NotPanics(t, func() {
		newTestHook(w).AfterInterestWrite(context.Background(), tx, created(c))
	})
	assert.Empty(t, w.notifications)
}
