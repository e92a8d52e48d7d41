package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcdev12/transferdesk/go/internal/metrics"
	"github.com/mcdev12/transferdesk/go/internal/models"
	"github.com/mcdev12/transferdesk/go/internal/sqlutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const savepointName = "interest_notification"

// OutboxWriter queues a committed-with-the-transaction copy of a notification
// for the relay.
type OutboxWriter interface {
	Enqueue(ctx context.Context, tx sqlutil.DBTX, n *models.Notification) error
}

// Hook is called by the interest repository after each write, inside the
// write's transaction. Notification failures are rolled back to a savepoint
// and logged; they never fail the write.
type Hook struct {
	dispatcher *Dispatcher
	newStore   func(tx sqlutil.DBTX) Store
	outbox     OutboxWriter
}

// HookOption configures a Hook.
type HookOption func(*Hook)

// WithOutbox enqueues every dispatched notification for the relay.
func WithOutbox(w OutboxWriter) HookOption {
	return func(h *Hook) { h.outbox = w }
}

// WithStoreFactory replaces how a transaction is turned into a Store.
func WithStoreFactory(f func(tx sqlutil.DBTX) Store) HookOption {
	return func(h *Hook) { h.newStore = f }
}

// NewHook creates a Hook around the dispatcher
func NewHook(d *Dispatcher, opts ...HookOption) *Hook {
	h := &Hook{
		dispatcher: d,
		newStore:   NewTxStore,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AfterInterestWrite dispatches the notification for ev on tx.
func (h *Hook) AfterInterestWrite(ctx context.Context, tx sqlutil.DBTX, ev models.InterestEvent) {
	logger := eventLogger(ev)

	var sent *models.Notification
	err := sqlutil.Savepoint(ctx, tx, savepointName, func() error {
		n, err := h.dispatcher.Dispatch(ctx, h.newStore(tx), ev)
		if err != nil || n == nil {
			return err
		}
		if h.outbox != nil {
			if err := h.outbox.Enqueue(ctx, tx, n); err != nil {
				return fmt.Errorf("failed to enqueue notification: %w", err)
			}
		}
		sent = n
		return nil
	})

	if err != nil {
		logDropped(logger, err)
		return
	}
	if sent == nil {
		reason := metrics.SkipNoop
		if ev.Type == models.InterestDeleted {
			reason = metrics.SkipWithdrawn
		}
		metrics.NotificationsSkippedTotal.WithLabelValues(reason).Inc()
		logger.Debug().Str("reason", reason).Msg("no notification for interest event")
		return
	}

	delivery, _, _ := Route(ev)
	kind := string(delivery.Kind)
	metrics.NotificationsDispatchedTotal.WithLabelValues(kind).Inc()
	logger.Info().
		Str("notification_id", sent.ID.String()).
		Str("user_id", sent.UserID.String()).
		Str("kind", kind).
		Msg("notification dispatched")
}

func eventLogger(ev models.InterestEvent) zerolog.Logger {
	c := log.With().
		Str("event_type", string(ev.Type)).
		Str("actor", ev.Actor.String())
	if s := ev.Subject(); s != nil {
		c = c.Str("interest_id", s.ID.String()).
			Str("pitch_id", s.PitchID.String()).
			Str("agent_id", s.AgentID.String())
	}
	return c.Logger()
}

func logDropped(logger zerolog.Logger, err error) {
	var resErr *ResolutionError
	var selfErr *SelfAddressError
	switch {
	case errors.As(err, &resErr):
		metrics.NotificationsDroppedTotal.WithLabelValues(metrics.ReasonResolution).Inc()
		logger.Error().
			Err(err).
			Str("party", string(resErr.Party)).
			Str("party_id", resErr.PartyID).
			Str("reason", resErr.Reason).
			Msg("notification dropped: recipient resolution failed")
	case errors.As(err, &selfErr):
		metrics.NotificationsDroppedTotal.WithLabelValues(metrics.ReasonSelfAddress).Inc()
		logger.Error().
			Err(err).
			Str("user_id", selfErr.UserID.String()).
			Str("team_id", selfErr.TeamID.String()).
			Bool("addressee_is_actor", selfErr.Actor).
			Msg("notification dropped: self-addressed")
	case errors.Is(err, ErrInvalidEvent), errors.Is(err, ErrUnknownTransition):
		metrics.NotificationsDroppedTotal.WithLabelValues(metrics.ReasonInvalidEvent).Inc()
		logger.Warn().Err(err).Msg("notification dropped: unroutable event")
	default:
		metrics.NotificationsDroppedTotal.WithLabelValues(metrics.ReasonStore).Inc()
		logger.Error().Err(err).Msg("notification dropped: store failure")
	}
}
