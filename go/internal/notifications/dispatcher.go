package notifications

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/transferdesk/go/internal/models"
)

// Store is what a single dispatch needs: addressee lookups and one append.
type Store interface {
	Directory
	InsertNotification(ctx context.Context, n models.Notification) (*models.Notification, error)
}

// Dispatcher turns an interest event into at most one notification.
type Dispatcher struct {
	resolver Resolver
	composer *Composer
	clock    clockwork.Clock
}

// NewDispatcher creates a dispatcher. A nil clock uses the real clock.
func NewDispatcher(composer *Composer, clock clockwork.Clock) *Dispatcher {
	if composer == nil {
		composer = NewComposer(DefaultPlaceholders())
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Dispatcher{composer: composer, clock: clock}
}

// Dispatch routes, resolves and composes ev, then inserts the notification.
// It returns (nil, nil) when the event routes nowhere.
func (d *Dispatcher) Dispatch(ctx context.Context, store Store, ev models.InterestEvent) (*models.Notification, error) {
	delivery, ok, err := Route(ev)
	if err != nil || !ok {
		return nil, err
	}

	subject := ev.Subject()
	res, err := d.resolver.Resolve(ctx, store, subject.PitchID, subject.AgentID)
	if err != nil {
		return nil, err
	}

	to := res.Team.UserID
	if delivery.To == SideAgent {
		to = res.Agent.UserID
	}
	if to == ev.Actor {
		return nil, &SelfAddressError{UserID: to, TeamID: res.TeamID, AgentID: res.AgentID, Actor: true}
	}

	n, err := d.composer.Compose(delivery, ev, res)
	if err != nil {
		return nil, err
	}
	n.ID = uuid.New()
	n.UserID = to
	n.CreatedAt = d.clock.Now().UTC()

	saved, err := store.InsertNotification(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}
	return saved, nil
}
