package notifications

import (
	"fmt"

	"github.com/mcdev12/transferdesk/go/internal/models"
)

// Side is which party a notification goes to.
type Side string

const (
	SideTeam  Side = "team"
	SideAgent Side = "agent"
)

// Kind identifies the notification template.
type Kind string

const (
	KindInterestCreated    Kind = "interest_created"
	KindNegotiationStarted Kind = "negotiation_started"
	KindInfoRequested      Kind = "info_requested"
	KindInterestRejected   Kind = "interest_rejected"
	KindInterestWithdrawn  Kind = "interest_withdrawn"
	KindInterestCancelled  Kind = "interest_cancelled"
)

// Delivery is the outcome of routing one event.
type Delivery struct {
	Kind Kind
	To   Side
}

// Route applies the transition table to an event. The bool is false when the
// event deliberately produces no notification.
//
//	created                                       -> team   interest_created
//	interested|requested|negotiating -> negotiating -> agent  negotiation_started
//	* -> requested                                -> agent  info_requested
//	* -> rejected                                 -> agent  interest_rejected
//	* -> withdrawn                                -> team   interest_withdrawn
//	deleted                                       -> team   interest_cancelled
func Route(ev models.InterestEvent) (Delivery, bool, error) {
	switch ev.Type {
	case models.InterestCreated:
		if ev.After == nil {
			return Delivery{}, false, fmt.Errorf("%w: created event without after-image", ErrInvalidEvent)
		}
		if ev.After.Status != models.InterestStatusInterested {
			return Delivery{}, false, fmt.Errorf("%w: created as %q", ErrUnknownTransition, ev.After.Status)
		}
		return Delivery{Kind: KindInterestCreated, To: SideTeam}, true, nil

	case models.InterestStatusChanged:
		if ev.Before == nil || ev.After == nil {
			return Delivery{}, false, fmt.Errorf("%w: status change needs both images", ErrInvalidEvent)
		}
		from, to := ev.Before.Status, ev.After.Status
		if from == to {
			return Delivery{}, false, nil
		}
		if from.Terminal() {
			return Delivery{}, false, fmt.Errorf("%w: %s -> %s", ErrUnknownTransition, from, to)
		}
		switch to {
		case models.InterestStatusNegotiating:
			return Delivery{Kind: KindNegotiationStarted, To: SideAgent}, true, nil
		case models.InterestStatusRequested:
			return Delivery{Kind: KindInfoRequested, To: SideAgent}, true, nil
		case models.InterestStatusRejected:
			return Delivery{Kind: KindInterestRejected, To: SideAgent}, true, nil
		case models.InterestStatusWithdrawn:
			return Delivery{Kind: KindInterestWithdrawn, To: SideTeam}, true, nil
		}
		return Delivery{}, false, fmt.Errorf("%w: %s -> %s", ErrUnknownTransition, from, to)

	case models.InterestDeleted:
		if ev.Before == nil {
			return Delivery{}, false, fmt.Errorf("%w: deleted event without before-image", ErrInvalidEvent)
		}
		// The team already heard about a withdrawal; purging the row is cleanup.
		if ev.Before.Status == models.InterestStatusWithdrawn {
			return Delivery{}, false, nil
		}
		return Delivery{Kind: KindInterestCancelled, To: SideTeam}, true, nil
	}

	return Delivery{}, false, fmt.Errorf("%w: unknown event type %q", ErrInvalidEvent, ev.Type)
}
