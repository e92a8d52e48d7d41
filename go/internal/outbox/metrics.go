package outbox

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/transferdesk/go/internal/metrics"
)

// MetricPublisher wraps a Publisher with Prometheus metrics
type MetricPublisher struct {
	publisher Publisher
	clock     clockwork.Clock
}

func NewMetricPublisher(publisher Publisher, clock clockwork.Clock) *MetricPublisher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MetricPublisher{
		publisher: publisher,
		clock:     clock,
	}
}

func (p *MetricPublisher) Publish(ctx context.Context, event OutboxEvent) error {
	start := p.clock.Now()

	err := p.publisher.Publish(ctx, event)

	metrics.OutboxPublishDuration.Observe(p.clock.Since(start).Seconds())
	metrics.OutboxPublishedTotal.WithLabelValues(publishResult(err)).Inc()
	return err
}

func publishResult(err error) string {
	if err != nil {
		return metrics.ResultFailure
	}
	return metrics.ResultSuccess
}
