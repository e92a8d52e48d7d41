package metrics

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// PendingCounter reports how many outbox events are waiting to be sent.
type PendingCounter interface {
	CountPending(ctx context.Context) (int64, error)
}

// StartOutboxDepthCollector samples the outbox depth every interval until ctx is done.
func StartOutboxDepthCollector(ctx context.Context, src PendingCounter, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	collectOutboxDepth(ctx, src)

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("outbox depth collector stopping")
			return
		case <-ticker.C:
			collectOutboxDepth(ctx, src)
		}
	}
}

func collectOutboxDepth(ctx context.Context, src PendingCounter) {
	n, err := src.CountPending(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pending outbox events")
		return
	}
	OutboxPending.Set(float64(n))
}
