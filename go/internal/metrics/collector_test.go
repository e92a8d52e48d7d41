package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fixedCounter struct {
	n   int64
	err error
}

func (f fixedCounter) CountPending(context.Context) (int64, error) { return f.n, f.err }

func TestCollectOutboxDepth(t *testing.T) {
	collectOutboxDepth(context.Background(), fixedCounter{n: 7})
	assert.Equal(t, 7.0, testutil.ToFloat64(OutboxPending))

	collectOutboxDepth(context.Background(), fixedCounter{err: errors.New("db down")})
	assert.Equal(t, 7.0, testutil.ToFloat64(OutboxPending), "gauge keeps last good sample")
}

func TestStartOutboxDepthCollectorStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		StartOutboxDepthCollector(ctx, fixedCounter{n: 1}, 1e9)
		close(done)
	}()
	<-done
	assert.Equal(t, 1.0, testutil.ToFloat64(OutboxPending))
}
