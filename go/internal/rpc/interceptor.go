package rpc

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/mcdev12/transferdesk/go/internal/metrics"
	"github.com/rs/zerolog/log"
)

// NewLoggingInterceptor logs every unary call with its outcome and latency,
// and records the RPC metrics.
func NewLoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			evt := log.Debug()
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
				var cerr *connect.Error
				if !errors.As(err, &cerr) || cerr.Code() == connect.CodeInternal || cerr.Code() == connect.CodeUnknown {
					evt = log.Error().Err(err)
				} else {
					evt = log.Info().Err(err)
				}
			}
			procedure := req.Spec().Procedure
			metrics.RPCRequestsTotal.WithLabelValues(procedure, code).Inc()
			metrics.RPCRequestDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())

			evt.
				Str("procedure", procedure).
				Str("code", code).
				Dur("duration", time.Since(start)).
				Msg("rpc")
			return resp, err
		}
	}
}
