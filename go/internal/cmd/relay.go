package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mcdev12/transferdesk/go/internal/metrics"
	"github.com/mcdev12/transferdesk/go/internal/outbox"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func relayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "Publish committed notifications from the outbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runRelay(ctx)
		},
	}
}

func runRelay(ctx context.Context) error {
	database, err := setupDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	var (
		publisher outbox.Publisher
		nc        outbox.ConnState
	)
	switch cfg.Relay.Publisher {
	case "jetstream":
		js, err := outbox.NewJetStreamPublisher(ctx, cfg.Relay.NATS)
		if err != nil {
			return err
		}
		defer js.Close()
		publisher, nc = js, js.Conn()
	case "log":
		publisher = outbox.NewLogPublisher(cfg.Relay.NATS.SubjectPrefix)
	default:
		return fmt.Errorf("unknown relay publisher %q", cfg.Relay.Publisher)
	}

	repo := outbox.NewRepository(database)
	listenerCfg := cfg.Relay.ListenerConfig(cfg.Database.DSN())
	relay := outbox.NewRelay(repo, outbox.NewMetricPublisher(publisher, nil), nil, listenerCfg)

	listener, err := outbox.NewListener(relay, listenerCfg)
	if err != nil {
		return err
	}

	go metrics.StartOutboxDepthCollector(ctx, repo, 15*time.Second)

	health := outbox.NewHealthChecker(relay, listener, database, repo, nc, nil, cfg.Relay.StaleAfter)
	mux := http.NewServeMux()
	mux.Handle("/health", health)
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Relay.HealthPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := runServer(ctx, srv); err != nil {
			log.Error().Err(err).Msg("relay health server stopped")
		}
	}()

	log.Info().Str("publisher", cfg.Relay.Publisher).Msg("starting outbox relay")
	return listener.Start(ctx)
}
