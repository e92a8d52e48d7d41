package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/mcdev12/transferdesk/go/internal/agents"
	"github.com/mcdev12/transferdesk/go/internal/auth"
	"github.com/mcdev12/transferdesk/go/internal/config"
	"github.com/mcdev12/transferdesk/go/internal/interest"
	"github.com/mcdev12/transferdesk/go/internal/notifications"
	"github.com/mcdev12/transferdesk/go/internal/pitches"
	"github.com/mcdev12/transferdesk/go/internal/player"
	"github.com/mcdev12/transferdesk/go/internal/profiles"
	"github.com/mcdev12/transferdesk/go/internal/rpc"
	"github.com/mcdev12/transferdesk/go/internal/teams"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the connect API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := cfg.Auth.Validate(); err != nil {
				return err
			}

			database, err := setupDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close()

			services := setupServices(database, cfg.Notifications)
			verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
			var authOpts []auth.InterceptorOption
			if !verifier.Enabled() && cfg.Auth.InsecureDev {
				log.Warn().Str("header", auth.ActorHeader).Msg("token auth disabled, trusting actor header")
				authOpts = append(authOpts, auth.TrustActorHeader())
			}

			srv := setupServer(cfg.Server, database, services, auth.NewInterceptor(verifier, authOpts...))
			return runServer(ctx, srv)
		},
	}
}

func setupServer(c config.ServerConfig, database *sql.DB, services *Services, authInterceptor connect.Interceptor) *http.Server {
	mux := http.NewServeMux()

	// Setup CORS middleware
	crs := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: c.AllowedOrigins,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Grpc-Status", "Grpc-Message", "Connect-Protocol-Version"},
	})

	opts := rpc.HandlerOptions(rpc.NewLoggingInterceptor(), authInterceptor)
	registerServices(mux, services, opts)

	setupHealthCheck(mux, database)
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", c.Port),
		Handler:           h2c.NewHandler(crs.Handler(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func registerServices(mux *http.ServeMux, services *Services, opts []connect.HandlerOption) {
	mux.Handle(profiles.NewProfileServiceHandler(services.Profiles, opts...))
	mux.Handle(teams.NewTeamServiceHandler(services.Teams, opts...))
	mux.Handle(agents.NewAgentServiceHandler(services.Agents, opts...))
	mux.Handle(player.NewPlayerServiceHandler(services.Players, opts...))
	mux.Handle(pitches.NewPitchServiceHandler(services.Pitches, opts...))
	mux.Handle(interest.NewInterestServiceHandler(services.Interest, opts...))
	mux.Handle(notifications.NewNotificationServiceHandler(services.Notifications, opts...))
}

func setupHealthCheck(mux *http.ServeMux, database *sql.DB) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := database.PingContext(ctx); err != nil {
			log.Error().Err(err).Msg("health check failed")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}

// runServer serves until ctx is cancelled, then drains connections.
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
