package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/steuerkit/rechner/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	addr := os.Getenv(EnvAddr)
	if addr == "" {
		addr = ":8080"
	}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", addr, "listen address (env "+EnvAddr+")")
	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func (a *app) serve(ctx context.Context, addr string) error {
	engine, err := a.engine()
	if err != nil {
		return err
	}
	log := a.log("server")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := server.NewHTTPServer(addr, server.New(server.Config{
		Engine:   engine,
		Logger:   log,
		Registry: registry,
	}).Router())

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s (rules %d)", addr, engine.Rules().Year)
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

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
