// Package server serves the generated site for local preview, with
// health and metrics endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bellsfork/vdpbuilder/internal/metrics"
)

// Options configures the preview server.
type Options struct {
	// Root is the directory holding the generated site.
	Root string
	Addr string
	// Recorder, when it is a Prometheus recorder, gets exposed at
	// /metrics.
	Recorder metrics.Recorder
}

// Handler builds the HTTP routing for the generated site.
func Handler(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	if prom, ok := opts.Recorder.(*metrics.PrometheusRecorder); ok {
		r.Handle("/metrics", prom.Handler())
	}
	r.Handle("/*", http.FileServer(http.Dir(opts.Root)))
	return r
}

// Run serves until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, opts Options) error {
	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           Handler(opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Serving generated site", "addr", opts.Addr, "root", opts.Root)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
