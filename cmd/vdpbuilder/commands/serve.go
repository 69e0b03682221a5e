package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bellsfork/vdpbuilder/internal/metrics"
	"github.com/bellsfork/vdpbuilder/internal/server"
	"github.com/bellsfork/vdpbuilder/internal/watch"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr     string        `help:"Listen address" default:":8080"`
	Watch    bool          `help:"Rebuild on inventory changes while serving"`
	Interval time.Duration `help:"Also rebuild on a fixed interval when watching (0 disables)" default:"0"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rec := metrics.NewPrometheusRecorder()

	g, gctx := errgroup.WithContext(ctx)
	if s.Watch {
		g.Go(func() error {
			return watch.Run(gctx, watch.Options{Config: cfg, Recorder: rec, Interval: s.Interval})
		})
	}
	g.Go(func() error {
		return server.Run(gctx, server.Options{
			Root:     cfg.Output.Directory,
			Addr:     s.Addr,
			Recorder: rec,
		})
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
