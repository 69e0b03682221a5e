package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/bellsfork/vdpbuilder/internal/metrics"
	"github.com/bellsfork/vdpbuilder/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Interval time.Duration `help:"Also rebuild on a fixed interval (0 disables)" default:"0"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = watch.Run(ctx, watch.Options{
		Config:   cfg,
		Recorder: metrics.NoopRecorder{},
		Interval: w.Interval,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
