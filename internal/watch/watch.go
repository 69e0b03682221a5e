// Package watch rebuilds the site whenever the inventory feed changes,
// and optionally on a fixed schedule.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"github.com/bellsfork/vdpbuilder/internal/config"
	"github.com/bellsfork/vdpbuilder/internal/metrics"
	"github.com/bellsfork/vdpbuilder/internal/pipeline"
)

// debounceWindow coalesces the event bursts editors and exporters emit
// when replacing a file.
const debounceWindow = 300 * time.Millisecond

// Options configures the watch loop.
type Options struct {
	Config   *config.Config
	Recorder metrics.Recorder
	// Interval enables an additional periodic rebuild when > 0.
	Interval time.Duration
}

// Run builds once, then keeps rebuilding on inventory changes until ctx
// is done. Build failures are logged and the loop keeps running; only a
// watcher setup failure is terminal.
func Run(ctx context.Context, opts Options) error {
	build := func(reason string) {
		res, err := pipeline.Run(ctx, pipeline.Options{Config: opts.Config, Recorder: opts.Recorder})
		if err != nil {
			slog.Error("Build failed", "reason", reason, "error", err)
			return
		}
		slog.Info("Rebuilt site", "reason", reason, "written", res.Written, "skipped", res.Skipped)
	}
	build("startup")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the parent directory: exporters typically replace the feed
	// file wholesale, which drops the watch on the file itself.
	invPath, err := filepath.Abs(opts.Config.Inventory.Path)
	if err != nil {
		return fmt.Errorf("resolve inventory path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(invPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(invPath), err)
	}

	trigger := make(chan struct{}, 1)
	rebuild := Debounce(ctx, trigger, debounceWindow)

	var scheduler gocron.Scheduler
	if opts.Interval > 0 {
		scheduler, err = gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("create scheduler: %w", err)
		}
		_, err = scheduler.NewJob(
			gocron.DurationJob(opts.Interval),
			gocron.NewTask(func() { build("schedule") }),
			gocron.WithName("periodic-build"),
		)
		if err != nil {
			return fmt.Errorf("schedule periodic build: %w", err)
		}
		scheduler.Start()
		defer func() { _ = scheduler.Shutdown() }()
		slog.Info("Scheduled periodic rebuilds", "interval", opts.Interval)
	}

	slog.Info("Watching inventory", "path", invPath)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != invPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				select {
				case trigger <- struct{}{}:
				default:
				}
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", watchErr)
		case <-rebuild:
			build("inventory change")
		}
	}
}

// Debounce forwards a signal at most once per window: a burst of
// triggers within the window collapses into a single output after the
// window elapses.
func Debounce(ctx context.Context, in <-chan struct{}, window time.Duration) <-chan struct{} {
	out := make(chan struct{}, 1)
	go func() {
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case <-in:
				if timer == nil {
					timer = time.NewTimer(window)
					fire = timer.C
				} else {
					if !timer.Stop() {
						<-timer.C
					}
					timer.Reset(window)
				}
			case <-fire:
				timer = nil
				fire = nil
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}
