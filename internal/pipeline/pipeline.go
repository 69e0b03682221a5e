// Package pipeline drives a full site build: inventory in, one static
// page per vehicle out, sitemap merged last.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/bellsfork/vdpbuilder/internal/config"
	"github.com/bellsfork/vdpbuilder/internal/identity"
	"github.com/bellsfork/vdpbuilder/internal/inventory"
	"github.com/bellsfork/vdpbuilder/internal/metrics"
	"github.com/bellsfork/vdpbuilder/internal/render"
	"github.com/bellsfork/vdpbuilder/internal/sitemap"
	"github.com/bellsfork/vdpbuilder/internal/state"
)

// Options configures a pipeline run.
type Options struct {
	Config   *config.Config
	Recorder metrics.Recorder // nil for no metrics
	Now      func() time.Time // nil for time.Now; drives the sitemap date
}

// Result summarizes one run.
type Result struct {
	BuildID        string
	Written        int
	Skipped        int
	URLs           []string
	SitemapUpdated bool
}

// Run executes one build. Records are processed in feed order; two
// records deriving the same identifier overwrite the same output
// directory, last write wins. A malformed feed aborts before any file
// is written; a broken sitemap only logs a warning.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	started := now()
	res := &Result{BuildID: uuid.NewString()}
	log := slog.With("build_id", res.BuildID)

	vehicles, err := inventory.Load(cfg.Inventory.Path)
	if err != nil {
		rec.BuildCompleted(now().Sub(started), false)
		return nil, err
	}
	selected := inventory.Select(vehicles, cfg.Inventory.FilterStatus)
	log.Info("Loaded inventory",
		"path", cfg.Inventory.Path, "records", len(vehicles), "selected", len(selected))

	renderer, err := render.New(cfg.Dealer, cfg.Site.AssetPrefix)
	if err != nil {
		rec.BuildCompleted(now().Sub(started), false)
		return nil, err
	}

	var store *state.Store
	if cfg.State.Path != "" {
		store, err = state.Open(cfg.State.Path)
		if err != nil {
			log.Warn("State store unavailable, building without it", "error", err)
		} else {
			defer func() { _ = store.Close() }()
		}
	}

	loc := identity.Locality{City: cfg.Dealer.City, State: cfg.Dealer.State, Zip: cfg.Dealer.Zip}
	for i := range selected {
		if err := ctx.Err(); err != nil {
			rec.BuildCompleted(now().Sub(started), false)
			return nil, err
		}
		v := &selected[i]

		id := identity.VehicleID(v)
		tail := identity.SlugTail(v, loc)
		if tail == "" {
			tail = id
		}
		relDir := path.Join("vdp", id, tail)
		pageURL := cfg.Site.BaseURL + "/" + relDir + "/"
		outPath := filepath.Join(cfg.Output.Directory, filepath.FromSlash(relDir), "index.html")

		page, err := renderer.Render(v, pageURL)
		if err != nil {
			rec.BuildCompleted(now().Sub(started), false)
			return nil, fmt.Errorf("render %s: %w", id, err)
		}

		wrote, err := writePage(store, outPath, page)
		if err != nil {
			rec.BuildCompleted(now().Sub(started), false)
			return nil, err
		}
		if wrote {
			res.Written++
		} else {
			res.Skipped++
			log.Debug("Page unchanged, skipped", "path", outPath)
		}
		res.URLs = append(res.URLs, pageURL)
	}

	if !cfg.Sitemap.Skip {
		res.SitemapUpdated = updateSitemap(log, rec, cfg.SitemapPath(), res.URLs, now())
	}

	rec.PagesGenerated(res.Written)
	rec.PagesSkipped(res.Skipped)
	rec.BuildCompleted(now().Sub(started), true)
	log.Info("Build complete",
		"written", res.Written, "skipped", res.Skipped, "sitemap_updated", res.SitemapUpdated)
	return res, nil
}

// writePage writes a page unless the state store knows this exact
// content is already on disk. Returns whether a write happened.
func writePage(store *state.Store, outPath string, page []byte) (bool, error) {
	var hash string
	if store != nil {
		hash = state.Hash(page)
		unchanged, err := store.Unchanged(outPath, hash)
		if err == nil && unchanged {
			if _, statErr := os.Stat(outPath); statErr == nil {
				return false, nil
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return false, fmt.Errorf("create page directory: %w", err)
	}
	if err := os.WriteFile(outPath, page, 0o644); err != nil {
		return false, fmt.Errorf("write page %s: %w", outPath, err)
	}
	// Record only after the page landed, so a failed write is retried
	// on the next run instead of being skipped as unchanged.
	if store != nil {
		_ = store.Record(outPath, hash)
	}
	return true, nil
}

// updateSitemap merges urls into the sitemap. A missing sitemap is a
// quiet no-op; a malformed one is a warning, never a build failure.
func updateSitemap(log *slog.Logger, rec metrics.Recorder, path string, urls []string, today time.Time) bool {
	err := sitemap.Update(path, urls, today)
	switch {
	case err == nil:
		log.Info("Sitemap updated", "path", path, "urls", len(urls))
		rec.SitemapUpdated()
		return true
	case errors.Is(err, sitemap.ErrNoSitemap):
		log.Debug("No sitemap present, skipping update", "path", path)
	default:
		log.Warn("Could not update sitemap", "path", path, "error", err)
	}
	return false
}
