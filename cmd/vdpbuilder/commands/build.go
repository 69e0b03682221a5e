package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/bellsfork/vdpbuilder/internal/config"
	"github.com/bellsfork/vdpbuilder/internal/pipeline"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Inventory       string `help:"Inventory feed path (overrides config)"`
	Out             string `short:"o" help:"Output root for generated pages (overrides config)"`
	SiteURL         string `name:"site-url" help:"Site base URL (overrides config)"`
	City            string `help:"Dealership city (overrides config)"`
	State           string `help:"Dealership state (overrides config)"`
	Zip             string `help:"Dealership ZIP code (overrides config)"`
	NoUpdateSitemap bool   `name:"no-update-sitemap" help:"Skip the sitemap merge step"`
	FilterStatus    bool   `name:"filter-status" help:"Only generate pages for available vehicles"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	b.apply(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := pipeline.Run(ctx, pipeline.Options{Config: cfg})
	if err != nil {
		return err
	}
	fmt.Printf("Generated %d VDP pages into %s/vdp/\n", res.Written+res.Skipped, cfg.Output.Directory)
	return nil
}

// apply overlays command-line flags onto the loaded configuration.
func (b *BuildCmd) apply(cfg *config.Config) {
	if b.Inventory != "" {
		cfg.Inventory.Path = b.Inventory
	}
	if b.Out != "" {
		cfg.Output.Directory = b.Out
	}
	if b.SiteURL != "" {
		cfg.Site.BaseURL = b.SiteURL
	}
	if b.City != "" {
		cfg.Dealer.City = b.City
	}
	if b.State != "" {
		cfg.Dealer.State = b.State
	}
	if b.Zip != "" {
		cfg.Dealer.Zip = b.Zip
	}
	if b.NoUpdateSitemap {
		cfg.Sitemap.Skip = true
	}
	if b.FilterStatus {
		cfg.Inventory.FilterStatus = true
	}
}
