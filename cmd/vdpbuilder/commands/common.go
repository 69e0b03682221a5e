package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/bellsfork/vdpbuilder/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"withargs" help:"Generate vehicle detail pages from the inventory feed"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
	Watch WatchCmd `cmd:"" help:"Rebuild automatically when the inventory feed changes"`
	Serve ServeCmd `cmd:"" help:"Serve the generated site locally"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the configuration file when it exists, or starts
// from defaults when it doesn't (everything is overridable by flags).
func loadConfig(root *CLI) (*config.Config, error) {
	if _, err := os.Stat(root.Config); err == nil {
		return config.Load(root.Config)
	}
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
