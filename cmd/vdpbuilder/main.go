package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/bellsfork/vdpbuilder/cmd/vdpbuilder/commands"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("vdpbuilder"),
		kong.Description("Generates static vehicle detail pages from a dealership inventory feed."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli)
	ctx.FatalIfErrorf(err)
}
