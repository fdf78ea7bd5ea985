package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jcerise/rssg/cmd/rssg/commands"
	rssgerr "github.com/jcerise/rssg/internal/errors"
	"github.com/jcerise/rssg/internal/logfields"
	"github.com/jcerise/rssg/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("rssg"),
		kong.Description("Static site generator: Markdown with YAML front matter in, HTML pages plus an index out."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli); err != nil {
		slog.Error("rssg failed", logfields.Error(err))
		os.Exit(rssgerr.ExitCodeFor(err))
	}
}
