package commands

import (
	"log/slog"

	"github.com/jcerise/rssg/internal/config"
	"github.com/jcerise/rssg/internal/logfields"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Override the configured output directory"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.OutputLocation = b.Output
	}

	slog.Info("Starting site build",
		logfields.Content(cfg.ContentLocation),
		logfields.Output(cfg.OutputLocation),
		slog.String("theme", cfg.Theme))

	return RunBuild(cfg)
}
