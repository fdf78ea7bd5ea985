package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jcerise/rssg/internal/config"
	"github.com/jcerise/rssg/internal/markdown"
	"github.com/jcerise/rssg/internal/site"
	"github.com/jcerise/rssg/internal/templates"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Generate the site from the configured content directory"`
	Init  InitCmd  `cmd:"" help:"Scaffold a new site: configuration, default theme, sample content"`
	Watch WatchCmd `cmd:"" help:"Rebuild the full site whenever content or templates change"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// RunBuild performs one full generation pass: compile the template set,
// then drive the assembler over every content file.
//
// The engine is constructed before the assembler runs, so a broken or
// missing template set fails the run before the output directory is touched.
func RunBuild(cfg *config.Config) error {
	engine, err := templates.NewPongoEngine(cfg.TemplateDir())
	if err != nil {
		return err
	}
	return site.NewAssembler(cfg, markdown.NewGoldmark(), engine).Run()
}
