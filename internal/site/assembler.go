// Package site orchestrates the content-to-page pipeline: one HTML page per
// content file plus a generated index page.
package site

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jcerise/rssg/internal/config"
	"github.com/jcerise/rssg/internal/content"
	rssgerr "github.com/jcerise/rssg/internal/errors"
	"github.com/jcerise/rssg/internal/logfields"
	"github.com/jcerise/rssg/internal/markdown"
	"github.com/jcerise/rssg/internal/templates"
)

// Assembler drives one full site generation run. The config, renderer and
// engine are read-only for the run's duration.
type Assembler struct {
	cfg    *config.Config
	md     markdown.Renderer
	engine templates.Engine
}

// NewAssembler creates an Assembler over the given collaborators.
func NewAssembler(cfg *config.Config, md markdown.Renderer, engine templates.Engine) *Assembler {
	return &Assembler{cfg: cfg, md: md, engine: engine}
}

// Run generates the whole site: every regular file directly under the
// content directory becomes one HTML page, then the collected summaries
// become the index page.
//
// The first failure at any stage aborts the run; pages already written stay
// on disk. Pages are processed in lexicographic file-name order, so the
// index order is deterministic across runs and filesystems.
func (a *Assembler) Run() error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(a.cfg.OutputLocation, 0o755); err != nil {
		return rssgerr.Wrap(err, rssgerr.CategoryFilesystem, "create output directory").WithPath(a.cfg.OutputLocation)
	}

	// os.ReadDir returns entries sorted by file name.
	entries, err := os.ReadDir(a.cfg.ContentLocation)
	if err != nil {
		return rssgerr.Wrap(err, rssgerr.CategoryFilesystem, "list content directory").WithPath(a.cfg.ContentLocation)
	}

	summaries := make([]content.Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			// Nested content is out of scope; subdirectories are skipped, not descended.
			slog.Debug("Skipping subdirectory", logfields.Path(filepath.Join(a.cfg.ContentLocation, entry.Name())))
			continue
		}
		if !entry.Type().IsRegular() {
			slog.Debug("Skipping irregular entry", logfields.Path(filepath.Join(a.cfg.ContentLocation, entry.Name())))
			continue
		}

		summary, err := a.buildPage(entry.Name())
		if err != nil {
			return err
		}
		slog.Info("Generated page", logfields.Page(entry.Name()), logfields.Path(summary.Path))
		summaries = append(summaries, summary)
	}

	if err := a.buildIndex(summaries); err != nil {
		return err
	}

	slog.Info("Site build complete",
		logfields.Pages(len(summaries)),
		logfields.Output(a.cfg.OutputLocation))
	return nil
}
