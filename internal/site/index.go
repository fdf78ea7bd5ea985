package site

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jcerise/rssg/internal/content"
	rssgerr "github.com/jcerise/rssg/internal/errors"
	"github.com/jcerise/rssg/internal/logfields"
	"github.com/jcerise/rssg/internal/templates"
)

// buildIndex renders the home page from the full ordered summary set and
// writes it to <output>/index.html. Failures here are fatal to the run; the
// per-page outputs already written remain on disk.
func (a *Assembler) buildIndex(summaries []content.Summary) error {
	ctx := map[string]any{
		"site_title": a.cfg.SiteTitle,
		"base_url":   a.cfg.BaseURL,
		"pages":      summaries,
	}

	out, err := a.engine.Render(templates.IndexTemplate, ctx)
	if err != nil {
		return err
	}

	outPath := filepath.Join(a.cfg.OutputLocation, "index.html")
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return rssgerr.Wrap(err, rssgerr.CategoryFilesystem, "write index page").WithPath(outPath)
	}

	slog.Info("Generated index page", logfields.Path(outPath), logfields.Pages(len(summaries)))
	return nil
}
