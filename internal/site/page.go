package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcerise/rssg/internal/content"
	rssgerr "github.com/jcerise/rssg/internal/errors"
	"github.com/jcerise/rssg/internal/frontmatter"
	"github.com/jcerise/rssg/internal/templates"
)

// buildPage turns one content file into an on-disk HTML page and returns its
// summary. The summary's Path is assigned only after the file is written.
func (a *Assembler) buildPage(name string) (content.Summary, error) {
	srcPath := filepath.Join(a.cfg.ContentLocation, name)

	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return content.Summary{}, rssgerr.Wrap(err, rssgerr.CategoryFilesystem, "read content file").WithPath(srcPath)
	}

	rec, err := frontmatter.Extract(raw)
	if err != nil {
		return content.Summary{}, withSourcePath(err, srcPath)
	}

	fragment := a.md.Render([]byte(rec.Body))
	title := strings.TrimSuffix(name, filepath.Ext(name))

	page, summary, err := a.renderPage(rec, fragment, title)
	if err != nil {
		return content.Summary{}, withSourcePath(err, srcPath)
	}

	outName := title + ".html"
	outPath := filepath.Join(a.cfg.OutputLocation, outName)
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		return content.Summary{}, rssgerr.Wrap(err, rssgerr.CategoryFilesystem, "write page").WithPath(outPath)
	}

	rec.Path = outName
	summary.Path = outName
	return summary, nil
}

// renderPage binds the page template context and renders it. The returned
// summary carries the record's metadata but no Path yet.
func (a *Assembler) renderPage(rec *content.Record, fragment, title string) (string, content.Summary, error) {
	ctx := map[string]any{
		"title":      title,
		"site_title": a.cfg.SiteTitle,
		"base_url":   a.cfg.BaseURL,
		"content":    fragment,
		// The full record is exposed for themes that want more than the
		// required bindings.
		"page": rec,
	}

	out, err := a.engine.Render(templates.PageTemplate, ctx)
	if err != nil {
		return "", content.Summary{}, err
	}
	return out, rec.Summarize(), nil
}

// withSourcePath attaches the content file to a pipeline error that does not
// already name one, so the run reports which file failed.
func withSourcePath(err error, srcPath string) error {
	var se *rssgerr.SiteError
	if errors.As(err, &se) && se.Path == "" {
		se.Path = srcPath
	}
	return err
}
