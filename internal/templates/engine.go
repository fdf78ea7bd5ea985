// Package templates adapts the pongo2 template engine behind the narrow
// engine interface the page and index builders consume.
package templates

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	rssgerr "github.com/jcerise/rssg/internal/errors"
)

// The two named templates every theme must provide.
const (
	PageTemplate  = "template.html"
	IndexTemplate = "index.html"
)

// Engine renders a named template against a context of key/value bindings.
type Engine interface {
	Render(name string, ctx map[string]any) (string, error)
}

// PongoEngine is the pongo2-backed Engine. The page and index templates are
// compiled once at construction; rendering never recompiles.
type PongoEngine struct {
	compiled map[string]*pongo2.Template
}

// NewPongoEngine loads and compiles the template set from dir.
//
// Any load or compile failure is a template-category error, raised before
// the generator touches the output directory.
func NewPongoEngine(dir string) (*PongoEngine, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(dir)
	if err != nil {
		return nil, rssgerr.Wrap(err, rssgerr.CategoryTemplate, "open template directory").WithPath(dir)
	}
	set := pongo2.NewSet("rssg", loader)

	compiled := make(map[string]*pongo2.Template, 2)
	for _, name := range []string{PageTemplate, IndexTemplate} {
		tpl, err := set.FromFile(name)
		if err != nil {
			return nil, rssgerr.Wrap(err, rssgerr.CategoryTemplate, "load template").WithPath(name)
		}
		compiled[name] = tpl
	}
	return &PongoEngine{compiled: compiled}, nil
}

// Render executes the named template with the given context.
func (e *PongoEngine) Render(name string, ctx map[string]any) (string, error) {
	tpl, ok := e.compiled[name]
	if !ok {
		return "", rssgerr.New(rssgerr.CategoryRender, fmt.Sprintf("unknown template %q", name))
	}
	out, err := tpl.Execute(pongo2.Context(ctx))
	if err != nil {
		return "", rssgerr.Wrap(err, rssgerr.CategoryRender, "render template").WithPath(name)
	}
	return out, nil
}
