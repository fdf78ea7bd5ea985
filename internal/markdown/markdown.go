// Package markdown adapts the Goldmark library behind the narrow renderer
// interface the page pipeline consumes.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// Renderer converts a Markdown body into an HTML fragment.
//
// Rendering is total: any input yields some HTML, with malformed constructs
// degrading to literal text per CommonMark. The pipeline has no Markdown
// error branch, so the interface deliberately has no error return.
type Renderer interface {
	Render(body []byte) string
}

// Goldmark is the CommonMark-strict Renderer used in production.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark creates a Goldmark renderer with default (CommonMark) options.
func NewGoldmark() *Goldmark {
	return &Goldmark{md: goldmark.New()}
}

// Render converts body to an HTML fragment (no <html>/<body> wrapper).
func (g *Goldmark) Render(body []byte) string {
	var buf bytes.Buffer
	// Convert only fails when the destination writer fails, and writes to a
	// bytes.Buffer cannot.
	_ = g.md.Convert(body, &buf)
	return buf.String()
}
