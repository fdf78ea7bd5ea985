package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath     = "path"
	KeyPage     = "page"
	KeyTemplate = "template"
	KeyOutput   = "output"
	KeyContent  = "content"
	KeyPages    = "pages"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Page(name string) slog.Attr  { return slog.String(KeyPage, name) }
func Template(n string) slog.Attr { return slog.String(KeyTemplate, n) }
func Output(dir string) slog.Attr { return slog.String(KeyOutput, dir) }
func Content(d string) slog.Attr  { return slog.String(KeyContent, d) }
func Pages(n int) slog.Attr       { return slog.Int(KeyPages, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
