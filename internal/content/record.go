// Package content defines the data model flowing through the generator:
// the parsed form of a source file and the per-page summary the index
// template consumes.
package content

// Record is the parsed form of one content file: the front matter fields
// plus the raw Markdown body that follows the closing delimiter.
//
// A Record is never mutated after extraction, with one exception: Path is
// empty until the page file has been written, then assigned exactly once.
type Record struct {
	Title             string    `yaml:"title"`
	Description       string    `yaml:"description"`
	Tags              []string  `yaml:"tags"`
	Related           []string  `yaml:"related"`
	PublishDate       string    `yaml:"publish_date"`
	NumericAttributes []float64 `yaml:"numeric_attributes"`

	// Path is the output-relative file name of the generated page. It is a
	// derived value, not author-supplied data; extraction resets it even if
	// the source block carries a path key.
	Path string `yaml:"path"`

	// Body is the Markdown text after the front matter block, byte-for-byte.
	Body string `yaml:"-"`
}

// Summary is the slice of a page's metadata handed to the index template,
// plus the output path assigned after the page file was written.
type Summary struct {
	Title             string
	Description       string
	Tags              []string
	Related           []string
	PublishDate       string
	NumericAttributes []float64
	Path              string
}

// Summarize copies the record's metadata verbatim into a Summary. The
// returned Summary has no Path yet; the page builder assigns it once the
// page file is on disk.
func (r *Record) Summarize() Summary {
	return Summary{
		Title:             r.Title,
		Description:       r.Description,
		Tags:              r.Tags,
		Related:           r.Related,
		PublishDate:       r.PublishDate,
		NumericAttributes: r.NumericAttributes,
	}
}
