// Package frontmatter splits a content file into its YAML front matter and
// Markdown body and deserializes the front matter into a content.Record.
package frontmatter

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jcerise/rssg/internal/content"
	rssgerr "github.com/jcerise/rssg/internal/errors"
)

// requiredFields are the front matter keys every content file must carry.
// "path" is additionally tolerated in the source block but never read.
var requiredFields = []string{
	"title",
	"description",
	"tags",
	"related",
	"publish_date",
	"numeric_attributes",
}

// Extract parses the full text of one content file into a Record.
//
// The file must start with a `---` delimited YAML block containing exactly
// the required field set. The returned Record's Body is the text after the
// closing delimiter, unmodified, and its Path is always empty.
//
// Extract is a pure transform; all failures are metadata-category errors
// carrying the underlying parse diagnostic.
func Extract(raw []byte) (*content.Record, error) {
	block, body, err := Split(raw)
	if err != nil {
		return nil, rssgerr.Wrap(err, rssgerr.CategoryMetadata, "invalid front matter block")
	}

	if err := checkFields(block); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(block))
	dec.KnownFields(true)

	var rec content.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, rssgerr.Wrap(err, rssgerr.CategoryMetadata, "front matter does not match the expected shape")
	}
	if rec.Title == "" {
		return nil, rssgerr.New(rssgerr.CategoryMetadata, "front matter field \"title\" must not be empty")
	}

	// path is pipeline-assigned, never author-supplied.
	rec.Path = ""
	rec.Body = string(body)
	return &rec, nil
}

// Split separates the YAML front matter (`---` delimited, CRLF-aware) from
// the Markdown body. The returned body is byte-for-byte the text after the
// closing delimiter.
func Split(raw []byte) (block []byte, body []byte, err error) {
	nl := detectNewline(raw)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(raw, open) {
		return nil, nil, ErrMissingOpeningDelimiter
	}

	blockStart := len(open)
	if bytes.HasPrefix(raw[blockStart:], open) {
		// Empty block: "---\n---\n<body>".
		return []byte{}, raw[blockStart+len(open):], nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(raw[blockStart:], closeSeq)
	if idx < 0 {
		return nil, nil, ErrMissingClosingDelimiter
	}

	blockEnd := blockStart + idx + len(nl)
	bodyStart := blockStart + idx + len(closeSeq)
	return raw[blockStart:blockEnd], raw[bodyStart:], nil
}

// ErrMissingOpeningDelimiter indicates the file does not begin with a YAML
// front matter delimiter.
var ErrMissingOpeningDelimiter = fmt.Errorf("front matter opening delimiter not found")

// ErrMissingClosingDelimiter indicates the front matter block was opened but
// never closed.
var ErrMissingClosingDelimiter = fmt.Errorf("front matter closing delimiter not found")

// checkFields verifies the block contains every required key and nothing
// outside the known field set.
func checkFields(block []byte) error {
	var fields map[string]yaml.Node
	if err := yaml.Unmarshal(block, &fields); err != nil {
		return rssgerr.Wrap(err, rssgerr.CategoryMetadata, "front matter is not valid YAML")
	}

	var missing []string
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return rssgerr.New(rssgerr.CategoryMetadata,
			fmt.Sprintf("front matter is missing required fields: %v", missing))
	}
	return nil
}

func detectNewline(raw []byte) string {
	for i := 0; i+1 < len(raw); i++ {
		if raw[i] == '\r' && raw[i+1] == '\n' {
			return "\r\n"
		}
		if raw[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
