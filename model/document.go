package model

import "strings"

// TodoKeywordSet is one TODO workflow sequence. Documents that never
// declare keywords carry a single Default set (TODO/DONE); declarations
// like "#+TODO: TODO NEXT | DONE" replace the default entirely.
type TodoKeywordSet struct {
	// Keywords lists every keyword of the set in declaration order, with
	// fast-access selectors like "(t)" stripped.
	Keywords []string

	// CompletedKeywords is the subset after the "|" bar, or the last
	// keyword when the declaration has no bar.
	CompletedKeywords []string

	// ConfigLine is the verbatim declaration line. Empty for the default
	// set, which is never serialized.
	ConfigLine string

	// Default marks the built-in set used when the file declares none.
	Default bool
}

// DefaultTodoKeywordSet returns the built-in TODO/DONE set.
func DefaultTodoKeywordSet() TodoKeywordSet {
	return TodoKeywordSet{
		Keywords:          []string{"TODO", "DONE"},
		CompletedKeywords: []string{"DONE"},
		Default:           true,
	}
}

// Document represents a complete Org file.
type Document struct {
	// Headers is the flat, ordered list of headings. Hierarchy is implied
	// by each header's NestingLevel, never by nesting in the model.
	Headers []*Header

	// TodoKeywordSets always contains at least one set. When the first
	// set is flagged Default, no keyword configuration is serialized.
	TodoKeywordSets []TodoKeywordSet

	// FileConfigLines are the raw leading "#+..." lines, excluding TODO
	// keyword declarations.
	FileConfigLines []string

	// LinesBeforeHeadings are the raw remaining lines preceding the first
	// heading.
	LinesBeforeHeadings []string
}

// NewDocument creates a new empty document with the default TODO keyword
// set.
func NewDocument() *Document {
	return &Document{
		TodoKeywordSets: []TodoKeywordSet{DefaultTodoKeywordSet()},
	}
}

// AddHeader adds a header to the document.
func (d *Document) AddHeader(h *Header) {
	d.Headers = append(d.Headers, h)
}

// HeaderCount returns the total number of headers.
func (d *Document) HeaderCount() int {
	return len(d.Headers)
}

// TodoKeywords returns every keyword of every set, in order.
func (d *Document) TodoKeywords() []string {
	var out []string
	for _, set := range d.TodoKeywordSets {
		out = append(out, set.Keywords...)
	}
	return out
}

// IsTodoKeyword reports whether kw is declared by any keyword set.
func (d *Document) IsTodoKeyword(kw string) bool {
	for _, set := range d.TodoKeywordSets {
		for _, k := range set.Keywords {
			if k == kw {
				return true
			}
		}
	}
	return false
}

// IsCompletedKeyword reports whether kw marks a completed state in any
// keyword set.
func (d *Document) IsCompletedKeyword(kw string) bool {
	for _, set := range d.TodoKeywordSets {
		for _, k := range set.CompletedKeywords {
			if k == kw {
				return true
			}
		}
	}
	return false
}

// ConfigValue returns the value of the first file config line with the
// given key ("#+KEY: value"), and whether one exists.
func (d *Document) ConfigValue(key string) (string, bool) {
	prefix := "#+" + key + ":"
	for _, line := range d.FileConfigLines {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimLeft(line[len(prefix):], " \t"), true
		}
	}
	return "", false
}

// Outline returns the document's headings as a flat table of contents.
func (d *Document) Outline() []OutlineEntry {
	var out []OutlineEntry
	for _, h := range d.Headers {
		out = append(out, OutlineEntry{
			Level:       h.NestingLevel,
			TodoKeyword: h.TitleLine.TodoKeyword,
			Title:       strings.TrimRight(h.TitleLine.RawTitle, " \t"),
			Tags:        h.TitleLine.Tags,
		})
	}
	return out
}

// OutlineEntry represents one entry of a document outline.
type OutlineEntry struct {
	Level       int
	TodoKeyword string
	Title       string
	Tags        []string
}
