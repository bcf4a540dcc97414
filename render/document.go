package render

import (
	"strings"

	"github.com/musicionary/organice/model"
)

// DocumentRenderer renders a whole document: file preamble followed by
// every heading in document order.
type DocumentRenderer struct {
	// Header renders each heading.
	Header *HeaderRenderer
}

// NewDocumentRenderer creates a renderer with default header rendering:
// indented drawers and the default planning filter.
func NewDocumentRenderer() *DocumentRenderer {
	return &DocumentRenderer{Header: NewHeaderRenderer()}
}

// Render serializes doc. The preamble consists of the raw file config
// lines, the TODO keyword declarations (omitted entirely when the
// document still carries the built-in default set) and the remaining
// pre-heading lines. A document whose preamble produced anything gets
// exactly one blank-separating newline before the first heading.
func (r *DocumentRenderer) Render(doc *model.Document) string {
	var sb strings.Builder

	produced := false
	if len(doc.FileConfigLines) > 0 {
		sb.WriteString(strings.Join(doc.FileConfigLines, "\n"))
		sb.WriteByte('\n')
		produced = true
	}
	if len(doc.TodoKeywordSets) > 0 && !doc.TodoKeywordSets[0].Default {
		lines := make([]string, len(doc.TodoKeywordSets))
		for i, set := range doc.TodoKeywordSets {
			lines[i] = set.ConfigLine
		}
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteByte('\n')
		produced = true
	}
	if len(doc.LinesBeforeHeadings) > 0 {
		sb.WriteString(strings.Join(doc.LinesBeforeHeadings, "\n"))
		produced = true
	}
	if produced {
		sb.WriteByte('\n')
	}

	for _, h := range doc.Headers {
		sb.WriteString(r.Header.Render(h, true))
	}
	return sb.String()
}
