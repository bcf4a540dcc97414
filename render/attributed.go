package render

import (
	"fmt"
	"strings"

	"github.com/musicionary/organice/model"
)

// AttributedTextRenderer renders a sequence of attributed-text parts to
// Org text. The zero value is ready to use and discards diagnostics.
type AttributedTextRenderer struct {
	// Diagnostics receives a diagnostic for every part of an unknown
	// type. Nil discards them.
	Diagnostics DiagnosticSink

	// display selects display text instead of raw markup: links collapse
	// to their title or URI and nested tables to empty text. Used for
	// table column-width computation.
	display bool
}

// NewAttributedTextRenderer creates a renderer with no diagnostic sink.
func NewAttributedTextRenderer() *AttributedTextRenderer {
	return &AttributedTextRenderer{}
}

// Render serializes parts in order. Empty input yields "". A part that
// follows a list or table part is prefixed with one newline, since block
// renderers emit no trailing newline of their own.
func (r *AttributedTextRenderer) Render(parts model.AttributedText) string {
	var sb strings.Builder
	for i, part := range parts {
		if i > 0 && isBlockPart(parts[i-1]) {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.renderPart(part))
	}
	return sb.String()
}

// DisplayText serializes parts the way they occupy columns on screen:
// link markup collapses to the link's title (or URI when untitled) and
// nested tables to empty text. Everything else renders as in Render.
func (r *AttributedTextRenderer) DisplayText(parts model.AttributedText) string {
	d := &AttributedTextRenderer{Diagnostics: r.Diagnostics, display: true}
	return d.Render(parts)
}

func (r *AttributedTextRenderer) renderPart(part model.Part) string {
	switch p := part.(type) {
	case *model.TextPart:
		return p.Contents
	case *model.LinkPart:
		if r.display {
			if p.Title != "" {
				return p.Title
			}
			return p.URI
		}
		if p.Title != "" {
			return "[[" + p.URI + "][" + p.Title + "]]"
		}
		return "[[" + p.URI + "]]"
	case *model.FractionCookiePart:
		return "[" + p.Numerator + "/" + p.Denominator + "]"
	case *model.PercentageCookiePart:
		return "[" + p.Percentage + "%]"
	case *model.TablePart:
		if r.display {
			return ""
		}
		tr := &TableRenderer{Attributed: r}
		return tr.Render(p.Table)
	case *model.ListPart:
		lr := &ListRenderer{Attributed: r}
		return lr.Render(p.List)
	case *model.TimestampPart:
		return FormatTimestampRange(p.First, p.Second)
	case *model.URLPart:
		return p.URL
	case *model.WWWURLPart:
		return p.URL
	case *model.EmailPart:
		return p.Address
	case *model.PhoneNumberPart:
		return p.Number
	default:
		if r.Diagnostics != nil {
			r.Diagnostics.Emit(Diagnostic{
				Component: "attributed-text",
				Message:   fmt.Sprintf("no rule to render part type %v, substituting empty text", part.Type()),
			})
		}
		return ""
	}
}

// isBlockPart reports whether part renders as block-level text with no
// trailing newline.
func isBlockPart(part model.Part) bool {
	switch part.Type() {
	case model.PartTypeList, model.PartTypeTable:
		return true
	}
	return false
}
