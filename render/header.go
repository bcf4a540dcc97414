package render

import (
	"strings"

	"github.com/musicionary/organice/model"
)

// PlanningFilter decides whether a planning item appears on a heading's
// planning line.
type PlanningFilter func(item model.PlanningItem) bool

// DefaultPlanningFilter keeps SCHEDULED, DEADLINE and CLOSED items and
// suppresses items derived from plain timestamps, which only exist for
// agenda-style consumers.
func DefaultPlanningFilter(item model.PlanningItem) bool {
	return item.Type != model.PlanningTypeNormal
}

// HeaderRenderer renders one heading: title line, planning line,
// property drawer, logbook drawer and body, in that fixed order.
type HeaderRenderer struct {
	// Attributed renders property values.
	Attributed *AttributedTextRenderer

	// DontIndent renders property and logbook drawers flush left instead
	// of indented one column past the heading stars. Planning lines keep
	// their indentation regardless.
	DontIndent bool

	// Planning decides which planning items are rendered. Nil means
	// DefaultPlanningFilter.
	Planning PlanningFilter
}

// NewHeaderRenderer creates a renderer with a default attributed-text
// renderer, indented drawers and the default planning filter.
func NewHeaderRenderer() *HeaderRenderer {
	return &HeaderRenderer{Attributed: NewAttributedTextRenderer()}
}

// Render serializes h. When includeTitle is false the title line is
// omitted and output starts with the planning line, if any.
func (r *HeaderRenderer) Render(h *model.Header, includeTitle bool) string {
	var sb strings.Builder
	if includeTitle {
		sb.WriteString(TitleLineText(h, true))
		sb.WriteByte('\n')
	}
	r.writePlanning(&sb, h)
	r.writePropertyDrawer(&sb, h)
	r.writeLogBook(&sb, h)
	if h.RawDescription != "" {
		sb.WriteString(h.RawDescription)
		if !strings.HasSuffix(h.RawDescription, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// TitleLineText renders a heading's title line without a trailing
// newline: star run, optional TODO keyword, raw title, tags. Tags are
// appended directly after the raw title, which retains any whitespace
// separating it from them. Pass includeStars false for contexts that
// show a title outside its document, such as outlines.
func TitleLineText(h *model.Header, includeStars bool) string {
	var sb strings.Builder
	if includeStars {
		sb.WriteString(strings.Repeat("*", h.NestingLevel))
	}
	if h.TitleLine.TodoKeyword != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(h.TitleLine.TodoKeyword)
	}
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString(h.TitleLine.RawTitle)
	if len(h.TitleLine.Tags) > 0 {
		sb.WriteString(":" + strings.Join(h.TitleLine.Tags, ":") + ":")
	}
	return sb.String()
}

func (r *HeaderRenderer) writePlanning(sb *strings.Builder, h *model.Header) {
	filter := r.Planning
	if filter == nil {
		filter = DefaultPlanningFilter
	}
	var parts []string
	for _, item := range h.PlanningItems {
		if !filter(item) {
			continue
		}
		parts = append(parts, item.Type.String()+": "+FormatTimestamp(item.Timestamp))
	}
	if len(parts) == 0 {
		return
	}
	line := strings.Repeat(" ", h.NestingLevel+1) + strings.Join(parts, " ")
	sb.WriteString(strings.TrimRight(line, " \t"))
	sb.WriteByte('\n')
}

func (r *HeaderRenderer) writePropertyDrawer(sb *strings.Builder, h *model.Header) {
	if len(h.PropertyListItems) == 0 {
		return
	}
	indent := r.drawerIndent(h)
	sb.WriteString(indent + ":PROPERTIES:\n")
	for _, item := range h.PropertyListItems {
		sb.WriteString(indent + ":" + item.Property + ": " + r.Attributed.Render(item.Value) + "\n")
	}
	sb.WriteString(indent + ":END:\n")
}

func (r *HeaderRenderer) writeLogBook(sb *strings.Builder, h *model.Header) {
	if len(h.LogBookEntries) == 0 {
		return
	}
	indent := r.drawerIndent(h)
	sb.WriteString(indent + ":LOGBOOK:\n")
	for _, entry := range h.LogBookEntries {
		line, ok := logBookLine(entry)
		if !ok {
			continue
		}
		sb.WriteString(strings.TrimRight(indent+line, " \t"))
		sb.WriteByte('\n')
	}
	sb.WriteString(indent + ":END:\n")
}

// logBookLine renders one logbook entry without indentation. Raw entries
// are emitted verbatim; an empty raw entry produces no line at all.
func logBookLine(entry model.LogBookEntry) (string, bool) {
	if !entry.IsClock() {
		if entry.Raw == "" {
			return "", false
		}
		return entry.Raw, true
	}
	line := "CLOCK: " + FormatTimestamp(entry.Start)
	if entry.End != nil {
		line += "--" + FormatTimestamp(entry.End) +
			" => " + FormatClockDuration(ClockDurationMinutes(entry.Start, entry.End))
	}
	return line, true
}

// drawerIndent returns the indentation for property and logbook drawer
// lines, one column past the heading stars.
func (r *HeaderRenderer) drawerIndent(h *model.Header) string {
	if r.DontIndent {
		return ""
	}
	return strings.Repeat(" ", h.NestingLevel+1)
}
