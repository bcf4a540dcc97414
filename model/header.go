package model

// PlanningType identifies the kind of a planning item.
type PlanningType int

const (
	PlanningTypeScheduled PlanningType = iota
	PlanningTypeDeadline
	PlanningTypeClosed
	// PlanningTypeNormal marks items derived from plain active timestamps
	// found in a heading's title or body rather than from an explicit
	// planning-line keyword. They exist for agenda-style consumers and are
	// suppressed by the default render predicate.
	PlanningTypeNormal
)

func (pt PlanningType) String() string {
	switch pt {
	case PlanningTypeScheduled:
		return "SCHEDULED"
	case PlanningTypeDeadline:
		return "DEADLINE"
	case PlanningTypeClosed:
		return "CLOSED"
	default:
		return "TIMESTAMP"
	}
}

// PlanningItem is one entry of a heading's planning line.
type PlanningItem struct {
	Type      PlanningType
	Timestamp *Timestamp
}

// PropertyListItem is one entry of a property drawer.
type PropertyListItem struct {
	Property string
	Value    AttributedText
}

// LogBookEntry is one entry of a logbook drawer: either a verbatim raw
// line (Start == nil) or a clock entry with a start and optional end
// timestamp. A raw entry with empty Raw renders as nothing.
type LogBookEntry struct {
	Raw   string
	Start *Timestamp
	End   *Timestamp
}

// IsClock reports whether the entry is a clock entry rather than a raw
// line.
func (e LogBookEntry) IsClock() bool { return e.Start != nil }

// TitleLine is the parsed form of a heading's first line, minus the
// leading stars. RawTitle preserves the source bytes between the TODO
// keyword and the tag run, including any whitespace before the tags, so
// serialization can reproduce the line exactly.
type TitleLine struct {
	// TodoKeyword is empty when the heading carries none. A keyword is
	// only ever recognized when followed by a space in the source.
	TodoKeyword string

	RawTitle string

	// Title is the attributed parallel of RawTitle, used by exporters.
	Title AttributedText

	Tags []string
}

// Header represents one heading with everything it owns, up to (not
// including) the next heading.
type Header struct {
	// NestingLevel equals the number of leading stars and is always >= 1.
	NestingLevel int

	TitleLine TitleLine

	PlanningItems     []PlanningItem
	PropertyListItems []PropertyListItem
	LogBookEntries    []LogBookEntry

	// RawDescription is the verbatim body text and the authority for
	// serialization.
	RawDescription string

	// Description is the attributed parallel of RawDescription. It is
	// used for width computation and exporters, never for Org output
	// literals.
	Description AttributedText
}

// HasPlanning reports whether the header carries any planning item of the
// given type.
func (h *Header) HasPlanning(pt PlanningType) bool {
	for _, item := range h.PlanningItems {
		if item.Type == pt {
			return true
		}
	}
	return false
}

// Property returns the value of the named drawer property and whether it
// exists. Property names are matched exactly.
func (h *Header) Property(name string) (AttributedText, bool) {
	for _, item := range h.PropertyListItems {
		if item.Property == name {
			return item.Value, true
		}
	}
	return nil, false
}
