package organice

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue found while processing Org input.
// Operations that return warnings still produce usable output.
type Warning struct {
	// Line is the 1-based line the warning refers to, or 0 when it
	// applies to the input as a whole.
	Line int

	// Message describes the issue.
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string with
// one warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
