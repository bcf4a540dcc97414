package render

import (
	"fmt"
	"strings"

	"github.com/musicionary/organice/model"
)

// ListRenderer renders a list to indented Org text. Output never carries
// a leading or trailing newline; items are separated by single newlines.
type ListRenderer struct {
	// Attributed renders item title lines and contents.
	Attributed *AttributedTextRenderer
}

// NewListRenderer creates a renderer with a default attributed-text
// renderer.
func NewListRenderer() *ListRenderer {
	return &ListRenderer{Attributed: NewAttributedTextRenderer()}
}

// Render serializes list. Ordered items are numbered from 1; an item
// with a ForceNumber resets the counter to that value and carries a
// literal [@N] cookie after its number. Unordered items with a "*"
// bullet are shifted right by one space so they cannot be read as
// headings.
func (r *ListRenderer) Render(list *model.List) string {
	contentsIndent := "  "
	if !list.IsOrdered && list.BulletCharacter == "*" {
		contentsIndent = "   "
	}

	entries := make([]string, 0, len(list.Items))
	counter := 1
	for _, item := range list.Items {
		prefix := r.itemPrefix(list, item, &counter)
		entry := prefix + " " + r.Attributed.Render(item.TitleLine)
		if contents := r.Attributed.Render(item.Contents); contents != "" {
			entry += "\n" + indentLines(contents, contentsIndent)
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, "\n")
}

func (r *ListRenderer) itemPrefix(list *model.List, item *model.ListItem, counter *int) string {
	var prefix string
	if list.IsOrdered {
		if item.ForceNumber > 0 {
			*counter = item.ForceNumber
		}
		prefix = fmt.Sprintf("%d%s", *counter, list.NumberTerminatorCharacter)
		if item.ForceNumber > 0 {
			prefix += fmt.Sprintf(" [@%d]", item.ForceNumber)
		}
		*counter++
	} else {
		prefix = list.BulletCharacter
		if prefix == "*" {
			prefix = " *"
		}
	}
	if item.IsCheckbox {
		prefix += " " + checkboxText(item.CheckboxState)
	}
	return prefix
}

func checkboxText(state model.CheckboxState) string {
	switch state {
	case model.CheckboxChecked:
		return "[X]"
	case model.CheckboxPartial:
		return "[-]"
	default:
		return "[ ]"
	}
}

// indentLines prefixes every non-blank line of text with indent. Blank
// lines stay empty so no trailing whitespace is introduced.
func indentLines(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
