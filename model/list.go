package model

// CheckboxState represents the state of a list-item checkbox.
type CheckboxState int

const (
	CheckboxUnchecked CheckboxState = iota
	CheckboxChecked
	CheckboxPartial
)

func (cs CheckboxState) String() string {
	switch cs {
	case CheckboxChecked:
		return "checked"
	case CheckboxPartial:
		return "partial"
	default:
		return "unchecked"
	}
}

// List represents an ordered or unordered plain list.
type List struct {
	Items []*ListItem

	IsOrdered bool

	// BulletCharacter is "-", "+" or "*" for unordered lists. Unused for
	// ordered lists.
	BulletCharacter string

	// NumberTerminatorCharacter is "." or ")" for ordered lists.
	NumberTerminatorCharacter string
}

// ListItem is a single entry of a List. TitleLine is the text on the
// bullet line itself; Contents is everything on the item's continuation
// lines, stored without the item indentation.
type ListItem struct {
	TitleLine AttributedText
	Contents  AttributedText

	IsCheckbox    bool
	CheckboxState CheckboxState

	// ForceNumber resets ordered-list numbering via an [@N] cookie.
	// Zero means no cookie.
	ForceNumber int
}

// ItemCount returns the number of items in the list.
func (l *List) ItemCount() int { return len(l.Items) }
