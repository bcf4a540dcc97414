package model

// PartType identifies the kind of an inline attributed-text part.
type PartType int

const (
	PartTypeUnknown PartType = iota
	PartTypeText
	PartTypeLink
	PartTypeFractionCookie
	PartTypePercentageCookie
	PartTypeTable
	PartTypeList
	PartTypeTimestamp
	PartTypeURL
	PartTypeWWWURL
	PartTypeEmail
	PartTypePhoneNumber
)

func (pt PartType) String() string {
	switch pt {
	case PartTypeText:
		return "Text"
	case PartTypeLink:
		return "Link"
	case PartTypeFractionCookie:
		return "FractionCookie"
	case PartTypePercentageCookie:
		return "PercentageCookie"
	case PartTypeTable:
		return "Table"
	case PartTypeList:
		return "List"
	case PartTypeTimestamp:
		return "Timestamp"
	case PartTypeURL:
		return "URL"
	case PartTypeWWWURL:
		return "WWWURL"
	case PartTypeEmail:
		return "Email"
	case PartTypePhoneNumber:
		return "PhoneNumber"
	default:
		return "Unknown"
	}
}

// Part is the interface implemented by all inline attributed-text parts.
type Part interface {
	Type() PartType
}

// AttributedText is an ordered sequence of inline parts.
type AttributedText []Part

// TextPart is a run of plain text. It may span multiple lines.
type TextPart struct {
	Contents string
}

func (p *TextPart) Type() PartType { return PartTypeText }

// LinkPart is a bracketed Org link. An empty Title means the link was
// written without a description, [[uri]].
type LinkPart struct {
	URI   string
	Title string
}

func (p *LinkPart) Type() PartType { return PartTypeLink }

// FractionCookiePart is a progress cookie such as [2/7]. Either side may be
// the empty string when the source omitted it.
type FractionCookiePart struct {
	Numerator   string
	Denominator string
}

func (p *FractionCookiePart) Type() PartType { return PartTypeFractionCookie }

// PercentageCookiePart is a progress cookie such as [50%]. Percentage is
// the raw digit run, empty when the source omitted it.
type PercentageCookiePart struct {
	Percentage string
}

func (p *PercentageCookiePart) Type() PartType { return PartTypePercentageCookie }

// TablePart embeds a table in attributed text.
type TablePart struct {
	Table *Table
}

func (p *TablePart) Type() PartType { return PartTypeTable }

// ListPart embeds a list in attributed text.
type ListPart struct {
	List *List
}

func (p *ListPart) Type() PartType { return PartTypeList }

// TimestampPart is a timestamp, or a timestamp range when Second is
// non-nil.
type TimestampPart struct {
	First  *Timestamp
	Second *Timestamp
}

func (p *TimestampPart) Type() PartType { return PartTypeTimestamp }

// URLPart is a bare URL with an explicit scheme, stored literally.
type URLPart struct {
	URL string
}

func (p *URLPart) Type() PartType { return PartTypeURL }

// WWWURLPart is a bare www-prefixed URL without a scheme, stored literally.
type WWWURLPart struct {
	URL string
}

func (p *WWWURLPart) Type() PartType { return PartTypeWWWURL }

// EmailPart is a bare e-mail address, stored literally.
type EmailPart struct {
	Address string
}

func (p *EmailPart) Type() PartType { return PartTypeEmail }

// PhoneNumberPart is a bare phone number, stored literally.
type PhoneNumberPart struct {
	Number string
}

func (p *PhoneNumberPart) Type() PartType { return PartTypePhoneNumber }

// PlainText returns the concatenated contents of all text parts. It is a
// convenience for callers that only care about the textual payload, such
// as search indexing; block parts contribute nothing.
func (at AttributedText) PlainText() string {
	var out string
	for _, part := range at {
		switch p := part.(type) {
		case *TextPart:
			out += p.Contents
		case *LinkPart:
			if p.Title != "" {
				out += p.Title
			} else {
				out += p.URI
			}
		case *URLPart:
			out += p.URL
		case *WWWURLPart:
			out += p.URL
		case *EmailPart:
			out += p.Address
		case *PhoneNumberPart:
			out += p.Number
		}
	}
	return out
}
