package parse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/musicionary/organice/model"
	"github.com/musicionary/organice/render"
)

var (
	linkRe     = regexp.MustCompile(`\[\[([^\[\]\n]+)\](?:\[([^\[\]\n]+)\])?\]`)
	fractionRe = regexp.MustCompile(`\[(\d*)/(\d*)\]`)
	percentRe  = regexp.MustCompile(`\[(\d*)%\]`)
	urlRe      = regexp.MustCompile(`(?:https?|ftp|file)://[^\s<>\[\]]+`)
	wwwRe      = regexp.MustCompile(`\bwww\.[^\s<>\[\]]+`)
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`\+\d{7,}`)
)

// matchKind orders the inline patterns. When two patterns match at the
// same offset the smaller kind wins.
type matchKind int

const (
	matchLink matchKind = iota
	matchTimestamp
	matchFraction
	matchPercent
	matchURL
	matchWWW
	matchEmail
	matchPhone
)

var inlineMatchers = []struct {
	kind matchKind
	re   *regexp.Regexp
}{
	{matchLink, linkRe},
	{matchTimestamp, timestampScanRe},
	{matchFraction, fractionRe},
	{matchPercent, percentRe},
	{matchURL, urlRe},
	{matchWWW, wwwRe},
	{matchEmail, emailRe},
	{matchPhone, phoneRe},
}

type inlineMatch struct {
	kind       matchKind
	start, end int
}

// parseInline splits s into attributed parts: recognized inline
// constructs plus plain-text runs between them. A construct is lifted
// only when re-rendering it reproduces the matched bytes; otherwise its
// bytes stay in the surrounding text.
func parseInline(s string) model.AttributedText {
	if s == "" {
		return nil
	}

	var matches []inlineMatch
	for _, m := range inlineMatchers {
		for _, loc := range m.re.FindAllStringIndex(s, -1) {
			matches = append(matches, inlineMatch{m.kind, loc[0], loc[1]})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].kind < matches[j].kind
	})

	var parts model.AttributedText
	pos := 0
	textStart := 0
	for _, m := range matches {
		if m.start < pos {
			continue
		}
		part, end := liftInlinePart(s, m)
		if part == nil {
			continue
		}
		if m.start > textStart {
			parts = append(parts, &model.TextPart{Contents: s[textStart:m.start]})
		}
		parts = append(parts, part)
		pos = end
		textStart = end
	}
	if textStart < len(s) {
		parts = append(parts, &model.TextPart{Contents: s[textStart:]})
	}
	return parts
}

// liftInlinePart builds the part for one match and verifies it by
// re-rendering. It returns the part and the end offset of the consumed
// bytes, which exceeds the match end for timestamp ranges. A nil part
// means the match is not canonical and its bytes stay plain text.
func liftInlinePart(s string, m inlineMatch) (model.Part, int) {
	matched := s[m.start:m.end]
	var part model.Part
	end := m.end

	switch m.kind {
	case matchLink:
		g := linkRe.FindStringSubmatch(matched)
		part = &model.LinkPart{URI: g[1], Title: g[2]}
	case matchTimestamp:
		part, end = liftTimestampPart(s, m)
	case matchFraction:
		g := fractionRe.FindStringSubmatch(matched)
		part = &model.FractionCookiePart{Numerator: g[1], Denominator: g[2]}
	case matchPercent:
		g := percentRe.FindStringSubmatch(matched)
		part = &model.PercentageCookiePart{Percentage: g[1]}
	case matchURL:
		part = &model.URLPart{URL: matched}
	case matchWWW:
		part = &model.WWWURLPart{URL: matched}
	case matchEmail:
		part = &model.EmailPart{Address: matched}
	case matchPhone:
		part = &model.PhoneNumberPart{Number: matched}
	}
	if part == nil {
		return nil, 0
	}

	r := render.NewAttributedTextRenderer()
	if r.Render(model.AttributedText{part}) != s[m.start:end] {
		return nil, 0
	}
	return part, end
}

// liftTimestampPart builds a timestamp part, extending the match over a
// "--" separated second timestamp when one follows directly. A range
// whose second half is not canonical falls back to the first timestamp
// alone.
func liftTimestampPart(s string, m inlineMatch) (model.Part, int) {
	first := timestampFromMatch(timestampScanRe.FindStringSubmatch(s[m.start:m.end]))
	if render.FormatTimestamp(first) != s[m.start:m.end] {
		return nil, 0
	}

	rest := s[m.end:]
	if strings.HasPrefix(rest, "--") {
		if loc := timestampScanRe.FindStringIndex(rest[2:]); loc != nil && loc[0] == 0 {
			secondText := rest[2 : 2+loc[1]]
			second := timestampFromMatch(timestampScanRe.FindStringSubmatch(secondText))
			if render.FormatTimestamp(second) == secondText {
				return &model.TimestampPart{First: first, Second: second}, m.end + 2 + loc[1]
			}
		}
	}
	return &model.TimestampPart{First: first}, m.end
}

// parseAttributed parses text into attributed parts. With blocks
// enabled, canonical tables and lists are lifted as nested parts; plain
// segments between them are inline-parsed. Titles, property values and
// table cells parse with blocks disabled.
func parseAttributed(text string, blocks bool) model.AttributedText {
	if text == "" {
		return nil
	}
	if !blocks {
		return parseInline(text)
	}

	terminated := strings.HasSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if terminated {
		lines = lines[:len(lines)-1]
	}

	var parts model.AttributedText
	var textLines []string
	flush := func(blockFollows bool) {
		if len(textLines) == 0 {
			return
		}
		s := strings.Join(textLines, "\n")
		if blockFollows || terminated {
			s += "\n"
		}
		if s != "" {
			parts = append(parts, parseInline(s)...)
		}
		textLines = textLines[:0]
	}

	i := 0
	for i < len(lines) {
		if table, n := liftTable(lines, i); table != nil {
			flush(true)
			parts = append(parts, &model.TablePart{Table: table})
			i += n
			continue
		}
		if list, n := liftList(lines, i); list != nil {
			flush(true)
			parts = append(parts, &model.ListPart{List: list})
			i += n
			continue
		}
		textLines = append(textLines, lines[i])
		i++
	}
	flush(false)
	return parts
}
