package parse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/musicionary/organice/model"
	"github.com/musicionary/organice/render"
)

var (
	headingRe      = regexp.MustCompile(`^(\*+) (.*)$`)
	tagsRe         = regexp.MustCompile(`^(.*?)((?::[A-Za-z0-9_@#%]+)+:)$`)
	planningKindRe = regexp.MustCompile(`^(SCHEDULED|DEADLINE|CLOSED): `)
	propertyLineRe = regexp.MustCompile(`^:([^\s:]+): (.*)$`)
)

var planningTypes = map[string]model.PlanningType{
	"SCHEDULED": model.PlanningTypeScheduled,
	"DEADLINE":  model.PlanningTypeDeadline,
	"CLOSED":    model.PlanningTypeClosed,
}

// Parser converts Org text into a document model. Parsing is total:
// any input produces a document, with constructs that cannot be
// represented canonically preserved as verbatim text. The zero value
// parses with default settings.
type Parser struct {
	// DontIndent recognizes property and logbook drawers flush left
	// instead of indented one column past the heading stars, mirroring
	// the renderer option of the same name. Planning lines keep their
	// indentation either way.
	DontIndent bool
}

// NewParser creates a parser with default settings.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses src as an Org document.
func Parse(src string) *model.Document {
	return NewParser().Parse(src)
}

// Parse parses src as an Org document. Every lifted construct is
// verified by re-rendering it against the source bytes, so serializing
// the result reproduces src exactly whenever src is empty or ends with
// a newline; a missing final newline is restored on output.
func (p *Parser) Parse(src string) *model.Document {
	run := &parserRun{doc: model.NewDocument()}
	run.header = &render.HeaderRenderer{
		Attributed: render.NewAttributedTextRenderer(),
		DontIndent: p.DontIndent,
	}
	run.document = &render.DocumentRenderer{Header: run.header}

	lines, terminated := splitSourceLines(src)
	rest := run.parsePreamble(lines)
	run.collectKeywords()

	for len(rest) > 0 {
		j := 1
		for j < len(rest) && !headingRe.MatchString(rest[j]) {
			j++
		}
		segTerminated := terminated || j < len(rest)
		run.doc.AddHeader(run.parseHeader(rest[:j], segTerminated))
		rest = rest[j:]
	}
	return run.doc
}

// parserRun carries per-parse state: the document under construction,
// the renderers used to verify lifted constructs and the keyword list
// for headline recognition.
type parserRun struct {
	doc      *model.Document
	header   *render.HeaderRenderer
	document *render.DocumentRenderer
	keywords []string
}

// splitSourceLines splits src into lines without their terminators and
// reports whether the final line was newline-terminated.
func splitSourceLines(src string) ([]string, bool) {
	if src == "" {
		return nil, true
	}
	terminated := strings.HasSuffix(src, "\n")
	lines := strings.Split(src, "\n")
	if terminated {
		lines = lines[:len(lines)-1]
	}
	return lines, terminated
}

// ============================================================================
// Preamble
// ============================================================================

// parsePreamble consumes everything before the first heading and
// returns the remaining lines. A leading run of "#+" lines splits into
// TODO keyword declarations and file config lines; whatever follows
// becomes LinesBeforeHeadings. The candidate preamble is verified by
// re-rendering; on mismatch every line is kept verbatim in
// LinesBeforeHeadings while declared keyword sets stay recognized
// behind a leading default set, which suppresses their serialization.
func (run *parserRun) parsePreamble(lines []string) []string {
	end := 0
	for end < len(lines) && !headingRe.MatchString(lines[end]) {
		end++
	}
	pre := lines[:end]

	cfgEnd := 0
	for cfgEnd < len(pre) && strings.HasPrefix(pre[cfgEnd], "#+") {
		cfgEnd++
	}

	var sets []model.TodoKeywordSet
	var configLines []string
	for _, line := range pre[:cfgEnd] {
		if set, ok := parseTodoConfigLine(line); ok {
			sets = append(sets, set)
		} else {
			configLines = append(configLines, line)
		}
	}
	if len(sets) == 0 {
		sets = []model.TodoKeywordSet{model.DefaultTodoKeywordSet()}
	}

	probe := &model.Document{
		TodoKeywordSets:     sets,
		FileConfigLines:     configLines,
		LinesBeforeHeadings: pre[cfgEnd:],
	}
	if len(pre) > 0 && run.document.Render(probe) != strings.Join(pre, "\n")+"\n" {
		if !sets[0].Default {
			sets = append([]model.TodoKeywordSet{model.DefaultTodoKeywordSet()}, sets...)
		}
		probe = &model.Document{
			TodoKeywordSets:     sets,
			LinesBeforeHeadings: pre,
		}
	}

	run.doc.TodoKeywordSets = probe.TodoKeywordSets
	run.doc.FileConfigLines = probe.FileConfigLines
	run.doc.LinesBeforeHeadings = probe.LinesBeforeHeadings
	return lines[end:]
}

// parseTodoConfigLine parses one "#+TODO:" style declaration. Keywords
// after the "|" bar are completed; without a bar the last keyword is.
// Fast-access selectors like "(d!)" are stripped from keyword names
// while the verbatim line is preserved for serialization.
func parseTodoConfigLine(line string) (model.TodoKeywordSet, bool) {
	var value string
	switch {
	case strings.HasPrefix(line, "#+TODO: "):
		value = line[len("#+TODO: "):]
	case strings.HasPrefix(line, "#+SEQ_TODO: "):
		value = line[len("#+SEQ_TODO: "):]
	case strings.HasPrefix(line, "#+TYP_TODO: "):
		value = line[len("#+TYP_TODO: "):]
	default:
		return model.TodoKeywordSet{}, false
	}

	var before, after []string
	seenBar := false
	for _, word := range strings.Fields(value) {
		if word == "|" {
			seenBar = true
			continue
		}
		word = stripFastAccess(word)
		if seenBar {
			after = append(after, word)
		} else {
			before = append(before, word)
		}
	}

	set := model.TodoKeywordSet{ConfigLine: line}
	set.Keywords = append(before, after...)
	switch {
	case seenBar:
		set.CompletedKeywords = after
	case len(before) > 0:
		set.CompletedKeywords = before[len(before)-1:]
	}
	return set, true
}

func stripFastAccess(keyword string) string {
	if i := strings.IndexByte(keyword, '('); i > 0 && strings.HasSuffix(keyword, ")") {
		return keyword[:i]
	}
	return keyword
}

// collectKeywords caches the document's TODO keywords longest first, so
// that prefix matching never picks a keyword that is itself the prefix
// of a longer declared one.
func (run *parserRun) collectKeywords() {
	run.keywords = run.doc.TodoKeywords()
	sort.SliceStable(run.keywords, func(i, j int) bool {
		return len(run.keywords[i]) > len(run.keywords[j])
	})
}

// ============================================================================
// Headings
// ============================================================================

// parseHeader parses one heading segment: the title line plus every
// line up to the next heading. The planning line, property drawer and
// logbook drawer are lifted in rendering order; the first section that
// fails its verification flows into the body unchanged, together with
// everything after it. As a final guarantee the whole header is
// re-rendered against the segment and demoted to title plus verbatim
// body on any divergence.
func (run *parserRun) parseHeader(seg []string, terminated bool) *model.Header {
	m := headingRe.FindStringSubmatch(seg[0])
	h := &model.Header{NestingLevel: len(m[1])}
	run.parseTitle(h, m[2])

	idx := 1
	if idx < len(seg) {
		if items := run.parsePlanning(h.NestingLevel, seg[idx]); items != nil {
			h.PlanningItems = items
			idx++
		}
	}
	if props, n := run.parsePropertyDrawer(h.NestingLevel, seg[idx:]); n > 0 {
		h.PropertyListItems = props
		idx += n
	}
	if entries, n := run.parseLogBook(h.NestingLevel, seg[idx:]); n > 0 {
		h.LogBookEntries = entries
		idx += n
	}
	h.RawDescription = joinBody(seg[idx:], terminated)
	h.Description = parseAttributed(h.RawDescription, true)
	h.PlanningItems = append(h.PlanningItems, normalPlanningItems(h)...)

	if run.header.Render(h, true) != strings.Join(seg, "\n")+"\n" {
		demoted := &model.Header{NestingLevel: h.NestingLevel, TitleLine: h.TitleLine}
		demoted.RawDescription = joinBody(seg[1:], terminated)
		demoted.Description = parseAttributed(demoted.RawDescription, true)
		demoted.PlanningItems = normalPlanningItems(demoted)
		return demoted
	}
	return h
}

// parseTitle decomposes the part of a title line after the stars. A
// TODO keyword is recognized only when declared and followed by a
// space; a trailing ":tag:tag:" run is lifted with RawTitle retaining
// the whitespace before it, which the renderer emits verbatim.
func (run *parserRun) parseTitle(h *model.Header, rest string) {
	for _, kw := range run.keywords {
		if strings.HasPrefix(rest, kw+" ") {
			h.TitleLine.TodoKeyword = kw
			rest = rest[len(kw)+1:]
			break
		}
	}
	rawTitle := rest
	if m := tagsRe.FindStringSubmatch(rest); m != nil {
		rawTitle = m[1]
		h.TitleLine.Tags = strings.Split(strings.Trim(m[2], ":"), ":")
	}
	h.TitleLine.RawTitle = rawTitle
	h.TitleLine.Title = parseInline(rawTitle)
}

// parsePlanning lifts a planning line: indented exactly one column past
// the heading stars, SCHEDULED/DEADLINE/CLOSED items joined by single
// spaces. Returns nil when the line is not a canonical planning line.
func (run *parserRun) parsePlanning(level int, line string) []model.PlanningItem {
	rest, ok := strings.CutPrefix(line, strings.Repeat(" ", level+1))
	if !ok {
		return nil
	}
	var items []model.PlanningItem
	for rest != "" {
		m := planningKindRe.FindStringSubmatch(rest)
		if m == nil {
			return nil
		}
		rest = rest[len(m[0]):]
		loc := timestampScanRe.FindStringIndex(rest)
		if loc == nil || loc[0] != 0 {
			return nil
		}
		ts, ok := ParseTimestamp(rest[:loc[1]])
		if !ok {
			return nil
		}
		items = append(items, model.PlanningItem{Type: planningTypes[m[1]], Timestamp: ts})
		rest = rest[loc[1]:]
		if rest == "" {
			break
		}
		if rest, ok = strings.CutPrefix(rest, " "); !ok {
			return nil
		}
	}
	if len(items) == 0 {
		return nil
	}

	probe := &model.Header{NestingLevel: level, PlanningItems: items}
	if run.header.Render(probe, false) != line+"\n" {
		return nil
	}
	return items
}

// parsePropertyDrawer lifts a :PROPERTIES: drawer from the start of
// rest, returning the items and the number of lines consumed. Zero
// consumption means no canonical drawer starts there.
func (run *parserRun) parsePropertyDrawer(level int, rest []string) ([]model.PropertyListItem, int) {
	indent := run.drawerIndent(level)
	if len(rest) == 0 || rest[0] != indent+":PROPERTIES:" {
		return nil, 0
	}
	var items []model.PropertyListItem
	for i := 1; i < len(rest); i++ {
		if rest[i] == indent+":END:" {
			if len(items) == 0 {
				return nil, 0
			}
			probe := &model.Header{NestingLevel: level, PropertyListItems: items}
			if run.header.Render(probe, false) != strings.Join(rest[:i+1], "\n")+"\n" {
				return nil, 0
			}
			return items, i + 1
		}
		line, ok := strings.CutPrefix(rest[i], indent)
		if !ok {
			return nil, 0
		}
		m := propertyLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, 0
		}
		items = append(items, model.PropertyListItem{Property: m[1], Value: parseInline(m[2])})
	}
	return nil, 0
}

// parseLogBook lifts a :LOGBOOK: drawer from the start of rest,
// returning the entries and the number of lines consumed. Lines that
// are not canonical clock lines are kept as verbatim raw entries.
func (run *parserRun) parseLogBook(level int, rest []string) ([]model.LogBookEntry, int) {
	indent := run.drawerIndent(level)
	if len(rest) == 0 || rest[0] != indent+":LOGBOOK:" {
		return nil, 0
	}
	var entries []model.LogBookEntry
	for i := 1; i < len(rest); i++ {
		if rest[i] == indent+":END:" {
			if len(entries) == 0 {
				return nil, 0
			}
			probe := &model.Header{NestingLevel: level, LogBookEntries: entries}
			if run.header.Render(probe, false) != strings.Join(rest[:i+1], "\n")+"\n" {
				return nil, 0
			}
			return entries, i + 1
		}
		line, ok := strings.CutPrefix(rest[i], indent)
		if !ok {
			return nil, 0
		}
		entries = append(entries, logBookEntryFromLine(line))
	}
	return nil, 0
}

// logBookEntryFromLine classifies one logbook line. A clock entry is
// lifted only when its timestamps are canonical and, for a closed
// clock, the recorded duration matches the recomputed one.
func logBookEntryFromLine(line string) model.LogBookEntry {
	body, ok := strings.CutPrefix(line, "CLOCK: ")
	if !ok {
		return model.LogBookEntry{Raw: line}
	}
	if lhs, duration, found := strings.Cut(body, " => "); found {
		first, second, ok := parseTimestampRange(lhs)
		if ok && second != nil &&
			render.FormatClockDuration(render.ClockDurationMinutes(first, second)) == duration {
			return model.LogBookEntry{Start: first, End: second}
		}
		return model.LogBookEntry{Raw: line}
	}
	if ts, ok := ParseTimestamp(body); ok {
		return model.LogBookEntry{Start: ts}
	}
	return model.LogBookEntry{Raw: line}
}

func (run *parserRun) drawerIndent(level int) string {
	if run.header.DontIndent {
		return ""
	}
	return strings.Repeat(" ", level+1)
}

// joinBody reassembles body lines into RawDescription. The terminator
// of the final line is restored only when the source carried one; the
// renderer supplies it otherwise.
func joinBody(lines []string, terminated bool) string {
	if len(lines) == 0 {
		return ""
	}
	body := strings.Join(lines, "\n")
	if terminated {
		body += "\n"
	}
	return body
}

// normalPlanningItems derives planning items from active timestamps
// appearing directly in the title or description. They carry type
// TIMESTAMP and exist for agenda-style consumers; the default planning
// filter keeps them off the serialized planning line.
func normalPlanningItems(h *model.Header) []model.PlanningItem {
	var items []model.PlanningItem
	for _, text := range []model.AttributedText{h.TitleLine.Title, h.Description} {
		for _, part := range text {
			ts, ok := part.(*model.TimestampPart)
			if !ok || ts.First == nil || !ts.First.IsActive {
				continue
			}
			items = append(items, model.PlanningItem{Type: model.PlanningTypeNormal, Timestamp: ts.First})
		}
	}
	return items
}
