package orghtml

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/musicionary/organice/model"
	"github.com/musicionary/organice/render"
)

// Config holds configuration options for HTML export.
type Config struct {
	// FullDocument wraps the exported fragment in a complete HTML
	// document with a doctype, a charset declaration and a title.
	FullDocument bool

	// Title sets the <title> of a full document export. When empty, the
	// #+TITLE config value of the exported document is used instead.
	Title string

	// ClassPrefix is prepended to every generated class attribute, so
	// the default prefix yields classes such as "org-todo" and
	// "org-tag".
	ClassPrefix string

	// Planning selects the planning items emitted under each heading.
	// Nil means render.DefaultPlanningFilter, which keeps explicit
	// SCHEDULED, DEADLINE and CLOSED items and drops items derived from
	// plain body timestamps.
	Planning render.PlanningFilter
}

// DefaultConfig returns sensible defaults for fragment export.
func DefaultConfig() Config {
	return Config{
		ClassPrefix: "org-",
	}
}

// DocumentConfig returns a configuration that produces a standalone
// HTML document instead of a fragment.
func DocumentConfig() Config {
	config := DefaultConfig()
	config.FullDocument = true
	return config
}

// Exporter converts Org document models to HTML.
type Exporter struct {
	config Config
}

// NewExporter creates a new exporter with default configuration.
func NewExporter() *Exporter {
	return &Exporter{config: DefaultConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration.
func NewExporterWithConfig(config Config) *Exporter {
	return &Exporter{config: config}
}

// Export writes the document as HTML to w.
func (e *Exporter) Export(doc *model.Document, w io.Writer) error {
	return html.Render(w, e.buildTree(doc))
}

// ExportString renders the document to an HTML string.
func (e *Exporter) ExportString(doc *model.Document) (string, error) {
	var sb strings.Builder
	if err := e.Export(doc, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ===========================================================================
// Tree construction
// ===========================================================================

func (e *Exporter) buildTree(doc *model.Document) *html.Node {
	fragment := element("div", attr("class", e.class("document")))
	e.appendPreamble(fragment, doc)
	for _, h := range doc.Headers {
		e.appendHeader(fragment, doc, h)
	}
	if !e.config.FullDocument {
		return fragment
	}

	head := element("head")
	head.AppendChild(element("meta", attr("charset", "utf-8")))
	if title := e.documentTitle(doc); title != "" {
		t := element("title")
		t.AppendChild(textNode(title))
		head.AppendChild(t)
	}
	body := element("body")
	body.AppendChild(fragment)
	page := element("html")
	page.AppendChild(head)
	page.AppendChild(body)

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root.AppendChild(page)
	return root
}

func (e *Exporter) documentTitle(doc *model.Document) string {
	if e.config.Title != "" {
		return e.config.Title
	}
	if title, ok := doc.ConfigValue("TITLE"); ok {
		return title
	}
	return ""
}

// appendPreamble emits the text lines preceding the first heading as
// paragraphs. Config lines carry no content and are skipped.
func (e *Exporter) appendPreamble(parent *html.Node, doc *model.Document) {
	var para []string
	flush := func() {
		if len(para) == 0 {
			return
		}
		p := element("p")
		p.AppendChild(textNode(strings.Join(para, "\n")))
		parent.AppendChild(p)
		para = nil
	}
	for _, line := range doc.LinesBeforeHeadings {
		if line == "" || strings.HasPrefix(line, "#+") {
			flush()
			continue
		}
		para = append(para, line)
	}
	flush()
}

func (e *Exporter) appendHeader(parent *html.Node, doc *model.Document, h *model.Header) {
	heading := element(headingTag(h.NestingLevel))
	if kw := h.TitleLine.TodoKeyword; kw != "" {
		name := "todo"
		if doc.IsCompletedKeyword(kw) {
			name = "done"
		}
		span := element("span", attr("class", e.class(name)))
		span.AppendChild(textNode(kw))
		heading.AppendChild(span)
		heading.AppendChild(textNode(" "))
	}
	e.appendInline(heading, h.TitleLine.Title)
	for _, tag := range h.TitleLine.Tags {
		heading.AppendChild(textNode(" "))
		span := element("span", attr("class", e.class("tag")))
		span.AppendChild(textNode(tag))
		heading.AppendChild(span)
	}
	parent.AppendChild(heading)

	e.appendPlanning(parent, h)
	e.appendProperties(parent, h)
	e.appendLogBook(parent, h)
	e.appendBlocks(parent, h.Description)
}

func (e *Exporter) appendPlanning(parent *html.Node, h *model.Header) {
	filter := e.config.Planning
	if filter == nil {
		filter = render.DefaultPlanningFilter
	}
	p := element("p", attr("class", e.class("planning")))
	for _, item := range h.PlanningItems {
		if !filter(item) {
			continue
		}
		if p.FirstChild != nil {
			p.AppendChild(textNode(" "))
		}
		kw := element("span", attr("class", e.class("planning-keyword")))
		kw.AppendChild(textNode(item.Type.String() + ":"))
		p.AppendChild(kw)
		p.AppendChild(textNode(" "))
		p.AppendChild(e.timestampNode(item.Timestamp, nil))
	}
	if p.FirstChild != nil {
		parent.AppendChild(p)
	}
}

func (e *Exporter) appendProperties(parent *html.Node, h *model.Header) {
	if len(h.PropertyListItems) == 0 {
		return
	}
	dl := element("dl", attr("class", e.class("properties")))
	for _, item := range h.PropertyListItems {
		dt := element("dt")
		dt.AppendChild(textNode(item.Property))
		dl.AppendChild(dt)
		dd := element("dd")
		e.appendInline(dd, item.Value)
		dl.AppendChild(dd)
	}
	parent.AppendChild(dl)
}

func (e *Exporter) appendLogBook(parent *html.Node, h *model.Header) {
	if len(h.LogBookEntries) == 0 {
		return
	}
	ul := element("ul", attr("class", e.class("logbook")))
	for _, entry := range h.LogBookEntries {
		text := logBookText(entry)
		if text == "" {
			continue
		}
		li := element("li")
		li.AppendChild(textNode(text))
		ul.AppendChild(li)
	}
	if ul.FirstChild != nil {
		parent.AppendChild(ul)
	}
}

func logBookText(entry model.LogBookEntry) string {
	if !entry.IsClock() {
		return entry.Raw
	}
	text := "CLOCK: " + render.FormatTimestampRange(entry.Start, entry.End)
	if entry.End != nil {
		minutes := render.ClockDurationMinutes(entry.Start, entry.End)
		text += " => " + render.FormatClockDuration(minutes)
	}
	return text
}

// ===========================================================================
// Attributed text
// ===========================================================================

// appendBlocks converts attributed text to block-level HTML. Runs of
// inline parts accumulate into paragraphs, blank lines inside text
// parts start a new paragraph, and list and table parts become block
// elements of their own.
func (e *Exporter) appendBlocks(parent *html.Node, at model.AttributedText) {
	var para *html.Node
	ensure := func() *html.Node {
		if para == nil {
			para = element("p")
			parent.AppendChild(para)
		}
		return para
	}
	for _, part := range at {
		switch p := part.(type) {
		case *model.TextPart:
			for i, chunk := range strings.Split(p.Contents, "\n\n") {
				if i > 0 {
					para = nil
				}
				if strings.TrimSpace(chunk) == "" {
					continue
				}
				ensure().AppendChild(textNode(chunk))
			}
		case *model.ListPart:
			para = nil
			parent.AppendChild(e.listNode(p.List))
		case *model.TablePart:
			para = nil
			parent.AppendChild(e.tableNode(p.Table))
		default:
			e.appendInlinePart(ensure(), part)
		}
	}
}

// appendInline emits inline parts only, for contexts such as headings
// and table cells where block-level children are not valid. Block parts
// are skipped.
func (e *Exporter) appendInline(parent *html.Node, at model.AttributedText) {
	for _, part := range at {
		switch part.(type) {
		case *model.ListPart, *model.TablePart:
			continue
		}
		e.appendInlinePart(parent, part)
	}
}

func (e *Exporter) appendInlinePart(parent *html.Node, part model.Part) {
	switch p := part.(type) {
	case *model.TextPart:
		parent.AppendChild(textNode(p.Contents))
	case *model.LinkPart:
		title := p.Title
		if title == "" {
			title = p.URI
		}
		parent.AppendChild(anchor(p.URI, title))
	case *model.URLPart:
		parent.AppendChild(anchor(p.URL, p.URL))
	case *model.WWWURLPart:
		parent.AppendChild(anchor("https://"+p.URL, p.URL))
	case *model.EmailPart:
		parent.AppendChild(anchor("mailto:"+p.Address, p.Address))
	case *model.PhoneNumberPart:
		parent.AppendChild(anchor("tel:"+p.Number, p.Number))
	case *model.FractionCookiePart:
		parent.AppendChild(e.cookieNode("[" + p.Numerator + "/" + p.Denominator + "]"))
	case *model.PercentageCookiePart:
		parent.AppendChild(e.cookieNode("[" + p.Percentage + "%]"))
	case *model.TimestampPart:
		parent.AppendChild(e.timestampNode(p.First, p.Second))
	}
}

func (e *Exporter) timestampNode(first, second *model.Timestamp) *html.Node {
	span := element("span", attr("class", e.class("timestamp")))
	span.AppendChild(textNode(render.FormatTimestampRange(first, second)))
	return span
}

func (e *Exporter) cookieNode(text string) *html.Node {
	span := element("span", attr("class", e.class("cookie")))
	span.AppendChild(textNode(text))
	return span
}

// ===========================================================================
// Block parts
// ===========================================================================

func (e *Exporter) listNode(list *model.List) *html.Node {
	tag := "ul"
	if list.IsOrdered {
		tag = "ol"
	}
	node := element(tag)
	for _, item := range list.Items {
		li := element("li")
		if item.ForceNumber > 0 {
			li.Attr = append(li.Attr, attr("value", strconv.Itoa(item.ForceNumber)))
		}
		if item.IsCheckbox {
			li.AppendChild(checkboxNode(item.CheckboxState))
			li.AppendChild(textNode(" "))
		}
		e.appendInline(li, item.TitleLine)
		if len(item.Contents) > 0 {
			e.appendBlocks(li, item.Contents)
		}
		node.AppendChild(li)
	}
	return node
}

func checkboxNode(state model.CheckboxState) *html.Node {
	box := element("input", attr("type", "checkbox"), attr("disabled", ""))
	if state == model.CheckboxChecked {
		box.Attr = append(box.Attr, attr("checked", ""))
	}
	return box
}

func (e *Exporter) tableNode(table *model.Table) *html.Node {
	node := element("table")
	tbody := element("tbody")
	for _, row := range table.Rows {
		tr := element("tr")
		for _, cell := range row.Cells {
			td := element("td")
			e.appendInline(td, cell.Contents)
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	node.AppendChild(tbody)
	return node
}

// ===========================================================================
// Node helpers
// ===========================================================================

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, Attr: attrs}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func anchor(href, text string) *html.Node {
	a := element("a", attr("href", href))
	a.AppendChild(textNode(text))
	return a
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func (e *Exporter) class(name string) string {
	return e.config.ClassPrefix + name
}

// headingTag maps a heading's nesting level to an HTML heading tag.
// HTML stops at h6, so deeper headings all render as h6.
func headingTag(level int) string {
	if level > 6 {
		level = 6
	}
	return "h" + strconv.Itoa(level)
}
