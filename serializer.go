package organice

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/musicionary/organice/internal/textenc"
	"github.com/musicionary/organice/model"
	"github.com/musicionary/organice/orghtml"
	"github.com/musicionary/organice/parse"
	"github.com/musicionary/organice/render"
)

// Serializer provides a fluent interface for parsing, checking and
// serializing Org documents. Each configuration method returns a new
// Serializer instance, making it safe for concurrent use and allowing
// method chaining.
type Serializer struct {
	// Source (one of filename, reader, or pre-loaded text)
	filename string
	reader   io.Reader

	// Input text, once loaded.
	text   string
	loaded bool

	// Configuration
	options serializeOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Serializer with a copy of options.
// This ensures immutability: each chain method returns a new instance.
func (s *Serializer) clone() *Serializer {
	return &Serializer{
		filename: s.filename,
		reader:   s.reader,
		text:     s.text,
		loaded:   s.loaded,
		options:  s.options.clone(),
		err:      s.err,
		warnings: append([]Warning(nil), s.warnings...),
	}
}

// load reads and decodes the input if not already loaded.
func (s *Serializer) load() error {
	if s.loaded {
		return nil
	}

	var raw []byte
	switch {
	case s.reader != nil:
		b, err := io.ReadAll(s.reader)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		raw = b
	case s.filename != "":
		b, err := os.ReadFile(s.filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", s.filename, err)
		}
		raw = b
	default:
		return fmt.Errorf("no input specified")
	}

	s.text = textenc.Normalize(raw)
	if s.text != string(raw) {
		s.warn(0, "input transcoded to UTF-8")
	}
	s.loaded = true
	return nil
}

func (s *Serializer) warn(line int, message string) {
	s.warnings = append(s.warnings, Warning{Line: line, Message: message})
}

// ============================================================================
// Configuration Methods (return new Serializer instance)
// ============================================================================

// DontIndent renders property and logbook drawers flush left instead of
// indented one column past the heading stars. The parser mirrors the
// setting, so flush drawers in the input lift into the model and
// round-trip checks keep passing.
//
// Example:
//
//	out, _, err := organice.Open("notes.org").DontIndent().Render()
func (s *Serializer) DontIndent() *Serializer {
	ns := s.clone()
	ns.options.dontIndent = true
	return ns
}

// PlanningFilter selects which planning items appear on rendered
// planning lines. The default keeps explicit SCHEDULED, DEADLINE and
// CLOSED items and suppresses items derived from plain body timestamps.
// A more permissive filter makes output diverge from the input, since
// derived items then render on planning lines the input never had.
//
// Example:
//
//	out, _, err := organice.Open("agenda.org").
//	    PlanningFilter(func(model.PlanningItem) bool { return true }).
//	    Render()
func (s *Serializer) PlanningFilter(filter render.PlanningFilter) *Serializer {
	ns := s.clone()
	ns.options.planning = filter
	return ns
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document parses the input and returns the document model.
//
// Example:
//
//	doc, warnings, err := organice.Open("notes.org").Document()
func (s *Serializer) Document() (*model.Document, []Warning, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	if err := s.load(); err != nil {
		return nil, nil, err
	}
	return s.parser().Parse(s.text), s.warnings, nil
}

// Render parses the input and serializes it back to Org text. Under
// default options the output equals newline-terminated input byte for
// byte; input missing its final newline is normalized with one.
//
// Example:
//
//	text, warnings, err := organice.Open("notes.org").Render()
func (s *Serializer) Render() (string, []Warning, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	if err := s.load(); err != nil {
		return "", nil, err
	}
	doc := s.parser().Parse(s.text)
	return s.renderer().Render(doc), s.warnings, nil
}

// HTML parses the input and exports it as an HTML fragment.
//
// Example:
//
//	page, warnings, err := organice.Open("notes.org").HTML()
func (s *Serializer) HTML() (string, []Warning, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	if err := s.load(); err != nil {
		return "", nil, err
	}
	doc := s.parser().Parse(s.text)
	config := orghtml.DefaultConfig()
	config.Planning = s.options.planning
	out, err := orghtml.NewExporterWithConfig(config).ExportString(doc)
	if err != nil {
		return "", s.warnings, err
	}
	return out, s.warnings, nil
}

// Check verifies that parsing and re-serializing the input reproduces
// it byte for byte. Input missing its final newline is compared against
// the newline-normalized form, with a warning. On divergence the
// returned warnings name the first differing line.
//
// Example:
//
//	ok, warnings, err := organice.Open("notes.org").Check()
func (s *Serializer) Check() (bool, []Warning, error) {
	if s.err != nil {
		return false, nil, s.err
	}
	if err := s.load(); err != nil {
		return false, nil, err
	}

	want := s.text
	if want != "" && !strings.HasSuffix(want, "\n") {
		s.warn(0, "input missing final newline; comparing against normalized input")
		want += "\n"
	}
	got := s.renderer().Render(s.parser().Parse(s.text))
	if got == want {
		return true, s.warnings, nil
	}
	s.warn(divergenceLine(want, got), "serialized output diverges from input")
	return false, s.warnings, nil
}

// parser builds a parser matching the configured options.
func (s *Serializer) parser() *parse.Parser {
	return &parse.Parser{DontIndent: s.options.dontIndent}
}

// renderer builds a document renderer matching the configured options.
func (s *Serializer) renderer() *render.DocumentRenderer {
	return &render.DocumentRenderer{Header: &render.HeaderRenderer{
		Attributed: render.NewAttributedTextRenderer(),
		DontIndent: s.options.dontIndent,
		Planning:   s.options.planning,
	}}
}

// divergenceLine returns the 1-based number of the first line where the
// two texts differ.
func divergenceLine(want, got string) int {
	wantLines := strings.Split(want, "\n")
	gotLines := strings.Split(got, "\n")
	for i := 0; i < len(wantLines) && i < len(gotLines); i++ {
		if wantLines[i] != gotLines[i] {
			return i + 1
		}
	}
	return min(len(wantLines), len(gotLines)) + 1
}
