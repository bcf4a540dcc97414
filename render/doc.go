// Package render serializes an Org document model back to Org text.
//
// The package guarantees byte-exact output for models produced by the
// parser: rendering the parse of a text reproduces that text. Each
// renderer is pure and reads its input without modifying it, so a single
// renderer value may be shared across goroutines.
//
// # Renderers
//
// Rendering is assembled bottom-up from five components:
//
//   - [AttributedTextRenderer] - inline parts (text, links, cookies,
//     timestamps, bare URLs) and nested block parts
//   - [ListRenderer] - ordered and unordered lists with checkboxes and
//     forced numbering
//   - [TableRenderer] - pipe tables with per-column display alignment
//   - [HeaderRenderer] - one heading: title line, planning line,
//     property and logbook drawers, body
//   - [DocumentRenderer] - file preamble plus every heading in order
//
// Most callers only need [DocumentRenderer]:
//
//	renderer := render.NewDocumentRenderer()
//	text := renderer.Render(doc)
//
// # Alignment
//
// Table columns are aligned on display width, not on raw markup width.
// A cell holding [[https://example.com][home]] occupies four columns of
// display text ("home"), so padding is computed against that width while
// the raw markup is what gets emitted. Widths are measured with
// east-asian-aware rune widths, keeping CJK tables aligned.
//
// # Diagnostics
//
// Renderers never fail. An attributed-text part of an unknown type
// renders as empty text and reports a [Diagnostic] through the
// configured [DiagnosticSink]; everything else renders unconditionally.
package render
