// Package model provides the intermediate representation (IR) for Org-mode
// documents.
//
// This package defines the user-facing data structures that represent the
// semantic structure of an Org file. The parser produces these types and the
// renderer consumes them, making them the primary API for inspecting or
// programmatically editing documents.
//
// # Document Structure
//
// The [Document] type represents a complete Org file: file-level config
// lines, TODO keyword sets, any text before the first heading, and a flat
// ordered list of headings:
//
//	doc := model.NewDocument()
//	doc.AddHeader(&model.Header{
//	    NestingLevel: 1,
//	    TitleLine:    model.TitleLine{RawTitle: "Inbox"},
//	})
//
// Each [Header] carries its star depth, title line, planning items,
// property and logbook drawers, and body text. The body is stored twice:
// RawDescription holds the verbatim source bytes (the authority for
// serialization), and Description holds the parsed attributed form used for
// width computation and exporters.
//
// # Attributed Text
//
// Inline content is a sequence of typed parts implementing the [Part]
// interface, discriminated by [PartType]. The concrete types are:
//
//   - [TextPart] - plain text runs
//   - [LinkPart] - bracketed links with optional titles
//   - [FractionCookiePart], [PercentageCookiePart] - progress cookies
//   - [TimestampPart] - timestamps and timestamp ranges
//   - [ListPart], [TablePart] - nested block structures
//   - [URLPart], [WWWURLPart], [EmailPart], [PhoneNumberPart] - bare
//     recognized literals
//
// # Tables
//
// The [Table] type keeps both the attributed contents and the raw trimmed
// text of every cell; column count is fixed by row 0. Accessors
// ([Table.ColCount], [Table.GetCell], [Table.SetCell]) are bounds-checked.
//
// # Immutability
//
// All values are treated as read-only snapshots during a render pass; the
// renderer never mutates them, so a single document may be rendered from
// multiple goroutines concurrently.
package model
