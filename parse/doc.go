// Package parse builds an Org document model from Org text.
//
// The parser is total: it accepts any input and never returns an error.
// Its defining contract is shared with the render package: rendering a
// parsed document reproduces the input byte for byte for every
// newline-terminated text.
//
// # Canonical lifting
//
// Structure is lifted only when it is canonical, meaning the render
// package would serialize the lifted model back to exactly the consumed
// bytes. Every candidate construct (a planning line, a drawer, a table,
// a list, an inline timestamp) is verified by re-rendering it; when the
// bytes differ, the construct is demoted to verbatim raw text instead.
// A heading whose planning line fails to lift keeps that line and
// everything after it in its raw body, preserving order.
//
// Lifting granularity is all-or-nothing per construct: a table with one
// misaligned column stays raw text in its entirety rather than lifting
// partially.
//
// # Usage
//
//	doc := parse.Parse(text)
//	out := render.NewDocumentRenderer().Render(doc)
//	// out == text for newline-terminated input
package parse
