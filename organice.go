// Package organice provides lossless parsing and serialization of Org
// mode documents through a fluent API.
//
// Basic usage:
//
//	text, warnings, err := organice.Open("notes.org").Render()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", organice.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := organice.Open("notes.org").
//	    DontIndent().
//	    Render()
//
// Serialization is byte-exact: for any newline-terminated file,
// rendering the parsed document reproduces the file. Check verifies
// that property directly:
//
//	ok, warnings, err := organice.Open("notes.org").Check()
//
// For advanced use cases the lower-level model, parse, render and
// orghtml packages are also available.
package organice

import (
	"io"

	"github.com/musicionary/organice/model"
	"github.com/musicionary/organice/render"
)

// Open prepares an Org file for processing and returns a Serializer for
// fluent configuration. The file is read lazily by the first terminal
// operation, so errors about missing files surface there.
//
// Example:
//
//	doc, warnings, err := organice.Open("notes.org").Document()
func Open(filename string) *Serializer {
	return &Serializer{
		filename: filename,
		options:  defaultSerializeOptions(),
	}
}

// FromString creates a Serializer reading from the given text. The text
// is used exactly as given, without encoding normalization.
//
// Example:
//
//	ok, _, err := organice.FromString("* TODO Ship\n").Check()
func FromString(text string) *Serializer {
	return &Serializer{
		text:    text,
		loaded:  true,
		options: defaultSerializeOptions(),
	}
}

// FromReader creates a Serializer reading from r. The reader is drained
// by the first terminal operation and its bytes are decoded the same
// way files are.
//
// Example:
//
//	out, _, err := organice.FromReader(os.Stdin).Render()
func FromReader(r io.Reader) *Serializer {
	return &Serializer{
		reader:  r,
		options: defaultSerializeOptions(),
	}
}

// RenderDocument serializes a document model to Org text with default
// rendering. It is a convenience for callers that build or modify
// models directly instead of parsing them from text.
//
// Example:
//
//	text := organice.RenderDocument(doc)
func RenderDocument(doc *model.Document) string {
	return render.NewDocumentRenderer().Render(doc)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	page := organice.Must(orghtml.NewExporter().ExportString(doc))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to a terminal operation such
// as Render() or HTML() and panics if the error is non-nil. It discards
// warnings and returns just the value. It is intended for use in
// scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	text := organice.MustText(organice.Open("notes.org").Render())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
