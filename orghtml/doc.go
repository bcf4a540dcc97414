// Package orghtml exports an Org document model to HTML.
//
// The exporter walks a parsed document and builds an HTML node tree:
// headings become h1-h6 elements (deeper levels are capped at h6) with
// TODO keywords and tags wrapped in classed spans, planning lines and
// property drawers become classed paragraphs and definition lists, and
// body text becomes paragraphs with embedded lists, tables, links and
// timestamps. The tree is serialized with golang.org/x/net/html, so all
// text and attribute values are escaped by the serializer.
//
// Export is one-directional. HTML output is a view of the document, not
// a storage format; serializing back to Org text is the render
// package's job.
//
//	exporter := orghtml.NewExporter()
//	err := exporter.Export(doc, os.Stdout)
package orghtml
