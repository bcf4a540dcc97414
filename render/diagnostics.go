package render

import "fmt"

// Diagnostic describes a non-fatal condition observed during rendering,
// such as an attributed-text part of an unknown type.
type Diagnostic struct {
	// Component names the renderer that observed the condition.
	Component string

	// Message is a human-readable description.
	Message string
}

// String returns the diagnostic as "component: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Component, d.Message)
}

// DiagnosticSink receives diagnostics emitted during a render pass.
// Emitting a diagnostic never changes render output or control flow.
type DiagnosticSink interface {
	Emit(d Diagnostic)
}

// DiagnosticList is a DiagnosticSink that collects diagnostics in
// emission order.
type DiagnosticList struct {
	Diagnostics []Diagnostic
}

// Emit appends d to the list.
func (l *DiagnosticList) Emit(d Diagnostic) {
	l.Diagnostics = append(l.Diagnostics, d)
}

// Len returns the number of collected diagnostics.
func (l *DiagnosticList) Len() int {
	return len(l.Diagnostics)
}
