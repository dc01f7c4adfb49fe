package diag

import "github.com/Razoric480/gdformat/internal/source"

// Diagnostic is a single reported problem, with enough context to
// render a snippet (internal/diagfmt) or build a ParseError.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}
