package ast

import "github.com/Razoric480/gdformat/internal/source"

// Annotation is `@name` or `@name(args...)`, e.g. `@export`, `@icon("x.png")`,
// `@tool`. The printer places file-scope ones after the class_name/
// extends headers; the normalizer marks same-line eligibility (spec §4.3).
type Annotation struct {
	Name source.StringID
	Args []ExprID
	Span source.Span
	Comments
	// SameLine is set by the normalizer on the last annotation above a
	// declaration when it has no arguments and no trailing comment,
	// marking it eligible to share the declaration's line (spec §4.3).
	// Whether it does is decided by the printer's Group when the line
	// fits.
	SameLine bool
}

// Parameter is a function/signal/lambda parameter: name, optional type,
// optional default value.
type Parameter struct {
	Name    source.StringID
	Type    *TypeRef
	Default ExprID // NoExprID if there is no default
	Span    source.Span
	Comments
}
