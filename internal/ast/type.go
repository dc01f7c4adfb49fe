package ast

import "github.com/Razoric480/gdformat/internal/source"

// TypeRef is an identifier, optionally with one generic argument
// (`Array[int]`; spec §3 describes at most one generic argument). A
// second argument, as in `Dictionary[String, int]`, is not accepted:
// parseTypeRef reports an unexpected-token error at the comma.
type TypeRef struct {
	Name    source.StringID
	Generic *TypeRef
	Span    source.Span
}
