package diag

// Code identifies the kind of a diagnostic. Only the lexer and parser
// ever raise user-facing codes (spec §7); the normalizer and layouter
// must never produce one in a correct build, so CodeInternal exists only
// to surface a bug rather than to silently drop output.
type Code uint16

const (
	CodeNone Code = iota

	// Lexer errors.
	CodeUnterminatedString
	CodeInvalidIndent
	CodeUnexpectedChar

	// Parser errors.
	CodeUnexpectedToken
	CodeTruncatedConstruct

	// Should never escape a release build; indicates a bug in the
	// normalizer or layouter, which are specified never to fail.
	CodeInternal
)

func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeUnterminatedString:
		return "unterminated-string"
	case CodeInvalidIndent:
		return "invalid-indent"
	case CodeUnexpectedChar:
		return "unexpected-char"
	case CodeUnexpectedToken:
		return "unexpected-token"
	case CodeTruncatedConstruct:
		return "truncated-construct"
	case CodeInternal:
		return "internal"
	default:
		return "unknown"
	}
}
