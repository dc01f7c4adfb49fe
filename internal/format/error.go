package format

import (
	"fmt"

	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/source"
)

// ErrorKind identifies the category of a ParseError (spec §7).
type ErrorKind uint8

const (
	ErrUnterminatedString ErrorKind = iota
	ErrInvalidIndent
	ErrUnexpectedChar
	ErrUnexpectedToken
	// ErrTruncatedConstruct completes the diag.Code taxonomy but Format
	// never returns it: a CodeTruncatedConstruct diagnostic is the one
	// recoverable case and is handled by passing the construct's tail
	// through unchanged (see Format in format.go) instead of surfacing
	// as a ParseError.
	ErrTruncatedConstruct
	// ErrInternal marks a normalizer/layouter failure, which spec §7
	// says must never happen in a correct build; Format returning this
	// indicates a bug, not a malformed input.
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnterminatedString:
		return "unterminated-string"
	case ErrInvalidIndent:
		return "invalid-indent"
	case ErrUnexpectedChar:
		return "unexpected-char"
	case ErrUnexpectedToken:
		return "unexpected-token"
	case ErrTruncatedConstruct:
		return "truncated-construct"
	case ErrInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// ParseError is the sum-type error spec §6/§7 describes: Ok(output) |
// Err(kind, span, msg). Format returns the unchanged source alongside
// one of these rather than partial output.
type ParseError struct {
	Kind    ErrorKind
	Span    source.Span
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// codeToKind maps a lexer/parser diag.Code onto the public ErrorKind a
// caller of Format sees.
func codeToKind(c diag.Code) ErrorKind {
	switch c {
	case diag.CodeUnterminatedString:
		return ErrUnterminatedString
	case diag.CodeInvalidIndent:
		return ErrInvalidIndent
	case diag.CodeUnexpectedChar:
		return ErrUnexpectedChar
	case diag.CodeUnexpectedToken:
		return ErrUnexpectedToken
	case diag.CodeTruncatedConstruct:
		return ErrTruncatedConstruct
	default:
		return ErrInternal
	}
}

func newParseError(d diag.Diagnostic) *ParseError {
	return &ParseError{Kind: codeToKind(d.Code), Span: d.Primary, Message: d.Message}
}
