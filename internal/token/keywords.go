package token

var keywords = map[string]Kind{
	"var":        KwVar,
	"const":      KwConst,
	"signal":     KwSignal,
	"enum":       KwEnum,
	"func":       KwFunc,
	"class_name": KwClassName,
	"extends":    KwExtends,
	"class":      KwClass,
	"if":         KwIf,
	"elif":       KwElif,
	"else":       KwElse,
	"while":      KwWhile,
	"for":        KwFor,
	"in":         KwIn,
	"match":      KwMatch,
	"return":     KwReturn,
	"pass":       KwPass,
	"break":      KwBreak,
	"continue":   KwContinue,
	"breakpoint": KwBreakpoint,
	"assert":     KwAssert,
	"await":      KwAwait,
	"static":     KwStatic,
	"is":         KwIs,
	"as":         KwAs,
	"and":        KwAnd,
	"or":         KwOr,
	"not":        KwNot,
	"self":       KwSelf,
	"super":      KwSuper,
	"preload":    KwPreload,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
}

// LookupKeyword reports whether ident is a reserved word and, if so,
// its Kind. Keywords are case-sensitive; only the exact lowercase
// spelling is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
