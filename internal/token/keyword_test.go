package token

import "testing"

func TestLookupKeywordPositive(t *testing.T) {
	cases := map[string]Kind{
		"var": KwVar, "func": KwFunc, "class_name": KwClassName,
		"extends": KwExtends, "match": KwMatch, "await": KwAwait,
		"is": KwIs, "self": KwSelf, "super": KwSuper, "preload": KwPreload,
		"true": KwTrue, "false": KwFalse, "null": KwNull,
	}
	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeywordNegative(t *testing.T) {
	notKw := []string{
		"Var", "FUNC", "Await", // case matters; only the lowercase spelling is a keyword
		"tool", "export", "onready", // annotation names, not keywords
		"identifier", "toString",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
