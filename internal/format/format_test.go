package format_test

import (
	"testing"

	"github.com/Razoric480/gdformat/internal/format"
	"github.com/Razoric480/gdformat/internal/fmtconfig"
)

func formatEquals(t *testing.T, src, want string) {
	t.Helper()
	got, err := format.Format(src, fmtconfig.Default())
	if err != nil {
		t.Fatalf("Format(%q): %v", src, err)
	}
	if got != want {
		t.Fatalf("Format(%q):\n got: %q\nwant: %q", src, got, want)
	}
}

func TestSpacesAroundOperatorsAreInserted(t *testing.T) {
	formatEquals(t, "var x=0+1\n", "var x = 0 + 1\n")
}

func TestOutputEndsWithExactlyOneNewline(t *testing.T) {
	got, err := format.Format("var x = 1", fmtconfig.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "var x = 1\n" {
		t.Fatalf("got %q, want trailing newline normalized", got)
	}
}

func TestPropertyAccessorsReorderToSetThenGet(t *testing.T) {
	src := "var p := 0:\n\tget:\n\t\treturn p\n\tset(v):\n\t\tp = v\n"
	got, err := format.Format(src, fmtconfig.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "var p := 0:\n\tset(v):\n\t\tp = v\n\tget:\n\t\treturn p\n"
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestTernaryTooWideSynthesizesParensAndBreaks(t *testing.T) {
	src := "func f():\n\tvar x := aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa if true else bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\n"
	got, err := format.Format(src, fmtconfig.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got == src {
		t.Fatal("expected a wide ternary to be reflowed")
	}
	if !contains(got, "(\n") {
		t.Fatalf("expected synthesized parens around the broken ternary, got:\n%s", got)
	}
}

func TestUnterminatedStringReturnsSourceUnchanged(t *testing.T) {
	src := "var x = \"unterminated\n"
	got, err := format.Format(src, fmtconfig.Default())
	if err == nil {
		t.Fatal("expected a ParseError for an unterminated string")
	}
	if got != src {
		t.Fatalf("expected unchanged source on error, got %q", got)
	}
	if err.Kind != format.ErrUnterminatedString {
		t.Fatalf("expected ErrUnterminatedString, got %v", err.Kind)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	src := "var x=0+1\nfunc f(a,b):\n\treturn a+b\n"
	ok, msg := format.CheckIdempotent(src, fmtconfig.Default())
	if !ok {
		t.Fatal(msg)
	}
}

func TestArrayBreaksCompactWhenElementsFitOneInnerLine(t *testing.T) {
	src := "var x = [aaaaaaaaaaaaaaaaaaaaaa, bbbbbbbbbbbbbbbbbbbbbb, cccccccccccccccccccccc, dddddddddddddddddddddd]\n"
	got, err := format.Format(src, fmtconfig.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !contains(got, "[\n\t") {
		t.Fatalf("expected the array to break, got:\n%s", got)
	}
}

func TestEnumEntriesRoundTrip(t *testing.T) {
	formatEquals(t, "enum State {IDLE, RUNNING, DONE}\n", "enum State {IDLE, RUNNING, DONE}\n")
}

func TestMalformedMatchPassesTruncatedArmThrough(t *testing.T) {
	src := "func _ready() -> void:\n\tvar x = 0\n\tmatch x:\n\t\t0"
	got, err := format.Format(src, fmtconfig.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := src + "\n"
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
