package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/source"
)

func TestPrettyBasicSnippet(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("res://player.gd", []byte("var x = 1\nvar  y = 2\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.CodeInvalidIndent,
		Message:  "multiple spaces between tokens",
		Primary:  source.Span{File: id, Start: 14, End: 15},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{})

	out := buf.String()
	if !strings.Contains(out, "player.gd:2:5:") {
		t.Fatalf("missing location header, got:\n%s", out)
	}
	if !strings.Contains(out, "warning") {
		t.Fatalf("missing severity label, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing caret, got:\n%s", out)
	}
}

func TestPrettyBasenamePath(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("res://nested/dir/player.gd", []byte("pass\n"))

	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.CodeUnexpectedToken,
		Message:  "bad token",
		Primary:  source.Span{File: id, Start: 0, End: 1},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{PathMode: PathModeBasename})

	if !strings.Contains(buf.String(), "player.gd:1:1:") {
		t.Fatalf("expected basename-only path, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "nested") {
		t.Fatalf("basename mode leaked full path, got:\n%s", buf.String())
	}
}
