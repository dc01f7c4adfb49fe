package normalize_test

import (
	"testing"

	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/lexer"
	"github.com/Razoric480/gdformat/internal/normalize"
	"github.com/Razoric480/gdformat/internal/parser"
	"github.com/Razoric480/gdformat/internal/source"
)

func parseAndNormalize(t *testing.T, src string) (*ast.Builder, ast.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.gd", []byte(src))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	b := ast.NewBuilder(ast.Hints{})
	res := parser.Parse(fs, fileID, lx, b, 0)
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	normalize.File(fs, b, res.File)
	return b, res.File
}

func firstMember(t *testing.T, b *ast.Builder, fileID ast.FileID) *ast.Member {
	t.Helper()
	f := b.Files.Get(fileID)
	if len(f.Members) == 0 {
		t.Fatal("expected at least one member")
	}
	return b.Members.Get(f.Members[0])
}

func TestRedundantParenAroundIdentifierIsUnwrapped(t *testing.T) {
	b, fileID := parseAndNormalize(t, "func f():\n\tx = (a)\n")
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	rhs := b.Exprs.Get(stmt.RHS)
	if rhs.Kind != ast.ExprIdentifier {
		t.Fatalf("expected bare identifier after unwrap, got %v", rhs.Kind)
	}
}

func TestSingleLineCastParenIsKept(t *testing.T) {
	b, fileID := parseAndNormalize(t, "func f():\n\tx = (a as int)\n")
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	rhs := b.Exprs.Get(stmt.RHS)
	if rhs.Kind != ast.ExprParenthesized {
		t.Fatalf("expected single-line cast parens to survive, got %v", rhs.Kind)
	}
}

func TestMultilineCastParenIsUnwrapped(t *testing.T) {
	src := "func f():\n\tx = (\n\t\ta as int\n\t)\n"
	b, fileID := parseAndNormalize(t, src)
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	rhs := b.Exprs.Get(stmt.RHS)
	if rhs.Kind != ast.ExprCast {
		t.Fatalf("expected multi-line cast parens to be unwrapped, got %v", rhs.Kind)
	}
}

func TestArrayWithElementCommentFreezesMustBreak(t *testing.T) {
	src := "func f():\n\tx = [\n\t\t1, # one\n\t\t2,\n\t]\n"
	b, fileID := parseAndNormalize(t, src)
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	rhs := b.Exprs.Get(stmt.RHS)
	if rhs.Kind != ast.ExprArray {
		t.Fatalf("expected array literal, got %v", rhs.Kind)
	}
	if !rhs.MustBreak {
		t.Fatal("expected MustBreak to be set for an array containing a comment")
	}
}

func TestArrayWithoutCommentsDoesNotMustBreak(t *testing.T) {
	b, fileID := parseAndNormalize(t, "func f():\n\tx = [1, 2, 3]\n")
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	rhs := b.Exprs.Get(stmt.RHS)
	if rhs.MustBreak {
		t.Fatal("expected MustBreak to stay false for a plain array")
	}
}

func TestDictEntryWithCommentFreezesMustBreak(t *testing.T) {
	src := "func f():\n\tx = {\n\t\t\"a\": 1, # first\n\t\t\"b\": 2,\n\t}\n"
	b, fileID := parseAndNormalize(t, src)
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	rhs := b.Exprs.Get(stmt.RHS)
	if !rhs.MustBreak {
		t.Fatal("expected MustBreak to be set for a dictionary entry with a comment")
	}
}

func TestDictValueParenCommentsHoistOntoEnclosingKey(t *testing.T) {
	src := "func f():\n\tx = {\n\t\t\"job\": ( # There is a comment here\n\t\t\t\"Investigator\"\n\t\t) # And a comment here\n\t}\n"
	b, fileID := parseAndNormalize(t, src)
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	rhs := b.Exprs.Get(stmt.RHS)
	if len(rhs.Entries) != 1 {
		t.Fatalf("expected one dictionary entry, got %d", len(rhs.Entries))
	}
	entry := rhs.Entries[0]
	if len(entry.Leading) != 1 || entry.Leading[0].Text != "# There is a comment here" {
		t.Fatalf("expected the paren's own-line comment hoisted onto the entry's Leading, got %v", entry.Leading)
	}
	if entry.Trailing == nil || entry.Trailing.Text != "# And a comment here" {
		t.Fatalf("expected the closing comment hoisted onto the entry's Trailing, got %v", entry.Trailing)
	}
	value := b.Exprs.Get(entry.Value)
	if value.Kind != ast.ExprLiteral {
		t.Fatalf("expected the redundant parens to be unwrapped, got %v", value.Kind)
	}
	if len(value.Leading) != 0 || value.Trailing != nil {
		t.Fatalf("expected no comments left on the unwrapped value itself, got leading=%v trailing=%v", value.Leading, value.Trailing)
	}
}

func TestSingleArgumentlessAnnotationPromotedSameLine(t *testing.T) {
	b, fileID := parseAndNormalize(t, "@export\nvar health: int = 10\n")
	m := firstMember(t, b, fileID)
	if len(m.Annotations) != 1 {
		t.Fatalf("expected one annotation, got %d", len(m.Annotations))
	}
	if !m.Annotations[0].SameLine {
		t.Fatal("expected the argument-less annotation to be marked SameLine-eligible")
	}
}

func TestAnnotationWithArgsIsNotPromoted(t *testing.T) {
	b, fileID := parseAndNormalize(t, "@export_range(0, 100)\nvar health: int = 10\n")
	m := firstMember(t, b, fileID)
	if m.Annotations[0].SameLine {
		t.Fatal("expected an annotation with arguments to stay on its own line")
	}
}
