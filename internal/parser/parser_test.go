package parser_test

import (
	"testing"

	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/lexer"
	"github.com/Razoric480/gdformat/internal/parser"
	"github.com/Razoric480/gdformat/internal/source"
	"github.com/Razoric480/gdformat/internal/token"
)

func parseSrc(t *testing.T, src string) (*ast.Builder, ast.FileID, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.gd", []byte(src))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	b := ast.NewBuilder(ast.Hints{})
	res := parser.Parse(fs, fileID, lx, b, 0)
	return b, res.File, res.Bag
}

func firstMember(t *testing.T, b *ast.Builder, fileID ast.FileID) *ast.Member {
	t.Helper()
	f := b.Files.Get(fileID)
	if len(f.Members) == 0 {
		t.Fatal("expected at least one member")
	}
	return b.Members.Get(f.Members[0])
}

func TestExpressionPrecedenceAdditiveBeforeMultiplicative(t *testing.T) {
	b, fileID, bag := parseSrc(t, "func f():\n\tx = 1 + 2 * 3\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	if stmt.Kind != ast.StmtAssignment {
		t.Fatalf("expected assignment, got %v", stmt.Kind)
	}
	rhs := b.Exprs.Get(stmt.RHS)
	if rhs.Kind != ast.ExprBinary || rhs.Op != token.Plus {
		t.Fatalf("expected top-level '+', got %v %v", rhs.Kind, rhs.Op)
	}
	right := b.Exprs.Get(rhs.Right)
	if right.Kind != ast.ExprBinary || right.Op != token.Star {
		t.Fatalf("expected '*' nested under '+', got %v %v", right.Kind, right.Op)
	}
}

func TestTernaryIsLoosestBindingLevel(t *testing.T) {
	b, fileID, bag := parseSrc(t, "func f():\n\tx = 1 if a else 2 + 3\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	rhs := b.Exprs.Get(stmt.RHS)
	if rhs.Kind != ast.ExprTernary {
		t.Fatalf("expected ternary at the top, got %v", rhs.Kind)
	}
	elseExpr := b.Exprs.Get(rhs.ElseExpr)
	if elseExpr.Kind != ast.ExprBinary || elseExpr.Op != token.Plus {
		t.Fatalf("expected '+' nested in else branch, got %v", elseExpr.Kind)
	}
}

func TestIfElifElseChain(t *testing.T) {
	src := "func f():\n\tif a:\n\t\tpass\n\telif b:\n\t\tpass\n\telse:\n\t\tpass\n"
	b, fileID, bag := parseSrc(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	if stmt.Kind != ast.StmtIf {
		t.Fatalf("expected if statement, got %v", stmt.Kind)
	}
	if len(stmt.Elifs) != 1 {
		t.Fatalf("expected one elif clause, got %d", len(stmt.Elifs))
	}
	if len(stmt.Else) != 1 {
		t.Fatalf("expected one else statement, got %d", len(stmt.Else))
	}
}

func TestForLoopOverIterable(t *testing.T) {
	b, fileID, bag := parseSrc(t, "func f():\n\tfor item in items:\n\t\tpass\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	if stmt.Kind != ast.StmtFor {
		t.Fatalf("expected for statement, got %v", stmt.Kind)
	}
	if b.Strings.MustLookup(stmt.LoopVar) != "item" {
		t.Fatalf("expected loop var 'item', got %q", b.Strings.MustLookup(stmt.LoopVar))
	}
}

func TestMatchStatementArms(t *testing.T) {
	src := "func f():\n\tmatch x:\n\t\t1:\n\t\t\tpass\n\t\t_:\n\t\t\tpass\n"
	b, fileID, bag := parseSrc(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	if stmt.Kind != ast.StmtMatch {
		t.Fatalf("expected match statement, got %v", stmt.Kind)
	}
	if len(stmt.Arms) != 2 {
		t.Fatalf("expected 2 arms, got %d", len(stmt.Arms))
	}
	if stmt.Arms[0].Patterns[0].Kind != ast.PatternLiteral {
		t.Fatalf("expected first arm to be a literal pattern, got %v", stmt.Arms[0].Patterns[0].Kind)
	}
	if stmt.Arms[1].Patterns[0].Kind != ast.PatternWildcard {
		t.Fatalf("expected second arm to be a wildcard pattern, got %v", stmt.Arms[1].Patterns[0].Kind)
	}
}

func TestLocalVarDeclWithInferredType(t *testing.T) {
	b, fileID, bag := parseSrc(t, "func f():\n\tvar a := [0, 1, 2]\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	if stmt.Kind != ast.StmtVarDecl {
		t.Fatalf("expected local var decl, got %v", stmt.Kind)
	}
	if stmt.DeclType != nil {
		t.Fatalf("expected no explicit type for ':=' decl, got %v", stmt.DeclType)
	}
	value := b.Exprs.Get(stmt.Value)
	if value.Kind != ast.ExprArray {
		t.Fatalf("expected array initializer, got %v", value.Kind)
	}
}

func TestLocalConstDeclWithExplicitType(t *testing.T) {
	b, fileID, bag := parseSrc(t, "func f():\n\tconst MAX: int = 10\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	if stmt.Kind != ast.StmtConstDecl {
		t.Fatalf("expected local const decl, got %v", stmt.Kind)
	}
	if stmt.DeclType == nil || b.Strings.MustLookup(stmt.DeclType.Name) != "int" {
		t.Fatalf("expected explicit type 'int', got %v", stmt.DeclType)
	}
}

func TestTrailingCommentAttachesToSameLineStatement(t *testing.T) {
	b, fileID, bag := parseSrc(t, "func f():\n\tpass # done\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	if stmt.Trailing == nil || stmt.Trailing.Text != "# done" {
		t.Fatalf("expected a trailing comment, got %v", stmt.Trailing)
	}
}

func TestLeadingCommentAttachesToNextStatement(t *testing.T) {
	b, fileID, bag := parseSrc(t, "func f():\n\t# setup\n\tpass\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	if len(stmt.Leading) != 1 || stmt.Leading[0].Text != "# setup" {
		t.Fatalf("expected a leading comment, got %v", stmt.Leading)
	}
}

func TestPropertyAccessorsRecordSetterAndGetter(t *testing.T) {
	src := "var health: int = 10:\n\tset(value):\n\t\thealth = value\n\tget:\n\t\treturn health\n"
	b, fileID, bag := parseSrc(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	m := firstMember(t, b, fileID)
	if m.Kind != ast.MemberProperty {
		t.Fatalf("expected MemberProperty, got %v", m.Kind)
	}
	if !m.Setter.IsValid() || !m.Getter.IsValid() {
		t.Fatalf("expected both setter and getter recorded, got setter=%v getter=%v", m.Setter, m.Getter)
	}
}

func TestFunctionReturnType(t *testing.T) {
	b, fileID, bag := parseSrc(t, "func add(a: int, b: int) -> int:\n\treturn a + b\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	m := firstMember(t, b, fileID)
	if m.ReturnType == nil || b.Strings.MustLookup(m.ReturnType.Name) != "int" {
		t.Fatalf("expected return type 'int', got %v", m.ReturnType)
	}
	if len(m.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(m.Params))
	}
}

func TestDictionaryLiteralStyles(t *testing.T) {
	b, fileID, bag := parseSrc(t, "func f():\n\tx = {\"a\": 1, \"b\": 2}\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	rhs := b.Exprs.Get(stmt.RHS)
	if rhs.Kind != ast.ExprDictionary || rhs.Style != ast.DictStylePython {
		t.Fatalf("expected python-style dictionary, got %v style=%v", rhs.Kind, rhs.Style)
	}
	if len(rhs.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rhs.Entries))
	}
}

func TestUnexpectedTokenRecordsDiagnosticAndRecovers(t *testing.T) {
	_, _, bag := parseSrc(t, "func f():\n\tx = )\n\ty = 1\n")
	if bag.Len() == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	if bag.Items()[0].Code != diag.CodeUnexpectedToken {
		t.Fatalf("got code %v, want CodeUnexpectedToken", bag.Items()[0].Code)
	}
}

func TestArrayElementTrailingCommentAttachesToItsOwnElementNotTheNext(t *testing.T) {
	src := "var x := [\n\t0, 1, 2, 3,\n\t4, # This is the special one\n\t5, 6, 7, 8\n]\n"
	b, fileID, bag := parseSrc(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	m := firstMember(t, b, fileID)
	arr := b.Exprs.Get(m.Value)
	if arr.Kind != ast.ExprArray || len(arr.Elements) != 9 {
		t.Fatalf("expected a 9-element array, got %v", arr)
	}
	fourth := b.Exprs.Get(arr.Elements[4])
	if fourth.Trailing == nil || fourth.Trailing.Text != "# This is the special one" {
		t.Fatalf("expected element 4 to carry the comment, got %v", fourth.Trailing)
	}
	fifth := b.Exprs.Get(arr.Elements[5])
	if fifth.Trailing != nil {
		t.Fatalf("expected element 5 to carry no comment, got %v", fifth.Trailing)
	}
}

func TestArrayLastElementTrailingCommentDoesNotLeak(t *testing.T) {
	src := "var x := [\n\t0,\n\t1 # The comment is here\n]\n"
	b, fileID, bag := parseSrc(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	m := firstMember(t, b, fileID)
	arr := b.Exprs.Get(m.Value)
	last := b.Exprs.Get(arr.Elements[len(arr.Elements)-1])
	if last.Trailing == nil || last.Trailing.Text != "# The comment is here" {
		t.Fatalf("expected the last element to carry the comment, got %v", last.Trailing)
	}
}

func TestDictLastEntryTrailingCommentDoesNotLeakToEnclosingMember(t *testing.T) {
	src := "var my_variable := {\n\t\"name\": \"Elizabeth\",\n\t\"job\": \"Investigator\" # The comment is here\n}\n"
	b, fileID, bag := parseSrc(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	m := firstMember(t, b, fileID)
	if m.Trailing != nil {
		t.Fatalf("expected the comment not to leak onto the enclosing var, got %v", m.Trailing)
	}
	dict := b.Exprs.Get(m.Value)
	last := dict.Entries[len(dict.Entries)-1]
	if last.Trailing == nil || last.Trailing.Text != "# The comment is here" {
		t.Fatalf("expected the last entry to carry the comment, got %v", last.Trailing)
	}
}

func TestParamListTrailingCommentAttachesToItsOwnParam(t *testing.T) {
	src := "func f(\n\ta, # first\n\tb\n):\n\tpass\n"
	b, fileID, bag := parseSrc(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	m := firstMember(t, b, fileID)
	if len(m.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(m.Params))
	}
	if m.Params[0].Trailing == nil || m.Params[0].Trailing.Text != "# first" {
		t.Fatalf("expected the first param to carry the comment, got %v", m.Params[0].Trailing)
	}
	if m.Params[1].Trailing != nil {
		t.Fatalf("expected the second param to carry no comment, got %v", m.Params[1].Trailing)
	}
}

func TestArgListTrailingCommentAttachesToItsOwnArgument(t *testing.T) {
	src := "func f():\n\tmy_call(\n\t\t0,\n\t\t1 # The comment is here\n\t)\n"
	b, fileID, bag := parseSrc(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := firstMember(t, b, fileID)
	stmt := b.Stmts.Get(fn.Body[0])
	call := b.Exprs.Get(stmt.Value)
	if call.Kind != ast.ExprCall || len(call.Args) != 2 {
		t.Fatalf("expected a 2-argument call, got %v", call)
	}
	last := b.Exprs.Get(call.Args[1])
	if last.Trailing == nil || last.Trailing.Text != "# The comment is here" {
		t.Fatalf("expected the last argument to carry the comment, got %v", last.Trailing)
	}
}
