package layout_test

import (
	"testing"

	"github.com/Razoric480/gdformat/internal/layout"
)

// callDoc builds a `callee(arg, arg, ...)` doc: a group of comma-Line-
// separated args with a trailing comma only when broken, the shape
// spec §4.5 describes for Call.
func callDoc(callee string, args ...*layout.Doc) *layout.Doc {
	var elems []*layout.Doc
	for i, a := range args {
		if i > 0 {
			elems = append(elems, layout.Text(","), layout.Line())
		}
		elems = append(elems, a)
	}
	inner := layout.Concat(elems...)
	return layout.Concat(
		layout.Text(callee+"("),
		layout.Group(layout.Concat(
			layout.Indent(1, layout.Concat(layout.SoftBreak(), inner)),
			layout.IfBroken(layout.Text(","), layout.Text("")),
			layout.SoftBreak(),
		)),
		layout.Text(")"),
	)
}

func txt(s string) *layout.Doc { return layout.Text(s) }

func callDocS(callee string, args ...string) *layout.Doc {
	docs := make([]*layout.Doc, len(args))
	for i, a := range args {
		docs[i] = txt(a)
	}
	return callDoc(callee, docs...)
}

func TestGroupStaysFlatWhenItFits(t *testing.T) {
	doc := callDocS("f", "a", "b")
	p := layout.NewPrinter(100)
	got := p.Print(doc, 0, 0)
	want := "f(a, b)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGroupBreaksWhenItExceedsBudget(t *testing.T) {
	doc := callDocS("some_function", "first_argument", "second_argument", "third_argument")
	p := layout.NewPrinter(20)
	got := p.Print(doc, 0, 0)
	want := "some_function(\n\tfirst_argument,\n\tsecond_argument,\n\tthird_argument,\n)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNestedGroupDecidesIndependently(t *testing.T) {
	nested := callDoc("inner", txt("x"), txt("y"))
	outer := callDoc("outer_long_name_fn", nested)
	p := layout.NewPrinter(25)
	got := p.Print(outer, 0, 0)
	want := "outer_long_name_fn(\n\tinner(x, y),\n)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHardBreakForcesEnclosingGroupBroken(t *testing.T) {
	doc := layout.Group(layout.Concat(
		layout.Text("a"),
		layout.HardBreak(),
		layout.Text("b"),
	))
	p := layout.NewPrinter(100)
	got := p.Print(doc, 0, 0)
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIndentEmitsTabsOnBrokenLines(t *testing.T) {
	doc := layout.Indent(2, layout.Concat(layout.Text("x"), layout.HardBreak(), layout.Text("y")))
	p := layout.NewPrinter(100)
	got := p.Print(doc, 0, 0)
	want := "x\n\t\ty"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSoftBreakVanishesFlatButLineBecomesSpace(t *testing.T) {
	flatDoc := layout.Group(layout.Concat(layout.Text("a"), layout.SoftBreak(), layout.Text("b")))
	p := layout.NewPrinter(100)
	if got := p.Print(flatDoc, 0, 0); got != "ab" {
		t.Fatalf("SoftBreak flat: got %q, want %q", got, "ab")
	}

	lineDoc := layout.Group(layout.Concat(layout.Text("a"), layout.Line(), layout.Text("b")))
	if got := p.Print(lineDoc, 0, 0); got != "a b" {
		t.Fatalf("Line flat: got %q, want %q", got, "a b")
	}
}

func TestCurrentColumnAffectsFitDecision(t *testing.T) {
	doc := callDocS("f", "a", "b")
	p := layout.NewPrinter(10)
	got := p.Print(doc, 8, 0)
	want := "f(\n\ta,\n\tb,\n)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
