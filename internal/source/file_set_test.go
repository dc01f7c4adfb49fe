package source

import "testing"

func TestFileSetAddAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("<test>", []byte("var x = 1\nvar y = 2\n"))
	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Fatalf("expected FileVirtual flag")
	}

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 5})
	if start.Line != 1 || start.Col != 1 {
		t.Fatalf("start = %+v, want line 1 col 1", start)
	}
	if end.Line != 1 || end.Col != 6 {
		t.Fatalf("end = %+v, want line 1 col 6", end)
	}

	start2, _ := fs.Resolve(Span{File: id, Start: 14, End: 14})
	if start2.Line != 2 {
		t.Fatalf("expected line 2 for offset 14, got %+v", start2)
	}
}

func TestFileSetGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.Add("a.gd", []byte("pass\n"), 0)
	fs.Add("a.gd", []byte("pass\npass\n"), 0)
	f, ok := fs.GetByPath("a.gd")
	if !ok {
		t.Fatalf("expected a.gd to be found")
	}
	if string(f.Content) != "pass\npass\n" {
		t.Fatalf("expected latest version, got %q", f.Content)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Fatalf("Cover = %+v, want {2 10}", got)
	}
}

func TestInternerDedup(t *testing.T) {
	in := NewInterner()
	a := in.Intern("hello")
	b := in.Intern("hello")
	if a != b {
		t.Fatalf("expected identical IDs for repeated intern, got %d and %d", a, b)
	}
	if in.MustLookup(a) != "hello" {
		t.Fatalf("MustLookup mismatch")
	}
	if in.Intern("") != NoStringID {
		t.Fatalf("expected empty string to map to NoStringID")
	}
}
