package ast_test

import (
	"testing"

	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/source"
)

func TestArenaIDsAreOneBased(t *testing.T) {
	a := ast.NewArena[int](0)
	id1 := a.Allocate(10)
	id2 := a.Allocate(20)
	if id1 != 1 || id2 != 2 {
		t.Fatalf("got ids %d, %d, want 1, 2", id1, id2)
	}
	if *a.Get(id1) != 10 || *a.Get(id2) != 20 {
		t.Fatalf("Get returned wrong values")
	}
	if a.Get(0) != nil {
		t.Fatalf("Get(0) must be nil, the sentinel for 'no id'")
	}
}

func TestBuilderPushMember(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	file := b.NewFile(source.Span{})
	name := b.Strings.Intern("health")
	member := b.NewMember(ast.MemberVar, source.Span{}, name)
	b.PushMember(file, member)

	f := b.Files.Get(file)
	if len(f.Members) != 1 || f.Members[0] != member {
		t.Fatalf("expected member pushed onto file, got %+v", f.Members)
	}
	got := b.Members.Get(member)
	if got.Kind != ast.MemberVar {
		t.Fatalf("Kind = %v, want MemberVar", got.Kind)
	}
	if b.Strings.MustLookup(got.Name) != "health" {
		t.Fatalf("Name lookup = %q, want health", b.Strings.MustLookup(got.Name))
	}
}
