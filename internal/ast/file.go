package ast

import "github.com/Razoric480/gdformat/internal/source"

// ClassNameHeader is the `class_name Foo` declaration.
type ClassNameHeader struct {
	Name source.StringID
	Span source.Span
	Comments
}

// ExtendsHeader is the `extends Base` declaration.
type ExtendsHeader struct {
	Base TypeRef
	Span source.Span
	Comments
}

// File is a whole source file: its class-level header (class_name,
// extends, file-scope annotations like @tool/@icon) followed by an
// ordered list of members.
type File struct {
	Span        source.Span
	ClassName   *ClassNameHeader
	Extends     *ExtendsHeader
	Annotations []Annotation
	Members     []MemberID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[File](capHint)}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: sp, Members: make([]MemberID, 0)}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
