package source

import (
	"fmt"

	"fortio.org/safecast"
)

// FileSet owns a collection of source files and resolves spans to
// line/column positions. A FileSet never mutates a File's content once
// added.
type FileSet struct {
	files []File
	index map[string]FileID
}

func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0, 1),
		index: make(map[string]FileID),
	}
}

// Add stores content under path, builds its line index, and returns a
// fresh FileID. Re-adding the same path yields a new, distinct File;
// FileSet keeps every version added.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("source: too many files: %w", err))
	}
	id := FileID(n)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	})
	fs.index[path] = id
	return id
}

// AddVirtual adds in-memory content (the common case for a formatter:
// the caller already has the text, there is no file on disk).
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file metadata for id.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// GetByPath returns the most recently added file at path, if any.
func (fs *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fs.index[path]; ok {
		return &fs.files[id], true
	}
	return nil, false
}

// Resolve converts a span into 1-based line/column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// LineText returns the content of the given 1-based line, without its
// trailing newline. An out-of-range line yields "".
func (fs *FileSet) LineText(id FileID, line uint32) string {
	f := &fs.files[id]
	if line == 0 {
		return ""
	}
	var start uint32
	if line > 1 {
		if int(line-2) >= len(f.LineIdx) {
			return ""
		}
		start = f.LineIdx[line-2] + 1
	}
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return ""
	}
	if int(line-1) < len(f.LineIdx) {
		end = f.LineIdx[line-1]
	}
	if start > end || int(start) > len(f.Content) {
		return ""
	}
	return string(f.Content[start:end])
}

// buildLineIndex records the byte offset of every '\n' in content, so
// that toLineCol can binary-search a position's line number.
func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 0, 64)
	for i, b := range content {
		if b == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				continue
			}
			idx = append(idx, off)
		}
	}
	return idx
}

func toLineCol(lineIdx []uint32, pos uint32) LineCol {
	// lineIdx[k] is the offset of the k-th newline (0-based); line k+2
	// starts right after it. Binary search for the first newline at or
	// after pos to find which line pos falls on.
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) / 2
		if lineIdx[mid] < pos {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := uint32(lo + 1) //nolint:gosec // line counts never approach uint32 overflow
	var lineStart uint32
	if lo > 0 {
		lineStart = lineIdx[lo-1] + 1
	}
	return LineCol{Line: line, Col: pos - lineStart + 1}
}
