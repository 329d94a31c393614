package ast

import (
	"fmt"
	"sort"
)

// Position is a human-facing source location. Line and Column are 1-based;
// a zero Column means the column is unknown.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// IsValid reports whether the position carries a line number.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	s := p.Filename
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d", p.Line)
		if p.Column != 0 {
			s += fmt.Sprintf(":%d", p.Column)
		}
	}
	if s == "" {
		s = "-"
	}
	return s
}

// NewFile creates the root node for src and indexes its line starts.
func NewFile(name string, src []byte) *File {
	f := &File{Name: name, Src: src}
	f.SetSpan(0, len(src))
	f.lines = []int{0}
	for i, b := range src {
		if b == '\n' {
			f.lines = append(f.lines, i+1)
		}
	}
	return f
}

// Position converts a byte offset into a line/column position. Columns
// count bytes, like go/token.
func (f *File) Position(offset int) Position {
	if offset < 0 || offset > len(f.Src) || len(f.lines) == 0 {
		return Position{Filename: f.Name}
	}
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	return Position{
		Filename: f.Name,
		Offset:   offset,
		Line:     i + 1,
		Column:   offset - f.lines[i] + 1,
	}
}

// Text returns the source text covered by s.
func (f *File) Text(s Span) string {
	if s.Start < 0 || s.End > len(f.Src) || s.Start > s.End {
		return ""
	}
	return string(f.Src[s.Start:s.End])
}
