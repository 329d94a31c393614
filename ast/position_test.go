package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilePosition(t *testing.T) {
	f := NewFile("a.js", []byte("ab\ncd\n\nef"))

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
		{7, 4, 1},
		{9, 4, 3},
	}
	for _, tt := range tests {
		pos := f.Position(tt.offset)
		assert.Equal(t, tt.line, pos.Line, "line of offset %d", tt.offset)
		assert.Equal(t, tt.column, pos.Column, "column of offset %d", tt.offset)
		assert.Equal(t, "a.js", pos.Filename)
	}
}

func TestFilePositionOutOfRange(t *testing.T) {
	f := NewFile("a.js", []byte("ab"))
	assert.False(t, f.Position(-1).IsValid())
	assert.False(t, f.Position(10).IsValid())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "a.js:3:9", Position{Filename: "a.js", Line: 3, Column: 9}.String())
	assert.Equal(t, "a.js:3", Position{Filename: "a.js", Line: 3}.String())
	assert.Equal(t, "3:9", Position{Line: 3, Column: 9}.String())
	assert.Equal(t, "a.js", Position{Filename: "a.js"}.String())
	assert.Equal(t, "-", Position{}.String())
}

func TestFileText(t *testing.T) {
	f := NewFile("", []byte("hello world"))
	assert.Equal(t, "world", f.Text(Span{6, 11}))
	assert.Equal(t, "", f.Text(Span{6, 20}))
}
