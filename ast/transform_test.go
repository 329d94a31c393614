package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainEmpty(t *testing.T) {
	f := NewFile("test.js", nil)
	require.NoError(t, Chain().Transform(f))
	assert.Empty(t, f.Body)
}

func TestChainSingle(t *testing.T) {
	called := false
	transform := TransformFunc{
		N: "test",
		F: func(f *File) error {
			called = true
			f.Name = "modified"
			return nil
		},
	}
	f := NewFile("original", nil)
	require.NoError(t, Chain(transform).Transform(f))
	assert.True(t, called, "transform was called")
	assert.Equal(t, "modified", f.Name)
}

func TestChainOrdering(t *testing.T) {
	var order []string
	step := func(name string) Transform {
		return TransformFunc{N: name, F: func(*File) error {
			order = append(order, name)
			return nil
		}}
	}
	require.NoError(t, Chain(step("first"), step("second"), step("third")).Transform(NewFile("", nil)))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestChainStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	failing := TransformFunc{N: "failing", F: func(*File) error { return boom }}
	after := TransformFunc{N: "after", F: func(*File) error {
		ran = true
		return nil
	}}

	err := Chain(failing, after).Transform(NewFile("", nil))
	assert.ErrorIs(t, err, boom)
	assert.False(t, ran, "transforms after a failure do not run")
}

func TestChainName(t *testing.T) {
	assert.Equal(t, "chain", Chain().Name())
	assert.Equal(t, "x", TransformFunc{N: "x"}.Name())
}
