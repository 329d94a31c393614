package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryIdentifier(t *testing.T) {
	f := NewFactory()
	id := f.Identifier("x")
	assert.Equal(t, "x", id.Name)
	assert.True(t, id.Synthetic())
	assert.Nil(t, id.Replaced)
}

func TestFactoryUndefined(t *testing.T) {
	f := NewFactory()
	u := f.Undefined()
	assert.Equal(t, "undefined", u.Name)
	assert.NotSame(t, u, f.Undefined(), "each call builds a fresh node")
}

func TestFactorySequence(t *testing.T) {
	f := NewFactory()
	a, b := f.Identifier("a"), f.Identifier("b")

	seq := f.Sequence([]Expr{a, b})
	require.Len(t, seq.Expressions, 2)
	assert.Same(t, a, seq.Expressions[0])
	assert.Same(t, b, seq.Expressions[1])
	assert.True(t, seq.Synthetic())
}

func TestFactoryConditional(t *testing.T) {
	f := NewFactory()
	test, cons, alt := f.Identifier("c"), f.Identifier("a"), f.Undefined()

	cond := f.Conditional(test, cons, alt)
	assert.Same(t, test, cond.Test)
	assert.Same(t, cons, cond.Consequent)
	assert.Same(t, alt, cond.Alternate)
	assert.Equal(t, KindConditionalExpression, cond.Kind())
}
