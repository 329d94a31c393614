package ast

// Factory centralizes AST node creation for transform passes.
// Every node it builds is synthetic: it has no source extent until it is
// put in place of a parsed node with Index.Replace.
type Factory struct{}

// NewFactory returns a new Factory.
func NewFactory() *Factory { return &Factory{} }

func synthetic() Base {
	return Base{Start: -1, End: -1, synthetic: true}
}

// Identifier creates an identifier reference.
func (f *Factory) Identifier(name string) *Identifier {
	return &Identifier{Base: synthetic(), Name: name}
}

// Undefined creates the `undefined` identifier used for empty branches.
func (f *Factory) Undefined() *Identifier { return f.Identifier("undefined") }

// Sequence creates a comma expression evaluating exprs left to right.
func (f *Factory) Sequence(exprs []Expr) *SequenceExpression {
	return &SequenceExpression{Base: synthetic(), Expressions: exprs}
}

// Conditional creates test ? consequent : alternate.
func (f *Factory) Conditional(test, consequent, alternate Expr) *ConditionalExpression {
	return &ConditionalExpression{Base: synthetic(), Test: test, Consequent: consequent, Alternate: alternate}
}
