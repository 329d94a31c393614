package chain

import "github.com/rubiojr/ifexpr/ast"

// branches accumulates the consequent and alternate expressions of one
// chain in call order.
type branches struct {
	consequent []ast.Expr
	alternate  []ast.Expr
	factory    *ast.Factory
}

func newBranches(f *ast.Factory) *branches {
	return &branches{factory: f}
}

// side returns the sequence a continuation feeds.
func (b *branches) side(kw Keyword) *[]ast.Expr {
	switch kw {
	case KeywordThen, KeywordThenDo:
		return &b.consequent
	}
	return &b.alternate
}

// add appends a result-bearing expression.
func (b *branches) add(kw Keyword, e ast.Expr) {
	s := b.side(kw)
	*s = append(*s, e)
}

// discard appends exprs for their side effects only. The last value of the
// side is taken off, the expressions appended, and the value put back so
// it stays the side's result. An empty side keeps undefined as its value.
func (b *branches) discard(kw Keyword, exprs []ast.Expr) {
	s := b.side(kw)
	var tail ast.Expr
	if n := len(*s); n > 0 {
		tail = (*s)[n-1]
		*s = (*s)[:n-1]
	} else {
		tail = b.factory.Undefined()
	}
	*s = append(*s, exprs...)
	*s = append(*s, tail)
}

// replaceAlternate drops everything accumulated for the alternate side in
// favor of e, as elseIf does.
func (b *branches) replaceAlternate(e ast.Expr) {
	b.alternate = []ast.Expr{e}
}
