package chain

import "github.com/rubiojr/ifexpr/ast"

// reduce turns one side's expressions into a single expression: undefined
// when empty, the element itself when alone, otherwise a sequence whose
// value is the last element.
func reduce(f *ast.Factory, exprs []ast.Expr) ast.Expr {
	switch len(exprs) {
	case 0:
		return f.Undefined()
	case 1:
		return exprs[0]
	}
	return f.Sequence(append([]ast.Expr(nil), exprs...))
}

// synthesize builds test ? consequent : alternate from the accumulated
// branches.
func synthesize(f *ast.Factory, test ast.Expr, b *branches) *ast.ConditionalExpression {
	return f.Conditional(test, reduce(f, b.consequent), reduce(f, b.alternate))
}
