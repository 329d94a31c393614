// Package chain rewrites fluent conditional chains such as
//
//	If(c).then(a).elseIf(d).then(b).else(e).end()
//
// into nested conditional expressions (c ? a : d ? b : e).
//
// The package works against the Tree interface rather than a concrete
// parser so the walk only relies on parent lookup, descendant tests and
// single-node replacement. A chain is validated and synthesized completely
// before the tree is touched; the only mutation is one Replace per chain.
package chain

import "github.com/rubiojr/ifexpr/ast"

// Tree is the host syntax tree as seen by the rewriter.
type Tree interface {
	// Parent returns the nearest syntactic parent of n, nil at the root.
	Parent(n ast.Node) ast.Node
	// Contains reports whether n is ancestor or one of its descendants.
	Contains(ancestor, n ast.Node) bool
	// Replace puts repl in the place of old.
	Replace(old ast.Node, repl ast.Expr) error
	// Position returns the source location of n for diagnostics.
	Position(n ast.Node) ast.Position
}

var _ Tree = (*ast.Index)(nil)
