package ast

import "fmt"

// Index records the syntactic parent of every node in a file. It supports
// the three tree operations transform passes need: parent lookup,
// descendant tests and in-place replacement.
type Index struct {
	file    *File
	parents map[Node]Node
}

// NewIndex walks f and returns its parent index.
func NewIndex(f *File) *Index {
	ix := &Index{file: f, parents: make(map[Node]Node)}
	ix.link(f, nil)
	return ix
}

func (ix *Index) link(n, parent Node) {
	if parent != nil {
		ix.parents[n] = parent
	}
	for _, c := range Children(n) {
		ix.link(c, n)
	}
}

// File returns the indexed file.
func (ix *Index) File() *File { return ix.file }

// Parent returns the nearest syntactic parent of n, or nil for the root
// and for nodes that are no longer attached to the tree.
func (ix *Index) Parent(n Node) Node {
	return ix.parents[n]
}

// Contains reports whether n is ancestor itself or one of its descendants.
func (ix *Index) Contains(ancestor, n Node) bool {
	for cur := n; cur != nil; cur = ix.parents[cur] {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Replace puts repl in the slot currently occupied by old. repl takes over
// old's source extent, and every ancestor is marked dirty so the printer
// re-renders the path down to repl. Nodes under old that are not reused by
// repl become unreachable.
func (ix *Index) Replace(old Node, repl Expr) error {
	parent := ix.parents[old]
	if parent == nil {
		return fmt.Errorf("replace %s: node is not attached to the tree", old.Kind())
	}
	if !ReplaceChild(parent, old, repl) {
		return fmt.Errorf("replace %s: not a replaceable child of %s", old.Kind(), parent.Kind())
	}

	sp := old.Span()
	if ob := old.base(); ob.Replaced != nil {
		sp = *ob.Replaced
	}
	repl.base().Replaced = &sp

	delete(ix.parents, old)
	ix.link(repl, parent)
	for cur := parent; cur != nil; cur = ix.parents[cur] {
		cur.base().dirty = true
	}
	return nil
}

// Position returns the source position of n. Replacement nodes report the
// position of the code they replaced.
func (ix *Index) Position(n Node) Position {
	b := n.base()
	if b.synthetic {
		if b.Replaced != nil {
			return ix.file.Position(b.Replaced.Start)
		}
		return Position{Filename: ix.file.Name}
	}
	return ix.file.Position(b.Start)
}
