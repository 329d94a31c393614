package chain

import "github.com/rubiojr/ifexpr/ast"

// walker resolves the chains of one file. It is not safe for concurrent
// use; each file gets its own.
type walker struct {
	tree      Tree
	refs      []ast.Node
	processed map[ast.Node]bool
	factory   *ast.Factory
	replaced  int
}

// resolve walks the chain opened by entry and replaces it in the tree.
func (w *walker) resolve(entry ast.Node) error {
	result, top, err := w.walk(entry)
	if err != nil {
		return err
	}
	if err := w.tree.Replace(top, result); err != nil {
		return err
	}
	w.replaced++
	return nil
}

// walk validates the chain opened by entry and synthesizes its conditional
// without touching the tree, except for nested chains found in arguments,
// which are resolved first. It returns the result and the node it replaces.
func (w *walker) walk(entry ast.Node) (ast.Expr, ast.Node, error) {
	w.processed[entry] = true

	open, err := expectCall(w.tree, entry, w.tree.Parent(entry), entry)
	if err != nil {
		return nil, nil, err
	}
	if err := w.resolveNested(open); err != nil {
		return nil, nil, err
	}
	test, err := expectSingleArgument(w.tree, open, entryName(entry), entry)
	if err != nil {
		return nil, nil, err
	}
	return w.continueFrom(entry, open, test)
}

// continueFrom follows the continuations after call, the opening call of a
// chain or of an elseIf, until a terminator.
func (w *walker) continueFrom(entry ast.Node, call *ast.CallExpression, test ast.Expr) (ast.Expr, ast.Node, error) {
	b := newBranches(w.factory)
	var cur ast.Node = call
	for {
		member, kw, err := expectContinuation(w.tree, entry, cur, w.tree.Parent(cur))
		if err != nil {
			return nil, nil, err
		}
		next, err := expectCall(w.tree, member, w.tree.Parent(member), member.Property)
		if err != nil {
			return nil, nil, err
		}
		if err := w.resolveNested(next); err != nil {
			return nil, nil, err
		}

		switch kw {
		case KeywordThen, KeywordElse:
			arg, err := expectSingleArgument(w.tree, next, kw.String(), member.Property)
			if err != nil {
				return nil, nil, err
			}
			b.add(kw, arg)
		case KeywordThenDo, KeywordElseDo:
			if err := expectExpressions(w.tree, next); err != nil {
				return nil, nil, err
			}
			b.discard(kw, next.Arguments)
		case KeywordEnd, KeywordEndDollar:
			if err := expectNoArguments(w.tree, next, kw.String()); err != nil {
				return nil, nil, err
			}
			return synthesize(w.factory, test, b), next, nil
		case KeywordElseIf:
			cond, err := expectSingleArgument(w.tree, next, kw.String(), member.Property)
			if err != nil {
				return nil, nil, err
			}
			alt, top, err := w.continueFrom(entry, next, cond)
			if err != nil {
				return nil, nil, err
			}
			b.replaceAlternate(alt)
			return synthesize(w.factory, test, b), top, nil
		}
		cur = next
	}
}

// resolveNested rewrites, in file order, every unprocessed chain whose
// entry sits inside an argument of call.
func (w *walker) resolveNested(call *ast.CallExpression) error {
	for _, ref := range w.refs {
		if w.processed[ref] || !w.insideArguments(call, ref) {
			continue
		}
		if err := w.resolve(ref); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) insideArguments(call *ast.CallExpression, n ast.Node) bool {
	for _, arg := range call.Arguments {
		if w.tree.Contains(arg, n) {
			return true
		}
	}
	return false
}

func entryName(entry ast.Node) string {
	if id, ok := entry.(*ast.Identifier); ok {
		return id.Name
	}
	return "entry"
}
