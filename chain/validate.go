package chain

import "github.com/rubiojr/ifexpr/ast"

// expectCall checks that parent invokes callee and returns the call.
// Errors are reported at the position of at.
func expectCall(t Tree, callee, parent, at ast.Node) (*ast.CallExpression, error) {
	call, ok := parent.(*ast.CallExpression)
	if !ok || ast.Node(call.Callee) != callee {
		return nil, Errorf(ErrNotInvoked, t.Position(at), "")
	}
	if call.Optional {
		return nil, Errorf(ErrNotInvoked, t.Position(at), "expected to be invoked as a function, not with ?.()")
	}
	return call, nil
}

// expectSingleArgument checks that call carries exactly one
// expression-like argument and returns it.
func expectSingleArgument(t Tree, call *ast.CallExpression, name string, at ast.Node) (ast.Expr, error) {
	if n := len(call.Arguments); n != 1 {
		return nil, Errorf(ErrArity, t.Position(at), "%s expects exactly one argument, got %d", name, n)
	}
	arg := call.Arguments[0]
	if err := expectExpression(t, arg); err != nil {
		return nil, err
	}
	return arg, nil
}

// expectExpressions checks every argument of a discard continuation.
func expectExpressions(t Tree, call *ast.CallExpression) error {
	for _, arg := range call.Arguments {
		if err := expectExpression(t, arg); err != nil {
			return err
		}
	}
	return nil
}

func expectExpression(t Tree, n ast.Node) error {
	if !ast.IsExpressionLike(n) {
		return Errorf(ErrNotExpression, t.Position(n), "")
	}
	return nil
}

func expectNoArguments(t Tree, call *ast.CallExpression, name string) error {
	if len(call.Arguments) > 0 {
		return Errorf(ErrEndArguments, t.Position(call.Arguments[0]), "expected no arguments for %s()", name)
	}
	return nil
}

// expectContinuation checks that parent accesses a member of n and returns
// the member expression and its keyword.
func expectContinuation(t Tree, entry, n, parent ast.Node) (*ast.MemberExpression, Keyword, error) {
	member, ok := parent.(*ast.MemberExpression)
	if !ok || ast.Node(member.Object) != n {
		return nil, KeywordUnknown, Errorf(ErrNotTerminated, t.Position(entry), "")
	}
	kw := LookupKeyword(member.PropertyName())
	if member.Optional {
		return nil, KeywordUnknown, Errorf(ErrUnexpectedMember, t.Position(member.Property), "unexpected optional member invocation ?.%s", member.PropertyName())
	}
	if kw == KeywordUnknown {
		name := member.PropertyName()
		if name == "" {
			name = "<computed>"
		}
		return nil, KeywordUnknown, Errorf(ErrUnexpectedMember, t.Position(member.Property), "unexpected member invocation %q", name)
	}
	return member, kw, nil
}
