package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/ifexpr/ast"
	"github.com/rubiojr/ifexpr/parser"
	"github.com/rubiojr/ifexpr/printer"
)

// rewrite parses src, replaces the first identifier named target with the
// expression built by build, and prints the file.
func rewrite(t *testing.T, src, target string, build func(f *ast.File, fac *ast.Factory) ast.Expr) string {
	t.Helper()
	f, err := parser.ParseFile("t.js", []byte(src))
	require.NoError(t, err)
	ix := ast.NewIndex(f)

	var old ast.Node
	ast.Inspect(f, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok && id.Name == target && old == nil {
			old = id
		}
		return old == nil
	})
	require.NotNil(t, old)
	require.NoError(t, ix.Replace(old, build(f, ast.NewFactory())))
	return printer.Print(f)
}

func ternary(f *ast.File, fac *ast.Factory) ast.Expr {
	return fac.Conditional(fac.Identifier("c"), fac.Identifier("a"), fac.Undefined())
}

func TestPrintUntouched(t *testing.T) {
	src := "#!/usr/bin/env node\n// header\nconst a = {b: [1, 2]} /* x */;\n\nfunction f() {\n\treturn a\n}\n"
	f, err := parser.ParseFile("t.js", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, src, printer.Print(f))
}

func TestPrintParenthesization(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"initializer", "const v = X; // keep\n", "const v = c ? a : undefined; // keep\n"},
		{"binary right operand", "y = 1 + X;", "y = 1 + (c ? a : undefined);"},
		{"binary left operand", "y = X * 2;", "y = (c ? a : undefined) * 2;"},
		{"member object", "X.toString();", "(c ? a : undefined).toString();"},
		{"callee", "X(1);", "(c ? a : undefined)(1);"},
		{"argument", "f(X, 2);", "f(c ? a : undefined, 2);"},
		{"conditional alternate", "q ? r : X;", "q ? r : c ? a : undefined;"},
		{"conditional test", "X ? r : s;", "(c ? a : undefined) ? r : s;"},
		{"unary", "!X;", "!(c ? a : undefined);"},
		{"already parenthesized", "y = 1 + (X);", "y = 1 + (c ? a : undefined);"},
		{"return", "function g() { return X }", "function g() { return c ? a : undefined }"},
		{"template untouched", "t = `${X}`; X;", "t = `${X}`; c ? a : undefined;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewrite(t, tt.src, "X", ternary))
		})
	}
}

func TestPrintSequence(t *testing.T) {
	seq := func(f *ast.File, fac *ast.Factory) ast.Expr {
		return fac.Sequence([]ast.Expr{fac.Identifier("a"), fac.Identifier("b")})
	}
	assert.Equal(t, "f((a, b));", rewrite(t, "f(X);", "X", seq))
	assert.Equal(t, "const v = (a, b);", rewrite(t, "const v = X;", "X", seq))
	assert.Equal(t, "a, b;", rewrite(t, "X;", "X", seq))

	inTernary := func(f *ast.File, fac *ast.Factory) ast.Expr {
		return fac.Conditional(fac.Identifier("c"), seq(f, fac), fac.Undefined())
	}
	assert.Equal(t, "v = c ? (a, b) : undefined;", rewrite(t, "v = X;", "X", inTernary))
}

func TestPrintMovedParsedNodes(t *testing.T) {
	// The replacement reuses parsed nodes from elsewhere in the file; their
	// text, comments included, comes from the source.
	src := "list = [g(1) /* one */, {k: 1}];\nX;\n"
	build := func(f *ast.File, fac *ast.Factory) ast.Expr {
		arr := f.Body[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression).Right.(*ast.ArrayExpression)
		return fac.Conditional(arr.Elements[1], arr.Elements[0], fac.Undefined())
	}
	assert.Equal(t, "list = [g(1) /* one */, {k: 1}];\n({k: 1} ? g(1) : undefined);\n", rewrite(t, src, "X", build))
}

func TestPrintArrowBodyObject(t *testing.T) {
	src := "o = [{}];\nh = () => X;\n"
	build := func(f *ast.File, fac *ast.Factory) ast.Expr {
		arr := f.Body[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression).Right.(*ast.ArrayExpression)
		return fac.Conditional(arr.Elements[0], fac.Identifier("a"), fac.Undefined())
	}
	assert.Equal(t, "o = [{}];\nh = () => ({} ? a : undefined);\n", rewrite(t, src, "X", build))
}

func TestPrintNestedReplacement(t *testing.T) {
	f, err := parser.ParseFile("t.js", []byte("out(A, wrap(B));\n"))
	require.NoError(t, err)
	ix := ast.NewIndex(f)
	fac := ast.NewFactory()

	call := f.Body[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	inner := call.Arguments[1].(*ast.CallExpression)
	require.NoError(t, ix.Replace(inner.Arguments[0], fac.Identifier("b2")))
	require.NoError(t, ix.Replace(call.Arguments[0], fac.Conditional(fac.Identifier("p"), call.Arguments[1], fac.Undefined())))

	assert.Equal(t, "out(p ? wrap(b2) : undefined, wrap(b2));\n", printer.Print(f))
}

func TestPrintRemovedStatement(t *testing.T) {
	src := "import If from \"ifexpr.macro\";\n// doc\nconst a = X;\n"
	f, err := parser.ParseFile("t.js", []byte(src))
	require.NoError(t, err)
	f.RemoveStatement(f.Body[0])
	assert.Equal(t, "// doc\nconst a = X;\n", printer.Print(f))
}

func TestNeedsParensNullishMix(t *testing.T) {
	e, _, err := parser.ParseExpr("a || b")
	require.NoError(t, err)
	y := &ast.Identifier{Name: "y"}

	nullish := &ast.LogicalExpression{Operator: "??", Left: e, Right: y}
	assert.True(t, printer.NeedsParens(nullish, e))

	or := &ast.LogicalExpression{Operator: "||", Left: e, Right: y}
	assert.False(t, printer.NeedsParens(or, e))
}

func TestExpr(t *testing.T) {
	e, f, err := parser.ParseExpr("cond && go()")
	require.NoError(t, err)
	fac := ast.NewFactory()
	out := printer.Expr(fac.Conditional(e, fac.Identifier("x"), fac.Undefined()), f.Src)
	assert.Equal(t, "cond && go() ? x : undefined", out)
}
