package macro_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/ifexpr/ast"
	"github.com/rubiojr/ifexpr/chain"
	"github.com/rubiojr/ifexpr/macro"
	"github.com/rubiojr/ifexpr/parser"
	"github.com/rubiojr/ifexpr/printer"
	"github.com/rubiojr/ifexpr/scanner"
)

func parse(t *testing.T, src string) *ast.File {
	t.Helper()
	f, err := parser.ParseFile("m.js", []byte(src))
	require.NoError(t, err)
	return f
}

func TestBindings(t *testing.T) {
	f := parse(t, "import fs from \"fs\";\nimport When from \"ifexpr.macro\";\n")
	bindings, err := macro.Bindings(f, macro.DefaultSource)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "When", bindings[0].Name)
	assert.Same(t, f.Body[1], ast.Statement(bindings[0].Import))
}

func TestBindingsNone(t *testing.T) {
	f := parse(t, "import If from \"other\";\nIf(1);\n")
	bindings, err := macro.Bindings(f, macro.DefaultSource)
	require.NoError(t, err)
	assert.Empty(t, bindings)
}

func TestBindingsInvalid(t *testing.T) {
	for _, src := range []string{
		"import {If} from \"ifexpr.macro\";",
		"import * as If from \"ifexpr.macro\";",
		"import If, {x} from \"ifexpr.macro\";",
		"import \"ifexpr.macro\";",
	} {
		t.Run(src, func(t *testing.T) {
			_, err := macro.Bindings(parse(t, "\n"+src), macro.DefaultSource)
			require.Error(t, err)
			assert.True(t, errors.Is(err, chain.ErrInvalidBinding))
			assert.Contains(t, err.Error(), "L2C1: ifexpr.macro must be imported as a single default binding")
		})
	}
}

func TestReferences(t *testing.T) {
	src := `import If from "ifexpr.macro";
const o = {If: 1, [If]: 2};
o.If;
for (;;) { break; }
function g(If) { return If; }
If(x).end();
`
	f := parse(t, src)
	refs := macro.References(f, "If")
	require.Len(t, refs, 3)

	var lines []int
	for _, r := range refs {
		lines = append(lines, f.Position(r.Pos()).Line)
	}
	// The computed key, the use inside g and the chain entry; the
	// parameter is a declaration and the others are names.
	assert.Equal(t, []int{2, 5, 6}, lines)
}

func TestReferencesInPatterns(t *testing.T) {
	src := `const f = (x = If(a), ...[y = If(b)]) => x;
function g({k = If(c)}, [m] = If(d)) {}
const {n = If(e), [If(f)]: o} = src;
try {} catch ({p = If(g)}) {}
export { If };
`
	f := parse(t, src)
	refs := macro.References(f, "If")

	var lines []int
	for _, r := range refs {
		lines = append(lines, f.Position(r.Pos()).Line)
	}
	// Default values, computed keys and exported names are uses; the
	// binding targets around them are not.
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3, 4, 5}, lines)
}

func TestCheckTemplates(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"interpolation", "const s = `${If(c).then(1).end()}`;", "L1C14: If cannot be used inside a template literal interpolation"},
		{"nested template", "const s = `a${`b${If(c).end()}`}`;", "L1C19: If cannot be used inside a template literal interpolation"},
		{"tagged template", "tag`x ${If(c).end()}`;", "L1C9: If cannot be used inside a template literal interpolation"},
		{"later line", "const s = `one\n${\n  If(c).end()}`;", "L3C3: If cannot be used inside a template literal interpolation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := macro.CheckTemplates(parse(t, tt.src), "If")
			require.Error(t, err)
			assert.ErrorIs(t, err, chain.ErrInTemplate)
			assert.Equal(t, tt.msg, err.Error())
		})
	}

	for _, src := range []string{
		"const s = `${o.If} ${Iff} If(c)`;",
		"const s = `plain`;",
		"const s = `${\"If\"}`;",
	} {
		assert.NoError(t, macro.CheckTemplates(parse(t, src), "If"), src)
	}
}

// usesName reports whether out still refers to name outside of member
// accesses, looking inside template interpolations too.
func usesName(t *testing.T, out, name string) bool {
	t.Helper()
	toks, err := scanner.Tokenize([]byte(out))
	require.NoError(t, err)
	for i, tok := range toks {
		switch {
		case tok.Kind == scanner.Ident && tok.Text == name:
			if i == 0 || !toks[i-1].Is(".") {
				return true
			}
		case tok.Kind == scanner.Template:
			spans, err := scanner.Interpolations([]byte(tok.Text))
			require.NoError(t, err)
			for _, sp := range spans {
				if usesName(t, tok.Text[sp[0]:sp[1]], name) {
					return true
				}
			}
		}
	}
	return false
}

// The import may only go away once nothing refers to it anymore: every
// use is either rewritten or reported.
func TestExpanderLeavesNoBindingBehind(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind error
	}{
		{"arrow default", "const f = (x = If(c).then(1).end()) => x;", nil},
		{"function default", "function g(x = If(c).then(1).end()) { return x; }", nil},
		{"rest default", "const h = (...[y = If(c).end()]) => y;", nil},
		{"destructuring default", "const {a = If(c).then(1).end()} = o;", nil},
		{"catch default", "try { t() } catch ({m = If(c).then(1).end()}) {}", nil},
		{"computed key", "const o = {[If(c).then(\"k\").end()]: 1};", nil},
		{"method body", "const o = {run() { return If(c).else(2).end(); }};", nil},
		{"template", "const s = `${If(c).then(1).end()}`;", chain.ErrInTemplate},
		{"nested template", "const s = `a${`b${If(c).end()}`}`;", chain.ErrInTemplate},
		{"tagged template", "tag`${If(c).end()}`;", chain.ErrInTemplate},
		{"exported", "export { If };", chain.ErrNotInvoked},
		{"shorthand property", "const o = {If};", chain.ErrNotInvoked},
		{"bare reference", "const g = If;", chain.ErrNotInvoked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parse(t, "import If from \"ifexpr.macro\";\n"+tt.src+"\n")
			err := (&macro.Expander{}).Transform(f)
			if tt.kind != nil {
				require.ErrorIs(t, err, tt.kind)
				var cerr *chain.Error
				require.ErrorAs(t, err, &cerr)
				assert.Equal(t, 2, cerr.Pos.Line)
				return
			}
			require.NoError(t, err)
			out := printer.Print(f)
			assert.False(t, strings.Contains(out, "ifexpr.macro"), out)
			assert.False(t, usesName(t, out, "If"), out)
		})
	}
}

func TestExpander(t *testing.T) {
	src := "// lead\nimport If from \"ifexpr.macro\";\nconst v = If(a).then(1).else(2).end();\n"
	f := parse(t, src)
	e := &macro.Expander{}
	require.NoError(t, e.Transform(f))
	assert.Equal(t, 1, e.Chains)
	assert.Equal(t, "ifexpr", e.Name())
	assert.Equal(t, "// lead\nconst v = a ? 1 : 2;\n", printer.Print(f))
}

func TestExpanderCustomSource(t *testing.T) {
	f := parse(t, "import when from \"./when\";\nx = when(a).end();\n")
	e := &macro.Expander{Source: "./when"}
	require.NoError(t, e.Transform(f))
	assert.Equal(t, "x = a ? undefined : undefined;\n", printer.Print(f))
}

func TestExpanderWithoutImport(t *testing.T) {
	src := "If(a).then(b);\n"
	f := parse(t, src)
	e := &macro.Expander{}
	require.NoError(t, e.Transform(f))
	assert.Zero(t, e.Chains)
	assert.Equal(t, src, printer.Print(f))
}

func TestExpanderKeepsImportOnError(t *testing.T) {
	f := parse(t, "import If from \"ifexpr.macro\";\nIf(a).then(b);\n")
	e := &macro.Expander{}
	err := e.Transform(f)
	require.ErrorIs(t, err, chain.ErrNotTerminated)
	assert.Equal(t, "L2C1: chain not terminated with an end", err.Error())
	assert.Len(t, f.Body, 2)
}
