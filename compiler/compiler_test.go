package compiler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/ifexpr/chain"
	"github.com/rubiojr/ifexpr/parser"
)

const chainSrc = `import If from "ifexpr.macro";

export const label = (n) =>
  If(n > 1).then("many").elseIf(n === 1).then("one").else("none").end();
`

const chainOut = `
export const label = (n) =>
  n > 1 ? "many" : n === 1 ? "one" : "none";
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCompileSource(t *testing.T) {
	c := &Compiler{}
	res, err := c.CompileSource("label.js", []byte(chainSrc))
	require.NoError(t, err)
	assert.Equal(t, chainOut, res.Output)
	assert.Equal(t, 1, res.Chains)
	assert.Equal(t, "label.js", res.SourceFile)
	assert.True(t, res.Changed())
}

func TestCompileSourceUnchanged(t *testing.T) {
	src := "const x = 1; // nothing to do\n"
	res, err := (&Compiler{}).CompileSource("plain.js", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, src, res.Output)
	assert.Zero(t, res.Chains)
	assert.False(t, res.Changed())
}

func TestCompileSourceCustomMacro(t *testing.T) {
	src := "import If from \"@acme/if\";\nv = If(a).then(b).end();\n"
	c := &Compiler{Macro: "@acme/if"}
	res, err := c.CompileSource("a.js", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "v = a ? b : undefined;\n", res.Output)

	res, err = (&Compiler{}).CompileSource("a.js", []byte(src))
	require.NoError(t, err)
	assert.False(t, res.Changed())
}

func TestCompileSourceChainError(t *testing.T) {
	src := "import If from \"ifexpr.macro\";\nconst v = If(a)\n  .then(b);\n"
	_, err := (&Compiler{}).CompileSource("bad.js", []byte(src))
	require.Error(t, err)
	assert.Equal(t, "bad.js: L2C11: chain not terminated with an end", err.Error())
	assert.True(t, errors.Is(err, chain.ErrNotTerminated))
}

func TestCompileSourceSyntaxError(t *testing.T) {
	_, err := (&Compiler{}).CompileSource("syntax.js", []byte("const = 1;\n"))
	require.Error(t, err)
	var perr *parser.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Pos.Line)
	assert.Contains(t, err.Error(), "syntax.js:1:7: ")
}

func TestCompileAndEmit(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "label.js", chainSrc)

	c := &Compiler{}
	out, err := c.Emit(path)
	require.NoError(t, err)
	assert.Equal(t, chainOut, out)

	_, err = c.Compile(filepath.Join(dir, "missing.js"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading ")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCompileFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeTestFile(t, dir, "a.js", chainSrc)
	bad1 := writeTestFile(t, dir, "b.js", "import If from \"ifexpr.macro\";\nIf(x);\n")
	plain := writeTestFile(t, dir, "c.js", "run();\n")
	bad2 := writeTestFile(t, dir, "d.js", "import {If} from \"ifexpr.macro\";\n")

	results, err := (&Compiler{}).CompileFiles(context.Background(), []string{good, bad1, plain, bad2}, 3)
	require.Error(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, chainOut, results[0].Output)
	assert.Nil(t, results[1])
	assert.Equal(t, "run();\n", results[2].Output)
	assert.Nil(t, results[3])

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)
	assert.ErrorIs(t, merr.Errors[0], chain.ErrNotTerminated)
	assert.ErrorIs(t, merr.Errors[1], chain.ErrInvalidBinding)
	assert.Equal(t, merr.Errors[0].Error()+"\n"+merr.Errors[1].Error(), err.Error())
}

func TestCompileFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.js", chainSrc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&Compiler{}).CompileFiles(ctx, []string{path, path}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.js", "")
	writeTestFile(t, dir, "sub/b.mjs", "")
	writeTestFile(t, dir, "sub/c.ts", "")
	writeTestFile(t, dir, "node_modules/dep/index.js", "")
	writeTestFile(t, dir, ".cache/x.js", "")
	explicit := writeTestFile(t, t.TempDir(), "notes.txt", "")

	files, err := CollectFiles([]string{dir, explicit}, []string{".js", ".mjs"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "sub", "b.mjs"),
		explicit,
	}, files)

	_, err = CollectFiles([]string{filepath.Join(dir, "nope")}, []string{".js"})
	assert.Error(t, err)
}

func TestGolden(t *testing.T) {
	inputs, err := filepath.Glob(filepath.Join("testdata", "*.js"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	c := &Compiler{}
	for _, in := range inputs {
		t.Run(filepath.Base(in), func(t *testing.T) {
			want, err := os.ReadFile(strings.TrimSuffix(in, ".js") + ".golden")
			require.NoError(t, err)
			got, err := c.Emit(in)
			require.NoError(t, err)
			assert.Equal(t, string(want), got)

			// Rewritten output has nothing left to rewrite.
			again, err := c.CompileSource(in, []byte(got))
			require.NoError(t, err)
			assert.False(t, again.Changed())
		})
	}
}
