package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(t *testing.T, src string) []string {
	t.Helper()
	toks, err := Tokenize([]byte(src))
	require.NoError(t, err)
	var out []string
	for _, tok := range toks {
		if tok.Kind != EOF {
			out = append(out, tok.Text)
		}
	}
	return out
}

func TestTokenizeBasic(t *testing.T) {
	assert.Equal(t,
		[]string{"const", "x", "=", "If", "(", "a", ">=", "1", ")", ".", "then", "(", `"yes"`, ")", ";"},
		texts(t, `const x = If(a >= 1).then("yes");`))
}

func TestTokenizeKinds(t *testing.T) {
	toks, err := Tokenize([]byte("/re[/]/g a 1.5e3 'it\\'s' `t ${x}` ..."))
	require.NoError(t, err)
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{RegExp, Ident, Number, String, Template, Punct, EOF}, kinds)
	assert.Equal(t, "/re[/]/g", toks[0].Text)
	assert.Equal(t, `'it\'s'`, toks[3].Text)
}

func TestTokenizeSkipsComments(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, texts(t, "a // line\n/* block */ b"))
}

func TestNewlineBefore(t *testing.T) {
	toks, err := Tokenize([]byte("a\nb /* x\n */ c d"))
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.False(t, toks[0].NewlineBefore)
	assert.True(t, toks[1].NewlineBefore)
	assert.True(t, toks[2].NewlineBefore, "multi-line comment counts as a line break")
	assert.False(t, toks[3].NewlineBefore)
}

func TestSlashDisambiguation(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"a / b / c", []string{"a", "/", "b", "/", "c"}},
		{"x = /b/.test(s)", []string{"x", "=", "/b/", ".", "test", "(", "s", ")"}},
		{"f(x) / 2", []string{"f", "(", "x", ")", "/", "2"}},
		{"return /x/i", []string{"return", "/x/i"}},
		{"a[0] /= 2", []string{"a", "[", "0", "]", "/=", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, texts(t, tt.src))
		})
	}
}

func TestPunctuationLongestMatch(t *testing.T) {
	assert.Equal(t, []string{"a", ">>>=", "b", "??", "c", "?.", "d", "===", "e"},
		texts(t, "a >>>= b ?? c ?.d === e"))
	assert.Equal(t, []string{"a", "?", ".5", ":", "b"}, texts(t, "a?.5:b"))
}

func TestTemplateInterpolation(t *testing.T) {
	toks, err := Tokenize([]byte("`a ${ {b: `c${d}`}.b } e` + 1"))
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, Template, toks[0].Kind)
	assert.Equal(t, "`a ${ {b: `c${d}`}.b } e`", toks[0].Text)
}

func TestShebang(t *testing.T) {
	assert.Equal(t, []string{"a"}, texts(t, "#!/usr/bin/env node\na"))
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		src    string
		offset int
		msg    string
	}{
		{`"abc`, 0, "unterminated string"},
		{"x /* y", 2, "unterminated block comment"},
		{"`abc", 0, "unterminated template"},
		{"a = /x", 4, "unterminated regular expression"},
		{"a \x01", 2, "unexpected character"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			_, err := Tokenize([]byte(tt.src))
			require.Error(t, err)
			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.offset, se.Offset)
			assert.Contains(t, se.Msg, tt.msg)
		})
	}
}

func TestInterpolations(t *testing.T) {
	raw := "`a${x}b${`c${y}`}`"
	spans, err := Interpolations([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{4, 5}, {9, 16}}, spans)
	assert.Equal(t, "x", raw[spans[0][0]:spans[0][1]])
	assert.Equal(t, "`c${y}`", raw[spans[1][0]:spans[1][1]])

	spans, err = Interpolations([]byte("`plain \\${no}`"))
	require.NoError(t, err)
	assert.Empty(t, spans)

	_, err = Interpolations([]byte("x"))
	assert.Error(t, err)
	_, err = Interpolations([]byte("`${a"))
	assert.Error(t, err)
}
