// Package parser builds an ast.File from JavaScript source. It accepts
// ES modules without classes: imports and exports, declarations, the
// common statements and the full expression grammar. Automatic semicolon
// insertion follows the usual newline, closing brace and end-of-file rules.
package parser

import (
	"errors"
	"fmt"

	"github.com/rubiojr/ifexpr/ast"
	"github.com/rubiojr/ifexpr/scanner"
)

// Error is a syntax error with its source position.
type Error struct {
	Pos ast.Position
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Msg) }

// ParseFile parses a complete source file.
func ParseFile(filename string, src []byte) (*ast.File, error) {
	f := ast.NewFile(filename, src)
	p, err := newParser(f)
	if err != nil {
		return nil, err
	}
	if err := p.parseBody(); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseExpr parses src as a single expression. The returned file holds the
// source for positions and printing; its body is empty.
func ParseExpr(src string) (ast.Expr, *ast.File, error) {
	f := ast.NewFile("", []byte(src))
	p, err := newParser(f)
	if err != nil {
		return nil, nil, err
	}
	e, err := p.parseOnlyExpression()
	if err != nil {
		return nil, nil, err
	}
	return e, f, nil
}

func newParser(f *ast.File) (*parser, error) {
	toks, err := scanner.Tokenize(f.Src)
	if err != nil {
		var se *scanner.Error
		if errors.As(err, &se) {
			return nil, &Error{Pos: f.Position(se.Offset), Msg: se.Msg}
		}
		return nil, err
	}
	return &parser{file: f, toks: toks}, nil
}

func (p *parser) parseBody() (err error) {
	defer p.recover(&err)
	for p.tok().Kind != scanner.EOF {
		p.file.Body = append(p.file.Body, p.parseStatement())
	}
	return nil
}

func (p *parser) parseOnlyExpression() (e ast.Expr, err error) {
	defer p.recover(&err)
	e = p.parseExpression()
	if t := p.tok(); t.Kind != scanner.EOF {
		p.unexpected(t)
	}
	return e, nil
}

// bailout is the panic payload used to unwind on the first syntax error.
type bailout struct{ err *Error }

type parser struct {
	file *ast.File
	toks []scanner.Token
	pos  int
	noIn bool // inside a for-init, where `in` ends the expression
}

func (p *parser) recover(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}

func (p *parser) errorf(offset int, format string, args ...any) {
	panic(bailout{&Error{Pos: p.file.Position(offset), Msg: fmt.Sprintf(format, args...)}})
}

func (p *parser) unexpected(t scanner.Token) {
	if t.Kind == scanner.EOF {
		p.errorf(t.Start, "unexpected end of file")
	}
	p.errorf(t.Start, "unexpected %s %q", t.Kind, t.Text)
}

func (p *parser) tok() scanner.Token { return p.toks[p.pos] }

func (p *parser) peek(n int) scanner.Token {
	if p.pos+n < len(p.toks) {
		return p.toks[p.pos+n]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) next() scanner.Token {
	t := p.toks[p.pos]
	if t.Kind != scanner.EOF {
		p.pos++
	}
	return t
}

// prevEnd returns the end offset of the last consumed token.
func (p *parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].End
}

func (p *parser) is(text string) bool { return p.tok().Is(text) }

func (p *parser) accept(text string) bool {
	if p.is(text) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(text string) scanner.Token {
	t := p.tok()
	if !t.Is(text) {
		if t.Kind == scanner.EOF {
			p.errorf(t.Start, "expected %q, found end of file", text)
		}
		p.errorf(t.Start, "expected %q, found %q", text, t.Text)
	}
	return p.next()
}

// consumeSemicolon ends a statement, applying automatic semicolon insertion.
func (p *parser) consumeSemicolon() {
	if p.accept(";") {
		return
	}
	t := p.tok()
	if t.Is("}") || t.Kind == scanner.EOF || t.NewlineBefore {
		return
	}
	p.unexpected(t)
}

type spanner interface{ SetSpan(start, end int) }

// finish records the extent of n from start to the last consumed token.
func finish[T spanner](p *parser, n T, start int) T {
	n.SetSpan(start, p.prevEnd())
	return n
}

var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true,
}

// parseIdent parses an identifier in a binding or reference position.
func (p *parser) parseIdent() *ast.Identifier {
	t := p.tok()
	if t.Kind != scanner.Ident || reserved[t.Text] {
		p.unexpected(t)
	}
	p.next()
	return finish(p, &ast.Identifier{Name: t.Text}, t.Start)
}

// parseIdentName parses any identifier, keywords included, as used after
// a dot and in property keys.
func (p *parser) parseIdentName() *ast.Identifier {
	t := p.tok()
	if t.Kind != scanner.Ident {
		p.unexpected(t)
	}
	p.next()
	return finish(p, &ast.Identifier{Name: t.Text}, t.Start)
}

func (p *parser) parseStringLiteral() *ast.StringLiteral {
	t := p.tok()
	if t.Kind != scanner.String {
		p.unexpected(t)
	}
	p.next()
	return finish(p, &ast.StringLiteral{Raw: t.Text, Value: unquote(t.Text)}, t.Start)
}
