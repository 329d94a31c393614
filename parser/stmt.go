package parser

import (
	"github.com/rubiojr/ifexpr/ast"
	"github.com/rubiojr/ifexpr/scanner"
)

func (p *parser) parseStatement() ast.Statement {
	t := p.tok()
	switch {
	case t.Is("import") && !p.peek(1).Is("(") && !p.peek(1).Is("."):
		return p.parseImport()
	case t.Is("export"):
		return p.parseExport()
	case t.Is("const") || t.Is("var") || p.isLetDeclaration():
		decl := p.parseVarDecl()
		p.consumeSemicolon()
		return finish(p, decl, t.Start)
	case t.Is("function") || p.isAsyncFunction():
		return p.parseFunctionDecl()
	case t.Is("return"):
		return p.parseReturn()
	case t.Is("if"):
		return p.parseIf()
	case t.Is("while"):
		p.next()
		test := p.parseParenExpr()
		body := p.parseStatement()
		return finish(p, &ast.WhileStatement{Test: test, Body: body}, t.Start)
	case t.Is("do"):
		p.next()
		body := p.parseStatement()
		p.expect("while")
		test := p.parseParenExpr()
		p.accept(";")
		return finish(p, &ast.DoWhileStatement{Body: body, Test: test}, t.Start)
	case t.Is("for"):
		return p.parseFor()
	case t.Is("break"), t.Is("continue"):
		p.next()
		var label *ast.Identifier
		if n := p.tok(); n.Kind == scanner.Ident && !n.NewlineBefore && !reserved[n.Text] {
			label = p.parseIdent()
		}
		p.consumeSemicolon()
		if t.Text == "break" {
			return finish(p, &ast.BreakStatement{Label: label}, t.Start)
		}
		return finish(p, &ast.ContinueStatement{Label: label}, t.Start)
	case t.Is("throw"):
		p.next()
		if p.tok().NewlineBefore {
			p.errorf(p.tok().Start, "illegal newline after throw")
		}
		arg := p.parseExpression()
		p.consumeSemicolon()
		return finish(p, &ast.ThrowStatement{Argument: arg}, t.Start)
	case t.Is("try"):
		return p.parseTry()
	case t.Is("switch"):
		return p.parseSwitch()
	case t.Is("{"):
		return p.parseBlock()
	case t.Is(";"):
		p.next()
		return finish(p, &ast.EmptyStatement{}, t.Start)
	case t.Is("class"):
		p.errorf(t.Start, "class declarations are not supported")
	}

	expr := p.parseExpression()
	p.consumeSemicolon()
	return finish(p, &ast.ExpressionStatement{Expression: expr}, t.Start)
}

func (p *parser) isLetDeclaration() bool {
	if !p.is("let") {
		return false
	}
	n := p.peek(1)
	return n.Is("[") || n.Is("{") || (n.Kind == scanner.Ident && !reserved[n.Text])
}

func (p *parser) isAsyncFunction() bool {
	return p.is("async") && p.peek(1).Is("function") && !p.peek(1).NewlineBefore
}

func (p *parser) parseImport() ast.Statement {
	start := p.next().Start
	decl := &ast.ImportDeclaration{}
	if p.tok().Kind == scanner.String {
		decl.Source = p.parseStringLiteral()
		p.consumeSemicolon()
		return finish(p, decl, start)
	}

	more := true
	if t := p.tok(); t.Kind == scanner.Ident {
		local := p.parseIdent()
		decl.Specifiers = append(decl.Specifiers, finish(p, &ast.ImportSpecifier{Form: ast.ImportDefault, Local: local}, t.Start))
		more = p.accept(",")
	}
	if more {
		p.parseImportBindings(decl)
	}

	p.expect("from")
	decl.Source = p.parseStringLiteral()
	p.consumeSemicolon()
	return finish(p, decl, start)
}

// parseImportBindings parses the namespace or named part of an import.
func (p *parser) parseImportBindings(decl *ast.ImportDeclaration) {
	switch t := p.tok(); {
	case t.Is("*"):
		p.next()
		p.expect("as")
		local := p.parseIdent()
		decl.Specifiers = append(decl.Specifiers, finish(p, &ast.ImportSpecifier{Form: ast.ImportNamespace, Local: local}, t.Start))
	case t.Is("{"):
		p.next()
		for !p.is("}") {
			st := p.tok().Start
			var imported *ast.Identifier
			if p.tok().Kind == scanner.String {
				s := p.parseStringLiteral()
				imported = finish(p, &ast.Identifier{Name: s.Value}, st)
			} else {
				imported = p.parseIdentName()
			}
			local := imported
			if p.accept("as") {
				local = p.parseIdent()
			}
			decl.Specifiers = append(decl.Specifiers, finish(p, &ast.ImportSpecifier{Form: ast.ImportNamed, Imported: imported, Local: local}, st))
			if !p.accept(",") {
				break
			}
		}
		p.expect("}")
	default:
		p.unexpected(t)
	}
}

func (p *parser) parseExport() ast.Statement {
	start := p.next().Start
	switch t := p.tok(); {
	case t.Is("default"):
		p.next()
		var decl ast.Node
		if p.is("function") || p.isAsyncFunction() {
			decl = p.parseFunctionExpr()
		} else {
			decl = p.parseAssignment()
			p.consumeSemicolon()
		}
		return finish(p, &ast.ExportDefaultDeclaration{Declaration: decl}, start)
	case t.Is("{"):
		p.next()
		exp := &ast.ExportNamedDeclaration{}
		for !p.is("}") {
			st := p.tok().Start
			local := p.parseIdentName()
			exported := local
			if p.accept("as") {
				exported = p.parseIdentName()
			}
			exp.Specifiers = append(exp.Specifiers, finish(p, &ast.ExportSpecifier{Local: local, Exported: exported}, st))
			if !p.accept(",") {
				break
			}
		}
		p.expect("}")
		if p.accept("from") {
			exp.Source = p.parseStringLiteral()
		}
		p.consumeSemicolon()
		return finish(p, exp, start)
	case t.Is("const"), t.Is("let"), t.Is("var"), t.Is("function"), p.isAsyncFunction():
		decl := p.parseStatement()
		return finish(p, &ast.ExportNamedDeclaration{Declaration: decl}, start)
	default:
		p.errorf(t.Start, "unsupported export form %q", t.Text)
	}
	return nil
}

// parseVarDecl parses const/let/var declarators without the trailing
// semicolon, so for-loop heads can share it.
func (p *parser) parseVarDecl() *ast.VariableDeclaration {
	kw := p.next()
	decl := &ast.VariableDeclaration{Keyword: kw.Text}
	for {
		st := p.tok().Start
		d := &ast.VariableDeclarator{ID: p.parseBindingTarget()}
		if p.accept("=") {
			d.Init = p.parseAssignment()
		}
		decl.Declarations = append(decl.Declarations, finish(p, d, st))
		if !p.accept(",") {
			break
		}
	}
	return finish(p, decl, kw.Start)
}

// parseBindingTarget parses an identifier or a destructuring pattern. Patterns
// are represented by the object and array literals they look like.
func (p *parser) parseBindingTarget() ast.Expr {
	if p.is("{") || p.is("[") {
		saved := p.noIn
		p.noIn = false
		defer func() { p.noIn = saved }()
		return p.parsePrimary()
	}
	return p.parseIdent()
}

func (p *parser) parseFunctionDecl() ast.Statement {
	start := p.tok().Start
	fn := &ast.FunctionDeclaration{}
	fn.Async = p.accept("async")
	p.expect("function")
	fn.Generator = p.accept("*")
	fn.ID = p.parseIdent()
	fn.Params = p.parseParams()
	fn.Body = p.parseBlock()
	return finish(p, fn, start)
}

func (p *parser) parseReturn() ast.Statement {
	start := p.next().Start
	ret := &ast.ReturnStatement{}
	if t := p.tok(); !t.Is(";") && !t.Is("}") && t.Kind != scanner.EOF && !t.NewlineBefore {
		ret.Argument = p.parseExpression()
	}
	p.consumeSemicolon()
	return finish(p, ret, start)
}

func (p *parser) parseIf() ast.Statement {
	start := p.next().Start
	stmt := &ast.IfStatement{Test: p.parseParenExpr()}
	stmt.Consequent = p.parseStatement()
	if p.accept("else") {
		stmt.Alternate = p.parseStatement()
	}
	return finish(p, stmt, start)
}

func (p *parser) parseParenExpr() ast.Expr {
	p.expect("(")
	saved := p.noIn
	p.noIn = false
	e := p.parseExpression()
	p.noIn = saved
	p.expect(")")
	return e
}

func (p *parser) parseFor() ast.Statement {
	start := p.next().Start
	if p.is("await") {
		p.errorf(p.tok().Start, "for await is not supported")
	}
	p.expect("(")

	var init ast.Node
	p.noIn = true
	switch {
	case p.is(";"):
	case p.is("const") || p.is("var") || p.isLetDeclaration():
		init = p.parseVarDecl()
	default:
		init = p.parseExpression()
	}
	p.noIn = false

	if p.is("of") || p.is("in") {
		of := p.next().Text == "of"
		var right ast.Expr
		if of {
			right = p.parseAssignment()
		} else {
			right = p.parseExpression()
		}
		p.expect(")")
		body := p.parseStatement()
		return finish(p, &ast.ForInStatement{Left: init, Right: right, Body: body, Of: of}, start)
	}

	stmt := &ast.ForStatement{Init: init}
	p.expect(";")
	if !p.is(";") {
		stmt.Test = p.parseExpression()
	}
	p.expect(";")
	if !p.is(")") {
		stmt.Update = p.parseExpression()
	}
	p.expect(")")
	stmt.Body = p.parseStatement()
	return finish(p, stmt, start)
}

func (p *parser) parseTry() ast.Statement {
	start := p.next().Start
	stmt := &ast.TryStatement{Block: p.parseBlock()}
	if p.accept("catch") {
		if p.accept("(") {
			stmt.Param = p.parseBindingTarget()
			p.expect(")")
		}
		stmt.Handler = p.parseBlock()
	}
	if p.accept("finally") {
		stmt.Finalizer = p.parseBlock()
	}
	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.errorf(start, "try without catch or finally")
	}
	return finish(p, stmt, start)
}

func (p *parser) parseSwitch() ast.Statement {
	start := p.next().Start
	stmt := &ast.SwitchStatement{Discriminant: p.parseParenExpr()}
	p.expect("{")
	for !p.is("}") {
		t := p.tok()
		c := &ast.SwitchCase{}
		switch {
		case p.accept("case"):
			c.Test = p.parseExpression()
		case p.accept("default"):
		default:
			p.unexpected(t)
		}
		p.expect(":")
		for !p.is("case") && !p.is("default") && !p.is("}") {
			if p.tok().Kind == scanner.EOF {
				p.unexpected(p.tok())
			}
			c.Consequent = append(c.Consequent, p.parseStatement())
		}
		stmt.Cases = append(stmt.Cases, finish(p, c, t.Start))
	}
	p.expect("}")
	return finish(p, stmt, start)
}

func (p *parser) parseBlock() *ast.BlockStatement {
	start := p.expect("{").Start
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	block := &ast.BlockStatement{}
	for !p.is("}") {
		if p.tok().Kind == scanner.EOF {
			p.errorf(start, "unterminated block")
		}
		block.Body = append(block.Body, p.parseStatement())
	}
	p.next()
	return finish(p, block, start)
}
