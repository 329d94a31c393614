package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rubiojr/ifexpr/ast"
	"github.com/rubiojr/ifexpr/scanner"
)

func (p *parser) parseExpression() ast.Expr {
	start := p.tok().Start
	e := p.parseAssignment()
	if !p.is(",") {
		return e
	}
	seq := &ast.SequenceExpression{Expressions: []ast.Expr{e}}
	for p.accept(",") {
		seq.Expressions = append(seq.Expressions, p.parseAssignment())
	}
	return finish(p, seq, start)
}

func (p *parser) parseAssignment() ast.Expr {
	start := p.tok().Start
	if p.is("async") && !p.peek(1).NewlineBefore && p.arrowAt(1) {
		p.next()
		return p.parseArrow(start, true)
	}
	if p.arrowAt(0) {
		return p.parseArrow(start, false)
	}

	left := p.parseConditional()
	if t := p.tok(); t.Kind == scanner.Punct && ast.IsAssignOperator(t.Text) {
		p.next()
		right := p.parseAssignment()
		return finish(p, &ast.AssignmentExpression{Operator: t.Text, Left: left, Right: right}, start)
	}
	return left
}

// arrowAt reports whether the tokens at offset i start an arrow function:
// a lone parameter or a parenthesized list followed by =>.
func (p *parser) arrowAt(i int) bool {
	t := p.peek(i)
	switch {
	case t.Kind == scanner.Ident && !reserved[t.Text]:
		n := p.peek(i + 1)
		return n.Is("=>") && !n.NewlineBefore
	case t.Is("("):
		j := p.matchBracket(i)
		if j < 0 {
			return false
		}
		n := p.peek(j + 1)
		return n.Is("=>") && !n.NewlineBefore
	}
	return false
}

// matchBracket returns the offset of the bracket closing the one at offset
// i, or -1 if the input ends first.
func (p *parser) matchBracket(i int) int {
	depth := 0
	for j := i; p.pos+j < len(p.toks); j++ {
		t := p.toks[p.pos+j]
		if t.Kind == scanner.EOF {
			return -1
		}
		if t.Kind != scanner.Punct || len(t.Text) != 1 {
			continue
		}
		switch {
		case scanner.IsOpenBracket(t.Text[0]):
			depth++
		case scanner.IsCloseBracket(t.Text[0]):
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func (p *parser) parseArrow(start int, async bool) ast.Expr {
	fn := &ast.ArrowFunctionExpression{Async: async}
	if p.is("(") {
		fn.Params = p.parseParams()
	} else {
		fn.Params = []ast.Expr{p.parseIdent()}
	}
	p.expect("=>")
	if p.is("{") {
		fn.Body = p.parseBlock()
	} else {
		fn.Body = p.parseAssignment()
	}
	return finish(p, fn, start)
}

func (p *parser) parseParams() []ast.Expr {
	p.expect("(")
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	params := []ast.Expr{}
	for !p.is(")") {
		start := p.tok().Start
		if p.accept("...") {
			target := p.parseBindingTarget()
			params = append(params, finish(p, &ast.SpreadElement{Argument: target}, start))
		} else {
			target := p.parseBindingTarget()
			if p.accept("=") {
				def := p.parseAssignment()
				target = finish(p, &ast.AssignmentExpression{Operator: "=", Left: target, Right: def}, start)
			}
			params = append(params, target)
		}
		if !p.accept(",") {
			break
		}
	}
	p.expect(")")
	return params
}

func (p *parser) parseConditional() ast.Expr {
	start := p.tok().Start
	test := p.parseBinary(ast.PrecNullish)
	if !p.accept("?") {
		return test
	}
	saved := p.noIn
	p.noIn = false
	cons := p.parseAssignment()
	p.noIn = saved
	p.expect(":")
	alt := p.parseAssignment()
	return finish(p, &ast.ConditionalExpression{Test: test, Consequent: cons, Alternate: alt}, start)
}

// parseBinary parses operators binding at least as tightly as minPrec by
// precedence climbing. ** is right-associative.
func (p *parser) parseBinary(minPrec int) ast.Expr {
	start := p.tok().Start
	left := p.parseUnary()
	for {
		t := p.tok()
		if t.Kind != scanner.Punct && t.Kind != scanner.Ident {
			return left
		}
		prec := ast.BinaryPrecedence(t.Text)
		if prec == 0 || prec < minPrec || (t.Text == "in" && p.noIn) {
			return left
		}
		p.next()
		var right ast.Expr
		if t.Text == "**" {
			right = p.parseBinary(prec)
		} else {
			right = p.parseBinary(prec + 1)
		}
		if ast.IsLogicalOperator(t.Text) {
			left = finish(p, &ast.LogicalExpression{Operator: t.Text, Left: left, Right: right}, start)
		} else {
			left = finish(p, &ast.BinaryExpression{Operator: t.Text, Left: left, Right: right}, start)
		}
	}
}

var unaryOperators = map[string]bool{
	"!": true, "-": true, "+": true, "~": true,
	"typeof": true, "void": true, "delete": true, "await": true,
}

func (p *parser) parseUnary() ast.Expr {
	t := p.tok()
	switch {
	case (t.Kind == scanner.Punct || t.Kind == scanner.Ident) && unaryOperators[t.Text]:
		p.next()
		arg := p.parseUnary()
		return finish(p, &ast.UnaryExpression{Operator: t.Text, Argument: arg}, t.Start)
	case t.Is("++"), t.Is("--"):
		p.next()
		arg := p.parseUnary()
		return finish(p, &ast.UpdateExpression{Operator: t.Text, Prefix: true, Argument: arg}, t.Start)
	}

	e := p.parseCallMember()
	if n := p.tok(); (n.Is("++") || n.Is("--")) && !n.NewlineBefore {
		p.next()
		return finish(p, &ast.UpdateExpression{Operator: n.Text, Argument: e}, t.Start)
	}
	return e
}

func (p *parser) parseCallMember() ast.Expr {
	start := p.tok().Start
	var e ast.Expr
	if p.is("new") {
		e = p.parseNew()
	} else {
		e = p.parsePrimary()
	}
	for {
		switch t := p.tok(); {
		case t.Is("."):
			p.next()
			prop := p.parseIdentName()
			e = finish(p, &ast.MemberExpression{Object: e, Property: prop}, start)
		case t.Is("?."):
			p.next()
			switch {
			case p.is("("):
				args := p.parseArguments()
				e = finish(p, &ast.CallExpression{Callee: e, Arguments: args, Optional: true}, start)
			case p.is("["):
				prop := p.parseComputedKey()
				e = finish(p, &ast.MemberExpression{Object: e, Property: prop, Computed: true, Optional: true}, start)
			default:
				prop := p.parseIdentName()
				e = finish(p, &ast.MemberExpression{Object: e, Property: prop, Optional: true}, start)
			}
		case t.Is("["):
			prop := p.parseComputedKey()
			e = finish(p, &ast.MemberExpression{Object: e, Property: prop, Computed: true}, start)
		case t.Is("("):
			args := p.parseArguments()
			e = finish(p, &ast.CallExpression{Callee: e, Arguments: args}, start)
		case t.Kind == scanner.Template:
			quasi := p.parseTemplate()
			e = finish(p, &ast.TaggedTemplateExpression{Tag: e, Quasi: quasi}, start)
		default:
			return e
		}
	}
}

// parseNew parses new callee[(args)]. The callee takes member accesses but
// no calls, so new a.b(c) constructs a.b.
func (p *parser) parseNew() ast.Expr {
	start := p.expect("new").Start
	var callee ast.Expr
	if p.is("new") {
		callee = p.parseNew()
	} else {
		callee = p.parsePrimary()
	}
	for {
		if p.accept(".") {
			prop := p.parseIdentName()
			callee = finish(p, &ast.MemberExpression{Object: callee, Property: prop}, callee.Span().Start)
			continue
		}
		if p.is("[") {
			prop := p.parseComputedKey()
			callee = finish(p, &ast.MemberExpression{Object: callee, Property: prop, Computed: true}, callee.Span().Start)
			continue
		}
		break
	}
	n := &ast.NewExpression{Callee: callee}
	if p.is("(") {
		n.Arguments = p.parseArguments()
	}
	return finish(p, n, start)
}

func (p *parser) parseComputedKey() ast.Expr {
	p.expect("[")
	saved := p.noIn
	p.noIn = false
	e := p.parseAssignment()
	p.noIn = saved
	p.expect("]")
	return e
}

func (p *parser) parseArguments() []ast.Expr {
	p.expect("(")
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	args := []ast.Expr{}
	for !p.is(")") {
		start := p.tok().Start
		if p.accept("...") {
			arg := p.parseAssignment()
			args = append(args, finish(p, &ast.SpreadElement{Argument: arg}, start))
		} else {
			args = append(args, p.parseAssignment())
		}
		if !p.accept(",") {
			break
		}
	}
	p.expect(")")
	return args
}

func (p *parser) parseTemplate() *ast.TemplateLiteral {
	t := p.next()
	return finish(p, &ast.TemplateLiteral{Raw: t.Text}, t.Start)
}

func (p *parser) parsePrimary() ast.Expr {
	t := p.tok()
	switch t.Kind {
	case scanner.Number:
		p.next()
		return finish(p, &ast.NumericLiteral{Raw: t.Text}, t.Start)
	case scanner.String:
		return p.parseStringLiteral()
	case scanner.Template:
		return p.parseTemplate()
	case scanner.RegExp:
		p.next()
		return finish(p, &ast.RegExpLiteral{Raw: t.Text}, t.Start)
	case scanner.Ident:
		switch t.Text {
		case "function":
			return p.parseFunctionExpr()
		case "async":
			if n := p.peek(1); n.Is("function") && !n.NewlineBefore {
				return p.parseFunctionExpr()
			}
		case "this":
			p.next()
			return finish(p, &ast.ThisExpression{}, t.Start)
		case "true", "false":
			p.next()
			return finish(p, &ast.BooleanLiteral{Value: t.Text == "true"}, t.Start)
		case "null":
			p.next()
			return finish(p, &ast.NullLiteral{}, t.Start)
		case "import":
			// import(...) and import.meta
			p.next()
			return finish(p, &ast.Identifier{Name: t.Text}, t.Start)
		case "class":
			p.errorf(t.Start, "class expressions are not supported")
		}
		return p.parseIdent()
	}

	switch {
	case t.Is("("):
		p.next()
		saved := p.noIn
		p.noIn = false
		e := p.parseExpression()
		p.noIn = saved
		p.expect(")")
		ast.Parenthesize(e, t.Start, p.prevEnd())
		return e
	case t.Is("["):
		return p.parseArray()
	case t.Is("{"):
		return p.parseObject()
	}
	p.unexpected(t)
	return nil
}

func (p *parser) parseArray() ast.Expr {
	start := p.expect("[").Start
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	arr := &ast.ArrayExpression{Elements: []ast.Expr{}}
	for !p.is("]") {
		if p.accept(",") {
			arr.Elements = append(arr.Elements, nil)
			continue
		}
		st := p.tok().Start
		if p.accept("...") {
			arg := p.parseAssignment()
			arr.Elements = append(arr.Elements, finish(p, &ast.SpreadElement{Argument: arg}, st))
		} else {
			arr.Elements = append(arr.Elements, p.parseAssignment())
		}
		if !p.accept(",") {
			break
		}
	}
	p.expect("]")
	return finish(p, arr, start)
}

func (p *parser) parseObject() ast.Expr {
	start := p.expect("{").Start
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	obj := &ast.ObjectExpression{Properties: []ast.Node{}}
	for !p.is("}") {
		st := p.tok().Start
		if p.accept("...") {
			arg := p.parseAssignment()
			obj.Properties = append(obj.Properties, finish(p, &ast.SpreadElement{Argument: arg}, st))
		} else {
			obj.Properties = append(obj.Properties, p.parseProperty())
		}
		if !p.accept(",") {
			break
		}
	}
	p.expect("}")
	return finish(p, obj, start)
}

func (p *parser) parseProperty() *ast.Property {
	start := p.tok().Start
	prop := &ast.Property{}

	// get/set/async prefixes are only modifiers when a key follows them.
	var async, generator bool
	if t := p.tok(); t.Is("get") || t.Is("set") || t.Is("async") {
		if n := p.peek(1); !n.Is(",") && !n.Is(":") && !n.Is("(") && !n.Is("}") && !n.Is("=") {
			p.next()
			async = t.Text == "async"
			prop.Method = true
		}
	}
	if p.accept("*") {
		generator = true
		prop.Method = true
	}

	switch t := p.tok(); {
	case t.Is("["):
		prop.Key = p.parseComputedKey()
		prop.Computed = true
	case t.Kind == scanner.String:
		prop.Key = p.parseStringLiteral()
	case t.Kind == scanner.Number:
		p.next()
		prop.Key = finish(p, &ast.NumericLiteral{Raw: t.Text}, t.Start)
	default:
		prop.Key = p.parseIdentName()
	}

	key, isIdent := prop.Key.(*ast.Identifier)
	switch {
	case p.is("("):
		fnStart := p.tok().Start
		fn := &ast.FunctionExpression{Async: async, Generator: generator}
		fn.Params = p.parseParams()
		fn.Body = p.parseBlock()
		prop.Value = finish(p, fn, fnStart)
		prop.Method = true
	case prop.Method:
		p.unexpected(p.tok())
	case p.accept(":"):
		prop.Value = p.parseAssignment()
	case isIdent && !prop.Computed && p.is("="):
		// Shorthand with a default, only valid as a destructuring pattern.
		p.next()
		def := p.parseAssignment()
		prop.Value = finish(p, &ast.AssignmentExpression{Operator: "=", Left: key, Right: def}, key.Pos())
		prop.Shorthand = true
	case isIdent && !prop.Computed:
		if reserved[key.Name] {
			p.errorf(key.Pos(), "unexpected keyword %q", key.Name)
		}
		prop.Value = key
		prop.Shorthand = true
	default:
		p.unexpected(p.tok())
	}
	return finish(p, prop, start)
}

func (p *parser) parseFunctionExpr() ast.Expr {
	start := p.tok().Start
	fn := &ast.FunctionExpression{}
	fn.Async = p.accept("async")
	p.expect("function")
	fn.Generator = p.accept("*")
	if !p.is("(") {
		fn.ID = p.parseIdent()
	}
	fn.Params = p.parseParams()
	fn.Body = p.parseBlock()
	return finish(p, fn, start)
}

// unquote decodes the escapes of a quoted string literal. Malformed
// escapes keep the escaped character.
func unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	s := raw[1 : len(raw)-1]
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch c = s[i]; c {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case '\n':
		case 'x':
			if r, n := hexRune(s[i+1:], 2); n > 0 {
				b.WriteRune(r)
				i += n
			} else {
				b.WriteByte(c)
			}
		case 'u':
			rest := s[i+1:]
			if strings.HasPrefix(rest, "{") {
				if end := strings.IndexByte(rest, '}'); end > 1 {
					if r, n := hexRune(rest[1:end], end-1); n > 0 {
						b.WriteRune(r)
						i += end + 1
						break
					}
				}
			} else if r, n := hexRune(rest, 4); n > 0 {
				b.WriteRune(r)
				i += n
				break
			}
			b.WriteByte(c)
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == '\u2028' || r == '\u2029' {
				i += size - 1
				continue
			}
			b.WriteString(s[i : i+size])
			i += size - 1
		}
	}
	return b.String()
}

// hexRune decodes the first n bytes of s as a hex code point. It returns
// the number of bytes consumed, 0 on failure.
func hexRune(s string, n int) (rune, int) {
	if len(s) < n || n == 0 {
		return 0, 0
	}
	v, err := strconv.ParseUint(s[:n], 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, 0
	}
	return rune(v), n
}
