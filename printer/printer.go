// Package printer turns a rewritten ast.File back into source text.
//
// Printing is source preserving. Nodes the rewrite did not touch are copied
// byte for byte, comments and layout included. A parsed node with a
// replaced descendant is patched: the text between its children is copied
// and only the replaced regions are regenerated. Synthetic nodes have no
// source and are printed from their structure, with parentheses added
// wherever the surrounding operator would otherwise rebind them.
package printer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rubiojr/ifexpr/ast"
)

// Print renders f with its rewrites applied.
func Print(f *ast.File) string {
	if !f.Dirty() && len(f.Removed) == 0 {
		return string(f.Src)
	}
	p := &printer{src: f.Src}
	p.printFile(f)
	return p.sb.String()
}

// Expr renders a single expression. Parsed nodes are taken from src.
func Expr(e ast.Expr, src []byte) string {
	p := &printer{src: src}
	p.node(nil, e)
	return p.sb.String()
}

type printer struct {
	sb  strings.Builder
	src []byte
}

func (p *printer) raw(s string) {
	p.sb.WriteString(s)
}

func (p *printer) copy(from, to int) {
	if from < to {
		p.sb.Write(p.src[from:to])
	}
}

// region is a stretch of the source to regenerate (node != nil) or to drop.
type region struct {
	span ast.Span
	node ast.Node
}

func (p *printer) printFile(f *ast.File) {
	var regions []region
	for _, s := range f.Body {
		regions = append(regions, region{span: ast.Region(s), node: s})
	}
	for _, sp := range f.Removed {
		regions = append(regions, region{span: sp})
	}
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].span.Start < regions[j].span.Start
	})
	p.patch(f, ast.Span{Start: 0, End: len(f.Src)}, regions)
}

// patch copies the source of extent, regenerating or dropping each region.
func (p *printer) patch(parent ast.Node, extent ast.Span, regions []region) {
	cursor := extent.Start
	for _, r := range regions {
		p.copy(cursor, r.span.Start)
		if r.node != nil {
			p.node(parent, r.node)
		}
		cursor = r.span.End
	}
	p.copy(cursor, extent.End)
}

// node prints n as a child of parent. parent is nil at the top level.
func (p *printer) node(parent, n ast.Node) {
	wrap := false
	if e, ok := n.(ast.Expr); ok && parent != nil && (n.Synthetic() || parent.Synthetic()) {
		wrap = NeedsParens(parent, e)
	}
	if wrap {
		p.raw("(")
	}
	switch {
	case n.Synthetic():
		p.structural(n)
	case !n.Dirty():
		sp := n.Span()
		p.copy(sp.Start, sp.End)
	default:
		var regions []region
		for _, c := range ast.Children(n) {
			regions = append(regions, region{span: ast.Region(c), node: c})
		}
		p.patch(n, n.Span(), regions)
	}
	if wrap {
		p.raw(")")
	}
}

func (p *printer) list(parent ast.Node, exprs []ast.Expr) {
	for i, e := range exprs {
		if i > 0 {
			p.raw(", ")
		}
		if e != nil {
			p.node(parent, e)
		}
	}
}

// structural prints a synthetic node from its fields. Only expression
// forms are supported; transforms never synthesize statements.
func (p *printer) structural(n ast.Node) {
	switch x := n.(type) {
	case *ast.Identifier:
		p.raw(x.Name)
	case *ast.NumericLiteral:
		p.raw(x.Raw)
	case *ast.StringLiteral:
		p.raw(x.Raw)
	case *ast.TemplateLiteral:
		p.raw(x.Raw)
	case *ast.RegExpLiteral:
		p.raw(x.Raw)
	case *ast.BooleanLiteral:
		p.raw(fmt.Sprint(x.Value))
	case *ast.NullLiteral:
		p.raw("null")
	case *ast.ThisExpression:
		p.raw("this")
	case *ast.SequenceExpression:
		p.list(x, x.Expressions)
	case *ast.ConditionalExpression:
		p.node(x, x.Test)
		p.raw(" ? ")
		p.node(x, x.Consequent)
		p.raw(" : ")
		p.node(x, x.Alternate)
	case *ast.BinaryExpression:
		p.node(x, x.Left)
		p.raw(" " + x.Operator + " ")
		p.node(x, x.Right)
	case *ast.LogicalExpression:
		p.node(x, x.Left)
		p.raw(" " + x.Operator + " ")
		p.node(x, x.Right)
	case *ast.AssignmentExpression:
		p.node(x, x.Left)
		p.raw(" " + x.Operator + " ")
		p.node(x, x.Right)
	case *ast.UnaryExpression:
		p.raw(x.Operator)
		if isWordOperator(x.Operator) || startsWithSign(x.Operator, x.Argument) {
			p.raw(" ")
		}
		p.node(x, x.Argument)
	case *ast.UpdateExpression:
		if x.Prefix {
			p.raw(x.Operator)
		}
		p.node(x, x.Argument)
		if !x.Prefix {
			p.raw(x.Operator)
		}
	case *ast.SpreadElement:
		p.raw("...")
		p.node(x, x.Argument)
	case *ast.ArrayExpression:
		p.raw("[")
		p.list(x, x.Elements)
		if n := len(x.Elements); n > 0 && x.Elements[n-1] == nil {
			p.raw(",")
		}
		p.raw("]")
	case *ast.CallExpression:
		p.node(x, x.Callee)
		if x.Optional {
			p.raw("?.")
		}
		p.raw("(")
		p.list(x, x.Arguments)
		p.raw(")")
	case *ast.NewExpression:
		p.raw("new ")
		p.node(x, x.Callee)
		if x.Arguments != nil {
			p.raw("(")
			p.list(x, x.Arguments)
			p.raw(")")
		}
	case *ast.MemberExpression:
		p.node(x, x.Object)
		switch {
		case x.Computed && x.Optional:
			p.raw("?.[")
		case x.Computed:
			p.raw("[")
		case x.Optional:
			p.raw("?.")
		default:
			p.raw(".")
		}
		p.node(x, x.Property)
		if x.Computed {
			p.raw("]")
		}
	default:
		panic(fmt.Sprintf("printer: cannot print synthetic %s", n.Kind()))
	}
}

func isWordOperator(op string) bool {
	return op == "typeof" || op == "void" || op == "delete" || op == "await"
}

// startsWithSign reports whether printing arg right after op would merge
// into a different token, as in - -x or + +x.
func startsWithSign(op string, arg ast.Expr) bool {
	if op != "-" && op != "+" {
		return false
	}
	switch a := arg.(type) {
	case *ast.UnaryExpression:
		return a.Operator == op && a.Span().Start == a.Pos()
	case *ast.UpdateExpression:
		return a.Prefix && a.Operator[0] == op[0]
	}
	return false
}
