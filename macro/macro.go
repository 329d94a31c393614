// Package macro connects a parsed file to the chain rewriter: it finds the
// import that binds the macro, collects the places the binding is used and
// drops the import once every chain is rewritten.
package macro

import (
	"slices"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/rubiojr/ifexpr/ast"
	"github.com/rubiojr/ifexpr/chain"
	"github.com/rubiojr/ifexpr/scanner"
)

// DefaultSource is the module specifier the macro is imported from.
const DefaultSource = "ifexpr.macro"

// Binding is one import of the macro.
type Binding struct {
	Name   string
	Import *ast.ImportDeclaration
}

// Bindings returns the macro imports of f. Anything but a single default
// specifier, as in import If from "ifexpr.macro", is an ErrInvalidBinding
// reported at the import.
func Bindings(f *ast.File, source string) ([]Binding, error) {
	var out []Binding
	for _, s := range f.Body {
		imp, ok := s.(*ast.ImportDeclaration)
		if !ok || imp.Source == nil || imp.Source.Value != source {
			continue
		}
		if len(imp.Specifiers) != 1 || imp.Specifiers[0].Form != ast.ImportDefault {
			return nil, chain.Errorf(chain.ErrInvalidBinding, f.Position(imp.Pos()),
				"%s must be imported as a single default binding, as in: import If from %q", source, source)
		}
		out = append(out, Binding{Name: imp.Specifiers[0].Local.Name, Import: imp})
	}
	return out, nil
}

// References returns the identifiers of f that refer to one of names, in
// source order. Declarations, property keys, member names, labels, import
// lists and re-exports are not references; default values and computed
// keys inside binding patterns are. Shadowing is not analyzed: a local
// variable with the macro's name is taken for the macro.
func References(f *ast.File, names ...string) []ast.Node {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	skip := bindingPositions(f)

	var refs []ast.Node
	ast.Inspect(f, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok && want[id.Name] && !skip[id] {
			refs = append(refs, id)
		}
		return true
	})
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Pos() < refs[j].Pos() })
	return refs
}

// bindingPositions marks identifiers that name something rather than use it.
func bindingPositions(f *ast.File) map[ast.Node]bool {
	skip := make(map[ast.Node]bool)
	markAll := func(n ast.Node) {
		ast.Inspect(n, func(c ast.Node) bool {
			if id, ok := c.(*ast.Identifier); ok {
				skip[id] = true
			}
			return true
		})
	}
	mark := func(id *ast.Identifier) {
		if id != nil {
			skip[id] = true
		}
	}
	var markPattern func(e ast.Node)
	markPattern = func(e ast.Node) {
		switch x := e.(type) {
		case *ast.Identifier:
			mark(x)
		case *ast.AssignmentExpression:
			// The default value is an ordinary expression.
			markPattern(x.Left)
		case *ast.SpreadElement:
			markPattern(x.Argument)
		case *ast.ArrayExpression:
			for _, el := range x.Elements {
				if el != nil {
					markPattern(el)
				}
			}
		case *ast.ObjectExpression:
			for _, p := range x.Properties {
				markPattern(p)
			}
		case *ast.Property:
			markPattern(x.Value)
		}
	}
	markParams := func(params []ast.Expr) {
		for _, p := range params {
			markPattern(p)
		}
	}

	ast.Inspect(f, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.ImportDeclaration:
			markAll(x)
		case *ast.ExportNamedDeclaration:
			if x.Source != nil {
				// Re-exports name bindings of another module.
				markAll(x)
			}
		case *ast.ExportSpecifier:
			if x.Exported != x.Local {
				mark(x.Exported)
			}
		case *ast.VariableDeclarator:
			markPattern(x.ID)
		case *ast.FunctionDeclaration:
			mark(x.ID)
			markParams(x.Params)
		case *ast.FunctionExpression:
			mark(x.ID)
			markParams(x.Params)
		case *ast.ArrowFunctionExpression:
			markParams(x.Params)
		case *ast.TryStatement:
			if x.Param != nil {
				markPattern(x.Param)
			}
		case *ast.Property:
			if !x.Computed && !x.Shorthand {
				if id, ok := x.Key.(*ast.Identifier); ok {
					mark(id)
				}
			}
		case *ast.MemberExpression:
			if !x.Computed {
				if id, ok := x.Property.(*ast.Identifier); ok {
					mark(id)
				}
			}
		case *ast.BreakStatement:
			mark(x.Label)
		case *ast.ContinueStatement:
			mark(x.Label)
		}
		return true
	})
	return skip
}

// CheckTemplates fails with ErrInTemplate at the first use of one of names
// inside a template literal interpolation. Interpolations are kept as raw
// text, so chains there cannot be rewritten and the file would be left
// referring to a removed import.
func CheckTemplates(f *ast.File, names ...string) error {
	var err error
	ast.Inspect(f, func(n ast.Node) bool {
		if t, ok := n.(*ast.TemplateLiteral); ok && err == nil {
			err = checkTemplate(f, t.Pos(), t.Raw, names)
		}
		return err == nil
	})
	return err
}

func checkTemplate(f *ast.File, base int, raw string, names []string) error {
	// The scanner already accepted the literal, so these cannot fail.
	spans, err := scanner.Interpolations([]byte(raw))
	if err != nil {
		return nil
	}
	for _, sp := range spans {
		toks, err := scanner.Tokenize([]byte(raw[sp[0]:sp[1]]))
		if err != nil {
			continue
		}
		for i, tok := range toks {
			off := base + sp[0] + tok.Start
			switch {
			case tok.Kind == scanner.Template:
				if err := checkTemplate(f, off, tok.Text, names); err != nil {
					return err
				}
			case tok.Kind == scanner.Ident && slices.Contains(names, tok.Text):
				if i > 0 && (toks[i-1].Is(".") || toks[i-1].Is("?.")) {
					continue
				}
				return chain.Errorf(chain.ErrInTemplate, f.Position(off),
					"%s cannot be used inside a template literal interpolation", tok.Text)
			}
		}
	}
	return nil
}

// Expander is the transform that rewrites the chains of a file and removes
// the macro import.
type Expander struct {
	// Source is the macro module specifier; DefaultSource when empty.
	Source string
	Log    logrus.FieldLogger

	// Chains counts the chains rewritten so far.
	Chains int
}

func (e *Expander) Name() string { return "ifexpr" }

func (e *Expander) source() string {
	if e.Source == "" {
		return DefaultSource
	}
	return e.Source
}

// Transform rewrites every chain in f. Files that do not import the macro
// are left alone.
func (e *Expander) Transform(f *ast.File) error {
	bindings, err := Bindings(f, e.source())
	if err != nil {
		return err
	}
	if len(bindings) == 0 {
		return nil
	}

	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		names = append(names, b.Name)
	}
	if err := CheckTemplates(f, names...); err != nil {
		return err
	}
	refs := References(f, names...)

	rw := &chain.Rewriter{Log: e.Log}
	n, err := rw.Rewrite(ast.NewIndex(f), refs)
	e.Chains += n
	if err != nil {
		return err
	}

	for _, b := range bindings {
		f.RemoveStatement(b.Import)
	}
	return nil
}
