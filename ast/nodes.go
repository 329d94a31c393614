package ast

// Node is the interface for all AST nodes.
type Node interface {
	Kind() Kind
	Pos() int
	Span() Span
	Synthetic() bool
	Dirty() bool
	base() *Base
}

// Statement is the interface for statement nodes.
type Statement interface {
	Node
	stmt()
}

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	expr()
}

// Span is a half-open byte range [Start, End) in the source.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Base provides source extent and rewrite bookkeeping for all nodes.
//
// Nodes built by the parser carry their source extent. Nodes built by a
// Factory are synthetic and have no extent of their own; when one is put
// in place of an existing node, Replaced records the extent it took over so
// the printer can splice it back into the surrounding source.
type Base struct {
	Start     int
	End       int
	Parens    int  // number of enclosing parenthesis pairs
	Outer     Span // extent including enclosing parentheses
	Replaced  *Span
	synthetic bool
	dirty     bool
}

func (b *Base) base() *Base { return b }

// Pos returns the byte offset of the first character of the node.
func (b *Base) Pos() int { return b.Start }

// Span returns the node's extent including enclosing parentheses.
func (b *Base) Span() Span {
	if b.Parens > 0 {
		return b.Outer
	}
	return Span{b.Start, b.End}
}

// SetSpan records the node's own extent.
func (b *Base) SetSpan(start, end int) {
	b.Start, b.End = start, end
}

// SetParens records one more pair of parentheses around the node.
func (b *Base) SetParens(start, end int) {
	b.Parens++
	b.Outer = Span{start, end}
}

// Parenthesize records one more pair of parentheses around n.
func Parenthesize(n Node, start, end int) { n.base().SetParens(start, end) }

// Region returns the source extent n occupies in the printed file: the
// extent it took over when it replaced another node, else its own span.
func Region(n Node) Span {
	if b := n.base(); b.Replaced != nil {
		return *b.Replaced
	}
	return n.Span()
}

// Synthetic reports whether the node was built by a Factory rather than
// parsed from source.
func (b *Base) Synthetic() bool { return b.synthetic }

// Dirty reports whether a descendant of the node was replaced.
func (b *Base) Dirty() bool { return b.dirty }

// File is the root node of one parsed source file.
type File struct {
	Base
	Name    string
	Src     []byte
	Body    []Statement
	Removed []Span // statement extents deleted by transform passes
	lines   []int  // offsets of the first byte of each line
}

// --- Statements ---

// ImportForm distinguishes the binding forms of an import specifier.
type ImportForm int

const (
	ImportDefault   ImportForm = iota // import X from "m"
	ImportNamed                       // import { a as X } from "m"
	ImportNamespace                   // import * as X from "m"
)

// ImportDeclaration represents import ... from "source".
type ImportDeclaration struct {
	Base
	Specifiers []*ImportSpecifier
	Source     *StringLiteral
}

// ImportSpecifier is one binding in an import declaration.
type ImportSpecifier struct {
	Base
	Form     ImportForm
	Imported *Identifier // named imports only
	Local    *Identifier
}

// ExportNamedDeclaration represents export <decl> or export { a, b as c } [from "m"].
type ExportNamedDeclaration struct {
	Base
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral
}

// ExportSpecifier is one entry of an export list.
type ExportSpecifier struct {
	Base
	Local    *Identifier
	Exported *Identifier
}

// ExportDefaultDeclaration represents export default <expr | function>.
type ExportDefaultDeclaration struct {
	Base
	Declaration Node
}

// VariableDeclaration represents const/let/var declarations.
type VariableDeclaration struct {
	Base
	Keyword      string
	Declarations []*VariableDeclarator
}

// VariableDeclarator is one target = init pair.
type VariableDeclarator struct {
	Base
	ID   Expr // Identifier, or an object/array pattern
	Init Expr // nil when absent
}

// FunctionDeclaration represents function name(params) { body }.
type FunctionDeclaration struct {
	Base
	ID        *Identifier
	Params    []Expr
	Body      *BlockStatement
	Async     bool
	Generator bool
}

// ReturnStatement represents return [expr].
type ReturnStatement struct {
	Base
	Argument Expr // nil if bare return
}

// IfStatement represents if (test) cons [else alt].
type IfStatement struct {
	Base
	Test       Expr
	Consequent Statement
	Alternate  Statement // nil if no else
}

// WhileStatement represents while (test) body.
type WhileStatement struct {
	Base
	Test Expr
	Body Statement
}

// DoWhileStatement represents do body while (test).
type DoWhileStatement struct {
	Base
	Body Statement
	Test Expr
}

// ForStatement represents for (init; test; update) body.
type ForStatement struct {
	Base
	Init   Node // *VariableDeclaration, Expr or nil
	Test   Expr
	Update Expr
	Body   Statement
}

// ForInStatement represents for (left in right) and for (left of right).
type ForInStatement struct {
	Base
	Left  Node // *VariableDeclaration or Expr
	Right Expr
	Body  Statement
	Of    bool
}

// BreakStatement represents break [label].
type BreakStatement struct {
	Base
	Label *Identifier
}

// ContinueStatement represents continue [label].
type ContinueStatement struct {
	Base
	Label *Identifier
}

// ThrowStatement represents throw expr.
type ThrowStatement struct {
	Base
	Argument Expr
}

// TryStatement represents try/catch/finally.
type TryStatement struct {
	Base
	Block     *BlockStatement
	Param     Expr // catch binding, nil when omitted
	Handler   *BlockStatement
	Finalizer *BlockStatement
}

// SwitchStatement represents switch (disc) { cases }.
type SwitchStatement struct {
	Base
	Discriminant Expr
	Cases        []*SwitchCase
}

// SwitchCase is one case or default clause. Test is nil for default.
type SwitchCase struct {
	Base
	Test       Expr
	Consequent []Statement
}

// BlockStatement represents { body }.
type BlockStatement struct {
	Base
	Body []Statement
}

// EmptyStatement represents a lone semicolon.
type EmptyStatement struct{ Base }

// ExpressionStatement is a statement that is just an expression.
type ExpressionStatement struct {
	Base
	Expression Expr
}

// --- Expressions ---

// Identifier represents a name.
type Identifier struct {
	Base
	Name string
}

// NumericLiteral keeps the number as written.
type NumericLiteral struct {
	Base
	Raw string
}

// StringLiteral keeps the quoted source form in Raw and the unquoted text in Value.
type StringLiteral struct {
	Base
	Raw   string
	Value string
}

// TemplateLiteral is kept as opaque source text, interpolations included.
type TemplateLiteral struct {
	Base
	Raw string
}

// RegExpLiteral represents /pattern/flags.
type RegExpLiteral struct {
	Base
	Raw string
}

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	Base
	Value bool
}

// NullLiteral represents null.
type NullLiteral struct{ Base }

// ThisExpression represents this.
type ThisExpression struct{ Base }

// ArrayExpression represents [a, b, ...c]. Holes are nil.
type ArrayExpression struct {
	Base
	Elements []Expr
}

// ObjectExpression represents { key: value, ...rest }.
type ObjectExpression struct {
	Base
	Properties []Node // *Property or *SpreadElement
}

// Property is one key/value entry of an object literal. For shorthand
// properties Value is the Key identifier itself, or an assignment to it
// when the pattern carries a default.
type Property struct {
	Base
	Key       Expr
	Value     Expr
	Computed  bool
	Shorthand bool
	Method    bool // key(params) { body }; Value is a *FunctionExpression
}

// FunctionExpression represents function [name](params) { body }.
type FunctionExpression struct {
	Base
	ID        *Identifier
	Params    []Expr
	Body      *BlockStatement
	Async     bool
	Generator bool
}

// ArrowFunctionExpression represents (params) => body.
type ArrowFunctionExpression struct {
	Base
	Params []Expr
	Body   Node // *BlockStatement or Expr
	Async  bool
}

// SpreadElement represents ...expr in calls, arrays, objects and rest parameters.
type SpreadElement struct {
	Base
	Argument Expr
}

// UnaryExpression represents a prefix operator: ! - + ~ typeof void delete await.
type UnaryExpression struct {
	Base
	Operator string
	Argument Expr
}

// UpdateExpression represents ++x, x++, --x and x--.
type UpdateExpression struct {
	Base
	Operator string
	Prefix   bool
	Argument Expr
}

// BinaryExpression represents arithmetic, comparison and bitwise operators.
type BinaryExpression struct {
	Base
	Operator string
	Left     Expr
	Right    Expr
}

// LogicalExpression represents &&, || and ??.
type LogicalExpression struct {
	Base
	Operator string
	Left     Expr
	Right    Expr
}

// AssignmentExpression represents = and compound assignment.
type AssignmentExpression struct {
	Base
	Operator string
	Left     Expr
	Right    Expr
}

// ConditionalExpression represents test ? consequent : alternate.
type ConditionalExpression struct {
	Base
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

// SequenceExpression represents a, b, c. Its value is the last element.
type SequenceExpression struct {
	Base
	Expressions []Expr
}

// CallExpression represents callee(args).
type CallExpression struct {
	Base
	Callee    Expr
	Arguments []Expr
	Optional  bool // callee?.(args)
}

// TaggedTemplateExpression represents tag`...`.
type TaggedTemplateExpression struct {
	Base
	Tag   Expr
	Quasi *TemplateLiteral
}

// NewExpression represents new callee(args).
type NewExpression struct {
	Base
	Callee    Expr
	Arguments []Expr
}

// MemberExpression represents object.property and object[property].
type MemberExpression struct {
	Base
	Object   Expr
	Property Expr // *Identifier when not computed
	Computed bool
	Optional bool // object?.property
}

// PropertyName returns the accessed name for non-computed member
// expressions, or "" when the property is computed.
func (m *MemberExpression) PropertyName() string {
	if m.Computed {
		return ""
	}
	if id, ok := m.Property.(*Identifier); ok {
		return id.Name
	}
	return ""
}

func (s *ImportDeclaration) stmt()        {}
func (s *ExportNamedDeclaration) stmt()   {}
func (s *ExportDefaultDeclaration) stmt() {}
func (s *VariableDeclaration) stmt()      {}
func (s *FunctionDeclaration) stmt()      {}
func (s *ReturnStatement) stmt()          {}
func (s *IfStatement) stmt()              {}
func (s *WhileStatement) stmt()           {}
func (s *DoWhileStatement) stmt()         {}
func (s *ForStatement) stmt()             {}
func (s *ForInStatement) stmt()           {}
func (s *BreakStatement) stmt()           {}
func (s *ContinueStatement) stmt()        {}
func (s *ThrowStatement) stmt()           {}
func (s *TryStatement) stmt()             {}
func (s *SwitchStatement) stmt()          {}
func (s *BlockStatement) stmt()           {}
func (s *EmptyStatement) stmt()           {}
func (s *ExpressionStatement) stmt()      {}

func (e *Identifier) expr()               {}
func (e *NumericLiteral) expr()           {}
func (e *StringLiteral) expr()            {}
func (e *TemplateLiteral) expr()          {}
func (e *RegExpLiteral) expr()            {}
func (e *BooleanLiteral) expr()           {}
func (e *NullLiteral) expr()              {}
func (e *ThisExpression) expr()           {}
func (e *ArrayExpression) expr()          {}
func (e *ObjectExpression) expr()         {}
func (e *FunctionExpression) expr()       {}
func (e *ArrowFunctionExpression) expr()  {}
func (e *SpreadElement) expr()            {}
func (e *UnaryExpression) expr()          {}
func (e *UpdateExpression) expr()         {}
func (e *BinaryExpression) expr()         {}
func (e *LogicalExpression) expr()        {}
func (e *AssignmentExpression) expr()     {}
func (e *ConditionalExpression) expr()    {}
func (e *SequenceExpression) expr()       {}
func (e *CallExpression) expr()           {}
func (e *TaggedTemplateExpression) expr() {}
func (e *NewExpression) expr()            {}
func (e *MemberExpression) expr()         {}
