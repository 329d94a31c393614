package ast

import "strings"

// Kind tags every node type. The names follow the ESTree vocabulary so that
// expression and literal kinds can be recognized by suffix.
type Kind int

const (
	KindInvalid Kind = iota
	KindFile
	KindImportDeclaration
	KindImportSpecifier
	KindExportNamedDeclaration
	KindExportSpecifier
	KindExportDefaultDeclaration
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindReturnStatement
	KindIfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindForInStatement
	KindBreakStatement
	KindContinueStatement
	KindThrowStatement
	KindTryStatement
	KindSwitchStatement
	KindSwitchCase
	KindBlockStatement
	KindEmptyStatement
	KindExpressionStatement
	KindIdentifier
	KindNumericLiteral
	KindStringLiteral
	KindTemplateLiteral
	KindRegExpLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindThisExpression
	KindArrayExpression
	KindObjectExpression
	KindProperty
	KindFunctionExpression
	KindArrowFunctionExpression
	KindSpreadElement
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindSequenceExpression
	KindCallExpression
	KindTaggedTemplateExpression
	KindNewExpression
	KindMemberExpression
)

var kindNames = [...]string{
	KindInvalid:                  "Invalid",
	KindFile:                     "File",
	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindExportNamedDeclaration:   "ExportNamedDeclaration",
	KindExportSpecifier:          "ExportSpecifier",
	KindExportDefaultDeclaration: "ExportDefaultDeclaration",
	KindVariableDeclaration:      "VariableDeclaration",
	KindVariableDeclarator:       "VariableDeclarator",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindReturnStatement:          "ReturnStatement",
	KindIfStatement:              "IfStatement",
	KindWhileStatement:           "WhileStatement",
	KindDoWhileStatement:         "DoWhileStatement",
	KindForStatement:             "ForStatement",
	KindForInStatement:           "ForInStatement",
	KindBreakStatement:           "BreakStatement",
	KindContinueStatement:        "ContinueStatement",
	KindThrowStatement:           "ThrowStatement",
	KindTryStatement:             "TryStatement",
	KindSwitchStatement:          "SwitchStatement",
	KindSwitchCase:               "SwitchCase",
	KindBlockStatement:           "BlockStatement",
	KindEmptyStatement:           "EmptyStatement",
	KindExpressionStatement:      "ExpressionStatement",
	KindIdentifier:               "Identifier",
	KindNumericLiteral:           "NumericLiteral",
	KindStringLiteral:            "StringLiteral",
	KindTemplateLiteral:          "TemplateLiteral",
	KindRegExpLiteral:            "RegExpLiteral",
	KindBooleanLiteral:           "BooleanLiteral",
	KindNullLiteral:              "NullLiteral",
	KindThisExpression:           "ThisExpression",
	KindArrayExpression:          "ArrayExpression",
	KindObjectExpression:         "ObjectExpression",
	KindProperty:                 "Property",
	KindFunctionExpression:       "FunctionExpression",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindSpreadElement:            "SpreadElement",
	KindUnaryExpression:          "UnaryExpression",
	KindUpdateExpression:         "UpdateExpression",
	KindBinaryExpression:         "BinaryExpression",
	KindLogicalExpression:        "LogicalExpression",
	KindAssignmentExpression:     "AssignmentExpression",
	KindConditionalExpression:    "ConditionalExpression",
	KindSequenceExpression:       "SequenceExpression",
	KindCallExpression:           "CallExpression",
	KindTaggedTemplateExpression: "TaggedTemplateExpression",
	KindNewExpression:            "NewExpression",
	KindMemberExpression:         "MemberExpression",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Invalid"
	}
	return kindNames[k]
}

// IsExpression reports whether the kind names an expression node.
func (k Kind) IsExpression() bool { return strings.HasSuffix(k.String(), "Expression") }

// IsLiteral reports whether the kind names a literal node.
func (k Kind) IsLiteral() bool { return strings.HasSuffix(k.String(), "Literal") }

// IsExpressionLike reports whether n can stand on its own as a value:
// an identifier, a literal or any expression node.
func IsExpressionLike(n Node) bool {
	if n == nil {
		return false
	}
	k := n.Kind()
	return k == KindIdentifier || k.IsExpression() || k.IsLiteral()
}

func (*File) Kind() Kind                     { return KindFile }
func (*ImportDeclaration) Kind() Kind        { return KindImportDeclaration }
func (*ImportSpecifier) Kind() Kind          { return KindImportSpecifier }
func (*ExportNamedDeclaration) Kind() Kind   { return KindExportNamedDeclaration }
func (*ExportSpecifier) Kind() Kind          { return KindExportSpecifier }
func (*ExportDefaultDeclaration) Kind() Kind { return KindExportDefaultDeclaration }
func (*VariableDeclaration) Kind() Kind      { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind       { return KindVariableDeclarator }
func (*FunctionDeclaration) Kind() Kind      { return KindFunctionDeclaration }
func (*ReturnStatement) Kind() Kind          { return KindReturnStatement }
func (*IfStatement) Kind() Kind              { return KindIfStatement }
func (*WhileStatement) Kind() Kind           { return KindWhileStatement }
func (*DoWhileStatement) Kind() Kind         { return KindDoWhileStatement }
func (*ForStatement) Kind() Kind             { return KindForStatement }
func (*ForInStatement) Kind() Kind           { return KindForInStatement }
func (*BreakStatement) Kind() Kind           { return KindBreakStatement }
func (*ContinueStatement) Kind() Kind        { return KindContinueStatement }
func (*ThrowStatement) Kind() Kind           { return KindThrowStatement }
func (*TryStatement) Kind() Kind             { return KindTryStatement }
func (*SwitchStatement) Kind() Kind          { return KindSwitchStatement }
func (*SwitchCase) Kind() Kind               { return KindSwitchCase }
func (*BlockStatement) Kind() Kind           { return KindBlockStatement }
func (*EmptyStatement) Kind() Kind           { return KindEmptyStatement }
func (*ExpressionStatement) Kind() Kind      { return KindExpressionStatement }
func (*Identifier) Kind() Kind               { return KindIdentifier }
func (*NumericLiteral) Kind() Kind           { return KindNumericLiteral }
func (*StringLiteral) Kind() Kind            { return KindStringLiteral }
func (*TemplateLiteral) Kind() Kind          { return KindTemplateLiteral }
func (*RegExpLiteral) Kind() Kind            { return KindRegExpLiteral }
func (*BooleanLiteral) Kind() Kind           { return KindBooleanLiteral }
func (*NullLiteral) Kind() Kind              { return KindNullLiteral }
func (*ThisExpression) Kind() Kind           { return KindThisExpression }
func (*ArrayExpression) Kind() Kind          { return KindArrayExpression }
func (*ObjectExpression) Kind() Kind         { return KindObjectExpression }
func (*Property) Kind() Kind                 { return KindProperty }
func (*FunctionExpression) Kind() Kind       { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind  { return KindArrowFunctionExpression }
func (*SpreadElement) Kind() Kind            { return KindSpreadElement }
func (*UnaryExpression) Kind() Kind          { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind         { return KindUpdateExpression }
func (*BinaryExpression) Kind() Kind         { return KindBinaryExpression }
func (*LogicalExpression) Kind() Kind        { return KindLogicalExpression }
func (*AssignmentExpression) Kind() Kind     { return KindAssignmentExpression }
func (*ConditionalExpression) Kind() Kind    { return KindConditionalExpression }
func (*SequenceExpression) Kind() Kind       { return KindSequenceExpression }
func (*CallExpression) Kind() Kind           { return KindCallExpression }
func (*TaggedTemplateExpression) Kind() Kind { return KindTaggedTemplateExpression }
func (*NewExpression) Kind() Kind            { return KindNewExpression }
func (*MemberExpression) Kind() Kind         { return KindMemberExpression }
