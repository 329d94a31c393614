package ast

// Operator precedence levels, lowest first. Binary operators occupy
// PrecNullish through PrecExponent.
const (
	PrecLowest = iota
	PrecSequence
	PrecAssign // assignment, arrow functions, spread
	PrecConditional
	PrecNullish // || and ??
	PrecAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecExponent
	PrecUnary
	PrecPostfix
	PrecCall // call, member, new with arguments
	PrecPrimary
)

var binaryPrec = map[string]int{
	"||": PrecNullish, "??": PrecNullish,
	"&&": PrecAnd,
	"|":  PrecBitOr,
	"^":  PrecBitXor,
	"&":  PrecBitAnd,
	"==": PrecEquality, "!=": PrecEquality, "===": PrecEquality, "!==": PrecEquality,
	"<": PrecRelational, ">": PrecRelational, "<=": PrecRelational, ">=": PrecRelational,
	"instanceof": PrecRelational, "in": PrecRelational,
	"<<": PrecShift, ">>": PrecShift, ">>>": PrecShift,
	"+": PrecAdditive, "-": PrecAdditive,
	"*": PrecMultiplicative, "/": PrecMultiplicative, "%": PrecMultiplicative,
	"**": PrecExponent,
}

// BinaryPrecedence returns the precedence of a binary or logical operator,
// or 0 if op is not one.
func BinaryPrecedence(op string) int { return binaryPrec[op] }

// IsLogicalOperator reports whether op builds a LogicalExpression.
func IsLogicalOperator(op string) bool { return op == "&&" || op == "||" || op == "??" }

// IsAssignOperator reports whether op is = or a compound assignment.
func IsAssignOperator(op string) bool {
	switch op {
	case "=", "+=", "-=", "*=", "/=", "%=", "**=", "<<=", ">>=", ">>>=",
		"&=", "|=", "^=", "&&=", "||=", "??=":
		return true
	}
	return false
}

// Precedence returns the binding strength of e as printed. Parenthesized
// nodes bind like primaries.
func Precedence(e Expr) int {
	if e.base().Parens > 0 {
		return PrecPrimary
	}
	switch x := e.(type) {
	case *SequenceExpression:
		return PrecSequence
	case *AssignmentExpression, *ArrowFunctionExpression, *SpreadElement:
		return PrecAssign
	case *ConditionalExpression:
		return PrecConditional
	case *BinaryExpression:
		return binaryPrec[x.Operator]
	case *LogicalExpression:
		return binaryPrec[x.Operator]
	case *UnaryExpression:
		return PrecUnary
	case *UpdateExpression:
		if x.Prefix {
			return PrecUnary
		}
		return PrecPostfix
	case *CallExpression, *MemberExpression, *TaggedTemplateExpression:
		return PrecCall
	case *NewExpression:
		if x.Arguments == nil {
			return PrecCall - 1
		}
		return PrecCall
	}
	return PrecPrimary
}
