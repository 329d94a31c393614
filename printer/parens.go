package printer

import "github.com/rubiojr/ifexpr/ast"

// NeedsParens reports whether child must be parenthesized to keep its
// meaning in the slot it occupies under parent.
func NeedsParens(parent ast.Node, child ast.Expr) bool {
	if child.Span().Start != child.Pos() {
		// Already wrapped in source parentheses.
		return false
	}
	if ast.Precedence(child) < slotPrecedence(parent, child) {
		return true
	}

	switch x := parent.(type) {
	case *ast.ExpressionStatement:
		return startsWith(child, true)
	case *ast.ArrowFunctionExpression:
		return ast.Node(child) == x.Body && startsWith(child, false)
	case *ast.ExportDefaultDeclaration:
		return startsWith(child, true)
	case *ast.LogicalExpression:
		return mixesNullish(x.Operator, child)
	case *ast.NewExpression:
		// new f()() and new (f())() differ.
		return ast.Node(child) == x.Callee && containsCall(child)
	}
	return false
}

// slotPrecedence returns the lowest precedence an unparenthesized child
// may have in its slot under parent.
func slotPrecedence(parent ast.Node, child ast.Expr) int {
	c := ast.Node(child)
	switch x := parent.(type) {
	case *ast.SequenceExpression:
		return ast.PrecAssign
	case *ast.ConditionalExpression:
		if c == x.Test {
			return ast.PrecNullish
		}
		return ast.PrecAssign
	case *ast.BinaryExpression:
		return binarySlot(x.Operator, c == x.Left)
	case *ast.LogicalExpression:
		return binarySlot(x.Operator, c == x.Left)
	case *ast.AssignmentExpression:
		if c == x.Left {
			return ast.PrecCall
		}
		return ast.PrecAssign
	case *ast.UnaryExpression:
		return ast.PrecUnary
	case *ast.UpdateExpression:
		return ast.PrecPostfix
	case *ast.CallExpression:
		if c == x.Callee {
			return ast.PrecCall
		}
		return ast.PrecAssign
	case *ast.NewExpression:
		if c == x.Callee {
			return ast.PrecCall
		}
		return ast.PrecAssign
	case *ast.MemberExpression:
		if c == x.Object {
			return ast.PrecCall
		}
		return ast.PrecLowest
	case *ast.TaggedTemplateExpression:
		return ast.PrecCall
	case *ast.SpreadElement, *ast.ArrayExpression, *ast.Property,
		*ast.VariableDeclarator, *ast.ArrowFunctionExpression,
		*ast.ExportDefaultDeclaration, *ast.FunctionExpression,
		*ast.FunctionDeclaration:
		return ast.PrecAssign
	}
	return ast.PrecLowest
}

// binarySlot handles associativity: the left operand of a left-associative
// operator may share its precedence, the right operand may not. ** is the
// other way around.
func binarySlot(op string, left bool) int {
	prec := ast.BinaryPrecedence(op)
	if op == "**" {
		if left {
			return prec + 1
		}
		return prec
	}
	if left {
		return prec
	}
	return prec + 1
}

// mixesNullish reports whether child is an unparenthesized && or ||
// operand of ?? or the reverse, which the grammar rejects.
func mixesNullish(op string, child ast.Expr) bool {
	l, ok := child.(*ast.LogicalExpression)
	if !ok || l.Span().Start != l.Pos() {
		return false
	}
	return (op == "??") != (l.Operator == "??")
}

// startsWith reports whether the printed form of e begins with an object
// literal, or with a function expression when functions count, which a
// statement or arrow body would read as a block or declaration.
func startsWith(e ast.Expr, functions bool) bool {
	for e != nil {
		if e.Span().Start != e.Pos() {
			return false
		}
		switch x := e.(type) {
		case *ast.ObjectExpression:
			return true
		case *ast.FunctionExpression:
			return functions
		case *ast.SequenceExpression:
			e = x.Expressions[0]
		case *ast.BinaryExpression:
			e = x.Left
		case *ast.LogicalExpression:
			e = x.Left
		case *ast.AssignmentExpression:
			e = x.Left
		case *ast.ConditionalExpression:
			e = x.Test
		case *ast.CallExpression:
			e = x.Callee
		case *ast.MemberExpression:
			e = x.Object
		case *ast.TaggedTemplateExpression:
			e = x.Tag
		case *ast.UpdateExpression:
			if x.Prefix {
				return false
			}
			e = x.Argument
		default:
			return false
		}
	}
	return false
}

func containsCall(e ast.Expr) bool {
	for e != nil {
		if e.Span().Start != e.Pos() {
			return false
		}
		switch x := e.(type) {
		case *ast.CallExpression:
			return true
		case *ast.MemberExpression:
			e = x.Object
		case *ast.TaggedTemplateExpression:
			e = x.Tag
		default:
			return false
		}
	}
	return false
}
