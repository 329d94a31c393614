package ast

// Children returns the direct child nodes of n in source order. Absent
// optional children are skipped.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil && !isNilNode(c) {
			out = append(out, c)
		}
	}
	addExprs := func(es []Expr) {
		for _, e := range es {
			add(e)
		}
	}
	addStmts := func(ss []Statement) {
		for _, s := range ss {
			add(s)
		}
	}

	switch x := n.(type) {
	case *File:
		addStmts(x.Body)
	case *ImportDeclaration:
		for _, s := range x.Specifiers {
			add(s)
		}
		add(x.Source)
	case *ImportSpecifier:
		if x.Imported != nil && x.Imported != x.Local {
			add(x.Imported)
		}
		add(x.Local)
	case *ExportNamedDeclaration:
		add(x.Declaration)
		for _, s := range x.Specifiers {
			add(s)
		}
		add(x.Source)
	case *ExportSpecifier:
		add(x.Local)
		if x.Exported != x.Local {
			add(x.Exported)
		}
	case *ExportDefaultDeclaration:
		add(x.Declaration)
	case *VariableDeclaration:
		for _, d := range x.Declarations {
			add(d)
		}
	case *VariableDeclarator:
		add(x.ID)
		add(x.Init)
	case *FunctionDeclaration:
		add(x.ID)
		addExprs(x.Params)
		add(x.Body)
	case *ReturnStatement:
		add(x.Argument)
	case *IfStatement:
		add(x.Test)
		add(x.Consequent)
		add(x.Alternate)
	case *WhileStatement:
		add(x.Test)
		add(x.Body)
	case *DoWhileStatement:
		add(x.Body)
		add(x.Test)
	case *ForStatement:
		add(x.Init)
		add(x.Test)
		add(x.Update)
		add(x.Body)
	case *ForInStatement:
		add(x.Left)
		add(x.Right)
		add(x.Body)
	case *BreakStatement:
		add(x.Label)
	case *ContinueStatement:
		add(x.Label)
	case *ThrowStatement:
		add(x.Argument)
	case *TryStatement:
		add(x.Block)
		add(x.Param)
		add(x.Handler)
		add(x.Finalizer)
	case *SwitchStatement:
		add(x.Discriminant)
		for _, c := range x.Cases {
			add(c)
		}
	case *SwitchCase:
		add(x.Test)
		addStmts(x.Consequent)
	case *BlockStatement:
		addStmts(x.Body)
	case *ExpressionStatement:
		add(x.Expression)
	case *ArrayExpression:
		addExprs(x.Elements)
	case *ObjectExpression:
		for _, p := range x.Properties {
			add(p)
		}
	case *Property:
		if x.Shorthand {
			add(x.Value)
		} else {
			add(x.Key)
			add(x.Value)
		}
	case *FunctionExpression:
		add(x.ID)
		addExprs(x.Params)
		add(x.Body)
	case *ArrowFunctionExpression:
		addExprs(x.Params)
		add(x.Body)
	case *SpreadElement:
		add(x.Argument)
	case *UnaryExpression:
		add(x.Argument)
	case *UpdateExpression:
		add(x.Argument)
	case *BinaryExpression:
		add(x.Left)
		add(x.Right)
	case *LogicalExpression:
		add(x.Left)
		add(x.Right)
	case *AssignmentExpression:
		add(x.Left)
		add(x.Right)
	case *ConditionalExpression:
		add(x.Test)
		add(x.Consequent)
		add(x.Alternate)
	case *SequenceExpression:
		addExprs(x.Expressions)
	case *CallExpression:
		add(x.Callee)
		addExprs(x.Arguments)
	case *TaggedTemplateExpression:
		add(x.Tag)
		add(x.Quasi)
	case *NewExpression:
		add(x.Callee)
		addExprs(x.Arguments)
	case *MemberExpression:
		add(x.Object)
		add(x.Property)
	}
	return out
}

// Inspect traverses the tree rooted at n in depth-first source order,
// calling f for each node. If f returns false, the children of that node
// are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || isNilNode(n) {
		return
	}
	if !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// isNilNode catches typed nil pointers stored in interface fields.
func isNilNode(n Node) bool {
	switch x := n.(type) {
	case *Identifier:
		return x == nil
	case *BlockStatement:
		return x == nil
	case *StringLiteral:
		return x == nil
	case *TemplateLiteral:
		return x == nil
	case *VariableDeclaration:
		return x == nil
	}
	return false
}
