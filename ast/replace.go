package ast

// ReplaceChild swaps the direct child old of parent for repl. It reports
// whether old was found. Only expression slots can be replaced.
func ReplaceChild(parent Node, old Node, repl Expr) bool {
	swap := func(slot *Expr) bool {
		if *slot != nil && Node(*slot) == old {
			*slot = repl
			return true
		}
		return false
	}
	swapAll := func(slots []Expr) bool {
		for i := range slots {
			if swap(&slots[i]) {
				return true
			}
		}
		return false
	}
	swapNode := func(slot *Node) bool {
		if *slot != nil && *slot == old {
			*slot = repl
			return true
		}
		return false
	}

	switch x := parent.(type) {
	case *ExportDefaultDeclaration:
		return swapNode(&x.Declaration)
	case *VariableDeclarator:
		return swap(&x.Init)
	case *FunctionDeclaration:
		return swapAll(x.Params)
	case *ReturnStatement:
		return swap(&x.Argument)
	case *IfStatement:
		return swap(&x.Test)
	case *WhileStatement:
		return swap(&x.Test)
	case *DoWhileStatement:
		return swap(&x.Test)
	case *ForStatement:
		return swapNode(&x.Init) || swap(&x.Test) || swap(&x.Update)
	case *ForInStatement:
		return swap(&x.Right)
	case *ThrowStatement:
		return swap(&x.Argument)
	case *SwitchStatement:
		return swap(&x.Discriminant)
	case *SwitchCase:
		return swap(&x.Test)
	case *ExpressionStatement:
		return swap(&x.Expression)
	case *ArrayExpression:
		return swapAll(x.Elements)
	case *Property:
		if x.Shorthand {
			return false
		}
		if x.Computed && swap(&x.Key) {
			return true
		}
		return swap(&x.Value)
	case *FunctionExpression:
		return swapAll(x.Params)
	case *ArrowFunctionExpression:
		return swapAll(x.Params) || swapNode(&x.Body)
	case *SpreadElement:
		return swap(&x.Argument)
	case *UnaryExpression:
		return swap(&x.Argument)
	case *UpdateExpression:
		return swap(&x.Argument)
	case *BinaryExpression:
		return swap(&x.Left) || swap(&x.Right)
	case *LogicalExpression:
		return swap(&x.Left) || swap(&x.Right)
	case *AssignmentExpression:
		return swap(&x.Left) || swap(&x.Right)
	case *ConditionalExpression:
		return swap(&x.Test) || swap(&x.Consequent) || swap(&x.Alternate)
	case *SequenceExpression:
		return swapAll(x.Expressions)
	case *CallExpression:
		return swap(&x.Callee) || swapAll(x.Arguments)
	case *TaggedTemplateExpression:
		return swap(&x.Tag)
	case *NewExpression:
		return swap(&x.Callee) || swapAll(x.Arguments)
	case *MemberExpression:
		if swap(&x.Object) {
			return true
		}
		return x.Computed && swap(&x.Property)
	}
	return false
}

// RemoveStatement deletes stmt from the top level of f and records its
// extent so the printer drops the text. It reports whether stmt was found.
func (f *File) RemoveStatement(stmt Statement) bool {
	for i, s := range f.Body {
		if s != stmt {
			continue
		}
		f.Body = append(f.Body[:i:i], f.Body[i+1:]...)
		sp := stmt.Span()
		// Take the rest of the line along when nothing else is on it.
		end := sp.End
		for end < len(f.Src) && (f.Src[end] == ' ' || f.Src[end] == '\t') {
			end++
		}
		if end < len(f.Src) && f.Src[end] == '\n' {
			sp.End = end + 1
		} else if end < len(f.Src) && f.Src[end] == '\r' && end+1 < len(f.Src) && f.Src[end+1] == '\n' {
			sp.End = end + 2
		}
		f.Removed = append(f.Removed, sp)
		f.dirty = true
		return true
	}
	return false
}
