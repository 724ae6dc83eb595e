package ast

// WireNode is the positional, untagged tree shape described by spec.md §3:
// a `kind`, an optional `value` for leaves, and an ordered `children` array
// interpreted positionally per kind. Internally every production has its
// own typed Go struct (see ast.go); WireNode exists solely as the one place
// that still speaks this positional contract, for callers (the CLI's
// `fxc ast` dump, the parser tests) that want the wire-shape spec.md
// describes rather than the typed tree.
type WireNode struct {
	Kind     Kind
	Value    string
	Line     int
	Column   int
	Children []*WireNode
}

func leaf(kind Kind, value string, n Node) *WireNode {
	return &WireNode{Kind: kind, Value: value, Line: n.Line(), Column: n.Column()}
}

func branch(kind Kind, n Node, children ...*WireNode) *WireNode {
	return &WireNode{Kind: kind, Line: n.Line(), Column: n.Column(), Children: children}
}

// ToWire converts a typed AST node to its positional wire shape. nil input
// yields nil output, so optional children convert cleanly.
func ToWire(n Node) *WireNode {
	switch v := n.(type) {
	case nil:
		return nil
	case *Program:
		children := make([]*WireNode, 0, len(v.Declarations))
		for _, d := range v.Declarations {
			children = append(children, ToWire(d))
		}
		return branch(KindProgram, v, children...)
	case *TypeName:
		return leaf(KindType, v.Name, v)
	case *FunctionDeclaration:
		return branch(KindFunctionDeclaration, v,
			ToWire(v.ReturnType),
			leaf(KindIdentifier, v.Name, v),
			ToWire(v.Params),
			ToWire(v.Body),
		)
	case *Parameters:
		children := make([]*WireNode, 0, len(v.List))
		for _, p := range v.List {
			children = append(children, ToWire(p))
		}
		return branch(KindParameters, v, children...)
	case *Parameter:
		return branch(KindParameter, v, ToWire(v.Type), leaf(KindIdentifier, v.Name, v))
	case *VarDeclaration:
		children := []*WireNode{ToWire(v.DeclType), leaf(KindIdentifier, v.Name, v)}
		if v.Init != nil {
			children = append(children, ToWire(v.Init))
		}
		return branch(KindVarDeclaration, v, children...)
	case *Block:
		children := make([]*WireNode, 0, len(v.Statements))
		for _, s := range v.Statements {
			children = append(children, ToWire(s))
		}
		return branch(KindBlock, v, children...)
	case *Empty:
		return leaf(KindEmpty, "", v)
	case *IfStatement:
		children := []*WireNode{ToWire(v.Cond), ToWire(v.Then)}
		if v.Else != nil {
			children = append(children, ToWire(v.Else))
		}
		return branch(KindIf, v, children...)
	case *WhileStatement:
		return branch(KindWhile, v, ToWire(v.Cond), ToWire(v.Body))
	case *ForStatement:
		return branch(KindFor, v, wireOrEmpty(v.Init), wireOrEmpty(v.Cond), wireOrEmpty(v.Step), ToWire(v.Body))
	case *ReturnStatement:
		if v.Value == nil {
			return branch(KindReturn, v)
		}
		return branch(KindReturn, v, ToWire(v.Value))
	case *PrintStatement:
		return branch(KindPrint, v, ToWire(v.Value))
	case *ExpressionStatement:
		return branch(KindExprStmt, v, ToWire(v.Expr))
	case *Assignment:
		return branch(KindAssignment, v, ToWire(v.Target), ToWire(v.Value))
	case *Binary:
		return branch(KindBinary, v, ToWire(v.Left), ToWire(v.Right))
	case *Unary:
		return branch(KindUnary, v, ToWire(v.Operand))
	case *Call:
		children := make([]*WireNode, 0, len(v.Args)+1)
		children = append(children, leaf(KindIdentifier, v.Callee, v))
		for _, a := range v.Args {
			children = append(children, ToWire(a))
		}
		return branch(KindCall, v, children...)
	case *Identifier:
		return leaf(KindIdentifier, v.Name, v)
	case *NumberLiteral:
		return leaf(KindNumber, v.Lexeme, v)
	case *StringLiteral:
		return leaf(KindString, v.Lexeme, v)
	case *BoolLiteral:
		val := "false"
		if v.Value {
			val = "true"
		}
		return leaf(KindBool, val, v)
	case *Grouping:
		return branch(KindGrouping, v, ToWire(v.Inner))
	default:
		return nil
	}
}

// wireOrEmpty renders an optional for-loop clause, substituting an Empty
// node (with no line/column) when the clause is absent, per spec.md §4.2. The
// parser only ever leaves Init/Cond/Step as a true nil interface (never a
// typed-nil pointer), so a direct nil check is sufficient here.
func wireOrEmpty(n Node) *WireNode {
	if n == nil {
		return &WireNode{Kind: KindEmpty}
	}
	return ToWire(n)
}
