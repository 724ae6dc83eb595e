// Package ast defines the abstract syntax tree produced by the parser.
//
// spec.md §3 describes AST nodes as untagged records — a string `kind`, an
// optional `value`, and a positionally-interpreted `children` array. That
// shape is the wire contract at the boundary (see convert.go), but
// internally each production gets its own Go type implementing Node, the
// way spec.md §9 "AST polymorphism" asks for: a tagged sum type whose
// variants carry named fields, with the boundary converter as the one
// place that still speaks the positional layout.
package ast

import "github.com/iamZamil/minic/internal/token"

// Node is the common interface for every AST type.
type Node interface {
	Line() int
	Column() int
}

// Kind is the closed set of node kinds from spec.md §4.2, used only at the
// positional boundary (ToWire in convert.go).
type Kind string

const (
	KindProgram             Kind = "Program"
	KindFunctionDeclaration Kind = "FunctionDeclaration"
	KindParameters          Kind = "Parameters"
	KindParameter           Kind = "Parameter"
	KindVarDeclaration      Kind = "VarDeclaration"
	KindBlock               Kind = "Block"
	KindIf                  Kind = "IfStatement"
	KindWhile               Kind = "WhileStatement"
	KindFor                 Kind = "ForStatement"
	KindReturn              Kind = "ReturnStatement"
	KindPrint               Kind = "PrintStatement"
	KindExprStmt            Kind = "ExpressionStatement"
	KindEmpty               Kind = "Empty"
	KindAssignment          Kind = "Assignment"
	KindBinary              Kind = "Binary"
	KindUnary               Kind = "Unary"
	KindCall                Kind = "FunctionCall"
	KindIdentifier          Kind = "Identifier"
	KindNumber              Kind = "NumberLiteral"
	KindString              Kind = "StringLiteral"
	KindBool                Kind = "BoolLiteral"
	KindType                Kind = "Type"
	KindGrouping            Kind = "Grouping"
)

type base struct {
	Tok token.Token
}

func (b base) Line() int   { return b.Tok.Line }
func (b base) Column() int { return b.Tok.Column }

// Statement is any Node usable as a statement; the marker method keeps
// expressions used as bare statements (ExpressionStatement) out of
// contexts that expect a declaration.
type Statement interface {
	Node
	statementNode()
}

// Expression is any Node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the AST root: zero or more top-level declarations.
type Program struct {
	base
	Declarations []Statement
}

// TypeName is a resolved primitive type keyword token (int/float/bool/void).
type TypeName struct {
	base
	Name string
}

func (t *TypeName) expressionNode() {}

// FunctionDeclaration is `type name(params) block`.
// Positional children per spec.md §4.2: [Type, Identifier, Parameters, Block].
type FunctionDeclaration struct {
	base
	ReturnType *TypeName
	Name       string
	Params     *Parameters
	Body       *Block
}

func (f *FunctionDeclaration) statementNode() {}

// Parameters wraps an ordered list of Parameter children.
type Parameters struct {
	base
	List []*Parameter
}

// Parameter is `type name`, positional children [Type, Identifier].
type Parameter struct {
	base
	Type *TypeName
	Name string
}

// VarDeclaration is `type name (= expr)? ;`.
type VarDeclaration struct {
	base
	DeclType *TypeName
	Name     string
	Init     Expression // nil when no initializer
}

func (v *VarDeclaration) statementNode() {}

// Block is a brace-delimited statement list; it also introduces a scope.
type Block struct {
	base
	Statements []Statement
}

func (b *Block) statementNode() {}

// Empty is the placeholder the parser returns for an expression it could
// not parse. Missing for-loop clauses are nil instead (see ForStatement).
type Empty struct {
	base
}

func (e *Empty) statementNode()  {}
func (e *Empty) expressionNode() {}

// IfStatement children: [cond, then, else?].
type IfStatement struct {
	base
	Cond Expression
	Then Statement
	Else Statement // nil when absent
}

func (i *IfStatement) statementNode() {}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	base
	Cond Expression
	Body Statement
}

func (w *WhileStatement) statementNode() {}

// ForStatement children: [init, cond, step, body]; missing clauses are
// represented by Init/Cond/Step == nil, and convert.go renders them as
// Empty-kind wire nodes.
type ForStatement struct {
	base
	Init Statement // VarDeclaration, ExpressionStatement, or nil
	Cond Expression
	Step Expression
	Body Statement
}

func (f *ForStatement) statementNode() {}

// ReturnStatement is `return expr? ;`.
type ReturnStatement struct {
	base
	Value Expression // nil when bare `return;`
}

func (r *ReturnStatement) statementNode() {}

// PrintStatement is `print(expr);`.
type PrintStatement struct {
	base
	Value Expression
}

func (p *PrintStatement) statementNode() {}

// ExpressionStatement is an expression used as a statement.
type ExpressionStatement struct {
	base
	Expr Expression
}

func (e *ExpressionStatement) statementNode() {}

// Assignment is `lhs = rhs`, right-associative.
type Assignment struct {
	base
	Target *Identifier
	Value  Expression
}

func (a *Assignment) expressionNode() {}

// BinaryOp is the closed set of binary operator spellings.
type BinaryOp string

// Binary is any left/right binary expression: arithmetic, comparison, or
// logical. Children: [left, right].
type Binary struct {
	base
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (b *Binary) expressionNode() {}

// UnaryOp is `!` or `-`.
type UnaryOp string

// Unary is a prefix operator applied to an operand.
type Unary struct {
	base
	Op      UnaryOp
	Operand Expression
}

func (u *Unary) expressionNode() {}

// Call is `callee(args...)`. Children: [callee, arg0, arg1, ...].
type Call struct {
	base
	Callee string
	Args   []Expression
}

func (c *Call) expressionNode() {}

// Identifier is a name reference.
type Identifier struct {
	base
	Name string
}

func (i *Identifier) expressionNode() {}

// NumberLiteral is an integer or float literal, stored as its source
// lexeme; the analyzer decides int vs float from the presence of '.'.
type NumberLiteral struct {
	base
	Lexeme string
}

func (n *NumberLiteral) expressionNode() {}

// StringLiteral's Lexeme includes the enclosing quotes, per spec.md §4.1.
type StringLiteral struct {
	base
	Lexeme string
}

func (s *StringLiteral) expressionNode() {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	base
	Value bool
}

func (b *BoolLiteral) expressionNode() {}

// Grouping is a parenthesized expression; it exists as its own node so
// positions are preserved even though evaluation just forwards to Inner.
type Grouping struct {
	base
	Inner Expression
}

func (g *Grouping) expressionNode() {}

// NewEmpty builds a positioned Empty placeholder for a missing clause.
func NewEmpty(tok token.Token) *Empty { return &Empty{base{tok}} }
