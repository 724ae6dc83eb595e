package irgen

import (
	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/ir"
)

// genDeclaration lowers a top-level declaration: a function or a global
// variable.
func (g *Generator) genDeclaration(decl ast.Statement) {
	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		g.genFunction(d)
	case *ast.VarDeclaration:
		g.genVarDeclaration(d)
	}
}

// genFunction lowers `type name(params) block` to
// `LABEL name; ENTER; <body>; LEAVE; RET`. A `return expr;` inside the body
// already emits its own RET; the trailing RET here is unconditional and
// never synthesizes a value (spec.md §4.4).
func (g *Generator) genFunction(fn *ast.FunctionDeclaration) {
	g.emit(ir.LABEL, fn.Name, "", "")
	g.emit(ir.ENTER, "", "", "")
	g.genBlockStatements(fn.Body)
	g.emit(ir.LEAVE, "", "", "")
	g.emit(ir.RET, "", "", "")
}

func (g *Generator) genVarDeclaration(decl *ast.VarDeclaration) {
	if decl.Init == nil {
		return
	}
	v := g.genExpression(decl.Init)
	g.emit(ir.ASSIGN, decl.Name, v, "")
}

func (g *Generator) genBlockStatements(block *ast.Block) {
	if block == nil {
		return
	}
	for _, s := range block.Statements {
		g.genStatement(s)
	}
}

func (g *Generator) genStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Block:
		g.genBlockStatements(s)
	case *ast.VarDeclaration:
		g.genVarDeclaration(s)
	case *ast.IfStatement:
		g.genIf(s)
	case *ast.WhileStatement:
		g.genWhile(s)
	case *ast.ForStatement:
		g.genFor(s)
	case *ast.ReturnStatement:
		g.genReturn(s)
	case *ast.PrintStatement:
		v := g.genExpression(s.Value)
		g.emit(ir.PRINT, "", v, "")
	case *ast.ExpressionStatement:
		g.genExpression(s.Expr)
	case *ast.Empty, nil:
		// missing clause / no-op statement: nothing to lower.
	}
}

// genIf implements spec.md §4.4: JUMPFALSE cond, Lelse; <then>; JUMP Lend;
// LABEL Lelse; <else?>; LABEL Lend — the Lelse/Lend/JUMP triple is emitted
// even when there is no else branch.
func (g *Generator) genIf(s *ast.IfStatement) {
	cond := g.genExpression(s.Cond)
	lelse := g.newLabel()
	lend := g.newLabel()
	g.emit(ir.JUMPFALSE, lelse, cond, "")
	g.genStatement(s.Then)
	g.emit(ir.JUMP, lend, "", "")
	g.emit(ir.LABEL, lelse, "", "")
	if s.Else != nil {
		g.genStatement(s.Else)
	}
	g.emit(ir.LABEL, lend, "", "")
}

// genWhile implements spec.md §4.4: LABEL Lstart; JUMPFALSE cond, Lend;
// <body>; JUMP Lstart; LABEL Lend.
func (g *Generator) genWhile(s *ast.WhileStatement) {
	lstart := g.newLabel()
	lend := g.newLabel()
	g.emit(ir.LABEL, lstart, "", "")
	cond := g.genExpression(s.Cond)
	g.emit(ir.JUMPFALSE, lend, cond, "")
	g.genStatement(s.Body)
	g.emit(ir.JUMP, lstart, "", "")
	g.emit(ir.LABEL, lend, "", "")
}

// genFor implements spec.md §4.4: <init> runs once before Lstart; <step> is
// emitted after <body>, before the back edge.
func (g *Generator) genFor(s *ast.ForStatement) {
	if s.Init != nil {
		g.genStatement(s.Init)
	}
	lstart := g.newLabel()
	lend := g.newLabel()
	g.emit(ir.LABEL, lstart, "", "")
	if s.Cond != nil {
		cond := g.genExpression(s.Cond)
		g.emit(ir.JUMPFALSE, lend, cond, "")
	}
	g.genStatement(s.Body)
	if s.Step != nil {
		g.genExpression(s.Step)
	}
	g.emit(ir.JUMP, lstart, "", "")
	g.emit(ir.LABEL, lend, "", "")
}

// genReturn emits RET <value> directly; no implicit final return is ever
// synthesized here (genFunction appends its own unconditional trailing RET).
func (g *Generator) genReturn(s *ast.ReturnStatement) {
	if s.Value == nil {
		g.emit(ir.RET, "", "", "")
		return
	}
	v := g.genExpression(s.Value)
	g.emit(ir.RET, "", v, "")
}
