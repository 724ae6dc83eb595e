package analyzer

import (
	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/diagnostics"
	"github.com/iamZamil/minic/internal/typesystem"
)

// checkBlockStatements checks a block's statements in the block's own
// scope (used for a function's top-level body, where the scope was
// already entered by checkFunctionBody).
func (a *Analyzer) checkBlockStatements(block *ast.Block) {
	for _, stmt := range block.Statements {
		a.checkStatement(stmt)
	}
}

// checkBlock enters a new child scope for a nested `{ ... }`, per spec.md
// §4.3 "Entering a Block node creates a uniquely-named child scope".
func (a *Analyzer) checkBlock(block *ast.Block) {
	a.table.EnterBlock()
	a.checkBlockStatements(block)
	a.table.Exit()
}

func (a *Analyzer) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Block:
		a.checkBlock(s)
	case *ast.VarDeclaration:
		a.checkVarDeclaration(s)
	case *ast.IfStatement:
		a.checkIf(s)
	case *ast.WhileStatement:
		a.checkWhile(s)
	case *ast.ForStatement:
		a.checkFor(s)
	case *ast.ReturnStatement:
		a.checkReturn(s)
	case *ast.PrintStatement:
		a.checkExpression(s.Value)
	case *ast.ExpressionStatement:
		a.checkExpression(s.Expr)
	case *ast.Empty:
		// Placeholder from parser recovery; nothing to check.
	}
}

func (a *Analyzer) checkCondition(cond ast.Expression) {
	if cond == nil {
		return
	}
	t := a.checkExpression(cond)
	if t != typesystem.Bool && t != typesystem.Unknown {
		a.errorf(diagnostics.ErrA005, cond, string(t))
	}
}

func (a *Analyzer) checkIf(s *ast.IfStatement) {
	a.checkCondition(s.Cond)
	a.checkStatement(s.Then)
	if s.Else != nil {
		a.checkStatement(s.Else)
	}
}

func (a *Analyzer) checkWhile(s *ast.WhileStatement) {
	a.checkCondition(s.Cond)
	a.checkStatement(s.Body)
}

func (a *Analyzer) checkFor(s *ast.ForStatement) {
	// The for-loop's own scope hosts its init declaration, matching the
	// teacher's convention of scoping loop-local bindings to the loop.
	a.table.EnterBlock()
	if s.Init != nil {
		a.checkStatement(s.Init)
	}
	if s.Cond != nil {
		a.checkCondition(s.Cond)
	}
	if s.Step != nil {
		a.checkExpression(s.Step)
	}
	a.checkStatement(s.Body)
	a.table.Exit()
}

// checkReturn implements spec.md §4.3 return-type checking: the value
// type must match the enclosing function's declared return type (with
// widening); a non-void function must return a value and vice versa.
func (a *Analyzer) checkReturn(s *ast.ReturnStatement) {
	fn, ok := a.table.EnclosingFunction()
	if !ok {
		return // malformed AST from recovery; nothing to check against.
	}
	if s.Value == nil {
		if fn.ReturnType != typesystem.Void {
			a.errorf(diagnostics.ErrA006, s, fn.Name, string(fn.ReturnType), "void")
		}
		return
	}
	valType := a.checkExpression(s.Value)
	if fn.ReturnType == typesystem.Void {
		a.errorf(diagnostics.ErrA006, s.Value, fn.Name, "void", string(valType))
		return
	}
	if !typesystem.Widens(valType, fn.ReturnType) {
		a.errorf(diagnostics.ErrA006, s.Value, fn.Name, string(fn.ReturnType), string(valType))
	}
}
