package analyzer

import (
	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/diagnostics"
	"github.com/iamZamil/minic/internal/symbols"
	"github.com/iamZamil/minic/internal/typesystem"
)

// checkFunctionBody enters scope "function_<name>", declares parameters,
// checks the body, then exits back to global (spec.md §4.3).
func (a *Analyzer) checkFunctionBody(fn *ast.FunctionDeclaration) {
	a.table.EnterFunction(fn.Name)
	for _, p := range fn.Params.List {
		sym := symbols.Symbol{
			Name:        p.Name,
			Type:        primitiveType(p.Type),
			Kind:        symbols.Parameter,
			Line:        p.Line(),
			Column:      p.Column(),
			Initialized: true,
		}
		if prior, ok := a.table.Declare(sym); !ok {
			a.errorf(diagnostics.ErrA002, p, p.Name, prior.Line, prior.Column)
		}
	}
	a.checkBlockStatements(fn.Body)
	a.table.Exit()
}

// checkVarDeclaration implements spec.md §4.3 variable declarations: the
// symbol is declared in the current scope, and if an initializer is
// present it is checked and the widening rule applied before the symbol
// is marked initialized.
func (a *Analyzer) checkVarDeclaration(decl *ast.VarDeclaration) {
	declType := primitiveType(decl.DeclType)
	initialized := false
	if decl.Init != nil {
		initType := a.checkExpression(decl.Init)
		if !typesystem.Widens(initType, declType) {
			a.errorf(diagnostics.ErrA004, decl.Init, string(declType), string(initType))
		}
		initialized = true
	}
	sym := symbols.Symbol{
		Name:        decl.Name,
		Type:        declType,
		Kind:        symbols.Variable,
		Line:        decl.Line(),
		Column:      decl.Column(),
		Initialized: initialized,
	}
	if prior, ok := a.table.Declare(sym); !ok {
		a.errorf(diagnostics.ErrA002, decl, decl.Name, prior.Line, prior.Column)
	}
}
