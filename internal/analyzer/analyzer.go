// Package analyzer implements the semantic analyzer of spec.md §4.3: a
// single AST walk that builds a symbol table, resolves names through the
// scope chain, and type-checks every expression and statement.
package analyzer

import (
	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/diagnostics"
	"github.com/iamZamil/minic/internal/symbols"
	"github.com/iamZamil/minic/internal/token"
	"github.com/iamZamil/minic/internal/typesystem"
)

// Analyzer walks an AST once, mutating a SymbolTable as it enters and
// exits scopes.
type Analyzer struct {
	table  *symbols.SymbolTable
	errors []*diagnostics.Error
}

// New creates an Analyzer over an already-initialized (but empty) global
// scope, per spec.md §4.3.
func New(table *symbols.SymbolTable) *Analyzer {
	return &Analyzer{table: table}
}

// Errors returns the semantic diagnostics accumulated during Analyze.
func (a *Analyzer) Errors() []*diagnostics.Error { return a.errors }

func (a *Analyzer) errorf(code diagnostics.Code, n ast.Node, args ...interface{}) *diagnostics.Error {
	tok := token.Token{Line: n.Line(), Column: n.Column()}
	e := diagnostics.New(diagnostics.PhaseAnalyzer, code, tok, args...)
	a.errors = append(a.errors, e)
	return e
}

// Analyze walks the whole program: it predeclares every function (so
// forward calls resolve) then checks each function body, and finally
// enforces the "must have main" program-level rule of spec.md §4.3.
func (a *Analyzer) Analyze(prog *ast.Program) []*diagnostics.Error {
	if prog == nil {
		return a.errors
	}

	for _, decl := range prog.Declarations {
		if fn, ok := decl.(*ast.FunctionDeclaration); ok {
			a.declareFunction(fn)
		}
	}

	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.FunctionDeclaration:
			a.checkFunctionBody(d)
		case *ast.VarDeclaration:
			a.checkVarDeclaration(d)
		}
	}

	if _, ok := a.table.GlobalSymbol("main"); !ok {
		a.errorAt0010()
	}

	return a.errors
}

// errorAt0010 reports the missing-main diagnostic at (0,0), per spec.md
// §4.3's program-level rule.
func (a *Analyzer) errorAt0010() {
	a.errors = append(a.errors, diagnostics.At(diagnostics.PhaseAnalyzer, diagnostics.ErrA010, 0, 0))
}

func (a *Analyzer) declareFunction(fn *ast.FunctionDeclaration) {
	var params []symbols.Param
	for _, p := range fn.Params.List {
		params = append(params, symbols.Param{Name: p.Name, Type: primitiveType(p.Type)})
	}
	sym := symbols.Symbol{
		Name:       fn.Name,
		Type:       primitiveType(fn.ReturnType),
		Kind:       symbols.Function,
		Line:       fn.Line(),
		Column:     fn.Column(),
		Params:     params,
		ReturnType: primitiveType(fn.ReturnType),
	}
	if prior, ok := a.table.Declare(sym); !ok {
		a.errorf(diagnostics.ErrA002, fn, fn.Name, prior.Line, prior.Column)
	}
}

func primitiveType(t *ast.TypeName) typesystem.Type {
	if t == nil {
		return typesystem.Unknown
	}
	switch t.Name {
	case "int":
		return typesystem.Int
	case "float":
		return typesystem.Float
	case "bool":
		return typesystem.Bool
	case "void":
		return typesystem.Void
	default:
		return typesystem.Unknown
	}
}
