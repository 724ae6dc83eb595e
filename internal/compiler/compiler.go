// Package compiler exposes the single public entry point of spec.md §6:
// compile(source) -> CompilationResult. It wires the six pipeline stages
// together and is otherwise pure — no I/O, no shared state across calls.
package compiler

import (
	"github.com/iamZamil/minic/internal/analyzer"
	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/codegen"
	"github.com/iamZamil/minic/internal/diagnostics"
	"github.com/iamZamil/minic/internal/ir"
	"github.com/iamZamil/minic/internal/irgen"
	"github.com/iamZamil/minic/internal/lexer"
	"github.com/iamZamil/minic/internal/optimizer"
	"github.com/iamZamil/minic/internal/parser"
	"github.com/iamZamil/minic/internal/pipeline"
	"github.com/iamZamil/minic/internal/symbols"
	"github.com/iamZamil/minic/internal/token"
)

// Errors mirrors the three diagnostic buckets of spec.md §3, rendered down
// to the public wire-shape Diagnostic.
type Errors struct {
	Lexical  []diagnostics.Diagnostic
	Syntax   []diagnostics.Diagnostic
	Semantic []diagnostics.Diagnostic
}

// CompilationResult is the public artifact bundle of spec.md §3: every
// field is always present, with absent artifacts as empty containers
// rather than nil.
type CompilationResult struct {
	Tokens []token.Token

	AST *ast.WireNode

	SymbolTable *symbols.SymbolTable

	IR          []ir.Instruction
	OptimizedIR []ir.Instruction

	Assembly string

	Errors Errors
}

// Compile runs all six stages over source and never panics or returns an
// error: every failure is encoded into the result's Errors (spec.md §6).
func Compile(source string) CompilationResult {
	p := pipeline.New(
		lexer.Processor{},
		parser.Processor{},
		analyzer.Processor{},
		irgen.Processor{},
		optimizer.Processor{},
		codegen.Processor{},
	)
	ctx := p.Run(pipeline.NewPipelineContext(source))

	var wireAST *ast.WireNode
	if ctx.AST != nil {
		wireAST = ast.ToWire(ctx.AST)
	}

	return CompilationResult{
		Tokens:      ctx.Tokens,
		AST:         wireAST,
		SymbolTable: ctx.SymbolTable,
		IR:          ctx.IR,
		OptimizedIR: ctx.OptimizedIR,
		Assembly:    ctx.Assembly,
		Errors: Errors{
			Lexical:  toDiagnostics(ctx.Errors.Lexical),
			Syntax:   toDiagnostics(ctx.Errors.Syntax),
			Semantic: toDiagnostics(ctx.Errors.Semantic),
		},
	}
}

func toDiagnostics(errs []*diagnostics.Error) []diagnostics.Diagnostic {
	out := make([]diagnostics.Diagnostic, len(errs))
	for i, e := range errs {
		out[i] = e.ToDiagnostic()
	}
	return out
}
