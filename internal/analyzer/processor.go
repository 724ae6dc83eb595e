package analyzer

import (
	"github.com/iamZamil/minic/internal/pipeline"
	"github.com/iamZamil/minic/internal/symbols"
)

// Processor adapts Analyzer to the pipeline.Processor interface, the third
// of the six pipeline stages (spec.md §2). It always leaves ctx with a
// SymbolTable, even when the AST is nil or malformed (spec.md §7).
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.SymbolTable == nil {
		ctx.SymbolTable = symbols.NewSymbolTable()
	}
	a := New(ctx.SymbolTable)
	for _, e := range a.Analyze(ctx.AST) {
		ctx.Errors.Add(e)
	}
	return ctx
}
