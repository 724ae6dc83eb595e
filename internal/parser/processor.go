package parser

import "github.com/iamZamil/minic/internal/pipeline"

// Processor adapts the Parser to the pipeline.Processor interface, the
// second of the six pipeline stages (spec.md §2). It always produces an
// AST, possibly partial where error recovery skipped material (spec.md §7).
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p := New(ctx.Tokens)
	ctx.AST = p.ParseProgram()
	for _, e := range p.Errors() {
		ctx.Errors.Add(e)
	}
	return ctx
}
