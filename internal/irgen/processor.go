package irgen

import "github.com/iamZamil/minic/internal/pipeline"

// Processor adapts Generator to the pipeline.Processor interface, the
// fourth of the six stages. It runs regardless of earlier diagnostics: the
// IR is generated on a best-effort basis from whatever AST the parser
// produced (spec.md §2, "later stages run on best-effort partial
// artifacts").
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	g := New()
	ctx.IR = g.Generate(ctx.AST)
	return ctx
}
