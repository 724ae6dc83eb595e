package codegen

import "github.com/iamZamil/minic/internal/pipeline"

// Processor adapts Generator to the pipeline.Processor interface, the
// sixth and final stage. It always runs on ctx.OptimizedIR, the artifact
// the optimizer stage leaves behind (spec.md §2).
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.Assembly = New().Generate(ctx.OptimizedIR)
	return ctx
}
