package optimizer

import "github.com/iamZamil/minic/internal/pipeline"

// Processor adapts Optimize to the pipeline.Processor interface, the fifth
// of the six stages.
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.OptimizedIR = Optimize(ctx.IR)
	return ctx
}
