package lexer

import "github.com/iamZamil/minic/internal/pipeline"

// Processor adapts Tokenize to the pipeline.Processor interface, the first
// of the six pipeline stages (spec.md §2).
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	tokens, errs := Tokenize(ctx.Source)
	ctx.Tokens = tokens
	for _, e := range errs {
		ctx.Errors.Add(e)
	}
	return ctx
}
