package pipeline

// Processor is any stage that consumes and returns a PipelineContext. Each
// of the six components (lexer, parser, analyzer, IR generator, optimizer,
// code generator) implements this so Pipeline.Run can chain them uniformly.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}
