package pipeline

import (
	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/diagnostics"
	"github.com/iamZamil/minic/internal/ir"
	"github.com/iamZamil/minic/internal/symbols"
	"github.com/iamZamil/minic/internal/token"
)

// ErrorBucket partitions diagnostics into the three lists of spec.md §3.
type ErrorBucket struct {
	Lexical  []*diagnostics.Error
	Syntax   []*diagnostics.Error
	Semantic []*diagnostics.Error
}

// Add appends err to the bucket matching its phase.
func (b *ErrorBucket) Add(err *diagnostics.Error) {
	switch err.Phase {
	case diagnostics.PhaseLexer:
		b.Lexical = append(b.Lexical, err)
	case diagnostics.PhaseParser:
		b.Syntax = append(b.Syntax, err)
	case diagnostics.PhaseAnalyzer:
		b.Semantic = append(b.Semantic, err)
	}
}

// PipelineContext holds every artifact threaded between the six stages.
// It is deliberately a flat, mutable bag rather than six separate return
// values: each stage reads what it needs from the previous one and fills
// in its own field, and a best-effort partial artifact is always present
// even when its stage reported diagnostics (spec.md §7).
type PipelineContext struct {
	Source string

	Tokens []token.Token

	AST *ast.Program

	SymbolTable *symbols.SymbolTable

	IR          []ir.Instruction
	OptimizedIR []ir.Instruction

	Assembly string

	Errors ErrorBucket
}

// NewPipelineContext seeds a context with the given source text and empty
// containers for every downstream artifact, so a stage that never runs
// (e.g. code generation on a context that failed earlier) still hands back
// well-formed empty slices rather than nils.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		Source:      source,
		Tokens:      []token.Token{},
		IR:          []ir.Instruction{},
		OptimizedIR: []ir.Instruction{},
	}
}
