// Package codegen lowers the optimized three-address IR to a single
// textual x86 assembly string (spec.md §4.6). The output is illustrative:
// it is never assembled or linked by this package, and register
// assignment is a lazy round-robin over 6 virtual slots rather than real
// liveness-based allocation.
package codegen

import (
	"strings"

	"github.com/iamZamil/minic/internal/ir"
)

// Generator accumulates register and `.data` bookkeeping across one
// Generate call; a fresh Generator (via New) must be used per compilation.
type Generator struct {
	regs *registerAllocator
	vars *variableTracker
}

// New returns a Generator with empty register/variable state.
func New() *Generator {
	return &Generator{regs: newRegisterAllocator(), vars: newVariableTracker()}
}

func (g *Generator) Generate(seq []ir.Instruction) string {
	var text []string
	for _, in := range seq {
		text = append(text, g.lower(in)...)
	}

	var b strings.Builder
	b.WriteString("section .data\n")
	b.WriteString("fmt_int db \"%d\", 10, 0\n")
	for _, name := range g.vars.order {
		b.WriteString(name)
		b.WriteString(" dd 0\n")
	}

	b.WriteString("\nsection .text\n")
	b.WriteString("global _start\n")
	b.WriteString("extern printf\n\n")
	for _, line := range text {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(trampoline)
	return b.String()
}

// trampoline is a canned _start that calls main and exits with its result;
// it exists only so the emitted text reads as a complete program, per
// spec.md §4.6. This generator never assembles or links it.
const trampoline = `
_start:
	call main
	mov ebx, eax
	mov eax, 1
	int 0x80
`
