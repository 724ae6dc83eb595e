// Package optimizer implements the three conservative, single-pass
// transformations of spec.md §4.5: constant folding, constant propagation,
// and dead-code elimination, applied in that fixed order. None of the
// passes reorder instructions, remove a non-ASSIGN instruction, or rewrite
// a jump target; none of them iterate to a fixed point.
package optimizer

import "github.com/iamZamil/minic/internal/ir"

// Optimize runs the three passes over a deep copy of seq and returns the
// result; seq itself is never mutated.
func Optimize(seq []ir.Instruction) []ir.Instruction {
	out := ir.Clone(seq)
	fold(out)
	propagate(out)
	out = eliminateDeadCode(out)
	return out
}
