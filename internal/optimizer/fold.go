package optimizer

import "github.com/iamZamil/minic/internal/ir"

// fold is pass 1 of spec.md §4.5: a single linear scan collapsing any
// arithmetic or comparison instruction whose operands are both numeric
// literals into an ASSIGN of the computed value.
func fold(seq []ir.Instruction) {
	for i := range seq {
		foldInstruction(&seq[i])
	}
}
