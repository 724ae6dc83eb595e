package optimizer

import "github.com/iamZamil/minic/internal/ir"

// eliminateDeadCode is pass 3 of spec.md §4.5. It never reorders
// instructions and never removes a non-ASSIGN instruction; it only turns
// unused ASSIGNs into NOPs and then strips the NOPs.
func eliminateDeadCode(seq []ir.Instruction) []ir.Instruction {
	used := usedOperands(seq)

	for i := range seq {
		if seq[i].Op == ir.ASSIGN && !used[seq[i].Result] {
			seq[i] = ir.Instruction{Op: ir.NOP}
		}
	}

	out := make([]ir.Instruction, 0, len(seq))
	for _, in := range seq {
		if in.Op == ir.NOP {
			continue
		}
		out = append(out, in)
	}
	return out
}

// usedOperands collects every name that appears anywhere in arg1/arg2 as a
// non-numeric, non-label operand — i.e. something actually read, as
// opposed to a jump target or a literal.
func usedOperands(seq []ir.Instruction) map[string]bool {
	used := map[string]bool{}
	for _, in := range seq {
		for _, operand := range [2]string{in.Arg1, in.Arg2} {
			if operand == "" {
				continue
			}
			if _, numeric := parseNumber(operand); numeric {
				continue
			}
			if isLabelOperand(operand) {
				continue
			}
			used[operand] = true
		}
	}
	return used
}
