package optimizer

import "github.com/iamZamil/minic/internal/ir"

// propagate is pass 2 of spec.md §4.5: a single forward scan maintaining a
// map of variable/temp name to its currently-known constant literal.
//
// Substitution is deliberately narrow: it only rewrites the operands of
// ASSIGN and the arithmetic/comparison ops, since those are the only sites
// where a literal operand can trigger further folding. Reads that are pure
// consumers (RET, PRINT, PARAM, a branch condition, a unary operand) are
// left referring to the named variable, so that variable still counts as
// "used" for dead-code elimination even once its defining ASSIGN has
// collapsed to a literal.
//
// A LABEL instruction clears every tracked entry: it is a join point (a
// loop header is reachable both by fall-through and by its own back edge),
// and this is a single linear forward scan with no loop-awareness, so any
// value recorded before the label cannot be trusted to still hold when
// control arrives there the second time around.
func propagate(seq []ir.Instruction) {
	consts := map[string]string{}
	for i := range seq {
		in := &seq[i]

		if in.Op == ir.LABEL {
			clear(consts)
			continue
		}

		substituteOperands(in, consts)
		// An operand substituted into a literal can make an arithmetic or
		// comparison instruction foldable even though pass 1 already ran.
		foldInstruction(in)

		switch in.Op {
		case ir.ASSIGN:
			if _, ok := parseNumber(in.Arg1); ok {
				consts[in.Result] = in.Arg1
			} else {
				delete(consts, in.Result)
			}
		case ir.ADD, ir.SUB, ir.MUL, ir.DIV, ir.MOD,
			ir.EQ, ir.NE, ir.LT, ir.GT, ir.LE, ir.GE,
			ir.NEG, ir.NOT, ir.CALL:
			if in.Result != "" {
				delete(consts, in.Result)
			}
		}
	}
}

// substituteOperands replaces a tracked-constant name occurring in the
// operand positions of an ASSIGN or an arithmetic/comparison instruction
// with its literal value. Every other instruction is left untouched (see
// the propagate doc comment for why).
func substituteOperands(in *ir.Instruction, consts map[string]string) {
	switch in.Op {
	case ir.ASSIGN, ir.ADD, ir.SUB, ir.MUL, ir.DIV, ir.MOD,
		ir.EQ, ir.NE, ir.LT, ir.GT, ir.LE, ir.GE:
		if v, ok := consts[in.Arg1]; ok {
			in.Arg1 = v
		}
		if v, ok := consts[in.Arg2]; ok {
			in.Arg2 = v
		}
	}
}
