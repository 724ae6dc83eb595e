package optimizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iamZamil/minic/internal/ir"
)

var labelPattern = regexp.MustCompile(`^L[0-9]+$`)

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func isIntLiteral(s string) bool { return !strings.Contains(s, ".") }

func isLabelOperand(s string) bool { return labelPattern.MatchString(s) }

// foldArithmetic computes the literal result of an arithmetic instruction.
// When both source lexemes are integer literals the result is computed and
// formatted as an integer (truncating division, matching the language's
// int/int semantics); otherwise it is a float.
func foldArithmetic(op ir.Op, arg1, arg2 string, a, b float64) string {
	bothInt := isIntLiteral(arg1) && isIntLiteral(arg2)
	if bothInt {
		ai, bi := int64(a), int64(b)
		var r int64
		switch op {
		case ir.ADD:
			r = ai + bi
		case ir.SUB:
			r = ai - bi
		case ir.MUL:
			r = ai * bi
		case ir.DIV:
			r = ai / bi
		case ir.MOD:
			r = ai % bi
		}
		return strconv.FormatInt(r, 10)
	}
	var r float64
	switch op {
	case ir.ADD:
		r = a + b
	case ir.SUB:
		r = a - b
	case ir.MUL:
		r = a * b
	case ir.DIV:
		r = a / b
	case ir.MOD:
		r = float64(int64(a) % int64(b))
	}
	return strconv.FormatFloat(r, 'g', -1, 64)
}

// foldComparison computes the literal bool result of a comparison
// instruction, stringified per spec.md §4.5 as "true"/"false".
func foldComparison(op ir.Op, a, b float64) string {
	var result bool
	switch op {
	case ir.EQ:
		result = a == b
	case ir.NE:
		result = a != b
	case ir.LT:
		result = a < b
	case ir.GT:
		result = a > b
	case ir.LE:
		result = a <= b
	case ir.GE:
		result = a >= b
	}
	if result {
		return "true"
	}
	return "false"
}

// foldInstruction rewrites in into an ASSIGN of its computed literal value
// if both operands currently parse as numeric literals, and reports
// whether it did so. Division/modulo by a literal zero is left untouched, as
// is a float modulo whose divisor truncates to zero (e.g. 0.5).
// Used both by the dedicated folding pass and, a second time, by constant
// propagation once substitution may have turned an operand into a literal.
func foldInstruction(in *ir.Instruction) bool {
	switch in.Op {
	case ir.ADD, ir.SUB, ir.MUL, ir.DIV, ir.MOD:
		a, aok := parseNumber(in.Arg1)
		b, bok := parseNumber(in.Arg2)
		if !aok || !bok {
			return false
		}
		if (in.Op == ir.DIV || in.Op == ir.MOD) && b == 0 {
			return false
		}
		// foldArithmetic's float MOD truncates both operands to integers.
		if in.Op == ir.MOD && int64(b) == 0 {
			return false
		}
		computed := foldArithmetic(in.Op, in.Arg1, in.Arg2, a, b)
		*in = ir.Instruction{Op: ir.ASSIGN, Result: in.Result, Arg1: computed}
		return true
	case ir.EQ, ir.NE, ir.LT, ir.GT, ir.LE, ir.GE:
		a, aok := parseNumber(in.Arg1)
		b, bok := parseNumber(in.Arg2)
		if !aok || !bok {
			return false
		}
		computed := foldComparison(in.Op, a, b)
		*in = ir.Instruction{Op: ir.ASSIGN, Result: in.Result, Arg1: computed}
		return true
	}
	return false
}
