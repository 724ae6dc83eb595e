package codegen

import (
	"fmt"
	"strconv"

	"github.com/iamZamil/minic/internal/ir"
)

var comparisonSuffix = map[ir.Op]string{
	ir.EQ: "e",
	ir.NE: "ne",
	ir.LT: "l",
	ir.GT: "g",
	ir.LE: "le",
	ir.GE: "ge",
}

// resolve turns an IR operand into its assembly-level form: a numeric
// literal passes through unchanged; anything else is backed by a `.data`
// slot and read through its lazily assigned register.
func (g *Generator) resolve(operand string) string {
	if operand == "" || isNumericOperand(operand) {
		return operand
	}
	g.vars.observe(operand)
	return g.regs.regFor(operand)
}

// lower emits the assembly lines for one IR instruction, per the per-op
// sketch in spec.md §4.6.
func (g *Generator) lower(in ir.Instruction) []string {
	switch in.Op {
	case ir.LABEL:
		return []string{in.Result + ":"}
	case ir.ENTER:
		return []string{"push ebp", "mov ebp, esp"}
	case ir.LEAVE:
		return []string{"mov esp, ebp", "pop ebp"}
	case ir.RET:
		if in.Arg1 == "" {
			return []string{"ret"}
		}
		return []string{"mov eax, " + g.resolve(in.Arg1), "ret"}
	case ir.ASSIGN:
		a := g.resolve(in.Arg1)
		reg := g.resolve(in.Result)
		return []string{"mov " + reg + ", " + a}
	case ir.ADD, ir.SUB:
		a := g.resolve(in.Arg1)
		b := g.resolve(in.Arg2)
		reg := g.resolve(in.Result)
		mnemonic := "add"
		if in.Op == ir.SUB {
			mnemonic = "sub"
		}
		return []string{"mov " + reg + ", " + a, mnemonic + " " + reg + ", " + b}
	case ir.MUL:
		a := g.resolve(in.Arg1)
		b := g.resolve(in.Arg2)
		reg := g.resolve(in.Result)
		return []string{"mov eax, " + a, "imul eax, " + b, "mov " + reg + ", eax"}
	case ir.DIV, ir.MOD:
		a := g.resolve(in.Arg1)
		b := g.resolve(in.Arg2)
		reg := g.resolve(in.Result)
		lines := []string{"mov eax, " + a, "cdq", "idiv " + b}
		if in.Op == ir.DIV {
			lines = append(lines, "mov "+reg+", eax")
		} else {
			lines = append(lines, "mov "+reg+", edx")
		}
		return lines
	case ir.NEG:
		a := g.resolve(in.Arg1)
		reg := g.resolve(in.Result)
		return []string{"mov " + reg + ", " + a, "neg " + reg}
	case ir.NOT:
		a := g.resolve(in.Arg1)
		reg := g.resolve(in.Result)
		return []string{"mov " + reg + ", " + a, "xor " + reg + ", 1"}
	case ir.EQ, ir.NE, ir.LT, ir.GT, ir.LE, ir.GE:
		a := g.resolve(in.Arg1)
		b := g.resolve(in.Arg2)
		reg := g.resolve(in.Result)
		return []string{
			"cmp " + a + ", " + b,
			"set" + comparisonSuffix[in.Op] + " al",
			"movzx " + reg + ", al",
		}
	case ir.JUMP:
		return []string{"jmp " + in.Result}
	case ir.JUMPTRUE:
		a := g.resolve(in.Arg1)
		return []string{"cmp " + a + ", 0", "jne " + in.Result}
	case ir.JUMPFALSE:
		a := g.resolve(in.Arg1)
		return []string{"cmp " + a + ", 0", "je " + in.Result}
	case ir.PARAM:
		return []string{"push " + g.resolve(in.Arg1)}
	case ir.CALL:
		argc, _ := strconv.Atoi(in.Arg2)
		reg := g.resolve(in.Result)
		return []string{
			"call " + in.Arg1,
			fmt.Sprintf("add esp, %d", argc*4),
			"mov " + reg + ", eax",
		}
	case ir.PRINT:
		return []string{"push " + g.resolve(in.Arg1), "call printf", "add esp, 4"}
	case ir.NOP:
		return nil
	default:
		return nil
	}
}
