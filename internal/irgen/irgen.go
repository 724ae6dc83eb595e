// Package irgen walks the AST a second time (the first walk is semantic
// analysis) and lowers it to the flat three-address instruction sequence
// defined by internal/ir. It depends on both internal/pipeline and
// internal/ir; ir itself depends on neither, which is what keeps this from
// being a cycle.
package irgen

import (
	"fmt"

	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/ir"
)

// Generator produces a flat IR sequence from an AST. Temp and label
// counters are per-Generator, reset by New, and never shared across
// compilations.
type Generator struct {
	instrs []ir.Instruction
	tempN  int
	labelN int
}

// New returns a Generator with fresh t0/L0 counters.
func New() *Generator {
	return &Generator{}
}

// Generate lowers prog to a flat instruction sequence. A nil prog (parser
// produced nothing usable) yields an empty sequence.
func (g *Generator) Generate(prog *ast.Program) []ir.Instruction {
	g.instrs = []ir.Instruction{}
	if prog == nil {
		return g.instrs
	}
	for _, decl := range prog.Declarations {
		g.genDeclaration(decl)
	}
	return g.instrs
}

func (g *Generator) newTemp() string {
	t := fmt.Sprintf("t%d", g.tempN)
	g.tempN++
	return t
}

func (g *Generator) newLabel() string {
	l := fmt.Sprintf("L%d", g.labelN)
	g.labelN++
	return l
}

func (g *Generator) emit(op ir.Op, result, arg1, arg2 string) {
	g.instrs = append(g.instrs, ir.Instruction{Op: op, Result: result, Arg1: arg1, Arg2: arg2})
}

var binaryOps = map[ast.BinaryOp]ir.Op{
	"+":  ir.ADD,
	"-":  ir.SUB,
	"*":  ir.MUL,
	"/":  ir.DIV,
	"%":  ir.MOD,
	"==": ir.EQ,
	"!=": ir.NE,
	"<":  ir.LT,
	">":  ir.GT,
	"<=": ir.LE,
	">=": ir.GE,
}
