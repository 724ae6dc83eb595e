package irgen

import (
	"strconv"

	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/ir"
)

// genExpression lowers expr and returns the operand string that holds its
// value: a literal's own lexeme, an identifier's name, or a freshly
// allocated temporary.
func (g *Generator) genExpression(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return e.Lexeme
	case *ast.StringLiteral:
		return e.Lexeme
	case *ast.BoolLiteral:
		if e.Value {
			return "true"
		}
		return "false"
	case *ast.Identifier:
		return e.Name
	case *ast.Grouping:
		return g.genExpression(e.Inner)
	case *ast.Assignment:
		return g.genAssignment(e)
	case *ast.Binary:
		return g.genBinary(e)
	case *ast.Unary:
		return g.genUnary(e)
	case *ast.Call:
		return g.genCall(e)
	case *ast.Empty:
		return ""
	default:
		return ""
	}
}

func (g *Generator) genAssignment(a *ast.Assignment) string {
	v := g.genExpression(a.Value)
	g.emit(ir.ASSIGN, a.Target.Name, v, "")
	return a.Target.Name
}

// genBinary special-cases the short-circuit logical operators (spec.md
// §4.4); everything else lowers to a single instruction in a fresh temp.
func (g *Generator) genBinary(b *ast.Binary) string {
	switch b.Op {
	case "||":
		return g.genShortCircuit(b, ir.JUMPTRUE)
	case "&&":
		return g.genShortCircuit(b, ir.JUMPFALSE)
	}

	left := g.genExpression(b.Left)
	right := g.genExpression(b.Right)
	op, ok := binaryOps[b.Op]
	if !ok {
		return ""
	}
	t := g.newTemp()
	g.emit(op, t, left, right)
	return t
}

// genShortCircuit lowers `a || b` / `a && b`: compute a into t, branch past
// b on the short-circuiting outcome (JUMPTRUE for ||, JUMPFALSE for &&),
// else compute b into the same t.
func (g *Generator) genShortCircuit(b *ast.Binary, branch ir.Op) string {
	t := g.newTemp()
	a := g.genExpression(b.Left)
	g.emit(ir.ASSIGN, t, a, "")
	lend := g.newLabel()
	g.emit(branch, lend, t, "")
	rhs := g.genExpression(b.Right)
	g.emit(ir.ASSIGN, t, rhs, "")
	g.emit(ir.LABEL, lend, "", "")
	return t
}

func (g *Generator) genUnary(u *ast.Unary) string {
	operand := g.genExpression(u.Operand)
	t := g.newTemp()
	switch u.Op {
	case "!":
		g.emit(ir.NOT, t, operand, "")
	case "-":
		g.emit(ir.NEG, t, operand, "")
	}
	return t
}

// genCall evaluates arguments left-to-right, emits one PARAM per argument
// in evaluation order, then a single CALL carrying the callee name and
// argument count.
func (g *Generator) genCall(c *ast.Call) string {
	for _, arg := range c.Args {
		v := g.genExpression(arg)
		g.emit(ir.PARAM, "", v, "")
	}
	t := g.newTemp()
	g.emit(ir.CALL, t, c.Callee, strconv.Itoa(len(c.Args)))
	return t
}
