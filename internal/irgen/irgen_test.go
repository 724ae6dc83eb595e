package irgen_test

import (
	"testing"

	"github.com/iamZamil/minic/internal/ir"
	"github.com/iamZamil/minic/internal/irgen"
	"github.com/iamZamil/minic/internal/lexer"
	"github.com/iamZamil/minic/internal/parser"
)

func generate(t *testing.T, source string) []ir.Instruction {
	t.Helper()
	tokens, lexErrs := lexer.Tokenize(source)
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", lexErrs)
	}
	p := parser.New(tokens)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected syntax errors: %v", p.Errors())
	}
	return irgen.New().Generate(prog)
}

// TestMinimalProgramIR covers spec.md §8 Scenario 1: IR begins with
// LABEL main, ENTER and ends with RET(0), LEAVE, RET — the RET carrying the
// `return 0;` value is emitted before the unconditional trailing LEAVE/RET.
func TestMinimalProgramIR(t *testing.T) {
	instrs := generate(t, "int main() { return 0; }")
	want := []ir.Instruction{
		{Op: ir.LABEL, Result: "main"},
		{Op: ir.ENTER},
		{Op: ir.RET, Arg1: "0"},
		{Op: ir.LEAVE},
		{Op: ir.RET},
	}
	assertEqual(t, instrs, want)
}

// TestConstantFoldingRawIR covers the raw (pre-optimization) shape of
// spec.md §8 Scenario 2.
func TestConstantFoldingRawIR(t *testing.T) {
	instrs := generate(t, "int main() { int a = 2 + 3 * 4; return a; }")
	want := []ir.Instruction{
		{Op: ir.LABEL, Result: "main"},
		{Op: ir.ENTER},
		{Op: ir.MUL, Result: "t0", Arg1: "3", Arg2: "4"},
		{Op: ir.ADD, Result: "t1", Arg1: "2", Arg2: "t0"},
		{Op: ir.ASSIGN, Result: "a", Arg1: "t1"},
		{Op: ir.RET, Arg1: "a"},
		{Op: ir.LEAVE},
		{Op: ir.RET},
	}
	assertEqual(t, instrs, want)
}

// TestWhileLoopControlFlow covers spec.md §8 Scenario 6's shape: exactly
// one LABEL Lstart, one JUMPFALSE ..., Lend, one back-edge JUMP Lstart, one
// LABEL Lend, with `i` referenced in both the guard and the body.
func TestWhileLoopControlFlow(t *testing.T) {
	instrs := generate(t, "int main() { int i = 0; while (i < 3) { i = i + 1; } return i; }")

	var labels, jumpFalses, jumps int
	for _, in := range instrs {
		switch in.Op {
		case ir.LABEL:
			labels++
		case ir.JUMPFALSE:
			jumpFalses++
		case ir.JUMP:
			jumps++
		}
	}
	if labels != 3 { // main, Lstart, Lend
		t.Fatalf("got %d LABELs, want 3 (main, Lstart, Lend): %v", labels, instrs)
	}
	if jumpFalses != 1 {
		t.Fatalf("got %d JUMPFALSE, want 1: %v", jumpFalses, instrs)
	}
	if jumps != 1 {
		t.Fatalf("got %d JUMP (back-edge), want 1: %v", jumps, instrs)
	}

	sawGuard, sawAssign := false, false
	for _, in := range instrs {
		if in.Op == ir.LT && (in.Arg1 == "i" || in.Arg2 == "i") {
			sawGuard = true
		}
		if in.Op == ir.ADD && in.Arg1 == "i" {
			sawAssign = true
		}
	}
	if !sawGuard {
		t.Errorf("loop guard never compares against i: %v", instrs)
	}
	if !sawAssign {
		t.Errorf("loop body never reads i: %v", instrs)
	}
}

// TestShortCircuitOr checks that `||` lowers through a JUMPTRUE
// short-circuit branch (spec.md §4.4).
func TestShortCircuitOr(t *testing.T) {
	instrs := generate(t, "int main() { bool b = true || false; return 0; }")

	var sawJumpTrue bool
	for _, in := range instrs {
		if in.Op == ir.JUMPTRUE {
			sawJumpTrue = true
		}
	}
	if !sawJumpTrue {
		t.Fatalf("|| did not lower to JUMPTRUE short-circuit: %v", instrs)
	}
}

// TestFunctionCallLowering checks spec.md §4.4 FunctionCall lowering: one
// PARAM per argument in evaluation order, then a single CALL with the
// callee name and argument count.
func TestFunctionCallLowering(t *testing.T) {
	instrs := generate(t, "int add(int a, int b) { return a + b; } int main() { return add(1, 2); }")

	var params []string
	var call ir.Instruction
	for _, in := range instrs {
		if in.Op == ir.PARAM {
			params = append(params, in.Arg1)
		}
		if in.Op == ir.CALL {
			call = in
		}
	}
	if len(params) != 2 || params[0] != "1" || params[1] != "2" {
		t.Fatalf("got PARAM args %v, want [1 2]", params)
	}
	if call.Arg1 != "add" || call.Arg2 != "2" {
		t.Fatalf("got CALL %+v, want callee=add argc=2", call)
	}
}

func assertEqual(t *testing.T, got, want []ir.Instruction) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d instructions, want %d:\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("instruction %d: got %+v, want %+v\nfull got: %v", i, got[i], want[i], got)
		}
	}
}
