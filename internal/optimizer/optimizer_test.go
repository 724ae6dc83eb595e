package optimizer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iamZamil/minic/internal/ir"
	"github.com/iamZamil/minic/internal/irgen"
	"github.com/iamZamil/minic/internal/lexer"
	"github.com/iamZamil/minic/internal/optimizer"
	"github.com/iamZamil/minic/internal/parser"
)

func rawIR(t *testing.T, source string) []ir.Instruction {
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

// TestConstantFoldingScenario covers spec.md §8 Scenario 2's optimized IR
// in full: folding + propagation collapse the arithmetic to a literal, and
// DCE removes the now-unused t0/t1 assignments.
func TestConstantFoldingScenario(t *testing.T) {
	raw := rawIR(t, "int main() { int a = 2 + 3 * 4; return a; }")
	got := optimizer.Optimize(raw)

	want := []ir.Instruction{
		{Op: ir.LABEL, Result: "main"},
		{Op: ir.ENTER},
		{Op: ir.ASSIGN, Result: "a", Arg1: "14"},
		{Op: ir.RET, Arg1: "a"},
		{Op: ir.LEAVE},
		{Op: ir.RET},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("optimized IR mismatch (-want +got):\n%s", diff)
	}
}

// TestLoopVariableSurvivesDCE covers spec.md §8 Scenario 6: because i is
// read in both the loop guard and the body, the optimizer must not
// eliminate its assignments.
func TestLoopVariableSurvivesDCE(t *testing.T) {
	raw := rawIR(t, "int main() { int i = 0; while (i < 3) { i = i + 1; } return i; }")
	got := optimizer.Optimize(raw)

	sawAssignToI := false
	for _, in := range got {
		if in.Op == ir.ASSIGN && in.Result == "i" {
			sawAssignToI = true
		}
	}
	if !sawAssignToI {
		t.Fatalf("assignment to i eliminated even though it is used: %v", got)
	}
}

// TestOptimizerIsIdempotent covers universal invariant 7: running the
// optimizer twice equals running it once.
func TestOptimizerIsIdempotent(t *testing.T) {
	sources := []string{
		"int main() { int a = 2 + 3 * 4; return a; }",
		"int main() { int i = 0; while (i < 3) { i = i + 1; } return i; }",
		"int main() { bool b = true || false; return 0; }",
		"int add(int a, int b) { return a + b; } int main() { return add(1, 2); }",
	}
	for _, src := range sources {
		raw := rawIR(t, src)
		once := optimizer.Optimize(raw)
		twice := optimizer.Optimize(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("optimizer not idempotent for %q (-once +twice):\n%s", src, diff)
		}
	}
}

// TestDivisionByZeroLeftUntouched covers the spec.md §4.5 carve-out:
// division/modulo by a literal zero is not folded.
func TestDivisionByZeroLeftUntouched(t *testing.T) {
	raw := rawIR(t, "int main() { int a = 5 / 0; return a; }")
	got := optimizer.Optimize(raw)

	sawDiv := false
	for _, in := range got {
		if in.Op == ir.DIV {
			sawDiv = true
		}
	}
	if !sawDiv {
		t.Fatalf("DIV by literal zero should survive folding untouched: %v", got)
	}
}

// TestDeadAssignmentIsEliminated is a minimal DCE check: an unused local
// has its ASSIGN replaced with NOP and the NOP stripped.
func TestDeadAssignmentIsEliminated(t *testing.T) {
	raw := rawIR(t, "int main() { int unused = 7; return 0; }")
	got := optimizer.Optimize(raw)

	for _, in := range got {
		if in.Op == ir.NOP {
			t.Fatalf("NOP should be stripped from the final stream: %v", got)
		}
		if in.Op == ir.ASSIGN && in.Result == "unused" {
			t.Fatalf("dead assignment to 'unused' should have been eliminated: %v", got)
		}
	}
}
