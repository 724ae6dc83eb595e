package codegen_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/iamZamil/minic/internal/codegen"
	"github.com/iamZamil/minic/internal/ir"
	"github.com/iamZamil/minic/internal/irgen"
	"github.com/iamZamil/minic/internal/lexer"
	"github.com/iamZamil/minic/internal/optimizer"
	"github.com/iamZamil/minic/internal/parser"
)

// TestCanonicalProgramsSnapshot locks down the exact IR and assembly text
// for the canonical programs of spec.md §6/§8, the way the teacher's
// fixture tests snapshot interpreter output with go-snaps -- any change in
// lowering shows up as a diff against __snapshots__ instead of a silent
// behavior change.
func TestCanonicalProgramsSnapshot(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{"factorial", `
int factorial(int n) {
  if (n <= 1) { return 1; }
  return n * factorial(n - 1);
}
int main() {
  int result = factorial(5);
  print(result);
  return 0;
}`},
		{"minimal", `int main() { return 0; }`},
		{"constant_folding", `int main() { int a = 2 + 3 * 4; return a; }`},
		{"control_flow", `int main() { int i = 0; while (i < 3) { i = i + 1; } return i; }`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tokens, lexErrs := lexer.Tokenize(c.source)
			if len(lexErrs) != 0 {
				t.Fatalf("unexpected lexical errors: %v", lexErrs)
			}
			p := parser.New(tokens)
			prog := p.ParseProgram()
			if len(p.Errors()) != 0 {
				t.Fatalf("unexpected syntax errors: %v", p.Errors())
			}

			rawIR := irgen.New().Generate(prog)
			optIR := optimizer.Optimize(rawIR)
			asm := codegen.New().Generate(optIR)

			snaps.MatchSnapshot(t, "raw_ir", renderIR(rawIR))
			snaps.MatchSnapshot(t, "optimized_ir", renderIR(optIR))
			snaps.MatchSnapshot(t, "assembly", asm)
		})
	}
}

func renderIR(seq []ir.Instruction) string {
	out := ""
	for _, instr := range seq {
		out += instr.String() + "\n"
	}
	return out
}
