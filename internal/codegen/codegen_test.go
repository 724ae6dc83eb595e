package codegen_test

import (
	"strings"
	"testing"

	"github.com/iamZamil/minic/internal/codegen"
	"github.com/iamZamil/minic/internal/ir"
	"github.com/iamZamil/minic/internal/irgen"
	"github.com/iamZamil/minic/internal/lexer"
	"github.com/iamZamil/minic/internal/optimizer"
	"github.com/iamZamil/minic/internal/parser"
)

func optimizedIR(t *testing.T, source string) []ir.Instruction {
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
	return optimizer.Optimize(irgen.New().Generate(prog))
}

func TestMinimalProgramAssembly(t *testing.T) {
	asm := codegen.New().Generate(optimizedIR(t, "int main() { return 0; }"))

	for _, want := range []string{
		"section .data",
		"section .text",
		"global _start",
		"main:",
		"push ebp",
		"mov ebp, esp",
		"mov eax, 0",
		"ret",
		"_start:",
		"call main",
	} {
		if !strings.Contains(asm, want) {
			t.Errorf("assembly missing %q:\n%s", want, asm)
		}
	}
}

func TestConstantFoldedProgramAssembly(t *testing.T) {
	asm := codegen.New().Generate(optimizedIR(t, "int main() { int a = 2 + 3 * 4; return a; }"))

	if !strings.Contains(asm, "a dd 0") {
		t.Errorf("variable 'a' missing a .data slot:\n%s", asm)
	}
	if !strings.Contains(asm, "mov r1, 14") {
		t.Errorf("expected the folded literal 14 to be moved into a's register:\n%s", asm)
	}
}

func TestControlFlowLowersJumpsAndLabels(t *testing.T) {
	asm := codegen.New().Generate(optimizedIR(t, "int main() { int i = 0; while (i < 3) { i = i + 1; } return i; }"))

	for _, want := range []string{"cmp r2, 0", "je", "jmp L", "L0:", "L1:"} {
		if !strings.Contains(asm, want) {
			t.Errorf("assembly missing %q:\n%s", want, asm)
		}
	}
}

func TestPrintLowersToPrintfCall(t *testing.T) {
	asm := codegen.New().Generate(optimizedIR(t, "int main() { print(42); return 0; }"))

	for _, want := range []string{"push 42", "call printf", "add esp, 4"} {
		if !strings.Contains(asm, want) {
			t.Errorf("assembly missing %q:\n%s", want, asm)
		}
	}
}
