package analyzer_test

import (
	"testing"

	"github.com/iamZamil/minic/internal/analyzer"
	"github.com/iamZamil/minic/internal/lexer"
	"github.com/iamZamil/minic/internal/parser"
	"github.com/iamZamil/minic/internal/symbols"
)

func analyze(t *testing.T, source string) []string {
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
	table := symbols.NewSymbolTable()
	a := analyzer.New(table)
	var msgs []string
	for _, e := range a.Analyze(prog) {
		msgs = append(msgs, e.Error())
	}
	if !table.AtGlobal() {
		t.Errorf("symbolTable.currentScope != global after analysis (spec invariant 5)")
	}
	return msgs
}

func TestMinimalProgramIsClean(t *testing.T) {
	if errs := analyze(t, "int main() { return 0; }"); len(errs) != 0 {
		t.Fatalf("unexpected semantic errors: %v", errs)
	}
}

func TestUndefinedSymbol(t *testing.T) {
	errs := analyze(t, "int main() { return x; }")
	if len(errs) != 1 {
		t.Fatalf("got %d semantic errors, want 1: %v", len(errs), errs)
	}
}

func TestTypeMismatchOnInit(t *testing.T) {
	errs := analyze(t, "int main() { bool b = 1 + 1; return 0; }")
	if len(errs) != 1 {
		t.Fatalf("got %d semantic errors, want 1: %v", len(errs), errs)
	}
}

func TestMissingMain(t *testing.T) {
	errs := analyze(t, "int f() { return 0; }")
	if len(errs) != 1 {
		t.Fatalf("got %d semantic errors, want 1: %v", len(errs), errs)
	}
}

func TestWideningIsAllowed(t *testing.T) {
	errs := analyze(t, "int main() { float f = 1; return 0; }")
	if len(errs) != 0 {
		t.Fatalf("int->float widening should not error, got: %v", errs)
	}
}

func TestRedeclarationInSameScope(t *testing.T) {
	errs := analyze(t, "int main() { int a = 1; int a = 2; return 0; }")
	if len(errs) != 1 {
		t.Fatalf("got %d semantic errors, want 1: %v", len(errs), errs)
	}
}

func TestShadowingAcrossNestedScopesIsAllowed(t *testing.T) {
	errs := analyze(t, "int main() { int a = 1; { int a = 2; } return a; }")
	if len(errs) != 0 {
		t.Fatalf("shadowing in a nested block should not error, got: %v", errs)
	}
}

func TestCallArityMismatch(t *testing.T) {
	errs := analyze(t, "int add(int a, int b) { return a + b; } int main() { return add(1); }")
	if len(errs) != 1 {
		t.Fatalf("got %d semantic errors, want 1: %v", len(errs), errs)
	}
}

func TestConditionMustBeBool(t *testing.T) {
	errs := analyze(t, "int main() { if (1) { return 0; } return 1; }")
	if len(errs) != 1 {
		t.Fatalf("got %d semantic errors, want 1: %v", len(errs), errs)
	}
}
