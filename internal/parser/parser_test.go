package parser_test

import (
	"testing"

	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/lexer"
	"github.com/iamZamil/minic/internal/parser"
)

func parse(t *testing.T, source string) (*ast.Program, []string) {
	t.Helper()
	tokens, lexErrs := lexer.Tokenize(source)
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", lexErrs)
	}
	p := parser.New(tokens)
	prog := p.ParseProgram()
	var msgs []string
	for _, e := range p.Errors() {
		msgs = append(msgs, e.Error())
	}
	return prog, msgs
}

func TestParseMinimalProgram(t *testing.T) {
	prog, errs := parse(t, "int main() { return 0; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	if len(prog.Declarations) != 1 {
		t.Fatalf("got %d top-level declarations, want 1", len(prog.Declarations))
	}
	fn, ok := prog.Declarations[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("declaration is %T, want *ast.FunctionDeclaration", prog.Declarations[0])
	}
	if fn.Name != "main" {
		t.Errorf("function name = %q, want main", fn.Name)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("got %d body statements, want 1", len(fn.Body.Statements))
	}
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ReturnStatement", fn.Body.Statements[0])
	}
	num, ok := ret.Value.(*ast.NumberLiteral)
	if !ok || num.Lexeme != "0" {
		t.Errorf("return value = %#v, want NumberLiteral(0)", ret.Value)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	prog, errs := parse(t, "int main() { int a = 0; int b = 0; a = b = 1; return 0; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	fn := prog.Declarations[0].(*ast.FunctionDeclaration)
	stmt := fn.Body.Statements[2].(*ast.ExpressionStatement)
	outer, ok := stmt.Expr.(*ast.Assignment)
	if !ok {
		t.Fatalf("expression is %T, want *ast.Assignment", stmt.Expr)
	}
	if outer.Target.Name != "a" {
		t.Errorf("outer target = %q, want a", outer.Target.Name)
	}
	inner, ok := outer.Value.(*ast.Assignment)
	if !ok {
		t.Fatalf("assignment value is %T, want nested *ast.Assignment", outer.Value)
	}
	if inner.Target.Name != "b" {
		t.Errorf("inner target = %q, want b", inner.Target.Name)
	}
}

func TestBinaryOperatorsAreLeftAssociative(t *testing.T) {
	prog, errs := parse(t, "int main() { int a = 1 - 2 - 3; return a; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	fn := prog.Declarations[0].(*ast.FunctionDeclaration)
	decl := fn.Body.Statements[0].(*ast.VarDeclaration)
	outer, ok := decl.Init.(*ast.Binary)
	if !ok || outer.Op != "-" {
		t.Fatalf("init = %#v, want outer '-' Binary", decl.Init)
	}
	// (1 - 2) - 3: the outer node's left side must itself be a Binary.
	if _, ok := outer.Left.(*ast.Binary); !ok {
		t.Errorf("left operand is %T, want nested Binary (left-associative)", outer.Left)
	}
	if lit, ok := outer.Right.(*ast.NumberLiteral); !ok || lit.Lexeme != "3" {
		t.Errorf("right operand = %#v, want NumberLiteral(3)", outer.Right)
	}
}

func TestErrorRecoveryContinuesParsing(t *testing.T) {
	prog, errs := parse(t, "int main() { int a = ; int b = 2; return b; }")
	if len(errs) == 0 {
		t.Fatalf("expected at least one syntax error")
	}
	fn, ok := prog.Declarations[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("declaration is %T, want *ast.FunctionDeclaration", prog.Declarations[0])
	}
	// Recovery should resynchronize at ';' and still parse `int b = 2;`
	// and the trailing return, per spec.md §4.2.
	foundB := false
	for _, stmt := range fn.Body.Statements {
		if decl, ok := stmt.(*ast.VarDeclaration); ok && decl.Name == "b" {
			foundB = true
		}
	}
	if !foundB {
		t.Errorf("expected recovery to still parse declaration of 'b', statements: %#v", fn.Body.Statements)
	}
}

func TestForLoopMissingClausesAreWireEmpty(t *testing.T) {
	prog, errs := parse(t, "int main() { for (;;) { print(1); } return 0; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	fn := prog.Declarations[0].(*ast.FunctionDeclaration)
	forStmt, ok := fn.Body.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ForStatement", fn.Body.Statements[0])
	}
	wire := ast.ToWire(forStmt)
	if len(wire.Children) != 4 {
		t.Fatalf("for-loop wire node has %d children, want 4", len(wire.Children))
	}
	if wire.Children[0].Kind != ast.KindEmpty || wire.Children[1].Kind != ast.KindEmpty || wire.Children[2].Kind != ast.KindEmpty {
		t.Errorf("missing for-clauses should lower to Empty wire nodes, got %+v", wire.Children[:3])
	}
}
