package analyzer

import (
	"strconv"
	"strings"

	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/diagnostics"
	"github.com/iamZamil/minic/internal/symbols"
	"github.com/iamZamil/minic/internal/typesystem"
)

// checkExpression type-checks expr and returns its type, per spec.md
// §4.3. Unknown propagates from any already-reported error to suppress
// cascading diagnostics.
func (a *Analyzer) checkExpression(expr ast.Expression) typesystem.Type {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		if strings.Contains(e.Lexeme, ".") {
			return typesystem.Float
		}
		return typesystem.Int
	case *ast.StringLiteral:
		return typesystem.String
	case *ast.BoolLiteral:
		return typesystem.Bool
	case *ast.Identifier:
		return a.checkIdentifier(e)
	case *ast.Assignment:
		return a.checkAssignment(e)
	case *ast.Binary:
		return a.checkBinary(e)
	case *ast.Unary:
		return a.checkUnary(e)
	case *ast.Call:
		return a.checkCall(e)
	case *ast.Grouping:
		return a.checkExpression(e.Inner)
	case *ast.Empty:
		return typesystem.Unknown
	default:
		return typesystem.Unknown
	}
}

func (a *Analyzer) checkIdentifier(ident *ast.Identifier) typesystem.Type {
	sym, ok := a.table.Resolve(ident.Name)
	if !ok {
		err := a.errorf(diagnostics.ErrA001, ident, ident.Name)
		if hint := suggest(ident.Name, a.table.NamesInScope()); hint != "" {
			err.WithHint("did you mean '" + hint + "'?")
		}
		return typesystem.Unknown
	}
	return sym.Type
}

// checkAssignment implements spec.md §4.3 assignment: the left side must
// be an identifier resolving to a variable or parameter; int->float
// widening is permitted; the target is marked initialized afterward.
func (a *Analyzer) checkAssignment(asg *ast.Assignment) typesystem.Type {
	valType := a.checkExpression(asg.Value)

	sym, ok := a.table.Resolve(asg.Target.Name)
	if !ok {
		a.errorf(diagnostics.ErrA001, asg.Target, asg.Target.Name)
		return typesystem.Unknown
	}
	if sym.Kind != symbols.Variable && sym.Kind != symbols.Parameter {
		a.errorf(diagnostics.ErrA009, asg.Target)
		return typesystem.Unknown
	}
	if !typesystem.Widens(valType, sym.Type) {
		a.errorf(diagnostics.ErrA004, asg.Value, string(sym.Type), string(valType))
	}
	sym.Initialized = true
	a.table.Update(sym)
	return sym.Type
}

// checkBinary implements spec.md §4.3 arithmetic/comparison/logical rules.
func (a *Analyzer) checkBinary(b *ast.Binary) typesystem.Type {
	left := a.checkExpression(b.Left)
	right := a.checkExpression(b.Right)

	switch b.Op {
	case "+", "-", "*", "/", "%":
		if left == typesystem.Unknown || right == typesystem.Unknown {
			return typesystem.Unknown
		}
		if !left.IsNumeric() || !right.IsNumeric() {
			a.errorf(diagnostics.ErrA003, b, string(b.Op), string(left), string(right))
			return typesystem.Unknown
		}
		return typesystem.ResultOf(left, right)
	case "==", "!=", "<", ">", "<=", ">=":
		return typesystem.Bool
	case "&&", "||":
		return typesystem.Bool
	default:
		return typesystem.Unknown
	}
}

// checkUnary implements spec.md §4.3: `!` yields bool, `-` requires (and
// preserves) a numeric operand type.
func (a *Analyzer) checkUnary(u *ast.Unary) typesystem.Type {
	operand := a.checkExpression(u.Operand)
	switch u.Op {
	case "!":
		return typesystem.Bool
	case "-":
		if operand == typesystem.Unknown {
			return typesystem.Unknown
		}
		if !operand.IsNumeric() {
			a.errorf(diagnostics.ErrA003, u, string(u.Op), string(operand), string(operand))
			return typesystem.Unknown
		}
		return operand
	default:
		return typesystem.Unknown
	}
}

// checkCall implements spec.md §4.3 function calls: the callee must
// resolve to a function symbol; argument count and per-argument type
// (with widening) are checked; the call's type is the function's return
// type.
func (a *Analyzer) checkCall(call *ast.Call) typesystem.Type {
	argTypes := make([]typesystem.Type, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i] = a.checkExpression(arg)
	}

	sym, ok := a.table.Resolve(call.Callee)
	if !ok {
		err := a.errorf(diagnostics.ErrA001, call, call.Callee)
		if hint := suggest(call.Callee, a.table.NamesInScope()); hint != "" {
			err.WithHint("did you mean '" + hint + "'?")
		}
		return typesystem.Unknown
	}
	if sym.Kind != symbols.Function {
		a.errorf(diagnostics.ErrA008, call, call.Callee)
		return typesystem.Unknown
	}
	if len(call.Args) != len(sym.Params) {
		a.errorf(diagnostics.ErrA007, call,
			"call to '"+call.Callee+"' passes "+strconv.Itoa(len(call.Args))+" argument(s), expected "+strconv.Itoa(len(sym.Params)))
		return sym.ReturnType
	}
	for i, param := range sym.Params {
		if argTypes[i] == typesystem.Unknown {
			continue
		}
		if !typesystem.Widens(argTypes[i], param.Type) {
			a.errorf(diagnostics.ErrA007, call.Args[i],
				"argument "+strconv.Itoa(i+1)+" to '"+call.Callee+"' has type '"+string(argTypes[i])+"', expected '"+string(param.Type)+"'")
		}
	}
	return sym.ReturnType
}
