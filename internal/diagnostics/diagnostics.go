// Package diagnostics provides the error type shared by every pipeline
// stage, keyed by a closed error-code enum the way the teacher pipeline
// keys its own diagnostics (lexer L-codes, parser P-codes, analyzer
// A-codes), each with a message template.
package diagnostics

import (
	"fmt"

	"github.com/iamZamil/minic/internal/token"
)

// Phase identifies which pipeline stage raised a diagnostic.
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseAnalyzer Phase = "analyzer"
)

// Code is a stable identifier for a diagnostic template.
type Code string

const (
	ErrL001 Code = "L001" // Unexpected character

	ErrP001 Code = "P001" // unexpected token
	ErrP002 Code = "P002" // expected token missing
	ErrP003 Code = "P003" // generic syntax error with custom message

	ErrA001 Code = "A001" // undefined symbol
	ErrA002 Code = "A002" // redeclaration
	ErrA003 Code = "A003" // invalid operand types
	ErrA004 Code = "A004" // type mismatch on init/assignment
	ErrA005 Code = "A005" // condition must be bool
	ErrA006 Code = "A006" // return type mismatch
	ErrA007 Code = "A007" // call arity/type mismatch
	ErrA008 Code = "A008" // callee is not a function
	ErrA009 Code = "A009" // assignment target is not assignable
	ErrA010 Code = "A010" // missing main
)

var templates = map[Code]string{
	ErrL001: "Unexpected character: %s",

	ErrP001: "Unexpected token: expected %s, got %s",
	ErrP002: "Expected %s",
	ErrP003: "%s",

	ErrA001: "Undefined symbol '%s'",
	ErrA002: "Redeclaration of '%s' (previously declared at %d:%d)",
	ErrA003: "invalid operand types for '%s': %s and %s",
	ErrA004: "Cannot initialize variable of type '%s' with value of type '%s'",
	ErrA005: "condition must be of type 'bool', got '%s'",
	ErrA006: "return type mismatch: function '%s' expects '%s', got '%s'",
	ErrA007: "%s",
	ErrA008: "'%s' is not a function",
	ErrA009: "assignment target must be a variable or parameter",
	ErrA010: "Program must have a main function",
}

// Diagnostic is the public, wire-shape record of spec.md §3: message plus
// position, and an optional "did you mean" Hint. Error.ToDiagnostic builds
// one from the richer internal Error.
type Diagnostic struct {
	Message string
	Line    int
	Column  int
	Hint    string `json:",omitempty"`
}

// Error is the internal representation carried through the pipeline; it
// keeps the phase and code around for tests and tooling, and renders down
// to a Diagnostic via ToDiagnostic.
type Error struct {
	Phase Phase
	Code  Code
	Tok   token.Token
	Args  []interface{}
	Hint  string
}

func New(phase Phase, code Code, tok token.Token, args ...interface{}) *Error {
	return &Error{Phase: phase, Code: code, Tok: tok, Args: args}
}

// At builds an Error with an explicit line/column rather than a token,
// for diagnostics that have no single offending token (e.g. "missing
// main" at 0:0 per spec.md §4.3).
func At(phase Phase, code Code, line, column int, args ...interface{}) *Error {
	return &Error{Phase: phase, Code: code, Tok: token.Token{Line: line, Column: column}, Args: args}
}

func (e *Error) message() string {
	tmpl, ok := templates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown diagnostic code: %s", e.Code)
	}
	return fmt.Sprintf(tmpl, e.Args...)
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %d:%d %s: %s", e.Phase, e.Tok.Line, e.Tok.Column, e.Code, e.message())
}

// ToDiagnostic converts the internal Error to the public wire-shape
// Diagnostic of spec.md §3.
func (e *Error) ToDiagnostic() Diagnostic {
	return Diagnostic{
		Message: e.message(),
		Line:    e.Tok.Line,
		Column:  e.Tok.Column,
		Hint:    e.Hint,
	}
}

// WithHint attaches an optional "did you mean" suggestion and returns the
// receiver for chaining at the call site.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}
