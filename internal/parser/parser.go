// Package parser implements the recursive-descent parser of spec.md §4.2:
// single lookahead, left/right associativity as specified, and
// resynchronizing error recovery so one bad statement never aborts parsing
// of the rest of the program.
package parser

import (
	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/diagnostics"
	"github.com/iamZamil/minic/internal/token"
)

// Parser holds the token cursor and the error sink shared with the rest of
// the pipeline.
type Parser struct {
	tokens []token.Token
	pos    int
	errors []*diagnostics.Error
}

// New creates a Parser over a complete token stream (always EOF-terminated
// by the lexer).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns the syntax diagnostics accumulated during parsing.
func (p *Parser) Errors() []*diagnostics.Error { return p.errors }

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) atEnd() bool {
	return p.cur().Type == token.EOF
}

func (p *Parser) checkLexeme(lexeme string) bool {
	return p.cur().Lexeme == lexeme && p.cur().Type != token.EOF
}

func (p *Parser) checkType(typ token.Type) bool {
	return p.cur().Type == typ
}

// match consumes and returns true if the current token's lexeme equals
// lexeme; otherwise leaves the cursor unchanged.
func (p *Parser) match(lexeme string) bool {
	if p.checkLexeme(lexeme) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token whose lexeme must equal lexeme, reporting a
// syntax diagnostic (but not aborting) when it doesn't match, per spec.md
// §4.2 "missing tokens at expected positions also emit a diagnostic but do
// not abort".
func (p *Parser) expect(lexeme string) token.Token {
	if p.checkLexeme(lexeme) {
		return p.advance()
	}
	p.errorf(diagnostics.ErrP001, p.cur(), lexeme, p.cur().Lexeme)
	return p.cur()
}

func (p *Parser) errorf(code diagnostics.Code, tok token.Token, args ...interface{}) {
	p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, code, tok, args...))
}

// synchronize resumes parsing after a production fails, consuming tokens
// until the next ';' or '}' (spec.md §4.2 error recovery), so later
// statements still get parsed and their diagnostics reported.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.checkLexeme(";") {
			p.advance()
			return
		}
		if p.checkLexeme("}") {
			return
		}
		p.advance()
	}
}

// isTypeKeyword reports whether the current token starts a type, the way
// `declaration := type IDENT ...` requires spec.md §4.2's grammar to
// decide between a declaration and (inside a block) any other statement.
func isTypeKeyword(tok token.Token) bool {
	switch tok.Lexeme {
	case "int", "float", "bool", "void":
		return tok.Type == token.Keyword
	}
	return false
}

// ParseProgram parses a full token stream into a Program, the AST root
// required by spec.md §3. Parsing never aborts early: a failed
// declaration is resynchronized past and the next one is attempted.
func (p *Parser) ParseProgram() *ast.Program {
	startTok := p.cur()
	prog := &ast.Program{}
	prog.Tok = startTok
	for !p.atEnd() {
		before := p.pos
		decl := p.parseDeclaration()
		if decl != nil {
			prog.Declarations = append(prog.Declarations, decl)
		}
		if p.pos == before {
			// Guard against a production that consumed nothing: force
			// progress so malformed input can never hang the parser.
			p.advance()
		}
	}
	return prog
}
