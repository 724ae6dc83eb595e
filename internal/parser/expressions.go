package parser

import (
	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/diagnostics"
	"github.com/iamZamil/minic/internal/token"
)

// parseExpression is the entry point of the expression grammar:
// `expression := assignment`.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// parseAssignment implements `assignment := logicalOr ('=' assignment)?`,
// right-associative (spec.md §4.2).
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseLogicalOr()
	if p.checkLexeme("=") {
		eq := p.advance()
		value := p.parseAssignment()
		if ident, ok := left.(*ast.Identifier); ok {
			asg := &ast.Assignment{Target: ident, Value: value}
			asg.Tok = eq
			return asg
		}
		p.errorf(diagnostics.ErrP003, eq, "invalid assignment target")
		return left
	}
	return left
}

// binaryLevel is one precedence level of left-associative binary
// operators, parameterized by the next-tighter production and the set of
// operator lexemes this level matches.
func (p *Parser) binaryLevel(next func() ast.Expression, ops ...string) ast.Expression {
	left := next()
	for {
		matched := ""
		for _, op := range ops {
			if p.checkLexeme(op) {
				matched = op
				break
			}
		}
		if matched == "" {
			return left
		}
		opTok := p.advance()
		right := next()
		bin := &ast.Binary{Op: ast.BinaryOp(matched), Left: left, Right: right}
		bin.Tok = opTok
		left = bin
	}
}

func (p *Parser) parseLogicalOr() ast.Expression {
	return p.binaryLevel(p.parseLogicalAnd, "||")
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	return p.binaryLevel(p.parseEquality, "&&")
}

func (p *Parser) parseEquality() ast.Expression {
	return p.binaryLevel(p.parseComparison, "==", "!=")
}

func (p *Parser) parseComparison() ast.Expression {
	return p.binaryLevel(p.parseTerm, "<", ">", "<=", ">=")
}

func (p *Parser) parseTerm() ast.Expression {
	return p.binaryLevel(p.parseFactor, "+", "-")
}

func (p *Parser) parseFactor() ast.Expression {
	return p.binaryLevel(p.parseUnary, "*", "/", "%")
}

// parseUnary implements `unary := ('!' | '-') unary | call`.
func (p *Parser) parseUnary() ast.Expression {
	if p.checkLexeme("!") || p.checkLexeme("-") {
		opTok := p.advance()
		operand := p.parseUnary()
		u := &ast.Unary{Op: ast.UnaryOp(opTok.Lexeme), Operand: operand}
		u.Tok = opTok
		return u
	}
	return p.parseCall()
}

// parseCall implements `call := primary ('(' args? ')')*`. Only a bare
// identifier callee is meaningful for this language (no first-class
// function values), so a call is only formed when primary was an
// Identifier; otherwise a syntax error is reported at the stray '(' and the
// primary is returned with the '(' left unconsumed.
func (p *Parser) parseCall() ast.Expression {
	expr := p.parsePrimary()
	for p.checkLexeme("(") {
		ident, ok := expr.(*ast.Identifier)
		if !ok {
			p.errorf(diagnostics.ErrP003, p.cur(), "only a plain identifier may be called")
			return expr
		}
		start := p.advance() // '('
		call := &ast.Call{Callee: ident.Name}
		call.Tok = start
		if !p.checkLexeme(")") {
			call.Args = append(call.Args, p.parseExpression())
			for p.match(",") {
				call.Args = append(call.Args, p.parseExpression())
			}
		}
		p.expect(")")
		expr = call
	}
	return expr
}

// parsePrimary implements:
//
//	primary := NUMBER | STRING | 'true' | 'false'
//	         | IDENT | '(' expression ')'
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur()
	switch {
	case tok.Type == token.Number:
		p.advance()
		lit := &ast.NumberLiteral{Lexeme: tok.Lexeme}
		lit.Tok = tok
		return lit
	case tok.Type == token.String:
		p.advance()
		lit := &ast.StringLiteral{Lexeme: tok.Lexeme}
		lit.Tok = tok
		return lit
	case tok.IsKeyword("true"), tok.IsKeyword("false"):
		p.advance()
		lit := &ast.BoolLiteral{Value: tok.Lexeme == "true"}
		lit.Tok = tok
		return lit
	case tok.Type == token.Identifier:
		p.advance()
		ident := &ast.Identifier{Name: tok.Lexeme}
		ident.Tok = tok
		return ident
	case tok.Lexeme == "(":
		p.advance()
		inner := p.parseExpression()
		p.expect(")")
		g := &ast.Grouping{Inner: inner}
		g.Tok = tok
		return g
	default:
		p.errorf(diagnostics.ErrP003, tok, "cannot parse expression starting with '"+tok.Lexeme+"'")
		p.synchronize()
		// Empty implements Expression too, so callers always get a
		// non-nil result even on malformed input (spec.md §4.2 "node
		// construction proceeds with whatever children were obtained").
		return ast.NewEmpty(tok)
	}
}
