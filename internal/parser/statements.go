package parser

import (
	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/diagnostics"
	"github.com/iamZamil/minic/internal/token"
)

// parseStatement implements:
//
//	statement := block | ifStmt | whileStmt | forStmt
//	           | returnStmt | printStmt | varDecl | exprStmt
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.checkLexeme("{"):
		return p.parseBlock()
	case p.checkLexeme("if"):
		return p.parseIfStatement()
	case p.checkLexeme("while"):
		return p.parseWhileStatement()
	case p.checkLexeme("for"):
		return p.parseForStatement()
	case p.checkLexeme("return"):
		return p.parseReturnStatement()
	case p.checkLexeme("print"):
		return p.parsePrintStatement()
	case isTypeKeyword(p.cur()):
		return p.parseLocalVarDecl()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseBlock() *ast.Block {
	start := p.expect("{")
	block := &ast.Block{}
	block.Tok = start
	for !p.checkLexeme("}") && !p.atEnd() {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.pos == before {
			p.advance()
		}
	}
	p.expect("}")
	return block
}

// parseIfStatement implements
// `ifStmt := 'if' '(' expression ')' statement ('else' statement)?`.
func (p *Parser) parseIfStatement() ast.Statement {
	start := p.advance() // 'if'
	p.expect("(")
	cond := p.parseExpression()
	p.expect(")")
	then := p.parseStatement()

	ifStmt := &ast.IfStatement{Cond: cond, Then: then}
	ifStmt.Tok = start
	if p.match("else") {
		ifStmt.Else = p.parseStatement()
	}
	return ifStmt
}

// parseWhileStatement implements
// `whileStmt := 'while' '(' expression ')' statement`.
func (p *Parser) parseWhileStatement() ast.Statement {
	start := p.advance() // 'while'
	p.expect("(")
	cond := p.parseExpression()
	p.expect(")")
	body := p.parseStatement()
	stmt := &ast.WhileStatement{Cond: cond, Body: body}
	stmt.Tok = start
	return stmt
}

// parseForStatement implements:
//
//	forStmt := 'for' '(' (statement|';') (expression)? ';' (expression)? ')' statement
func (p *Parser) parseForStatement() ast.Statement {
	start := p.advance() // 'for'
	p.expect("(")

	var init ast.Statement
	if !p.checkLexeme(";") {
		if isTypeKeyword(p.cur()) {
			init = p.parseLocalVarDecl()
		} else {
			init = p.parseExprStatement()
		}
	} else {
		p.advance() // bare ';'
	}

	var cond ast.Expression
	if !p.checkLexeme(";") {
		cond = p.parseExpression()
	}
	p.expect(";")

	var step ast.Expression
	if !p.checkLexeme(")") {
		step = p.parseExpression()
	}
	p.expect(")")

	body := p.parseStatement()
	stmt := &ast.ForStatement{Init: init, Cond: cond, Step: step, Body: body}
	stmt.Tok = start
	return stmt
}

// parseReturnStatement implements `returnStmt := 'return' expression? ';'`.
func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.advance() // 'return'
	stmt := &ast.ReturnStatement{}
	stmt.Tok = start
	if !p.checkLexeme(";") {
		stmt.Value = p.parseExpression()
	}
	p.expect(";")
	return stmt
}

// parsePrintStatement implements `printStmt := 'print' '(' expression ')' ';'`.
func (p *Parser) parsePrintStatement() ast.Statement {
	start := p.advance() // 'print'
	p.expect("(")
	value := p.parseExpression()
	p.expect(")")
	p.expect(";")
	stmt := &ast.PrintStatement{Value: value}
	stmt.Tok = start
	return stmt
}

// parseLocalVarDecl implements `varDecl` inside a statement position: the
// same `type IDENT varRest` shape as a top-level declaration.
func (p *Parser) parseLocalVarDecl() ast.Statement {
	start := p.cur()
	typeTok := p.advance()
	typeName := &ast.TypeName{Name: typeTok.Lexeme}
	typeName.Tok = typeTok

	if !p.checkType(token.Identifier) {
		p.errorf(diagnostics.ErrP002, p.cur(), "an identifier")
		p.synchronize()
		return nil
	}
	nameTok := p.advance()
	return p.parseVarRest(start, typeName, nameTok)
}

func (p *Parser) parseExprStatement() ast.Statement {
	start := p.cur()
	expr := p.parseExpression()
	p.expect(";")
	stmt := &ast.ExpressionStatement{Expr: expr}
	stmt.Tok = start
	return stmt
}
