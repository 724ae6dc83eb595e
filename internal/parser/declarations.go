package parser

import (
	"github.com/iamZamil/minic/internal/ast"
	"github.com/iamZamil/minic/internal/diagnostics"
	"github.com/iamZamil/minic/internal/token"
)

// parseDeclaration implements `declaration := type IDENT (functionRest |
// varRest)`.
func (p *Parser) parseDeclaration() ast.Statement {
	if !isTypeKeyword(p.cur()) {
		p.errorf(diagnostics.ErrP003, p.cur(), "expected a type keyword to start a declaration")
		p.synchronize()
		return nil
	}
	typeTok := p.advance()
	typeName := &ast.TypeName{Name: typeTok.Lexeme}
	typeName.Tok = typeTok

	if !p.checkType(token.Identifier) {
		p.errorf(diagnostics.ErrP002, p.cur(), "an identifier")
		p.synchronize()
		return nil
	}
	nameTok := p.advance()

	if p.checkLexeme("(") {
		return p.parseFunctionRest(typeTok, typeName, nameTok)
	}
	return p.parseVarRest(typeTok, typeName, nameTok)
}

// parseFunctionRest implements `functionRest := '(' paramList? ')' block`.
func (p *Parser) parseFunctionRest(start token.Token, retType *ast.TypeName, name token.Token) ast.Statement {
	p.expect("(")
	params := p.parseParamList()
	p.expect(")")
	body := p.parseBlock()

	fn := &ast.FunctionDeclaration{ReturnType: retType, Name: name.Lexeme, Params: params, Body: body}
	fn.Tok = start
	return fn
}

// parseParamList implements `paramList := param (',' param)*`.
func (p *Parser) parseParamList() *ast.Parameters {
	params := &ast.Parameters{}
	params.Tok = p.cur()
	if p.checkLexeme(")") {
		return params
	}
	params.List = append(params.List, p.parseParam())
	for p.match(",") {
		params.List = append(params.List, p.parseParam())
	}
	return params
}

// parseParam implements `param := type IDENT`.
func (p *Parser) parseParam() *ast.Parameter {
	start := p.cur()
	if !isTypeKeyword(p.cur()) {
		p.errorf(diagnostics.ErrP003, p.cur(), "expected a parameter type")
		return &ast.Parameter{Type: &ast.TypeName{}, Name: ""}
	}
	typeTok := p.advance()
	typeName := &ast.TypeName{Name: typeTok.Lexeme}
	typeName.Tok = typeTok

	nameTok := p.cur()
	name := ""
	if p.checkType(token.Identifier) {
		nameTok = p.advance()
		name = nameTok.Lexeme
	} else {
		p.errorf(diagnostics.ErrP002, p.cur(), "a parameter name")
	}
	param := &ast.Parameter{Type: typeName, Name: name}
	param.Tok = start
	return param
}

// parseVarRest implements `varRest := ('=' expression)? ';'`.
func (p *Parser) parseVarRest(start token.Token, declType *ast.TypeName, name token.Token) ast.Statement {
	decl := &ast.VarDeclaration{DeclType: declType, Name: name.Lexeme}
	decl.Tok = start
	if p.match("=") {
		decl.Init = p.parseExpression()
	}
	p.expect(";")
	return decl
}
