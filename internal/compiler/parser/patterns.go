package parser

import (
	"github.com/somonscript/somon/internal/compiler/ast"
	"github.com/somonscript/somon/internal/compiler/errors"
	"github.com/somonscript/somon/internal/compiler/token"
)

// parsePattern parses a binding target: a plain identifier, an array
// destructuring pattern (holes allowed), or an object destructuring
// pattern (no holes, per invariant 3).
func (p *Parser) parsePattern() ast.Pattern {
	switch p.cur.Type {
	case token.LBRACKET:
		return p.parseArrayPattern()
	case token.LBRACE:
		return p.parseObjectPattern()
	default:
		if !p.curTokenIs(token.IDENT) && !token.IsBuiltinNamespace(p.cur.Type) {
			p.addError(errors.CodeUnexpectedToken, "expected binding name, got "+string(p.cur.Type))
		}
		name := p.cur.Literal
		pos := p.base()
		p.nextToken()
		return &ast.Identifier{BaseNode: pos, Name: name}
	}
}

func (p *Parser) parseArrayPattern() ast.Pattern {
	pos := p.base()
	p.expect(token.LBRACKET)
	pat := &ast.ArrayPattern{BaseNode: pos}
	for !p.curTokenIs(token.RBRACKET) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.COMMA) {
			pat.Elements = append(pat.Elements, nil)
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.ELLIPSIS) {
			p.nextToken()
			pat.Elements = append(pat.Elements, &ast.RestElement{BaseNode: p.base(), Argument: p.parsePattern()})
		} else {
			pat.Elements = append(pat.Elements, p.parseBindingWithDefault())
		}
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	if !p.expect(token.RBRACKET) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated array pattern")
	}
	return pat
}

// parseBindingWithDefault wraps a pattern that carries a default value
// (`name = expr`) inside a destructuring target. Defaults on array/object
// elements are represented by attaching them where the element is
// consumed (param lists and variable declarations own their own Default
// handling); for bare array-pattern elements we fold the default into the
// element's own PropertyPattern-less identifier by discarding it here is
// wrong, so instead we parse it as an ObjectPattern-style wrapper when a
// default is present via a synthetic PropertyPattern with Shorthand=true.
func (p *Parser) parseBindingWithDefault() ast.Pattern {
	inner := p.parsePattern()
	if p.curTokenIs(token.ASSIGN) {
		p.nextToken()
		def := p.parseExpression(ASSIGNMENT - 1)
		return &ast.PropertyPattern{BaseNode: p.base(), Value: inner, Shorthand: true, Default: def}
	}
	return inner
}

func (p *Parser) parseObjectPattern() ast.Pattern {
	pos := p.base()
	p.expect(token.LBRACE)
	pat := &ast.ObjectPattern{BaseNode: pos}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.ELLIPSIS) {
			p.nextToken()
			pat.Properties = append(pat.Properties, &ast.PropertyPattern{
				BaseNode: p.base(),
				Value:    &ast.RestElement{BaseNode: p.base(), Argument: p.parsePattern()},
			})
			break
		}
		prop := &ast.PropertyPattern{BaseNode: p.base()}
		keyName := p.cur.Literal
		prop.Key = &ast.Identifier{BaseNode: p.base(), Name: keyName}
		p.nextToken()
		if p.curTokenIs(token.COLON) {
			p.nextToken()
			prop.Value = p.parsePattern()
		} else {
			prop.Shorthand = true
			prop.Value = &ast.Identifier{BaseNode: prop.BaseNode, Name: keyName}
		}
		if p.curTokenIs(token.ASSIGN) {
			p.nextToken()
			prop.Default = p.parseExpression(ASSIGNMENT - 1)
		}
		pat.Properties = append(pat.Properties, prop)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	if !p.expect(token.RBRACE) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated object pattern")
	}
	return pat
}
