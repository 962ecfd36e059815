package parser

import (
	"strconv"

	"github.com/somonscript/somon/internal/compiler/ast"
	"github.com/somonscript/somon/internal/compiler/errors"
	"github.com/somonscript/somon/internal/compiler/token"
)

var primitiveTypeNames = map[token.Type]string{
	token.STRING_TYPE_KW:  "string",
	token.NUMBER_TYPE_KW:  "number",
	token.BOOLEAN_TYPE_KW: "boolean",
	token.NULL_KW:         "null",
	token.UNDEFINED_KW:    "undefined",
	token.ANY_KW:          "any",
	token.UNKNOWN_KW:      "unknown",
	token.NEVER_KW:        "never",
	token.VOID_KW:         "void",
}

// parseType is the entry point for the type grammar (§4.2): a union of
// intersections of primary types, with a trailing `[]` (repeatable)
// converting any type into an array type.
func (p *Parser) parseType() ast.TypeNode {
	t := p.parseConditionalType()
	return p.parseArraySuffix(t)
}

func (p *Parser) parseArraySuffix(t ast.TypeNode) ast.TypeNode {
	for p.curTokenIs(token.LBRACKET) && p.peekTokenIs(token.RBRACKET) {
		pos := p.base()
		p.nextToken() // consume '['
		p.nextToken() // consume ']'
		t = &ast.ArrayType{BaseNode: pos, Element: t}
	}
	return t
}

// parseConditionalType handles `Check extends Extends ? True : False`,
// falling through to a plain union when no `extends`/`?` follows.
func (p *Parser) parseConditionalType() ast.TypeNode {
	pos := p.base()
	check := p.parseUnionType()
	if !p.curTokenIs(token.EXTENDS_KW) {
		return check
	}
	p.nextToken()
	extendsType := p.parseUnionType()
	if !p.curTokenIs(token.QUESTION) {
		// bare `T extends U` outside a conditional position is not valid,
		// but recover gracefully by returning what we have.
		return check
	}
	p.nextToken()
	trueType := p.parseType()
	p.expect(token.COLON)
	falseType := p.parseType()
	return &ast.ConditionalType{BaseNode: pos, Check: check, Extends: extendsType, True: trueType, False: falseType}
}

func (p *Parser) parseUnionType() ast.TypeNode {
	pos := p.base()
	first := p.parseIntersectionType()
	if !p.curTokenIs(token.PIPE) {
		return first
	}
	union := &ast.UnionType{BaseNode: pos, Types: []ast.TypeNode{first}}
	for p.curTokenIs(token.PIPE) {
		p.nextToken()
		union.Types = append(union.Types, p.parseIntersectionType())
	}
	return union
}

func (p *Parser) parseIntersectionType() ast.TypeNode {
	pos := p.base()
	first := p.parsePrimaryTypeWithSuffix()
	if !p.curTokenIs(token.AMP) {
		return first
	}
	inter := &ast.IntersectionType{BaseNode: pos, Types: []ast.TypeNode{first}}
	for p.curTokenIs(token.AMP) {
		p.nextToken()
		inter.Types = append(inter.Types, p.parsePrimaryTypeWithSuffix())
	}
	return inter
}

func (p *Parser) parsePrimaryTypeWithSuffix() ast.TypeNode {
	return p.parseArraySuffix(p.parsePrimaryType())
}

// parsePrimaryType parses a primitive keyword, a generic, a tuple, a
// literal type, a `unique` base, a `keyof` operand, a mapped/indexed-
// access type, or a parenthesized type.
func (p *Parser) parsePrimaryType() ast.TypeNode {
	pos := p.base()

	if name, ok := primitiveTypeNames[p.cur.Type]; ok {
		p.nextToken()
		return &ast.PrimitiveType{BaseNode: pos, Name: name}
	}

	switch p.cur.Type {
	case token.UNIQUE_KW:
		p.nextToken()
		return &ast.UniqueType{BaseNode: pos, Base: p.parsePrimaryTypeWithSuffix()}
	case token.KEYOF_KW:
		p.nextToken()
		return &ast.KeyofType{BaseNode: pos, Operand: p.parsePrimaryTypeWithSuffix()}
	case token.READONLY_KW:
		p.nextToken()
		return p.parsePrimaryTypeWithSuffix()
	case token.LBRACKET:
		return p.parseTupleType()
	case token.LPAREN:
		p.nextToken()
		inner := p.parseType()
		p.expect(token.RPAREN)
		return inner
	case token.STRING:
		lit := p.cur.Literal
		p.nextToken()
		return &ast.LiteralType{BaseNode: pos, Value: lit}
	case token.NUMBER:
		lit := p.cur.Literal
		p.nextToken()
		val, _ := strconv.ParseFloat(lit, 64)
		return &ast.LiteralType{BaseNode: pos, Value: val}
	case token.TRUE_KW, token.FALSE_KW:
		val := p.curTokenIs(token.TRUE_KW)
		p.nextToken()
		return &ast.LiteralType{BaseNode: pos, Value: val}
	case token.LBRACE:
		return p.parseMappedOrInlineObjectType()
	}

	name := p.cur.Literal
	p.nextToken()
	generic := &ast.GenericType{BaseNode: pos, Name: name}
	if p.curTokenIs(token.LT) {
		generic.TypeParameters = p.parseTypeArguments()
	}
	return p.parseIndexedAccessSuffix(generic)
}

func (p *Parser) parseIndexedAccessSuffix(t ast.TypeNode) ast.TypeNode {
	for p.curTokenIs(token.LBRACKET) && !p.peekTokenIs(token.RBRACKET) {
		pos := p.base()
		p.nextToken() // consume '['
		index := p.parseType()
		p.expect(token.RBRACKET)
		t = &ast.IndexedAccessType{BaseNode: pos, Object: t, Index: index}
	}
	return t
}

func (p *Parser) parseTypeArguments() []ast.TypeNode {
	var args []ast.TypeNode
	p.expect(token.LT)
	for !p.curTokenIs(token.GT) && !p.curTokenIs(token.EOF) {
		args = append(args, p.parseType())
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.GT)
	return args
}

func (p *Parser) parseTupleType() ast.TypeNode {
	pos := p.base()
	p.expect(token.LBRACKET)
	tuple := &ast.TupleType{BaseNode: pos}
	for !p.curTokenIs(token.RBRACKET) && !p.curTokenIs(token.EOF) {
		tuple.Elements = append(tuple.Elements, p.parseType())
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expect(token.RBRACKET) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated tuple type")
	}
	return tuple
}

// parseMappedOrInlineObjectType parses `{ [K in Constraint]: Value }`; a
// plain `{ ... }` object-shape type is skipped and represented as the
// PrimitiveType "object"
// (object-shape structural types beyond mapped types are out of the
// closed node set named in §3 and are intentionally not modeled further).
func (p *Parser) parseMappedOrInlineObjectType() ast.TypeNode {
	pos := p.base()
	p.expect(token.LBRACE)
	readOnly := false
	if p.curTokenIs(token.READONLY_KW) {
		readOnly = true
		p.nextToken()
	}
	if p.curTokenIs(token.LBRACKET) {
		p.nextToken()
		keyName := p.cur.Literal
		p.nextToken()
		p.expect(token.IN_KW)
		constraint := p.parseType()
		p.expect(token.RBRACKET)
		optional := false
		if p.curTokenIs(token.QUESTION) {
			optional = true
			p.nextToken()
		}
		p.expect(token.COLON)
		value := p.parseType()
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		p.expect(token.RBRACE)
		return &ast.MappedType{BaseNode: pos, KeyName: keyName, Constraint: constraint, Value: value, ReadOnly: readOnly, Optional: optional}
	}
	// Fallback: treat an unrecognized brace-delimited type as `object`.
	depth := 1
	for depth > 0 && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.LBRACE) {
			depth++
		} else if p.curTokenIs(token.RBRACE) {
			depth--
			if depth == 0 {
				break
			}
		}
		p.nextToken()
	}
	p.expect(token.RBRACE)
	return &ast.PrimitiveType{BaseNode: pos, Name: "object"}
}
