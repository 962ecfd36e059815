package parser

import (
	"strconv"
	"strings"

	"github.com/somonscript/somon/internal/compiler/ast"
	"github.com/somonscript/somon/internal/compiler/errors"
	"github.com/somonscript/somon/internal/compiler/lexer"
	"github.com/somonscript/somon/internal/compiler/token"
)

func (p *Parser) base() ast.BaseNode { return ast.BaseNode{Position: p.cur.Pos} }

// parseExpression is the Pratt-style precedence-climbing core: it parses a
// prefix form then repeatedly folds in infix operators whose precedence
// exceeds the caller's floor. It returns with cur on the first token after
// the expression; single-token prefix and postfix forms do not advance
// themselves, so the loop steps past them.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.cur.Type]
	if prefix == nil {
		p.addError(errors.CodeUnexpectedToken, "unexpected token in expression: "+string(p.cur.Type))
		return nil
	}
	start := p.cur
	left := prefix()
	if p.cur == start {
		p.nextToken()
	}

	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) && precedence < precedences[p.cur.Type] {
		infix := p.infixParseFns[p.cur.Type]
		if infix == nil {
			return left
		}
		op := p.cur
		left = infix(left)
		if p.cur == op {
			p.nextToken()
		}
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	id := &ast.Identifier{BaseNode: p.base(), Name: p.cur.Literal}
	return id
}

func (p *Parser) parseBuiltinIdentifier() ast.Expression {
	id := &ast.Identifier{BaseNode: p.base(), Name: p.cur.Literal, BuiltinKind: string(p.cur.Type)}
	return id
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := p.cur.Literal
	val, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		p.addError(errors.CodeUnexpectedToken, "invalid number literal: "+lit)
	}
	return &ast.Literal{BaseNode: p.base(), Kind: ast.NumberLiteral, Value: val, Raw: lit}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.Literal{BaseNode: p.base(), Kind: ast.StringLiteral, Value: p.cur.Literal, Raw: p.cur.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.Literal{BaseNode: p.base(), Kind: ast.BooleanLiteral, Value: p.curTokenIs(token.TRUE_KW), Raw: p.cur.Literal}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.Literal{BaseNode: p.base(), Kind: ast.NullLiteral, Value: nil, Raw: p.cur.Literal}
}

func (p *Parser) parseUndefinedLiteral() ast.Expression {
	return &ast.Literal{BaseNode: p.base(), Kind: ast.UndefinedLiteral, Value: nil, Raw: p.cur.Literal}
}

func (p *Parser) parseThis() ast.Expression  { return &ast.This{BaseNode: p.base()} }
func (p *Parser) parseSuper() ast.Expression { return &ast.Super{BaseNode: p.base()} }

// parseTemplateLiteral re-lexes each `${...}` span captured verbatim by the
// lexer as an independent sub-expression, sharing this parser's prefix/
// infix tables — the same re-parse technique the teacher's script parser
// uses for string interpolation.
func (p *Parser) parseTemplateLiteral() ast.Expression {
	node := &ast.TemplateLiteral{BaseNode: p.base()}
	raw := p.cur.Literal
	var quasi strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{' {
			node.Quasis = append(node.Quasis, quasi.String())
			quasi.Reset()
			depth := 1
			j := i + 2
			start := j
			for j < len(raw) && depth > 0 {
				switch raw[j] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						goto done
					}
				}
				j++
			}
		done:
			exprSrc := raw[start:j]
			node.Expressions = append(node.Expressions, parseSubExpression(exprSrc, p.file, p.bag))
			i = j + 1
			continue
		}
		quasi.WriteByte(raw[i])
		i++
	}
	node.Quasis = append(node.Quasis, quasi.String())
	return node
}

// parseSubExpression lexes and parses a standalone expression fragment,
// used for template-literal interpolations.
func parseSubExpression(src, file string, bag *errors.Bag) ast.Expression {
	l := lexer.New(src)
	sub := New(l, file, bag)
	return sub.parseExpression(LOWEST)
}

func (p *Parser) parseUnary() ast.Expression {
	op := string(p.cur.Type)
	if p.curTokenIs(token.PLUS_PLUS) || p.curTokenIs(token.MINUS_MINUS) {
		pos := p.base()
		p.nextToken()
		operand := p.parseExpression(UNARY)
		return &ast.Update{BaseNode: pos, Operator: op, Operand: operand, Prefix: true}
	}
	pos := p.base()
	p.nextToken()
	operand := p.parseExpression(UNARY)
	return &ast.Unary{BaseNode: pos, Operator: op, Operand: operand}
}

func (p *Parser) parseAwait() ast.Expression {
	pos := p.base()
	p.nextToken()
	return &ast.Await{BaseNode: pos, Argument: p.parseExpression(UNARY)}
}

func (p *Parser) parseNew() ast.Expression {
	pos := p.base()
	p.nextToken()
	callee := p.parseExpression(CALL)
	n := &ast.New{BaseNode: pos, Callee: callee}
	if call, ok := callee.(*ast.Call); ok {
		n.Callee = call.Callee
		n.Arguments = call.Arguments
	}
	return n
}

func (p *Parser) parseUpdatePostfix(left ast.Expression) ast.Expression {
	return &ast.Update{BaseNode: p.base(), Operator: string(p.cur.Type), Operand: left, Prefix: false}
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	op := string(p.cur.Type)
	pos := p.base()
	precedence := precedences[p.cur.Type]
	rightAssoc := p.cur.Type == token.STAR_STAR
	p.nextToken()
	nextPrecedence := precedence
	if rightAssoc {
		nextPrecedence = precedence - 1
	}
	right := p.parseExpression(nextPrecedence)
	return &ast.Binary{BaseNode: pos, Operator: op, Left: left, Right: right}
}

func (p *Parser) parseAssignment(left ast.Expression) ast.Expression {
	op := string(p.cur.Type)
	pos := p.base()
	p.nextToken()
	value := p.parseExpression(ASSIGNMENT - 1) // right-associative
	return &ast.Assignment{BaseNode: pos, Operator: op, Target: left, Value: value}
}

// parseMember reads a dot-access property name. The generator's built-in
// remap table decides, from the receiver's BuiltinKind and this property's
// plain name, whether to rewrite the access — no dedicated lexer kind is
// needed per method name (see generator.BuiltinTable).
func (p *Parser) parseMember(left ast.Expression) ast.Expression {
	optional := p.curTokenIs(token.OPTIONAL_CHAIN)
	pos := p.base()
	p.nextToken()
	prop := &ast.Identifier{BaseNode: p.base(), Name: p.cur.Literal}
	p.nextToken()
	return &ast.Member{BaseNode: pos, Object: left, Property: prop, Optional: optional}
}

func (p *Parser) parseComputedMember(left ast.Expression) ast.Expression {
	pos := p.base()
	p.nextToken() // consume '['
	index := p.parseExpression(LOWEST)
	if !p.expect(token.RBRACKET) {
		return left
	}
	return &ast.Member{BaseNode: pos, Object: left, Property: index, Computed: true}
}

func (p *Parser) parseCall(left ast.Expression) ast.Expression {
	pos := p.base()
	args := p.parseArguments()
	return &ast.Call{BaseNode: pos, Callee: left, Arguments: args}
}

func (p *Parser) parseArguments() []ast.Expression {
	var args []ast.Expression
	p.nextToken() // consume '('
	if p.curTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}
	for {
		args = append(args, p.parseExpression(ASSIGNMENT-1))
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if !p.expect(token.RPAREN) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated argument list")
	}
	return args
}

func (p *Parser) parseSpread() ast.Expression {
	pos := p.base()
	p.nextToken()
	return &ast.Spread{BaseNode: pos, Argument: p.parseExpression(ASSIGNMENT - 1)}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	pos := p.base()
	p.nextToken() // consume '['
	arr := &ast.Array{BaseNode: pos}
	for !p.curTokenIs(token.RBRACKET) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.COMMA) {
			arr.Elements = append(arr.Elements, nil) // elided hole
			p.nextToken()
			continue
		}
		arr.Elements = append(arr.Elements, p.parseExpression(ASSIGNMENT-1))
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	if !p.expect(token.RBRACKET) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated array literal")
	}
	return arr
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	pos := p.base()
	p.nextToken() // consume '{'
	obj := &ast.Object{BaseNode: pos}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		prop := &ast.Property{BaseNode: p.base()}
		if p.curTokenIs(token.LBRACKET) {
			p.nextToken()
			prop.Key = p.parseExpression(LOWEST)
			prop.Computed = true
			p.expect(token.RBRACKET)
		} else if p.curTokenIs(token.ELLIPSIS) {
			obj.Properties = append(obj.Properties, &ast.Property{BaseNode: p.base(), Value: p.parseSpread()})
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
			}
			continue
		} else {
			prop.Key = &ast.Identifier{BaseNode: p.base(), Name: p.cur.Literal}
			p.nextToken()
		}
		if p.curTokenIs(token.COLON) {
			p.nextToken()
			prop.Value = p.parseExpression(ASSIGNMENT - 1)
		} else {
			prop.Shorthand = true
			if id, ok := prop.Key.(*ast.Identifier); ok {
				prop.Value = &ast.Identifier{BaseNode: id.BaseNode, Name: id.Name}
			}
		}
		obj.Properties = append(obj.Properties, prop)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	if !p.expect(token.RBRACE) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated object literal")
	}
	return obj
}

// parseParenOrArrow disambiguates `(expr)` from an arrow-function
// parameter list by scanning ahead to the matching `)` and checking for a
// following `=>`, per §4.2's one-token-lookahead rule.
func (p *Parser) parseParenOrArrow() ast.Expression {
	if p.looksLikeArrowParams() {
		return p.parseArrowFunction(false)
	}
	pos := p.base()
	p.nextToken() // consume '('
	expr := p.parseExpression(LOWEST)
	if !p.expect(token.RPAREN) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated parenthesized expression")
	}
	_ = pos
	return expr
}

// looksLikeArrowParams scans ahead to the matching ')' and checks whether
// '=>' follows, then rewinds the lexer and cursor to exactly where they
// started — the lexer has no token buffer, so the lookahead snapshots its
// scan position rather than replaying buffered tokens.
func (p *Parser) looksLikeArrowParams() bool {
	lexState := p.l.Snapshot()
	savedCur, savedPeek := p.cur, p.peek

	depth := 0
	isArrow := false
	for {
		if p.curTokenIs(token.LPAREN) {
			depth++
		} else if p.curTokenIs(token.RPAREN) {
			depth--
			if depth == 0 {
				p.nextToken()
				isArrow = p.curTokenIs(token.ARROW)
				break
			}
		} else if p.curTokenIs(token.EOF) {
			break
		}
		p.nextToken()
	}

	p.l.Restore(lexState)
	p.cur, p.peek = savedCur, savedPeek
	return isArrow
}

func (p *Parser) parseAsyncArrow() ast.Expression {
	p.nextToken() // consume 'async'
	return p.parseArrowFunction(true)
}

func (p *Parser) parseArrowFunction(async bool) ast.Expression {
	pos := p.base()
	var params []*ast.Param
	if p.curTokenIs(token.LPAREN) {
		params = p.parseParamList()
	} else {
		name := &ast.Identifier{BaseNode: p.base(), Name: p.cur.Literal}
		params = []*ast.Param{{BaseNode: p.base(), Name: name}}
		p.nextToken()
	}
	var returnType ast.TypeNode
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		returnType = p.parseType()
	}
	p.expect(token.ARROW)
	var body ast.Node
	if p.curTokenIs(token.LBRACE) {
		body = p.parseBlock()
	} else {
		body = p.parseExpression(ASSIGNMENT - 1)
	}
	return &ast.Arrow{BaseNode: pos, Params: params, ReturnType: returnType, Body: body, Async: async}
}
