package parser

import (
	"github.com/somonscript/somon/internal/compiler/ast"
	"github.com/somonscript/somon/internal/compiler/errors"
	"github.com/somonscript/somon/internal/compiler/token"
)

// parseStatement dispatches on the current token per §4.2's statement
// dispatch table, synchronizing on failure so one bad statement does not
// abort the whole parse.
func (p *Parser) parseStatement() ast.Statement {
	var stmt ast.Statement
	switch p.cur.Type {
	case token.IMPORT_KW:
		stmt = p.parseImport()
	case token.EXPORT_KW:
		stmt = p.parseExport()
	case token.INTERFACE_KW:
		stmt = p.parseInterfaceDeclaration()
	case token.TYPE_KW:
		stmt = p.parseTypeAlias()
	case token.NAMESPACE_KW:
		stmt = p.parseNamespaceDeclaration(false)
	case token.LET_KW, token.CONST_KW:
		stmt = p.parseVariableDeclarationStatement()
	case token.FUNCTION_KW:
		stmt = p.parseFunctionDeclaration(false)
	case token.ASYNC_KW:
		if p.peekTokenIs(token.FUNCTION_KW) {
			p.nextToken()
			stmt = p.parseFunctionDeclaration(true)
		} else {
			stmt = p.parseExpressionStatement()
		}
	case token.CLASS_KW, token.ABSTRACT_KW:
		stmt = p.parseClassDeclaration()
	case token.TRY_KW:
		stmt = p.parseTry()
	case token.THROW_KW:
		stmt = p.parseThrow()
	case token.IF_KW:
		stmt = p.parseIf()
	case token.WHILE_KW:
		stmt = p.parseWhile()
	case token.FOR_KW:
		stmt = p.parseFor()
	case token.RETURN_KW:
		stmt = p.parseReturn()
	case token.SWITCH_KW:
		stmt = p.parseSwitch()
	case token.BREAK_KW:
		stmt = p.parseBreak()
	case token.CONTINUE_KW:
		stmt = p.parseContinue()
	case token.LBRACE:
		stmt = p.parseBlock()
	case token.SEMICOLON:
		p.nextToken()
		return nil
	default:
		stmt = p.parseExpressionStatement()
	}
	if stmt == nil {
		p.synchronize()
	}
	return stmt
}

func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{BaseNode: p.base()}
	if !p.expect(token.LBRACE) {
		return block
	}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		s := p.parseStatement()
		if s != nil {
			block.Body = append(block.Body, s)
		}
	}
	if !p.expect(token.RBRACE) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated block")
	}
	return block
}

func (p *Parser) parseVariableDeclarationStatement() ast.Statement {
	decl := p.parseVariableDeclaration()
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return decl
}

// parseVariableDeclaration implements `kind-keyword pattern (":" type)?
// ("=" expr)? ";"` per §4.2.
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	pos := p.base()
	kind := ast.Mutable
	if p.curTokenIs(token.CONST_KW) {
		kind = ast.Const
	}
	p.nextToken()

	target := p.parsePattern()

	decl := &ast.VariableDeclaration{BaseNode: pos, Kind: kind, Target: target}
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		decl.TypeAnnotation = p.parseType()
	}
	if p.curTokenIs(token.ASSIGN) {
		p.nextToken()
		decl.Init = p.parseExpression(ASSIGNMENT - 1)
	}
	return decl
}

func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	p.expect(token.LPAREN)
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		param := &ast.Param{BaseNode: p.base()}
		if p.curTokenIs(token.ELLIPSIS) {
			p.nextToken()
			param.Name = &ast.RestElement{BaseNode: p.base(), Argument: p.parsePattern()}
		} else {
			param.Name = p.parsePattern()
		}
		if p.curTokenIs(token.QUESTION) {
			param.Optional = true
			p.nextToken()
		}
		if p.curTokenIs(token.COLON) {
			p.nextToken()
			param.TypeAnnotation = p.parseType()
		}
		if p.curTokenIs(token.ASSIGN) {
			p.nextToken()
			param.Default = p.parseExpression(ASSIGNMENT - 1)
		}
		params = append(params, param)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	if !p.expect(token.RPAREN) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated parameter list")
	}
	return params
}

// parseFunctionDeclaration implements `"function" name "(" params? ")"
// (":" type)? block`.
func (p *Parser) parseFunctionDeclaration(async bool) ast.Statement {
	pos := p.base()
	p.expect(token.FUNCTION_KW)
	name := p.cur.Literal
	p.nextToken()
	params := p.parseParamList()
	var returnType ast.TypeNode
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		returnType = p.parseType()
	}
	body := p.parseBlock()
	return &ast.FunctionDeclaration{BaseNode: pos, Name: name, Params: params, ReturnType: returnType, Body: body, Async: async}
}

func (p *Parser) parseClassDeclaration() ast.Statement {
	pos := p.base()
	abstract := false
	if p.curTokenIs(token.ABSTRACT_KW) {
		abstract = true
		p.nextToken()
	}
	p.expect(token.CLASS_KW)
	name := p.cur.Literal
	p.nextToken()

	decl := &ast.ClassDeclaration{BaseNode: pos, Name: name, Abstract: abstract}

	if p.curTokenIs(token.EXTENDS_KW) {
		p.nextToken()
		decl.SuperClass = p.cur.Literal
		p.nextToken()
	}
	if p.curTokenIs(token.IMPLEMENTS_KW) {
		p.nextToken()
		for {
			decl.Implements = append(decl.Implements, p.cur.Literal)
			p.nextToken()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
				continue
			}
			break
		}
	}

	if !p.expect(token.LBRACE) {
		return decl
	}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		decl.Body = append(decl.Body, p.parseClassMember())
	}
	if !p.expect(token.RBRACE) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated class body")
	}
	return decl
}

func (p *Parser) parseClassMember() *ast.ClassMember {
	member := &ast.ClassMember{BaseNode: p.base()}
	for {
		switch p.cur.Type {
		case token.PRIVATE_KW:
			member.Visibility = "private"
		case token.PROTECTED_KW:
			member.Visibility = "protected"
		case token.PUBLIC_KW:
			member.Visibility = "public"
		case token.STATIC_KW:
			member.IsStatic = true
		case token.ABSTRACT_KW:
			member.IsAbstract = true
		case token.READONLY_KW:
			member.ReadOnly = true
		case token.ASYNC_KW:
			member.Async = true
		default:
			goto modifiersDone
		}
		p.nextToken()
	}
modifiersDone:

	if p.curTokenIs(token.CONSTRUCTOR_KW) {
		member.IsConstructor = true
		member.IsMethod = true
		member.Name = "constructor"
		p.nextToken()
		member.Params = p.parseParamList()
		if p.curTokenIs(token.LBRACE) {
			member.Body = p.parseBlock()
		}
		return member
	}

	member.Name = p.cur.Literal
	p.nextToken()

	if p.curTokenIs(token.LPAREN) {
		member.IsMethod = true
		member.Params = p.parseParamList()
		if p.curTokenIs(token.COLON) {
			p.nextToken()
			member.TypeAnnotation = p.parseType()
		}
		if p.curTokenIs(token.LBRACE) {
			member.Body = p.parseBlock()
		} else if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return member
	}

	if p.curTokenIs(token.COLON) {
		p.nextToken()
		member.TypeAnnotation = p.parseType()
	}
	if p.curTokenIs(token.ASSIGN) {
		p.nextToken()
		member.Init = p.parseExpression(ASSIGNMENT - 1)
	}
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return member
}

func (p *Parser) parseInterfaceDeclaration() ast.Statement {
	pos := p.base()
	p.expect(token.INTERFACE_KW)
	decl := &ast.InterfaceDeclaration{BaseNode: pos, Name: p.cur.Literal}
	p.nextToken()

	if p.curTokenIs(token.LT) {
		decl.TypeParameters = p.parseTypeParameterNames()
	}
	if p.curTokenIs(token.EXTENDS_KW) {
		p.nextToken()
		for {
			decl.Extends = append(decl.Extends, p.cur.Literal)
			p.nextToken()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
				continue
			}
			break
		}
	}
	if !p.expect(token.LBRACE) {
		return decl
	}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		m := &ast.InterfaceMember{BaseNode: p.base(), Name: p.cur.Literal}
		p.nextToken()
		if p.curTokenIs(token.QUESTION) {
			m.Optional = true
			p.nextToken()
		}
		if p.curTokenIs(token.LPAREN) {
			m.IsMethod = true
			m.Params = p.parseParamList()
		}
		if p.curTokenIs(token.COLON) {
			p.nextToken()
			m.TypeAnnotation = p.parseType()
		}
		if p.curTokenIs(token.SEMICOLON) || p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
		decl.Body = append(decl.Body, m)
	}
	if !p.expect(token.RBRACE) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated interface body")
	}
	return decl
}

func (p *Parser) parseTypeParameterNames() []string {
	var names []string
	p.expect(token.LT)
	for !p.curTokenIs(token.GT) && !p.curTokenIs(token.EOF) {
		names = append(names, p.cur.Literal)
		p.nextToken()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.GT)
	return names
}

func (p *Parser) parseTypeAlias() ast.Statement {
	pos := p.base()
	p.expect(token.TYPE_KW)
	alias := &ast.TypeAlias{BaseNode: pos, Name: p.cur.Literal}
	p.nextToken()
	if p.curTokenIs(token.LT) {
		alias.TypeParameters = p.parseTypeParameterNames()
	}
	p.expect(token.ASSIGN)
	alias.Annotation = p.parseType()
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return alias
}

func (p *Parser) parseNamespaceDeclaration(exported bool) ast.Statement {
	pos := p.base()
	p.expect(token.NAMESPACE_KW)
	decl := &ast.NamespaceDeclaration{BaseNode: pos, Name: p.cur.Literal, Exported: exported}
	p.nextToken()
	if !p.expect(token.LBRACE) {
		return decl
	}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		s := p.parseStatement()
		if s != nil {
			decl.Body = append(decl.Body, s)
		}
	}
	if !p.expect(token.RBRACE) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated namespace body")
	}
	return decl
}

func (p *Parser) parseIf() ast.Statement {
	pos := p.base()
	p.expect(token.IF_KW)
	p.expect(token.LPAREN)
	test := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	then := p.parseStatement()
	node := &ast.If{BaseNode: pos, Test: test, Then: then}
	if p.curTokenIs(token.ELSE_KW) {
		p.nextToken()
		node.Else = p.parseStatement()
	}
	return node
}

func (p *Parser) parseWhile() ast.Statement {
	pos := p.base()
	p.expect(token.WHILE_KW)
	p.expect(token.LPAREN)
	test := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	body := p.parseStatement()
	return &ast.While{BaseNode: pos, Test: test, Body: body}
}

// parseFor disambiguates classic `for(;;)`, `for(x in obj)`, and
// `for(x of iterable)` forms after parsing an optional init clause.
// parseFor disambiguates the classic `for(init;test;update)` form from
// `for(x in obj)` / `for(x of iterable)` by parsing the init clause first
// and checking for a following `in`/`of` keyword.
func (p *Parser) parseFor() ast.Statement {
	pos := p.base()
	p.expect(token.FOR_KW)
	p.expect(token.LPAREN)

	if p.curTokenIs(token.SEMICOLON) {
		return p.finishClassicFor(pos, nil)
	}

	isDecl := p.curTokenIs(token.LET_KW) || p.curTokenIs(token.CONST_KW)

	if isDecl {
		kind := ast.Mutable
		if p.curTokenIs(token.CONST_KW) {
			kind = ast.Const
		}
		declPos := p.base()
		p.nextToken()
		target := p.parsePattern()
		if p.curTokenIs(token.IN_KW) {
			p.nextToken()
			right := p.parseExpression(LOWEST)
			p.expect(token.RPAREN)
			body := p.parseStatement()
			return &ast.ForIn{BaseNode: pos, Decl: &ast.VariableDeclaration{BaseNode: declPos, Kind: kind, Target: target}, Target: target, Right: right, Body: body}
		}
		if p.curTokenIs(token.OF_KW) {
			p.nextToken()
			right := p.parseExpression(LOWEST)
			p.expect(token.RPAREN)
			body := p.parseStatement()
			return &ast.ForOf{BaseNode: pos, Decl: &ast.VariableDeclaration{BaseNode: declPos, Kind: kind, Target: target}, Target: target, Right: right, Body: body}
		}
		decl := &ast.VariableDeclaration{BaseNode: declPos, Kind: kind, Target: target}
		if p.curTokenIs(token.COLON) {
			p.nextToken()
			decl.TypeAnnotation = p.parseType()
		}
		if p.curTokenIs(token.ASSIGN) {
			p.nextToken()
			decl.Init = p.parseExpression(ASSIGNMENT - 1)
		}
		return p.finishClassicFor(pos, decl)
	}

	expr := p.parseExpression(LOWEST)
	if p.curTokenIs(token.IN_KW) {
		p.nextToken()
		right := p.parseExpression(LOWEST)
		p.expect(token.RPAREN)
		body := p.parseStatement()
		return &ast.ForIn{BaseNode: pos, Target: exprToPattern(expr), Right: right, Body: body}
	}
	if p.curTokenIs(token.OF_KW) {
		p.nextToken()
		right := p.parseExpression(LOWEST)
		p.expect(token.RPAREN)
		body := p.parseStatement()
		return &ast.ForOf{BaseNode: pos, Target: exprToPattern(expr), Right: right, Body: body}
	}
	return p.finishClassicFor(pos, &ast.ExpressionStatement{BaseNode: pos, Expr: expr})
}

func exprToPattern(e ast.Expression) ast.Pattern {
	if pat, ok := e.(ast.Pattern); ok {
		return pat
	}
	return nil
}

// finishClassicFor parses the remaining `;test;update)` clauses and the
// loop body once the init clause (possibly nil) is already parsed.
func (p *Parser) finishClassicFor(pos ast.BaseNode, init ast.Statement) ast.Statement {
	p.expect(token.SEMICOLON)
	var test ast.Expression
	if !p.curTokenIs(token.SEMICOLON) {
		test = p.parseExpression(LOWEST)
	}
	p.expect(token.SEMICOLON)
	var update ast.Expression
	if !p.curTokenIs(token.RPAREN) {
		update = p.parseExpression(LOWEST)
	}
	p.expect(token.RPAREN)
	body := p.parseStatement()

	var initNode ast.Node
	if init != nil {
		initNode = init
	}
	return &ast.For{BaseNode: pos, Init: initNode, Test: test, Update: update, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	pos := p.base()
	p.expect(token.RETURN_KW)
	ret := &ast.Return{BaseNode: pos}
	if !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		ret.Value = p.parseExpression(LOWEST)
	}
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return ret
}

func (p *Parser) parseThrow() ast.Statement {
	pos := p.base()
	p.expect(token.THROW_KW)
	value := p.parseExpression(LOWEST)
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.Throw{BaseNode: pos, Value: value}
}

func (p *Parser) parseTry() ast.Statement {
	pos := p.base()
	p.expect(token.TRY_KW)
	node := &ast.Try{BaseNode: pos, Block: p.parseBlock()}
	if p.curTokenIs(token.CATCH_KW) {
		catchPos := p.base()
		p.nextToken()
		handler := &ast.CatchClause{BaseNode: catchPos}
		if p.curTokenIs(token.LPAREN) {
			p.nextToken()
			handler.Param = &ast.Param{BaseNode: p.base(), Name: p.parsePattern()}
			p.expect(token.RPAREN)
		}
		handler.Body = p.parseBlock()
		node.Handler = handler
	}
	if p.curTokenIs(token.FINALLY_KW) {
		p.nextToken()
		node.Finalizer = p.parseBlock()
	}
	return node
}

func (p *Parser) parseSwitch() ast.Statement {
	pos := p.base()
	p.expect(token.SWITCH_KW)
	p.expect(token.LPAREN)
	disc := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	node := &ast.Switch{BaseNode: pos, Discriminant: disc}
	if !p.expect(token.LBRACE) {
		return node
	}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		c := &ast.SwitchCase{BaseNode: p.base()}
		if p.curTokenIs(token.CASE_KW) {
			p.nextToken()
			c.Test = p.parseExpression(LOWEST)
		} else {
			p.expect(token.DEFAULT_KW)
		}
		p.expect(token.COLON)
		for !p.curTokenIs(token.CASE_KW) && !p.curTokenIs(token.DEFAULT_KW) && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			s := p.parseStatement()
			if s != nil {
				c.Consequent = append(c.Consequent, s)
			}
		}
		node.Cases = append(node.Cases, c)
	}
	if !p.expect(token.RBRACE) {
		p.addError(errors.CodeUnterminatedConstruct, "unterminated switch body")
	}
	return node
}

func (p *Parser) parseBreak() ast.Statement {
	pos := p.base()
	p.expect(token.BREAK_KW)
	node := &ast.Break{BaseNode: pos}
	if p.curTokenIs(token.IDENT) {
		node.Label = p.cur.Literal
		p.nextToken()
	}
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return node
}

func (p *Parser) parseContinue() ast.Statement {
	pos := p.base()
	p.expect(token.CONTINUE_KW)
	node := &ast.Continue{BaseNode: pos}
	if p.curTokenIs(token.IDENT) {
		node.Label = p.cur.Literal
		p.nextToken()
	}
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return node
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	pos := p.base()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.ExpressionStatement{BaseNode: pos, Expr: expr}
}

// parseImport implements every import form from §4.2: default-only, named,
// combined, namespace, and side-effect-only.
func (p *Parser) parseImport() ast.Statement {
	pos := p.base()
	p.expect(token.IMPORT_KW)

	node := &ast.Import{BaseNode: pos}

	if p.curTokenIs(token.STRING) {
		node.Kind = ast.ImportSideEffect
		node.Source = p.cur.Literal
		p.nextToken()
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return node
	}

	if p.curTokenIs(token.STAR) {
		p.nextToken()
		p.expect(token.AS_KW)
		node.Kind = ast.ImportNamespace
		node.Namespace = p.cur.Literal
		p.nextToken()
	} else if p.curTokenIs(token.LBRACE) {
		node.Kind = ast.ImportNamed
		node.Specifiers = p.parseImportSpecifiers()
	} else {
		node.Kind = ast.ImportDefault
		node.Default = p.cur.Literal
		p.nextToken()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			node.Specifiers = p.parseImportSpecifiers()
		}
	}

	p.expect(token.FROM_KW)
	node.Source = p.cur.Literal
	p.nextToken()
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return node
}

func (p *Parser) parseImportSpecifiers() []ast.ImportSpecifier {
	var specs []ast.ImportSpecifier
	p.expect(token.LBRACE)
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		spec := ast.ImportSpecifier{BaseNode: p.base(), Imported: p.cur.Literal, Local: p.cur.Literal}
		p.nextToken()
		if p.curTokenIs(token.AS_KW) {
			p.nextToken()
			spec.Local = p.cur.Literal
			p.nextToken()
		}
		specs = append(specs, spec)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RBRACE)
	return specs
}

// parseExport implements declaration, named-list, re-export, wildcard, and
// default export forms per §4.2.
func (p *Parser) parseExport() ast.Statement {
	pos := p.base()
	p.expect(token.EXPORT_KW)

	if p.curTokenIs(token.DEFAULT_KW) {
		p.nextToken()
		decl := p.parseExportableDeclOrExpr()
		return &ast.Export{BaseNode: pos, Declaration: decl, Default: true}
	}

	if p.curTokenIs(token.STAR) {
		p.nextToken()
		p.expect(token.FROM_KW)
		src := p.cur.Literal
		p.nextToken()
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return &ast.Export{BaseNode: pos, Wildcard: true, Source: src}
	}

	if p.curTokenIs(token.LBRACE) {
		specs := p.parseExportSpecifiers()
		node := &ast.Export{BaseNode: pos, Specifiers: specs}
		if p.curTokenIs(token.FROM_KW) {
			p.nextToken()
			node.Source = p.cur.Literal
			p.nextToken()
		}
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return node
	}

	if p.curTokenIs(token.NAMESPACE_KW) {
		return &ast.Export{BaseNode: pos, Declaration: p.parseNamespaceDeclaration(true)}
	}

	decl := p.parseStatement()
	return &ast.Export{BaseNode: pos, Declaration: decl}
}

func (p *Parser) parseExportableDeclOrExpr() ast.Statement {
	switch p.cur.Type {
	case token.FUNCTION_KW:
		return p.parseFunctionDeclaration(false)
	case token.CLASS_KW, token.ABSTRACT_KW:
		return p.parseClassDeclaration()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExportSpecifiers() []ast.ExportSpecifier {
	var specs []ast.ExportSpecifier
	p.expect(token.LBRACE)
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		spec := ast.ExportSpecifier{BaseNode: p.base(), Local: p.cur.Literal, Exported: p.cur.Literal}
		p.nextToken()
		if p.curTokenIs(token.AS_KW) {
			p.nextToken()
			spec.Exported = p.cur.Literal
			p.nextToken()
		}
		specs = append(specs, spec)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RBRACE)
	return specs
}
