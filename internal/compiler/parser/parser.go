// Package parser turns a SomonScript token stream into an AST via
// recursive descent with Pratt-style precedence climbing for expressions.
package parser

import (
	"fmt"

	"github.com/somonscript/somon/internal/compiler/ast"
	"github.com/somonscript/somon/internal/compiler/errors"
	"github.com/somonscript/somon/internal/compiler/lexer"
	"github.com/somonscript/somon/internal/compiler/token"
)

// Precedence levels, low to high, per §4.2.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT   // = += -= ... (right-assoc)
	LOGICAL_OR   // || ??
	LOGICAL_AND  // &&
	BITWISE_OR   // |
	BITWISE_XOR  // ^
	BITWISE_AND  // &
	EQUALITY     // == != === !==
	RELATIONAL   // < <= > >= in instanceof
	SHIFT        // << >> >>>
	ADDITIVE     // + -
	MULTIPLICATIVE // * / %
	EXPONENT     // ** (right-assoc)
	UNARY        // prefix ! - + ++ -- await typeof new
	POSTFIX      // ++ -- call member optional-chain index
	CALL
)

var precedences = map[token.Type]int{
	token.ASSIGN:         ASSIGNMENT,
	token.PLUS_ASSIGN:    ASSIGNMENT,
	token.MINUS_ASSIGN:   ASSIGNMENT,
	token.STAR_ASSIGN:    ASSIGNMENT,
	token.SLASH_ASSIGN:   ASSIGNMENT,
	token.PERCENT_ASSIGN: ASSIGNMENT,
	token.AND_ASSIGN:     ASSIGNMENT,
	token.OR_ASSIGN:      ASSIGNMENT,
	token.NULLISH_ASSIGN: ASSIGNMENT,
	token.AMP_ASSIGN:     ASSIGNMENT,
	token.PIPE_ASSIGN:    ASSIGNMENT,
	token.CARET_ASSIGN:   ASSIGNMENT,
	token.SHL_ASSIGN:     ASSIGNMENT,
	token.SHR_ASSIGN:     ASSIGNMENT,
	token.USHR_ASSIGN:    ASSIGNMENT,

	token.OR:      LOGICAL_OR,
	token.NULLISH: LOGICAL_OR,
	token.AND:     LOGICAL_AND,

	token.PIPE:  BITWISE_OR,
	token.CARET: BITWISE_XOR,
	token.AMP:   BITWISE_AND,

	token.EQ:         EQUALITY,
	token.NOT_EQ:     EQUALITY,
	token.STRICT_EQ:  EQUALITY,
	token.STRICT_NEQ: EQUALITY,

	token.LT:         RELATIONAL,
	token.LT_EQ:      RELATIONAL,
	token.GT:         RELATIONAL,
	token.GT_EQ:      RELATIONAL,
	token.IN_KW:      RELATIONAL,
	token.INSTANCEOF_KW: RELATIONAL,

	token.SHL:  SHIFT,
	token.SHR:  SHIFT,
	token.USHR: SHIFT,

	token.PLUS:  ADDITIVE,
	token.MINUS: ADDITIVE,

	token.STAR:    MULTIPLICATIVE,
	token.SLASH:   MULTIPLICATIVE,
	token.PERCENT: MULTIPLICATIVE,

	token.STAR_STAR: EXPONENT,

	token.PLUS_PLUS:      POSTFIX,
	token.MINUS_MINUS:    POSTFIX,
	token.LPAREN:         CALL,
	token.DOT:            CALL,
	token.OPTIONAL_CHAIN: CALL,
	token.LBRACKET:       CALL,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser holds lexer cursor state, the file name used in diagnostics, and
// the prefix/infix dispatch tables, in the teacher's Pratt-parser shape.
type Parser struct {
	l    *lexer.Lexer
	file string
	bag  *errors.Bag

	cur  token.Token
	peek token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New constructs a Parser reading from l, recording diagnostics into bag
// tagged with file.
func New(l *lexer.Lexer, file string, bag *errors.Bag) *Parser {
	p := &Parser{l: l, file: file, bag: bag}

	p.prefixParseFns = map[token.Type]prefixParseFn{}
	p.infixParseFns = map[token.Type]infixParseFn{}

	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.CONSOLE_KW, p.parseBuiltinIdentifier)
	p.registerPrefix(token.MATH_KW, p.parseBuiltinIdentifier)
	p.registerPrefix(token.ARRAY_KW, p.parseBuiltinIdentifier)
	p.registerPrefix(token.STRING_NS_KW, p.parseBuiltinIdentifier)
	p.registerPrefix(token.OBJECT_KW, p.parseBuiltinIdentifier)
	p.registerPrefix(token.MAP_KW, p.parseBuiltinIdentifier)
	p.registerPrefix(token.SET_KW, p.parseBuiltinIdentifier)
	p.registerPrefix(token.ERROR_KW, p.parseBuiltinIdentifier)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TEMPLATE_WHOLE, p.parseTemplateLiteral)
	p.registerPrefix(token.TRUE_KW, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE_KW, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL_KW, p.parseNullLiteral)
	p.registerPrefix(token.UNDEFINED_KW, p.parseUndefinedLiteral)
	p.registerPrefix(token.THIS_KW, p.parseThis)
	p.registerPrefix(token.SUPER_KW, p.parseSuper)
	p.registerPrefix(token.BANG, p.parseUnary)
	p.registerPrefix(token.MINUS, p.parseUnary)
	p.registerPrefix(token.PLUS, p.parseUnary)
	p.registerPrefix(token.TILDE, p.parseUnary)
	p.registerPrefix(token.PLUS_PLUS, p.parseUnary)
	p.registerPrefix(token.MINUS_MINUS, p.parseUnary)
	p.registerPrefix(token.AWAIT_KW, p.parseAwait)
	p.registerPrefix(token.TYPEOF_KW, p.parseUnary)
	p.registerPrefix(token.NEW_KW, p.parseNew)
	p.registerPrefix(token.LPAREN, p.parseParenOrArrow)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseObjectLiteral)
	p.registerPrefix(token.ELLIPSIS, p.parseSpread)
	p.registerPrefix(token.ASYNC_KW, p.parseAsyncArrow)

	for tt := range precedences {
		switch {
		case tt == token.PLUS_PLUS || tt == token.MINUS_MINUS:
			p.registerInfix(tt, p.parseUpdatePostfix)
		case tt == token.LPAREN:
			p.registerInfix(tt, p.parseCall)
		case tt == token.LBRACKET:
			p.registerInfix(tt, p.parseComputedMember)
		case tt == token.DOT || tt == token.OPTIONAL_CHAIN:
			p.registerInfix(tt, p.parseMember)
		case assignmentOps[tt]:
			p.registerInfix(tt, p.parseAssignment)
		default:
			p.registerInfix(tt, p.parseBinary)
		}
	}

	p.nextToken()
	p.nextToken()
	return p
}

var assignmentOps = map[token.Type]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.AND_ASSIGN: true, token.OR_ASSIGN: true, token.NULLISH_ASSIGN: true,
	token.AMP_ASSIGN: true, token.PIPE_ASSIGN: true, token.CARET_ASSIGN: true,
	token.SHL_ASSIGN: true, token.SHR_ASSIGN: true, token.USHR_ASSIGN: true,
}

func (p *Parser) registerPrefix(tt token.Type, fn prefixParseFn) { p.prefixParseFns[tt] = fn }
func (p *Parser) registerInfix(tt token.Type, fn infixParseFn)   { p.infixParseFns[tt] = fn }

// nextToken advances the cursor, transparently skipping NEWLINE and COMMENT
// tokens: NEWLINE is a statement-boundary hint the grammar never requires
// (semicolons are explicit per §4.2), so the parser proper never needs to
// see it.
func (p *Parser) nextToken() {
	p.cur = p.peek
	for {
		tok, err := p.l.NextToken()
		if err != nil {
			p.reportLexError(err)
			continue
		}
		if tok.Type == token.NEWLINE || tok.Type == token.COMMENT {
			continue
		}
		p.peek = tok
		break
	}
}

func (p *Parser) reportLexError(err error) {
	p.bag.Add(errors.NewError(errors.CodeLexUnterminated, err.Error(), errors.Position{File: p.file}, "", errors.CategorySyntax))
}

func (p *Parser) toPos(pos token.Position) errors.Position {
	return errors.Position{File: p.file, Line: pos.Line, Column: pos.Column}
}

func (p *Parser) addError(code, msg string) {
	p.bag.Add(errors.NewError(code, msg, p.toPos(p.cur.Pos), "", errors.CategorySyntax))
}

func (p *Parser) curTokenIs(tt token.Type) bool  { return p.cur.Type == tt }
func (p *Parser) peekTokenIs(tt token.Type) bool { return p.peek.Type == tt }

func (p *Parser) expect(tt token.Type) bool {
	if p.curTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.addError(errors.CodeUnexpectedToken, fmt.Sprintf("expected %s, got %s (%q)", tt, p.cur.Type, p.cur.Literal))
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

// synchronize discards tokens until the next statement-starting keyword or
// semicolon, per §4.2's panic-mode recovery contract.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			return
		}
		switch p.cur.Type {
		case token.LET_KW, token.CONST_KW, token.FUNCTION_KW, token.IF_KW, token.WHILE_KW,
			token.FOR_KW, token.RETURN_KW, token.CLASS_KW, token.IMPORT_KW, token.EXPORT_KW,
			token.INTERFACE_KW, token.TYPE_KW, token.NAMESPACE_KW, token.TRY_KW, token.THROW_KW,
			token.SWITCH_KW, token.BREAK_KW, token.CONTINUE_KW:
			return
		}
		p.nextToken()
	}
}

// Parse is the top-level entry point: tokens → Program, collecting errors
// into the Parser's Bag rather than aborting at the first one.
func Parse(l *lexer.Lexer, file string, bag *errors.Bag) *ast.Program {
	p := New(l, file, bag)
	prog := &ast.Program{BaseNode: ast.BaseNode{Position: p.cur.Pos}}
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Body = append(prog.Body, stmt)
		}
	}
	return prog
}
