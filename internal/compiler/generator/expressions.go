package generator

import (
	"strconv"
	"strings"

	"github.com/somonscript/somon/internal/compiler/ast"
)

// genExpr dispatches a single expression to its rendering routine,
// returning the JavaScript text rather than writing to g.sb directly -
// expressions nest inside statements and other expressions, so they're
// built bottom-up as strings.
func (g *Generator) genExpr(expr ast.Expression) string {
	if expr == nil {
		return ""
	}
	switch e := expr.(type) {
	case *ast.Literal:
		return g.genLiteral(e)
	case *ast.TemplateLiteral:
		return g.genTemplateLiteral(e)
	case *ast.Identifier:
		return e.Name
	case *ast.Array:
		return g.genArray(e)
	case *ast.Object:
		return g.genObject(e)
	case *ast.Binary:
		return g.genBinary(e)
	case *ast.Unary:
		return g.genUnary(e)
	case *ast.Update:
		return g.genUpdate(e)
	case *ast.Assignment:
		return g.genExpr(e.Target) + " " + e.Operator + " " + g.genExpr(e.Value)
	case *ast.Call:
		return g.genCall(e)
	case *ast.New:
		return g.genNew(e)
	case *ast.Member:
		return g.genMember(e)
	case *ast.Arrow:
		return g.genArrow(e)
	case *ast.Await:
		return "await " + g.genParen(e.Argument)
	case *ast.ImportExpression:
		return "require(" + g.genExpr(e.Source) + ")"
	case *ast.This:
		return "this"
	case *ast.Super:
		return "super"
	case *ast.Spread:
		return "..." + g.genExpr(e.Argument)
	}
	return ""
}

// genParen wraps expr in parentheses when it is itself a binary
// expression - spec.md §4.4's conservative parenthesization rule: add
// parens whenever either operand of a binary expression is itself binary.
func (g *Generator) genParen(expr ast.Expression) string {
	if _, ok := expr.(*ast.Binary); ok {
		return "(" + g.genExpr(expr) + ")"
	}
	return g.genExpr(expr)
}

func (g *Generator) genBinary(e *ast.Binary) string {
	return g.genParen(e.Left) + " " + e.Operator + " " + g.genParen(e.Right)
}

func (g *Generator) genLiteral(lit *ast.Literal) string {
	switch lit.Kind {
	case ast.NumberLiteral:
		if lit.Raw != "" {
			return lit.Raw
		}
		return formatNumber(lit.Value)
	case ast.StringLiteral:
		s, _ := lit.Value.(string)
		return strconv.Quote(s)
	case ast.BooleanLiteral:
		b, _ := lit.Value.(bool)
		if b {
			return "true"
		}
		return "false"
	case ast.NullLiteral:
		return "null"
	case ast.UndefinedLiteral:
		return "undefined"
	}
	return lit.Raw
}

func formatNumber(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return "0"
}

func (g *Generator) genTemplateLiteral(tl *ast.TemplateLiteral) string {
	var b strings.Builder
	b.WriteByte('`')
	for i, q := range tl.Quasis {
		b.WriteString(q)
		if i < len(tl.Expressions) {
			b.WriteString("${")
			b.WriteString(g.genExpr(tl.Expressions[i]))
			b.WriteString("}")
		}
	}
	b.WriteByte('`')
	return b.String()
}

func (g *Generator) genArray(a *ast.Array) string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		if el == nil {
			parts[i] = ""
			continue
		}
		parts[i] = g.genExpr(el)
	}
	return "[" + joinComma(parts) + "]"
}

func (g *Generator) genObject(o *ast.Object) string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		key := g.genPropertyKey(p.Key, p.Computed)
		if p.Shorthand {
			parts[i] = key
			continue
		}
		parts[i] = key + ": " + g.genExpr(p.Value)
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{ " + joinComma(parts) + " }"
}

func (g *Generator) genPropertyKey(key ast.Expression, computed bool) string {
	if computed {
		return "[" + g.genExpr(key) + "]"
	}
	if id, ok := key.(*ast.Identifier); ok {
		return id.Name
	}
	if lit, ok := key.(*ast.Literal); ok {
		return g.genLiteral(lit)
	}
	return g.genExpr(key)
}

func (g *Generator) genUnary(u *ast.Unary) string {
	operand := g.genParen(u.Operand)
	if isWordOperator(u.Operator) {
		return u.Operator + " " + operand
	}
	return u.Operator + operand
}

func isWordOperator(op string) bool {
	switch op {
	case "typeof", "void", "delete":
		return true
	}
	return false
}

func (g *Generator) genUpdate(u *ast.Update) string {
	operand := g.genExpr(u.Operand)
	if u.Prefix {
		return u.Operator + operand
	}
	return operand + u.Operator
}

func (g *Generator) genCall(c *ast.Call) string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = g.genExpr(a)
	}
	op := "("
	if c.Optional {
		op = "?.("
	}
	return g.genExpr(c.Callee) + op + joinComma(args) + ")"
}

func (g *Generator) genNew(n *ast.New) string {
	args := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = g.genExpr(a)
	}
	return "new " + g.genExpr(n.Callee) + "(" + joinComma(args) + ")"
}

// genMember implements the built-in remap table lookup: a receiver whose
// ast.Identifier.BuiltinKind is set (console, Math, ...) remaps both the
// namespace and, for console, its method name; any other receiver that
// doesn't look user-defined (LooksUserDefined) has its property remapped
// through the generic array/string method table.
func (g *Generator) genMember(m *ast.Member) string {
	if m.Computed {
		op := "["
		if m.Optional {
			op = "?.["
		}
		return g.genExpr(m.Object) + op + g.genExpr(m.Property) + "]"
	}
	dot := "."
	if m.Optional {
		dot = "?."
	}
	propIdent, ok := m.Property.(*ast.Identifier)
	if !ok {
		return g.genExpr(m.Object) + dot + g.genExpr(m.Property)
	}
	propName := propIdent.Name
	if recv, ok := m.Object.(*ast.Identifier); ok && recv.BuiltinKind != "" {
		if canonical, known := g.builtins.Namespace(recv.BuiltinKind); known {
			if canonical == "console" && strings.EqualFold(propName, "error") {
				propName = "error"
			} else {
				propName = g.builtins.Method(recv.BuiltinKind, propName)
			}
			return canonical + dot + propName
		}
	}
	objStr := g.genExpr(m.Object)
	if !LooksUserDefined(objStr) {
		if remapped, ok := g.builtins.RemapGeneric(propName); ok {
			propName = remapped
		}
	}
	return objStr + dot + propName
}

// genArrow renders an arrow function. A block body needs its statements
// rendered through a scratch Generator (see renderBlockBody) since genExpr
// must return a string rather than append to the caller's buffer; a
// concise expression body is inlined directly, with an object literal
// wrapped in parens to disambiguate it from a block.
func (g *Generator) genArrow(a *ast.Arrow) string {
	prefix := ""
	if a.Async {
		prefix = "async "
	}
	head := prefix + "(" + g.genParams(a.Params) + ") =>"
	switch body := a.Body.(type) {
	case *ast.Block:
		inner := g.renderBlockBody(body.Body, g.indent+1)
		return head + " {\n" + inner + strings.Repeat("  ", g.indent) + "}"
	case ast.Expression:
		if obj, ok := body.(*ast.Object); ok {
			return head + " (" + g.genObject(obj) + ")"
		}
		return head + " " + g.genExpr(body)
	}
	return head
}

// genPattern renders a binding pattern - identifier, array/object
// destructuring, or rest element - used by variable declarations,
// function parameters, and for-in/for-of targets.
func (g *Generator) genPattern(p ast.Pattern) string {
	switch pt := p.(type) {
	case *ast.Identifier:
		return pt.Name
	case *ast.ArrayPattern:
		parts := make([]string, len(pt.Elements))
		for i, el := range pt.Elements {
			if el == nil {
				parts[i] = ""
				continue
			}
			parts[i] = g.genPattern(el)
		}
		return "[" + joinComma(parts) + "]"
	case *ast.ObjectPattern:
		parts := make([]string, len(pt.Properties))
		for i, prop := range pt.Properties {
			parts[i] = g.genPropertyPattern(prop)
		}
		return "{ " + joinComma(parts) + " }"
	case *ast.RestElement:
		return "..." + g.genPattern(pt.Argument)
	case *ast.Spread:
		if sub, ok := pt.Argument.(ast.Pattern); ok {
			return "..." + g.genPattern(sub)
		}
		return "..." + g.genExpr(pt.Argument)
	}
	return ""
}

func (g *Generator) genPropertyPattern(p *ast.PropertyPattern) string {
	if rest, ok := p.Value.(*ast.RestElement); ok {
		return "..." + g.genPattern(rest.Argument)
	}
	key := g.genPropertyKey(p.Key, p.Computed)
	value := g.genPattern(p.Value)
	out := key
	if id, ok := p.Value.(*ast.Identifier); !ok || id.Name != key {
		out = key + ": " + value
	}
	if p.Default != nil {
		out += " = " + g.genExpr(p.Default)
	}
	return out
}
