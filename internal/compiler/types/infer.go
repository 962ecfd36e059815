package types

import (
	"github.com/somonscript/somon/internal/compiler/ast"
	"github.com/somonscript/somon/internal/compiler/errors"
)

// inferExpr implements spec.md §4.3's inference rules, returning the
// expression's static type (never mutating the AST).
func (c *Checker) inferExpr(expr ast.Expression, scope *Scope) Type {
	if expr == nil {
		return UnknownType
	}
	switch e := expr.(type) {
	case *ast.Literal:
		return c.inferLiteral(e)
	case *ast.TemplateLiteral:
		for _, sub := range e.Expressions {
			c.inferExpr(sub, scope)
		}
		return StringType
	case *ast.Identifier:
		if t, ok := scope.Lookup(e.Name); ok {
			return t
		}
		if e.BuiltinKind != "" {
			return Type{Kind: KindObject, Name: e.Name}
		}
		return UnknownType
	case *ast.Array:
		return c.inferArray(e, scope)
	case *ast.Object:
		return c.inferObject(e, scope)
	case *ast.Binary:
		return c.inferBinary(e, scope)
	case *ast.Unary:
		return c.inferUnary(e, scope)
	case *ast.Update:
		c.inferExpr(e.Operand, scope)
		return NumberType
	case *ast.Assignment:
		value := c.inferExpr(e.Value, scope)
		if e.Operator == "=" {
			target := c.inferExpr(e.Target, scope)
			if target.Kind != KindUnknown && !isAssignable(value, target) {
				c.errorf(e, errors.CodeTypeNotAssignable, "cannot assign "+value.String()+" to "+target.String())
			}
			return target
		}
		return value
	case *ast.Call:
		return c.inferCall(e, scope)
	case *ast.New:
		return c.inferNew(e, scope)
	case *ast.Member:
		return c.inferMember(e, scope)
	case *ast.Arrow:
		return c.inferArrow(e, scope)
	case *ast.Await:
		return c.inferExpr(e.Argument, scope)
	case *ast.ImportExpression:
		c.inferExpr(e.Source, scope)
		return UnknownType
	case *ast.This:
		if c.thisType != nil {
			return *c.thisType
		}
		return UnknownType
	case *ast.Super:
		return UnknownType
	case *ast.Spread:
		return c.inferExpr(e.Argument, scope)
	}
	return UnknownType
}

func (c *Checker) inferLiteral(lit *ast.Literal) Type {
	switch lit.Kind {
	case ast.NumberLiteral, ast.StringLiteral, ast.BooleanLiteral:
		return Type{Kind: KindLiteral, Value: lit.Value}
	case ast.NullLiteral:
		return NullType
	case ast.UndefinedLiteral:
		return UndefinedType
	}
	return UnknownType
}

// inferArray implements the "otherwise" branch of the bidirectional array
// inference rule: no target context is available here, so it tests
// whether every element shares the same widened base, falling back to a
// union element type for heterogeneous literals.
func (c *Checker) inferArray(arr *ast.Array, scope *Scope) Type {
	elemTypes := make([]Type, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		if el == nil {
			continue
		}
		elemTypes = append(elemTypes, c.inferExpr(el, scope))
	}
	if len(elemTypes) == 0 {
		elem := UnknownType
		return Type{Kind: KindArray, Element: &elem}
	}
	base := elemTypes[0].WidenedBase()
	uniform := true
	for _, t := range elemTypes[1:] {
		if t.WidenedBase().String() != base.String() {
			uniform = false
			break
		}
	}
	if uniform {
		return Type{Kind: KindArray, Element: &base}
	}
	union := Type{Kind: KindUnion, Members: elemTypes}
	return Type{Kind: KindArray, Element: &union}
}

func (c *Checker) inferObject(obj *ast.Object, scope *Scope) Type {
	props := map[string]Property{}
	for _, p := range obj.Properties {
		if p.Value == nil {
			continue
		}
		name := propertyKeyName(p.Key)
		props[name] = Property{Name: name, Type: c.inferExpr(p.Value, scope)}
	}
	return Type{Kind: KindObject, Properties: props}
}

func propertyKeyName(key ast.Expression) string {
	if id, ok := key.(*ast.Identifier); ok {
		return id.Name
	}
	if lit, ok := key.(*ast.Literal); ok {
		if s, ok := lit.Value.(string); ok {
			return s
		}
	}
	return ""
}

func (c *Checker) inferBinary(b *ast.Binary, scope *Scope) Type {
	left := c.inferExpr(b.Left, scope)
	right := c.inferExpr(b.Right, scope)
	switch b.Operator {
	case "+":
		if left.WidenedBase().Name == "string" || right.WidenedBase().Name == "string" {
			return StringType
		}
		return NumberType
	case "-", "*", "/", "%", "**", "&", "|", "^", "<<", ">>", ">>>":
		return NumberType
	case "==", "!=", "===", "!==", "<", "<=", ">", ">=", "&&", "||", "??", "instanceof", "in":
		return BooleanType
	}
	return UnknownType
}

func (c *Checker) inferUnary(u *ast.Unary, scope *Scope) Type {
	c.inferExpr(u.Operand, scope)
	switch u.Operator {
	case "!":
		return BooleanType
	case "typeof":
		return StringType
	default:
		return NumberType
	}
}

func (c *Checker) inferCall(call *ast.Call, scope *Scope) Type {
	callee := c.inferExpr(call.Callee, scope)
	for _, arg := range call.Arguments {
		c.inferExpr(arg, scope)
	}
	if callee.Kind == KindFunction && callee.ReturnType != nil {
		return *callee.ReturnType
	}
	return UnknownType
}

func (c *Checker) inferNew(n *ast.New, scope *Scope) Type {
	for _, arg := range n.Arguments {
		c.inferExpr(arg, scope)
	}
	id, ok := n.Callee.(*ast.Identifier)
	if !ok {
		return UnknownType
	}
	if cls, ok := c.classes[id.Name]; ok {
		return Type{Kind: KindClass, Name: cls.Name, Properties: cls.Properties}
	}
	switch id.BuiltinKind {
	case "MAP", "SET":
		return Type{Kind: KindGeneric, Name: id.Name, TypeParameters: []Type{AnyType}}
	}
	switch id.Name {
	case "Map", "Set":
		return Type{Kind: KindGeneric, Name: id.Name, TypeParameters: []Type{AnyType}}
	}
	return UnknownType
}

func (c *Checker) inferMember(m *ast.Member, scope *Scope) Type {
	obj := c.inferExpr(m.Object, scope)
	if m.Computed {
		c.inferExpr(m.Property, scope)
		if obj.Kind == KindArray && obj.Element != nil {
			return *obj.Element
		}
		return UnknownType
	}
	id, ok := m.Property.(*ast.Identifier)
	if !ok {
		return UnknownType
	}
	if prop, ok := obj.Properties[id.Name]; ok {
		return prop.Type
	}
	return UnknownType
}

func (c *Checker) inferArrow(a *ast.Arrow, scope *Scope) Type {
	inner := scope.Child()
	c.bindParams(a.Params, inner)
	var ret *Type
	if a.ReturnType != nil {
		t := c.resolveType(a.ReturnType)
		ret = &t
	}
	switch body := a.Body.(type) {
	case *ast.Block:
		for _, s := range body.Body {
			c.checkStmt(s, inner)
		}
	case ast.Expression:
		inferred := c.inferExpr(body, inner)
		if ret == nil {
			ret = &inferred
		}
	}
	return Type{Kind: KindFunction, ReturnType: ret}
}
