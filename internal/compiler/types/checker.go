package types

import (
	"github.com/somonscript/somon/internal/compiler/ast"
	"github.com/somonscript/somon/internal/compiler/errors"
	"github.com/somonscript/somon/internal/compiler/token"
)

// Interface records a collected interface declaration's structural shape.
type Interface struct {
	Name       string
	Extends    []string
	Properties map[string]Property
	Pos        token.Position
}

// Class records a collected class declaration's structural shape and
// inheritance edge.
type Class struct {
	Name       string
	SuperClass string
	Implements []string
	Properties map[string]Property
	Abstract   bool
	Pos        token.Position
}

// Alias records a collected type alias binding.
type Alias struct {
	Name string
	Type Type
}

// Result is the checker's output: never mutates the input AST, only
// reports diagnostics.
type Result struct {
	Errors   []errors.Diagnostic
	Warnings []errors.Diagnostic
}

// Checker holds the collected declaration tables and the current lexical
// scope while walking a Program, in the teacher's mutable-struct-with-one-
// exported-method idiom.
type Checker struct {
	file string
	bag  *errors.Bag

	interfaces map[string]*Interface
	classes    map[string]*Class
	aliases    map[string]*Alias

	scope    *Scope
	thisType *Type // non-nil while checking inside a class body
}

// NewChecker returns a Checker that tags diagnostics with file.
func NewChecker(file string) *Checker {
	return &Checker{
		file:       file,
		bag:        errors.NewBag(0),
		interfaces: map[string]*Interface{},
		classes:    map[string]*Class{},
		aliases:    map[string]*Alias{},
		scope:      NewScope(),
	}
}

// Check runs the two-pass walk from spec.md §4.3: collection, then
// sequential checking against a lexical symbol table.
func (c *Checker) Check(program *ast.Program) Result {
	for _, stmt := range program.Body {
		c.collect(stmt)
	}
	c.validateClasses()
	for _, stmt := range program.Body {
		c.checkStmt(stmt, c.scope)
	}

	result := Result{}
	for _, d := range c.bag.Diagnostics() {
		if d.Severity == errors.SeverityWarning {
			result.Warnings = append(result.Warnings, d)
		} else {
			result.Errors = append(result.Errors, d)
		}
	}
	return result
}

func (c *Checker) pos(n ast.Node) errors.Position {
	p := n.Pos()
	return errors.Position{File: c.file, Line: p.Line, Column: p.Column}
}

func (c *Checker) errorf(n ast.Node, code, msg string) {
	c.bag.Add(errors.NewError(code, msg, c.pos(n), "", errors.CategoryType))
}

// ---------------------------------------------------------------------
// Collection pass
// ---------------------------------------------------------------------

func (c *Checker) collect(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.InterfaceDeclaration:
		c.collectInterface(s)
	case *ast.TypeAlias:
		c.collectAlias(s)
	case *ast.ClassDeclaration:
		c.collectClass(s)
	case *ast.NamespaceDeclaration:
		for _, inner := range s.Body {
			c.collect(inner)
		}
	case *ast.Export:
		if s.Declaration != nil {
			c.collect(s.Declaration)
		}
	}
}

func (c *Checker) collectInterface(decl *ast.InterfaceDeclaration) {
	iface := &Interface{Name: decl.Name, Extends: decl.Extends, Properties: map[string]Property{}, Pos: decl.Pos()}
	for _, m := range decl.Body {
		t := UnknownType
		if m.TypeAnnotation != nil {
			t = c.resolveType(m.TypeAnnotation)
		}
		iface.Properties[m.Name] = Property{Name: m.Name, Type: t, Optional: m.Optional, ReadOnly: m.ReadOnly}
	}
	c.interfaces[decl.Name] = iface
}

func (c *Checker) collectAlias(decl *ast.TypeAlias) {
	c.aliases[decl.Name] = &Alias{Name: decl.Name, Type: c.resolveType(decl.Annotation)}
}

func (c *Checker) collectClass(decl *ast.ClassDeclaration) {
	cls := &Class{
		Name:       decl.Name,
		SuperClass: decl.SuperClass,
		Implements: decl.Implements,
		Abstract:   decl.Abstract,
		Properties: map[string]Property{},
		Pos:        decl.Pos(),
	}
	for _, m := range decl.Body {
		if m.IsConstructor {
			continue
		}
		t := UnknownType
		if m.TypeAnnotation != nil {
			t = c.resolveType(m.TypeAnnotation)
		}
		if m.IsMethod {
			ret := t
			t = Type{Kind: KindFunction, ReturnType: &ret}
		}
		cls.Properties[m.Name] = Property{Name: m.Name, Type: t, ReadOnly: m.ReadOnly}
	}
	c.classes[decl.Name] = cls
}

// validateClasses checks each class's superClass resolves to another
// class and detects inheritance cycles, per spec.md §4.3's class
// validation contract.
func (c *Checker) validateClasses() {
	for _, cls := range c.classes {
		if cls.SuperClass == "" {
			continue
		}
		superCls, isClass := c.classes[cls.SuperClass]
		_, isInterface := c.interfaces[cls.SuperClass]
		if !isClass {
			if isInterface {
				c.bag.Add(errors.NewError(errors.CodeInvalidExtends,
					"class "+cls.Name+" cannot extend interface "+cls.SuperClass,
					errors.Position{File: c.file, Line: cls.Pos.Line, Column: cls.Pos.Column}, "", errors.CategoryType))
			} else {
				c.bag.Add(errors.NewError(errors.CodeClassNotFound,
					"class "+cls.Name+" extends unknown class "+cls.SuperClass,
					errors.Position{File: c.file, Line: cls.Pos.Line, Column: cls.Pos.Column}, "", errors.CategoryType))
			}
			continue
		}
		if c.hasInheritanceCycle(cls.Name, superCls) {
			c.bag.Add(errors.NewError(errors.CodeCircularInheritance,
				"circular inheritance detected at class "+cls.Name,
				errors.Position{File: c.file, Line: cls.Pos.Line, Column: cls.Pos.Column}, "", errors.CategoryType))
		}
	}
}

func (c *Checker) hasInheritanceCycle(root string, start *Class) bool {
	visited := map[string]bool{}
	cur := start
	for cur != nil {
		if cur.Name == root || visited[cur.Name] {
			return true
		}
		visited[cur.Name] = true
		if cur.SuperClass == "" {
			return false
		}
		cur = c.classes[cur.SuperClass]
	}
	return false
}

// ---------------------------------------------------------------------
// Type resolution
// ---------------------------------------------------------------------

// resolveType converts an AST type node into an internal Type, per
// spec.md §4.3's "type resolution" rules. Conditional, mapped, and
// indexed-access types are approximated (documented in DESIGN.md) rather
// than fully evaluated, since doing so exactly would require a general
// key-set evaluator outside this checker's structural model.
func (c *Checker) resolveType(t ast.TypeNode) Type {
	switch n := t.(type) {
	case *ast.PrimitiveType:
		return Primitive(n.Name)
	case *ast.ArrayType:
		elem := c.resolveType(n.Element)
		return Type{Kind: KindArray, Element: &elem}
	case *ast.TupleType:
		members := make([]Type, len(n.Elements))
		for i, e := range n.Elements {
			members[i] = c.resolveType(e)
		}
		return Type{Kind: KindTuple, Members: members}
	case *ast.UnionType:
		members := make([]Type, len(n.Types))
		for i, e := range n.Types {
			members[i] = c.resolveType(e)
		}
		return Type{Kind: KindUnion, Members: members}
	case *ast.IntersectionType:
		members := make([]Type, len(n.Types))
		for i, e := range n.Types {
			members[i] = c.resolveType(e)
		}
		return Type{Kind: KindIntersection, Members: members}
	case *ast.GenericType:
		if len(n.TypeParameters) == 0 {
			if cls, ok := c.classes[n.Name]; ok {
				return Type{Kind: KindClass, Name: cls.Name, Properties: cls.Properties}
			}
			if iface, ok := c.interfaces[n.Name]; ok {
				return Type{Kind: KindInterface, Name: iface.Name, Properties: iface.Properties}
			}
			if alias, ok := c.aliases[n.Name]; ok {
				return alias.Type
			}
		}
		params := make([]Type, len(n.TypeParameters))
		for i, p := range n.TypeParameters {
			params[i] = c.resolveType(p)
		}
		return Type{Kind: KindGeneric, Name: n.Name, TypeParameters: params}
	case *ast.LiteralType:
		return Type{Kind: KindLiteral, Value: n.Value}
	case *ast.UniqueType:
		base := c.resolveType(n.Base)
		return Type{Kind: KindUnique, BaseType: &base}
	case *ast.KeyofType:
		operand := c.resolveType(n.Operand)
		if len(operand.Properties) == 0 {
			return StringType
		}
		members := make([]Type, 0, len(operand.Properties))
		for name := range operand.Properties {
			members = append(members, Type{Kind: KindLiteral, Value: name})
		}
		return Type{Kind: KindUnion, Members: members}
	case *ast.ConditionalType:
		// Approximation: evaluating the branch exactly requires deciding
		// Check-extends-Extends at resolution time, which needs concrete
		// (non-generic) operands we don't always have; fall back to the
		// true branch, the common case for a resolved conditional.
		return c.resolveType(n.True)
	case *ast.MappedType:
		return Type{Kind: KindObject, Properties: map[string]Property{}}
	case *ast.IndexedAccessType:
		return UnknownType
	}
	return UnknownType
}

// ---------------------------------------------------------------------
// Checking pass
// ---------------------------------------------------------------------

func (c *Checker) checkStmt(stmt ast.Statement, scope *Scope) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		c.checkVariableDeclaration(s, scope)
	case *ast.FunctionDeclaration:
		c.checkFunctionDeclaration(s, scope)
	case *ast.ClassDeclaration:
		c.checkClassDeclaration(s, scope)
	case *ast.NamespaceDeclaration:
		inner := scope.Child()
		for _, b := range s.Body {
			c.checkStmt(b, inner)
		}
	case *ast.Block:
		inner := scope.Child()
		for _, b := range s.Body {
			c.checkStmt(b, inner)
		}
	case *ast.If:
		c.inferExpr(s.Test, scope)
		c.checkStmt(s.Then, scope.Child())
		if s.Else != nil {
			c.checkStmt(s.Else, scope.Child())
		}
	case *ast.While:
		c.inferExpr(s.Test, scope)
		c.checkStmt(s.Body, scope.Child())
	case *ast.For:
		inner := scope.Child()
		if stmtNode, ok := s.Init.(ast.Statement); ok && stmtNode != nil {
			c.checkStmt(stmtNode, inner)
		} else if exprNode, ok := s.Init.(ast.Expression); ok && exprNode != nil {
			c.inferExpr(exprNode, inner)
		}
		if s.Test != nil {
			c.inferExpr(s.Test, inner)
		}
		if s.Update != nil {
			c.inferExpr(s.Update, inner)
		}
		c.checkStmt(s.Body, inner)
	case *ast.ForIn:
		c.checkForEach(s.Decl, s.Target, s.Right, s.Body, scope)
	case *ast.ForOf:
		c.checkForEach(s.Decl, s.Target, s.Right, s.Body, scope)
	case *ast.Return:
		if s.Value != nil {
			c.inferExpr(s.Value, scope)
		}
	case *ast.Throw:
		c.inferExpr(s.Value, scope)
	case *ast.Try:
		c.checkStmt(s.Block, scope.Child())
		if s.Handler != nil {
			inner := scope.Child()
			if s.Handler.Param != nil {
				c.bindPattern(s.Handler.Param.Name, UnknownType, inner)
			}
			c.checkStmt(s.Handler.Body, inner)
		}
		if s.Finalizer != nil {
			c.checkStmt(s.Finalizer, scope.Child())
		}
	case *ast.Switch:
		c.inferExpr(s.Discriminant, scope)
		for _, cs := range s.Cases {
			inner := scope.Child()
			if cs.Test != nil {
				c.inferExpr(cs.Test, inner)
			}
			for _, b := range cs.Consequent {
				c.checkStmt(b, inner)
			}
		}
	case *ast.ExpressionStatement:
		c.inferExpr(s.Expr, scope)
	case *ast.Export:
		if s.Declaration != nil {
			c.checkStmt(s.Declaration, scope)
		}
	}
}

func (c *Checker) checkForEach(decl ast.Statement, target ast.Pattern, right ast.Expression, body ast.Statement, scope *Scope) {
	inner := scope.Child()
	rightType := c.inferExpr(right, inner)
	elemType := UnknownType
	if rightType.Kind == KindArray && rightType.Element != nil {
		elemType = *rightType.Element
	}
	_ = decl
	c.bindPattern(target, elemType, inner)
	c.checkStmt(body, inner)
}

func (c *Checker) checkVariableDeclaration(decl *ast.VariableDeclaration, scope *Scope) {
	var declared *Type
	if decl.TypeAnnotation != nil {
		t := c.resolveType(decl.TypeAnnotation)
		declared = &t
	}
	var actual Type
	if decl.Init != nil {
		actual = c.inferExpr(decl.Init, scope)
		if declared != nil && !isAssignable(actual, *declared) {
			c.errorf(decl, errors.CodeTypeNotAssignable,
				"cannot assign "+actual.String()+" to "+declared.String())
		}
	} else if declared != nil {
		actual = *declared
	} else {
		actual = UnknownType
	}
	bound := actual
	if declared != nil {
		bound = *declared
	}
	c.bindPattern(decl.Target, bound, scope)
}

func (c *Checker) checkFunctionDeclaration(decl *ast.FunctionDeclaration, scope *Scope) {
	var ret *Type
	if decl.ReturnType != nil {
		t := c.resolveType(decl.ReturnType)
		ret = &t
	}
	scope.Define(decl.Name, Type{Kind: KindFunction, Name: decl.Name, ReturnType: ret})

	inner := scope.Child()
	c.bindParams(decl.Params, inner)
	for _, s := range decl.Body.Body {
		c.checkStmt(s, inner)
	}
}

func (c *Checker) bindParams(params []*ast.Param, scope *Scope) {
	for _, p := range params {
		t := UnknownType
		if p.TypeAnnotation != nil {
			t = c.resolveType(p.TypeAnnotation)
		} else if p.Default != nil {
			t = c.inferExpr(p.Default, scope)
		}
		c.bindPattern(p.Name, t, scope)
	}
}

func (c *Checker) checkClassDeclaration(decl *ast.ClassDeclaration, scope *Scope) {
	classType := Type{Kind: KindClass, Name: decl.Name, Properties: c.classes[decl.Name].Properties}
	outerThis := c.thisType
	c.thisType = &classType
	defer func() { c.thisType = outerThis }()

	for _, m := range decl.Body {
		inner := scope.Child()
		if m.IsMethod {
			c.bindParams(m.Params, inner)
			if m.Body != nil {
				for _, s := range m.Body.Body {
					c.checkStmt(s, inner)
				}
			}
			continue
		}
		if m.Init == nil {
			continue
		}
		actual := c.inferExpr(m.Init, inner)
		if m.TypeAnnotation != nil {
			declared := c.resolveType(m.TypeAnnotation)
			if !isAssignable(actual, declared) {
				c.errorf(m, errors.CodeTypeNotAssignable,
					"property "+m.Name+": cannot assign "+actual.String()+" to "+declared.String())
			}
		}
	}
}

// bindPattern binds every identifier introduced by pattern to (a
// structurally-derived slice of) t.
func (c *Checker) bindPattern(pattern ast.Pattern, t Type, scope *Scope) {
	switch p := pattern.(type) {
	case *ast.Identifier:
		scope.Define(p.Name, t)
	case *ast.ArrayPattern:
		elem := UnknownType
		if t.Kind == KindArray && t.Element != nil {
			elem = *t.Element
		}
		for i, el := range p.Elements {
			if el == nil {
				continue
			}
			if t.Kind == KindTuple && i < len(t.Members) {
				c.bindPattern(el, t.Members[i], scope)
			} else {
				c.bindPattern(el, elem, scope)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			if rest, ok := prop.Value.(*ast.RestElement); ok {
				c.bindPattern(rest.Argument, t, scope)
				continue
			}
			name := propertyPatternKeyName(prop)
			sub := UnknownType
			if pr, ok := t.Properties[name]; ok {
				sub = pr.Type
			}
			c.bindPattern(prop.Value, sub, scope)
		}
	case *ast.RestElement:
		c.bindPattern(p.Argument, t, scope)
	case *ast.PropertyPattern:
		// The parser reuses PropertyPattern as a generic "pattern with a
		// default value" wrapper for array-pattern elements; Value holds
		// the real inner pattern.
		c.bindPattern(p.Value, t, scope)
	case *ast.Spread:
		if id, ok := p.Argument.(ast.Pattern); ok {
			c.bindPattern(id, t, scope)
		}
	}
}

func propertyPatternKeyName(p *ast.PropertyPattern) string {
	if id, ok := p.Key.(*ast.Identifier); ok {
		return id.Name
	}
	return ""
}
