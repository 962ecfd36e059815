// Package types implements the SomonScript type checker: a two-pass
// structural type system over the parsed AST.
package types

import "fmt"

// Kind tags the shape of a Type record.
type Kind string

const (
	KindPrimitive    Kind = "primitive"
	KindLiteral      Kind = "literal"
	KindArray        Kind = "array"
	KindTuple        Kind = "tuple"
	KindUnion        Kind = "union"
	KindIntersection Kind = "intersection"
	KindInterface    Kind = "interface"
	KindObject       Kind = "object"
	KindClass        Kind = "class"
	KindFunction     Kind = "function"
	KindGeneric      Kind = "generic"
	KindUnique       Kind = "unique"
	KindUnknown      Kind = "unknown"
)

// Property is one member of an interface/object/class structural type.
type Property struct {
	Name     string
	Type     Type
	Optional bool
	ReadOnly bool
}

// Type is the internal tagged record described in spec.md §4.3: a single
// struct with a Kind discriminator and pointer-valued optional fields,
// rather than a Go interface hierarchy — chosen because assignability and
// widening need to inspect and rebuild arbitrary combinations of these
// fields uniformly.
type Type struct {
	Kind           Kind
	Name           string // primitive/class/interface/generic/unknown name
	Value          interface{} // literal value
	Element        *Type       // array element type
	Members        []Type      // tuple elements, union/intersection members
	Properties     map[string]Property
	ReturnType     *Type
	BaseType       *Type // unique's wrapped type
	TypeParameters []Type
}

func Primitive(name string) Type { return Type{Kind: KindPrimitive, Name: name} }

var (
	AnyType       = Primitive("any")
	UnknownType   = Type{Kind: KindUnknown, Name: "unknown"}
	StringType    = Primitive("string")
	NumberType    = Primitive("number")
	BooleanType   = Primitive("boolean")
	NullType      = Primitive("null")
	UndefinedType = Primitive("undefined")
	NeverType     = Primitive("never")
	VoidType      = Primitive("void")
	ObjectType    = Primitive("object")
)

// Clone returns a deep-enough copy that assignability and widening never
// let two AST-attached types alias the same Properties map or Members
// slice.
func (t Type) Clone() Type {
	c := t
	if t.Element != nil {
		e := t.Element.Clone()
		c.Element = &e
	}
	if t.BaseType != nil {
		b := t.BaseType.Clone()
		c.BaseType = &b
	}
	if t.ReturnType != nil {
		r := t.ReturnType.Clone()
		c.ReturnType = &r
	}
	if t.Members != nil {
		c.Members = make([]Type, len(t.Members))
		for i, m := range t.Members {
			c.Members[i] = m.Clone()
		}
	}
	if t.TypeParameters != nil {
		c.TypeParameters = make([]Type, len(t.TypeParameters))
		for i, m := range t.TypeParameters {
			c.TypeParameters[i] = m.Clone()
		}
	}
	if t.Properties != nil {
		c.Properties = make(map[string]Property, len(t.Properties))
		for k, v := range t.Properties {
			v.Type = v.Type.Clone()
			c.Properties[k] = v
		}
	}
	return c
}

// WidenedBase widens a literal type to the primitive whose values it
// inhabits; non-literal types widen to themselves.
func (t Type) WidenedBase() Type {
	if t.Kind != KindLiteral {
		return t
	}
	switch t.Value.(type) {
	case string:
		return StringType
	case float64:
		return NumberType
	case bool:
		return BooleanType
	}
	return UnknownType
}

// String renders a Type for diagnostic messages.
func (t Type) String() string {
	switch t.Kind {
	case KindPrimitive, KindClass, KindInterface, KindUnknown:
		return t.Name
	case KindLiteral:
		return fmt.Sprintf("%v", t.Value)
	case KindArray:
		if t.Element != nil {
			return t.Element.String() + "[]"
		}
		return "unknown[]"
	case KindTuple:
		return joinTypes(t.Members, ", ", "[", "]")
	case KindUnion:
		return joinTypes(t.Members, " | ", "", "")
	case KindIntersection:
		return joinTypes(t.Members, " & ", "", "")
	case KindGeneric:
		if len(t.TypeParameters) == 0 {
			return t.Name
		}
		return t.Name + "<" + joinTypes(t.TypeParameters, ", ", "", "") + ">"
	case KindUnique:
		if t.BaseType != nil {
			return "unique " + t.BaseType.String()
		}
		return "unique"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	}
	return string(t.Kind)
}

func joinTypes(ts []Type, sep, prefix, suffix string) string {
	s := prefix
	for i, t := range ts {
		if i > 0 {
			s += sep
		}
		s += t.String()
	}
	return s + suffix
}
