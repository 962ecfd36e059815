package generator

import "unicode"

// BuiltinTable configures which receiver/member names the generator remaps
// to their JavaScript runtime counterparts. spec.md §9 recommends this live
// in a caller-configurable table rather than be hardcoded into the
// switch-dispatch emission logic.
type BuiltinTable struct {
	// Namespaces maps an ast.Identifier.BuiltinKind tag (CONSOLE, MATH, ...)
	// to the canonical JavaScript global it refers to.
	Namespaces map[string]string
	// Methods maps a BuiltinKind tag to its own name-to-name remap table. A
	// name absent from the inner map passes through unchanged.
	Methods map[string]map[string]string
	// GenericMethods lists array/string instance method names remapped on
	// any receiver that doesn't look user-defined (spec.md §4.4).
	GenericMethods map[string]string
}

// DefaultBuiltinTable is the whitelist described in spec.md §4.4: console
// and Math namespace passthrough, and the array/string instance methods
// remapped by the user-defined-receiver heuristic.
func DefaultBuiltinTable() *BuiltinTable {
	return &BuiltinTable{
		Namespaces: map[string]string{
			"CONSOLE":   "console",
			"MATH":      "Math",
			"ARRAY":     "Array",
			"STRING_NS": "String",
			"OBJECT":    "Object",
			"MAP":       "Map",
			"SET":       "Set",
			"ERROR":     "Error",
		},
		Methods: map[string]map[string]string{
			"CONSOLE": {
				"log": "log", "error": "error", "warn": "warn", "info": "info",
				"table": "table", "group": "group", "groupEnd": "groupEnd",
			},
		},
		GenericMethods: map[string]string{
			"push": "push", "pop": "pop", "length": "length", "map": "map",
			"filter": "filter", "find": "find", "slice": "slice",
			"concat": "concat", "replace": "replace", "split": "split",
		},
	}
}

// Namespace looks up the canonical JS global for a BuiltinKind tag.
func (b *BuiltinTable) Namespace(kind string) (string, bool) {
	name, ok := b.Namespaces[kind]
	return name, ok
}

// Method remaps name for the given namespace kind, or returns name
// unchanged if the namespace has no entry for it.
func (b *BuiltinTable) Method(kind, name string) string {
	if methods, ok := b.Methods[kind]; ok {
		if remapped, ok := methods[name]; ok {
			return remapped
		}
	}
	return name
}

// RemapGeneric reports whether name is one of the whitelisted array/string
// instance methods, returning its (identity) remapped form.
func (b *BuiltinTable) RemapGeneric(name string) (string, bool) {
	remapped, ok := b.GenericMethods[name]
	return remapped, ok
}

// LooksUserDefined implements spec.md §4.4's disambiguation heuristic: a
// receiver name starting with an uppercase Cyrillic letter is assumed to
// be a user-defined namespace, so its methods are never remapped.
func LooksUserDefined(name string) bool {
	for _, r := range name {
		return unicode.Is(unicode.Cyrillic, r) && unicode.IsUpper(r)
	}
	return false
}
