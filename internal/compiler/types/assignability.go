package types

// exactMatch implements assignability rule 1: same kind and name/value;
// for generics, equal base name and arity; literal equality by value.
func exactMatch(a, b Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindPrimitive, KindClass, KindInterface, KindUnknown:
		return a.Name == b.Name
	case KindLiteral:
		return a.Value == b.Value
	case KindGeneric:
		return a.Name == b.Name && len(a.TypeParameters) == len(b.TypeParameters)
	case KindArray:
		if a.Element == nil || b.Element == nil {
			return a.Element == nil && b.Element == nil
		}
		return exactMatch(*a.Element, *b.Element)
	case KindTuple, KindUnion, KindIntersection:
		if len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !exactMatch(a.Members[i], b.Members[i]) {
				return false
			}
		}
		return true
	case KindUnique:
		if a.BaseType == nil || b.BaseType == nil {
			return a.BaseType == nil && b.BaseType == nil
		}
		return exactMatch(*a.BaseType, *b.BaseType)
	case KindFunction:
		return true
	}
	// Object literal types are never exactly matched; they compare
	// structurally under rule 9.
	return false
}

// structurallyCompatible implements rule 9: every required property of
// target must be present on source with an assignable type; optional
// target properties may be absent.
func structurallyCompatible(source, target Type) bool {
	switch source.Kind {
	case KindObject, KindInterface, KindClass:
	default:
		return false
	}
	for name, prop := range target.Properties {
		sp, ok := source.Properties[name]
		if !ok {
			if prop.Optional {
				continue
			}
			return false
		}
		if !isAssignable(sp.Type, prop.Type) {
			return false
		}
	}
	return true
}

// isAssignable implements source ⇒ target per spec.md §4.3's 12 ordered
// rules, switching on target.Kind with early returns.
func isAssignable(source, target Type) bool {
	// Rule 1.
	if exactMatch(source, target) {
		return true
	}
	// Rule 2.
	if target.Kind == KindPrimitive && target.Name == "any" {
		return true
	}
	// Unresolved named types flow through structural holes (§4.3 "type
	// resolution"): an unknown source never blocks an otherwise-valid
	// program.
	if source.Kind == KindUnknown {
		return true
	}

	// Rule 7, union source: every member ⇒ target.
	if source.Kind == KindUnion {
		for _, m := range source.Members {
			if !isAssignable(m, target) {
				return false
			}
		}
		return len(source.Members) > 0
	}
	// Rule 8, intersection source: any member ⇒ target.
	if source.Kind == KindIntersection {
		for _, m := range source.Members {
			if isAssignable(m, target) {
				return true
			}
		}
		return false
	}

	switch target.Kind {
	case KindUnion:
		// Rule 7, union target: source ⇒ any member.
		for _, m := range target.Members {
			if isAssignable(source, m) {
				return true
			}
		}
		return false

	case KindIntersection:
		// Rule 8, intersection target: source ⇒ every member.
		for _, m := range target.Members {
			if !isAssignable(source, m) {
				return false
			}
		}
		return len(target.Members) > 0

	case KindPrimitive:
		// Rule 3.
		if source.Kind == KindLiteral {
			return source.WidenedBase().Name == target.Name
		}
		return false

	case KindArray:
		// Rule 4.
		if source.Kind != KindArray || source.Element == nil || target.Element == nil {
			return false
		}
		return isAssignable(*source.Element, *target.Element)

	case KindTuple:
		switch source.Kind {
		case KindTuple:
			// Rule 5.
			if len(source.Members) != len(target.Members) {
				return false
			}
			for i := range source.Members {
				if !isAssignable(source.Members[i], target.Members[i]) {
					return false
				}
			}
			return true
		case KindArray:
			// Rule 6.
			if source.Element == nil {
				return false
			}
			for _, u := range target.Members {
				if !isAssignable(*source.Element, u) {
					return false
				}
			}
			return true
		}
		return false

	case KindInterface:
		// Rule 12: tuple ⇒ interface is relaxed to always compatible.
		if source.Kind == KindTuple {
			return true
		}
		// Rule 9.
		return structurallyCompatible(source, target)

	case KindObject:
		// Rule 9.
		return structurallyCompatible(source, target)

	case KindClass:
		// Rule 10: nominal.
		return source.Kind == KindClass && source.Name == target.Name

	case KindUnique:
		// Rule 11: unique types do not mix with non-unique.
		if source.Kind != KindUnique {
			return false
		}
		if source.BaseType == nil || target.BaseType == nil {
			return false
		}
		return isAssignable(*source.BaseType, *target.BaseType)

	case KindUnknown:
		// Rule 12: object/interface/tuple ⇒ named unknown target.
		if target.Name == "" {
			return false
		}
		switch source.Kind {
		case KindObject, KindInterface, KindTuple:
			return true
		}
		return false
	}

	return false
}
