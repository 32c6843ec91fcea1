package analyze

import (
	"model-resolver/internal/introspect"
)

// maxIndirections bounds pointer and alias chains such as **T.
const maxIndirections = 32

// Transparent strips pointers and the named types that add nothing to
// the schema, returning the type whose shape is published. Enumerations
// and named sets keep their identity.
func Transparent(t *TypeInfo) *TypeInfo {
	for range maxIndirections {
		if t == nil {
			return nil
		}

		switch {
		case t.Kind == TypeKindPointer:
			t = t.ElemType
		case t.Kind == TypeKindAlias && !t.opaque():
			t = t.Underlying
		default:
			return t
		}
	}

	return nil
}

// opaque reports named types that are schema-visible on their own.
func (t *TypeInfo) opaque() bool {
	return len(t.EnumValues) > 0 || t.Directives.Has(DirectiveSet)
}

// isSet reports map[K]struct{} and slices marked +model:set.
func (t *TypeInfo) isSet() bool {
	switch t.Kind {
	case TypeKindMap:
		return t.ElemType.IsEmptyStruct()
	case TypeKindAlias:
		return t.Directives.Has(DirectiveSet)
	default:
		return false
	}
}

// TypeStringer spells types the way schemas are keyed.
type TypeStringer struct {
	graph *TypeGraph
}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer(graph *TypeGraph) *TypeStringer {
	return &TypeStringer{graph: graph}
}

// TypeString returns the canonical name of t:
//   - "Pet" for a struct in a loaded package, or its +model:name override
//   - "time.Time" for a named type from any other package
//   - "[]Pet", "map[string]Pet" and "set[string]" for anonymous containers
//   - "int64", "string" and so on for basic types
//
// It returns "" for types that have no schema: functions, channels,
// non-empty interfaces and anonymous structs.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	t = Transparent(t)
	if t == nil {
		return ""
	}

	switch t.Kind {
	case TypeKindAny:
		return introspect.AnyTypeName

	case TypeKindBasic:
		return t.GoType.String()

	case TypeKindStruct:
		if t.IsNamed() {
			return s.named(t)
		}
		if t.IsEmptyStruct() {
			return "struct{}"
		}
		return ""

	case TypeKindSlice, TypeKindArray:
		elem := s.TypeString(t.ElemType)
		if elem == "" {
			return ""
		}
		return "[]" + elem

	case TypeKindMap:
		key := s.TypeString(t.KeyType)
		if key == "" {
			return ""
		}
		if t.isSet() {
			return "set[" + key + "]"
		}

		value := s.TypeString(t.ElemType)
		if value == "" {
			return ""
		}
		return "map[" + key + "]" + value

	case TypeKindAlias:
		return s.named(t)

	case TypeKindExternal:
		return t.ID.String()

	default:
		return ""
	}
}

// named qualifies types from packages outside the graph so that
// same-named types from different libraries do not collide.
func (s *TypeStringer) named(t *TypeInfo) string {
	if !s.graph.IsLoaded(t.ID.PkgPath) {
		return t.ID.String()
	}

	if name, ok := t.Directives.Get(DirectiveName); ok && name != "" {
		return name
	}

	return t.ID.Name
}
