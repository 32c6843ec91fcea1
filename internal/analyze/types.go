package analyze

import (
	"go/types"
	"reflect"
	"strings"
)

const unknownStr = "unknown"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "model-resolver/petstore"
	Name    string // e.g., "Pet"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindArray             // array of another type
	TypeKindMap               // map from key type to value type
	TypeKindAny               // empty interface
	TypeKindAlias             // named type wrapping another
	TypeKindExternal          // external/opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindAny:
		return "any"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return unknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For named types, the underlying type
	ElemType   *TypeInfo   // For pointers, slices, arrays and maps, the element type
	KeyType    *TypeInfo   // For maps, the key type
	Fields     []FieldInfo // For structs, the list of fields
	GoType     types.Type  // The original go/types.Type
	Doc        string      // Doc comment with directive lines removed
	Directives Directives  // +model: directives from the doc comment
	EnumValues []string    // Values of constants declared with this type, in source order
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsEmptyStruct reports struct{}.
func (t *TypeInfo) IsEmptyStruct() bool {
	if t == nil || t.Kind != TypeKindStruct || t.IsNamed() {
		return false
	}

	st, ok := t.GoType.(*types.Struct)

	return ok && st.NumFields() == 0
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
	Doc      string            // Doc comment on the field
}

// JSONName returns the JSON tag name if present, otherwise the field name.
func (f *FieldInfo) JSONName() string {
	if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}

	return f.Name
}

// JSONSkipped reports a field tagged json:"-".
func (f *FieldInfo) JSONSkipped() bool {
	return f.Tag.Get("json") == "-"
}

// HasJSONName reports whether the json tag names the field explicitly.
func (f *FieldInfo) HasJSONName() bool {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name != "" && name != "-"
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	return f.Tag.Get(key) != ""
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// IsLoaded reports whether pkgPath was one of the analyzed packages.
func (g *TypeGraph) IsLoaded(pkgPath string) bool {
	_, ok := g.Packages[pkgPath]
	return ok
}

// Lookup finds a named type by "Name" within pkgPath, or by a fully
// qualified "path/to/pkg.Name".
func (g *TypeGraph) Lookup(pkgPath, ref string) *TypeInfo {
	if t := g.Types[TypeID{PkgPath: pkgPath, Name: ref}]; t != nil {
		return t
	}

	if i := strings.LastIndex(ref, "."); i > 0 {
		return g.Types[TypeID{PkgPath: ref[:i], Name: ref[i+1:]}]
	}

	return nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
