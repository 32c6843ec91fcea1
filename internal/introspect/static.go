package introspect

import (
	"slices"

	"model-resolver/internal/schema"
)

// StaticType is an in-memory TypeRef that also carries the metadata a
// Provider would report for it. Build graphs with Struct, Named, Slice,
// Set, MapOf, Enum and Any, then resolve them through Static.
type StaticType struct {
	name      string
	container bool
	key       *StaticType
	value     *StaticType
	enum      []string
	raw       RawClass

	description   *string
	xmlRoot       *schema.XML
	props         []PropertyDef
	discriminator *string
	typeInfo      *string
	subtypes      []*StaticType
}

var _ TypeRef = (*StaticType)(nil)

// Named returns a non-container type with the given canonical name. Use
// it for scalars ("string", "int64") and for types with no properties.
func Named(name string) *StaticType {
	return &StaticType{name: name, raw: RawClass{Name: name}}
}

// Struct returns a composite type with no properties yet.
func Struct(name string) *StaticType {
	return Named(name)
}

// Any returns the unconstrained type.
func Any() *StaticType {
	return Named(AnyTypeName)
}

// Enum returns an enumeration type with the given values.
func Enum(name string, values ...string) *StaticType {
	t := Named(name)
	t.enum = slices.Clone(values)

	return t
}

// Slice returns a sequence container of elem.
func Slice(elem *StaticType) *StaticType {
	return &StaticType{
		name:      "[]" + elem.name,
		container: true,
		value:     elem,
		raw:       RawClass{Name: "slice"},
	}
}

// Set returns a set-like sequence container of elem.
func Set(elem *StaticType) *StaticType {
	return &StaticType{
		name:      "set[" + elem.name + "]",
		container: true,
		value:     elem,
		raw:       RawClass{Name: "set", IsSet: true},
	}
}

// MapOf returns a key/value container.
func MapOf(key, value *StaticType) *StaticType {
	return &StaticType{
		name:      "map[" + key.name + "]" + value.name,
		container: true,
		key:       key,
		value:     value,
		raw:       RawClass{Name: "map"},
	}
}

// CanonicalName implements TypeRef.
func (t *StaticType) CanonicalName() string { return t.name }

// IsContainer implements TypeRef.
func (t *StaticType) IsContainer() bool { return t.container }

// KeyType implements TypeRef.
func (t *StaticType) KeyType() TypeRef {
	if t.key == nil {
		return nil
	}

	return t.key
}

// ValueType implements TypeRef.
func (t *StaticType) ValueType() TypeRef {
	if t.value == nil {
		return nil
	}

	return t.value
}

// IsEnum implements TypeRef.
func (t *StaticType) IsEnum() bool { return len(t.enum) > 0 }

// EnumValues implements TypeRef.
func (t *StaticType) EnumValues() []string { return slices.Clone(t.enum) }

// RawClass implements TypeRef.
func (t *StaticType) RawClass() RawClass { return t.raw }

// Describe sets the type description.
func (t *StaticType) Describe(desc string) *StaticType {
	t.description = &desc
	return t
}

// WithXMLRoot sets XML root metadata.
func (t *StaticType) WithXMLRoot(name, namespace string) *StaticType {
	t.xmlRoot = &schema.XML{Name: name, Namespace: namespace}
	return t
}

// WithDiscriminator sets the explicit discriminator override.
func (t *StaticType) WithDiscriminator(prop string) *StaticType {
	t.discriminator = &prop
	return t
}

// WithTypeInfo sets the property named by a polymorphic type-info
// declaration.
func (t *StaticType) WithTypeInfo(prop string) *StaticType {
	t.typeInfo = &prop
	return t
}

// WithSubtypes declares named subtypes.
func (t *StaticType) WithSubtypes(subs ...*StaticType) *StaticType {
	t.subtypes = append(t.subtypes, subs...)
	return t
}

// Prop appends a declared property.
func (t *StaticType) Prop(name string, typ *StaticType, opts ...PropOption) *StaticType {
	def := PropertyDef{Name: name, AccessorName: name}
	if typ != nil {
		def.Type = typ
	}

	for _, opt := range opts {
		opt(&def)
	}

	t.props = append(t.props, def)

	return t
}

// PropOption customizes a property declared with Prop.
type PropOption func(*PropertyDef)

// Required marks the property as required.
func Required() PropOption {
	return func(d *PropertyDef) {
		v := true
		d.Required = &v
	}
}

// ReadOnly marks the property as read-only.
func ReadOnly() PropOption {
	return func(d *PropertyDef) {
		v := true
		d.ReadOnly = &v
	}
}

// Position sets the explicit ordering hint.
func Position(n int) PropOption {
	return func(d *PropertyDef) { d.Position = &n }
}

// Description sets the property description.
func Description(s string) PropOption {
	return func(d *PropertyDef) { d.Description = s }
}

// Example sets the example value.
func Example(v any) PropOption {
	return func(d *PropertyDef) { d.Example = v }
}

// Accessor sets the accessor the property was discovered through.
func Accessor(name string) PropOption {
	return func(d *PropertyDef) { d.AccessorName = name }
}

// XMLWrapper wraps the property in an element.
func XMLWrapper(name, namespace string) PropOption {
	return func(d *PropertyDef) {
		d.XMLWrapper = &schema.XML{Name: name, Namespace: namespace, Wrapped: true}
	}
}

// XMLElement overrides the element name.
func XMLElement(name string) PropOption {
	return func(d *PropertyDef) { d.XMLElementName = name }
}

// Static is a Provider over StaticType values.
type Static struct{}

var _ Provider = Static{}

func asStatic(t TypeRef) *StaticType {
	st, _ := t.(*StaticType)
	return st
}

// Description implements Provider.
func (Static) Description(t TypeRef) (string, bool) {
	st := asStatic(t)
	if st == nil || st.description == nil {
		return "", false
	}

	return *st.description, true
}

// XMLRoot implements Provider.
func (Static) XMLRoot(t TypeRef) *schema.XML {
	if st := asStatic(t); st != nil && st.xmlRoot != nil {
		xml := *st.xmlRoot
		return &xml
	}

	return nil
}

// Properties implements Provider.
func (Static) Properties(t TypeRef) []PropertyDef {
	if st := asStatic(t); st != nil {
		return slices.Clone(st.props)
	}

	return nil
}

// Discriminator implements Provider.
func (Static) Discriminator(t TypeRef) (string, bool) {
	st := asStatic(t)
	if st == nil || st.discriminator == nil {
		return "", false
	}

	return *st.discriminator, true
}

// TypeInfoProperty implements Provider.
func (Static) TypeInfoProperty(t TypeRef) (string, bool) {
	st := asStatic(t)
	if st == nil || st.typeInfo == nil {
		return "", false
	}

	return *st.typeInfo, true
}

// Subtypes implements Provider.
func (Static) Subtypes(t TypeRef) []TypeRef {
	st := asStatic(t)
	if st == nil {
		return nil
	}

	out := make([]TypeRef, 0, len(st.subtypes))
	for _, sub := range st.subtypes {
		out = append(out, sub)
	}

	return out
}
