package schema

import "slices"

// Kind tags the variant carried by a Property.
type Kind int

const (
	KindUnknown Kind = iota
	KindScalar
	KindReference
	KindArray
	KindMap
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindReference:
		return "reference"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Base types of scalar properties.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// XMLDefault is the placeholder XML name or namespace meaning "derive
// from the property name".
const XMLDefault = "##default"

// XML carries XML rendering hints for a model or property.
type XML struct {
	Name      string
	Namespace string
	Wrapped   bool
}

// Property is a property schema. Kind selects which of the variant
// fields are meaningful; the shared fields apply to every kind.
type Property struct {
	Kind Kind

	Name        string
	Description string
	Required    bool
	Position    *int // explicit ordering hint, nil when unset
	Example     any
	ReadOnly    bool
	XML         *XML

	// KindScalar
	Type   string
	Format string
	Enum   []string

	// KindReference
	Ref string

	// KindArray
	Items       *Property
	UniqueItems bool

	// KindMap
	AdditionalProperties *Property
}

// Scalar returns a scalar property of the given base type and format.
func Scalar(typ, format string) *Property {
	return &Property{Kind: KindScalar, Type: typ, Format: format}
}

// Ref returns a reference property pointing at the named schema.
func Ref(name string) *Property {
	return &Property{Kind: KindReference, Ref: name}
}

// Array returns an array property with the given items.
func Array(items *Property) *Property {
	return &Property{Kind: KindArray, Items: items}
}

// Map returns a map property whose values are described by value.
func Map(value *Property) *Property {
	return &Property{Kind: KindMap, AdditionalProperties: value}
}

// IsScalar reports whether p is a scalar property.
func (p *Property) IsScalar() bool {
	return p != nil && p.Kind == KindScalar
}

// IsReference reports whether p is a reference property.
func (p *Property) IsReference() bool {
	return p != nil && p.Kind == KindReference
}

// IsArray reports whether p is an array property.
func (p *Property) IsArray() bool {
	return p != nil && p.Kind == KindArray
}

// IsMap reports whether p is a map property.
func (p *Property) IsMap() bool {
	return p != nil && p.Kind == KindMap
}

// Clone returns a deep copy of p. Example values are copied shallowly.
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}

	out := *p
	if p.Position != nil {
		pos := *p.Position
		out.Position = &pos
	}

	if p.XML != nil {
		xml := *p.XML
		out.XML = &xml
	}

	out.Enum = slices.Clone(p.Enum)
	out.Items = p.Items.Clone()
	out.AdditionalProperties = p.AdditionalProperties.Clone()

	return &out
}
