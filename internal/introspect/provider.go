// Package introspect defines the narrow contract through which the
// resolver learns about host types.
//
// The resolver never inspects types itself. A Provider hands out TypeRef
// values and answers metadata queries about them; package analyze
// implements it for Go source, and Static implements it in memory.
package introspect

import "model-resolver/internal/schema"

// AnyTypeName is the canonical name of the fully unconstrained type.
// Providers must report it for Go's any, Java's Object and the like.
const AnyTypeName = "any"

// TypeRef is an immutable handle to a host type.
type TypeRef interface {
	// CanonicalName is the schema name for named types and a stable
	// spelling such as "[]Pet" for anonymous ones.
	CanonicalName() string
	// IsContainer reports sequences, sets and key/value maps.
	IsContainer() bool
	// KeyType is non-nil only for key/value containers.
	KeyType() TypeRef
	// ValueType is the element or value type of any container.
	ValueType() TypeRef
	IsEnum() bool
	// EnumValues lists the allowed values of an enumeration in
	// declaration order.
	EnumValues() []string
	RawClass() RawClass
}

// RawClass identifies the raw representation behind a type.
type RawClass struct {
	Name string
	// IsSet reports that the raw type, or one of the interfaces it
	// declares, is the set abstraction.
	IsSet bool
}

// PropertyDef is one declared property of a composite type with the
// metadata attached to it. Pointer fields are nil when unset.
type PropertyDef struct {
	Name         string
	Type         TypeRef
	AccessorName string

	Required       *bool
	Description    string
	Position       *int
	Example        any
	ReadOnly       *bool
	XMLWrapper     *schema.XML
	XMLElementName string
}

// Provider answers metadata queries about host types.
type Provider interface {
	Description(t TypeRef) (string, bool)
	XMLRoot(t TypeRef) *schema.XML
	// Properties returns the declared properties in declaration order.
	Properties(t TypeRef) []PropertyDef
	// Discriminator is the explicit model-level discriminator override.
	Discriminator(t TypeRef) (string, bool)
	// TypeInfoProperty is the type-discrimination property declared by a
	// polymorphic type-resolution annotation.
	TypeInfoProperty(t TypeRef) (string, bool)
	Subtypes(t TypeRef) []TypeRef
}

// IsAny reports whether t is the unconstrained type.
func IsAny(t TypeRef) bool {
	return t != nil && t.CanonicalName() == AnyTypeName
}

// IsMapLike reports whether t is a key/value container.
func IsMapLike(t TypeRef) bool {
	return t != nil && t.IsContainer() && t.KeyType() != nil && t.ValueType() != nil
}

// IsSequence reports whether t is a container with values but no keys.
func IsSequence(t TypeRef) bool {
	return t != nil && t.IsContainer() && t.KeyType() == nil && t.ValueType() != nil
}
