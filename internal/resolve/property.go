package resolve

import (
	"model-resolver/internal/introspect"
	"model-resolver/internal/schema"
)

// property is the recursive core of ResolveProperty.
func (r *Resolver) property(t introspect.TypeRef, reg *schema.Registry, depth int) *schema.Property {
	if t == nil {
		return nil
	}

	// scalars first so that scalar-valued containers such as []byte stay
	// inline
	if p, ok := r.scalars.Lookup(t.CanonicalName()); ok {
		return p
	}

	if t.IsEnum() {
		return enumProperty(t)
	}

	switch {
	case introspect.IsMapLike(t):
		return r.mapProperty(t, reg, depth)
	case introspect.IsSequence(t):
		return r.arrayProperty(t, reg, depth)
	default:
		return r.reference(t, reg, depth)
	}
}

func (r *Resolver) mapProperty(t introspect.TypeRef, reg *schema.Registry, depth int) *schema.Property {
	value := t.ValueType()

	if introspect.IsAny(value) {
		return schema.Map(schema.Scalar(schema.TypeString, ""))
	}

	inner := r.element(value, reg, depth)
	if inner == nil {
		return nil
	}

	return schema.Map(inner)
}

func (r *Resolver) arrayProperty(t introspect.TypeRef, reg *schema.Registry, depth int) *schema.Property {
	inner := r.element(t.ValueType(), reg, depth)
	if inner == nil {
		return nil
	}

	arr := schema.Array(inner)
	arr.UniqueItems = t.RawClass().IsSet

	return arr
}

// element resolves a container's element or value type: scalars and
// enums inline, nested containers recursively, anything else as a
// reference to its registered model.
func (r *Resolver) element(t introspect.TypeRef, reg *schema.Registry, depth int) *schema.Property {
	if t == nil {
		return nil
	}

	if p, ok := r.scalars.Lookup(t.CanonicalName()); ok {
		return p
	}

	if t.IsEnum() {
		return enumProperty(t)
	}

	if t.IsContainer() {
		return r.property(t, reg, depth+1)
	}

	return r.reference(t, reg, depth)
}

// reference resolves t as a model and points at it by name.
func (r *Resolver) reference(t introspect.TypeRef, reg *schema.Registry, depth int) *schema.Property {
	m, _ := r.model(t, reg, depth+1)
	if m == nil {
		return nil
	}

	return schema.Ref(m.Name)
}

// enumProperty renders an enumeration as a string scalar listing its
// values.
func enumProperty(t introspect.TypeRef) *schema.Property {
	p := schema.Scalar(schema.TypeString, "")
	p.Enum = t.EnumValues()

	return p
}
