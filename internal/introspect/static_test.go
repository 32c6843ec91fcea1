package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_ContainerShapes(t *testing.T) {
	foo := Struct("Foo")

	tests := []struct {
		name     string
		typ      TypeRef
		wantName string
		mapLike  bool
		sequence bool
		set      bool
	}{
		{name: "plain", typ: foo, wantName: "Foo"},
		{name: "slice", typ: Slice(foo), wantName: "[]Foo", sequence: true},
		{name: "set", typ: Set(foo), wantName: "set[Foo]", sequence: true, set: true},
		{name: "map", typ: MapOf(Named("string"), foo), wantName: "map[string]Foo", mapLike: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.typ.CanonicalName())
			assert.Equal(t, tt.mapLike, IsMapLike(tt.typ))
			assert.Equal(t, tt.sequence, IsSequence(tt.typ))
			assert.Equal(t, tt.set, tt.typ.RawClass().IsSet)
		})
	}
}

func TestStatic_NilKeyIsUntypedNil(t *testing.T) {
	s := Slice(Named("string"))

	// a typed nil inside the interface would make IsMapLike lie
	assert.Nil(t, s.KeyType())
	assert.NotNil(t, s.ValueType())
	assert.Nil(t, Named("x").ValueType())
}

func TestStatic_Metadata(t *testing.T) {
	dog := Struct("Dog")
	pet := Struct("Pet").
		Describe("a pet").
		WithXMLRoot("pet", "urn:pets").
		WithDiscriminator("kind").
		WithTypeInfo("@type").
		WithSubtypes(dog).
		Prop("name", Named("string"), Required(), Position(2), Description("pet name"), Example("rex")).
		Prop("id", Named("int64"), ReadOnly(), Accessor("getid")).
		Prop("tags", Slice(Named("string")), XMLWrapper("tags", ""), XMLElement("tag"))

	var p Static

	desc, ok := p.Description(pet)
	assert.True(t, ok)
	assert.Equal(t, "a pet", desc)

	_, ok = p.Description(dog)
	assert.False(t, ok)

	root := p.XMLRoot(pet)
	require.NotNil(t, root)
	assert.Equal(t, "pet", root.Name)
	assert.Equal(t, "urn:pets", root.Namespace)

	disc, ok := p.Discriminator(pet)
	assert.True(t, ok)
	assert.Equal(t, "kind", disc)

	info, ok := p.TypeInfoProperty(pet)
	assert.True(t, ok)
	assert.Equal(t, "@type", info)

	subs := p.Subtypes(pet)
	require.Len(t, subs, 1)
	assert.Equal(t, "Dog", subs[0].CanonicalName())

	props := p.Properties(pet)
	require.Len(t, props, 3)

	assert.Equal(t, "name", props[0].Name)
	require.NotNil(t, props[0].Required)
	assert.True(t, *props[0].Required)
	require.NotNil(t, props[0].Position)
	assert.Equal(t, 2, *props[0].Position)
	assert.Equal(t, "pet name", props[0].Description)
	assert.Equal(t, "rex", props[0].Example)

	assert.Equal(t, "getid", props[1].AccessorName)
	require.NotNil(t, props[1].ReadOnly)
	assert.True(t, *props[1].ReadOnly)

	require.NotNil(t, props[2].XMLWrapper)
	assert.True(t, props[2].XMLWrapper.Wrapped)
	assert.Equal(t, "tag", props[2].XMLElementName)
}

func TestStatic_EnumAndAny(t *testing.T) {
	e := Enum("Status", "placed", "approved")

	assert.True(t, e.IsEnum())
	assert.Equal(t, []string{"placed", "approved"}, e.EnumValues())
	assert.False(t, Named("string").IsEnum())

	assert.True(t, IsAny(Any()))
	assert.False(t, IsAny(Named("string")))
	assert.False(t, IsAny(nil))
}
