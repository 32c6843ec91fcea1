package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	petstorePkg  = "model-resolver/petstore"
	inventoryPkg = "model-resolver/petstore/inventory"
)

func loadPetstore(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(petstorePkg, inventoryPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func field(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadPetstore(t)

	// Check that packages were loaded
	assert.Contains(t, graph.Packages, petstorePkg)
	assert.Contains(t, graph.Packages, inventoryPkg)

	// Check that types were extracted
	assert.Contains(t, graph.Types, TypeID{PkgPath: petstorePkg, Name: "Pet"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: inventoryPkg, Name: "Stock"})
}

func TestAnalyzer_CrossPackageReference(t *testing.T) {
	graph := loadPetstore(t)

	stock := graph.GetType(TypeID{PkgPath: inventoryPkg, Name: "Stock"})
	require.NotNil(t, stock)

	// petstore is loaded too, so Category is a struct with fields, not an
	// opaque external type
	category := field(t, stock, "Category").Type
	assert.Equal(t, TypeKindStruct, category.Kind)
	assert.Len(t, category.Fields, 2)
	assert.Same(t, graph.GetType(TypeID{PkgPath: petstorePkg, Name: "Category"}), category)
}

func TestAnalyzer_Docs(t *testing.T) {
	graph := loadPetstore(t)

	pet := graph.GetType(TypeID{PkgPath: petstorePkg, Name: "Pet"})
	require.NotNil(t, pet)

	assert.Equal(t, "Pet is anything the store sells.", pet.Doc)
	assert.Equal(t, "petType", pet.Directives[DirectiveDiscriminator])
	assert.Equal(t, []string{"Dog", "Cat"}, pet.Directives.List(DirectiveSubtypes))

	assert.Equal(t, "Unique identifier.\n", field(t, pet, "ID").Doc)
	assert.Empty(t, field(t, pet, "PetType").Doc)
}

func TestAnalyzer_UnexportedFieldsSkipped(t *testing.T) {
	graph := loadPetstore(t)

	pet := graph.GetType(TypeID{PkgPath: petstorePkg, Name: "Pet"})
	require.NotNil(t, pet)

	for _, f := range pet.Fields {
		assert.NotEqual(t, "secret", f.Name)
	}
}

func TestAnalyzer_Kinds(t *testing.T) {
	graph := loadPetstore(t)

	order := graph.GetType(TypeID{PkgPath: petstorePkg, Name: "Order"})
	require.NotNil(t, order)

	tests := []struct {
		field string
		kind  TypeKind
	}{
		{"ID", TypeKindBasic},
		{"Pets", TypeKindSlice},
		{"ShipDate", TypeKindStruct},
		{"Notes", TypeKindMap},
		{"Flags", TypeKindMap},
		{"Callback", TypeKindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.kind, field(t, order, tt.field).Type.Kind)
		})
	}

	pets := field(t, order, "Pets").Type
	assert.Equal(t, TypeKindPointer, pets.ElemType.Kind)
	assert.Equal(t, TypeKindStruct, pets.ElemType.ElemType.Kind)

	extra := field(t, order, "Extra").Type
	assert.Equal(t, TypeKindAny, extra.ElemType.Kind)

	assert.True(t, field(t, order, "Flags").Type.ElemType.IsEmptyStruct())
}

func TestAnalyzer_Enums(t *testing.T) {
	graph := loadPetstore(t)

	status := graph.GetType(TypeID{PkgPath: petstorePkg, Name: "Status"})
	require.NotNil(t, status)

	assert.Equal(t, TypeKindAlias, status.Kind)
	assert.Equal(t, []string{"available", "pending", "sold"}, status.EnumValues)

	weight := graph.GetType(TypeID{PkgPath: petstorePkg, Name: "Weight"})
	require.NotNil(t, weight)
	assert.Empty(t, weight.EnumValues)
}

func TestAnalyzer_GetStruct(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(petstorePkg)
	require.NoError(t, err)

	pet, err := analyzer.GetStruct(petstorePkg, "Pet")
	require.NoError(t, err)
	assert.Equal(t, "Pet", pet.ID.Name)

	_, err = analyzer.GetStruct(petstorePkg, "Status")
	require.Error(t, err)

	_, err = analyzer.GetStruct(petstorePkg, "Missing")
	require.Error(t, err)
}

func TestAnalyzer_LoadError(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("model-resolver/does/not/exist")
	require.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: petstorePkg, Name: "Pet"}
	assert.Equal(t, "model-resolver/petstore.Pet", id.String())

	// Empty package path
	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "any", TypeKindAny.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestFieldInfo_JSONName(t *testing.T) {
	// Test with simple tag
	f1 := FieldInfo{Name: "MyField", Tag: `json:"my_field"`}
	assert.Equal(t, "my_field", f1.JSONName())
	assert.True(t, f1.HasJSONName())

	// Test with options
	f2 := FieldInfo{Name: "MyField", Tag: `json:"my_field,omitempty"`}
	assert.Equal(t, "my_field", f2.JSONName())

	// Test with no tag
	f3 := FieldInfo{Name: "MyField", Tag: ""}
	assert.Equal(t, "MyField", f3.JSONName())
	assert.False(t, f3.HasJSONName())

	// Test with "-" (ignored in JSON)
	f4 := FieldInfo{Name: "MyField", Tag: `json:"-"`}
	assert.Equal(t, "MyField", f4.JSONName())
	assert.True(t, f4.JSONSkipped())

	// A "-," name is the literal "-"
	f5 := FieldInfo{Name: "MyField", Tag: `json:"-,"`}
	assert.False(t, f5.JSONSkipped())
}

func TestParseDoc(t *testing.T) {
	text, dirs := ParseDoc("Order is a purchase.\n\n+model:name=PetOrder\n +model:set\n")

	assert.Equal(t, "Order is a purchase.", text)
	assert.Equal(t, Directives{"name": "PetOrder", "set": ""}, dirs)
	assert.True(t, dirs.Has(DirectiveSet))
	assert.Nil(t, dirs.List(DirectiveSubtypes))

	text, dirs = ParseDoc("")
	assert.Empty(t, text)
	assert.Nil(t, dirs)
}

func TestParseModelTag(t *testing.T) {
	opts := parseModelTag("required, readonly,position=3,wrapper=items")

	require.NotNil(t, opts.required)
	assert.True(t, *opts.required)
	assert.True(t, opts.readOnly)
	require.NotNil(t, opts.position)
	assert.Equal(t, 3, *opts.position)
	assert.True(t, opts.wrapped)
	assert.Equal(t, "items", opts.wrapper)

	opts = parseModelTag("optional,position=x")
	require.NotNil(t, opts.required)
	assert.False(t, *opts.required)
	assert.Nil(t, opts.position)
}

func TestXMLTags(t *testing.T) {
	wrapper, element := xmlTag("photoUrls>photoUrl")
	assert.Equal(t, "photoUrls", wrapper)
	assert.Equal(t, "photoUrl", element)

	wrapper, element = xmlTag("skill,attr")
	assert.Empty(t, wrapper)
	assert.Equal(t, "skill", element)

	wrapper, element = xmlTag("-")
	assert.Empty(t, wrapper)
	assert.Empty(t, element)

	ns, local := xmlName("urn:petstore pet")
	assert.Equal(t, "urn:petstore", ns)
	assert.Equal(t, "pet", local)
}
