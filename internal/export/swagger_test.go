package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"model-resolver/internal/introspect"
	"model-resolver/internal/resolve"
	"model-resolver/internal/schema"
)

func petRegistry(t *testing.T) *schema.Registry {
	t.Helper()

	str := introspect.Named("string")

	tag := introspect.Struct("Tag").Prop("name", str)
	pet := introspect.Struct("Pet").
		Describe("A pet.").
		WithXMLRoot("pet", "").
		WithDiscriminator("petType")
	dog := introspect.Struct("Dog").
		Prop("petType", str).
		Prop("name", str).
		Prop("bark", str)
	pet.WithSubtypes(dog).
		Prop("petType", str, introspect.Required()).
		Prop("name", str, introspect.Required(), introspect.Position(0), introspect.Example("doggie")).
		Prop("tags", introspect.Set(tag), introspect.XMLWrapper(resolve.XMLDefault, "")).
		Prop("labels", introspect.MapOf(str, str)).
		Prop("status", introspect.Enum("Status", "available", "sold"), introspect.ReadOnly())

	reg := schema.NewRegistry()
	require.NotNil(t, resolve.NewResolver(introspect.Static{}, resolve.DefaultConfig()).Resolve(pet, reg))

	return reg
}

func TestDocument_JSON(t *testing.T) {
	doc := Document(petRegistry(t), Info{Title: "Petstore", Version: "1.0.0"})

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	want := `{"swagger":"2.0","info":{"title":"Petstore","version":"1.0.0"},"definitions":{` +
		`"Dog":{"allOf":[{"$ref":"#/definitions/Pet"},{"type":"object","properties":{"bark":{"type":"string"}}}]},` +
		`"Pet":{"type":"object","description":"A pet.","discriminator":"petType","required":["name","petType"],"properties":{` +
		`"name":{"type":"string","example":"doggie"},` +
		`"petType":{"type":"string"},` +
		`"tags":{"type":"array","items":{"$ref":"#/definitions/Tag"},"uniqueItems":true,"xml":{"name":"tags","wrapped":true}},` +
		`"labels":{"type":"object","additionalProperties":{"type":"string"}},` +
		`"status":{"type":"string","enum":["available","sold"],"readOnly":true}` +
		`},"xml":{"name":"pet"}},` +
		`"Tag":{"type":"object","properties":{"name":{"type":"string"}}}` +
		`}}`

	assert.Equal(t, want, string(data))
}

func TestDocument_YAMLKeepsOrder(t *testing.T) {
	doc := Document(petRegistry(t), Info{Title: "Petstore", Version: "1.0.0"})

	data, err := Marshal(doc, FormatYAML)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "swagger: \"2.0\"\n"), text)

	// properties come out in resolved order, not alphabetically
	order := []string{"name:", "petType:", "tags:", "labels:", "status:"}
	last := strings.Index(text, "\n  Pet:\n")
	require.Positive(t, last)

	for _, key := range order {
		i := strings.Index(text[last:], key)
		require.GreaterOrEqual(t, i, 0, key)
		last += i
	}

	// same content as the JSON rendering
	var fromYAML any
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))

	viaYAML, err := json.Marshal(fromYAML)
	require.NoError(t, err)

	viaJSON, err := Marshal(doc, FormatJSON)
	require.NoError(t, err)

	assert.JSONEq(t, string(viaJSON), string(viaYAML))
}

func TestMarshal_UnknownFormat(t *testing.T) {
	_, err := Marshal(NewObject(), "toml")
	require.Error(t, err)
}

func TestDefinition_Shapes(t *testing.T) {
	m := schema.NewModel("Empty")
	assert.Equal(t, []string{"type"}, Keys(Definition(m)))

	c := &schema.Composed{Name: "Sub", Parent: "Base", Child: schema.NewModel("Sub")}
	out := Definition(c)
	assert.Equal(t, []string{"allOf"}, Keys(out))

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"allOf":[{"$ref":"#/definitions/Base"},{"type":"object"}]}`, string(data))
}

func TestObject(t *testing.T) {
	o := NewObject()
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3)
	setIf(o, false, "c", 4)

	assert.Equal(t, []string{"b", "a"}, Keys(o))
	assert.Equal(t, 2, o.Len())

	v, ok := o.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"b":3,"a":2}`, string(data))

	y, err := yaml.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, "b: 3\na: 2\n", string(y))

	data, err = json.Marshal(NewObject())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
