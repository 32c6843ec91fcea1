package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarNamed(name string) *Property {
	p := Scalar(TypeString, "")
	p.Name = name

	return p
}

func TestProperties_InsertionOrder(t *testing.T) {
	ps := NewProperties(scalarNamed("c"), scalarNamed("a"), scalarNamed("b"))

	assert.Equal(t, []string{"c", "a", "b"}, ps.Names())
	assert.Equal(t, 3, ps.Len())
}

func TestProperties_SetReplacesInPlace(t *testing.T) {
	ps := NewProperties(scalarNamed("a"), scalarNamed("b"))

	repl := Ref("Other")
	repl.Name = "a"
	ps.Set(repl)

	assert.Equal(t, []string{"a", "b"}, ps.Names())
	assert.True(t, ps.Get("a").IsReference())
}

func TestProperties_Delete(t *testing.T) {
	ps := NewProperties(scalarNamed("a"), scalarNamed("b"), scalarNamed("c"))

	ps.Delete("b")
	ps.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, ps.Names())
	assert.False(t, ps.Has("b"))
	assert.Nil(t, ps.Get("b"))
}

func TestProperties_DeleteThenSetAppends(t *testing.T) {
	ps := NewProperties(scalarNamed("a"), scalarNamed("b"))

	ps.Delete("a")
	ps.Set(scalarNamed("a"))

	assert.Equal(t, []string{"b", "a"}, ps.Names())
	assert.Len(t, ps.List(), 2)
}

func TestProperties_ZeroValue(t *testing.T) {
	var ps Properties

	ps.Delete("x")
	assert.Nil(t, ps.Get("x"))

	ps.Set(scalarNamed("x"))
	assert.Equal(t, []string{"x"}, ps.Names())
}

func TestProperties_NilSafe(t *testing.T) {
	var ps *Properties

	assert.Equal(t, 0, ps.Len())
	assert.Nil(t, ps.Names())
	assert.False(t, ps.Has("x"))
	assert.Equal(t, 0, ps.Clone().Len())
}

func TestProperties_CloneIsDeep(t *testing.T) {
	pos := 1
	item := scalarNamed("tags")
	item.Position = &pos

	arr := Array(Scalar(TypeString, ""))
	arr.Name = "list"

	ps := NewProperties(item, arr)
	clone := ps.Clone()

	*clone.Get("tags").Position = 7
	clone.Get("list").Items.Format = "changed"

	require.NotNil(t, ps.Get("tags").Position)
	assert.Equal(t, 1, *ps.Get("tags").Position)
	assert.Empty(t, ps.Get("list").Items.Format)
}

func TestCompose(t *testing.T) {
	child := NewModel("Child")
	child.Discriminator = "type"
	child.Properties = NewProperties(scalarNamed("a"), scalarNamed("b"), scalarNamed("c"))

	c := Compose("Parent", []string{"a", "b"}, child)

	assert.Equal(t, "Child", c.Name)
	assert.Equal(t, "Parent", c.Parent)
	assert.Equal(t, []string{"c"}, c.Child.Properties.Names())
	assert.Empty(t, c.Child.Discriminator)

	// the input model is left untouched
	assert.Equal(t, 3, child.Properties.Len())
	assert.Equal(t, "type", child.Discriminator)
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindScalar, "scalar"},
		{KindReference, "reference"},
		{KindArray, "array"},
		{KindMap, "map"},
		{KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}
