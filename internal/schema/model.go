package schema

// Definition is a named entry in a Registry: either a *Model or a
// *Composed.
type Definition interface {
	DefinitionName() string
	definition()
}

// Model is a named record schema.
type Model struct {
	Name          string
	Description   string
	Discriminator string // empty when the model is not a polymorphic root
	XML           *XML
	Properties    *Properties
}

// NewModel returns an empty model with the given name.
func NewModel(name string) *Model {
	return &Model{Name: name, Properties: &Properties{}}
}

// DefinitionName implements Definition.
func (m *Model) DefinitionName() string { return m.Name }

func (*Model) definition() {}

// Clone returns a deep copy of m.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}

	out := *m
	if m.XML != nil {
		xml := *m.XML
		out.XML = &xml
	}

	out.Properties = m.Properties.Clone()

	return &out
}

// Composed describes a polymorphic subtype as a reference to its parent
// schema plus the fields the subtype adds on top of it.
type Composed struct {
	Name   string
	Parent string
	Child  *Model
}

// DefinitionName implements Definition.
func (c *Composed) DefinitionName() string { return c.Name }

func (*Composed) definition() {}

// Compose builds the composed form of child under parent. Properties
// already present in parentProps are removed from the child remainder and
// the child's discriminator is cleared.
func Compose(parent string, parentProps []string, child *Model) *Composed {
	rest := child.Clone()
	for _, name := range parentProps {
		rest.Properties.Delete(name)
	}

	rest.Discriminator = ""

	return &Composed{Name: child.Name, Parent: parent, Child: rest}
}
