package export

import (
	"model-resolver/internal/schema"
)

// SwaggerVersion is the version of the emitted document format.
const SwaggerVersion = "2.0"

const definitionsPrefix = "#/definitions/"

// Info is the document's info block.
type Info struct {
	Title   string
	Version string
}

// Document renders every definition of reg as a Swagger 2.0 document.
// Definitions are sorted by name; properties keep their resolved order.
func Document(reg *schema.Registry, info Info) *Object {
	defs := NewObject()
	for _, def := range reg.Definitions() {
		defs.Set(def.DefinitionName(), Definition(def))
	}

	head := NewObject()
	head.Set("title", info.Title)
	head.Set("version", info.Version)

	doc := NewObject()
	doc.Set("swagger", SwaggerVersion)
	doc.Set("info", head)
	doc.Set("definitions", defs)

	return doc
}

// Definition renders one registry entry. A composed definition becomes
// an allOf of its parent reference and the subtype's own fields.
func Definition(def schema.Definition) *Object {
	out := NewObject()

	switch d := def.(type) {
	case *schema.Model:
		return model(d)
	case *schema.Composed:
		out.Set("allOf", []any{Ref(d.Parent), model(d.Child)})
	}

	return out
}

// Ref renders a reference to a named definition.
func Ref(name string) *Object {
	out := NewObject()
	out.Set("$ref", definitionsPrefix+name)

	return out
}

func model(m *schema.Model) *Object {
	out := NewObject()
	out.Set("type", "object")
	setIf(out, m.Description != "", "description", m.Description)
	setIf(out, m.Discriminator != "", "discriminator", m.Discriminator)

	var required []string

	props := NewObject()
	m.Properties.Each(func(p *schema.Property) bool {
		if p.Required {
			required = append(required, p.Name)
		}

		props.Set(p.Name, Property(p))

		return true
	})

	setIf(out, len(required) > 0, "required", required)
	setIf(out, props.Len() > 0, "properties", props)

	if m.XML != nil {
		out.Set("xml", xmlObject(m.XML))
	}

	return out
}

// Property renders a property schema. Required is a model-level list in
// Swagger and is not rendered here.
func Property(p *schema.Property) *Object {
	out := NewObject()

	switch p.Kind {
	case schema.KindReference:
		out.Set("$ref", definitionsPrefix+p.Ref)
	case schema.KindScalar:
		out.Set("type", p.Type)
		setIf(out, p.Format != "", "format", p.Format)
		setIf(out, len(p.Enum) > 0, "enum", p.Enum)
	case schema.KindArray:
		out.Set("type", "array")
		if p.Items != nil {
			out.Set("items", Property(p.Items))
		}
		setIf(out, p.UniqueItems, "uniqueItems", true)
	case schema.KindMap:
		out.Set("type", "object")
		if p.AdditionalProperties != nil {
			out.Set("additionalProperties", Property(p.AdditionalProperties))
		}
	}

	setIf(out, p.Description != "", "description", p.Description)
	setIf(out, p.Example != nil, "example", p.Example)
	setIf(out, p.ReadOnly, "readOnly", true)

	if p.XML != nil {
		out.Set("xml", xmlObject(p.XML))
	}

	return out
}

func xmlObject(x *schema.XML) *Object {
	out := NewObject()
	setIf(out, x.Name != "", "name", x.Name)
	setIf(out, x.Namespace != "", "namespace", x.Namespace)
	setIf(out, x.Wrapped, "wrapped", true)

	return out
}
