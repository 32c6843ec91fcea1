package resolve

import (
	"fmt"
	"log/slog"

	"model-resolver/internal/diagnostic"
	"model-resolver/internal/introspect"
	"model-resolver/internal/scalar"
	"model-resolver/internal/schema"
)

// XMLDefault is the placeholder annotation value meaning "derive from
// the property name".
const XMLDefault = schema.XMLDefault

// Resolver builds schemas from types described by an introspection
// provider. It holds no per-session state; the registry passed to each
// call is the session.
type Resolver struct {
	provider introspect.Provider
	scalars  *scalar.Mapper
	config   Config

	log *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(provider introspect.Provider, config Config) *Resolver {
	config = config.withDefaults()

	return &Resolver{
		provider: provider,
		scalars:  config.Scalars,
		config:   config,
		log:      slog.Default().With("system", "resolver"),
	}
}

// Config returns the effective configuration.
func (r *Resolver) Config() Config {
	return r.config
}

// Resolve builds the model schema for t, registers it in reg and returns
// it. It returns nil for key/value containers, which are only valid as
// property values.
func (r *Resolver) Resolve(t introspect.TypeRef, reg *schema.Registry) *schema.Model {
	m, _ := r.model(t, reg, 0)
	return m
}

// ResolveProperty builds the property schema for a member of type t,
// registering any models it references. It returns nil when the type
// cannot be resolved; callers omit the property.
func (r *Resolver) ResolveProperty(t introspect.TypeRef, reg *schema.Registry) *schema.Property {
	return r.property(t, reg, 0)
}

type outcome int

const (
	outcomeBuilt    outcome = iota // resolved by this call
	outcomeExisting                // already registered
	outcomePending                 // claimed by a resolution still in progress
)

// model is the recursive core of Resolve.
func (r *Resolver) model(t introspect.TypeRef, reg *schema.Registry, depth int) (*schema.Model, outcome) {
	if t == nil {
		return nil, outcomeBuilt
	}

	name := t.CanonicalName()
	if !r.checkDepth(reg, name, depth) {
		return nil, outcomeBuilt
	}

	if introspect.IsAny(t) {
		m := schema.NewModel(name)
		reg.Define(m)

		return m, outcomeBuilt
	}

	if introspect.IsMapLike(t) {
		return nil, outcomeBuilt
	}

	for {
		if def, ok := reg.Lookup(name); ok {
			return existingModel(def), outcomeExisting
		}

		if reg.Begin(name) {
			break
		}

		if reg.InProgress(name) {
			cycleShortCircuits.Inc()
			r.log.Debug("model already in progress", "name", name, "depth", depth)

			return schema.NewModel(name), outcomePending
		}
		// finished between the two checks; look again
	}

	return r.build(t, name, reg, depth), outcomeBuilt
}

// build expands a claimed model. The claim is released by Finish, or
// abandoned when a Debug panic unwinds through here.
func (r *Resolver) build(t introspect.TypeRef, name string, reg *schema.Registry, depth int) *schema.Model {
	finished := false
	defer func() {
		if !finished {
			reg.Abandon(name)
		}
	}()

	m := schema.NewModel(name)

	if desc, ok := r.provider.Description(t); ok && desc != "" {
		m.Description = desc
	}

	if root := r.provider.XMLRoot(t); root != nil && root.Name != "" {
		xml := &schema.XML{Name: root.Name}
		if root.Namespace != "" && root.Namespace != XMLDefault {
			xml.Namespace = root.Namespace
		}

		m.XML = xml
	}

	m.Discriminator = r.discriminator(t)

	var props []*schema.Property

	for _, def := range r.provider.Properties(t) {
		propName := displayName(def)

		prop := r.property(def.Type, reg, depth+1)
		if prop == nil {
			propertiesDropped.Inc()
			reg.Warn(diagnostic.CodePropertyDropped,
				fmt.Sprintf("type %s did not resolve", typeName(def.Type)), name, propName)
			r.log.Debug("dropping property", "model", name, "property", propName)

			continue
		}

		applyMetadata(prop, propName, def)
		props = append(props, prop)
	}

	parentProps := make([]string, 0, len(props))
	for _, p := range props {
		parentProps = append(parentProps, p.Name)
	}

	r.composeSubtypes(t, name, parentProps, reg, depth)

	SortProperties(props)
	m.Properties = schema.NewProperties(props...)

	reg.Finish(m)
	finished = true
	modelsResolved.Inc()

	return m
}

// discriminator prefers the explicit override over the type-info
// property.
func (r *Resolver) discriminator(t introspect.TypeRef) string {
	if disc, ok := r.provider.Discriminator(t); ok && disc != "" {
		return disc
	}

	if disc, ok := r.provider.TypeInfoProperty(t); ok && disc != "" {
		return disc
	}

	return ""
}

// composeSubtypes registers each declared subtype as a composed schema
// under parent, minus the fields the parent already has.
func (r *Resolver) composeSubtypes(t introspect.TypeRef, parent string, parentProps []string, reg *schema.Registry, depth int) {
	for _, sub := range r.provider.Subtypes(t) {
		if sub != nil && sub.CanonicalName() == parent {
			reg.Warn(diagnostic.CodeSubtypeUnresolved, "type lists itself as a subtype", parent, "")
			continue
		}

		subModel, oc := r.model(sub, reg, depth+1)
		if subModel == nil {
			reg.Warn(diagnostic.CodeSubtypeUnresolved,
				fmt.Sprintf("subtype %s did not resolve", typeName(sub)), parent, "")

			continue
		}

		if oc == outcomePending {
			if reg.Defer(subModel.Name, parent, parentProps) {
				subtypeCompositions.WithLabelValues("deferred").Inc()
				r.log.Debug("deferring subtype composition", "parent", parent, "subtype", subModel.Name)

				continue
			}

			// it finished while we were looking
			def, ok := reg.Lookup(subModel.Name)
			if !ok {
				continue
			}

			subModel = existingModel(def)
		}

		reg.Define(schema.Compose(parent, parentProps, subModel))
		subtypeCompositions.WithLabelValues("immediate").Inc()
	}
}

// checkDepth reports whether the walk may continue at depth.
func (r *Resolver) checkDepth(reg *schema.Registry, name string, depth int) bool {
	if depth <= r.config.MaxDepth {
		return true
	}

	msg := fmt.Sprintf("recursion depth %d exceeded while resolving %s", r.config.MaxDepth, name)
	if r.config.Debug {
		panic(msg)
	}

	reg.Error(diagnostic.CodeRunawayRecursion, msg, name, "")
	r.log.Error("runaway recursion", "name", name, "depth", depth)

	return false
}

// existingModel returns the full model view of a registered definition.
func existingModel(def schema.Definition) *schema.Model {
	switch d := def.(type) {
	case *schema.Model:
		return d
	case *schema.Composed:
		return d.Child
	default:
		return nil
	}
}

// applyMetadata copies per-property metadata onto a resolved property.
func applyMetadata(prop *schema.Property, propName string, def introspect.PropertyDef) {
	prop.Name = propName

	if def.Required != nil {
		prop.Required = *def.Required
	}

	if def.Description != "" {
		prop.Description = def.Description
	}

	if def.Position != nil {
		pos := *def.Position
		prop.Position = &pos
	}

	prop.Example = def.Example

	if def.ReadOnly != nil {
		prop.ReadOnly = *def.ReadOnly
	}

	if w := def.XMLWrapper; w != nil {
		xml := &schema.XML{Wrapped: true}

		switch w.Name {
		case XMLDefault:
			xml.Name = propName
		case "":
		default:
			xml.Name = w.Name
		}

		if w.Namespace != "" && w.Namespace != XMLDefault {
			xml.Namespace = w.Namespace
		}

		prop.XML = xml
	}

	if el := def.XMLElementName; el != "" && el != XMLDefault && el != propName {
		if prop.XML == nil {
			prop.XML = &schema.XML{}
		}

		prop.XML.Name = el
	}
}

func typeName(t introspect.TypeRef) string {
	if t == nil {
		return "<nil>"
	}

	return t.CanonicalName()
}
