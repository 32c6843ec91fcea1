package schema

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Properties is an insertion-ordered mapping from property name to
// Property. The zero value is ready to use.
type Properties struct {
	m *orderedmap.OrderedMap[string, *Property]
}

// NewProperties builds a Properties set from props in the given order.
// A later property replaces an earlier one with the same name but keeps
// the earlier position.
func NewProperties(props ...*Property) *Properties {
	ps := &Properties{}
	for _, p := range props {
		ps.Set(p)
	}

	return ps
}

// Set inserts p under p.Name, or replaces the existing entry in place.
func (ps *Properties) Set(p *Property) {
	if ps.m == nil {
		ps.m = orderedmap.New[string, *Property]()
	}

	ps.m.Set(p.Name, p)
}

// Get returns the property with the given name, or nil.
func (ps *Properties) Get(name string) *Property {
	if ps == nil || ps.m == nil {
		return nil
	}

	p, _ := ps.m.Get(name)

	return p
}

// Has reports whether a property with the given name exists.
func (ps *Properties) Has(name string) bool {
	if ps == nil || ps.m == nil {
		return false
	}

	_, ok := ps.m.Get(name)

	return ok
}

// Delete removes the named property. Removing a missing name is a no-op.
func (ps *Properties) Delete(name string) {
	if ps == nil || ps.m == nil {
		return
	}

	ps.m.Delete(name)
}

// Len returns the number of properties.
func (ps *Properties) Len() int {
	if ps == nil || ps.m == nil {
		return 0
	}

	return ps.m.Len()
}

// Names returns the property names in order.
func (ps *Properties) Names() []string {
	if ps == nil {
		return nil
	}

	var names []string
	ps.Each(func(p *Property) bool {
		names = append(names, p.Name)
		return true
	})

	return names
}

// List returns the properties in order.
func (ps *Properties) List() []*Property {
	if ps == nil {
		return nil
	}

	out := make([]*Property, 0, ps.Len())
	ps.Each(func(p *Property) bool {
		out = append(out, p)
		return true
	})

	return out
}

// Each calls fn for every property in order until fn returns false.
func (ps *Properties) Each(fn func(*Property) bool) {
	if ps == nil || ps.m == nil {
		return
	}

	for pair := ps.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Value) {
			return
		}
	}
}

// Clone returns a deep copy of ps.
func (ps *Properties) Clone() *Properties {
	out := &Properties{}
	ps.Each(func(p *Property) bool {
		out.Set(p.Clone())
		return true
	})

	return out
}
