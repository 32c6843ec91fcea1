package schema

import (
	"log/slog"
	"slices"
	"sync"

	"model-resolver/internal/diagnostic"
)

// Registry maps schema names to their current definition for one
// resolution session.
//
// All state sits behind a single mutex: definitions, the set of names
// whose resolution is in progress, and subtype compositions waiting for
// their subtype to finish. Define is last-write-wins per name.
type Registry struct {
	mu         sync.Mutex
	defs       map[string]Definition
	inProgress map[string]struct{}
	pending    map[string]pendingComposition
	diags      diagnostic.Diagnostics

	log *slog.Logger
}

type pendingComposition struct {
	parent      string
	parentProps []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:       make(map[string]Definition),
		inProgress: make(map[string]struct{}),
		pending:    make(map[string]pendingComposition),
		log:        slog.Default().With("system", "registry"),
	}
}

// Define registers def under its name, replacing any prior definition.
func (r *Registry) Define(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defineLocked(def)
}

func (r *Registry) defineLocked(def Definition) {
	name := def.DefinitionName()
	if prev, ok := r.defs[name]; ok {
		r.log.Debug("replacing definition", "name", name, "prev", kindOf(prev), "next", kindOf(def))
	} else {
		r.log.Debug("defining schema", "name", name, "kind", kindOf(def))
	}

	r.defs[name] = def
}

// Begin claims name for resolution. It returns false when the name is
// already defined or another resolution of it is in progress; the caller
// must then refer to the schema by name instead of expanding it.
func (r *Registry) Begin(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.defs[name]; ok {
		return false
	}

	if _, ok := r.inProgress[name]; ok {
		return false
	}

	r.inProgress[name] = struct{}{}

	return true
}

// Abandon releases a claim taken with Begin without defining anything.
func (r *Registry) Abandon(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.inProgress, name)
}

// Finish stores a fully resolved model and releases its claim. If a
// parent asked for the model to be composed while it was still in
// progress, the composed form is stored instead. The stored definition is
// returned.
func (r *Registry) Finish(m *Model) Definition {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.inProgress, m.Name)

	var def Definition = m
	if pc, ok := r.pending[m.Name]; ok {
		delete(r.pending, m.Name)
		def = Compose(pc.parent, pc.parentProps, m)
	}

	r.defineLocked(def)

	return def
}

// Defer records that sub must be composed under parent once its own
// resolution finishes. It reports false when sub is not in progress, in
// which case the caller should compose it directly.
func (r *Registry) Defer(sub, parent string, parentProps []string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.inProgress[sub]; !ok {
		return false
	}

	r.pending[sub] = pendingComposition{parent: parent, parentProps: slices.Clone(parentProps)}
	r.diags.AddInfo(diagnostic.CodeCompositionDeferred,
		"subtype still resolving, composition deferred", sub, "")

	return true
}

// InProgress reports whether name is currently being resolved.
func (r *Registry) InProgress(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.inProgress[name]

	return ok
}

// Lookup returns the current definition for name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	def, ok := r.defs[name]

	return def, ok
}

// Model returns the plain model registered under name, or nil when the
// name is missing or holds a composed definition.
func (r *Registry) Model(name string) *Model {
	def, ok := r.Lookup(name)
	if !ok {
		return nil
	}

	m, _ := def.(*Model)

	return m
}

// Composed returns the composed definition registered under name, or nil.
func (r *Registry) Composed(name string) *Composed {
	def, ok := r.Lookup(name)
	if !ok {
		return nil
	}

	c, _ := def.(*Composed)

	return c
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.defs)
}

// Names returns the registered schema names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Definitions returns the definitions sorted by name.
func (r *Registry) Definitions() []Definition {
	names := r.Names()

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Definition, 0, len(names))
	for _, name := range names {
		out = append(out, r.defs[name])
	}

	return out
}

// Warn records a warning diagnostic for the session.
func (r *Registry) Warn(code, message, schemaName, property string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.diags.AddWarning(code, message, schemaName, property)
}

// Error records an error diagnostic for the session.
func (r *Registry) Error(code, message, schemaName, property string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.diags.AddError(code, message, schemaName, property)
}

// Diagnostics returns a copy of the diagnostics recorded so far.
func (r *Registry) Diagnostics() diagnostic.Diagnostics {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.diags.Clone()
}

func kindOf(def Definition) string {
	switch def.(type) {
	case *Composed:
		return "composed"
	default:
		return "model"
	}
}
