package analyze

import (
	"fmt"
	"go/types"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"model-resolver/internal/diagnostic"
	"model-resolver/internal/introspect"
	"model-resolver/internal/schema"
)

// Provider answers introspection queries from a TypeGraph built out of Go
// source. It follows encoding/json for property names and embedding and
// reads the remaining metadata from struct tags and doc directives:
//
//	json:"name"         property name; "-" skips the field
//	model:"..."         required, optional, readonly, position=N, wrapped, wrapper=NAME
//	example:"..."       example value, typed after the field's basic kind
//	description:"..."   description; the field doc comment otherwise
//	xml:"a>b"           XML wrapper a around elements named b
//
// A Provider is read-only once built and safe for concurrent use.
type Provider struct {
	graph   *TypeGraph
	names   *TypeStringer
	strType *TypeInfo
	diags   diagnostic.Diagnostics

	log *slog.Logger
}

var _ introspect.Provider = (*Provider)(nil)

// NewProvider creates a Provider over graph.
func NewProvider(graph *TypeGraph) *Provider {
	p := &Provider{
		graph:   graph,
		names:   NewTypeStringer(graph),
		strType: &TypeInfo{Kind: TypeKindBasic, GoType: types.Typ[types.String]},
		log:     slog.Default().With("system", "provider"),
	}

	p.checkCollisions()

	return p
}

// Diagnostics returns what the provider found while indexing the graph.
func (p *Provider) Diagnostics() diagnostic.Diagnostics {
	return p.diags.Clone()
}

// checkCollisions warns about loaded types that end up with the same
// schema name. They would share one definition.
func (p *Provider) checkCollisions() {
	owners := make(map[string][]string)

	var order []string

	for _, pkg := range p.sortedPackages() {
		for _, id := range p.graph.Packages[pkg].Types {
			t := p.graph.GetType(id)
			if t == nil || Transparent(t) != t {
				continue
			}

			name := p.names.TypeString(t)
			if name == "" {
				continue
			}

			if _, ok := owners[name]; !ok {
				order = append(order, name)
			}

			owners[name] = append(owners[name], id.String())
		}
	}

	for _, name := range order {
		ids := owners[name]
		if len(ids) < 2 {
			continue
		}

		slices.Sort(ids)
		p.diags.AddWarning(diagnostic.CodeNameCollision,
			fmt.Sprintf("types %s share the schema name; add +model:name= to tell them apart", strings.Join(ids, ", ")),
			name, "")
		p.log.Debug("schema name collision", "name", name, "types", ids)
	}
}

// Ref returns the TypeRef for t, or nil when t has no schema
// representation.
func (p *Provider) Ref(t *TypeInfo) introspect.TypeRef {
	info := Transparent(t)

	name := p.names.TypeString(info)
	if name == "" {
		return nil
	}

	return &typeRef{p: p, info: info, name: name}
}

// Root finds a named type by "Name" or "path/to/pkg.Name". A bare name is
// searched in every loaded package and must be unambiguous.
func (p *Provider) Root(ref string) (introspect.TypeRef, error) {
	var found []*TypeInfo

	if t := p.graph.Lookup("", ref); t != nil {
		found = append(found, t)
	} else {
		for _, pkg := range p.sortedPackages() {
			if t := p.graph.GetType(TypeID{PkgPath: pkg, Name: ref}); t != nil {
				found = append(found, t)
			}
		}
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("type %s not found", ref)
	case 1:
	default:
		return nil, fmt.Errorf("type %s is ambiguous: found in %d packages", ref, len(found))
	}

	r := p.Ref(found[0])
	if r == nil {
		return nil, fmt.Errorf("type %s has no schema representation", ref)
	}

	return r, nil
}

// Roots returns every named struct of the loaded packages, ordered by
// package path and name.
func (p *Provider) Roots() []introspect.TypeRef {
	var out []introspect.TypeRef

	for _, pkg := range p.sortedPackages() {
		ids := slices.Clone(p.graph.Packages[pkg].Types)
		slices.SortFunc(ids, func(a, b TypeID) int { return strings.Compare(a.Name, b.Name) })

		for _, id := range ids {
			t := p.graph.GetType(id)
			if t == nil || t.Kind != TypeKindStruct {
				continue
			}

			if r := p.Ref(t); r != nil {
				out = append(out, r)
			}
		}
	}

	return out
}

func (p *Provider) sortedPackages() []string {
	pkgs := make([]string, 0, len(p.graph.Packages))
	for path := range p.graph.Packages {
		pkgs = append(pkgs, path)
	}

	slices.Sort(pkgs)

	return pkgs
}

func (p *Provider) info(t introspect.TypeRef) *TypeInfo {
	if r, ok := t.(*typeRef); ok && r != nil {
		return r.info
	}

	return nil
}

// Description implements introspect.Provider.
func (p *Provider) Description(t introspect.TypeRef) (string, bool) {
	info := p.info(t)
	if info == nil || info.Doc == "" {
		return "", false
	}

	return info.Doc, true
}

// XMLRoot implements introspect.Provider. The XMLName field wins over the
// xml-root directive; xml-namespace fills a missing namespace.
func (p *Provider) XMLRoot(t introspect.TypeRef) *schema.XML {
	info := p.info(t)
	if info == nil {
		return nil
	}

	var root schema.XML

	for i := range info.Fields {
		f := &info.Fields[i]
		if isXMLName(f) {
			root.Namespace, root.Name = xmlName(f.GetTag("xml"))
			break
		}
	}

	if root.Name == "" {
		root.Name, _ = info.Directives.Get(DirectiveXMLRoot)
	}

	if root.Namespace == "" {
		root.Namespace, _ = info.Directives.Get(DirectiveXMLNamespace)
	}

	if root.Name == "" && root.Namespace == "" {
		return nil
	}

	if root.Name == "" {
		root.Name = info.ID.Name
	}

	return &root
}

// Properties implements introspect.Provider. Fields of embedded structs
// without a json name are promoted; a shallower field shadows a deeper
// one of the same name.
func (p *Provider) Properties(t introspect.TypeRef) []introspect.PropertyDef {
	info := p.info(t)
	if info == nil || info.Kind != TypeKindStruct {
		return nil
	}

	var (
		defs   []introspect.PropertyDef
		depths = make(map[string]int)
		index  = make(map[string]int)
	)

	p.collect(info, 0, map[*TypeInfo]bool{info: true}, func(def introspect.PropertyDef, depth int) {
		if i, ok := index[def.Name]; ok {
			if depth < depths[def.Name] {
				defs[i] = def
				depths[def.Name] = depth
			}

			return
		}

		index[def.Name] = len(defs)
		depths[def.Name] = depth
		defs = append(defs, def)
	})

	return defs
}

func (p *Provider) collect(info *TypeInfo, depth int, seen map[*TypeInfo]bool, emit func(introspect.PropertyDef, int)) {
	for i := range info.Fields {
		f := &info.Fields[i]

		if f.JSONSkipped() || isXMLName(f) {
			continue
		}

		if f.Embedded && !f.HasJSONName() {
			if emb := Transparent(f.Type); emb != nil && emb.Kind == TypeKindStruct && emb.IsNamed() {
				if !seen[emb] {
					seen[emb] = true
					p.collect(emb, depth+1, seen, emit)
				}

				continue
			}
		}

		emit(p.property(f), depth)
	}
}

func (p *Provider) property(f *FieldInfo) introspect.PropertyDef {
	def := introspect.PropertyDef{
		Name:         f.JSONName(),
		AccessorName: f.Name,
		Description:  strings.TrimSpace(f.Doc),
	}

	if ref := p.Ref(f.Type); ref != nil {
		def.Type = ref
	} else {
		p.log.Debug("field has no schema type", "field", f.Name, "type", f.Type.GoType)
	}

	if desc := f.GetTag("description"); desc != "" {
		def.Description = desc
	}

	opts := parseModelTag(f.GetTag("model"))
	def.Required = opts.required
	def.Position = opts.position

	if opts.readOnly {
		readOnly := true
		def.ReadOnly = &readOnly
	}

	wrapper, element := xmlTag(f.GetTag("xml"))
	def.XMLElementName = element

	switch {
	case wrapper != "":
		def.XMLWrapper = &schema.XML{Name: wrapper, Wrapped: true}
	case opts.wrapper != "":
		def.XMLWrapper = &schema.XML{Name: opts.wrapper, Wrapped: true}
	case opts.wrapped:
		def.XMLWrapper = &schema.XML{Name: schema.XMLDefault, Wrapped: true}
	}

	if raw, ok := f.Tag.Lookup("example"); ok {
		def.Example = typedExample(Transparent(f.Type), raw)
	}

	return def
}

// typedExample converts an example tag to the field's basic kind. Values
// that do not parse are kept as strings.
func typedExample(t *TypeInfo, raw string) any {
	if t == nil {
		return raw
	}

	if t.Kind == TypeKindAlias && t.Underlying != nil {
		t = t.Underlying
	}

	basic, ok := t.GoType.Underlying().(*types.Basic)
	if !ok {
		return raw
	}

	info := basic.Info()

	switch {
	case info&types.IsBoolean != 0:
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	case info&types.IsUnsigned != 0:
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return v
		}
	case info&types.IsInteger != 0:
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return v
		}
	case info&types.IsFloat != 0:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}

	return raw
}

// Discriminator implements introspect.Provider.
func (p *Provider) Discriminator(t introspect.TypeRef) (string, bool) {
	if info := p.info(t); info != nil {
		return info.Directives.Get(DirectiveDiscriminator)
	}

	return "", false
}

// TypeInfoProperty implements introspect.Provider.
func (p *Provider) TypeInfoProperty(t introspect.TypeRef) (string, bool) {
	if info := p.info(t); info != nil {
		return info.Directives.Get(DirectiveTypeInfo)
	}

	return "", false
}

// Subtypes implements introspect.Provider. Names are looked up in the
// declaring package first; unknown names are skipped.
func (p *Provider) Subtypes(t introspect.TypeRef) []introspect.TypeRef {
	info := p.info(t)
	if info == nil {
		return nil
	}

	var out []introspect.TypeRef

	for _, name := range info.Directives.List(DirectiveSubtypes) {
		sub := p.graph.Lookup(info.ID.PkgPath, name)
		if sub == nil {
			p.log.Warn("unknown subtype", "type", info.ID, "subtype", name)
			continue
		}

		if r := p.Ref(sub); r != nil {
			out = append(out, r)
		}
	}

	return out
}

func isXMLName(f *FieldInfo) bool {
	if f.Name != "XMLName" || f.Type == nil || f.Type.Kind != TypeKindStruct {
		return false
	}

	return f.Type.ID == TypeID{PkgPath: "encoding/xml", Name: "Name"}
}

// typeRef is the introspect.TypeRef of a TypeInfo. Container element
// refs are built on demand, so recursive types need no cycle handling.
type typeRef struct {
	p    *Provider
	info *TypeInfo
	name string
}

func (r *typeRef) CanonicalName() string { return r.name }

// shape is the structure behind a named enum or set.
func (r *typeRef) shape() *TypeInfo {
	if r.info.Kind == TypeKindAlias {
		return Transparent(r.info.Underlying)
	}

	return r.info
}

func (r *typeRef) IsContainer() bool {
	switch r.shape().Kind {
	case TypeKindSlice, TypeKindArray, TypeKindMap:
		return true
	default:
		return false
	}
}

func (r *typeRef) KeyType() introspect.TypeRef {
	s := r.shape()
	if s.Kind != TypeKindMap || s.isSet() {
		return nil
	}

	if key := r.p.Ref(s.KeyType); key != nil {
		return key
	}

	// encoding.TextMarshaler keys still encode as strings
	return r.p.Ref(r.p.strType)
}

func (r *typeRef) ValueType() introspect.TypeRef {
	s := r.shape()

	switch s.Kind {
	case TypeKindMap:
		if s.isSet() {
			return r.p.Ref(s.KeyType)
		}
		return r.p.Ref(s.ElemType)
	case TypeKindSlice, TypeKindArray:
		return r.p.Ref(s.ElemType)
	default:
		return nil
	}
}

func (r *typeRef) IsEnum() bool { return len(r.info.EnumValues) > 0 }

func (r *typeRef) EnumValues() []string { return slices.Clone(r.info.EnumValues) }

func (r *typeRef) RawClass() introspect.RawClass {
	return introspect.RawClass{
		Name:  r.info.GoType.String(),
		IsSet: r.info.isSet() || r.shape().isSet(),
	}
}

func (r *typeRef) String() string { return r.name }
