// Package analyze provides package loading, type graph extraction and
// the introspection provider for Go source.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of named types, their fields,
// doc comments and enumeration constants.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/map/any/external)
//   - FieldInfo: describes field name, type, tags, doc and embedding
//   - TypeStringer: canonical schema names for types
//   - Provider: answers the resolver's metadata queries from the graph
package analyze
