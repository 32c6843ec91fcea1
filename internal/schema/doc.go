// Package schema holds the format-independent schema model produced by
// resolution and the registry that collects it.
//
// Key types:
//   - Property: a tagged variant over scalar, reference, array and map
//   - Model: a named record schema with ordered properties
//   - Composed: a polymorphic subtype expressed as parent ref + remainder
//   - Registry: the name -> Definition mapping shared by one resolution
//     session, with the in-progress guard used to break cycles
//
// Serialization is not handled here; see package export.
package schema
